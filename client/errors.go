package client

import "fmt"

// User-facing messages for failures that never reached a usable response
const (
	MsgAuthRequired   = "Authentication required. Please log in again."
	MsgNetworkFailure = "Network error. Please check your connection and try again."

	// MsgNoBookings is the backend's literal miss response for an empty status
	// listing. Callers treat it as empty success, not as an error.
	MsgNoBookings = "No bookings found."
)

// APIError is returned for every failed call. StatusCode is the HTTP status of the
// response, or 0 when no response was received at all.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.StatusCode == 0 {
		return e.Message
	}
	return fmt.Sprintf("%s (status %d)", e.Message, e.StatusCode)
}

// IsAuthError reports whether the error is the authentication-required condition
func IsAuthError(err error) bool {
	apiErr, ok := err.(*APIError)
	return ok && apiErr.StatusCode == 401
}

// IsEmptyListing reports whether the error is the backend's "no bookings" miss
// response, which listing callers must render as an empty collection.
func IsEmptyListing(err error) bool {
	apiErr, ok := err.(*APIError)
	return ok && apiErr.Message == MsgNoBookings
}
