package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"service-booking-client/models"
	"service-booking-client/types"
)

// OrderAPI is the Data Client contract the order store depends on. The HTTP
// implementation below is the production one; tests substitute their own.
type OrderAPI interface {
	ListByStatus(ctx context.Context, status models.OrderStatus, page, limit int) ([]models.Booking, error)
	GetDetail(ctx context.Context, orderID, itemID uint) (*models.Booking, error)
	Cancel(ctx context.Context, itemID uint, reason string) (string, error)
	Reschedule(ctx context.Context, itemID uint, date, timeFrom, timeTo, reason string) (string, error)
	SubmitFeedback(ctx context.Context, itemID uint, rating int, comment string) (string, error)
	ReportIssue(ctx context.Context, itemID uint, issue string) (string, error)
	ProcessPartialPayment(ctx context.Context, params models.PartialPaymentParams) (string, error)
}

// Client talks to the booking backend over HTTP. All failures come back as
// *APIError: 401 maps to the fixed authentication message, transport failures to
// the fixed connection message, and success=false envelopes carry the server's own
// message.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// New creates a client for the given API base URL
func New(baseURL, token string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    baseURL,
		token:      token,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// SetToken replaces the bearer token used on subsequent calls
func (c *Client) SetToken(token string) {
	c.token = token
}

// ListByStatus fetches one page of bookings in the given display status.
// A response whose data is not a booking array is coerced to an empty slice so the
// caller always receives a renderable collection.
func (c *Client) ListByStatus(ctx context.Context, status models.OrderStatus, page, limit int) ([]models.Booking, error) {
	query := url.Values{}
	query.Set("status", string(status))
	query.Set("page", strconv.Itoa(page))
	query.Set("limit", strconv.Itoa(limit))

	body, err := c.do(ctx, http.MethodGet, "/orders?"+query.Encode(), nil)
	if err != nil {
		return nil, err
	}

	var envelope models.ListResponse
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, &APIError{Message: "Invalid response from server"}
	}
	if !envelope.Success {
		return nil, &APIError{StatusCode: http.StatusOK, Message: envelope.Message}
	}

	var bookings []models.Booking
	if len(envelope.Data) > 0 {
		if err := json.Unmarshal(envelope.Data, &bookings); err != nil {
			log.Printf("⚠️ Order listing for %s returned non-array data, coercing to empty", status)
			bookings = nil
		}
	}
	if bookings == nil {
		bookings = []models.Booking{}
	}
	return bookings, nil
}

// GetDetail fetches one booking's detail. itemID narrows the view to a single line
// item; the backend still returns the whole booking.
func (c *Client) GetDetail(ctx context.Context, orderID, itemID uint) (*models.Booking, error) {
	path := fmt.Sprintf("/orders/%d?item_id=%d", orderID, itemID)
	body, err := c.do(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}

	var envelope models.DetailResponse
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, &APIError{Message: "Invalid response from server"}
	}
	if !envelope.Success || envelope.Data == nil {
		return nil, &APIError{StatusCode: http.StatusOK, Message: envelope.Message}
	}
	return envelope.Data, nil
}

// Cancel cancels one item
func (c *Client) Cancel(ctx context.Context, itemID uint, reason string) (string, error) {
	path := fmt.Sprintf("/orders/items/%d/cancel", itemID)
	return c.mutate(ctx, path, models.CancelRequest{Reason: reason})
}

// Reschedule moves one item to a new date and time window
func (c *Client) Reschedule(ctx context.Context, itemID uint, date, timeFrom, timeTo, reason string) (string, error) {
	path := fmt.Sprintf("/orders/items/%d/reschedule", itemID)
	return c.mutate(ctx, path, models.RescheduleRequest{
		Date:     date,
		TimeFrom: timeFrom,
		TimeTo:   timeTo,
		Reason:   reason,
	})
}

// SubmitFeedback rates a completed item
func (c *Client) SubmitFeedback(ctx context.Context, itemID uint, rating int, comment string) (string, error) {
	path := fmt.Sprintf("/orders/items/%d/feedback", itemID)
	return c.mutate(ctx, path, models.FeedbackRequest{Rating: rating, Comment: comment})
}

// ReportIssue files a problem report against an item
func (c *Client) ReportIssue(ctx context.Context, itemID uint, issue string) (string, error) {
	path := fmt.Sprintf("/orders/items/%d/issue", itemID)
	return c.mutate(ctx, path, models.IssueRequest{Issue: issue})
}

// ProcessPartialPayment settles part of a booking's remaining amount
func (c *Client) ProcessPartialPayment(ctx context.Context, params models.PartialPaymentParams) (string, error) {
	return c.mutate(ctx, "/orders/payments/partial", params)
}

// mutate POSTs a payload and unwraps the mutation envelope, returning the server's
// message on success
func (c *Client) mutate(ctx context.Context, path string, payload interface{}) (string, error) {
	body, err := c.do(ctx, http.MethodPost, path, payload)
	if err != nil {
		return "", err
	}

	var envelope models.MutationResponse
	if err := json.Unmarshal(body, &envelope); err != nil {
		return "", &APIError{Message: "Invalid response from server"}
	}
	if !envelope.Success {
		return "", &APIError{StatusCode: http.StatusOK, Message: envelope.Message}
	}
	return envelope.Message, nil
}

// do issues one HTTP request and translates transport-level failures into the
// fixed error taxonomy before any envelope parsing happens
func (c *Client) do(ctx context.Context, method, path string, payload interface{}) ([]byte, error) {
	if err := c.checkToken(); err != nil {
		return nil, err
	}

	var reqBody *bytes.Buffer
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, &APIError{Message: "Invalid request payload"}
		}
		reqBody = bytes.NewBuffer(data)
	} else {
		reqBody = bytes.NewBuffer(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return nil, &APIError{Message: MsgNetworkFailure}
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Printf("❌ Request failed: %s %s: %v", method, path, err)
		return nil, &APIError{Message: MsgNetworkFailure}
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		return nil, &APIError{StatusCode: http.StatusUnauthorized, Message: MsgAuthRequired}
	}
	if resp.StatusCode >= 500 {
		return nil, &APIError{StatusCode: resp.StatusCode, Message: MsgNetworkFailure}
	}

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(resp.Body); err != nil {
		return nil, &APIError{Message: MsgNetworkFailure}
	}
	return buf.Bytes(), nil
}

// checkToken rejects an expired bearer token locally, before any round trip.
// The signature is not verified here; the backend remains the authority.
func (c *Client) checkToken() error {
	if c.token == "" {
		return nil
	}

	parser := jwt.NewParser()
	claims := &types.Claims{}
	if _, _, err := parser.ParseUnverified(c.token, claims); err != nil {
		// Not a JWT; let the backend decide what to do with it
		return nil
	}
	if claims.ExpiresAt != nil && claims.ExpiresAt.Before(time.Now()) {
		log.Printf("🔒 Bearer token expired at %s, skipping request", claims.ExpiresAt)
		return &APIError{StatusCode: http.StatusUnauthorized, Message: MsgAuthRequired}
	}
	return nil
}
