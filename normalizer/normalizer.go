package normalizer

import (
	"service-booking-client/models"
)

// Normalize flattens raw bookings into one record per item. A booking with n items
// yields exactly n records, each merging the booking-level fields with that single
// item's fields. Booking order and item order are preserved. A booking without items
// falls back to a single bare-booking record so the caller still gets something
// renderable; the record's Kind tells consumers which shape they are holding.
//
// Pure function: no network, no store access.
func Normalize(bookings []models.Booking) []models.NormalizedOrder {
	orders := make([]models.NormalizedOrder, 0, len(bookings))

	for i := range bookings {
		booking := bookings[i]

		if len(booking.Items) == 0 {
			orders = append(orders, bareBookingRecord(booking))
			continue
		}

		for _, item := range booking.Items {
			orders = append(orders, mergeBookingItem(booking, item))
		}
	}

	return orders
}

// NormalizeDetail flattens a single booking and returns the record for the requested
// item. When the item is not present (or the booking carries no items) the first
// record is returned, so a stale item id still resolves to the booking's detail.
func NormalizeDetail(booking models.Booking, itemID uint) *models.NormalizedOrder {
	records := Normalize([]models.Booking{booking})
	if len(records) == 0 {
		return nil
	}

	for i := range records {
		if records[i].Kind == models.OrderKindWithItem && records[i].ItemID == itemID {
			return &records[i]
		}
	}
	return &records[0]
}

// mergeBookingItem shallow-merges one booking with one of its items
func mergeBookingItem(booking models.Booking, item models.Item) models.NormalizedOrder {
	source := booking
	return models.NormalizedOrder{
		Kind: models.OrderKindWithItem,

		OrderID:   booking.ID,
		BookingID: booking.ID,

		Discount:          booking.Discount,
		WalletUsed:        booking.WalletUsed,
		ConvenienceCharge: booking.ConvenienceCharge,
		Tip:               booking.Tip,
		Donation:          booking.Donation,
		VIPDiscount:       booking.VIPDiscount,
		TotalAmount:       booking.TotalAmount,
		PaymentStatus:     booking.PaymentStatus,
		PaymentType:       booking.PaymentType,
		IsPartialPayment:  booking.IsPartialPayment,
		PartialPaidAmount: booking.PartialPaidAmount,
		RemainingAmount:   booking.RemainingAmount,
		InvoiceRef:        booking.InvoiceRef,

		ItemID:       item.ID,
		Status:       item.Status,
		Provider:     item.Provider,
		RateCard:     item.RateCard,
		Address:      item.Address,
		Date:         item.Date,
		TimeFrom:     item.TimeFrom,
		TimeTo:       item.TimeTo,
		Cancellation: item.Cancellation,
		OTP:          item.OTP,
		Feedback:     item.Feedback,
		Issue:        item.Issue,

		Items:           []models.Item{item},
		OriginalBooking: &source,
	}
}

// bareBookingRecord emits a booking that arrived without items as a single record.
// Item-level fields stay zero-valued; consumers switch on Kind before reading them.
func bareBookingRecord(booking models.Booking) models.NormalizedOrder {
	source := booking
	return models.NormalizedOrder{
		Kind: models.OrderKindBareBooking,

		OrderID:   booking.ID,
		BookingID: booking.ID,

		Discount:          booking.Discount,
		WalletUsed:        booking.WalletUsed,
		ConvenienceCharge: booking.ConvenienceCharge,
		Tip:               booking.Tip,
		Donation:          booking.Donation,
		VIPDiscount:       booking.VIPDiscount,
		TotalAmount:       booking.TotalAmount,
		PaymentStatus:     booking.PaymentStatus,
		PaymentType:       booking.PaymentType,
		IsPartialPayment:  booking.IsPartialPayment,
		PartialPaidAmount: booking.PartialPaidAmount,
		RemainingAmount:   booking.RemainingAmount,
		InvoiceRef:        booking.InvoiceRef,

		Items:           []models.Item{},
		OriginalBooking: &source,
	}
}
