package mockapi

import (
	"time"

	"github.com/google/uuid"

	"service-booking-client/models"
)

// SeedBookings returns the fixture bookings the mock backend starts with: one
// multi-item accepted booking, one upcoming, one completed with feedback, one
// cancelled, and one bare booking without items for the degenerate listing shape.
func SeedBookings() []models.Booking {
	now := time.Now()

	return []models.Booking{
		{
			ID: 101,
			Items: []models.Item{
				{
					ID:     1001,
					Status: models.StatusAccepted,
					Provider: &models.Provider{
						Name:     "Sidi Mohamed",
						Phone:    "+22246123456",
						ImageURL: "https://img.example.com/providers/sidi.jpg",
					},
					RateCard: models.RateCard{
						CategoryName:    "Home Cleaning",
						SubcategoryName: "Deep Cleaning",
						ImageURL:        "https://img.example.com/services/deep-cleaning.jpg",
						Price:           450,
						StrikePrice:     600,
					},
					Address:  &models.Address{ID: 11, Line: "Tevragh Zeina, Street 42", City: "Nouakchott"},
					Date:     now.Add(48 * time.Hour),
					TimeFrom: "10:00",
					TimeTo:   "12:00",
					OTP:      &models.ServiceOTP{Start: "4831", End: "9274"},
				},
				{
					ID:     1002,
					Status: models.StatusAccepted,
					Provider: &models.Provider{
						Name:  "Ahmed Vall",
						Phone: "+22246654321",
					},
					RateCard: models.RateCard{
						CategoryName:    "Plumbing",
						SubcategoryName: "Leak Repair",
						Price:           300,
						StrikePrice:     350,
					},
					Address:  &models.Address{ID: 11, Line: "Tevragh Zeina, Street 42", City: "Nouakchott"},
					Date:     now.Add(48 * time.Hour),
					TimeFrom: "14:00",
					TimeTo:   "15:00",
					OTP:      &models.ServiceOTP{Start: "1138", End: "5521"},
				},
			},
			Discount:          75,
			WalletUsed:        25,
			ConvenienceCharge: 30,
			Tip:               0,
			TotalAmount:       730,
			PaymentStatus:     "paid",
			PaymentType:       "card",
			InvoiceRef:        uuid.NewString(),
			CreatedAt:         now.Add(-24 * time.Hour),
		},
		{
			ID: 102,
			Items: []models.Item{
				{
					ID:     1003,
					Status: models.StatusUpcoming,
					RateCard: models.RateCard{
						CategoryName:    "AC Repair",
						SubcategoryName: "Gas Refill",
						Price:           800,
						StrikePrice:     950,
					},
					Address:  &models.Address{ID: 12, Line: "Ksar, Block C", City: "Nouakchott"},
					Date:     now.Add(5 * 24 * time.Hour),
					TimeFrom: "09:00",
					TimeTo:   "11:00",
				},
			},
			ConvenienceCharge: 30,
			TotalAmount:       830,
			PaymentStatus:     "pending",
			PaymentType:       "cash",
			IsPartialPayment:  true,
			PartialPaidAmount: 200,
			RemainingAmount:   630,
			InvoiceRef:        uuid.NewString(),
			CreatedAt:         now.Add(-2 * time.Hour),
		},
		{
			ID: 103,
			Items: []models.Item{
				{
					ID:     1004,
					Status: models.StatusCompleted,
					Provider: &models.Provider{
						Name:  "Mariem Mint",
						Phone: "+22246998877",
					},
					RateCard: models.RateCard{
						CategoryName:    "Electrical",
						SubcategoryName: "Wiring Check",
						Price:           250,
						StrikePrice:     250,
					},
					Address:  &models.Address{ID: 13, Line: "Arafat, Sector 3", City: "Nouakchott"},
					Date:     now.Add(-72 * time.Hour),
					TimeFrom: "16:00",
					TimeTo:   "17:00",
					Feedback: &models.ItemFeedback{Rating: 5, Comment: "Quick and professional"},
				},
			},
			Tip:           20,
			Donation:      5,
			TotalAmount:   275,
			PaymentStatus: "paid",
			PaymentType:   "wallet",
			InvoiceRef:    uuid.NewString(),
			CreatedAt:     now.Add(-4 * 24 * time.Hour),
		},
		{
			ID: 104,
			Items: []models.Item{
				{
					ID:     1005,
					Status: models.StatusCancelled,
					RateCard: models.RateCard{
						CategoryName:    "Painting",
						SubcategoryName: "Single Room",
						Price:           1200,
						StrikePrice:     1500,
					},
					Address:  &models.Address{ID: 12, Line: "Ksar, Block C", City: "Nouakchott"},
					Date:     now.Add(-24 * time.Hour),
					TimeFrom: "08:00",
					TimeTo:   "12:00",
					Cancellation: &models.Cancellation{
						By:     "customer",
						Reason: "Schedule conflict",
					},
				},
			},
			VIPDiscount:   100,
			TotalAmount:   1100,
			PaymentStatus: "refunded",
			PaymentType:   "card",
			InvoiceRef:    uuid.NewString(),
			CreatedAt:     now.Add(-3 * 24 * time.Hour),
		},
		{
			// legacy booking created before line items existed
			ID:            105,
			Items:         nil,
			TotalAmount:   150,
			PaymentStatus: "paid",
			PaymentType:   "cash",
			InvoiceRef:    uuid.NewString(),
			CreatedAt:     now.Add(-30 * 24 * time.Hour),
		},
	}
}

// NewOTP generates a fresh service code pair
func NewOTP() *models.ServiceOTP {
	return &models.ServiceOTP{
		Start: uuid.NewString()[:4],
		End:   uuid.NewString()[:4],
	}
}
