//go:build unit

package builder

import (
	"time"

	reqdto "backroom-api/internal/handler/dto/request"
	"backroom-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingBuilder struct {
	FirstName       string
	LastName        string
	Email           string
	Phone           *string
	BookingDate     string
	BookingTime     string
	PartySize       int
	PackageType     string
	SelectedPackage string
	CustomSpirits   []string
	CustomChampagne *string
	VenueArea       *string
	SpecialRequests *string
	PaymentMethodID string
	PaymentIntentID string
	Reference       string
}

func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		FirstName:       "Ada",
		LastName:        "Lovelace",
		Email:           "ada@example.com",
		BookingDate:     "2026-09-12",
		BookingTime:     "Bella Gente (11pm-4am)",
		PartySize:       6,
		PackageType:     "preset",
		SelectedPackage: "Premium Package",
		PaymentMethodID: "pm_card_visa",
		PaymentIntentID: "pi_test_123",
		Reference:       "BR123456",
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

func (b *BookingBuilder) BuildRequest() reqdto.CreateBookingRequest {
	return reqdto.CreateBookingRequest{
		FirstName:       b.FirstName,
		LastName:        b.LastName,
		Email:           b.Email,
		Phone:           b.Phone,
		BookingDate:     b.BookingDate,
		BookingTime:     b.BookingTime,
		PartySize:       b.PartySize,
		PackageType:     b.PackageType,
		SelectedPackage: b.SelectedPackage,
		CustomSpirits:   b.CustomSpirits,
		CustomChampagne: b.CustomChampagne,
		VenueArea:       b.VenueArea,
		SpecialRequests: b.SpecialRequests,
		PaymentMethodID: b.PaymentMethodID,
	}
}

func (b *BookingBuilder) BuildView() *queries.BookingView {
	var selectedPackage *string
	if b.PackageType == "preset" {
		selectedPackage = &b.SelectedPackage
	}
	return &queries.BookingView{
		ID:               uuid.New(),
		PaymentIntentID:  b.PaymentIntentID,
		BookingReference: b.Reference,
		FirstName:        b.FirstName,
		LastName:         b.LastName,
		Email:            b.Email,
		Phone:            b.Phone,
		BookingDate:      b.BookingDate,
		BookingTime:      b.BookingTime,
		PartySize:        int32(b.PartySize),
		PackageType:      b.PackageType,
		SelectedPackage:  selectedPackage,
		CustomSpirits:    b.CustomSpirits,
		CustomChampagne:  b.CustomChampagne,
		VenueArea:        b.VenueArea,
		SpecialRequests:  b.SpecialRequests,
		Status:           "pending",
		PaymentStatus:    "authorized",
		CreatedAt:        time.Now(),
	}
}
