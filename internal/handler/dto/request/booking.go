package request

import (
	"backroom-api/internal/usecase/commands"
)

type CreateBookingRequest struct {
	FirstName       string   `json:"firstName" binding:"required"`
	LastName        string   `json:"lastName" binding:"required"`
	Email           string   `json:"email" binding:"required"`
	Phone           *string  `json:"phone"`
	BookingDate     string   `json:"bookingDate" binding:"required"`
	BookingTime     string   `json:"bookingTime" binding:"required"`
	PartySize       int      `json:"partySize" binding:"required"`
	PackageType     string   `json:"packageType" binding:"required"`
	SelectedPackage string   `json:"selectedPackage"`
	CustomSpirits   []string `json:"customSpirits"`
	CustomChampagne *string  `json:"customChampagne"`
	VenueArea       *string  `json:"venueArea"`
	SpecialRequests *string  `json:"specialRequests"`
	PaymentMethodID string   `json:"paymentMethodId" binding:"required"`
}

func (r *CreateBookingRequest) ToInput() commands.CreateBookingInput {
	return commands.CreateBookingInput{
		FirstName:       r.FirstName,
		LastName:        r.LastName,
		Email:           r.Email,
		Phone:           r.Phone,
		BookingDate:     r.BookingDate,
		BookingTime:     r.BookingTime,
		PartySize:       r.PartySize,
		PackageType:     r.PackageType,
		SelectedPackage: r.SelectedPackage,
		CustomSpirits:   r.CustomSpirits,
		CustomChampagne: r.CustomChampagne,
		VenueArea:       r.VenueArea,
		SpecialRequests: r.SpecialRequests,
		PaymentMethodID: r.PaymentMethodID,
	}
}
