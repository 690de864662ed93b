package booking

import (
	"errors"
	"strings"

	"backroom-api/internal/domain/enquiry"
)

var (
	ErrNotAuthorized             = errors.New("payment is not in authorized state")
	ErrInvalidPaymentStatus      = errors.New("invalid payment status")
	ErrPaymentReferencesRequired = errors.New("payment intent id and booking reference are required")
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
)

type PaymentStatus string

const (
	PaymentAuthorized PaymentStatus = "authorized"
	PaymentCaptured   PaymentStatus = "captured"
	PaymentCancelled  PaymentStatus = "cancelled"
)

// TableBooking is created only after the deposit hold succeeds; there is no
// unpaid-pending variant. payment_status moves authorized→captured or
// authorized→cancelled and never backward.
type TableBooking struct {
	paymentIntentID  string
	bookingReference string
	contact          enquiry.Contact
	bookingDate      string
	bookingTime      string
	partySize        int
	pkg              Package
	venueArea        *string
	specialRequests  *string
	status           Status
	paymentStatus    PaymentStatus
}

func NewTableBooking(
	contact enquiry.Contact,
	bookingDate, bookingTime string,
	partySize int,
	pkg Package,
	venueArea, specialRequests *string,
) (*TableBooking, error) {
	if !validBookingDate(bookingDate) {
		return nil, ErrInvalidBookingDate
	}
	if strings.TrimSpace(bookingTime) == "" {
		return nil, ErrArrivalSlotMissing
	}
	if partySize < MinPartySize {
		return nil, ErrPartySizeTooSmall
	}

	var areaPtr *string
	if venueArea != nil {
		trimmed := strings.TrimSpace(*venueArea)
		if trimmed != "" {
			if !validVenueArea(trimmed) {
				return nil, ErrInvalidVenueArea
			}
			areaPtr = &trimmed
		}
	}

	var requestsPtr *string
	if specialRequests != nil {
		if trimmed := strings.TrimSpace(*specialRequests); trimmed != "" {
			requestsPtr = &trimmed
		}
	}

	return &TableBooking{
		contact:         contact,
		bookingDate:     bookingDate,
		bookingTime:     strings.TrimSpace(bookingTime),
		partySize:       partySize,
		pkg:             pkg,
		venueArea:       areaPtr,
		specialRequests: requestsPtr,
		status:          StatusPending,
		paymentStatus:   PaymentAuthorized,
	}, nil
}

// AttachPayment records the authorization outcome before the booking is
// persisted. Both references come from the payment flow, never user input.
func (b *TableBooking) AttachPayment(paymentIntentID, bookingReference string) error {
	if paymentIntentID == "" || bookingReference == "" {
		return ErrPaymentReferencesRequired
	}
	b.paymentIntentID = paymentIntentID
	b.bookingReference = bookingReference
	return nil
}

func (b *TableBooking) PaymentIntentID() string      { return b.paymentIntentID }
func (b *TableBooking) BookingReference() string     { return b.bookingReference }
func (b *TableBooking) Contact() enquiry.Contact     { return b.contact }
func (b *TableBooking) BookingDate() string          { return b.bookingDate }
func (b *TableBooking) BookingTime() string          { return b.bookingTime }
func (b *TableBooking) PartySize() int               { return b.partySize }
func (b *TableBooking) Package() Package             { return b.pkg }
func (b *TableBooking) VenueArea() *string           { return b.venueArea }
func (b *TableBooking) SpecialRequests() *string     { return b.specialRequests }
func (b *TableBooking) Status() Status               { return b.status }
func (b *TableBooking) PaymentStatus() PaymentStatus { return b.paymentStatus }

// NextPaymentStatus validates an administrative capture/cancel transition.
// The guard also lives in the repository UPDATE so concurrent admin actions
// cannot race past it.
func NextPaymentStatus(current, target PaymentStatus) error {
	switch target {
	case PaymentCaptured, PaymentCancelled:
	default:
		return ErrInvalidPaymentStatus
	}
	if current != PaymentAuthorized {
		return ErrNotAuthorized
	}
	return nil
}
