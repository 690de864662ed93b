package commands

import (
	"context"

	"backroom-api/internal/domain/booking"
	"backroom-api/internal/domain/enquiry"
	"backroom-api/internal/usecase/queries"
)

// Write-side repository ports. Implementations live in infra/repository and
// hand back the stored row so callers can echo provider-assigned identity.

type BookingRepository interface {
	Create(ctx context.Context, b *booking.TableBooking) (*queries.BookingView, error)
	// UpdatePaymentStatus performs the administrative capture/cancel
	// transition; the UPDATE is guarded so only rows still in the
	// authorized state move.
	UpdatePaymentStatus(ctx context.Context, paymentIntentID string, status booking.Status, paymentStatus booking.PaymentStatus) (*queries.BookingView, error)
}

type EnquiryRepository interface {
	CreatePrivateHire(ctx context.Context, inq *enquiry.PrivateHireInquiry) (*queries.PrivateHireView, error)
	CreateCareerApplication(ctx context.Context, app *enquiry.CareerApplication) (*queries.CareerApplicationView, error)
	CreateGeneralInquiry(ctx context.Context, inq *enquiry.GeneralInquiry) (*queries.GeneralInquiryView, error)
}
