package commands

import (
	"context"
	"log/slog"
	"strconv"

	"github.com/cockroachdb/errors"

	"backroom-api/internal/domain/booking"
	"backroom-api/internal/domain/enquiry"
	"backroom-api/internal/infra"
	"backroom-api/internal/infra/payment"
	"backroom-api/internal/pkg/clock"
	"backroom-api/internal/pkg/config"
	"backroom-api/internal/pkg/errs"
	"backroom-api/internal/pkg/reference"
	"backroom-api/internal/usecase/queries"
)

var (
	ErrPaymentMethodRequired = errs.New("payment method is required")
	ErrBookingNotFound       = errs.New("booking not found")
	// ErrNotCapturable means the row was found but its hold is no longer
	// in the authorized state, so capture/cancel cannot proceed.
	ErrNotCapturable = errs.New("booking payment is not awaiting capture")
)

// DeclinedError surfaces a card rejection to the handler layer with the
// provider's customer-facing message intact.
type DeclinedError struct {
	Message string
}

func (e *DeclinedError) Error() string { return e.Message }

type CreateBookingInput struct {
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
}

type CreateBookingResult struct {
	Booking          *queries.BookingView
	BookingReference string
	PaymentIntentID  string
	DepositAmount    int64
}

type BookingCommands interface {
	// CreateBooking authorizes the flat deposit (manual capture), persists
	// the booking, and dispatches confirmation emails best effort.
	CreateBooking(ctx context.Context, in CreateBookingInput) (*CreateBookingResult, error)
	// CaptureBooking charges an authorized hold and marks the booking
	// confirmed.
	CaptureBooking(ctx context.Context, paymentIntentID string) (*queries.BookingView, error)
	// CancelBooking releases an authorized hold and marks the booking
	// cancelled.
	CancelBooking(ctx context.Context, paymentIntentID string) (*queries.BookingView, error)
}

type bookingCommandsImpl struct {
	repo    BookingRepository
	gateway payment.Gateway
	mail    MailCommands
	clock   clock.Clock
	cfg     config.Config
}

func NewBookingCommands(
	repo BookingRepository,
	gateway payment.Gateway,
	mailCmds MailCommands,
	clk clock.Clock,
	cfg config.Config,
) BookingCommands {
	return &bookingCommandsImpl{
		repo:    repo,
		gateway: gateway,
		mail:    mailCmds,
		clock:   clk,
		cfg:     cfg,
	}
}

func (c *bookingCommandsImpl) CreateBooking(ctx context.Context, in CreateBookingInput) (*CreateBookingResult, error) {
	if in.PaymentMethodID == "" {
		return nil, ErrPaymentMethodRequired
	}

	contact, err := enquiry.NewContact(in.FirstName, in.LastName, in.Email, in.Phone)
	if err != nil {
		return nil, err
	}

	pkg, err := buildPackage(in)
	if err != nil {
		return nil, err
	}

	b, err := booking.NewTableBooking(contact, in.BookingDate, in.BookingTime, in.PartySize, pkg, in.VenueArea, in.SpecialRequests)
	if err != nil {
		return nil, err
	}

	// Authorize the deposit before touching storage. A declined card must
	// leave no booking row behind.
	intent, err := c.gateway.CreateIntent(ctx, c.cfg.Payment.DepositAmount, c.cfg.Payment.Currency, payment.IntentMetadata{
		BookingType:   "table_booking",
		CustomerEmail: contact.Email().String(),
		BookingDate:   b.BookingDate(),
		PartySize:     strconv.Itoa(b.PartySize()),
	})
	if err != nil {
		return nil, errs.Wrap(err, "failed to create payment intent")
	}

	confirmed, err := c.gateway.Confirm(ctx, intent.ID, in.PaymentMethodID)
	if err != nil {
		var declined *payment.DeclinedError
		if errors.As(err, &declined) {
			return nil, &DeclinedError{Message: declined.Message}
		}
		return nil, errs.Wrap(err, "failed to confirm payment intent")
	}

	ref := reference.Booking(c.clock.Now())
	if err := b.AttachPayment(confirmed.ID, ref); err != nil {
		return nil, err
	}

	view, err := c.repo.Create(ctx, b)
	if err != nil {
		// The hold stays with the provider; release it so the customer is
		// not left with a dangling authorization for a booking we lost.
		if cancelErr := c.gateway.Cancel(ctx, confirmed.ID); cancelErr != nil {
			slog.Error("failed to release hold after storage failure",
				"payment_intent_id", confirmed.ID, "error", cancelErr.Error())
		}
		return nil, errs.Wrap(err, "failed to store booking")
	}

	c.dispatch(ctx, bookingConfirmationEmail(b, c.cfg.Mail, c.cfg.Payment))
	c.dispatch(ctx, adminNotificationEmail("Table Booking", contact, bookingAdminDetails(b), c.clock.Now(), c.cfg.Mail))

	return &CreateBookingResult{
		Booking:          view,
		BookingReference: ref,
		PaymentIntentID:  confirmed.ID,
		DepositAmount:    c.cfg.Payment.DepositAmount,
	}, nil
}

func (c *bookingCommandsImpl) CaptureBooking(ctx context.Context, paymentIntentID string) (*queries.BookingView, error) {
	if err := c.gateway.Capture(ctx, paymentIntentID); err != nil {
		return nil, mapGatewayErr(err, "failed to capture payment intent")
	}

	view, err := c.repo.UpdatePaymentStatus(ctx, paymentIntentID, booking.StatusConfirmed, booking.PaymentCaptured)
	if err != nil {
		return nil, mapTransitionErr(err)
	}

	slog.Info("deposit captured", "payment_intent_id", paymentIntentID, "booking_reference", view.BookingReference)
	return view, nil
}

func (c *bookingCommandsImpl) CancelBooking(ctx context.Context, paymentIntentID string) (*queries.BookingView, error) {
	if err := c.gateway.Cancel(ctx, paymentIntentID); err != nil {
		return nil, mapGatewayErr(err, "failed to cancel payment intent")
	}

	view, err := c.repo.UpdatePaymentStatus(ctx, paymentIntentID, booking.StatusCancelled, booking.PaymentCancelled)
	if err != nil {
		return nil, mapTransitionErr(err)
	}

	slog.Info("deposit released", "payment_intent_id", paymentIntentID, "booking_reference", view.BookingReference)
	return view, nil
}

func buildPackage(in CreateBookingInput) (booking.Package, error) {
	if in.PackageType == string(booking.PackageCustom) {
		return booking.NewCustomPackage(in.CustomSpirits, in.CustomChampagne)
	}
	return booking.NewPresetPackage(in.SelectedPackage)
}

// The provider is consulted before our row, so its "no such intent" and
// "wrong state" answers get the same HTTP meaning as the guarded UPDATE's.
func mapGatewayErr(err error, msg string) error {
	switch {
	case errors.Is(err, payment.ErrIntentNotFound):
		return ErrBookingNotFound
	case errors.Is(err, payment.ErrUnexpectedState):
		return ErrNotCapturable
	default:
		return errs.Wrap(err, msg)
	}
}

func mapTransitionErr(err error) error {
	switch {
	case infra.IsKind(err, infra.KindNotFound):
		return ErrBookingNotFound
	case infra.IsKind(err, infra.KindConflict):
		return ErrNotCapturable
	default:
		return errs.Wrap(err, "failed to update booking payment status")
	}
}

func (c *bookingCommandsImpl) dispatch(ctx context.Context, in SendEmailInput) {
	if _, err := c.mail.SendEmail(ctx, in); err != nil {
		slog.Warn("booking email dispatch failed", "to", in.To, "subject", in.Subject, "error", err.Error())
	}
}
