//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"backroom-api/internal/domain/booking"
	"backroom-api/internal/infra"
	"backroom-api/internal/infra/payment"
	"backroom-api/internal/pkg/clock"
	"backroom-api/internal/pkg/config"
	"backroom-api/internal/usecase/commands"
	"backroom-api/internal/usecase/queries"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubGateway struct {
	createdAmount   int64
	createdCurrency string
	createdMeta     payment.IntentMetadata
	confirmCalls    int
	confirmErr      error
	captureCalls    int
	captureErr      error
	cancelCalls     int
	cancelErr       error
}

func (g *stubGateway) CreateIntent(_ context.Context, amount int64, currency string, meta payment.IntentMetadata) (*payment.Intent, error) {
	g.createdAmount = amount
	g.createdCurrency = currency
	g.createdMeta = meta
	return &payment.Intent{ID: "pi_test_123", ClientSecret: "pi_test_123_secret", Status: "requires_confirmation", Amount: amount}, nil
}

func (g *stubGateway) Confirm(_ context.Context, intentID, _ string) (*payment.Intent, error) {
	g.confirmCalls++
	if g.confirmErr != nil {
		return nil, g.confirmErr
	}
	return &payment.Intent{ID: intentID, Status: "requires_capture"}, nil
}

func (g *stubGateway) Capture(_ context.Context, _ string) error {
	g.captureCalls++
	return g.captureErr
}

func (g *stubGateway) Cancel(_ context.Context, _ string) error {
	g.cancelCalls++
	return g.cancelErr
}

type stubBookingRepo struct {
	created    *booking.TableBooking
	createErr  error
	updateErr  error
	lastStatus booking.Status
	lastPay    booking.PaymentStatus
}

func (r *stubBookingRepo) Create(_ context.Context, b *booking.TableBooking) (*queries.BookingView, error) {
	if r.createErr != nil {
		return nil, r.createErr
	}
	r.created = b
	return &queries.BookingView{
		PaymentIntentID:  b.PaymentIntentID(),
		BookingReference: b.BookingReference(),
		Status:           string(b.Status()),
		PaymentStatus:    string(b.PaymentStatus()),
	}, nil
}

func (r *stubBookingRepo) UpdatePaymentStatus(_ context.Context, paymentIntentID string, status booking.Status, paymentStatus booking.PaymentStatus) (*queries.BookingView, error) {
	if r.updateErr != nil {
		return nil, r.updateErr
	}
	r.lastStatus = status
	r.lastPay = paymentStatus
	return &queries.BookingView{
		PaymentIntentID:  paymentIntentID,
		BookingReference: "BR123456",
		Status:           string(status),
		PaymentStatus:    string(paymentStatus),
	}, nil
}

type recordingMail struct {
	sent []commands.SendEmailInput
}

func (m *recordingMail) SendEmail(_ context.Context, in commands.SendEmailInput) (*commands.SendEmailResult, error) {
	m.sent = append(m.sent, in)
	return &commands.SendEmailResult{MessageID: "msg"}, nil
}

func (m *recordingMail) SendBulkEmail(_ context.Context, _ []commands.SendEmailInput) (*commands.SendBulkResult, error) {
	return &commands.SendBulkResult{}, nil
}

func validBookingInput() commands.CreateBookingInput {
	return commands.CreateBookingInput{
		FirstName:       "Ada",
		LastName:        "Lovelace",
		Email:           "ada@example.com",
		BookingDate:     "2026-09-12",
		BookingTime:     "Bella Gente (11pm-4am)",
		PartySize:       6,
		PackageType:     "preset",
		SelectedPackage: "Premium Package",
		PaymentMethodID: "pm_card_visa",
	}
}

func newBookingCommands(repo *stubBookingRepo, gw *stubGateway, mailCmds *recordingMail, now time.Time) commands.BookingCommands {
	return commands.NewBookingCommands(repo, gw, mailCmds, clock.NewMockClock(now), config.NewTestConfig())
}

func TestCreateBooking(t *testing.T) {
	now := time.UnixMilli(1700000123456).UTC()

	t.Run("authorizes the deposit and stores the booking", func(t *testing.T) {
		repo := &stubBookingRepo{}
		gw := &stubGateway{}
		mailCmds := &recordingMail{}
		cmds := newBookingCommands(repo, gw, mailCmds, now)

		result, err := cmds.CreateBooking(context.Background(), validBookingInput())

		require.NoError(t, err)
		assert.Equal(t, int64(5000), gw.createdAmount)
		assert.Equal(t, "gbp", gw.createdCurrency)
		assert.Equal(t, "table_booking", gw.createdMeta.BookingType)
		assert.Equal(t, "ada@example.com", gw.createdMeta.CustomerEmail)
		assert.Equal(t, "6", gw.createdMeta.PartySize)

		assert.Equal(t, "pi_test_123", result.PaymentIntentID)
		assert.Equal(t, "BR123456", result.BookingReference)
		assert.Equal(t, int64(5000), result.DepositAmount)

		require.NotNil(t, repo.created)
		assert.Equal(t, booking.StatusPending, repo.created.Status())
		assert.Equal(t, booking.PaymentAuthorized, repo.created.PaymentStatus())

		// Customer confirmation plus admin notification.
		require.Len(t, mailCmds.sent, 2)
		assert.Equal(t, "ada@example.com", mailCmds.sent[0].To)
		assert.Contains(t, mailCmds.sent[0].Content, "£50 deposit has been authorized")
		assert.Equal(t, "info@backroomleeds.co.uk", mailCmds.sent[1].To)
		assert.Equal(t, "ada@example.com", mailCmds.sent[1].ReplyToEmail)
	})

	t.Run("confirmation email follows the configured deposit", func(t *testing.T) {
		cfg := config.NewTestConfig()
		cfg.Payment.DepositAmount = 7500
		mailCmds := &recordingMail{}
		cmds := commands.NewBookingCommands(&stubBookingRepo{}, &stubGateway{}, mailCmds, clock.NewMockClock(now), cfg)

		_, err := cmds.CreateBooking(context.Background(), validBookingInput())

		require.NoError(t, err)
		require.Len(t, mailCmds.sent, 2)
		assert.Contains(t, mailCmds.sent[0].Content, "£75 deposit has been authorized")
	})

	t.Run("declined card surfaces verbatim and stores nothing", func(t *testing.T) {
		repo := &stubBookingRepo{}
		gw := &stubGateway{confirmErr: &payment.DeclinedError{Message: "Your card has insufficient funds."}}
		mailCmds := &recordingMail{}
		cmds := newBookingCommands(repo, gw, mailCmds, now)

		_, err := cmds.CreateBooking(context.Background(), validBookingInput())

		var declined *commands.DeclinedError
		require.ErrorAs(t, err, &declined)
		assert.Equal(t, "Your card has insufficient funds.", declined.Message)
		assert.Nil(t, repo.created)
		assert.Empty(t, mailCmds.sent)
	})

	t.Run("releases the hold when storage fails", func(t *testing.T) {
		repo := &stubBookingRepo{createErr: errors.New("connection reset")}
		gw := &stubGateway{}
		cmds := newBookingCommands(repo, gw, &recordingMail{}, now)

		_, err := cmds.CreateBooking(context.Background(), validBookingInput())

		require.Error(t, err)
		assert.Equal(t, 1, gw.cancelCalls)
	})

	t.Run("rejects a missing payment method before touching the gateway", func(t *testing.T) {
		gw := &stubGateway{}
		cmds := newBookingCommands(&stubBookingRepo{}, gw, &recordingMail{}, now)

		in := validBookingInput()
		in.PaymentMethodID = ""
		_, err := cmds.CreateBooking(context.Background(), in)

		assert.ErrorIs(t, err, commands.ErrPaymentMethodRequired)
		assert.Zero(t, gw.confirmCalls)
	})

	t.Run("rejects invalid booking details before touching the gateway", func(t *testing.T) {
		cases := []struct {
			name   string
			mutate func(in *commands.CreateBookingInput)
			errIs  error
		}{
			{"party of one", func(in *commands.CreateBookingInput) { in.PartySize = 1 }, booking.ErrPartySizeTooSmall},
			{"unknown preset", func(in *commands.CreateBookingInput) { in.SelectedPackage = "Mega Package" }, booking.ErrUnknownPackage},
			{"custom without spirits", func(in *commands.CreateBookingInput) {
				in.PackageType = "custom"
				in.CustomSpirits = nil
			}, booking.ErrPackageRequired},
			{"bad date", func(in *commands.CreateBookingInput) { in.BookingDate = "12/09/2026" }, booking.ErrInvalidBookingDate},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				gw := &stubGateway{}
				cmds := newBookingCommands(&stubBookingRepo{}, gw, &recordingMail{}, now)

				in := validBookingInput()
				tc.mutate(&in)
				_, err := cmds.CreateBooking(context.Background(), in)

				assert.ErrorIs(t, err, tc.errIs)
				assert.Zero(t, gw.confirmCalls)
			})
		}
	})
}

func TestCaptureAndCancelBooking(t *testing.T) {
	now := time.UnixMilli(1700000123456).UTC()

	t.Run("capture charges the hold and confirms the booking", func(t *testing.T) {
		repo := &stubBookingRepo{}
		gw := &stubGateway{}
		cmds := newBookingCommands(repo, gw, &recordingMail{}, now)

		view, err := cmds.CaptureBooking(context.Background(), "pi_test_123")

		require.NoError(t, err)
		assert.Equal(t, 1, gw.captureCalls)
		assert.Equal(t, booking.StatusConfirmed, repo.lastStatus)
		assert.Equal(t, booking.PaymentCaptured, repo.lastPay)
		assert.Equal(t, "captured", view.PaymentStatus)
	})

	t.Run("cancel releases the hold and cancels the booking", func(t *testing.T) {
		repo := &stubBookingRepo{}
		gw := &stubGateway{}
		cmds := newBookingCommands(repo, gw, &recordingMail{}, now)

		view, err := cmds.CancelBooking(context.Background(), "pi_test_123")

		require.NoError(t, err)
		assert.Equal(t, 1, gw.cancelCalls)
		assert.Equal(t, booking.StatusCancelled, repo.lastStatus)
		assert.Equal(t, booking.PaymentCancelled, repo.lastPay)
		assert.Equal(t, "cancelled", view.PaymentStatus)
	})

	t.Run("capture of an unknown intent reports not found", func(t *testing.T) {
		repo := &stubBookingRepo{updateErr: infra.WrapRepoErr("no row", errors.New("no rows"), infra.KindNotFound)}
		cmds := newBookingCommands(repo, &stubGateway{}, &recordingMail{}, now)

		_, err := cmds.CaptureBooking(context.Background(), "pi_missing")
		assert.ErrorIs(t, err, commands.ErrBookingNotFound)
	})

	t.Run("capture of an already settled hold reports a conflict", func(t *testing.T) {
		repo := &stubBookingRepo{updateErr: infra.WrapRepoErr("not authorized", nil, infra.KindConflict)}
		cmds := newBookingCommands(repo, &stubGateway{}, &recordingMail{}, now)

		_, err := cmds.CaptureBooking(context.Background(), "pi_test_123")
		assert.ErrorIs(t, err, commands.ErrNotCapturable)
	})

	t.Run("provider-side unknown intent reports not found", func(t *testing.T) {
		gw := &stubGateway{captureErr: payment.ErrIntentNotFound}
		cmds := newBookingCommands(&stubBookingRepo{}, gw, &recordingMail{}, now)

		_, err := cmds.CaptureBooking(context.Background(), "pi_missing")
		assert.ErrorIs(t, err, commands.ErrBookingNotFound)
	})

	t.Run("provider-side wrong state reports a conflict", func(t *testing.T) {
		gw := &stubGateway{cancelErr: payment.ErrUnexpectedState}
		cmds := newBookingCommands(&stubBookingRepo{}, gw, &recordingMail{}, now)

		_, err := cmds.CancelBooking(context.Background(), "pi_test_123")
		assert.ErrorIs(t, err, commands.ErrNotCapturable)
	})
}
