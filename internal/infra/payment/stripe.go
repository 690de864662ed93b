package payment

import (
	"context"
	"errors"

	"backroom-api/internal/pkg/config"
	"backroom-api/internal/pkg/errs"

	"github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/client"
)

type StripeGateway struct {
	api *client.API
}

func NewStripeGateway(cfg config.PaymentConfig) *StripeGateway {
	api := &client.API{}
	api.Init(cfg.StripeSecretKey, nil)
	return &StripeGateway{api: api}
}

func (g *StripeGateway) CreateIntent(ctx context.Context, amount int64, currency string, meta IntentMetadata) (*Intent, error) {
	params := &stripe.PaymentIntentParams{
		Params:        stripe.Params{Context: ctx},
		Amount:        stripe.Int64(amount),
		Currency:      stripe.String(currency),
		CaptureMethod: stripe.String(string(stripe.PaymentIntentCaptureMethodManual)),
		Metadata: map[string]string{
			"booking_type":   meta.BookingType,
			"customer_email": meta.CustomerEmail,
			"booking_date":   meta.BookingDate,
			"party_size":     meta.PartySize,
		},
	}

	pi, err := g.api.PaymentIntents.New(params)
	if err != nil {
		return nil, errs.Wrap(err, "failed to create payment intent")
	}

	return fromStripeIntent(pi), nil
}

func (g *StripeGateway) Confirm(ctx context.Context, intentID, paymentMethodID string) (*Intent, error) {
	params := &stripe.PaymentIntentConfirmParams{
		Params:        stripe.Params{Context: ctx},
		PaymentMethod: stripe.String(paymentMethodID),
	}

	pi, err := g.api.PaymentIntents.Confirm(intentID, params)
	if err != nil {
		if declined, ok := asDeclined(err); ok {
			return nil, declined
		}
		return nil, errs.Wrap(err, "failed to confirm payment intent")
	}

	return fromStripeIntent(pi), nil
}

func (g *StripeGateway) Capture(ctx context.Context, intentID string) error {
	params := &stripe.PaymentIntentCaptureParams{
		Params: stripe.Params{Context: ctx},
	}
	if _, err := g.api.PaymentIntents.Capture(intentID, params); err != nil {
		return markIntentErr(err, "failed to capture payment intent")
	}
	return nil
}

func (g *StripeGateway) Cancel(ctx context.Context, intentID string) error {
	params := &stripe.PaymentIntentCancelParams{
		Params: stripe.Params{Context: ctx},
	}
	if _, err := g.api.PaymentIntents.Cancel(intentID, params); err != nil {
		return markIntentErr(err, "failed to cancel payment intent")
	}
	return nil
}

// markIntentErr tags provider errors that have a precise HTTP meaning
// upstream: a missing intent and a wrong-state intent must not collapse
// into a generic operational failure.
func markIntentErr(err error, msg string) error {
	var stripeErr *stripe.Error
	if errors.As(err, &stripeErr) {
		switch stripeErr.Code {
		case stripe.ErrorCodeResourceMissing:
			return errs.Mark(errs.Wrap(err, msg), ErrIntentNotFound)
		case stripe.ErrorCodePaymentIntentUnexpectedState:
			return errs.Mark(errs.Wrap(err, msg), ErrUnexpectedState)
		}
	}
	return errs.Wrap(err, msg)
}

func fromStripeIntent(pi *stripe.PaymentIntent) *Intent {
	return &Intent{
		ID:           pi.ID,
		ClientSecret: pi.ClientSecret,
		Status:       string(pi.Status),
		Amount:       pi.Amount,
	}
}

// Card errors are customer-facing declines; everything else is operational.
func asDeclined(err error) (*DeclinedError, bool) {
	var stripeErr *stripe.Error
	if errors.As(err, &stripeErr) && stripeErr.Type == stripe.ErrorTypeCard {
		msg := stripeErr.Msg
		if msg == "" {
			msg = "Your card was declined. Please try another payment method."
		}
		return &DeclinedError{Message: msg}, true
	}
	return nil, false
}
