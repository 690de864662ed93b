// Package payment wraps the payment-authorization provider. Deposits are
// authorized with manual capture: funds are held at booking time and only
// charged (or released) by a later administrative action.
package payment

import (
	"context"
	"errors"
)

type Intent struct {
	ID           string
	ClientSecret string
	Status       string
	Amount       int64
}

// Metadata recorded against the intent for back-office reconciliation.
type IntentMetadata struct {
	BookingType   string
	CustomerEmail string
	BookingDate   string
	PartySize     string
}

var (
	// ErrIntentNotFound: the provider has no intent with that id.
	ErrIntentNotFound = errors.New("payment intent not found")
	// ErrUnexpectedState: the intent exists but is not in a state the
	// requested operation accepts (already captured, already cancelled).
	ErrUnexpectedState = errors.New("payment intent in unexpected state")
)

type Gateway interface {
	// CreateIntent opens a manual-capture intent for the flat deposit.
	CreateIntent(ctx context.Context, amount int64, currency string, meta IntentMetadata) (*Intent, error)
	// Confirm authorizes the hold with the customer's payment method. A
	// provider rejection surfaces as *DeclinedError.
	Confirm(ctx context.Context, intentID, paymentMethodID string) (*Intent, error)
	// Capture charges a previously authorized hold.
	Capture(ctx context.Context, intentID string) error
	// Cancel releases a previously authorized hold.
	Cancel(ctx context.Context, intentID string) error
}

// DeclinedError carries the provider's own message, which is shown to the
// customer verbatim.
type DeclinedError struct {
	Message string
}

func (e *DeclinedError) Error() string {
	return e.Message
}
