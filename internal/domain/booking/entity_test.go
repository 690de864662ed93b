//go:build unit

package booking_test

import (
	"testing"

	"backroom-api/internal/domain/booking"
	"backroom-api/internal/domain/enquiry"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type bookingInput struct {
	date            string
	time            string
	partySize       int
	pkg             booking.Package
	venueArea       *string
	specialRequests *string
}

func validBookingInput(t *testing.T) bookingInput {
	t.Helper()
	pkg, err := booking.NewPresetPackage("Premium Package")
	require.NoError(t, err)
	return bookingInput{
		date:      "2026-11-06",
		time:      "11pm - Friday Night",
		partySize: 6,
		pkg:       pkg,
	}
}

func buildBooking(t *testing.T, in bookingInput) (*booking.TableBooking, error) {
	t.Helper()
	contact, err := enquiry.NewContact("Jane", "Doe", "jane@example.com", nil)
	require.NoError(t, err)
	return booking.NewTableBooking(contact, in.date, in.time, in.partySize, in.pkg, in.venueArea, in.specialRequests)
}

func TestNewTableBooking(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := buildBooking(t, validBookingInput(t))
		require.NoError(t, err)

		assert.Equal(t, booking.StatusPending, actual.Status())
		assert.Equal(t, booking.PaymentAuthorized, actual.PaymentStatus())
		assert.Equal(t, 6, actual.PartySize())
		assert.Empty(t, actual.PaymentIntentID())
	})

	cases := []struct {
		name   string
		mutate func(*bookingInput)
		errIs  error
	}{
		{
			name:   "malformed date",
			mutate: func(in *bookingInput) { in.date = "next friday" },
			errIs:  booking.ErrInvalidBookingDate,
		},
		{
			name:   "empty arrival slot",
			mutate: func(in *bookingInput) { in.time = "  " },
			errIs:  booking.ErrArrivalSlotMissing,
		},
		{
			name:   "party of one",
			mutate: func(in *bookingInput) { in.partySize = 1 },
			errIs:  booking.ErrPartySizeTooSmall,
		},
		{
			name:   "zero party size",
			mutate: func(in *bookingInput) { in.partySize = 0 },
			errIs:  booking.ErrPartySizeTooSmall,
		},
		{
			name: "unknown venue area",
			mutate: func(in *bookingInput) {
				area := "garden"
				in.venueArea = &area
			},
			errIs: booking.ErrInvalidVenueArea,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := validBookingInput(t)
			tc.mutate(&in)
			_, err := buildBooking(t, in)
			assert.ErrorIs(t, err, tc.errIs)
		})
	}

	t.Run("minimum party size allowed", func(t *testing.T) {
		in := validBookingInput(t)
		in.partySize = booking.MinPartySize
		_, err := buildBooking(t, in)
		assert.NoError(t, err)
	})

	t.Run("blank venue area treated as no preference", func(t *testing.T) {
		in := validBookingInput(t)
		blank := ""
		in.venueArea = &blank
		actual, err := buildBooking(t, in)
		require.NoError(t, err)
		assert.Nil(t, actual.VenueArea())
	})
}

func TestAttachPayment(t *testing.T) {
	actual, err := buildBooking(t, validBookingInput(t))
	require.NoError(t, err)

	t.Run("requires both references", func(t *testing.T) {
		assert.ErrorIs(t, actual.AttachPayment("", "BR123456"), booking.ErrPaymentReferencesRequired)
		assert.ErrorIs(t, actual.AttachPayment("pi_123", ""), booking.ErrPaymentReferencesRequired)
	})

	t.Run("records references", func(t *testing.T) {
		require.NoError(t, actual.AttachPayment("pi_123", "BR123456"))
		assert.Equal(t, "pi_123", actual.PaymentIntentID())
		assert.Equal(t, "BR123456", actual.BookingReference())
	})
}

func TestNextPaymentStatus(t *testing.T) {
	cases := []struct {
		name    string
		current booking.PaymentStatus
		target  booking.PaymentStatus
		errIs   error
	}{
		{name: "authorized to captured", current: booking.PaymentAuthorized, target: booking.PaymentCaptured},
		{name: "authorized to cancelled", current: booking.PaymentAuthorized, target: booking.PaymentCancelled},
		{name: "captured cannot move again", current: booking.PaymentCaptured, target: booking.PaymentCancelled, errIs: booking.ErrNotAuthorized},
		{name: "cancelled cannot be captured", current: booking.PaymentCancelled, target: booking.PaymentCaptured, errIs: booking.ErrNotAuthorized},
		{name: "cannot transition back to authorized", current: booking.PaymentCaptured, target: booking.PaymentAuthorized, errIs: booking.ErrInvalidPaymentStatus},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := booking.NextPaymentStatus(tc.current, tc.target)
			if tc.errIs != nil {
				assert.ErrorIs(t, err, tc.errIs)
				return
			}
			assert.NoError(t, err)
		})
	}
}
