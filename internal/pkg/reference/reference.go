// Package reference generates the human-shareable identifiers handed out by
// the booking and mail flows.
package reference

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"time"
)

const mockIDAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

// Booking returns a short code suitable for reading out over the phone,
// e.g. "BR483920". Derived from the clock, not stored state, so two bookings
// in the same millisecond could collide; the payment intent id remains the
// authoritative key.
func Booking(now time.Time) string {
	ms := fmt.Sprintf("%d", now.UnixMilli())
	return "BR" + ms[len(ms)-6:]
}

// MockMessageID synthesizes a message id for mail sent in mock mode, in the
// shape "mock_<unix-millis>_<9 alnum>".
func MockMessageID(now time.Time) string {
	suffix := make([]byte, 9)
	for i := range suffix {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(mockIDAlphabet))))
		if err != nil {
			// crypto/rand only fails if the OS entropy source is broken
			suffix[i] = mockIDAlphabet[0]
			continue
		}
		suffix[i] = mockIDAlphabet[n.Int64()]
	}
	return fmt.Sprintf("mock_%d_%s", now.UnixMilli(), suffix)
}
