package queries

import (
	"context"

	"backroom-api/internal/pkg/errs"
)

const DefaultBookingListLimit = 50

type BookingReadStore interface {
	Recent(ctx context.Context, limit int32) ([]*BookingView, error)
}

type BookingQueries interface {
	// RecentBookings lists table bookings newest first for the admin view.
	RecentBookings(ctx context.Context, limit int32) ([]*BookingView, error)
}

type bookingQueriesImpl struct {
	readStore BookingReadStore
}

func NewBookingQueries(readStore BookingReadStore) BookingQueries {
	return &bookingQueriesImpl{readStore: readStore}
}

func (q *bookingQueriesImpl) RecentBookings(ctx context.Context, limit int32) ([]*BookingView, error) {
	if limit <= 0 {
		limit = DefaultBookingListLimit
	}

	bookings, err := q.readStore.Recent(ctx, limit)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list recent bookings")
	}
	return bookings, nil
}
