package readstore

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"backroom-api/internal/infra"
	"backroom-api/internal/usecase/queries"
)

type BookingReadStore struct {
	pool *pgxpool.Pool
}

func NewBookingReadStore(pool *pgxpool.Pool) *BookingReadStore {
	return &BookingReadStore{pool: pool}
}

// Recent lists bookings newest first for the admin dashboard.
func (r *BookingReadStore) Recent(ctx context.Context, limit int32) ([]*queries.BookingView, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT
			id, payment_intent_id, booking_reference,
			customer_first_name, customer_last_name, customer_email, customer_phone,
			booking_date, booking_time, party_size,
			package_type, selected_package, custom_spirits, custom_champagne,
			venue_area, special_requests,
			status, payment_status, created_at, updated_at
		FROM table_bookings
		ORDER BY created_at DESC
		LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings", err)
	}
	defer rows.Close()

	var views []*queries.BookingView
	for rows.Next() {
		var v queries.BookingView
		if err := rows.Scan(
			&v.ID, &v.PaymentIntentID, &v.BookingReference,
			&v.FirstName, &v.LastName, &v.Email, &v.Phone,
			&v.BookingDate, &v.BookingTime, &v.PartySize,
			&v.PackageType, &v.SelectedPackage, &v.CustomSpirits, &v.CustomChampagne,
			&v.VenueArea, &v.SpecialRequests,
			&v.Status, &v.PaymentStatus, &v.CreatedAt, &v.UpdatedAt,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking row", err)
		}
		views = append(views, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read booking rows", err)
	}
	return views, nil
}
