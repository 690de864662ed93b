package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"backroom-api/internal/domain/booking"
	"backroom-api/internal/infra"
	"backroom-api/internal/pkg/pgconv"
	"backroom-api/internal/usecase/queries"
)

const bookingColumns = `
	id, payment_intent_id, booking_reference,
	customer_first_name, customer_last_name, customer_email, customer_phone,
	booking_date, booking_time, party_size,
	package_type, selected_package, custom_spirits, custom_champagne,
	venue_area, special_requests,
	status, payment_status, created_at, updated_at`

type BookingRepository struct {
	pool *pgxpool.Pool
}

func NewBookingRepository(pool *pgxpool.Pool) *BookingRepository {
	return &BookingRepository{pool: pool}
}

func (r *BookingRepository) Create(ctx context.Context, b *booking.TableBooking) (*queries.BookingView, error) {
	var selectedPackage *string
	var spirits []string
	var champagne *string
	if b.Package().Type() == booking.PackagePreset {
		preset := b.Package().Preset()
		selectedPackage = &preset
	} else {
		spirits = b.Package().Spirits()
		champagne = b.Package().Champagne()
	}

	row := r.pool.QueryRow(ctx, `
		INSERT INTO table_bookings (
			payment_intent_id, booking_reference,
			customer_first_name, customer_last_name, customer_email, customer_phone,
			booking_date, booking_time, party_size,
			package_type, selected_package, custom_spirits, custom_champagne,
			venue_area, special_requests,
			status, payment_status
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
		RETURNING`+bookingColumns,
		b.PaymentIntentID(), b.BookingReference(),
		b.Contact().FirstName(), b.Contact().LastName(), b.Contact().Email().String(), b.Contact().Phone(),
		b.BookingDate(), b.BookingTime(), int32(b.PartySize()),
		string(b.Package().Type()), selectedPackage, spirits, champagne,
		b.VenueArea(), b.SpecialRequests(),
		string(b.Status()), string(b.PaymentStatus()),
	)

	view, err := scanBookingRow(row)
	if err != nil {
		if pgconv.IsUniqueViolation(err) {
			return nil, infra.WrapRepoErr("booking already exists for payment intent", err, infra.KindDuplicateKey)
		}
		return nil, infra.WrapRepoErr("failed to insert booking", err)
	}
	return view, nil
}

// UpdatePaymentStatus moves a booking out of the authorized state. The guard
// in the WHERE clause makes a second capture or cancel a no-op at the row
// level regardless of interleaving.
func (r *BookingRepository) UpdatePaymentStatus(
	ctx context.Context,
	paymentIntentID string,
	status booking.Status,
	paymentStatus booking.PaymentStatus,
) (*queries.BookingView, error) {
	row := r.pool.QueryRow(ctx, `
		UPDATE table_bookings
		SET status = $2, payment_status = $3, updated_at = now()
		WHERE payment_intent_id = $1 AND payment_status = 'authorized'
		RETURNING`+bookingColumns,
		paymentIntentID, string(status), string(paymentStatus),
	)

	view, err := scanBookingRow(row)
	if err == nil {
		return view, nil
	}
	if !pgconv.IsNoRows(err) {
		return nil, infra.WrapRepoErr("failed to update booking payment status", err)
	}

	// No row matched: either the booking does not exist or its hold has
	// already been settled.
	var exists bool
	checkErr := r.pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM table_bookings WHERE payment_intent_id = $1)`,
		paymentIntentID,
	).Scan(&exists)
	if checkErr != nil {
		return nil, infra.WrapRepoErr("failed to check booking existence", checkErr)
	}
	if !exists {
		return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
	}
	return nil, infra.WrapRepoErr("booking payment is not in authorized state", err, infra.KindConflict)
}

func scanBookingRow(row pgx.Row) (*queries.BookingView, error) {
	var v queries.BookingView
	err := row.Scan(
		&v.ID, &v.PaymentIntentID, &v.BookingReference,
		&v.FirstName, &v.LastName, &v.Email, &v.Phone,
		&v.BookingDate, &v.BookingTime, &v.PartySize,
		&v.PackageType, &v.SelectedPackage, &v.CustomSpirits, &v.CustomChampagne,
		&v.VenueArea, &v.SpecialRequests,
		&v.Status, &v.PaymentStatus, &v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &v, nil
}
