package readstore

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"backroom-api/internal/infra"
	"backroom-api/internal/usecase/queries"
)

type InquiryReadStore struct {
	pool *pgxpool.Pool
}

func NewInquiryReadStore(pool *pgxpool.Pool) *InquiryReadStore {
	return &InquiryReadStore{pool: pool}
}

// PendingGeneral lists general inquiries still awaiting a response, newest
// first.
func (r *InquiryReadStore) PendingGeneral(ctx context.Context) ([]*queries.GeneralInquiryView, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT
			id, customer_first_name, customer_last_name, customer_email, customer_phone,
			inquiry_type, subject, message, status, created_at
		FROM general_inquiries
		WHERE status = 'pending'
		ORDER BY created_at DESC`,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list pending inquiries", err)
	}
	defer rows.Close()

	var views []*queries.GeneralInquiryView
	for rows.Next() {
		var v queries.GeneralInquiryView
		if err := rows.Scan(
			&v.ID, &v.FirstName, &v.LastName, &v.Email, &v.Phone,
			&v.InquiryType, &v.Subject, &v.Message, &v.Status, &v.CreatedAt,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan inquiry row", err)
		}
		views = append(views, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read inquiry rows", err)
	}
	return views, nil
}
