package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"backroom-api/internal/domain/enquiry"
	"backroom-api/internal/infra"
	"backroom-api/internal/usecase/queries"
)

type EnquiryRepository struct {
	pool *pgxpool.Pool
}

func NewEnquiryRepository(pool *pgxpool.Pool) *EnquiryRepository {
	return &EnquiryRepository{pool: pool}
}

func (r *EnquiryRepository) CreatePrivateHire(ctx context.Context, inq *enquiry.PrivateHireInquiry) (*queries.PrivateHireView, error) {
	var v queries.PrivateHireView
	err := r.pool.QueryRow(ctx, `
		INSERT INTO private_hire_inquiries (
			customer_first_name, customer_last_name, customer_email, customer_phone,
			company, event_date, event_start_time, event_end_time,
			guest_count, event_type, venue_space, requirements, status
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING
			id, customer_first_name, customer_last_name, customer_email, customer_phone,
			company, event_date, event_start_time, event_end_time,
			guest_count, event_type, venue_space, requirements, status, created_at`,
		inq.Contact().FirstName(), inq.Contact().LastName(), inq.Contact().Email().String(), inq.Contact().Phone(),
		inq.Company(), inq.EventDate(), inq.StartTime(), inq.EndTime(),
		inq.GuestBucket(), inq.EventType(), inq.VenueSpace(), inq.Requirements(), string(enquiry.PrivateHirePending),
	).Scan(
		&v.ID, &v.FirstName, &v.LastName, &v.Email, &v.Phone,
		&v.Company, &v.EventDate, &v.StartTime, &v.EndTime,
		&v.GuestCount, &v.EventType, &v.VenueSpace, &v.Requirements, &v.Status, &v.CreatedAt,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to insert private hire inquiry", err)
	}
	return &v, nil
}

func (r *EnquiryRepository) CreateCareerApplication(ctx context.Context, app *enquiry.CareerApplication) (*queries.CareerApplicationView, error) {
	var v queries.CareerApplicationView
	err := r.pool.QueryRow(ctx, `
		INSERT INTO career_applications (
			applicant_first_name, applicant_last_name, applicant_email, applicant_phone,
			job_type, experience_level, availability, cover_letter, status
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING
			id, applicant_first_name, applicant_last_name, applicant_email, applicant_phone,
			job_type, experience_level, availability, cover_letter, status, created_at`,
		app.Contact().FirstName(), app.Contact().LastName(), app.Contact().Email().String(), app.Contact().Phone(),
		app.JobType(), app.Experience(), app.Availability(), app.CoverLetter(), string(enquiry.CareerPending),
	).Scan(
		&v.ID, &v.FirstName, &v.LastName, &v.Email, &v.Phone,
		&v.JobType, &v.Experience, &v.Availability, &v.CoverLetter, &v.Status, &v.CreatedAt,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to insert career application", err)
	}
	return &v, nil
}

func (r *EnquiryRepository) CreateGeneralInquiry(ctx context.Context, inq *enquiry.GeneralInquiry) (*queries.GeneralInquiryView, error) {
	var v queries.GeneralInquiryView
	err := r.pool.QueryRow(ctx, `
		INSERT INTO general_inquiries (
			customer_first_name, customer_last_name, customer_email, customer_phone,
			inquiry_type, subject, message, status
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING
			id, customer_first_name, customer_last_name, customer_email, customer_phone,
			inquiry_type, subject, message, status, created_at`,
		inq.Contact().FirstName(), inq.Contact().LastName(), inq.Contact().Email().String(), inq.Contact().Phone(),
		string(inq.InquiryType()), inq.Subject(), inq.Message(), string(enquiry.GeneralPending),
	).Scan(
		&v.ID, &v.FirstName, &v.LastName, &v.Email, &v.Phone,
		&v.InquiryType, &v.Subject, &v.Message, &v.Status, &v.CreatedAt,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to insert general inquiry", err)
	}
	return &v, nil
}
