package queries

import (
	"context"

	"backroom-api/internal/pkg/errs"
)

type InquiryReadStore interface {
	PendingGeneral(ctx context.Context) ([]*GeneralInquiryView, error)
}

type InquiryQueries interface {
	// PendingInquiries lists unanswered general/feedback inquiries newest
	// first for the admin view.
	PendingInquiries(ctx context.Context) ([]*GeneralInquiryView, error)
}

type inquiryQueriesImpl struct {
	readStore InquiryReadStore
}

func NewInquiryQueries(readStore InquiryReadStore) InquiryQueries {
	return &inquiryQueriesImpl{readStore: readStore}
}

func (q *inquiryQueriesImpl) PendingInquiries(ctx context.Context) ([]*GeneralInquiryView, error) {
	inquiries, err := q.readStore.PendingGeneral(ctx)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list pending inquiries")
	}
	return inquiries, nil
}
