//go:build unit

package builder

import (
	"time"

	reqdto "backroom-api/internal/handler/dto/request"
	"backroom-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type PrivateHireBuilder struct {
	FirstName    string
	LastName     string
	Email        string
	Phone        *string
	Company      *string
	EventDate    string
	StartTime    string
	EndTime      string
	EventType    string
	GuestCount   string
	VenueSpace   string
	Requirements string
}

func NewPrivateHireBuilder() *PrivateHireBuilder {
	phone := "07700 900123"
	return &PrivateHireBuilder{
		FirstName:    "Grace",
		LastName:     "Hopper",
		Email:        "grace@example.com",
		Phone:        &phone,
		EventDate:    "2026-12-18",
		StartTime:    "19:00",
		EndTime:      "23:30",
		EventType:    "Corporate Event",
		GuestCount:   "51-100",
		VenueSpace:   "both",
		Requirements: "DJ booth and a welcome drink on arrival",
	}
}

func (b *PrivateHireBuilder) With(mutate func(*PrivateHireBuilder)) *PrivateHireBuilder {
	mutate(b)
	return b
}

func (b *PrivateHireBuilder) BuildRequest() reqdto.PrivateHireRequest {
	return reqdto.PrivateHireRequest{
		FirstName:    b.FirstName,
		LastName:     b.LastName,
		Email:        b.Email,
		Phone:        b.Phone,
		Company:      b.Company,
		EventDate:    b.EventDate,
		StartTime:    b.StartTime,
		EndTime:      b.EndTime,
		EventType:    b.EventType,
		GuestCount:   b.GuestCount,
		VenueSpace:   b.VenueSpace,
		Requirements: b.Requirements,
	}
}

func (b *PrivateHireBuilder) BuildView() *queries.PrivateHireView {
	return &queries.PrivateHireView{
		ID:           uuid.New(),
		FirstName:    b.FirstName,
		LastName:     b.LastName,
		Email:        b.Email,
		Phone:        b.Phone,
		Company:      b.Company,
		EventDate:    b.EventDate,
		StartTime:    b.StartTime,
		EndTime:      b.EndTime,
		GuestCount:   b.GuestCount,
		EventType:    b.EventType,
		VenueSpace:   b.VenueSpace,
		Requirements: b.Requirements,
		Status:       "pending",
		CreatedAt:    time.Now(),
	}
}

type GeneralInquiryBuilder struct {
	FirstName   string
	LastName    string
	Email       string
	Phone       *string
	InquiryType string
	Subject     string
	Message     string
}

func NewGeneralInquiryBuilder() *GeneralInquiryBuilder {
	return &GeneralInquiryBuilder{
		FirstName:   "Joan",
		LastName:    "Clarke",
		Email:       "joan@example.com",
		InquiryType: "general",
		Subject:     "Event Details",
		Message:     "What time do doors open on Fridays?",
	}
}

func (b *GeneralInquiryBuilder) With(mutate func(*GeneralInquiryBuilder)) *GeneralInquiryBuilder {
	mutate(b)
	return b
}

func (b *GeneralInquiryBuilder) BuildRequest() reqdto.GeneralRequest {
	return reqdto.GeneralRequest{
		FirstName:   b.FirstName,
		LastName:    b.LastName,
		Email:       b.Email,
		Phone:       b.Phone,
		InquiryType: b.InquiryType,
		Subject:     b.Subject,
		Message:     b.Message,
	}
}

func (b *GeneralInquiryBuilder) BuildView() *queries.GeneralInquiryView {
	return &queries.GeneralInquiryView{
		ID:          uuid.New(),
		FirstName:   b.FirstName,
		LastName:    b.LastName,
		Email:       b.Email,
		Phone:       b.Phone,
		InquiryType: b.InquiryType,
		Subject:     b.Subject,
		Message:     b.Message,
		Status:      "pending",
		CreatedAt:   time.Now(),
	}
}

type CareerBuilder struct {
	FirstName    string
	LastName     string
	Email        string
	Phone        *string
	JobType      string
	Experience   string
	Availability string
	CoverLetter  string
}

func NewCareerBuilder() *CareerBuilder {
	return &CareerBuilder{
		FirstName:    "Alan",
		LastName:     "Turing",
		Email:        "alan@example.com",
		JobType:      "Bartender",
		Experience:   "3-5 years",
		Availability: "Weekends only",
		CoverLetter:  "Five years behind busy bars, references available.",
	}
}

func (b *CareerBuilder) With(mutate func(*CareerBuilder)) *CareerBuilder {
	mutate(b)
	return b
}

func (b *CareerBuilder) BuildRequest() reqdto.CareerRequest {
	return reqdto.CareerRequest{
		FirstName:    b.FirstName,
		LastName:     b.LastName,
		Email:        b.Email,
		Phone:        b.Phone,
		JobType:      b.JobType,
		Experience:   b.Experience,
		Availability: b.Availability,
		CoverLetter:  b.CoverLetter,
	}
}

func (b *CareerBuilder) BuildView() *queries.CareerApplicationView {
	return &queries.CareerApplicationView{
		ID:           uuid.New(),
		FirstName:    b.FirstName,
		LastName:     b.LastName,
		Email:        b.Email,
		Phone:        b.Phone,
		JobType:      b.JobType,
		Experience:   b.Experience,
		Availability: b.Availability,
		CoverLetter:  b.CoverLetter,
		Status:       "pending",
		CreatedAt:    time.Now(),
	}
}
