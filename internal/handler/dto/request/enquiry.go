package request

import (
	"backroom-api/internal/usecase/commands"
)

type PrivateHireRequest struct {
	FirstName    string  `json:"firstName" binding:"required"`
	LastName     string  `json:"lastName" binding:"required"`
	Email        string  `json:"email" binding:"required"`
	Phone        *string `json:"phone"`
	Company      *string `json:"company"`
	EventDate    string  `json:"eventDate" binding:"required"`
	StartTime    string  `json:"eventStartTime" binding:"required"`
	EndTime      string  `json:"eventEndTime" binding:"required"`
	EventType    string  `json:"eventType" binding:"required"`
	GuestCount   string  `json:"guestCount" binding:"required"`
	VenueSpace   string  `json:"venueSpace" binding:"required"`
	Requirements string  `json:"privateHireRequirements" binding:"required"`
}

func (r *PrivateHireRequest) ToInput() commands.PrivateHireInput {
	return commands.PrivateHireInput{
		FirstName:    r.FirstName,
		LastName:     r.LastName,
		Email:        r.Email,
		Phone:        r.Phone,
		Company:      r.Company,
		EventDate:    r.EventDate,
		StartTime:    r.StartTime,
		EndTime:      r.EndTime,
		EventType:    r.EventType,
		GuestCount:   r.GuestCount,
		VenueSpace:   r.VenueSpace,
		Requirements: r.Requirements,
	}
}

type CareerRequest struct {
	FirstName    string  `json:"firstName" binding:"required"`
	LastName     string  `json:"lastName" binding:"required"`
	Email        string  `json:"email" binding:"required"`
	Phone        *string `json:"phone"`
	JobType      string  `json:"jobType" binding:"required"`
	Experience   string  `json:"experience" binding:"required"`
	Availability string  `json:"availability" binding:"required"`
	CoverLetter  string  `json:"coverLetter" binding:"required"`
}

func (r *CareerRequest) ToInput() commands.CareerInput {
	return commands.CareerInput{
		FirstName:    r.FirstName,
		LastName:     r.LastName,
		Email:        r.Email,
		Phone:        r.Phone,
		JobType:      r.JobType,
		Experience:   r.Experience,
		Availability: r.Availability,
		CoverLetter:  r.CoverLetter,
	}
}

type GeneralRequest struct {
	FirstName   string  `json:"firstName" binding:"required"`
	LastName    string  `json:"lastName" binding:"required"`
	Email       string  `json:"email" binding:"required"`
	Phone       *string `json:"phone"`
	InquiryType string  `json:"inquiryType" binding:"required"`
	Subject     string  `json:"subject" binding:"required"`
	Message     string  `json:"message" binding:"required"`
}

func (r *GeneralRequest) ToInput() commands.GeneralInput {
	return commands.GeneralInput{
		FirstName:   r.FirstName,
		LastName:    r.LastName,
		Email:       r.Email,
		Phone:       r.Phone,
		InquiryType: r.InquiryType,
		Subject:     r.Subject,
		Message:     r.Message,
	}
}
