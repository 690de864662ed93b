package enquiry

import (
	"errors"
	"strings"
)

var (
	ErrInvalidInquiryType = errors.New("invalid inquiry type")
	ErrInvalidSubject     = errors.New("invalid subject")
	ErrMessageMissing     = errors.New("message is required")
)

type InquiryType string

const (
	InquiryGeneral  InquiryType = "general"
	InquiryFeedback InquiryType = "feedback"
)

type GeneralStatus string

const (
	GeneralPending   GeneralStatus = "pending"
	GeneralResponded GeneralStatus = "responded"
	GeneralClosed    GeneralStatus = "closed"
)

// Subject lists differ per tab on the contact form.
var generalSubjects = map[string]struct{}{
	"Booking Information":       {},
	"Event Details":             {},
	"Membership Enquiry":        {},
	"Accessibility Information": {},
	"General Question":          {},
	"Other":                     {},
}

var feedbackSubjects = map[string]struct{}{
	"Excellent Service": {},
	"Event Feedback":    {},
	"Service Complaint": {},
	"Facility Issue":    {},
	"Staff Feedback":    {},
	"Suggestion":        {},
}

type GeneralInquiry struct {
	contact     Contact
	inquiryType InquiryType
	subject     string
	message     string
}

func NewGeneralInquiry(contact Contact, inquiryType, subject, message string) (*GeneralInquiry, error) {
	typ := InquiryType(inquiryType)

	var subjects map[string]struct{}
	switch typ {
	case InquiryGeneral:
		subjects = generalSubjects
	case InquiryFeedback:
		subjects = feedbackSubjects
	default:
		return nil, ErrInvalidInquiryType
	}

	if _, ok := subjects[subject]; !ok {
		return nil, ErrInvalidSubject
	}

	msg := strings.TrimSpace(message)
	if msg == "" {
		return nil, ErrMessageMissing
	}

	return &GeneralInquiry{
		contact:     contact,
		inquiryType: typ,
		subject:     subject,
		message:     msg,
	}, nil
}

func (i *GeneralInquiry) Contact() Contact         { return i.contact }
func (i *GeneralInquiry) InquiryType() InquiryType { return i.inquiryType }
func (i *GeneralInquiry) Subject() string          { return i.subject }
func (i *GeneralInquiry) Message() string          { return i.message }
