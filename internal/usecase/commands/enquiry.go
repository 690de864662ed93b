package commands

import (
	"context"
	"log/slog"

	"backroom-api/internal/domain/enquiry"
	"backroom-api/internal/pkg/clock"
	"backroom-api/internal/pkg/config"
	"backroom-api/internal/pkg/errs"
	"backroom-api/internal/usecase/queries"
)

type PrivateHireInput struct {
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

type CareerInput struct {
	FirstName    string
	LastName     string
	Email        string
	Phone        *string
	JobType      string
	Experience   string
	Availability string
	CoverLetter  string
}

type GeneralInput struct {
	FirstName   string
	LastName    string
	Email       string
	Phone       *string
	InquiryType string
	Subject     string
	Message     string
}

type EnquiryCommands interface {
	SubmitPrivateHire(ctx context.Context, in PrivateHireInput) (*queries.PrivateHireView, error)
	SubmitCareer(ctx context.Context, in CareerInput) (*queries.CareerApplicationView, error)
	SubmitGeneral(ctx context.Context, in GeneralInput) (*queries.GeneralInquiryView, error)
}

type enquiryCommandsImpl struct {
	repo  EnquiryRepository
	mail  MailCommands
	clock clock.Clock
	cfg   config.MailConfig
}

func NewEnquiryCommands(repo EnquiryRepository, mailCmds MailCommands, clk clock.Clock, cfg config.Config) EnquiryCommands {
	return &enquiryCommandsImpl{
		repo:  repo,
		mail:  mailCmds,
		clock: clk,
		cfg:   cfg.Mail,
	}
}

func (c *enquiryCommandsImpl) SubmitPrivateHire(ctx context.Context, in PrivateHireInput) (*queries.PrivateHireView, error) {
	contact, err := enquiry.NewContact(in.FirstName, in.LastName, in.Email, in.Phone)
	if err != nil {
		return nil, err
	}

	inq, err := enquiry.NewPrivateHireInquiry(
		contact, in.Company,
		in.EventDate, in.StartTime, in.EndTime,
		in.EventType, in.GuestCount, in.VenueSpace, in.Requirements,
	)
	if err != nil {
		return nil, err
	}

	view, err := c.repo.CreatePrivateHire(ctx, inq)
	if err != nil {
		return nil, errs.Wrap(err, "failed to store private hire inquiry")
	}

	c.dispatch(ctx, privateHireConfirmationEmail(inq, c.cfg))
	c.dispatch(ctx, adminNotificationEmail("Private Hire", contact, privateHireAdminDetails(inq), c.clock.Now(), c.cfg))

	return view, nil
}

func (c *enquiryCommandsImpl) SubmitCareer(ctx context.Context, in CareerInput) (*queries.CareerApplicationView, error) {
	contact, err := enquiry.NewContact(in.FirstName, in.LastName, in.Email, in.Phone)
	if err != nil {
		return nil, err
	}

	app, err := enquiry.NewCareerApplication(contact, in.JobType, in.Experience, in.Availability, in.CoverLetter)
	if err != nil {
		return nil, err
	}

	view, err := c.repo.CreateCareerApplication(ctx, app)
	if err != nil {
		return nil, errs.Wrap(err, "failed to store career application")
	}

	c.dispatch(ctx, careerConfirmationEmail(app, c.cfg))
	c.dispatch(ctx, adminNotificationEmail("Career Application", contact, careerAdminDetails(app), c.clock.Now(), c.cfg))

	return view, nil
}

func (c *enquiryCommandsImpl) SubmitGeneral(ctx context.Context, in GeneralInput) (*queries.GeneralInquiryView, error) {
	contact, err := enquiry.NewContact(in.FirstName, in.LastName, in.Email, in.Phone)
	if err != nil {
		return nil, err
	}

	inq, err := enquiry.NewGeneralInquiry(contact, in.InquiryType, in.Subject, in.Message)
	if err != nil {
		return nil, err
	}

	view, err := c.repo.CreateGeneralInquiry(ctx, inq)
	if err != nil {
		return nil, errs.Wrap(err, "failed to store general inquiry")
	}

	label := adminInquiryLabel(inq.InquiryType())
	c.dispatch(ctx, generalConfirmationEmail(inq, c.cfg))
	c.dispatch(ctx, adminNotificationEmail(label, contact, generalAdminDetails(inq), c.clock.Now(), c.cfg))

	return view, nil
}

// dispatch sends best effort. The enquiry is already stored when emails go
// out, so a mail failure never loses the submission.
func (c *enquiryCommandsImpl) dispatch(ctx context.Context, in SendEmailInput) {
	if _, err := c.mail.SendEmail(ctx, in); err != nil {
		slog.Warn("enquiry email dispatch failed", "to", in.To, "subject", in.Subject, "error", err.Error())
	}
}
