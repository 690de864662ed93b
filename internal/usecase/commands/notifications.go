package commands

import (
	"fmt"
	"strings"
	"time"

	"backroom-api/internal/domain/booking"
	"backroom-api/internal/domain/enquiry"
	"backroom-api/internal/pkg/config"
	"backroom-api/internal/pkg/patch"
)

// Email copy for customer confirmations and admin notifications. Venue
// identity comes from config so staging environments never send with the
// production footer.

const submittedAtLayout = "02/01/2006, 15:04:05"

func bookingConfirmationEmail(b *booking.TableBooking, cfg config.MailConfig, pay config.PaymentConfig) SendEmailInput {
	venueArea := patch.Coalesce(b.VenueArea(), "Any available")
	content := fmt.Sprintf(`Dear %s,

Thank you for your table booking request at %s.

Booking Details:
• Date: %s
• Event: %s
• Party Size: %d people
• Package: %s
• Venue Area: %s

We'll confirm availability within 24 hours and let you know the next steps.

%s deposit has been authorized and will only be charged if we can confirm your booking.

Best regards,
%s Team
%s
%s`,
		b.Contact().FullName(), cfg.VenueName,
		b.BookingDate(), b.BookingTime(), b.PartySize(), b.Package().Label(), venueArea,
		depositLabel(pay),
		cfg.VenueName, cfg.FromEmail, cfg.VenuePhone)

	return SendEmailInput{
		To:           b.Contact().Email().String(),
		CustomerName: b.Contact().FullName(),
		Subject:      fmt.Sprintf("Table Booking Request Received - %s", cfg.VenueName),
		Content:      content,
	}
}

func privateHireConfirmationEmail(inq *enquiry.PrivateHireInquiry, cfg config.MailConfig) SendEmailInput {
	content := fmt.Sprintf(`Dear %s,

Thank you for your private hire enquiry at %s.

Event Details:
• Date: %s
• Time: %s - %s
• Guest Count: %s
• Event Type: %s
• Venue Space: %s
• Company: %s

We'll review your requirements and provide a quote within 24-48 hours.

Best regards,
%s Events Team
%s
%s`,
		inq.Contact().FullName(), cfg.VenueName,
		inq.EventDate(), inq.StartTime(), inq.EndTime(), inq.GuestBucket(), inq.EventType(), inq.VenueSpace(),
		patch.Coalesce(inq.Company(), "N/A"),
		cfg.VenueName, cfg.FromEmail, cfg.VenuePhone)

	return SendEmailInput{
		To:           inq.Contact().Email().String(),
		CustomerName: inq.Contact().FullName(),
		Subject:      fmt.Sprintf("Private Hire Enquiry Received - %s", cfg.VenueName),
		Content:      content,
	}
}

func careerConfirmationEmail(app *enquiry.CareerApplication, cfg config.MailConfig) SendEmailInput {
	content := fmt.Sprintf(`Dear %s,

Thank you for your job application at %s.

Application Details:
• Position: %s
• Experience Level: %s
• Availability: %s

We've received your application and will review it carefully. If your profile matches our requirements, we'll contact you within the next two weeks to discuss next steps.

Please remember to email your CV to %s with the subject "Job Application - %s"

Best regards,
%s HR Team
%s`,
		app.Contact().FullName(), cfg.VenueName,
		app.JobType(), app.Experience(), app.Availability(),
		cfg.AdminEmail, app.JobType(),
		cfg.VenueName, cfg.FromEmail)

	return SendEmailInput{
		To:           app.Contact().Email().String(),
		CustomerName: app.Contact().FullName(),
		Subject:      fmt.Sprintf("Job Application Received - %s", cfg.VenueName),
		Content:      content,
	}
}

func generalConfirmationEmail(inq *enquiry.GeneralInquiry, cfg config.MailConfig) SendEmailInput {
	kind := "enquiry"
	subjectWord := "Enquiry"
	thanks := ""
	if inq.InquiryType() == enquiry.InquiryFeedback {
		kind = "feedback"
		subjectWord = "Feedback"
		thanks = "\n\nWe really appreciate you taking the time to share your feedback with us."
	}

	content := fmt.Sprintf(`Dear %s,

Thank you for contacting %s.

Your %s regarding "%s" has been received and we'll respond within 24 hours.%s

Best regards,
%s Team
%s
%s`,
		inq.Contact().FullName(), cfg.VenueName,
		kind, inq.Subject(), thanks,
		cfg.VenueName, cfg.FromEmail, cfg.VenuePhone)

	return SendEmailInput{
		To:           inq.Contact().Email().String(),
		CustomerName: inq.Contact().FullName(),
		Subject:      fmt.Sprintf("%s Received - %s", subjectWord, cfg.VenueName),
		Content:      content,
	}
}

func adminNotificationEmail(inquiryType string, contact enquiry.Contact, details string, submittedAt time.Time, cfg config.MailConfig) SendEmailInput {
	var sb strings.Builder
	fmt.Fprintf(&sb, "New %s Received\n\n", inquiryType)
	fmt.Fprintf(&sb, "Customer Details:\n")
	fmt.Fprintf(&sb, "• Name: %s\n", contact.FullName())
	fmt.Fprintf(&sb, "• Email: %s\n", contact.Email())
	fmt.Fprintf(&sb, "• Phone: %s\n", patch.Coalesce(contact.Phone(), "Not provided"))
	fmt.Fprintf(&sb, "• Submitted: %s\n\n", submittedAt.Format(submittedAtLayout))
	sb.WriteString(details)
	fmt.Fprintf(&sb, "\nPlease log into the admin dashboard to view and respond to this %s.", strings.ToLower(inquiryType))

	return SendEmailInput{
		To:           cfg.AdminEmail,
		CustomerName: fmt.Sprintf("%s Admin", cfg.VenueName),
		Subject:      fmt.Sprintf("New %s - %s", inquiryType, contact.FullName()),
		Content:      sb.String(),
		ReplyToEmail: contact.Email().String(),
		ReplyToName:  contact.FullName(),
	}
}

func bookingAdminDetails(b *booking.TableBooking) string {
	return fmt.Sprintf(`Booking Details:
• Date: %s
• Time: %s
• Party Size: %d
• Package: %s
• Venue Area: %s
• Special Requests: %s
`,
		b.BookingDate(), b.BookingTime(), b.PartySize(), b.Package().Label(),
		patch.Coalesce(b.VenueArea(), "Any available"), patch.Coalesce(b.SpecialRequests(), "None"))
}

func privateHireAdminDetails(inq *enquiry.PrivateHireInquiry) string {
	return fmt.Sprintf(`Event Details:
• Date: %s
• Time: %s - %s
• Guest Count: %s
• Event Type: %s
• Venue Space: %s
• Company: %s
• Requirements: %s
`,
		inq.EventDate(), inq.StartTime(), inq.EndTime(), inq.GuestBucket(),
		inq.EventType(), inq.VenueSpace(), patch.Coalesce(inq.Company(), "N/A"), inq.Requirements())
}

func careerAdminDetails(app *enquiry.CareerApplication) string {
	return fmt.Sprintf(`Application Details:
• Position: %s
• Experience: %s
• Availability: %s
• Cover Letter: %s
`,
		app.JobType(), app.Experience(), app.Availability(), app.CoverLetter())
}

func generalAdminDetails(inq *enquiry.GeneralInquiry) string {
	return fmt.Sprintf(`Message Details:
• Subject: %s
• Message: %s
`,
		inq.Subject(), inq.Message())
}

// depositLabel renders the configured deposit in major units, e.g. "£50"
// for 5000 pence. Whole amounts drop the decimals.
func depositLabel(pay config.PaymentConfig) string {
	symbol := "£"
	if !strings.EqualFold(pay.Currency, "gbp") {
		symbol = strings.ToUpper(pay.Currency) + " "
	}
	if pay.DepositAmount%100 == 0 {
		return fmt.Sprintf("%s%d", symbol, pay.DepositAmount/100)
	}
	return fmt.Sprintf("%s%.2f", symbol, float64(pay.DepositAmount)/100)
}

func adminInquiryLabel(t enquiry.InquiryType) string {
	if t == enquiry.InquiryFeedback {
		return "Feedback"
	}
	return "General Enquiry"
}
