//go:build unit

package enquiry_test

import (
	"testing"

	"backroom-api/internal/domain/enquiry"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGeneralInquiry(t *testing.T) {
	contact, err := enquiry.NewContact("Jane", "Doe", "jane@example.com", nil)
	require.NoError(t, err)

	t.Run("general inquiry", func(t *testing.T) {
		actual, err := enquiry.NewGeneralInquiry(contact, "general", "General Question", "What time do doors open?")
		require.NoError(t, err)
		assert.Equal(t, enquiry.InquiryGeneral, actual.InquiryType())
		assert.Equal(t, "General Question", actual.Subject())
	})

	t.Run("feedback inquiry", func(t *testing.T) {
		actual, err := enquiry.NewGeneralInquiry(contact, "feedback", "Excellent Service", "Great night, thank you!")
		require.NoError(t, err)
		assert.Equal(t, enquiry.InquiryFeedback, actual.InquiryType())
	})

	cases := []struct {
		name        string
		inquiryType string
		subject     string
		message     string
		errIs       error
	}{
		{name: "unknown inquiry type", inquiryType: "complaint", subject: "Other", message: "x", errIs: enquiry.ErrInvalidInquiryType},
		{name: "feedback subject on general tab", inquiryType: "general", subject: "Excellent Service", message: "x", errIs: enquiry.ErrInvalidSubject},
		{name: "general subject on feedback tab", inquiryType: "feedback", subject: "General Question", message: "x", errIs: enquiry.ErrInvalidSubject},
		{name: "empty message", inquiryType: "general", subject: "Other", message: "  ", errIs: enquiry.ErrMessageMissing},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := enquiry.NewGeneralInquiry(contact, tc.inquiryType, tc.subject, tc.message)
			assert.ErrorIs(t, err, tc.errIs)
		})
	}
}

func TestNewCareerApplication(t *testing.T) {
	contact, err := enquiry.NewContact("Jane", "Doe", "jane@example.com", nil)
	require.NoError(t, err)

	t.Run("basic success case", func(t *testing.T) {
		actual, err := enquiry.NewCareerApplication(contact, "Bartender", "3-5 years", "Weekends only", "I have worked cocktail bars for four years.")
		require.NoError(t, err)
		assert.Equal(t, "Bartender", actual.JobType())
		assert.Equal(t, "3-5 years", actual.Experience())
		assert.Equal(t, "Weekends only", actual.Availability())
	})

	cases := []struct {
		name         string
		jobType      string
		experience   string
		availability string
		coverLetter  string
		errIs        error
	}{
		{name: "unknown job type", jobType: "Astronaut", experience: "3-5 years", availability: "Flexible", coverLetter: "x", errIs: enquiry.ErrInvalidJobType},
		{name: "unknown experience level", jobType: "Bartender", experience: "decades", availability: "Flexible", coverLetter: "x", errIs: enquiry.ErrInvalidExperience},
		{name: "unknown availability", jobType: "Bartender", experience: "3-5 years", availability: "never", coverLetter: "x", errIs: enquiry.ErrInvalidAvailability},
		{name: "empty cover letter", jobType: "Bartender", experience: "3-5 years", availability: "Flexible", coverLetter: " ", errIs: enquiry.ErrCoverLetterMissing},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := enquiry.NewCareerApplication(contact, tc.jobType, tc.experience, tc.availability, tc.coverLetter)
			assert.ErrorIs(t, err, tc.errIs)
		})
	}
}
