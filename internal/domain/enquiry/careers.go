package enquiry

import (
	"errors"
	"strings"
)

var (
	ErrInvalidJobType      = errors.New("invalid job type")
	ErrInvalidExperience   = errors.New("invalid experience level")
	ErrInvalidAvailability = errors.New("invalid availability")
	ErrCoverLetterMissing  = errors.New("cover letter is required")
)

type CareerStatus string

const (
	CareerPending     CareerStatus = "pending"
	CareerReviewing   CareerStatus = "reviewing"
	CareerInterviewed CareerStatus = "interviewed"
	CareerHired       CareerStatus = "hired"
	CareerRejected    CareerStatus = "rejected"
)

var jobTypes = map[string]struct{}{
	"Bartender":           {},
	"Security":            {},
	"Event Staff":         {},
	"Management":          {},
	"DJ/Entertainment":    {},
	"Kitchen Staff":       {},
	"General Application": {},
}

var experienceLevels = map[string]struct{}{
	"No experience": {},
	"1-2 years":     {},
	"3-5 years":     {},
	"5+ years":      {},
}

var availabilities = map[string]struct{}{
	"Weekends only": {},
	"Weeknights":    {},
	"Flexible":      {},
	"Full time":     {},
}

type CareerApplication struct {
	contact      Contact
	jobType      string
	experience   string
	availability string
	coverLetter  string
}

func NewCareerApplication(
	contact Contact,
	jobType, experience, availability, coverLetter string,
) (*CareerApplication, error) {
	if _, ok := jobTypes[jobType]; !ok {
		return nil, ErrInvalidJobType
	}
	if _, ok := experienceLevels[experience]; !ok {
		return nil, ErrInvalidExperience
	}
	if _, ok := availabilities[availability]; !ok {
		return nil, ErrInvalidAvailability
	}

	letter := strings.TrimSpace(coverLetter)
	if letter == "" {
		return nil, ErrCoverLetterMissing
	}

	return &CareerApplication{
		contact:      contact,
		jobType:      jobType,
		experience:   experience,
		availability: availability,
		coverLetter:  letter,
	}, nil
}

func (a *CareerApplication) Contact() Contact     { return a.contact }
func (a *CareerApplication) JobType() string      { return a.jobType }
func (a *CareerApplication) Experience() string   { return a.experience }
func (a *CareerApplication) Availability() string { return a.availability }
func (a *CareerApplication) CoverLetter() string  { return a.coverLetter }
