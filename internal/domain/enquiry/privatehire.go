package enquiry

import (
	"errors"
	"strings"
	"time"
)

var (
	ErrInvalidEventDate    = errors.New("invalid event date")
	ErrInvalidEventTime    = errors.New("invalid event time")
	ErrEndNotAfterStart    = errors.New("end time must be after start time")
	ErrInvalidEventType    = errors.New("invalid event type")
	ErrInvalidGuestBucket  = errors.New("invalid guest count")
	ErrInvalidVenueSpace   = errors.New("invalid venue space")
	ErrRequirementsMissing = errors.New("requirements are required")
)

type PrivateHireStatus string

const (
	PrivateHirePending   PrivateHireStatus = "pending"
	PrivateHireQuoted    PrivateHireStatus = "quoted"
	PrivateHireConfirmed PrivateHireStatus = "confirmed"
	PrivateHireCancelled PrivateHireStatus = "cancelled"
)

// Guest counts are collected as ranges, not exact numbers; a quote covers the
// whole bucket.
var guestBuckets = map[string]struct{}{
	"10-50":   {},
	"51-100":  {},
	"101-150": {},
	"151-250": {},
	"251-350": {},
	"351-500": {},
}

// Venue spaces map to the physical capacity tiers offered for hire.
var venueSpaces = map[string]struct{}{
	"downstairs": {}, // 150 guests
	"upstairs":   {}, // 350 guests
	"both":       {}, // 500 guests
}

var eventTypes = map[string]struct{}{
	"Birthday Party":          {},
	"Corporate Event":         {},
	"Wedding Reception":       {},
	"Anniversary Celebration": {},
	"Product Launch":          {},
	"Team Building":           {},
	"Graduation Party":        {},
	"Charity Event":           {},
	"Christmas Party":         {},
	"Other":                   {},
}

const (
	eventDateLayout = "2006-01-02"
	eventTimeLayout = "15:04"
)

type PrivateHireInquiry struct {
	contact      Contact
	company      *string
	eventDate    string
	startTime    string
	endTime      string
	eventType    string
	guestBucket  string
	venueSpace   string
	requirements string
}

func NewPrivateHireInquiry(
	contact Contact,
	company *string,
	eventDate, startTime, endTime string,
	eventType, guestBucket, venueSpace, requirements string,
) (*PrivateHireInquiry, error) {
	if _, err := time.Parse(eventDateLayout, eventDate); err != nil {
		return nil, ErrInvalidEventDate
	}

	start, err := time.Parse(eventTimeLayout, startTime)
	if err != nil {
		return nil, ErrInvalidEventTime
	}
	end, err := time.Parse(eventTimeLayout, endTime)
	if err != nil {
		return nil, ErrInvalidEventTime
	}
	if !end.After(start) {
		return nil, ErrEndNotAfterStart
	}

	if _, ok := eventTypes[eventType]; !ok {
		return nil, ErrInvalidEventType
	}
	if _, ok := guestBuckets[guestBucket]; !ok {
		return nil, ErrInvalidGuestBucket
	}
	if _, ok := venueSpaces[venueSpace]; !ok {
		return nil, ErrInvalidVenueSpace
	}

	reqs := strings.TrimSpace(requirements)
	if reqs == "" {
		return nil, ErrRequirementsMissing
	}

	var companyPtr *string
	if company != nil {
		trimmed := strings.TrimSpace(*company)
		if trimmed != "" {
			companyPtr = &trimmed
		}
	}

	return &PrivateHireInquiry{
		contact:      contact,
		company:      companyPtr,
		eventDate:    eventDate,
		startTime:    startTime,
		endTime:      endTime,
		eventType:    eventType,
		guestBucket:  guestBucket,
		venueSpace:   venueSpace,
		requirements: reqs,
	}, nil
}

func (i *PrivateHireInquiry) Contact() Contact     { return i.contact }
func (i *PrivateHireInquiry) Company() *string     { return i.company }
func (i *PrivateHireInquiry) EventDate() string    { return i.eventDate }
func (i *PrivateHireInquiry) StartTime() string    { return i.startTime }
func (i *PrivateHireInquiry) EndTime() string      { return i.endTime }
func (i *PrivateHireInquiry) EventType() string    { return i.eventType }
func (i *PrivateHireInquiry) GuestBucket() string  { return i.guestBucket }
func (i *PrivateHireInquiry) VenueSpace() string   { return i.venueSpace }
func (i *PrivateHireInquiry) Requirements() string { return i.requirements }
