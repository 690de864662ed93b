package queries

import (
	"time"

	"github.com/google/uuid"
)

// Views are the stored rows as read back from the database; the storage
// layer assigns identity and timestamps.

type BookingView struct {
	ID               uuid.UUID  `json:"id"`
	PaymentIntentID  string     `json:"payment_intent_id"`
	BookingReference string     `json:"booking_reference"`
	FirstName        string     `json:"customer_first_name"`
	LastName         string     `json:"customer_last_name"`
	Email            string     `json:"customer_email"`
	Phone            *string    `json:"customer_phone,omitempty"`
	BookingDate      string     `json:"booking_date"`
	BookingTime      string     `json:"booking_time"`
	PartySize        int32      `json:"party_size"`
	PackageType      string     `json:"package_type"`
	SelectedPackage  *string    `json:"selected_package,omitempty"`
	CustomSpirits    []string   `json:"custom_spirits,omitempty"`
	CustomChampagne  *string    `json:"custom_champagne,omitempty"`
	VenueArea        *string    `json:"venue_area,omitempty"`
	SpecialRequests  *string    `json:"special_requests,omitempty"`
	Status           string     `json:"status"`
	PaymentStatus    string     `json:"payment_status"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        *time.Time `json:"updated_at,omitempty"`
}

type PrivateHireView struct {
	ID           uuid.UUID `json:"id"`
	FirstName    string    `json:"customer_first_name"`
	LastName     string    `json:"customer_last_name"`
	Email        string    `json:"customer_email"`
	Phone        *string   `json:"customer_phone,omitempty"`
	Company      *string   `json:"company,omitempty"`
	EventDate    string    `json:"event_date"`
	StartTime    string    `json:"event_start_time"`
	EndTime      string    `json:"event_end_time"`
	GuestCount   string    `json:"guest_count"`
	EventType    string    `json:"event_type"`
	VenueSpace   string    `json:"venue_space"`
	Requirements string    `json:"requirements"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
}

type CareerApplicationView struct {
	ID           uuid.UUID `json:"id"`
	FirstName    string    `json:"applicant_first_name"`
	LastName     string    `json:"applicant_last_name"`
	Email        string    `json:"applicant_email"`
	Phone        *string   `json:"applicant_phone,omitempty"`
	JobType      string    `json:"job_type"`
	Experience   string    `json:"experience_level"`
	Availability string    `json:"availability"`
	CoverLetter  string    `json:"cover_letter"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
}

type GeneralInquiryView struct {
	ID          uuid.UUID `json:"id"`
	FirstName   string    `json:"customer_first_name"`
	LastName    string    `json:"customer_last_name"`
	Email       string    `json:"customer_email"`
	Phone       *string   `json:"customer_phone,omitempty"`
	InquiryType string    `json:"inquiry_type"`
	Subject     string    `json:"subject"`
	Message     string    `json:"message"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}
