package enquiry

import (
	"errors"
	"strings"
)

var (
	ErrInvalidEmail     = errors.New("invalid email address")
	ErrFirstNameMissing = errors.New("first name is required")
	ErrLastNameMissing  = errors.New("last name is required")
)

// Email is syntactically valid when it contains exactly one "@" with
// non-empty local and domain parts. Deliverability is the provider's problem.
type Email struct {
	value string
}

func NewEmail(value string) (Email, error) {
	trimmed := strings.TrimSpace(value)
	local, domain, found := strings.Cut(trimmed, "@")
	if !found || local == "" || domain == "" || strings.Contains(domain, "@") {
		return Email{}, ErrInvalidEmail
	}
	return Email{value: trimmed}, nil
}

func (e Email) String() string {
	return e.value
}

// Contact identifies the submitter; shared by every enquiry category.
type Contact struct {
	firstName string
	lastName  string
	email     Email
	phone     *string
}

func NewContact(firstName, lastName, email string, phone *string) (Contact, error) {
	first := strings.TrimSpace(firstName)
	if first == "" {
		return Contact{}, ErrFirstNameMissing
	}
	last := strings.TrimSpace(lastName)
	if last == "" {
		return Contact{}, ErrLastNameMissing
	}

	addr, err := NewEmail(email)
	if err != nil {
		return Contact{}, err
	}

	var phonePtr *string
	if phone != nil {
		trimmed := strings.TrimSpace(*phone)
		if trimmed != "" {
			phonePtr = &trimmed
		}
	}

	return Contact{
		firstName: first,
		lastName:  last,
		email:     addr,
		phone:     phonePtr,
	}, nil
}

func (c Contact) FirstName() string { return c.firstName }
func (c Contact) LastName() string  { return c.lastName }
func (c Contact) Email() Email      { return c.email }
func (c Contact) Phone() *string    { return c.phone }

func (c Contact) FullName() string {
	return c.firstName + " " + c.lastName
}
