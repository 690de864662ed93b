//go:build unit

package enquiry_test

import (
	"testing"

	"backroom-api/internal/domain/enquiry"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEmail(t *testing.T) {
	cases := []struct {
		name  string
		input string
		errIs error
	}{
		{name: "plain address", input: "a@b.com"},
		{name: "surrounding whitespace trimmed", input: " a@b.com "},
		{name: "missing at sign", input: "ab.com", errIs: enquiry.ErrInvalidEmail},
		{name: "empty local part", input: "@b.com", errIs: enquiry.ErrInvalidEmail},
		{name: "empty domain part", input: "a@", errIs: enquiry.ErrInvalidEmail},
		{name: "two at signs", input: "a@b@c.com", errIs: enquiry.ErrInvalidEmail},
		{name: "empty string", input: "", errIs: enquiry.ErrInvalidEmail},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			email, err := enquiry.NewEmail(tc.input)
			if tc.errIs != nil {
				assert.ErrorIs(t, err, tc.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "a@b.com", email.String())
		})
	}
}

func TestNewContact(t *testing.T) {
	phone := "0113 2438666"

	t.Run("basic success case", func(t *testing.T) {
		c, err := enquiry.NewContact("Jane", "Doe", "jane@example.com", &phone)
		require.NoError(t, err)

		assert.Equal(t, "Jane", c.FirstName())
		assert.Equal(t, "Doe", c.LastName())
		assert.Equal(t, "Jane Doe", c.FullName())
		assert.Equal(t, "jane@example.com", c.Email().String())
		require.NotNil(t, c.Phone())
		assert.Equal(t, phone, *c.Phone())
	})

	t.Run("phone is optional", func(t *testing.T) {
		c, err := enquiry.NewContact("Jane", "Doe", "jane@example.com", nil)
		require.NoError(t, err)
		assert.Nil(t, c.Phone())
	})

	t.Run("blank phone treated as absent", func(t *testing.T) {
		blank := "   "
		c, err := enquiry.NewContact("Jane", "Doe", "jane@example.com", &blank)
		require.NoError(t, err)
		assert.Nil(t, c.Phone())
	})

	cases := []struct {
		name      string
		first     string
		last      string
		email     string
		errIs     error
	}{
		{name: "missing first name", first: "", last: "Doe", email: "a@b.com", errIs: enquiry.ErrFirstNameMissing},
		{name: "whitespace first name", first: "  ", last: "Doe", email: "a@b.com", errIs: enquiry.ErrFirstNameMissing},
		{name: "missing last name", first: "Jane", last: "", email: "a@b.com", errIs: enquiry.ErrLastNameMissing},
		{name: "invalid email", first: "Jane", last: "Doe", email: "not-an-email", errIs: enquiry.ErrInvalidEmail},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := enquiry.NewContact(tc.first, tc.last, tc.email, nil)
			assert.ErrorIs(t, err, tc.errIs)
		})
	}
}
