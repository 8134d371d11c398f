package contact

import (
	"testing"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validContactRequest() CreateContactRequest {
	return CreateContactRequest{
		FullName:     "John Smith",
		EmailAddress: "john@example.com",
		MobileNumber: "+1 (555) 123-4567",
		City:         "New York",
	}
}

func TestCreateContactRequestValidate(t *testing.T) {
	t.Run("valid request passes", func(t *testing.T) {
		assert.NoError(t, validContactRequest().Validate())
	})

	t.Run("name with digits rejected", func(t *testing.T) {
		req := validContactRequest()
		req.FullName = "John 5mith"
		err := req.Validate()
		require.Error(t, err)

		verrs, ok := err.(validation.Errors)
		require.True(t, ok)
		assert.Contains(t, verrs, "fullName")
	})

	t.Run("invalid email rejected", func(t *testing.T) {
		req := validContactRequest()
		req.EmailAddress = "not-an-email"
		err := req.Validate()
		require.Error(t, err)

		verrs, ok := err.(validation.Errors)
		require.True(t, ok)
		assert.Contains(t, verrs, "emailAddress")
	})

	t.Run("mobile with letters rejected", func(t *testing.T) {
		req := validContactRequest()
		req.MobileNumber = "555-CALL-NOW"
		assert.Error(t, req.Validate())
	})

	t.Run("mobile with too few digits rejected", func(t *testing.T) {
		// 15 ký tự nhưng chỉ 6 digits
		req := validContactRequest()
		req.MobileNumber = "12 34 - (56) - "
		assert.Error(t, req.Validate())
	})

	t.Run("mobile too short rejected", func(t *testing.T) {
		req := validContactRequest()
		req.MobileNumber = "123456789"
		assert.Error(t, req.Validate())
	})

	t.Run("plain ten digit mobile passes", func(t *testing.T) {
		req := validContactRequest()
		req.MobileNumber = "5551234567"
		assert.NoError(t, req.Validate())
	})

	t.Run("city with apostrophe and hyphen passes", func(t *testing.T) {
		req := validContactRequest()
		req.City = "Saint-Denis d'Anjou"
		assert.NoError(t, req.Validate())
	})

	t.Run("city with digits rejected", func(t *testing.T) {
		req := validContactRequest()
		req.City = "District 9"
		err := req.Validate()
		require.Error(t, err)

		verrs, ok := err.(validation.Errors)
		require.True(t, ok)
		assert.Contains(t, verrs, "city")
	})
}

func TestCreateContactRequestSanitize(t *testing.T) {
	req := CreateContactRequest{
		FullName:     "  John Smith ",
		EmailAddress: " John@Example.COM ",
		MobileNumber: " 5551234567 ",
		City:         " New York ",
	}

	got := req.Sanitize()
	assert.Equal(t, "John Smith", got.FullName)
	assert.Equal(t, "john@example.com", got.EmailAddress)
	assert.Equal(t, "5551234567", got.MobileNumber)
	assert.Equal(t, "New York", got.City)
}
