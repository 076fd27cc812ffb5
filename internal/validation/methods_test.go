package validation

import (
	"strings"
	"testing"

	"kimlik/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestValidator_First(t *testing.T) {
	v := New()
	assert.Equal(t, "", v.First())

	v.AddError("first_name", "first_name is required")
	v.AddError("phone_number", "must be a valid phone number")
	assert.Equal(t, "first_name is required", v.First())

	// Re-adding an existing field does not change the ordering.
	v.AddError("first_name", "another message")
	assert.Equal(t, "another message", v.First())
}

func TestValidator_Phone(t *testing.T) {
	valid := []string{"+905551234567", "905551234567", "05551234567", "1234567890"}
	invalid := []string{"", "abc", "+90 555 123", "555-123-4567", "+9055512345678901"}

	for _, phone := range valid {
		v := New()
		v.Phone("phone_number", phone)
		assert.True(t, v.Valid(), "expected %q to be valid", phone)
	}
	for _, phone := range invalid {
		v := New()
		v.Phone("phone_number", phone)
		assert.False(t, v.Valid(), "expected %q to be invalid", phone)
	}
}

func TestValidator_Password(t *testing.T) {
	valid := []string{"Str0ng!Pass", "Aa!aaaaa", "Secure#Word"}
	invalid := []string{
		"",
		"short!A",     // below minimum length
		"alllower!1a", // no uppercase
		"ALLUPPER!1A", // no lowercase
		"NoSpecials1", // no punctuation or symbol
	}

	for _, password := range valid {
		v := New()
		v.Password("password", password)
		assert.True(t, v.Valid(), "expected %q to be valid", password)
	}
	for _, password := range invalid {
		v := New()
		v.Password("password", password)
		assert.False(t, v.Valid(), "expected %q to be invalid", password)
		assert.Equal(t, PasswordRequirements, v.First())
	}
}

func TestValidator_Username(t *testing.T) {
	v := New()
	v.Username("username", "ada_l")
	assert.True(t, v.Valid())

	v = New()
	v.Username("username", "ab")
	assert.False(t, v.Valid())

	v = New()
	v.Username("username", strings.Repeat("a", 31))
	assert.False(t, v.Valid())
}

func TestSignupStep1(t *testing.T) {
	t.Run("accepts complete input", func(t *testing.T) {
		v := New()
		v.SignupStep1(&models.CreatePendingInput{
			FirstName:   "Ada",
			LastName:    "Lovelace",
			PhoneNumber: "+905551234567",
		})
		assert.True(t, v.Valid())
	})

	t.Run("reports the earliest failing field", func(t *testing.T) {
		v := New()
		v.SignupStep1(&models.CreatePendingInput{PhoneNumber: "bad"})
		assert.False(t, v.Valid())
		assert.Equal(t, "first_name is required", v.First())
	})

	t.Run("rejects overlong names", func(t *testing.T) {
		v := New()
		v.SignupStep1(&models.CreatePendingInput{
			FirstName:   strings.Repeat("a", 51),
			LastName:    "Lovelace",
			PhoneNumber: "+905551234567",
		})
		assert.False(t, v.Valid())
	})
}

func TestFinalizeCredentials(t *testing.T) {
	t.Run("accepts matching credentials", func(t *testing.T) {
		v := New()
		v.FinalizeCredentials(&models.FinalizeInput{
			Username:        "ada_l",
			Password:        "Str0ng!Pass",
			PasswordConfirm: "Str0ng!Pass",
		})
		assert.True(t, v.Valid())
	})

	t.Run("mismatch short-circuits before the username check", func(t *testing.T) {
		v := New()
		v.FinalizeCredentials(&models.FinalizeInput{
			Username:        "x", // would also fail, but mismatch wins
			Password:        "Str0ng!Pass",
			PasswordConfirm: "Other!Pass1",
		})
		assert.False(t, v.Valid())
		assert.Equal(t, "passwords do not match", v.First())
		assert.Len(t, v.Errors, 1)
	})
}
