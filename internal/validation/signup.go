package validation

import (
	"kimlik/internal/models"
)

// SignupStep1 validates the personal-info step of registration.
func (v *Validator) SignupStep1(in *models.CreatePendingInput) {
	v.Required("first_name", in.FirstName)
	v.Required("last_name", in.LastName)
	v.MaxLength("first_name", in.FirstName, 50)
	v.MaxLength("last_name", in.LastName, 50)
	v.Required("phone_number", in.PhoneNumber)
	if in.PhoneNumber != "" {
		v.Phone("phone_number", in.PhoneNumber)
	}
}

// FinalizeCredentials validates the confirmation match and username
// format for the credential step. Password strength and username
// uniqueness are checked separately by the signup service so failures
// surface in the documented order.
func (v *Validator) FinalizeCredentials(in *models.FinalizeInput) {
	if in.Password != in.PasswordConfirm {
		v.AddError("password", "passwords do not match")
		return
	}
	v.Username("username", in.Username)
}
