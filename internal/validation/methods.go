package validation

import (
	"fmt"
	"strings"
	"unicode"
)

// Validator defines validation methods
type Validator struct {
	Errors map[string]string
	order  []string
}

// New creates a new validator
func New() *Validator {
	return &Validator{Errors: make(map[string]string)}
}

// Valid checks if there are any validation errors
func (v *Validator) Valid() bool {
	return len(v.Errors) == 0
}

// AddError adds an error to the validator
func (v *Validator) AddError(field, message string) {
	if _, exists := v.Errors[field]; !exists {
		v.order = append(v.order, field)
	}
	v.Errors[field] = message
}

// First returns the earliest recorded error message, or "".
func (v *Validator) First() string {
	if len(v.order) == 0 {
		return ""
	}
	return v.Errors[v.order[0]]
}

// Check adds an error if the condition is false
func (v *Validator) Check(ok bool, field, message string) {
	if !ok {
		v.AddError(field, message)
	}
}

// Required checks if a string is not empty
func (v *Validator) Required(field, value string) {
	v.Check(strings.TrimSpace(value) != "", field, field+" is required")
}

// Phone validates phone number format
func (v *Validator) Phone(field, phone string) {
	v.Check(phoneRegex.MatchString(phone), field, "must be a valid phone number")
}

// MinLength checks if a string has at least n characters
func (v *Validator) MinLength(field string, value string, n int) {
	v.Check(len(value) >= n, field, fmt.Sprintf("must be at least %d characters long", n))
}

// MaxLength checks if a string has at most n characters
func (v *Validator) MaxLength(field string, value string, n int) {
	v.Check(len(value) <= n, field, fmt.Sprintf("must not be more than %d characters long", n))
}

// Username validates username length bounds.
func (v *Validator) Username(field, username string) {
	v.Check(len(username) >= MinUsernameLength && len(username) <= MaxUsernameLength,
		field,
		fmt.Sprintf("username must be between %d and %d characters", MinUsernameLength, MaxUsernameLength))
}

// Password validates password strength
func (v *Validator) Password(field, password string) {
	var (
		hasUpper   bool
		hasLower   bool
		hasSpecial bool
	)

	for _, char := range password {
		switch {
		case unicode.IsUpper(char):
			hasUpper = true
		case unicode.IsLower(char):
			hasLower = true
		case unicode.IsPunct(char) || unicode.IsSymbol(char):
			hasSpecial = true
		}
	}

	if len(password) < MinPasswordLength || !hasUpper || !hasLower || !hasSpecial {
		v.AddError(field, PasswordRequirements)
	}
}
