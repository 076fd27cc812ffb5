package validation

import "regexp"

const (
	// Password requirements
	MinPasswordLength = 8
	MaxPasswordLength = 72

	// Username bounds
	MinUsernameLength = 3
	MaxUsernameLength = 30

	PasswordRequirements = "password must be at least 8 characters long and contain at least one uppercase letter, one lowercase letter, and one special character"
)

// E.164-style numbers, optionally with a leading zero for Turkish
// local form.
var phoneRegex = regexp.MustCompile(`^\+?[0-9]{10,15}$`)
