// Package errors defines the typed domain errors surfaced by the API.
// Every recoverable failure maps to a stable machine-readable code plus
// a human-readable message; internal causes stay in the logs.
package errors

// DomainError is a stable, user-presentable error value.
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

// Validation wraps a field-specific validator message in a DomainError.
func Validation(message string) *DomainError {
	return &DomainError{
		Code:    "VALIDATION_ERROR",
		Message: message,
	}
}
