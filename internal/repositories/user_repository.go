package repositories

import (
	"errors"
	"kimlik/internal/models"
)

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrUsernameTaken     = errors.New("username already taken")
	ErrDatabaseOperation = errors.New("database operation failed")
)

// UserRepository defines the interface for identity-record persistence.
// Implementations own the encrypted-attribute boundary: callers always
// see plaintext values, storage only ever sees envelopes and hashes.
type UserRepository interface {
	// Create persists a new user, sealing encrypted attributes first.
	Create(user *models.User) error

	// GetByID retrieves a user by their ID
	GetByID(id uint) (*models.User, error)

	// FindByUsername resolves a user through the username blind index
	FindByUsername(username string) (*models.User, error)

	// FindByPhone resolves a user through the phone-number blind index
	FindByPhone(phone string) (*models.User, error)

	// FindUnverifiedByPhone finds a pending (unverified) record for the
	// phone number, if any. Used by the supersede path.
	FindUnverifiedByPhone(phone string) (*models.User, error)

	// Update saves an existing user's information, re-sealing attributes
	Update(user *models.User) error

	// Delete removes a user from the database
	Delete(id uint) error
}
