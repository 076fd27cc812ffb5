package models

import (
	"time"

	"gorm.io/gorm"
)

// User is the identity record. The personal attributes are persisted in
// envelope form ("base64(iv):base64(ct)"); UsernameHash and
// PhoneNumberHash carry the blind-index digests that serve as the only
// equality-lookup path, so ciphertext is never compared directly.
// The repository seals and opens these fields around every write/read.
//
// The record is never marshaled to API clients; responses are built
// from dedicated result structs. The json tags exist so the cache can
// round-trip the complete sealed record.
type User struct {
	gorm.Model
	Username        string `json:"username"`
	UsernameHash    string `json:"username_hash" gorm:"uniqueIndex;size:64"`
	PhoneNumber     string `json:"phone_number"`
	PhoneNumberHash string `json:"phone_number_hash" gorm:"index;size:64"`
	FirstName       string `json:"first_name"`
	LastName        string `json:"last_name"`
	Email           string `json:"email"`
	Bio             string `json:"bio"`
	Password        string `json:"password" gorm:"not null"`
	IsActive        bool   `json:"is_active" gorm:"default:false"`
	PhoneVerified   bool   `json:"phone_verified" gorm:"default:false"`

	// Pending-verification sub-state, owned by the signup service.
	VerificationCode        string     `json:"verification_code" gorm:"size:6"`
	VerificationCodeCreated *time.Time `json:"verification_code_created"`
	VerificationAttempts    int        `json:"verification_attempts" gorm:"default:0"`

	ProfilePicture string     `json:"profile_picture"`
	BannerPicture  string     `json:"banner_picture"`
	Interests      []Interest `json:"interests,omitempty" gorm:"many2many:user_interests;"`
}

// CreatePendingInput is the step-1 signup payload.
type CreatePendingInput struct {
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	PhoneNumber string `json:"phone_number"`
}

// FinalizeInput is the step-3 signup payload.
type FinalizeInput struct {
	UserID          uint   `json:"user_id"`
	Username        string `json:"username"`
	Password        string `json:"password"`
	PasswordConfirm string `json:"password_confirm"`
}
