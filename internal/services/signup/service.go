// Package signup implements the multi-step registration state machine:
// pending record creation, phone-ownership verification and credential
// finalization. All transitions run synchronously inside the calling
// request; the only shared state is the user store.
package signup

import (
	"context"
	"errors"
	"log"
	"time"

	domain "kimlik/internal/errors"
	"kimlik/internal/models"
	"kimlik/internal/repositories"
	"kimlik/internal/services/sms"
	"kimlik/internal/utils"
	"kimlik/internal/validation"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const (
	maxVerificationAttempts = 3
	codeTTL                 = 180 * time.Second
)

// PendingRegistration is the result of a successful step 1.
type PendingRegistration struct {
	UserID              uint     `json:"user_id"`
	UsernameSuggestions []string `json:"username_suggestions"`
}

// CompletedRegistration is the result of a successful step 3.
type CompletedRegistration struct {
	UserID       uint   `json:"user_id"`
	Username     string `json:"username"`
	AccessToken  string `json:"token"`
	RefreshToken string `json:"refresh_token"`
}

type Service interface {
	CreatePending(ctx context.Context, in *models.CreatePendingInput) (*PendingRegistration, error)
	Verify(userID uint, code string) error
	Resend(ctx context.Context, userID uint) error
	Finalize(in *models.FinalizeInput) (*CompletedRegistration, error)
	UsernameExists(username string) (bool, error)
	PhoneExists(phone string) (bool, error)
}

type service struct {
	repo       repositories.UserRepository
	dispatcher sms.Dispatcher
}

func NewService(repo repositories.UserRepository, dispatcher sms.Dispatcher) Service {
	return &service{
		repo:       repo,
		dispatcher: dispatcher,
	}
}

// CreatePending runs step 1. A stale unverified record for the same
// phone is superseded unconditionally (latest signup attempt wins);
// a verified record blocks the signup. If the SMS dispatch fails the
// freshly created record is rolled back so no unreachable pending
// account survives.
func (s *service) CreatePending(ctx context.Context, in *models.CreatePendingInput) (*PendingRegistration, error) {
	if stale, err := s.repo.FindUnverifiedByPhone(in.PhoneNumber); err == nil {
		if err := s.repo.Delete(stale.ID); err != nil {
			return nil, err
		}
		log.Printf("superseded pending registration %d", stale.ID)
	}

	v := validation.New()
	v.SignupStep1(in)
	if !v.Valid() {
		return nil, domain.Validation(v.First())
	}

	if _, err := s.repo.FindByPhone(in.PhoneNumber); err == nil {
		return nil, domain.ErrPhoneExists
	}

	code, err := utils.GenerateVerificationCode()
	if err != nil {
		return nil, err
	}

	now := time.Now()
	user := &models.User{
		Username:                "temp_" + uuid.NewString()[:8],
		FirstName:               in.FirstName,
		LastName:                in.LastName,
		PhoneNumber:             in.PhoneNumber,
		Password:                "!", // unusable until finalize
		VerificationCode:        code,
		VerificationCodeCreated: &now,
	}
	if err := s.repo.Create(user); err != nil {
		return nil, err
	}

	suggestions := s.SuggestUsernames(in.FirstName, in.LastName)

	if err := s.dispatcher.Send(ctx, in.PhoneNumber, code); err != nil {
		log.Printf("verification sms for user %d failed: %v", user.ID, err)
		if delErr := s.repo.Delete(user.ID); delErr != nil {
			log.Printf("rollback of user %d failed: %v", user.ID, delErr)
		}
		return nil, domain.ErrDispatchFailed
	}

	return &PendingRegistration{
		UserID:              user.ID,
		UsernameSuggestions: suggestions,
	}, nil
}

// Verify runs step 2. Preconditions are evaluated strictly in order and
// the first failure decides the outcome: existence, not-yet-verified,
// attempt cap, code match, expiry. A wrong code increments the
// persisted attempt counter; an expired code leaves the record intact
// so the caller can request a resend.
func (s *service) Verify(userID uint, code string) error {
	user, err := s.repo.GetByID(userID)
	if err != nil {
		return s.notFoundOr(err)
	}

	if user.PhoneVerified {
		return domain.ErrAlreadyVerified
	}

	if user.VerificationAttempts >= maxVerificationAttempts {
		return domain.ErrTooManyAttempts
	}

	if user.VerificationCode != code {
		user.VerificationAttempts++
		if err := s.repo.Update(user); err != nil {
			return err
		}
		return domain.ErrInvalidCode
	}

	if user.VerificationCodeCreated == nil || time.Since(*user.VerificationCodeCreated) > codeTTL {
		return domain.ErrCodeExpired
	}

	user.PhoneVerified = true
	return s.repo.Update(user)
}

// Resend issues a fresh code for a pending record: the stored code is
// replaced, the attempt counter resets and the previous code becomes
// invalid. The record is only mutated after the SMS goes out.
func (s *service) Resend(ctx context.Context, userID uint) error {
	user, err := s.repo.GetByID(userID)
	if err != nil {
		return s.notFoundOr(err)
	}

	if user.PhoneVerified {
		return domain.ErrAlreadyVerified
	}

	code, err := utils.GenerateVerificationCode()
	if err != nil {
		return err
	}

	if err := s.dispatcher.Send(ctx, user.PhoneNumber, code); err != nil {
		log.Printf("resend sms for user %d failed: %v", user.ID, err)
		return domain.ErrDispatchFailed
	}

	now := time.Now()
	user.VerificationCode = code
	user.VerificationCodeCreated = &now
	user.VerificationAttempts = 0
	return s.repo.Update(user)
}

// Finalize runs step 3: sets the real username (the sealed write keeps
// the blind index paired), hashes the password and activates the
// record. The unique index on the username hash is the authoritative
// guard against a concurrent claim of the same name.
func (s *service) Finalize(in *models.FinalizeInput) (*CompletedRegistration, error) {
	user, err := s.repo.GetByID(in.UserID)
	if err != nil {
		return nil, s.notFoundOr(err)
	}

	if !user.PhoneVerified {
		return nil, domain.ErrPhoneNotVerified
	}

	v := validation.New()
	v.FinalizeCredentials(in)
	if !v.Valid() {
		return nil, domain.Validation(v.First())
	}

	if _, err := s.repo.FindByUsername(in.Username); err == nil {
		return nil, domain.ErrUsernameExists
	}

	v.Password("password", in.Password)
	if !v.Valid() {
		return nil, domain.Validation(v.First())
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, errors.New("failed to hash password")
	}

	user.Username = in.Username
	user.Password = string(hashed)
	user.IsActive = true
	if err := s.repo.Update(user); err != nil {
		if errors.Is(err, repositories.ErrUsernameTaken) {
			return nil, domain.ErrUsernameExists
		}
		return nil, err
	}

	accessToken, refreshToken, err := utils.GenerateTokens(&models.UserClaims{
		UserID:   user.ID,
		Username: user.Username,
	})
	if err != nil {
		log.Printf("token generation for user %d failed: %v", user.ID, err)
		return nil, errors.New("error generating tokens")
	}

	return &CompletedRegistration{
		UserID:       user.ID,
		Username:     user.Username,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

// UsernameExists reports whether any record holds the username,
// resolved through the blind index.
func (s *service) UsernameExists(username string) (bool, error) {
	_, err := s.repo.FindByUsername(username)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, repositories.ErrUserNotFound) {
		return false, nil
	}
	return false, err
}

// PhoneExists reports whether any record holds the phone number.
func (s *service) PhoneExists(phone string) (bool, error) {
	_, err := s.repo.FindByPhone(phone)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, repositories.ErrUserNotFound) {
		return false, nil
	}
	return false, err
}

func (s *service) notFoundOr(err error) error {
	if errors.Is(err, repositories.ErrUserNotFound) {
		return domain.ErrUserNotFound
	}
	return err
}
