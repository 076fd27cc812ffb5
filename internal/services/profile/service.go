// Package profile covers the post-registration profile surface:
// interest selection and picture uploads.
package profile

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"path"
	"strings"

	domain "kimlik/internal/errors"
	"kimlik/internal/models"
	"kimlik/internal/repositories"
	"kimlik/internal/repositories/cache"
	"kimlik/internal/services/media"
)

const (
	MaxInterests = 3
	MaxImageSize = 5 * 1024 * 1024
)

// PictureKind selects which profile image an upload replaces.
type PictureKind string

const (
	PictureProfile PictureKind = "profile"
	PictureBanner  PictureKind = "banner"
)

var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/jpg":  true,
	"image/png":  true,
}

var (
	ErrTooManyInterests = &domain.DomainError{
		Code:    "TOO_MANY_INTERESTS",
		Message: fmt.Sprintf("maximum %d interests allowed", MaxInterests),
	}
	ErrUnknownInterest = &domain.DomainError{
		Code:    "UNKNOWN_INTEREST",
		Message: "one or more interests do not exist",
	}
	ErrInvalidImage = &domain.DomainError{
		Code:    "INVALID_IMAGE",
		Message: "invalid image, allowed formats: JPG, JPEG, PNG, maximum size: 5MB",
	}
)

type Service interface {
	ListInterests(ctx context.Context) ([]models.Interest, error)
	UpdateInterests(userID uint, interestIDs []uint) ([]string, error)
	UpdatePicture(ctx context.Context, userID uint, kind PictureKind, filename, contentType string, size int64, body io.Reader) (string, error)
}

type service struct {
	users     repositories.UserRepository
	interests repositories.InterestRepository
	cache     *cache.CacheService
	storage   media.Storage
}

func NewService(users repositories.UserRepository, interests repositories.InterestRepository, cacheSvc *cache.CacheService, storage media.Storage) Service {
	return &service{
		users:     users,
		interests: interests,
		cache:     cacheSvc,
		storage:   storage,
	}
}

// ListInterests returns the interest catalogue, read through the cache.
func (s *service) ListInterests(ctx context.Context) ([]models.Interest, error) {
	if cached, err := s.cache.GetInterests(ctx); err == nil {
		return cached, nil
	}

	interests, err := s.interests.List()
	if err != nil {
		return nil, err
	}
	if err := s.cache.CacheInterests(ctx, interests); err != nil {
		log.Printf("failed to cache interest list: %v", err)
	}
	return interests, nil
}

// UpdateInterests replaces the user's interests (max 3, all must exist)
// and returns the resulting interest names.
func (s *service) UpdateInterests(userID uint, interestIDs []uint) ([]string, error) {
	if len(interestIDs) > MaxInterests {
		return nil, ErrTooManyInterests
	}

	user, err := s.users.GetByID(userID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}

	interests, err := s.interests.GetByIDs(interestIDs)
	if err != nil {
		if errors.Is(err, repositories.ErrInterestNotFound) {
			return nil, ErrUnknownInterest
		}
		return nil, err
	}

	if err := s.interests.ReplaceForUser(user, interests); err != nil {
		return nil, err
	}

	names := make([]string, len(interests))
	for i, interest := range interests {
		names[i] = interest.Name
	}
	return names, nil
}

// UpdatePicture validates and stores a profile or banner image, deleting
// the previous object first, and persists the new object key.
func (s *service) UpdatePicture(ctx context.Context, userID uint, kind PictureKind, filename, contentType string, size int64, body io.Reader) (string, error) {
	if !allowedImageTypes[strings.ToLower(contentType)] || size > MaxImageSize || size == 0 {
		return "", ErrInvalidImage
	}

	user, err := s.users.GetByID(userID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return "", domain.ErrUserNotFound
		}
		return "", err
	}

	ext := strings.ToLower(path.Ext(filename))
	key := fmt.Sprintf("%s/user_%d%s", kind, userID, ext)

	previous := user.ProfilePicture
	if kind == PictureBanner {
		previous = user.BannerPicture
	}
	if previous != "" {
		// Non-fatal: the upload proceeds even if cleanup fails.
		_ = s.storage.Delete(ctx, previous)
	}

	url, err := s.storage.Upload(ctx, key, contentType, body)
	if err != nil {
		return "", err
	}

	if kind == PictureBanner {
		user.BannerPicture = key
	} else {
		user.ProfilePicture = key
	}
	if err := s.users.Update(user); err != nil {
		return "", err
	}
	return url, nil
}
