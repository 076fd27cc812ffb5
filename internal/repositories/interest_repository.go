package repositories

import (
	"errors"

	"kimlik/internal/models"

	"gorm.io/gorm"
)

var ErrInterestNotFound = errors.New("one or more interests do not exist")

// InterestRepository manages the interest lookup table and per-user
// interest associations.
type InterestRepository interface {
	List() ([]models.Interest, error)
	GetByIDs(ids []uint) ([]models.Interest, error)
	ReplaceForUser(user *models.User, interests []models.Interest) error
}

type interestRepository struct {
	db *gorm.DB
}

func NewInterestRepository(db *gorm.DB) InterestRepository {
	return &interestRepository{db: db}
}

func (r *interestRepository) List() ([]models.Interest, error) {
	var interests []models.Interest
	if err := r.db.Order("id").Find(&interests).Error; err != nil {
		return nil, ErrDatabaseOperation
	}
	return interests, nil
}

func (r *interestRepository) GetByIDs(ids []uint) ([]models.Interest, error) {
	var interests []models.Interest
	if err := r.db.Where("id IN ?", ids).Find(&interests).Error; err != nil {
		return nil, ErrDatabaseOperation
	}
	if len(interests) != len(ids) {
		return nil, ErrInterestNotFound
	}
	return interests, nil
}

func (r *interestRepository) ReplaceForUser(user *models.User, interests []models.Interest) error {
	if err := r.db.Model(user).Association("Interests").Replace(interests); err != nil {
		return ErrDatabaseOperation
	}
	return nil
}
