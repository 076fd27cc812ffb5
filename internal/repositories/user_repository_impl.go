package repositories

import (
	"context"
	"errors"
	"log"

	"kimlik/internal/crypto"
	"kimlik/internal/models"

	"kimlik/internal/repositories/cache"

	"gorm.io/gorm"
)

type userRepository struct {
	db    *gorm.DB
	cache *cache.CacheService
	codec *crypto.FieldCodec
}

// NewUserRepository creates a new instance of UserRepository
func NewUserRepository(db *gorm.DB, cache *cache.CacheService, codec *crypto.FieldCodec) UserRepository {
	return &userRepository{
		db:    db,
		cache: cache,
		codec: codec,
	}
}

// encryptedFields lists every attribute covered by the field codec and
// its paired blind-index column, if any. All reads and writes of a User
// must pass through this single mapping so ciphertext and hash can
// never be committed out of sync.
func encryptedFields(u *models.User) []crypto.Field {
	return []crypto.Field{
		{Name: "username", Value: &u.Username, Hash: &u.UsernameHash},
		{Name: "phone_number", Value: &u.PhoneNumber, Hash: &u.PhoneNumberHash},
		{Name: "first_name", Value: &u.FirstName},
		{Name: "last_name", Value: &u.LastName},
		{Name: "email", Value: &u.Email},
		{Name: "bio", Value: &u.Bio},
	}
}

func (r *userRepository) seal(u *models.User) error {
	return r.codec.Seal(encryptedFields(u))
}

// open decrypts in place. Undecryptable fields are already logged and
// cleared by the codec; the record itself is still returned.
func (r *userRepository) open(u *models.User) {
	if err := r.codec.Open(encryptedFields(u)); err != nil {
		log.Printf("user %d has undecryptable fields", u.ID)
	}
}

func (r *userRepository) Create(user *models.User) error {
	if err := r.seal(user); err != nil {
		return ErrDatabaseOperation
	}
	if err := r.db.Create(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrUsernameTaken
		}
		return ErrDatabaseOperation
	}
	r.open(user)
	return nil
}

func (r *userRepository) GetByID(id uint) (*models.User, error) {
	key := r.cache.UserKey(id)
	if user, err := r.cache.GetUser(context.Background(), key); err == nil {
		r.open(user)
		return user, nil
	}

	var user models.User
	if err := r.db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, ErrDatabaseOperation
	}

	// Cache the sealed form so envelopes, not plaintext, sit in redis.
	if err := r.cache.CacheUser(context.Background(), key, &user); err != nil {
		log.Printf("failed to cache user %d: %v", user.ID, err)
	}

	r.open(&user)
	return &user, nil
}

func (r *userRepository) FindByUsername(username string) (*models.User, error) {
	return r.findByHash("username_hash", crypto.BlindIndex(username))
}

func (r *userRepository) FindByPhone(phone string) (*models.User, error) {
	return r.findByHash("phone_number_hash", crypto.BlindIndex(phone))
}

// findByHash is the only sanctioned equality lookup over encrypted
// attributes: the query term is digested and compared against the
// stored blind index, never against ciphertext.
func (r *userRepository) findByHash(column, digest string) (*models.User, error) {
	if digest == "" {
		return nil, ErrUserNotFound
	}
	var user models.User
	if err := r.db.Where(column+" = ?", digest).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, ErrDatabaseOperation
	}
	r.open(&user)
	return &user, nil
}

func (r *userRepository) FindUnverifiedByPhone(phone string) (*models.User, error) {
	digest := crypto.BlindIndex(phone)
	if digest == "" {
		return nil, ErrUserNotFound
	}
	var user models.User
	err := r.db.Where("phone_number_hash = ? AND phone_verified = ?", digest, false).
		First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, ErrDatabaseOperation
	}
	r.open(&user)
	return &user, nil
}

func (r *userRepository) Update(user *models.User) error {
	if err := r.seal(user); err != nil {
		return ErrDatabaseOperation
	}
	if err := r.db.Save(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrUsernameTaken
		}
		return ErrDatabaseOperation
	}

	if err := r.cache.InvalidateUser(context.Background(), user.ID); err != nil {
		log.Printf("failed to invalidate cache for user %d: %v", user.ID, err)
	}

	r.open(user)
	return nil
}

func (r *userRepository) Delete(id uint) error {
	result := r.db.Delete(&models.User{}, id)
	if result.Error != nil {
		return ErrDatabaseOperation
	}
	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}

	if err := r.cache.InvalidateUser(context.Background(), id); err != nil {
		log.Printf("failed to invalidate cache for user %d: %v", id, err)
	}
	return nil
}
