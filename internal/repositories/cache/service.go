package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"kimlik/internal/models"

	"github.com/redis/go-redis/v9"
)

type CacheService struct {
	client *redis.Client
	ttl    time.Duration
}

func NewCacheService(client *redis.Client, defaultTTL time.Duration) *CacheService {
	return &CacheService{
		client: client,
		ttl:    defaultTTL,
	}
}

// Base operations
func (s *CacheService) Set(ctx context.Context, key string, value interface{}) error {
	return s.SetWithTTL(ctx, key, value, s.ttl)
}

func (s *CacheService) SetWithTTL(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal cache value: %w", err)
	}
	return s.client.Set(ctx, key, data, ttl).Err()
}

func (s *CacheService) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	data, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return false, nil
		}
		return false, fmt.Errorf("failed to get cache value: %w", err)
	}

	if err := json.Unmarshal(data, dest); err != nil {
		return false, fmt.Errorf("failed to unmarshal cache value: %w", err)
	}
	return true, nil
}

func (s *CacheService) Delete(ctx context.Context, keys ...string) error {
	return s.client.Del(ctx, keys...).Err()
}

// UserKey builds the cache key for a user record.
func (s *CacheService) UserKey(id uint) string {
	return fmt.Sprintf("user:id:%d", id)
}

// CacheUser stores a user in its sealed (encrypted) form. The cache
// must never hold plaintext identity attributes.
func (s *CacheService) CacheUser(ctx context.Context, key string, user *models.User) error {
	if user == nil {
		return errors.New("cannot cache nil user")
	}
	return s.Set(ctx, key, user)
}

// GetUser fetches a sealed user from the cache. The error return
// doubles as a miss signal.
func (s *CacheService) GetUser(ctx context.Context, key string) (*models.User, error) {
	var user models.User
	found, err := s.Get(ctx, key, &user)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, errors.New("cache miss")
	}
	return &user, nil
}

func (s *CacheService) InvalidateUser(ctx context.Context, id uint) error {
	return s.Delete(ctx, s.UserKey(id))
}

// Interest list caching (static lookup data, TTL-expired only).
const interestListKey = "interests:all"

func (s *CacheService) CacheInterests(ctx context.Context, interests []models.Interest) error {
	return s.SetWithTTL(ctx, interestListKey, interests, time.Hour)
}

func (s *CacheService) GetInterests(ctx context.Context) ([]models.Interest, error) {
	var interests []models.Interest
	found, err := s.Get(ctx, interestListKey, &interests)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, errors.New("cache miss")
	}
	return interests, nil
}

func (s *CacheService) HealthCheck(ctx context.Context) error {
	if err := s.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis connection failed: %w", err)
	}
	return nil
}

func (s *CacheService) FlushAll(ctx context.Context) error {
	return s.client.FlushAll(ctx).Err()
}

func (s *CacheService) Close() error {
	return s.client.Close()
}

// PoolStats exposes the underlying connection pool statistics.
func (s *CacheService) PoolStats() *redis.PoolStats {
	return s.client.PoolStats()
}
