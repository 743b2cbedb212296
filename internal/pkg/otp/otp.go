package otp

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/redis/go-redis/v9"
)

var ErrNotFound = errors.New("otp not found or expired")

const keyPrefix = "otp:"

// Generate returns a 4-digit one-time password, zero-padded.
func Generate() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(10000))
	if err != nil {
		return "", fmt.Errorf("rand.Int -> %w", err)
	}

	return fmt.Sprintf("%04d", n.Int64()), nil
}

// RedisStore keeps pending one-time passwords keyed by student ID with a TTL,
// so unverified codes expire on their own.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{
		client: client,
		ttl:    ttl,
	}
}

func (s *RedisStore) Set(ctx context.Context, studentID, code string) error {
	if err := s.client.Set(ctx, keyPrefix+studentID, code, s.ttl).Err(); err != nil {
		return fmt.Errorf("redis.Set -> %w", err)
	}

	return nil
}

func (s *RedisStore) Get(ctx context.Context, studentID string) (string, error) {
	code, err := s.client.Get(ctx, keyPrefix+studentID).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("redis.Get -> %w", err)
	}

	return code, nil
}

func (s *RedisStore) Delete(ctx context.Context, studentID string) error {
	if err := s.client.Del(ctx, keyPrefix+studentID).Err(); err != nil {
		return fmt.Errorf("redis.Del -> %w", err)
	}

	return nil
}
