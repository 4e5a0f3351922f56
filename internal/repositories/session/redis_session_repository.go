package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/SscSPs/book_catalog_api/internal/apperrors"
	portsrepo "github.com/SscSPs/book_catalog_api/internal/core/ports/repositories"
	"github.com/redis/go-redis/v9"
)

const (
	keyPrefix = "sess:"
	opTimeout = 3 * time.Second
)

// RedisSessionRepository keeps token -> user id mappings in Redis with a TTL.
type RedisSessionRepository struct {
	client redis.UniversalClient
}

// NewRedisSessionRepository wraps an existing Redis client.
func NewRedisSessionRepository(client redis.UniversalClient) *RedisSessionRepository {
	return &RedisSessionRepository{client: client}
}

var _ portsrepo.SessionRepository = (*RedisSessionRepository)(nil)

func sessionKey(token string) string {
	return keyPrefix + token
}

func (r *RedisSessionRepository) CreateSession(ctx context.Context, token, userID string, ttl time.Duration) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()
	if err := r.client.Set(ctx, sessionKey(token), userID, ttl).Err(); err != nil {
		return fmt.Errorf("failed to store session: %w", err)
	}
	return nil
}

func (r *RedisSessionRepository) FindSessionUserID(ctx context.Context, token string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()
	val, err := r.client.Get(ctx, sessionKey(token)).Result()
	if errors.Is(err, redis.Nil) {
		return "", apperrors.ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("failed to read session: %w", err)
	}
	return val, nil
}

func (r *RedisSessionRepository) DeleteSession(ctx context.Context, token string) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()
	if err := r.client.Del(ctx, sessionKey(token)).Err(); err != nil && !errors.Is(err, redis.Nil) {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}
