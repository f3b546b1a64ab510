package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	apperrors "payment-admin/pkg/errors"
)

type RedisCredentialRepository struct {
	client *redis.Client
	prefix string
}

func NewRedisCredentialRepository(client *redis.Client, prefix string) CredentialRepositoryInterface {
	return &RedisCredentialRepository{client: client, prefix: prefix}
}

func (r *RedisCredentialRepository) Get(ctx context.Context, sessionID string) (string, error) {
	token, err := r.client.Get(ctx, credentialKey(r.prefix, sessionID)).Result()
	if errors.Is(err, redis.Nil) {
		return "", apperrors.ErrCredentialNotFound
	}
	if err != nil {
		return "", fmt.Errorf("redis get credential: %w", err)
	}
	if token == "" {
		return "", apperrors.ErrCredentialNotFound
	}
	return token, nil
}

// Set stores the token. A zero ttl keeps it until Delete.
func (r *RedisCredentialRepository) Set(ctx context.Context, sessionID, token string, ttl time.Duration) error {
	if err := r.client.Set(ctx, credentialKey(r.prefix, sessionID), token, ttl).Err(); err != nil {
		return fmt.Errorf("redis set credential: %w", err)
	}
	return nil
}

func (r *RedisCredentialRepository) Delete(ctx context.Context, sessionID string) error {
	if err := r.client.Del(ctx, credentialKey(r.prefix, sessionID)).Err(); err != nil {
		return fmt.Errorf("redis delete credential: %w", err)
	}
	return nil
}
