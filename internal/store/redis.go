package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// Redis stores values under "cart:<key>" with no expiry.
type Redis struct {
	client *redis.Client
}

// NewRedis wraps an existing client.
func NewRedis(client *redis.Client) *Redis {
	return &Redis{client: client}
}

func (r *Redis) Load(ctx context.Context, key string) ([]byte, error) {
	data, err := r.client.Get(ctx, redisKey(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("redis get failed: %w", err)
	}
	return data, nil
}

func (r *Redis) Save(ctx context.Context, key string, data []byte) error {
	if err := validKey(key); err != nil {
		return err
	}
	if err := r.client.Set(ctx, redisKey(key), data, 0).Err(); err != nil {
		return fmt.Errorf("redis set failed: %w", err)
	}
	return nil
}

func redisKey(key string) string {
	return fmt.Sprintf("cart:%s", key)
}
