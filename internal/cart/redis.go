package cart

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client, ttl: 30 * 24 * time.Hour}
}

func (r *RedisStore) Get(ctx context.Context, userID string) (*Cart, error) {
	data, err := r.client.Get(ctx, cartKey(userID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("redis get failed: %w", err)
	}

	var c Cart
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("unmarshal cart failed: %w", err)
	}
	return &c, nil
}

func (r *RedisStore) Set(ctx context.Context, userID string, c *Cart) error {
	data, err := json.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal cart failed: %w", err)
	}
	if err := r.client.Set(ctx, cartKey(userID), data, r.ttl).Err(); err != nil {
		return fmt.Errorf("redis set failed: %w", err)
	}
	return nil
}

func (r *RedisStore) Clear(ctx context.Context, userID string) error {
	if err := r.client.Del(ctx, cartKey(userID)).Err(); err != nil {
		return fmt.Errorf("redis delete failed: %w", err)
	}
	return nil
}

func cartKey(userID string) string {
	return fmt.Sprintf("cart:%s", userID)
}
