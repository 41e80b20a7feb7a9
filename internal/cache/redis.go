package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/v-selfnet/bistro-boss-server/internal/domain"
)

const (
	menuKey    = "catalog:menu"
	reviewsKey = "catalog:reviews"
)

func NewRedisCache(client *redis.Client) *RedisCache {
	return &RedisCache{
		client:  client,
		baseTTL: 15 * time.Minute,
	}
}

type RedisCache struct {
	client  *redis.Client
	baseTTL time.Duration
}

func (r *RedisCache) GetMenu(ctx context.Context) ([]domain.MenuItem, error) {
	var items []domain.MenuItem
	if err := r.get(ctx, menuKey, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *RedisCache) SetMenu(ctx context.Context, items []domain.MenuItem) error {
	return r.set(ctx, menuKey, items)
}

func (r *RedisCache) GetReviews(ctx context.Context) ([]domain.Review, error) {
	var reviews []domain.Review
	if err := r.get(ctx, reviewsKey, &reviews); err != nil {
		return nil, err
	}
	return reviews, nil
}

func (r *RedisCache) SetReviews(ctx context.Context, reviews []domain.Review) error {
	return r.set(ctx, reviewsKey, reviews)
}

func (r *RedisCache) get(ctx context.Context, key string, dest any) error {
	data, err := r.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return ErrCacheMiss
	}
	if err != nil {
		return fmt.Errorf("redis get failed: %w", err)
	}

	if err := json.Unmarshal(data, dest); err != nil {
		return fmt.Errorf("unmarshal %s failed: %w", key, err)
	}
	return nil
}

func (r *RedisCache) set(ctx context.Context, key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("marshal %s failed: %w", key, err)
	}

	// Jitter spreads expirations so both keys do not fall out together.
	jitter := time.Duration(rand.Intn(5)) * time.Minute
	if err := r.client.Set(ctx, key, data, r.baseTTL+jitter).Err(); err != nil {
		return fmt.Errorf("redis set failed: %w", err)
	}
	return nil
}
