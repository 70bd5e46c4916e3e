package repository

import (
	"context"
	"encoding/json"
	"time"

	"github.com/example/craftshop/pkg/config"
	"github.com/go-redis/redis/v8"
)

type RedisRepository struct {
	client *redis.Client
	config *config.RedisConfig
}

func NewRedisRepository(cfg *config.RedisConfig) *RedisRepository {
	return &RedisRepository{
		client: redis.NewClient(&redis.Options{
			Addr:     cfg.Addr,
			Password: cfg.Password,
			DB:       cfg.DB,
			PoolSize: cfg.PoolSize,
		}),
		config: cfg,
	}
}

func (r *RedisRepository) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

func (r *RedisRepository) Del(ctx context.Context, keys ...string) error {
	return r.client.Del(ctx, keys...).Err()
}

func (r *RedisRepository) SetJSON(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, key, data, expiration).Err()
}

func (r *RedisRepository) GetJSON(ctx context.Context, key string, dest interface{}) error {
	data, err := r.client.Get(ctx, key).Result()
	if err != nil {
		return err
	}
	return json.Unmarshal([]byte(data), dest)
}

func (r *RedisRepository) Close() error {
	return r.client.Close()
}

const (
	primaryImageKey   = "catalog:primary_images"
	reviewCountKey    = "catalog:review_counts"
	catalogOverlayTTL = 10 * time.Minute
)

// CachePrimaryImages stores the slug -> image URL overlay resolved from
// product_media.
func (r *RedisRepository) CachePrimaryImages(ctx context.Context, images map[string]string) error {
	return r.SetJSON(ctx, primaryImageKey, images, catalogOverlayTTL)
}

func (r *RedisRepository) GetPrimaryImages(ctx context.Context) (map[string]string, error) {
	var images map[string]string
	if err := r.GetJSON(ctx, primaryImageKey, &images); err != nil {
		return nil, err
	}
	return images, nil
}

func (r *RedisRepository) CacheReviewCounts(ctx context.Context, counts map[string]int64) error {
	return r.SetJSON(ctx, reviewCountKey, counts, catalogOverlayTTL)
}

func (r *RedisRepository) GetReviewCounts(ctx context.Context) (map[string]int64, error) {
	var counts map[string]int64
	if err := r.GetJSON(ctx, reviewCountKey, &counts); err != nil {
		return nil, err
	}
	return counts, nil
}

// InvalidateCatalogOverlays drops cached image and review-count overlays,
// called after media imports and new reviews.
func (r *RedisRepository) InvalidateCatalogOverlays(ctx context.Context) error {
	return r.Del(ctx, primaryImageKey, reviewCountKey)
}
