package repository

import (
	"context"
	"encoding/json"
	"time"

	"github.com/codewithdark-git/khanana/pkg/config"
	"github.com/codewithdark-git/khanana/pkg/models"
	"github.com/go-redis/redis/v8"
)

const (
	productListKey     = "catalog:products"
	featuredListKey    = "catalog:products:featured"
	settingsKey        = "site:settings"
	catalogCacheExpiry = 10 * time.Minute
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

func (r *RedisRepository) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	return r.client.Set(ctx, key, value, expiration).Err()
}

func (r *RedisRepository) Get(ctx context.Context, key string) (string, error) {
	return r.client.Get(ctx, key).Result()
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

// Client exposes the underlying connection for collaborators that
// manage their own keys, like the session-token store.
func (r *RedisRepository) Client() *redis.Client {
	return r.client
}

// Catalog cache. The storefront reads the product list far more often
// than admins change it, so listings are served from Redis and every
// admin mutation drops both keys.

func (r *RedisRepository) CacheProducts(ctx context.Context, featuredOnly bool, products []models.Product) error {
	return r.SetJSON(ctx, productCacheKey(featuredOnly), products, catalogCacheExpiry)
}

func (r *RedisRepository) GetCachedProducts(ctx context.Context, featuredOnly bool) ([]models.Product, error) {
	var products []models.Product
	if err := r.GetJSON(ctx, productCacheKey(featuredOnly), &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (r *RedisRepository) InvalidateProducts(ctx context.Context) error {
	return r.Del(ctx, productListKey, featuredListKey)
}

func productCacheKey(featuredOnly bool) string {
	if featuredOnly {
		return featuredListKey
	}
	return productListKey
}

// Settings cache.

func (r *RedisRepository) CacheSettings(ctx context.Context, settings *models.SiteSettings) error {
	return r.SetJSON(ctx, settingsKey, settings, catalogCacheExpiry)
}

func (r *RedisRepository) GetCachedSettings(ctx context.Context) (*models.SiteSettings, error) {
	var settings models.SiteSettings
	if err := r.GetJSON(ctx, settingsKey, &settings); err != nil {
		return nil, err
	}
	return &settings, nil
}

func (r *RedisRepository) InvalidateSettings(ctx context.Context) error {
	return r.Del(ctx, settingsKey)
}
