package cache

import (
	"context"
	"time"

	"github.com/darkr4m/actually-star-k9/core/config"
	"github.com/darkr4m/actually-star-k9/core/logger"

	"github.com/redis/go-redis/v9"
)

const tokenBlacklistPrefix = "token_blacklist:"

// Cache provides the token blacklist used to invalidate JWTs on logout.
type Cache interface {
	AddToTokenBlacklist(ctx context.Context, token string, ttl time.Duration) error
	IsTokenBlacklisted(ctx context.Context, token string) (bool, error)
	Close() error
}

type redisCache struct {
	client *redis.Client
}

// NewRedisCache connects to Redis. When no address is configured a no-op
// cache is returned so the API still runs without Redis (logout then only
// relies on token expiry).
func NewRedisCache(cfg config.RedisConfig) Cache {
	if cfg.Addr == "" {
		logger.Warn("Cache:Init:Skipped", "reason", "REDIS_ADDR not set, token blacklist disabled")
		return &noopCache{}
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		logger.Error("Cache:Init:Ping:Error", "error", err)
		return &noopCache{}
	}

	logger.Info("Cache:Init:Success", "addr", cfg.Addr)
	return &redisCache{client: client}
}

func (c *redisCache) AddToTokenBlacklist(ctx context.Context, token string, ttl time.Duration) error {
	return c.client.Set(ctx, tokenBlacklistPrefix+token, "1", ttl).Err()
}

func (c *redisCache) IsTokenBlacklisted(ctx context.Context, token string) (bool, error) {
	n, err := c.client.Exists(ctx, tokenBlacklistPrefix+token).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (c *redisCache) Close() error {
	return c.client.Close()
}

type noopCache struct{}

func (n *noopCache) AddToTokenBlacklist(ctx context.Context, token string, ttl time.Duration) error {
	return nil
}

func (n *noopCache) IsTokenBlacklisted(ctx context.Context, token string) (bool, error) {
	return false, nil
}

func (n *noopCache) Close() error {
	return nil
}
