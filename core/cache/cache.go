package cache

import (
	"context"
	"time"

	"community-events-api/core/constants"
	"community-events-api/core/logger"

	"github.com/redis/go-redis/v9"
)

var client *redis.Client

type CacheConfig struct {
	Addr     string
	Password string
	DB       int
}

// InitCache connects the shared redis client. The cache is best-effort: a
// failed connection is surfaced once so the caller can decide to run without it.
func InitCache(cfg CacheConfig) error {
	client = redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), constants.DefaultTimeout)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		logger.Error("Failed to connect to redis", "addr", cfg.Addr, "error", err)
		return err
	}

	logger.Info("Redis cache initialized", "addr", cfg.Addr, "db", cfg.DB)
	return nil
}

func Close() {
	if client != nil {
		_ = client.Close()
	}
}

// AddToTokenBlacklist marks a token id as revoked until its natural expiry.
func AddToTokenBlacklist(ctx context.Context, tokenID string, ttl time.Duration) error {
	if client == nil {
		return nil
	}
	return client.Set(ctx, constants.RedisKeyTokenBlacklist+tokenID, "1", ttl).Err()
}

// IsTokenBlacklisted reports whether a token id has been revoked. Redis being
// unreachable fails open: the token signature check still applies.
func IsTokenBlacklisted(ctx context.Context, tokenID string) bool {
	if client == nil {
		return false
	}
	n, err := client.Exists(ctx, constants.RedisKeyTokenBlacklist+tokenID).Result()
	if err != nil {
		logger.Warn("Token blacklist check failed", "error", err)
		return false
	}
	return n > 0
}
