package database

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"kanmind/internal/config"
)

// NewRedis creates a redis client from configuration. Returns an error
// when the server is unreachable; the caller decides whether that is
// fatal (the token cache is optional).
func NewRedis(cfg config.RedisConfig, log *zap.Logger) (*redis.Client, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}
	if cfg.Password != "" {
		opts.Password = cfg.Password
	}
	opts.DB = cfg.DB

	client := redis.NewClient(opts)

	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, err
	}

	log.Info("Redis connection established successfully",
		zap.String("addr", opts.Addr),
		zap.Int("db", opts.DB),
	)
	return client, nil
}

// RedisTokenCache caches token key to user ID lookups so that every
// authenticated request does not hit the database.
type RedisTokenCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisTokenCache creates a RedisTokenCache with the given entry TTL
func NewRedisTokenCache(client *redis.Client, ttl time.Duration) *RedisTokenCache {
	return &RedisTokenCache{client: client, ttl: ttl}
}

func (c *RedisTokenCache) cacheKey(key string) string {
	return "auth_token:" + key
}

// Get returns the cached user ID for a token key, if present
func (c *RedisTokenCache) Get(ctx context.Context, key string) (uuid.UUID, bool) {
	val, err := c.client.Get(ctx, c.cacheKey(key)).Result()
	if err != nil {
		return uuid.Nil, false
	}
	userID, err := uuid.Parse(val)
	if err != nil {
		return uuid.Nil, false
	}
	return userID, true
}

// Set stores a token key to user ID mapping. The entry expires with
// the token: when the remaining lifetime is shorter than the configured
// cache TTL, the shorter duration wins.
func (c *RedisTokenCache) Set(ctx context.Context, key string, userID uuid.UUID, ttl time.Duration) {
	entryTTL := c.ttl
	if ttl > 0 && (entryTTL == 0 || ttl < entryTTL) {
		entryTTL = ttl
	}
	c.client.Set(ctx, c.cacheKey(key), userID.String(), entryTTL)
}

// Delete evicts a token key from the cache
func (c *RedisTokenCache) Delete(ctx context.Context, key string) {
	c.client.Del(ctx, c.cacheKey(key))
}
