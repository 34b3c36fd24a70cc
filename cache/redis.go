package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// Redis is a Redis-backed stem cache. Unlike the in-process cache it is shared
// across processes, which makes it useful for fleets of workers stemming the
// same corpus.
type Redis struct {
	client    *redis.Client
	ttl       time.Duration
	keyPrefix string
}

// RedisConfig holds configuration for the Redis stem cache.
type RedisConfig struct {
	URL       string // Redis connection URL (e.g., "redis://localhost:6379")
	TTL       int    // TTL in seconds (0 = entries never expire)
	KeyPrefix string // Prefix for all keys (default: "stem:")
}

// NewRedis creates a Redis stem cache with the given configuration.
func NewRedis(cfg RedisConfig) (*Redis, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	client := redis.NewClient(opts)

	// Test connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return NewRedisFromClient(client, cfg.TTL, cfg.KeyPrefix), nil
}

// NewRedisFromClient creates a Redis stem cache from an existing client.
func NewRedisFromClient(client *redis.Client, ttlSeconds int, keyPrefix string) *Redis {
	if keyPrefix == "" {
		keyPrefix = "stem:"
	}

	ttl := time.Duration(ttlSeconds) * time.Second
	if ttlSeconds <= 0 {
		ttl = 0
	}

	return &Redis{
		client:    client,
		ttl:       ttl,
		keyPrefix: keyPrefix,
	}
}

// Get retrieves a stemmed root from Redis.
func (c *Redis) Get(key string) (string, bool) {
	ctx := context.Background()
	val, err := c.client.Get(ctx, c.keyPrefix+key).Result()
	if err == redis.Nil {
		return "", false
	}
	if err != nil {
		// Treat transport errors as a cache miss; the caller recomputes.
		return "", false
	}
	return val, true
}

// Set stores a stemmed root in Redis.
func (c *Redis) Set(key string, value string) error {
	ctx := context.Background()
	return c.client.Set(ctx, c.keyPrefix+key, value, c.ttl).Err()
}

// Close closes the Redis connection.
func (c *Redis) Close() error {
	return c.client.Close()
}

// Ping tests the Redis connection.
func (c *Redis) Ping() error {
	ctx := context.Background()
	return c.client.Ping(ctx).Err()
}

// Verify Redis implements StemCache
var _ StemCache = (*Redis)(nil)
