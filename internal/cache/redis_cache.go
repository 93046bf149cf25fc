package cache

import (
	"context"
	"errors"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	// DefaultRedisAddr is used when REDIS_ADDR is unset
	DefaultRedisAddr = "localhost:6379"

	// DefaultRedisPrefix namespaces board entries in a shared instance
	DefaultRedisPrefix = "treni:board:"

	redisOpTimeout = 2 * time.Second
)

// RedisCache shares board payloads between processes, e.g. several
// `treni serve` replicas behind one load balancer
type RedisCache struct {
	rdb    redis.Cmdable
	ttl    time.Duration
	prefix string
}

// NewRedisClient creates a redis client for addr, falling back to REDIS_ADDR
// and then DefaultRedisAddr
func NewRedisClient(addr string) *redis.Client {
	if addr == "" {
		addr = os.Getenv("REDIS_ADDR")
	}
	if addr == "" {
		addr = DefaultRedisAddr
	}

	return redis.NewClient(&redis.Options{
		Addr: addr,
		DB:   0,
	})
}

// NewRedisCache creates a cache backed by rdb. An empty prefix uses
// DefaultRedisPrefix.
func NewRedisCache(rdb redis.Cmdable, ttl time.Duration, prefix string) *RedisCache {
	if prefix == "" {
		prefix = DefaultRedisPrefix
	}
	return &RedisCache{
		rdb:    rdb,
		ttl:    ttl,
		prefix: prefix,
	}
}

// Ping checks the connection
func (c *RedisCache) Ping(ctx context.Context) error {
	return c.rdb.Ping(ctx).Err()
}

func (c *RedisCache) key(key string) string {
	return c.prefix + Key(key)
}

// Get retrieves a value. Connection failures count as a miss.
func (c *RedisCache) Get(key string) ([]byte, bool) {
	ctx, cancel := context.WithTimeout(context.Background(), redisOpTimeout)
	defer cancel()

	data, err := c.rdb.Get(ctx, c.key(key)).Bytes()
	if err != nil {
		return nil, false
	}
	return data, true
}

// Set stores a value with the cache TTL
func (c *RedisCache) Set(key string, value []byte) error {
	ctx, cancel := context.WithTimeout(context.Background(), redisOpTimeout)
	defer cancel()

	return c.rdb.Set(ctx, c.key(key), value, c.ttl).Err()
}

// Delete removes a single entry
func (c *RedisCache) Delete(key string) error {
	ctx, cancel := context.WithTimeout(context.Background(), redisOpTimeout)
	defer cancel()

	err := c.rdb.Del(ctx, c.key(key)).Err()
	if errors.Is(err, redis.Nil) {
		return nil
	}
	return err
}
