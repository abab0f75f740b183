package cache

import (
	"context"
	"time"

	"food-order-service/internal/domain"
	"food-order-service/internal/infra"

	"github.com/go-redis/redis/v8"
	log "github.com/sirupsen/logrus"
)

const cachedExists = "1"

// RedisClient is the subset of redis.Cmdable used by the cache.
type RedisClient interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
}

var _ RedisClient = (*redis.Client)(nil)

// DirectoryCache remembers positive existence answers from the directory.
// Negative answers and history queries always reach the wrapped client.
type DirectoryCache struct {
	next infra.DirectoryClientInterface
	rdb  RedisClient
	ttl  time.Duration
}

func NewDirectoryCache(next infra.DirectoryClientInterface, rdb RedisClient, ttl time.Duration) *DirectoryCache {
	return &DirectoryCache{next: next, rdb: rdb, ttl: ttl}
}

func (c *DirectoryCache) VendorExists(ctx context.Context, vendorID string) (bool, error) {
	return c.exists(ctx, "directory:vendor:"+vendorID, func() (bool, error) {
		return c.next.VendorExists(ctx, vendorID)
	})
}

func (c *DirectoryCache) CustomerExists(ctx context.Context, customerID string) (bool, error) {
	return c.exists(ctx, "directory:customer:"+customerID, func() (bool, error) {
		return c.next.CustomerExists(ctx, customerID)
	})
}

// OrdersByCustomerID is never cached. It completes the directory contract only.
func (c *DirectoryCache) OrdersByCustomerID(ctx context.Context, customerID string) ([]domain.Order, error) {
	return c.next.OrdersByCustomerID(ctx, customerID)
}

func (c *DirectoryCache) exists(ctx context.Context, key string, load func() (bool, error)) (bool, error) {
	cached, err := c.rdb.Get(ctx, key).Result()
	if err == nil && cached == cachedExists {
		return true, nil
	}
	if err != nil && err != redis.Nil {
		log.WithError(err).WithField("key", key).Warn("directory cache read failed")
	}

	ok, err := load()
	if err != nil {
		return false, err
	}
	if ok {
		if err := c.rdb.Set(ctx, key, cachedExists, c.ttl).Err(); err != nil {
			log.WithError(err).WithField("key", key).Warn("directory cache write failed")
		}
	}
	return ok, nil
}

var _ infra.DirectoryClientInterface = (*DirectoryCache)(nil)
