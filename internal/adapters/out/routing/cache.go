package routing

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"freightmatch/internal/core/domain/model/kernel"

	"github.com/redis/go-redis/v9"
)

// RedisEstimateCache caches route estimates in Redis keyed by the coordinate
// pair. Cache failures degrade to misses: the estimator always has the
// provider or the formula behind it, so a broken cache only costs latency.
type RedisEstimateCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisEstimateCache creates a cache on the given Redis address with the
// provided entry TTL.
func NewRedisEstimateCache(addr, password string, ttl time.Duration) *RedisEstimateCache {
	return &RedisEstimateCache{
		client: redis.NewClient(&redis.Options{Addr: addr, Password: password}),
		ttl:    ttl,
	}
}

// Get returns the cached estimate and true when present and fresh.
func (c *RedisEstimateCache) Get(ctx context.Context, origin, destination kernel.GeoPoint) (kernel.RouteEstimate, bool) {
	raw, err := c.client.Get(ctx, cacheKey(origin, destination)).Bytes()
	if err != nil {
		return kernel.RouteEstimate{}, false
	}

	var estimate kernel.RouteEstimate
	if err = json.Unmarshal(raw, &estimate); err != nil {
		return kernel.RouteEstimate{}, false
	}

	return estimate, true
}

// Set stores an estimate for the coordinate pair.
func (c *RedisEstimateCache) Set(ctx context.Context, origin, destination kernel.GeoPoint, estimate kernel.RouteEstimate) {
	raw, err := json.Marshal(estimate)
	if err != nil {
		return
	}

	_ = c.client.Set(ctx, cacheKey(origin, destination), raw, c.ttl).Err()
}

// Close releases the underlying Redis connection.
func (c *RedisEstimateCache) Close() error {
	return c.client.Close()
}

func cacheKey(origin, destination kernel.GeoPoint) string {
	return fmt.Sprintf("route:%.6f,%.6f->%.6f,%.6f", origin.Lat(), origin.Lon(), destination.Lat(), destination.Lon())
}
