package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/redis/go-redis/v9"
)

var (
	cacheHits = promauto.NewCounter(prometheus.CounterOpts{
		Name: "clipstream_cache_hits_total",
		Help: "Total Redis cache hits.",
	})
	cacheMisses = promauto.NewCounter(prometheus.CounterOpts{
		Name: "clipstream_cache_misses_total",
		Help: "Total Redis cache misses.",
	})
)

// ChannelCacheTTL bounds how stale a cached channel page may get between
// invalidations.
const ChannelCacheTTL = 5 * time.Minute

// CacheService provides a Redis cache-aside layer for channel lookups.
// Video reads are never cached: fetching a video bumps its view counter,
// so every fetch must reach the database.
type CacheService struct {
	rdb *redis.Client
}

// NewCacheService creates a new CacheService. If redisURL is empty or the
// connection fails, it returns a CacheService with a nil client (cache
// operations become no-ops).
func NewCacheService(redisURL string) *CacheService {
	if redisURL == "" {
		log.Println("redis: no URL configured, caching disabled")
		return &CacheService{}
	}

	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		log.Printf("redis: invalid URL %q, caching disabled: %v", redisURL, err)
		return &CacheService{}
	}

	rdb := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Printf("redis: connection failed, caching disabled: %v", err)
		return &CacheService{}
	}

	log.Println("redis: connected, caching enabled")
	return &CacheService{rdb: rdb}
}

// NewCacheServiceWithClient wraps an existing client (used by tests).
func NewCacheServiceWithClient(rdb *redis.Client) *CacheService {
	return &CacheService{rdb: rdb}
}

// Client returns the underlying Redis client (for health checks). May be nil.
func (c *CacheService) Client() *redis.Client {
	return c.rdb
}

// GetChannel retrieves a cached channel response. Returns nil if not
// cached or the cache is disabled.
func (c *CacheService) GetChannel(ctx context.Context, channelID string) ([]byte, error) {
	if c.rdb == nil {
		return nil, nil
	}
	data, err := c.rdb.Get(ctx, channelKey(channelID)).Bytes()
	if err == redis.Nil {
		cacheMisses.Inc()
		return nil, nil
	}
	if err == nil {
		cacheHits.Inc()
	}
	return data, err
}

// SetChannel stores a channel response in cache.
func (c *CacheService) SetChannel(ctx context.Context, channelID string, data interface{}) error {
	if c.rdb == nil {
		return nil
	}
	b, err := json.Marshal(data)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, channelKey(channelID), b, ChannelCacheTTL).Err()
}

// InvalidateChannel removes a channel from cache. Called after any
// mutation that changes what the channel page shows: subscription
// toggles, video create/update/delete.
func (c *CacheService) InvalidateChannel(ctx context.Context, channelID string) error {
	if c.rdb == nil {
		return nil
	}
	return c.rdb.Del(ctx, channelKey(channelID)).Err()
}

// Close shuts down the Redis connection.
func (c *CacheService) Close() error {
	if c.rdb == nil {
		return nil
	}
	return c.rdb.Close()
}

func channelKey(channelID string) string {
	return fmt.Sprintf("channel:%s", channelID)
}
