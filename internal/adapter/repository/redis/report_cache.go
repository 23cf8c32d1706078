package redis

import (
	"context"
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/redis/go-redis/v9"
)

var (
	cacheHits = promauto.NewCounter(prometheus.CounterOpts{
		Name: "fluxocaixa_report_cache_hits_total",
		Help: "Total number of report cache hits",
	})

	cacheMisses = promauto.NewCounter(prometheus.CounterOpts{
		Name: "fluxocaixa_report_cache_misses_total",
		Help: "Total number of report cache misses",
	})
)

// ReportCache implements usecase.ReportCache using Redis. Reports are pure
// functions of their inputs, so a cached report never goes stale inside its
// TTL unless the underlying ledgers change.
type ReportCache struct {
	client *redis.Client
	prefix string
}

// NewReportCache creates a new ReportCache.
func NewReportCache(client *redis.Client) *ReportCache {
	return &ReportCache{
		client: client,
		prefix: "report:",
	}
}

// Get retrieves a serialized report by key. A miss is (nil, nil).
func (c *ReportCache) Get(ctx context.Context, key string) ([]byte, error) {
	raw, err := c.client.Get(ctx, c.prefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		cacheMisses.Inc()
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	cacheHits.Inc()
	return raw, nil
}

// Set stores a serialized report with TTL.
func (c *ReportCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return c.client.Set(ctx, c.prefix+key, value, ttl).Err()
}

// Delete removes a cached report.
func (c *ReportCache) Delete(ctx context.Context, key string) error {
	return c.client.Del(ctx, c.prefix+key).Err()
}
