package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"newsdesk-service/internal/reports/core/domain"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

const (
	keyPrefix     = "newsdesk:report"
	generationKey = keyPrefix + ":gen"

	DefaultTTL = 5 * time.Minute
)

type Reporter interface {
	ByDate(ctx context.Context, date string) (domain.DateReport, error)
	Timeline(ctx context.Context, topic string) ([]domain.ChannelSeries, error)
	BestSegments(ctx context.Context, topic string) ([]domain.ChannelSegments, error)
}

// Observer receives cache hit and miss notifications.
type Observer interface {
	CacheHit(report string)
	CacheMiss(report string)
}

// Generation is the version counter embedded in every cache key. Bumping it
// makes every cached report unreachable at once.
type Generation struct {
	rdb *redis.Client
}

func NewGeneration(rdb *redis.Client) *Generation {
	return &Generation{rdb: rdb}
}

func (g *Generation) Current(ctx context.Context) (int64, error) {
	n, err := g.rdb.Get(ctx, generationKey).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	return n, err
}

// Invalidate drops every cached report. Called after each bulk load.
func (g *Generation) Invalidate(ctx context.Context) error {
	return g.rdb.Incr(ctx, generationKey).Err()
}

// CachedReporter is a cache-aside decorator over a Reporter. Redis failures
// are logged and the call falls through to the wrapped reporter.
type CachedReporter struct {
	next     Reporter
	rdb      *redis.Client
	gen      *Generation
	ttl      time.Duration
	log      zerolog.Logger
	observer Observer
}

func NewCachedReporter(next Reporter, rdb *redis.Client, ttl time.Duration, log zerolog.Logger, observer Observer) *CachedReporter {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &CachedReporter{
		next:     next,
		rdb:      rdb,
		gen:      NewGeneration(rdb),
		ttl:      ttl,
		log:      log,
		observer: observer,
	}
}

func (c *CachedReporter) Invalidate(ctx context.Context) error {
	return c.gen.Invalidate(ctx)
}

func (c *CachedReporter) ByDate(ctx context.Context, date string) (domain.DateReport, error) {
	return cached(ctx, c, "by_date", date, func() (domain.DateReport, error) {
		return c.next.ByDate(ctx, date)
	})
}

func (c *CachedReporter) Timeline(ctx context.Context, topic string) ([]domain.ChannelSeries, error) {
	return cached(ctx, c, "timeline", strings.ToLower(topic), func() ([]domain.ChannelSeries, error) {
		return c.next.Timeline(ctx, topic)
	})
}

func (c *CachedReporter) BestSegments(ctx context.Context, topic string) ([]domain.ChannelSegments, error) {
	return cached(ctx, c, "best_segments", strings.ToLower(topic), func() ([]domain.ChannelSegments, error) {
		return c.next.BestSegments(ctx, topic)
	})
}

func cached[T any](ctx context.Context, c *CachedReporter, report, param string, load func() (T, error)) (T, error) {
	// empty params never reach the store, nothing to cache
	if param == "" {
		return load()
	}

	gen, err := c.gen.Current(ctx)
	if err != nil {
		c.log.Warn().Err(err).Str("report", report).Msg("report cache: read generation failed")
		return load()
	}
	key := fmt.Sprintf("%s:%d:%s:%s", keyPrefix, gen, report, param)

	raw, err := c.rdb.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		var out T
		if jerr := json.Unmarshal(raw, &out); jerr == nil {
			c.hit(report)
			return out, nil
		}
		c.log.Warn().Str("key", key).Msg("report cache: dropping undecodable entry")
	case !errors.Is(err, redis.Nil):
		c.log.Warn().Err(err).Str("key", key).Msg("report cache: get failed")
	}
	c.miss(report)

	out, err := load()
	if err != nil {
		return out, err
	}

	payload, err := json.Marshal(out)
	if err != nil {
		c.log.Warn().Err(err).Str("key", key).Msg("report cache: encode failed")
		return out, nil
	}
	if err := c.rdb.Set(ctx, key, payload, c.ttl).Err(); err != nil {
		c.log.Warn().Err(err).Str("key", key).Msg("report cache: set failed")
	}
	return out, nil
}

func (c *CachedReporter) hit(report string) {
	if c.observer != nil {
		c.observer.CacheHit(report)
	}
}

func (c *CachedReporter) miss(report string) {
	if c.observer != nil {
		c.observer.CacheMiss(report)
	}
}

// Connect parses a redis URL and pings the server.
func Connect(ctx context.Context, url string) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}

	rdb := redis.NewClient(opts)

	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return rdb, nil
}
