package redis

import (
	"context"
	"errors"
	"testing"
	"time"

	"newsdesk-service/internal/reports/core/domain"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingReporter struct {
	byDate   int
	timeline int
	best     int
	err      error
}

func (r *countingReporter) ByDate(ctx context.Context, date string) (domain.DateReport, error) {
	r.byDate++
	if r.err != nil {
		return nil, r.err
	}
	mean := 75.0
	return domain.DateReport{"Election": {"A": &mean, "B": nil}}, nil
}

func (r *countingReporter) Timeline(ctx context.Context, topic string) ([]domain.ChannelSeries, error) {
	r.timeline++
	if r.err != nil {
		return nil, r.err
	}
	return []domain.ChannelSeries{
		{Channel: "A", Audience: []domain.AudiencePoint{{Timestamp: 100, Value: 50}}},
	}, nil
}

func (r *countingReporter) BestSegments(ctx context.Context, topic string) ([]domain.ChannelSegments, error) {
	r.best++
	if r.err != nil {
		return nil, r.err
	}
	mean := 12.5
	return []domain.ChannelSegments{
		{Channel: "A", Segments: []domain.RankedSegment{{ID: 1, StartTS: 0, EndTS: 10, Audience: &mean}}},
	}, nil
}

type countingObserver struct {
	hits   map[string]int
	misses map[string]int
}

func newCountingObserver() *countingObserver {
	return &countingObserver{hits: map[string]int{}, misses: map[string]int{}}
}

func (o *countingObserver) CacheHit(report string)  { o.hits[report]++ }
func (o *countingObserver) CacheMiss(report string) { o.misses[report]++ }

func setup(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return mr, rdb
}

func TestCachedReporter_ByDate_HitAfterMiss(t *testing.T) {
	_, rdb := setup(t)
	next := &countingReporter{}
	obs := newCountingObserver()
	c := NewCachedReporter(next, rdb, time.Minute, zerolog.Nop(), obs)

	first, err := c.ByDate(context.Background(), "2020-01-01")
	require.NoError(t, err)
	second, err := c.ByDate(context.Background(), "2020-01-01")
	require.NoError(t, err)

	assert.Equal(t, 1, next.byDate)
	assert.Equal(t, 1, obs.misses["by_date"])
	assert.Equal(t, 1, obs.hits["by_date"])

	require.NotNil(t, second["Election"]["A"])
	assert.Equal(t, *first["Election"]["A"], *second["Election"]["A"])
	v, ok := second["Election"]["B"]
	assert.True(t, ok)
	assert.Nil(t, v)
}

func TestCachedReporter_TopicKeyIsCaseInsensitive(t *testing.T) {
	mr, rdb := setup(t)
	next := &countingReporter{}
	c := NewCachedReporter(next, rdb, time.Minute, zerolog.Nop(), nil)

	_, err := c.Timeline(context.Background(), "Election")
	require.NoError(t, err)
	out, err := c.Timeline(context.Background(), "ELECTION")
	require.NoError(t, err)

	assert.Equal(t, 1, next.timeline)
	assert.True(t, mr.Exists("newsdesk:report:0:timeline:election"))
	require.Len(t, out, 1)
	assert.Equal(t, "A", out[0].Channel)
	assert.Equal(t, []domain.AudiencePoint{{Timestamp: 100, Value: 50}}, out[0].Audience)
}

func TestCachedReporter_SetsTTL(t *testing.T) {
	mr, rdb := setup(t)
	c := NewCachedReporter(&countingReporter{}, rdb, 30*time.Second, zerolog.Nop(), nil)

	_, err := c.BestSegments(context.Background(), "Election")
	require.NoError(t, err)

	assert.Equal(t, 30*time.Second, mr.TTL("newsdesk:report:0:best_segments:election"))

	mr.FastForward(31 * time.Second)
	assert.False(t, mr.Exists("newsdesk:report:0:best_segments:election"))
}

func TestCachedReporter_InvalidateBumpsGeneration(t *testing.T) {
	_, rdb := setup(t)
	next := &countingReporter{}
	c := NewCachedReporter(next, rdb, time.Minute, zerolog.Nop(), nil)

	_, err := c.BestSegments(context.Background(), "Election")
	require.NoError(t, err)
	require.NoError(t, c.Invalidate(context.Background()))
	_, err = c.BestSegments(context.Background(), "Election")
	require.NoError(t, err)

	assert.Equal(t, 2, next.best)

	gen, err := NewGeneration(rdb).Current(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(1), gen)
}

func TestCachedReporter_ErrorsAreNotCached(t *testing.T) {
	mr, rdb := setup(t)
	boom := errors.New("db down")
	next := &countingReporter{err: boom}
	c := NewCachedReporter(next, rdb, time.Minute, zerolog.Nop(), nil)

	_, err := c.ByDate(context.Background(), "2020-01-01")
	require.ErrorIs(t, err, boom)
	_, err = c.ByDate(context.Background(), "2020-01-01")
	require.ErrorIs(t, err, boom)

	assert.Equal(t, 2, next.byDate)
	assert.Empty(t, mr.Keys())
}

func TestCachedReporter_EmptyParamBypassesCache(t *testing.T) {
	mr, rdb := setup(t)
	next := &countingReporter{}
	c := NewCachedReporter(next, rdb, time.Minute, zerolog.Nop(), nil)

	_, _ = c.Timeline(context.Background(), "")
	_, _ = c.Timeline(context.Background(), "")

	assert.Equal(t, 2, next.timeline)
	assert.Empty(t, mr.Keys())
}

func TestCachedReporter_RedisDownFallsThrough(t *testing.T) {
	mr, rdb := setup(t)
	next := &countingReporter{}
	c := NewCachedReporter(next, rdb, time.Minute, zerolog.Nop(), nil)
	mr.Close()

	out, err := c.ByDate(context.Background(), "2020-01-01")
	require.NoError(t, err)
	assert.Contains(t, out, "Election")
	assert.Equal(t, 1, next.byDate)
}

func TestCachedReporter_UndecodableEntryIsReplaced(t *testing.T) {
	mr, rdb := setup(t)
	require.NoError(t, mr.Set("newsdesk:report:0:by_date:2020-01-01", "{not json"))
	next := &countingReporter{}
	c := NewCachedReporter(next, rdb, time.Minute, zerolog.Nop(), nil)

	_, err := c.ByDate(context.Background(), "2020-01-01")
	require.NoError(t, err)
	assert.Equal(t, 1, next.byDate)

	raw, err := mr.Get("newsdesk:report:0:by_date:2020-01-01")
	require.NoError(t, err)
	assert.JSONEq(t, `{"Election":{"A":75,"B":null}}`, raw)
}

func TestGeneration_DefaultsToZero(t *testing.T) {
	_, rdb := setup(t)

	gen, err := NewGeneration(rdb).Current(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(0), gen)
}

func TestConnect(t *testing.T) {
	mr, _ := setup(t)

	rdb, err := Connect(context.Background(), "redis://"+mr.Addr()+"/0")
	require.NoError(t, err)
	defer rdb.Close()

	_, err = Connect(context.Background(), "not a url")
	assert.Error(t, err)
}
