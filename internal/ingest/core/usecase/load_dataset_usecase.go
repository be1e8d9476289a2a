package usecase

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"unicode/utf8"

	"newsdesk-service/internal/ingest/core/domain"
	"newsdesk-service/internal/ingest/core/ports"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

var (
	ErrInvalidRecord    = errors.New("invalid record")
	ErrDuplicateReading = errors.New("duplicate audience reading")
)

const (
	FamilySegments = "segments"
	FamilyAudience = "audience"

	maxTopicNameLen = 200
)

type LoadDatasetUseCase struct {
	repo        ports.DatasetRepositoryPort
	channels    []string
	invalidator ports.CacheInvalidatorPort
	log         zerolog.Logger
}

// NewLoadDatasetUseCase builds the loader. channels is the ordered channel
// list: audience value arrays are matched to it by index. invalidator may be
// nil when no report cache is configured.
func NewLoadDatasetUseCase(repo ports.DatasetRepositoryPort, channels []string, invalidator ports.CacheInvalidatorPort, log zerolog.Logger) *LoadDatasetUseCase {
	return &LoadDatasetUseCase{
		repo:        repo,
		channels:    channels,
		invalidator: invalidator,
		log:         log,
	}
}

func (uc *LoadDatasetUseCase) BootstrapChannels(ctx context.Context) (map[string]int64, error) {
	ids, err := uc.repo.EnsureChannels(ctx, uc.channels)
	if err != nil {
		return nil, fmt.Errorf("bootstrap channels: %w", err)
	}
	return ids, nil
}

// LoadSegments validates every record, then replaces all segments and topics.
func (uc *LoadDatasetUseCase) LoadSegments(ctx context.Context, records []domain.SegmentRecord) (domain.LoadResult, error) {
	res := domain.LoadResult{Family: FamilySegments}

	for i, rec := range records {
		if err := uc.validateSegment(rec); err != nil {
			return res, fmt.Errorf("%w: segment %d: %s", ErrInvalidRecord, i, err)
		}
	}

	ids, err := uc.BootstrapChannels(ctx)
	if err != nil {
		return res, err
	}

	segments := make([]domain.Segment, len(records))
	for i, rec := range records {
		segments[i] = domain.Segment{
			ChannelID: ids[rec.Channel],
			StartTS:   rec.StartTS,
			EndTS:     rec.EndTS,
			Topics:    rec.Topics,
		}
	}

	stats, err := uc.repo.ReplaceSegments(ctx, segments)
	if err != nil {
		return res, fmt.Errorf("replace segments: %w", err)
	}

	return uc.finish(ctx, res, stats), nil
}

// LoadAudience replaces all audience readings. Keys of raw are epoch seconds
// in decimal, values are matched to the configured channels by position.
func (uc *LoadDatasetUseCase) LoadAudience(ctx context.Context, raw map[string][]int64) (domain.LoadResult, error) {
	res := domain.LoadResult{Family: FamilyAudience}

	type row struct {
		ts     int64
		values []int64
	}

	rows := make([]row, 0, len(raw))
	seen := make(map[int64]string, len(raw))
	for key, values := range raw {
		ts, err := strconv.ParseInt(strings.TrimSpace(key), 10, 64)
		if err != nil {
			return res, fmt.Errorf("%w: epoch %q is not an integer", ErrInvalidRecord, key)
		}
		if prev, ok := seen[ts]; ok {
			return res, fmt.Errorf("%w: epochs %q and %q are both %d", ErrDuplicateReading, prev, key, ts)
		}
		seen[ts] = key

		if len(values) > len(uc.channels) {
			return res, fmt.Errorf("%w: epoch %d has %d values for %d channels", ErrInvalidRecord, ts, len(values), len(uc.channels))
		}
		rows = append(rows, row{ts: ts, values: values})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].ts < rows[j].ts })

	ids, err := uc.BootstrapChannels(ctx)
	if err != nil {
		return res, err
	}

	readings := make([]domain.Reading, 0, len(rows)*len(uc.channels))
	for _, r := range rows {
		for idx, v := range r.values {
			readings = append(readings, domain.Reading{
				Timestamp: r.ts,
				ChannelID: ids[uc.channels[idx]],
				Value:     v,
			})
		}
	}

	stats, err := uc.repo.ReplaceAudience(ctx, readings)
	if err != nil {
		return res, fmt.Errorf("replace audience: %w", err)
	}

	return uc.finish(ctx, res, stats), nil
}

func (uc *LoadDatasetUseCase) finish(ctx context.Context, res domain.LoadResult, stats domain.LoadStats) domain.LoadResult {
	res.LoadID = uuid.NewString()
	res.LoadStats = stats

	uc.log.Info().
		Str("load_id", res.LoadID).
		Str("family", res.Family).
		Int64("deleted", stats.Deleted).
		Int64("inserted", stats.Inserted).
		Int64("topics_inserted", stats.TopicsInserted).
		Msg("dataset replaced")

	if uc.invalidator != nil {
		if err := uc.invalidator.Invalidate(ctx); err != nil {
			uc.log.Warn().Err(err).Str("load_id", res.LoadID).Msg("report cache invalidation failed")
		}
	}
	return res
}

func (uc *LoadDatasetUseCase) validateSegment(rec domain.SegmentRecord) error {
	if !uc.knownChannel(rec.Channel) {
		return fmt.Errorf("unknown channel %q", rec.Channel)
	}
	if rec.EndTS < rec.StartTS {
		return fmt.Errorf("end_ts %d before start_ts %d", rec.EndTS, rec.StartTS)
	}
	for j, t := range rec.Topics {
		if t.Name == "" {
			return fmt.Errorf("topic %d has no name", j)
		}
		if utf8.RuneCountInString(t.Name) > maxTopicNameLen {
			return fmt.Errorf("topic %d name longer than %d", j, maxTopicNameLen)
		}
	}
	return nil
}

func (uc *LoadDatasetUseCase) knownChannel(name string) bool {
	for _, c := range uc.channels {
		if c == name {
			return true
		}
	}
	return false
}
