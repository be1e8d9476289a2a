package usecase

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"newsdesk-service/internal/reports/core/domain"
	"newsdesk-service/internal/reports/core/ports"
)

var (
	ErrMissingParameter = errors.New("missing parameter")
	ErrInvalidFormat    = errors.New("invalid format")
	ErrSegmentNotFound  = errors.New("segment not found")
	ErrTopicNotFound    = errors.New("topic not found")
)

const dateLayout = "2006-01-02"

type TopicReporter struct {
	store ports.RecordStorePort
	agg   *Aggregator
	loc   *time.Location
}

// NewTopicReporter builds a reporter. Dates are read as calendar days in loc.
func NewTopicReporter(store ports.RecordStorePort, loc *time.Location) *TopicReporter {
	if loc == nil {
		loc = time.Local
	}
	return &TopicReporter{
		store: store,
		agg:   NewAggregator(store),
		loc:   loc,
	}
}

// ByDate reports, for each topic aired on the given day, the mean audience of
// its segment per channel.
//
// A segment belongs to the day when its start or its end lies inside
// [midnight, midnight+24h). A segment covering the whole day with both ends
// outside it is not reported.
func (r *TopicReporter) ByDate(ctx context.Context, date string) (domain.DateReport, error) {
	if date == "" {
		return nil, fmt.Errorf("%w: date", ErrMissingParameter)
	}

	day, err := time.ParseInLocation(dateLayout, date, r.loc)
	if err != nil {
		return nil, fmt.Errorf("%w: date %q, expected YYYY-MM-DD", ErrInvalidFormat, date)
	}

	dayWindow := domain.Window{
		From: day.Unix(),
		To:   day.Add(24 * time.Hour).Unix(),
	}

	topics, err := r.store.FindTopicsBySegmentBoundary(ctx, dayWindow)
	if err != nil {
		return nil, err
	}

	windows := make([]domain.ChannelWindow, len(topics))
	for i, t := range topics {
		windows[i] = domain.ChannelWindow{Channel: t.Segment.Channel, Window: t.Segment.Window()}
	}

	means, err := r.agg.BatchMeanAudience(ctx, windows)
	if err != nil {
		return nil, err
	}

	report := make(domain.DateReport)
	for i, t := range topics {
		byChannel, ok := report[t.Name]
		if !ok {
			byChannel = make(map[string]domain.Mean)
			report[t.Name] = byChannel
		}
		// later topics with the same name win
		byChannel[t.Segment.Channel] = means[i]
	}

	return report, nil
}

// Timeline returns the raw audience readings inside the segments of the
// topic, grouped by channel. Channels are sorted by name, readings keep the
// store order.
func (r *TopicReporter) Timeline(ctx context.Context, topic string) ([]domain.ChannelSeries, error) {
	// an empty name matches no topic
	if topic == "" {
		return []domain.ChannelSeries{}, nil
	}

	topics, err := r.store.FindTopicsByName(ctx, topic)
	if err != nil {
		return nil, err
	}
	if len(topics) == 0 {
		return []domain.ChannelSeries{}, nil
	}

	windows := make([]domain.Window, len(topics))
	for i, t := range topics {
		windows[i] = t.Segment.Window()
	}

	readings, err := r.agg.Readings(ctx, windows)
	if err != nil {
		return nil, err
	}

	byChannel := make(map[string][]domain.AudiencePoint)
	var names []string
	for _, rd := range readings {
		if _, ok := byChannel[rd.Channel]; !ok {
			names = append(names, rd.Channel)
		}
		byChannel[rd.Channel] = append(byChannel[rd.Channel], domain.AudiencePoint{
			Timestamp: rd.Timestamp,
			Value:     rd.Value,
		})
	}
	sort.Strings(names)

	out := make([]domain.ChannelSeries, 0, len(names))
	for _, name := range names {
		out = append(out, domain.ChannelSeries{Channel: name, Audience: byChannel[name]})
	}
	return out, nil
}

// BestSegments ranks the distinct segments of the topic by mean audience,
// per channel. Segments without readings come last.
func (r *TopicReporter) BestSegments(ctx context.Context, topic string) ([]domain.ChannelSegments, error) {
	if topic == "" {
		return []domain.ChannelSegments{}, nil
	}

	topics, err := r.store.FindTopicsByName(ctx, topic)
	if err != nil {
		return nil, err
	}
	if len(topics) == 0 {
		return []domain.ChannelSegments{}, nil
	}

	seen := make(map[int64]struct{}, len(topics))
	ids := make([]int64, 0, len(topics))
	for _, t := range topics {
		if _, ok := seen[t.Segment.ID]; ok {
			continue
		}
		seen[t.Segment.ID] = struct{}{}
		ids = append(ids, t.Segment.ID)
	}

	segments, err := r.store.FindSegmentsByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	windows := make([]domain.ChannelWindow, len(segments))
	for i, s := range segments {
		windows[i] = domain.ChannelWindow{Channel: s.Channel, Window: s.Window()}
	}

	means, err := r.agg.BatchMeanAudience(ctx, windows)
	if err != nil {
		return nil, err
	}

	byChannel := make(map[string][]domain.RankedSegment)
	var names []string
	for i, s := range segments {
		if _, ok := byChannel[s.Channel]; !ok {
			names = append(names, s.Channel)
		}
		byChannel[s.Channel] = append(byChannel[s.Channel], domain.RankedSegment{
			ID:       s.ID,
			StartTS:  s.StartTS,
			EndTS:    s.EndTS,
			Audience: means[i],
		})
	}
	sort.Strings(names)

	out := make([]domain.ChannelSegments, 0, len(names))
	for _, name := range names {
		ranked := byChannel[name]
		sort.SliceStable(ranked, func(i, j int) bool {
			return audienceAbove(ranked[i].Audience, ranked[j].Audience)
		})
		out = append(out, domain.ChannelSegments{Channel: name, Segments: ranked})
	}
	return out, nil
}

// audienceAbove orders means descending with missing values last.
func audienceAbove(a, b domain.Mean) bool {
	switch {
	case a == nil:
		return false
	case b == nil:
		return true
	default:
		return *a > *b
	}
}
