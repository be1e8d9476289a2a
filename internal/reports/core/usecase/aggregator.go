package usecase

import (
	"context"
	"sort"

	"newsdesk-service/internal/reports/core/domain"
	"newsdesk-service/internal/reports/core/ports"
)

// Aggregator computes mean audience over time windows.
//
// Batches are served with one range query per merged interval instead of
// one query per window, then every window is answered from an in-memory
// index of the fetched readings.
type Aggregator struct {
	reader ports.AudienceReaderPort
}

func NewAggregator(reader ports.AudienceReaderPort) *Aggregator {
	return &Aggregator{reader: reader}
}

// MeanAudience returns the mean value of the channel's readings inside w,
// or nil when there is none.
func (a *Aggregator) MeanAudience(ctx context.Context, channel string, w domain.Window) (domain.Mean, error) {
	means, err := a.BatchMeanAudience(ctx, []domain.ChannelWindow{{Channel: channel, Window: w}})
	if err != nil {
		return nil, err
	}
	return means[0], nil
}

// BatchMeanAudience returns one mean per window, in input order.
func (a *Aggregator) BatchMeanAudience(ctx context.Context, windows []domain.ChannelWindow) ([]domain.Mean, error) {
	means := make([]domain.Mean, len(windows))

	spans := make([]domain.Window, 0, len(windows))
	seen := make(map[string]struct{})
	var channels []string
	for _, cw := range windows {
		if cw.From > cw.To {
			continue
		}
		spans = append(spans, cw.Window)
		if _, ok := seen[cw.Channel]; !ok {
			seen[cw.Channel] = struct{}{}
			channels = append(channels, cw.Channel)
		}
	}
	if len(spans) == 0 {
		return means, nil
	}

	readings, err := a.fetch(ctx, spans, channels)
	if err != nil {
		return nil, err
	}

	idx := newReadingIndex(readings)
	for i, cw := range windows {
		means[i] = idx.mean(cw.Channel, cw.Window)
	}
	return means, nil
}

// Readings returns every reading, on any channel, that falls inside at least
// one of the windows. A reading covered by several windows is returned once.
func (a *Aggregator) Readings(ctx context.Context, windows []domain.Window) ([]domain.Reading, error) {
	return a.fetch(ctx, windows, nil)
}

func (a *Aggregator) fetch(ctx context.Context, windows []domain.Window, channels []string) ([]domain.Reading, error) {
	var out []domain.Reading
	for _, span := range mergeWindows(windows) {
		rs, err := a.reader.FindAudience(ctx, span, channels)
		if err != nil {
			return nil, err
		}
		out = append(out, rs...)
	}
	return out, nil
}

// mergeWindows returns the union of the windows as disjoint windows sorted
// by start. Inverted windows are dropped.
func mergeWindows(windows []domain.Window) []domain.Window {
	sorted := make([]domain.Window, 0, len(windows))
	for _, w := range windows {
		if w.From <= w.To {
			sorted = append(sorted, w)
		}
	}
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].From < sorted[j].From })

	var merged []domain.Window
	for _, w := range sorted {
		if n := len(merged); n > 0 && w.From <= merged[n-1].To {
			if w.To > merged[n-1].To {
				merged[n-1].To = w.To
			}
			continue
		}
		merged = append(merged, w)
	}
	return merged
}

// series is one channel's readings sorted by timestamp, with prefix sums of
// the values so any window sum costs two binary searches.
type series struct {
	ts     []int64
	prefix []int64
}

type readingIndex map[string]*series

func newReadingIndex(readings []domain.Reading) readingIndex {
	grouped := make(map[string][]domain.Reading)
	for _, r := range readings {
		grouped[r.Channel] = append(grouped[r.Channel], r)
	}

	idx := make(readingIndex, len(grouped))
	for ch, rs := range grouped {
		sort.SliceStable(rs, func(i, j int) bool { return rs[i].Timestamp < rs[j].Timestamp })

		s := &series{
			ts:     make([]int64, len(rs)),
			prefix: make([]int64, len(rs)+1),
		}
		for i, r := range rs {
			s.ts[i] = r.Timestamp
			s.prefix[i+1] = s.prefix[i] + r.Value
		}
		idx[ch] = s
	}
	return idx
}

func (idx readingIndex) mean(channel string, w domain.Window) domain.Mean {
	s, ok := idx[channel]
	if !ok || w.From > w.To {
		return nil
	}

	lo := sort.Search(len(s.ts), func(i int) bool { return s.ts[i] >= w.From })
	hi := sort.Search(len(s.ts), func(i int) bool { return s.ts[i] > w.To })
	if hi <= lo {
		return nil
	}

	m := float64(s.prefix[hi]-s.prefix[lo]) / float64(hi-lo)
	return &m
}
