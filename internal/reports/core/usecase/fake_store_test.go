package usecase_test

import (
	"context"
	"sort"
	"strings"

	"newsdesk-service/internal/reports/core/domain"
)

// fakeStore is an in-memory RecordStorePort for tests.
type fakeStore struct {
	channels []domain.Channel
	segments []domain.Segment
	topics   []domain.Topic
	readings []domain.Reading

	err            error
	audienceCalls  []domain.Window
	segmentIDs     []int64
	topicNameCalls int
}

func (f *fakeStore) addSegment(id int64, channel string, start, end int64) domain.Segment {
	s := domain.Segment{ID: id, Channel: channel, StartTS: start, EndTS: end}
	f.segments = append(f.segments, s)
	return s
}

func (f *fakeStore) addTopic(id int64, name string, seg domain.Segment) {
	f.topics = append(f.topics, domain.Topic{ID: id, Name: name, Count: 1, Score: 0.5, Segment: seg})
}

func (f *fakeStore) addReading(ts int64, channel string, value int64) {
	f.readings = append(f.readings, domain.Reading{Timestamp: ts, Channel: channel, Value: value})
}

func (f *fakeStore) FindAudience(ctx context.Context, w domain.Window, channels []string) ([]domain.Reading, error) {
	f.audienceCalls = append(f.audienceCalls, w)
	if f.err != nil {
		return nil, f.err
	}

	var out []domain.Reading
	for _, r := range f.readings {
		if !w.Contains(r.Timestamp) {
			continue
		}
		if len(channels) > 0 && !containsString(channels, r.Channel) {
			continue
		}
		out = append(out, r)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Timestamp != out[j].Timestamp {
			return out[i].Timestamp < out[j].Timestamp
		}
		return out[i].Channel < out[j].Channel
	})
	return out, nil
}

func (f *fakeStore) Channels(ctx context.Context) ([]domain.Channel, error) {
	return f.channels, f.err
}

func (f *fakeStore) FindTopicsByName(ctx context.Context, name string) ([]domain.Topic, error) {
	f.topicNameCalls++
	if f.err != nil {
		return nil, f.err
	}
	var out []domain.Topic
	for _, t := range f.topics {
		if strings.EqualFold(t.Name, name) {
			out = append(out, t)
		}
	}
	return out, nil
}

func (f *fakeStore) FindTopicsBySegmentBoundary(ctx context.Context, w domain.Window) ([]domain.Topic, error) {
	if f.err != nil {
		return nil, f.err
	}
	in := func(ts int64) bool { return ts >= w.From && ts < w.To }

	var out []domain.Topic
	for _, t := range f.topics {
		if in(t.Segment.StartTS) || in(t.Segment.EndTS) {
			out = append(out, t)
		}
	}
	return out, nil
}

func (f *fakeStore) FindSegmentsByIDs(ctx context.Context, ids []int64) ([]domain.Segment, error) {
	f.segmentIDs = ids
	if f.err != nil {
		return nil, f.err
	}
	var out []domain.Segment
	for _, s := range f.segments {
		for _, id := range ids {
			if s.ID == id {
				out = append(out, s)
				break
			}
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeStore) FindSegment(ctx context.Context, id int64) (*domain.Segment, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, s := range f.segments {
		if s.ID == id {
			seg := s
			for _, t := range f.topics {
				if t.Segment.ID == id {
					seg.Topics = append(seg.Topics, t)
				}
			}
			return &seg, nil
		}
	}
	return nil, nil
}

func (f *fakeStore) ListTopics(ctx context.Context) ([]domain.Topic, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := append([]domain.Topic(nil), f.topics...)
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeStore) FindTopic(ctx context.Context, id int64) (*domain.Topic, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, t := range f.topics {
		if t.ID == id {
			topic := t
			return &topic, nil
		}
	}
	return nil, nil
}

func (f *fakeStore) ListSegments(ctx context.Context) ([]domain.Segment, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := append([]domain.Segment(nil), f.segments...)
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
