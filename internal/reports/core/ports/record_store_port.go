package ports

import (
	"context"

	"newsdesk-service/internal/reports/core/domain"
)

type AudienceReaderPort interface {
	// FindAudience returns readings with timestamp in the closed window,
	// ordered by timestamp then channel name. An empty channels slice means
	// every channel.
	FindAudience(ctx context.Context, w domain.Window, channels []string) ([]domain.Reading, error)
}

type RecordStorePort interface {
	AudienceReaderPort

	Channels(ctx context.Context) ([]domain.Channel, error)

	// FindTopicsByName matches names case-insensitively. Each topic carries
	// its segment and the segment's channel name.
	FindTopicsByName(ctx context.Context, name string) ([]domain.Topic, error)

	// FindTopicsBySegmentBoundary returns topics whose segment starts or
	// ends inside [w.From, w.To). Note the half-open bound here.
	FindTopicsBySegmentBoundary(ctx context.Context, w domain.Window) ([]domain.Topic, error)

	FindSegmentsByIDs(ctx context.Context, ids []int64) ([]domain.Segment, error)

	// FindSegment returns nil, nil when the segment does not exist.
	FindSegment(ctx context.Context, id int64) (*domain.Segment, error)

	// ListTopics returns every topic with its segment, ordered by id.
	ListTopics(ctx context.Context) ([]domain.Topic, error)

	// FindTopic returns nil, nil when the topic does not exist.
	FindTopic(ctx context.Context, id int64) (*domain.Topic, error)

	// ListSegments returns every segment without topics, ordered by id.
	ListSegments(ctx context.Context) ([]domain.Segment, error)
}
