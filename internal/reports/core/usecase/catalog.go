package usecase

import (
	"context"
	"math"

	"newsdesk-service/internal/reports/core/domain"
	"newsdesk-service/internal/reports/core/ports"
)

// Catalog serves plain lookups of stored records.
type Catalog struct {
	store ports.RecordStorePort
}

func NewCatalog(store ports.RecordStorePort) *Catalog {
	return &Catalog{store: store}
}

func (c *Catalog) Channels(ctx context.Context) ([]domain.Channel, error) {
	return c.store.Channels(ctx)
}

func (c *Catalog) Segment(ctx context.Context, id int64) (*domain.Segment, error) {
	seg, err := c.store.FindSegment(ctx, id)
	if err != nil {
		return nil, err
	}
	if seg == nil {
		return nil, ErrSegmentNotFound
	}
	return seg, nil
}

func (c *Catalog) Topics(ctx context.Context) ([]domain.Topic, error) {
	return c.store.ListTopics(ctx)
}

func (c *Catalog) Topic(ctx context.Context, id int64) (*domain.Topic, error) {
	topic, err := c.store.FindTopic(ctx, id)
	if err != nil {
		return nil, err
	}
	if topic == nil {
		return nil, ErrTopicNotFound
	}
	return topic, nil
}

func (c *Catalog) Segments(ctx context.Context) ([]domain.Segment, error) {
	return c.store.ListSegments(ctx)
}

// Audience returns every stored reading ordered by timestamp then channel.
func (c *Catalog) Audience(ctx context.Context) ([]domain.Reading, error) {
	return c.store.FindAudience(ctx, domain.Window{From: math.MinInt64, To: math.MaxInt64}, nil)
}
