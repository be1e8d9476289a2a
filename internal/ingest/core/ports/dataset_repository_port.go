package ports

import (
	"context"

	"newsdesk-service/internal/ingest/core/domain"
)

type DatasetRepositoryPort interface {
	// EnsureChannels get-or-creates every name and returns name -> id.
	EnsureChannels(ctx context.Context, names []string) (map[string]int64, error)

	// ReplaceSegments deletes all segments (topics cascade) and inserts the
	// given ones in a single transaction.
	ReplaceSegments(ctx context.Context, segments []domain.Segment) (domain.LoadStats, error)

	// ReplaceAudience deletes all readings and inserts the given ones in a
	// single transaction.
	ReplaceAudience(ctx context.Context, readings []domain.Reading) (domain.LoadStats, error)
}

type CacheInvalidatorPort interface {
	Invalidate(ctx context.Context) error
}
