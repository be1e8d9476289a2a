package postgres

import (
	"context"
	"fmt"

	"newsdesk-service/internal/reports/core/domain"
	"newsdesk-service/internal/reports/core/ports"

	"github.com/lib/pq"
)

type RowScanner interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
	Close() error
}

type DB interface {
	QueryContext(ctx context.Context, query string, args ...any) (RowScanner, error)
}

type RecordRepository struct {
	db DB
}

func NewRecordRepository(db DB) *RecordRepository {
	return &RecordRepository{db: db}
}

var _ ports.RecordStorePort = (*RecordRepository)(nil)

const topicColumns = `
SELECT
    t.id, t.name, t.count, t.score,
    s.id, s.start_ts, s.end_ts, c.name
FROM topic t
JOIN segment s ON s.id = t.segment_id
JOIN channel c ON c.id = s.channel_id
`

const segmentColumns = `
SELECT s.id, c.name, s.start_ts, s.end_ts
FROM segment s
JOIN channel c ON c.id = s.channel_id
`

func (r *RecordRepository) Channels(ctx context.Context) ([]domain.Channel, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name FROM channel ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Channel
	for rows.Next() {
		var ch domain.Channel
		if err := rows.Scan(&ch.ID, &ch.Name); err != nil {
			return nil, err
		}
		out = append(out, ch)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *RecordRepository) FindTopicsByName(ctx context.Context, name string) ([]domain.Topic, error) {
	query := topicColumns + `
WHERE lower(t.name) = lower($1)
ORDER BY t.id`

	return r.queryTopics(ctx, query, name)
}

func (r *RecordRepository) FindTopicsBySegmentBoundary(ctx context.Context, w domain.Window) ([]domain.Topic, error) {
	query := topicColumns + `
WHERE (s.start_ts >= $1 AND s.start_ts < $2)
   OR (s.end_ts >= $1 AND s.end_ts < $2)
ORDER BY t.id`

	return r.queryTopics(ctx, query, w.From, w.To)
}

func (r *RecordRepository) FindAudience(ctx context.Context, w domain.Window, channels []string) ([]domain.Reading, error) {
	where := "a.ts BETWEEN $1 AND $2"
	args := []any{w.From, w.To}

	if len(channels) > 0 {
		where += " AND c.name = ANY($3)"
		args = append(args, pq.Array(channels))
	}

	query := `
SELECT a.ts, c.name, a.value
FROM audience a
JOIN channel c ON c.id = a.channel_id
WHERE ` + where + `
ORDER BY a.ts, c.name`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Reading
	for rows.Next() {
		var rd domain.Reading
		if err := rows.Scan(&rd.Timestamp, &rd.Channel, &rd.Value); err != nil {
			return nil, err
		}
		out = append(out, rd)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *RecordRepository) FindSegmentsByIDs(ctx context.Context, ids []int64) ([]domain.Segment, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	query := segmentColumns + `
WHERE s.id = ANY($1)
ORDER BY s.id`

	return r.querySegments(ctx, query, pq.Array(ids))
}

func (r *RecordRepository) FindSegment(ctx context.Context, id int64) (*domain.Segment, error) {
	segments, err := r.querySegments(ctx, segmentColumns+`WHERE s.id = $1`, id)
	if err != nil {
		return nil, err
	}
	if len(segments) == 0 {
		return nil, nil
	}
	seg := segments[0]

	topics, err := r.queryTopics(ctx, topicColumns+`
WHERE t.segment_id = $1
ORDER BY t.id`, id)
	if err != nil {
		return nil, fmt.Errorf("load topics of segment %d: %w", id, err)
	}
	seg.Topics = topics

	return &seg, nil
}

func (r *RecordRepository) ListTopics(ctx context.Context) ([]domain.Topic, error) {
	return r.queryTopics(ctx, topicColumns+`ORDER BY t.id`)
}

func (r *RecordRepository) FindTopic(ctx context.Context, id int64) (*domain.Topic, error) {
	topics, err := r.queryTopics(ctx, topicColumns+`WHERE t.id = $1`, id)
	if err != nil {
		return nil, err
	}
	if len(topics) == 0 {
		return nil, nil
	}
	return &topics[0], nil
}

func (r *RecordRepository) ListSegments(ctx context.Context) ([]domain.Segment, error) {
	return r.querySegments(ctx, segmentColumns+`ORDER BY s.id`)
}

func (r *RecordRepository) queryTopics(ctx context.Context, query string, args ...any) ([]domain.Topic, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Topic
	for rows.Next() {
		var t domain.Topic
		if err := rows.Scan(
			&t.ID, &t.Name, &t.Count, &t.Score,
			&t.Segment.ID, &t.Segment.StartTS, &t.Segment.EndTS, &t.Segment.Channel,
		); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *RecordRepository) querySegments(ctx context.Context, query string, args ...any) ([]domain.Segment, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Segment
	for rows.Next() {
		var s domain.Segment
		if err := rows.Scan(&s.ID, &s.Channel, &s.StartTS, &s.EndTS); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
