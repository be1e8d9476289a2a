package postgres

import (
	"context"
	"fmt"

	"newsdesk-service/internal/ingest/core/domain"
	"newsdesk-service/internal/ingest/core/ports"

	"github.com/lib/pq"
)

type DatasetRepository struct {
	db DB
}

func NewDatasetRepository(db DB) *DatasetRepository {
	return &DatasetRepository{db: db}
}

var _ ports.DatasetRepositoryPort = (*DatasetRepository)(nil)

// The no-op update makes RETURNING yield the id of an existing row too.
const upsertChannelSQL = `
INSERT INTO channel (name) VALUES ($1)
ON CONFLICT (name) DO UPDATE SET name = EXCLUDED.name
RETURNING id;
`

const insertSegmentSQL = `
INSERT INTO segment (channel_id, start_ts, end_ts)
VALUES ($1, $2, $3)
RETURNING id;
`

func (r *DatasetRepository) EnsureChannels(ctx context.Context, names []string) (map[string]int64, error) {
	ids := make(map[string]int64, len(names))

	err := r.withTx(ctx, func(tx Tx) error {
		for _, name := range names {
			var id int64
			if err := tx.QueryRowContext(ctx, upsertChannelSQL, name).Scan(&id); err != nil {
				return fmt.Errorf("upsert channel %q: %w", name, err)
			}
			ids[name] = id
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return ids, nil
}

func (r *DatasetRepository) ReplaceSegments(ctx context.Context, segments []domain.Segment) (domain.LoadStats, error) {
	var stats domain.LoadStats

	err := r.withTx(ctx, func(tx Tx) error {
		// topics go with their segments via ON DELETE CASCADE
		deleted, err := deleteAll(ctx, tx, "segment")
		if err != nil {
			return err
		}
		stats.Deleted = deleted

		type topicRow struct {
			segmentID int64
			topic     domain.TopicRecord
		}
		var topics []topicRow

		for _, s := range segments {
			var id int64
			if err := tx.QueryRowContext(ctx, insertSegmentSQL, s.ChannelID, s.StartTS, s.EndTS).Scan(&id); err != nil {
				return fmt.Errorf("insert segment: %w", err)
			}
			stats.Inserted++
			for _, t := range s.Topics {
				topics = append(topics, topicRow{segmentID: id, topic: t})
			}
		}

		rows := make([][]any, len(topics))
		for i, t := range topics {
			rows[i] = []any{t.segmentID, t.topic.Name, t.topic.Count, t.topic.Score}
		}
		n, err := copyIn(ctx, tx, "topic", []string{"segment_id", "name", "count", "score"}, rows)
		if err != nil {
			return err
		}
		stats.TopicsInserted = n
		return nil
	})
	if err != nil {
		return domain.LoadStats{}, err
	}
	return stats, nil
}

func (r *DatasetRepository) ReplaceAudience(ctx context.Context, readings []domain.Reading) (domain.LoadStats, error) {
	var stats domain.LoadStats

	err := r.withTx(ctx, func(tx Tx) error {
		deleted, err := deleteAll(ctx, tx, "audience")
		if err != nil {
			return err
		}
		stats.Deleted = deleted

		rows := make([][]any, len(readings))
		for i, rd := range readings {
			rows[i] = []any{rd.Timestamp, rd.ChannelID, rd.Value}
		}
		n, err := copyIn(ctx, tx, "audience", []string{"ts", "channel_id", "value"}, rows)
		if err != nil {
			return err
		}
		stats.Inserted = n
		return nil
	})
	if err != nil {
		return domain.LoadStats{}, err
	}
	return stats, nil
}

func (r *DatasetRepository) withTx(ctx context.Context, fn func(tx Tx) error) error {
	tx, err := r.db.BeginTx(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}

	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

func deleteAll(ctx context.Context, tx Tx, table string) (int64, error) {
	res, err := tx.ExecContext(ctx, "DELETE FROM "+table)
	if err != nil {
		return 0, fmt.Errorf("clear %s: %w", table, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, err
	}
	return n, nil
}

// copyIn streams rows into table with COPY FROM STDIN.
func copyIn(ctx context.Context, tx Tx, table string, columns []string, rows [][]any) (int64, error) {
	if len(rows) == 0 {
		return 0, nil
	}

	stmt, err := tx.PrepareContext(ctx, pq.CopyIn(table, columns...))
	if err != nil {
		return 0, fmt.Errorf("prepare copy %s: %w", table, err)
	}
	defer stmt.Close()

	for _, row := range rows {
		if _, err := stmt.ExecContext(ctx, row...); err != nil {
			return 0, fmt.Errorf("copy %s: %w", table, err)
		}
	}
	// an argument-less Exec flushes the buffered rows
	if _, err := stmt.ExecContext(ctx); err != nil {
		return 0, fmt.Errorf("flush copy %s: %w", table, err)
	}
	return int64(len(rows)), nil
}
