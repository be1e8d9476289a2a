package cli

import (
	"context"
	"database/sql"

	ingestRepoPg "newsdesk-service/internal/ingest/adapters/postgres"
	ingestPorts "newsdesk-service/internal/ingest/core/ports"
	ingestUsecase "newsdesk-service/internal/ingest/core/usecase"
	"newsdesk-service/internal/platform/postgres"
	reportsCache "newsdesk-service/internal/reports/adapters/redis"

	"github.com/redis/go-redis/v9"
)

type backends struct {
	db  *sql.DB
	rdb *redis.Client // nil when the report cache is disabled
}

// openBackends connects to postgres and, when configured, redis. An
// unreachable redis only disables the cache.
func (st *state) openBackends(ctx context.Context) (*backends, error) {
	if err := st.cfg.RequireDSN(); err != nil {
		return nil, err
	}

	db, err := postgres.Open(ctx, st.cfg.Postgres)
	if err != nil {
		return nil, err
	}
	b := &backends{db: db}

	if st.cfg.Redis.URL != "" {
		rdb, err := reportsCache.Connect(ctx, st.cfg.Redis.URL)
		if err != nil {
			st.log.Warn().Err(err).Msg("redis unavailable, report cache disabled")
		} else {
			b.rdb = rdb
		}
	}
	return b, nil
}

func (b *backends) Close() {
	if b.rdb != nil {
		_ = b.rdb.Close()
	}
	_ = b.db.Close()
}

func (st *state) newLoader(b *backends) *ingestUsecase.LoadDatasetUseCase {
	var invalidator ingestPorts.CacheInvalidatorPort
	if b.rdb != nil {
		invalidator = reportsCache.NewGeneration(b.rdb)
	}

	repo := ingestRepoPg.NewDatasetRepository(ingestRepoPg.NewSQLDB(b.db))
	return ingestUsecase.NewLoadDatasetUseCase(repo, st.cfg.Channels, invalidator, st.log)
}
