package postgres

import (
	"context"
	"database/sql"
)

type Row interface {
	Scan(dest ...any) error
}

type Stmt interface {
	ExecContext(ctx context.Context, args ...any) (sql.Result, error)
	Close() error
}

type Tx interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryRowContext(ctx context.Context, query string, args ...any) Row
	PrepareContext(ctx context.Context, query string) (Stmt, error)
	Commit() error
	Rollback() error
}

type DB interface {
	BeginTx(ctx context.Context) (Tx, error)
}
