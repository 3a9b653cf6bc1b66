package db

import (
	"context"

	"github.com/go-faster/errors"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"hrm/internal/platform/config"
)

// Querier is satisfied by *pgxpool.Pool, *pgxpool.Conn and pgx.Tx.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// TxStarter opens transactions. *pgxpool.Pool satisfies it.
type TxStarter interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}

// DB is the subset of *pgxpool.Pool the stores depend on.
type DB interface {
	Querier
	TxStarter
	Ping(ctx context.Context) error
}

// Connect builds the pool. It does not dial: the first acquire does, so an
// unreachable database surfaces through the health check instead of
// preventing startup.
func Connect(ctx context.Context, opts config.DatabaseOptions) (*pgxpool.Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(opts.ConnectionString())
	if err != nil {
		return nil, errors.Wrap(err, "parse database config")
	}
	poolCfg.MinConns = opts.MinConns
	poolCfg.MaxConns = opts.MaxConns
	if opts.MaxConnLifetime > 0 {
		poolCfg.MaxConnLifetime = opts.MaxConnLifetime
	}
	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, errors.Wrap(err, "create pool")
	}
	return pool, nil
}
