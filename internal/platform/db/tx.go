package db

import (
	"context"

	"github.com/go-faster/errors"
	"github.com/jackc/pgx/v5"
)

// WithTx runs fn inside one transaction. The transaction commits when fn
// returns nil and rolls back on an error or a panic; the connection goes back
// to the pool on every path.
func WithTx(ctx context.Context, db TxStarter, fn func(tx pgx.Tx) error) (err error) {
	tx, err := db.Begin(ctx)
	if err != nil {
		return errors.Wrap(err, "begin")
	}
	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback(context.WithoutCancel(ctx))
			panic(p)
		}
		if err != nil {
			_ = tx.Rollback(context.WithoutCancel(ctx))
		}
	}()

	if err = fn(tx); err != nil {
		return err
	}
	if err = tx.Commit(ctx); err != nil {
		return errors.Wrap(err, "commit")
	}
	return nil
}

// QueryAll collects every row into T by column name.
func QueryAll[T any](ctx context.Context, q Querier, sql string, args ...any) ([]T, error) {
	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	out, err := pgx.CollectRows(rows, pgx.RowToStructByName[T])
	if err != nil {
		return nil, err
	}
	if out == nil {
		out = []T{}
	}
	return out, nil
}

// QueryOne returns the first row, or nil when the query matched nothing.
func QueryOne[T any](ctx context.Context, q Querier, sql string, args ...any) (*T, error) {
	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	row, err := pgx.CollectOneRow(rows, pgx.RowToAddrOfStructByName[T])
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return row, nil
}

// ExecReturning runs a single write in its own transaction and returns the
// row produced by its RETURNING clause, or nil when no row was affected.
func ExecReturning[T any](ctx context.Context, db TxStarter, sql string, args ...any) (*T, error) {
	var out *T
	err := WithTx(ctx, db, func(tx pgx.Tx) error {
		row, err := QueryOne[T](ctx, tx, sql, args...)
		if err != nil {
			return err
		}
		out = row
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Exec runs a single write in its own transaction and reports the affected
// row count.
func Exec(ctx context.Context, db TxStarter, sql string, args ...any) (int64, error) {
	var affected int64
	err := WithTx(ctx, db, func(tx pgx.Tx) error {
		tag, err := tx.Exec(ctx, sql, args...)
		if err != nil {
			return err
		}
		affected = tag.RowsAffected()
		return nil
	})
	return affected, err
}
