package db

import (
	"context"
	_ "embed"

	"github.com/go-faster/errors"
	"github.com/jackc/pgx/v5"
)

//go:embed schema.sql
var schemaSQL string

// ApplySchema creates any missing tables. Every statement is idempotent, so
// running it against an initialised database is a no-op.
func ApplySchema(ctx context.Context, db TxStarter) error {
	return WithTx(ctx, db, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, schemaSQL); err != nil {
			return errors.Wrap(err, "apply schema")
		}
		return nil
	})
}
