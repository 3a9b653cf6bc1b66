package core

import (
	"context"
	"fmt"

	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"

	"hrm/internal/platform/db"
)

func (s *Store) ListPositions(ctx context.Context) ([]Position, error) {
	out, err := db.QueryAll[Position](ctx, s.DB, `
    SELECT positionid, positionname, salary
    FROM positions
    ORDER BY positionid
  `)
	if err != nil {
		return nil, errors.Wrap(err, "list positions")
	}
	return out, nil
}

func (s *Store) GetPosition(ctx context.Context, id int64) (*Position, error) {
	pos, err := db.QueryOne[Position](ctx, s.DB, `
    SELECT positionid, positionname, salary
    FROM positions
    WHERE positionid = $1
  `, id)
	if err != nil {
		return nil, errors.Wrap(err, "get position")
	}
	if pos == nil {
		return nil, NotFound("Position not found")
	}
	return pos, nil
}

func (s *Store) CreatePosition(ctx context.Context, name string, salary decimal.Decimal) (*Position, error) {
	pos, err := db.ExecReturning[Position](ctx, s.DB, `
    INSERT INTO positions (positionname, salary)
    VALUES ($1, $2)
    RETURNING positionid, positionname, salary
  `, name, salary)
	if err != nil {
		return nil, positionWriteError(err, "create position")
	}
	return pos, nil
}

func (s *Store) UpdatePosition(ctx context.Context, id int64, name string, salary decimal.Decimal) (*Position, error) {
	pos, err := db.ExecReturning[Position](ctx, s.DB, `
    UPDATE positions
    SET positionname = $1, salary = $2
    WHERE positionid = $3
    RETURNING positionid, positionname, salary
  `, name, salary, id)
	if err != nil {
		return nil, positionWriteError(err, "update position")
	}
	if pos == nil {
		return nil, NotFound("Position not found")
	}
	return pos, nil
}

func (s *Store) DeletePosition(ctx context.Context, id int64) error {
	if _, err := db.Exec(ctx, s.DB, `DELETE FROM positions WHERE positionid = $1`, id); err != nil {
		if hasCode(err, pgForeignKeyViolation) {
			return Conflict("Position is in use", err)
		}
		return errors.Wrap(err, "delete position")
	}
	return nil
}

// positionWriteError reports salaries the column rejects as validation
// failures on the salary field.
func positionWriteError(err error, op string) error {
	switch {
	case hasCode(err, pgCheckViolation):
		return Validation("payload validation failed", FieldIssue{Field: "salary", Reason: "must be greater than or equal to 0"})
	case hasCode(err, pgNumericOutOfRange):
		return Validation("payload validation failed", FieldIssue{Field: "salary", Reason: fmt.Sprintf("must be less than %d", MaxSalary)})
	}
	return errors.Wrap(err, op)
}
