package core

import (
	"context"

	"github.com/go-faster/errors"

	"hrm/internal/platform/db"
)

func (s *Store) EmployeeHistory(ctx context.Context, employeeID int64) ([]EmployeeHistoryEntry, error) {
	out, err := db.QueryAll[EmployeeHistoryEntry](ctx, s.DB, `
    SELECT h.historyid, h.date, p.positionname, p.salary, e.firstname
    FROM history h
    JOIN employees e ON h.employeeid = e.employeeid
    JOIN positions p ON h.positionid = p.positionid
    WHERE h.employeeid = $1
    ORDER BY h.date DESC, h.historyid DESC
  `, employeeID)
	if err != nil {
		return nil, errors.Wrap(err, "list employee history")
	}
	return out, nil
}

func (s *Store) ListHistory(ctx context.Context) ([]HistoryEntry, error) {
	out, err := db.QueryAll[HistoryEntry](ctx, s.DB, `
    SELECT h.historyid, e.firstname AS employee_name, e.employeeid,
           p.positionname, p.salary, h.date
    FROM history h
    JOIN employees e ON h.employeeid = e.employeeid
    JOIN positions p ON h.positionid = p.positionid
    ORDER BY h.date DESC, h.historyid DESC
  `)
	if err != nil {
		return nil, errors.Wrap(err, "list history")
	}
	return out, nil
}
