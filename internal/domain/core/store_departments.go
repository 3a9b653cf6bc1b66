package core

import (
	"context"

	"github.com/go-faster/errors"

	"hrm/internal/platform/db"
)

const departmentSummaryQuery = `
    SELECT d.departmentid, d.departmentname,
           COUNT(e.employeeid) AS employee_count
    FROM departments d
    LEFT JOIN employees e ON d.departmentid = e.departmentid
`

func (s *Store) ListDepartments(ctx context.Context) ([]DepartmentSummary, error) {
	out, err := db.QueryAll[DepartmentSummary](ctx, s.DB, departmentSummaryQuery+`
    GROUP BY d.departmentid, d.departmentname
    ORDER BY d.departmentid
  `)
	if err != nil {
		return nil, errors.Wrap(err, "list departments")
	}
	return out, nil
}

func (s *Store) GetDepartment(ctx context.Context, id int64) (*DepartmentSummary, error) {
	dep, err := db.QueryOne[DepartmentSummary](ctx, s.DB, departmentSummaryQuery+`
    WHERE d.departmentid = $1
    GROUP BY d.departmentid, d.departmentname
  `, id)
	if err != nil {
		return nil, errors.Wrap(err, "get department")
	}
	if dep == nil {
		return nil, NotFound("Department not found")
	}
	return dep, nil
}

func (s *Store) CreateDepartment(ctx context.Context, name string) (*Department, error) {
	dep, err := db.ExecReturning[Department](ctx, s.DB, `
    INSERT INTO departments (departmentname)
    VALUES ($1)
    RETURNING departmentid, departmentname
  `, name)
	if err != nil {
		return nil, departmentWriteError(err, "create department")
	}
	return dep, nil
}

func (s *Store) UpdateDepartment(ctx context.Context, id int64, name string) (*Department, error) {
	dep, err := db.ExecReturning[Department](ctx, s.DB, `
    UPDATE departments
    SET departmentname = $1
    WHERE departmentid = $2
    RETURNING departmentid, departmentname
  `, name, id)
	if err != nil {
		return nil, departmentWriteError(err, "update department")
	}
	if dep == nil {
		return nil, NotFound("Department not found")
	}
	return dep, nil
}

func (s *Store) DeleteDepartment(ctx context.Context, id int64) error {
	if _, err := db.Exec(ctx, s.DB, `DELETE FROM departments WHERE departmentid = $1`, id); err != nil {
		if hasCode(err, pgForeignKeyViolation) {
			return Conflict("Department has employees", err)
		}
		return errors.Wrap(err, "delete department")
	}
	return nil
}

func departmentWriteError(err error, op string) error {
	if hasCode(err, pgUniqueViolation) {
		return Conflict("Department already exists", err)
	}
	return errors.Wrap(err, op)
}
