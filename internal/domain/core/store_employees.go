package core

import (
	"context"

	"github.com/go-faster/errors"
	"github.com/jackc/pgx/v5"

	"hrm/internal/platform/db"
)

const employeeSelect = `
    SELECT e.employeeid, e.firstname,
           ed.educationname, ed.educationid,
           d.departmentname, d.departmentid,
           p.positionname, p.positionid, p.salary,
           COUNT(h.historyid) AS position_changes
    FROM employees e
    JOIN education ed   ON e.educationid = ed.educationid
    JOIN departments d  ON e.departmentid = d.departmentid
    JOIN positions p    ON e.positionid = p.positionid
    LEFT JOIN history h ON e.employeeid = h.employeeid
`

const employeeGroupBy = `
    GROUP BY e.employeeid, ed.educationname, ed.educationid,
             d.departmentname, d.departmentid, p.positionname, p.positionid, p.salary
`

// ListEmployees returns every employee, or only those whose first name,
// department name or position name contains search (case-insensitive) when
// search is non-empty.
func (s *Store) ListEmployees(ctx context.Context, search string) ([]Employee, error) {
	var (
		out []Employee
		err error
	)
	if search != "" {
		out, err = db.QueryAll[Employee](ctx, s.DB, employeeSelect+`
    WHERE e.firstname ILIKE $1 OR d.departmentname ILIKE $1 OR p.positionname ILIKE $1
  `+employeeGroupBy+`
    ORDER BY e.employeeid
  `, "%"+search+"%")
	} else {
		out, err = db.QueryAll[Employee](ctx, s.DB, employeeSelect+employeeGroupBy+`
    ORDER BY e.employeeid
  `)
	}
	if err != nil {
		return nil, errors.Wrap(err, "list employees")
	}
	return out, nil
}

func (s *Store) GetEmployee(ctx context.Context, id int64) (*Employee, error) {
	emp, err := db.QueryOne[Employee](ctx, s.DB, employeeSelect+`
    WHERE e.employeeid = $1
  `+employeeGroupBy, id)
	if err != nil {
		return nil, errors.Wrap(err, "get employee")
	}
	if emp == nil {
		return nil, NotFound("Employee not found")
	}
	return emp, nil
}

// CreateEmployee inserts the employee and its first history row in one
// transaction.
func (s *Store) CreateEmployee(ctx context.Context, in EmployeeInput) (int64, error) {
	var id int64
	err := db.WithTx(ctx, s.DB, func(tx pgx.Tx) error {
		if err := tx.QueryRow(ctx, `
      INSERT INTO employees (firstname, educationid, departmentid, positionid)
      VALUES ($1, $2, $3, $4)
      RETURNING employeeid
    `, in.FirstName, in.EducationID, in.DepartmentID, in.PositionID).Scan(&id); err != nil {
			return err
		}
		_, err := tx.Exec(ctx, `
      INSERT INTO history (employeeid, positionid, date)
      VALUES ($1, $2, CURRENT_DATE)
    `, id, in.PositionID)
		return err
	})
	if err != nil {
		return 0, employeeWriteError(err, "Invalid education_id, department_id or position_id", "create employee")
	}
	return id, nil
}

// UpdateEmployee replaces the employee's fields and records the position for
// today unless an identical (employee, position, date) row already exists.
func (s *Store) UpdateEmployee(ctx context.Context, id int64, in EmployeeInput) error {
	err := db.WithTx(ctx, s.DB, func(tx pgx.Tx) error {
		var updated int64
		err := tx.QueryRow(ctx, `
      UPDATE employees
      SET firstname = $1, educationid = $2, departmentid = $3, positionid = $4
      WHERE employeeid = $5
      RETURNING employeeid
    `, in.FirstName, in.EducationID, in.DepartmentID, in.PositionID, id).Scan(&updated)
		if errors.Is(err, pgx.ErrNoRows) {
			return NotFound("Employee not found")
		}
		if err != nil {
			return err
		}
		_, err = tx.Exec(ctx, `
      INSERT INTO history (employeeid, positionid, date)
      SELECT $1::integer, $2::integer, CURRENT_DATE
      WHERE NOT EXISTS (
        SELECT 1 FROM history
        WHERE employeeid = $1::integer AND positionid = $2::integer AND date = CURRENT_DATE
      )
    `, id, in.PositionID)
		return err
	})
	if err != nil {
		return employeeWriteError(err, "Invalid reference id", "update employee")
	}
	return nil
}

// DeleteEmployee removes the employee's history rows and then the employee.
func (s *Store) DeleteEmployee(ctx context.Context, id int64) error {
	err := db.WithTx(ctx, s.DB, func(tx pgx.Tx) error {
		var exists int
		err := tx.QueryRow(ctx, `SELECT 1 FROM employees WHERE employeeid = $1`, id).Scan(&exists)
		if errors.Is(err, pgx.ErrNoRows) {
			return NotFound("Employee not found")
		}
		if err != nil {
			return err
		}
		if _, err := tx.Exec(ctx, `DELETE FROM history WHERE employeeid = $1`, id); err != nil {
			return err
		}
		_, err = tx.Exec(ctx, `DELETE FROM employees WHERE employeeid = $1`, id)
		return err
	})
	if err != nil {
		return employeeWriteError(err, "", "delete employee")
	}
	return nil
}

func (s *Store) EmployeeExists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := s.DB.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM employees WHERE employeeid = $1)`, id).Scan(&exists)
	if err != nil {
		return false, errors.Wrap(err, "check employee")
	}
	return exists, nil
}

// employeeWriteError keeps domain errors raised inside the transaction,
// reports foreign key violations with fkMessage and any other statement the
// database rejected as a bad request carrying the database's own message.
func employeeWriteError(err error, fkMessage, op string) error {
	var domainErr *Error
	if errors.As(err, &domainErr) {
		return domainErr
	}
	pgErr, ok := pgError(err)
	if !ok {
		return errors.Wrap(err, op)
	}
	if pgErr.Code == pgForeignKeyViolation && fkMessage != "" {
		return BadRequest(fkMessage, err)
	}
	return BadRequest(pgErr.Message, err)
}
