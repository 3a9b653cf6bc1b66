package core

import (
	"context"

	"github.com/go-faster/errors"

	"hrm/internal/platform/db"
)

const educationSummaryQuery = `
    SELECT ed.educationid, ed.educationname,
           COUNT(e.employeeid) AS employee_count
    FROM education ed
    LEFT JOIN employees e ON ed.educationid = e.educationid
`

func (s *Store) ListEducation(ctx context.Context) ([]EducationSummary, error) {
	out, err := db.QueryAll[EducationSummary](ctx, s.DB, educationSummaryQuery+`
    GROUP BY ed.educationid, ed.educationname
    ORDER BY ed.educationid
  `)
	if err != nil {
		return nil, errors.Wrap(err, "list education")
	}
	return out, nil
}

func (s *Store) GetEducation(ctx context.Context, id int64) (*EducationSummary, error) {
	edu, err := db.QueryOne[EducationSummary](ctx, s.DB, educationSummaryQuery+`
    WHERE ed.educationid = $1
    GROUP BY ed.educationid, ed.educationname
  `, id)
	if err != nil {
		return nil, errors.Wrap(err, "get education")
	}
	if edu == nil {
		return nil, NotFound("Education not found")
	}
	return edu, nil
}

func (s *Store) CreateEducation(ctx context.Context, name string) (*Education, error) {
	edu, err := db.ExecReturning[Education](ctx, s.DB, `
    INSERT INTO education (educationname)
    VALUES ($1)
    RETURNING educationid, educationname
  `, name)
	if err != nil {
		return nil, errors.Wrap(err, "create education")
	}
	return edu, nil
}

func (s *Store) UpdateEducation(ctx context.Context, id int64, name string) (*Education, error) {
	edu, err := db.ExecReturning[Education](ctx, s.DB, `
    UPDATE education
    SET educationname = $1
    WHERE educationid = $2
    RETURNING educationid, educationname
  `, name, id)
	if err != nil {
		return nil, errors.Wrap(err, "update education")
	}
	if edu == nil {
		return nil, NotFound("Education not found")
	}
	return edu, nil
}

func (s *Store) DeleteEducation(ctx context.Context, id int64) error {
	if _, err := db.Exec(ctx, s.DB, `DELETE FROM education WHERE educationid = $1`, id); err != nil {
		if hasCode(err, pgForeignKeyViolation) {
			return Conflict("Education is in use", err)
		}
		return errors.Wrap(err, "delete education")
	}
	return nil
}
