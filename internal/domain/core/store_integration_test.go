package core_test

import (
	"context"
	"fmt"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hrm/internal/domain/core"
	"hrm/internal/platform/db"
)

func integrationStore(t *testing.T) *core.Store {
	t.Helper()
	dbURL := os.Getenv("TEST_DATABASE_URL")
	if dbURL == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}
	pool, err := pgxpool.New(context.Background(), dbURL)
	require.NoError(t, err)
	t.Cleanup(pool.Close)
	require.NoError(t, db.ApplySchema(context.Background(), pool))
	return core.NewStore(pool)
}

type seeded struct {
	department *core.Department
	position   *core.Position
	education  *core.Education
}

func seed(t *testing.T, store *core.Store) seeded {
	t.Helper()
	ctx := context.Background()
	suffix := fmt.Sprintf("%d", time.Now().UnixNano())

	dep, err := store.CreateDepartment(ctx, "Dept-"+suffix)
	require.NoError(t, err)
	pos, err := store.CreatePosition(ctx, "Pos-"+suffix, decimal.RequireFromString("1234.50"))
	require.NoError(t, err)
	edu, err := store.CreateEducation(ctx, "Edu-"+suffix)
	require.NoError(t, err)
	return seeded{department: dep, position: pos, education: edu}
}

func (s seeded) employee(name string) core.EmployeeInput {
	return core.EmployeeInput{
		FirstName:    name,
		EducationID:  s.education.ID,
		DepartmentID: s.department.ID,
		PositionID:   s.position.ID,
	}
}

func TestStoreEmployeeLifecycle(t *testing.T) {
	store := integrationStore(t)
	ctx := context.Background()
	s := seed(t, store)

	id, err := store.CreateEmployee(ctx, s.employee("Integration"))
	require.NoError(t, err)

	history, err := store.EmployeeHistory(ctx, id)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.True(t, s.position.Salary.Equal(history[0].Salary.Decimal))

	require.NoError(t, store.UpdateEmployee(ctx, id, s.employee("Integration 2")))
	require.NoError(t, store.UpdateEmployee(ctx, id, s.employee("Integration 3")))
	history, err = store.EmployeeHistory(ctx, id)
	require.NoError(t, err)
	assert.Len(t, history, 1)

	other, err := store.CreatePosition(ctx, "Other-"+s.position.Name, decimal.NewFromInt(10))
	require.NoError(t, err)
	moved := s.employee("Integration 3")
	moved.PositionID = other.ID
	require.NoError(t, store.UpdateEmployee(ctx, id, moved))

	emp, err := store.GetEmployee(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Integration 3", emp.FirstName)
	assert.Equal(t, other.ID, emp.PositionID)
	assert.EqualValues(t, 2, emp.PositionChanges)

	assert.ErrorIs(t, store.DeletePosition(ctx, other.ID), core.ErrConflict)
	assert.ErrorIs(t, store.DeleteDepartment(ctx, s.department.ID), core.ErrConflict)
	assert.ErrorIs(t, store.DeleteEducation(ctx, s.education.ID), core.ErrConflict)

	require.NoError(t, store.DeleteEmployee(ctx, id))
	_, err = store.GetEmployee(ctx, id)
	assert.ErrorIs(t, err, core.ErrNotFound)
	exists, err := store.EmployeeExists(ctx, id)
	require.NoError(t, err)
	assert.False(t, exists)

	require.NoError(t, store.DeletePosition(ctx, other.ID))
	require.NoError(t, store.DeletePosition(ctx, s.position.ID))
	require.NoError(t, store.DeleteDepartment(ctx, s.department.ID))
	require.NoError(t, store.DeleteEducation(ctx, s.education.ID))
}

func TestStoreEmployeeInvalidReferences(t *testing.T) {
	store := integrationStore(t)
	ctx := context.Background()
	s := seed(t, store)

	in := s.employee("Nobody")
	in.DepartmentID = 2147483000
	_, err := store.CreateEmployee(ctx, in)
	assert.ErrorIs(t, err, core.ErrBadRequest)

	err = store.UpdateEmployee(ctx, 2147483000, s.employee("Nobody"))
	assert.ErrorIs(t, err, core.ErrNotFound)
}

func TestStoreSearchIsCaseInsensitive(t *testing.T) {
	store := integrationStore(t)
	ctx := context.Background()
	s := seed(t, store)

	name := fmt.Sprintf("Zebediah%d", time.Now().UnixNano())
	id, err := store.CreateEmployee(ctx, s.employee(name))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.DeleteEmployee(context.Background(), id) })

	found, err := store.ListEmployees(ctx, strings.ToUpper(name))
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, id, found[0].ID)

	byDepartment, err := store.ListEmployees(ctx, strings.ToLower(s.department.Name))
	require.NoError(t, err)
	assert.NotEmpty(t, byDepartment)
}

func TestStoreDuplicateDepartment(t *testing.T) {
	store := integrationStore(t)
	ctx := context.Background()
	s := seed(t, store)

	_, err := store.CreateDepartment(ctx, s.department.Name)
	assert.ErrorIs(t, err, core.ErrConflict)

	_, err = store.GetDepartment(ctx, 2147483000)
	assert.ErrorIs(t, err, core.ErrNotFound)
}
