package core_test

import (
	"context"
	"testing"
	"time"

	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hrm/internal/domain/core"
	"hrm/internal/domain/core/coretest"
)

type fixture struct {
	store      *coretest.MemStore
	svc        *core.Service
	department *core.Department
	position   *core.Position
	education  *core.Education
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	ctx := context.Background()
	store := coretest.NewMemStore()
	svc := core.NewService(store)

	dep, err := svc.CreateDepartment(ctx, core.DepartmentInput{Name: "Engineering"})
	require.NoError(t, err)
	salary := decimal.NewFromInt(5000)
	pos, err := svc.CreatePosition(ctx, core.PositionInput{Name: "Engineer", Salary: &salary})
	require.NoError(t, err)
	edu, err := svc.CreateEducation(ctx, core.EducationInput{Name: "Master"})
	require.NoError(t, err)

	return fixture{store: store, svc: svc, department: dep, position: pos, education: edu}
}

func (f fixture) input(name string) core.EmployeeInput {
	return core.EmployeeInput{
		FirstName:    name,
		EducationID:  f.education.ID,
		DepartmentID: f.department.ID,
		PositionID:   f.position.ID,
	}
}

func TestHealthReportsUnavailable(t *testing.T) {
	store := coretest.NewMemStore()
	svc := core.NewService(store)
	require.NoError(t, svc.Health(context.Background()))

	store.PingErr = errors.New("connection refused")
	err := svc.Health(context.Background())
	assert.ErrorIs(t, err, core.ErrUnavailable)
	assert.Contains(t, err.Error(), "DB unavailable: connection refused")
}

func TestCreateValidatesBeforeStore(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.svc.CreateDepartment(ctx, core.DepartmentInput{Name: ""})
	assert.ErrorIs(t, err, core.ErrValidation)

	negative := decimal.NewFromInt(-1)
	_, err = f.svc.CreatePosition(ctx, core.PositionInput{Name: "Intern", Salary: &negative})
	assert.ErrorIs(t, err, core.ErrValidation)

	deps, err := f.svc.ListDepartments(ctx)
	require.NoError(t, err)
	assert.Len(t, deps, 1)
}

func TestCreateEmployeeRecordsHistory(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	ref, err := f.svc.CreateEmployee(ctx, f.input("Ann"))
	require.NoError(t, err)
	assert.Positive(t, ref.ID)

	history, err := f.svc.EmployeeHistory(ctx, ref.ID)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, f.position.Name, history[0].PositionName)
}

func TestCreateEmployeeRejectsUnknownReferences(t *testing.T) {
	f := newFixture(t)
	in := f.input("Ann")
	in.PositionID = 999

	_, err := f.svc.CreateEmployee(context.Background(), in)
	assert.ErrorIs(t, err, core.ErrBadRequest)
}

func TestUpdateEmployeeSameDaySamePositionIsIdempotent(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	ref, err := f.svc.CreateEmployee(ctx, f.input("Ann"))
	require.NoError(t, err)

	_, err = f.svc.UpdateEmployee(ctx, ref.ID, f.input("Anna"))
	require.NoError(t, err)
	_, err = f.svc.UpdateEmployee(ctx, ref.ID, f.input("Annie"))
	require.NoError(t, err)

	emp, err := f.svc.GetEmployee(ctx, ref.ID)
	require.NoError(t, err)
	assert.Equal(t, "Annie", emp.FirstName)
	assert.EqualValues(t, 1, emp.PositionChanges)

	salary := decimal.NewFromInt(9000)
	lead, err := f.svc.CreatePosition(ctx, core.PositionInput{Name: "Lead", Salary: &salary})
	require.NoError(t, err)
	in := f.input("Annie")
	in.PositionID = lead.ID
	_, err = f.svc.UpdateEmployee(ctx, ref.ID, in)
	require.NoError(t, err)

	history, err := f.svc.EmployeeHistory(ctx, ref.ID)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, "Lead", history[0].PositionName)
}

func TestUpdateEmployeeOnLaterDayAddsRow(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	ref, err := f.svc.CreateEmployee(ctx, f.input("Ann"))
	require.NoError(t, err)

	f.store.Today = func() core.Date { return core.NewDate(2099, time.January, 1) }
	_, err = f.svc.UpdateEmployee(ctx, ref.ID, f.input("Ann"))
	require.NoError(t, err)

	history, err := f.svc.EmployeeHistory(ctx, ref.ID)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, "2099-01-01", history[0].Date.Format("2006-01-02"))
}

func TestUpdateMissingEmployee(t *testing.T) {
	f := newFixture(t)
	_, err := f.svc.UpdateEmployee(context.Background(), 404, f.input("Ghost"))
	assert.ErrorIs(t, err, core.ErrNotFound)
}

func TestDeleteEmployeeRemovesHistory(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	ref, err := f.svc.CreateEmployee(ctx, f.input("Ann"))
	require.NoError(t, err)

	require.NoError(t, f.svc.DeleteEmployee(ctx, ref.ID))

	_, err = f.svc.GetEmployee(ctx, ref.ID)
	assert.ErrorIs(t, err, core.ErrNotFound)
	_, err = f.svc.EmployeeHistory(ctx, ref.ID)
	assert.ErrorIs(t, err, core.ErrNotFound)
	all, err := f.svc.ListHistory(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)

	assert.ErrorIs(t, f.svc.DeleteEmployee(ctx, ref.ID), core.ErrNotFound)
}

func TestDeleteReferencedEntitiesConflicts(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	_, err := f.svc.CreateEmployee(ctx, f.input("Ann"))
	require.NoError(t, err)

	assert.ErrorIs(t, f.svc.DeleteDepartment(ctx, f.department.ID), core.ErrConflict)
	assert.ErrorIs(t, f.svc.DeletePosition(ctx, f.position.ID), core.ErrConflict)
	assert.ErrorIs(t, f.svc.DeleteEducation(ctx, f.education.ID), core.ErrConflict)

	dep, err := f.svc.GetDepartment(ctx, f.department.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, dep.EmployeeCount)
}
