package core

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDepartmentSummaryJSONIsFlat(t *testing.T) {
	payload, err := json.Marshal(DepartmentSummary{
		Department:    Department{ID: 1, Name: "Engineering"},
		EmployeeCount: 3,
	})
	require.NoError(t, err)
	assert.JSONEq(t, `{"departmentid":1,"departmentname":"Engineering","employee_count":3}`, string(payload))
}

func TestSalaryRendersAsNumber(t *testing.T) {
	payload, err := json.Marshal(Position{ID: 2, Name: "Engineer", Salary: NewMoney(decimal.RequireFromString("4200.50"))})
	require.NoError(t, err)
	assert.JSONEq(t, `{"positionid":2,"positionname":"Engineer","salary":4200.5}`, string(payload))
}

func TestMoneyLeavesDecimalDefaultsAlone(t *testing.T) {
	assert.False(t, decimal.MarshalJSONWithoutQuotes)

	plain, err := json.Marshal(decimal.RequireFromString("12.30"))
	require.NoError(t, err)
	assert.Equal(t, `"12.3"`, string(plain))

	money, err := json.Marshal(NewMoney(decimal.RequireFromString("12.30")))
	require.NoError(t, err)
	assert.Equal(t, `12.3`, string(money))

	var back Money
	require.NoError(t, json.Unmarshal(money, &back))
	assert.True(t, back.Equal(decimal.RequireFromString("12.3")))
}

func TestMoneyScansNumericText(t *testing.T) {
	var m Money
	require.NoError(t, m.Scan("9999999999.99"))
	assert.Equal(t, "9999999999.99", m.String())
}

func TestDateJSON(t *testing.T) {
	payload, err := json.Marshal(HistoryEntry{ID: 1, EmployeeName: "Ann", EmployeeID: 2, PositionName: "QA", Salary: NewMoney(decimal.NewFromInt(10)), Date: NewDate(2026, time.October, 19)})
	require.NoError(t, err)
	assert.JSONEq(t, `{"historyid":1,"employee_name":"Ann","employeeid":2,"positionname":"QA","salary":10,"date":"2026-10-19"}`, string(payload))

	var d Date
	require.NoError(t, json.Unmarshal([]byte(`"2026-01-02"`), &d))
	assert.Equal(t, NewDate(2026, time.January, 2).Time, d.Time)

	zero, err := json.Marshal(Date{})
	require.NoError(t, err)
	assert.Equal(t, "null", string(zero))
}

func TestDateScan(t *testing.T) {
	var d Date
	require.NoError(t, d.ScanDate(pgtype.Date{Time: time.Date(2026, 3, 4, 0, 0, 0, 0, time.UTC), Valid: true}))
	assert.Equal(t, "2026-03-04", d.Format(dateLayout))

	require.NoError(t, d.ScanDate(pgtype.Date{}))
	assert.True(t, d.IsZero())
}

func TestPositionInputAcceptsNumericSalary(t *testing.T) {
	var in PositionInput
	require.NoError(t, json.Unmarshal([]byte(`{"name":"Engineer","salary":1500.25}`), &in))
	require.NotNil(t, in.Salary)
	assert.True(t, in.Salary.Equal(decimal.RequireFromString("1500.25")))
}
