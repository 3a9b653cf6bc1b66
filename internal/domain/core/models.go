package core

import (
	"encoding/json"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
)

const dateLayout = "2006-01-02"

// MaxSalary is the first value NUMERIC(12,2) cannot store.
const MaxSalary = 10000000000

// Money is a decimal amount rendered as a JSON number. It scans from NUMERIC
// through decimal's sql.Scanner.
type Money struct {
	decimal.Decimal
}

func NewMoney(d decimal.Decimal) Money {
	return Money{Decimal: d}
}

func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(m.Decimal.String()), nil
}

// Date is a calendar date without a time of day.
type Date struct {
	time.Time
}

func NewDate(year int, month time.Month, day int) Date {
	return Date{Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

func (d *Date) ScanDate(v pgtype.Date) error {
	if !v.Valid {
		d.Time = time.Time{}
		return nil
	}
	d.Time = v.Time
	return nil
}

func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(d.Format(dateLayout))
}

func (d *Date) UnmarshalJSON(data []byte) error {
	var raw *string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw == nil || *raw == "" {
		d.Time = time.Time{}
		return nil
	}
	parsed, err := time.Parse(dateLayout, *raw)
	if err != nil {
		return err
	}
	d.Time = parsed
	return nil
}

type Department struct {
	ID   int64  `json:"departmentid" db:"departmentid"`
	Name string `json:"departmentname" db:"departmentname"`
}

type DepartmentSummary struct {
	Department
	EmployeeCount int64 `json:"employee_count" db:"employee_count"`
}

type Position struct {
	ID     int64  `json:"positionid" db:"positionid"`
	Name   string `json:"positionname" db:"positionname"`
	Salary Money  `json:"salary" db:"salary"`
}

type Education struct {
	ID   int64  `json:"educationid" db:"educationid"`
	Name string `json:"educationname" db:"educationname"`
}

type EducationSummary struct {
	Education
	EmployeeCount int64  `json:"employee_count" db:"employee_count"`
}

// Employee is the joined read model: the employee's current education,
// department and position plus the number of history rows recorded for them.
type Employee struct {
	ID              int64  `json:"employeeid" db:"employeeid"`
	FirstName       string `json:"firstname" db:"firstname"`
	EducationName   string `json:"educationname" db:"educationname"`
	EducationID     int64  `json:"educationid" db:"educationid"`
	DepartmentName  string `json:"departmentname" db:"departmentname"`
	DepartmentID    int64  `json:"departmentid" db:"departmentid"`
	PositionName    string `json:"positionname" db:"positionname"`
	PositionID      int64  `json:"positionid" db:"positionid"`
	Salary          Money  `json:"salary" db:"salary"`
	PositionChanges int64  `json:"position_changes" db:"position_changes"`
}

type EmployeeRef struct {
	ID int64  `json:"employeeid" db:"employeeid"`
}

// EmployeeHistoryEntry is one position assignment as listed for a single employee.
type EmployeeHistoryEntry struct {
	ID           int64  `json:"historyid" db:"historyid"`
	Date         Date   `json:"date" db:"date"`
	PositionName string `json:"positionname" db:"positionname"`
	Salary       Money  `json:"salary" db:"salary"`
	FirstName    string `json:"firstname" db:"firstname"`
}

// HistoryEntry is one position assignment in the company-wide log.
type HistoryEntry struct {
	ID           int64  `json:"historyid" db:"historyid"`
	EmployeeName string `json:"employee_name" db:"employee_name"`
	EmployeeID   int64  `json:"employeeid" db:"employeeid"`
	PositionName string `json:"positionname" db:"positionname"`
	Salary       Money  `json:"salary" db:"salary"`
	Date         Date   `json:"date" db:"date"`
}

type DepartmentInput struct {
	Name string `json:"name" validate:"required,min=1,max=100"`
}

type PositionInput struct {
	Name   string           `json:"name" validate:"required,min=1,max=100"`
	Salary *decimal.Decimal `json:"salary" validate:"required,gte=0,lt=10000000000"`
}

type EducationInput struct {
	Name string `json:"name" validate:"required,min=1,max=100"`
}

type EmployeeInput struct {
	FirstName    string `json:"first_name" validate:"required,min=1,max=100"`
	EducationID  int64  `json:"education_id" validate:"required,gt=0,lte=2147483647"`
	DepartmentID int64  `json:"department_id" validate:"required,gt=0,lte=2147483647"`
	PositionID   int64  `json:"position_id" validate:"required,gt=0,lte=2147483647"`
}
