package core

import (
	"context"

	"github.com/shopspring/decimal"
)

type StoreAPI interface {
	Ping(ctx context.Context) error

	ListDepartments(ctx context.Context) ([]DepartmentSummary, error)
	GetDepartment(ctx context.Context, id int64) (*DepartmentSummary, error)
	CreateDepartment(ctx context.Context, name string) (*Department, error)
	UpdateDepartment(ctx context.Context, id int64, name string) (*Department, error)
	DeleteDepartment(ctx context.Context, id int64) error

	ListPositions(ctx context.Context) ([]Position, error)
	GetPosition(ctx context.Context, id int64) (*Position, error)
	CreatePosition(ctx context.Context, name string, salary decimal.Decimal) (*Position, error)
	UpdatePosition(ctx context.Context, id int64, name string, salary decimal.Decimal) (*Position, error)
	DeletePosition(ctx context.Context, id int64) error

	ListEducation(ctx context.Context) ([]EducationSummary, error)
	GetEducation(ctx context.Context, id int64) (*EducationSummary, error)
	CreateEducation(ctx context.Context, name string) (*Education, error)
	UpdateEducation(ctx context.Context, id int64, name string) (*Education, error)
	DeleteEducation(ctx context.Context, id int64) error

	ListEmployees(ctx context.Context, search string) ([]Employee, error)
	GetEmployee(ctx context.Context, id int64) (*Employee, error)
	CreateEmployee(ctx context.Context, in EmployeeInput) (int64, error)
	UpdateEmployee(ctx context.Context, id int64, in EmployeeInput) error
	DeleteEmployee(ctx context.Context, id int64) error
	EmployeeExists(ctx context.Context, id int64) (bool, error)

	EmployeeHistory(ctx context.Context, employeeID int64) ([]EmployeeHistoryEntry, error)
	ListHistory(ctx context.Context) ([]HistoryEntry, error)
}

var _ StoreAPI = (*Store)(nil)
