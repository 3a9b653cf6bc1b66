package core

import (
	"context"
	"time"
)

const healthTimeout = 2 * time.Second

type Service struct {
	store StoreAPI
}

func NewService(store StoreAPI) *Service {
	return &Service{store: store}
}

// Health reports whether a pooled connection can run a query.
func (s *Service) Health(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, healthTimeout)
	defer cancel()
	if err := s.store.Ping(ctx); err != nil {
		return Unavailable("DB unavailable: "+err.Error(), err)
	}
	return nil
}

func (s *Service) ListDepartments(ctx context.Context) ([]DepartmentSummary, error) {
	return s.store.ListDepartments(ctx)
}

func (s *Service) GetDepartment(ctx context.Context, id int64) (*DepartmentSummary, error) {
	return s.store.GetDepartment(ctx, id)
}

func (s *Service) CreateDepartment(ctx context.Context, in DepartmentInput) (*Department, error) {
	if err := Validate(in); err != nil {
		return nil, err
	}
	return s.store.CreateDepartment(ctx, in.Name)
}

func (s *Service) UpdateDepartment(ctx context.Context, id int64, in DepartmentInput) (*Department, error) {
	if err := Validate(in); err != nil {
		return nil, err
	}
	return s.store.UpdateDepartment(ctx, id, in.Name)
}

func (s *Service) DeleteDepartment(ctx context.Context, id int64) error {
	return s.store.DeleteDepartment(ctx, id)
}

func (s *Service) ListPositions(ctx context.Context) ([]Position, error) {
	return s.store.ListPositions(ctx)
}

func (s *Service) GetPosition(ctx context.Context, id int64) (*Position, error) {
	return s.store.GetPosition(ctx, id)
}

func (s *Service) CreatePosition(ctx context.Context, in PositionInput) (*Position, error) {
	if err := Validate(in); err != nil {
		return nil, err
	}
	return s.store.CreatePosition(ctx, in.Name, *in.Salary)
}

func (s *Service) UpdatePosition(ctx context.Context, id int64, in PositionInput) (*Position, error) {
	if err := Validate(in); err != nil {
		return nil, err
	}
	return s.store.UpdatePosition(ctx, id, in.Name, *in.Salary)
}

func (s *Service) DeletePosition(ctx context.Context, id int64) error {
	return s.store.DeletePosition(ctx, id)
}

func (s *Service) ListEducation(ctx context.Context) ([]EducationSummary, error) {
	return s.store.ListEducation(ctx)
}

func (s *Service) GetEducation(ctx context.Context, id int64) (*EducationSummary, error) {
	return s.store.GetEducation(ctx, id)
}

func (s *Service) CreateEducation(ctx context.Context, in EducationInput) (*Education, error) {
	if err := Validate(in); err != nil {
		return nil, err
	}
	return s.store.CreateEducation(ctx, in.Name)
}

func (s *Service) UpdateEducation(ctx context.Context, id int64, in EducationInput) (*Education, error) {
	if err := Validate(in); err != nil {
		return nil, err
	}
	return s.store.UpdateEducation(ctx, id, in.Name)
}

func (s *Service) DeleteEducation(ctx context.Context, id int64) error {
	return s.store.DeleteEducation(ctx, id)
}

func (s *Service) ListEmployees(ctx context.Context, search string) ([]Employee, error) {
	return s.store.ListEmployees(ctx, search)
}

func (s *Service) GetEmployee(ctx context.Context, id int64) (*Employee, error) {
	return s.store.GetEmployee(ctx, id)
}

func (s *Service) CreateEmployee(ctx context.Context, in EmployeeInput) (EmployeeRef, error) {
	if err := Validate(in); err != nil {
		return EmployeeRef{}, err
	}
	id, err := s.store.CreateEmployee(ctx, in)
	if err != nil {
		return EmployeeRef{}, err
	}
	return EmployeeRef{ID: id}, nil
}

func (s *Service) UpdateEmployee(ctx context.Context, id int64, in EmployeeInput) (EmployeeRef, error) {
	if err := Validate(in); err != nil {
		return EmployeeRef{}, err
	}
	if err := s.store.UpdateEmployee(ctx, id, in); err != nil {
		return EmployeeRef{}, err
	}
	return EmployeeRef{ID: id}, nil
}

func (s *Service) DeleteEmployee(ctx context.Context, id int64) error {
	return s.store.DeleteEmployee(ctx, id)
}

func (s *Service) EmployeeHistory(ctx context.Context, id int64) ([]EmployeeHistoryEntry, error) {
	exists, err := s.store.EmployeeExists(ctx, id)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, NotFound("Employee not found")
	}
	return s.store.EmployeeHistory(ctx, id)
}

func (s *Service) ListHistory(ctx context.Context) ([]HistoryEntry, error) {
	return s.store.ListHistory(ctx)
}
