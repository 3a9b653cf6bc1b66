// Package coretest provides an in-memory core.StoreAPI for handler and
// service tests. It enforces the same references the database schema does.
package coretest

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"hrm/internal/domain/core"
)

type historyRow struct {
	id         int64
	employeeID int64
	positionID int64
	date       core.Date
}

type MemStore struct {
	mu sync.Mutex

	PingErr error
	Today   func() core.Date

	nextID      int64
	departments map[int64]core.Department
	positions   map[int64]core.Position
	education   map[int64]core.Education
	employees   map[int64]core.EmployeeInput
	history     []historyRow
}

func NewMemStore() *MemStore {
	return &MemStore{
		Today: func() core.Date {
			now := time.Now().UTC()
			return core.NewDate(now.Year(), now.Month(), now.Day())
		},
		departments: map[int64]core.Department{},
		positions:   map[int64]core.Position{},
		education:   map[int64]core.Education{},
		employees:   map[int64]core.EmployeeInput{},
	}
}

var _ core.StoreAPI = (*MemStore)(nil)

func (m *MemStore) id() int64 {
	m.nextID++
	return m.nextID
}

func (m *MemStore) Ping(context.Context) error {
	return m.PingErr
}

func sortedKeys[V any](in map[int64]V) []int64 {
	keys := make([]int64, 0, len(in))
	for k := range in {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

func (m *MemStore) countEmployees(match func(core.EmployeeInput) bool) int64 {
	var n int64
	for _, emp := range m.employees {
		if match(emp) {
			n++
		}
	}
	return n
}

func (m *MemStore) ListDepartments(context.Context) ([]core.DepartmentSummary, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []core.DepartmentSummary{}
	for _, id := range sortedKeys(m.departments) {
		out = append(out, m.departmentSummary(id))
	}
	return out, nil
}

func (m *MemStore) departmentSummary(id int64) core.DepartmentSummary {
	return core.DepartmentSummary{
		Department:    m.departments[id],
		EmployeeCount: m.countEmployees(func(e core.EmployeeInput) bool { return e.DepartmentID == id }),
	}
}

func (m *MemStore) GetDepartment(_ context.Context, id int64) (*core.DepartmentSummary, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.departments[id]; !ok {
		return nil, core.NotFound("Department not found")
	}
	dep := m.departmentSummary(id)
	return &dep, nil
}

func (m *MemStore) departmentNameTaken(name string, except int64) bool {
	for id, dep := range m.departments {
		if id != except && dep.Name == name {
			return true
		}
	}
	return false
}

func (m *MemStore) CreateDepartment(_ context.Context, name string) (*core.Department, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.departmentNameTaken(name, 0) {
		return nil, core.Conflict("Department already exists", nil)
	}
	dep := core.Department{ID: m.id(), Name: name}
	m.departments[dep.ID] = dep
	return &dep, nil
}

func (m *MemStore) UpdateDepartment(_ context.Context, id int64, name string) (*core.Department, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.departments[id]; !ok {
		return nil, core.NotFound("Department not found")
	}
	if m.departmentNameTaken(name, id) {
		return nil, core.Conflict("Department already exists", nil)
	}
	dep := core.Department{ID: id, Name: name}
	m.departments[id] = dep
	return &dep, nil
}

func (m *MemStore) DeleteDepartment(_ context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.countEmployees(func(e core.EmployeeInput) bool { return e.DepartmentID == id }) > 0 {
		return core.Conflict("Department has employees", nil)
	}
	delete(m.departments, id)
	return nil
}

func (m *MemStore) ListPositions(context.Context) ([]core.Position, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []core.Position{}
	for _, id := range sortedKeys(m.positions) {
		out = append(out, m.positions[id])
	}
	return out, nil
}

func (m *MemStore) GetPosition(_ context.Context, id int64) (*core.Position, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	pos, ok := m.positions[id]
	if !ok {
		return nil, core.NotFound("Position not found")
	}
	return &pos, nil
}

func (m *MemStore) CreatePosition(_ context.Context, name string, salary decimal.Decimal) (*core.Position, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	pos := core.Position{ID: m.id(), Name: name, Salary: core.NewMoney(salary)}
	m.positions[pos.ID] = pos
	return &pos, nil
}

func (m *MemStore) UpdatePosition(_ context.Context, id int64, name string, salary decimal.Decimal) (*core.Position, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.positions[id]; !ok {
		return nil, core.NotFound("Position not found")
	}
	pos := core.Position{ID: id, Name: name, Salary: core.NewMoney(salary)}
	m.positions[id] = pos
	return &pos, nil
}

func (m *MemStore) DeletePosition(_ context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	inUse := m.countEmployees(func(e core.EmployeeInput) bool { return e.PositionID == id }) > 0
	for _, h := range m.history {
		if h.positionID == id {
			inUse = true
		}
	}
	if inUse {
		return core.Conflict("Position is in use", nil)
	}
	delete(m.positions, id)
	return nil
}

func (m *MemStore) educationSummary(id int64) core.EducationSummary {
	return core.EducationSummary{
		Education:     m.education[id],
		EmployeeCount: m.countEmployees(func(e core.EmployeeInput) bool { return e.EducationID == id }),
	}
}

func (m *MemStore) ListEducation(context.Context) ([]core.EducationSummary, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []core.EducationSummary{}
	for _, id := range sortedKeys(m.education) {
		out = append(out, m.educationSummary(id))
	}
	return out, nil
}

func (m *MemStore) GetEducation(_ context.Context, id int64) (*core.EducationSummary, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.education[id]; !ok {
		return nil, core.NotFound("Education not found")
	}
	edu := m.educationSummary(id)
	return &edu, nil
}

func (m *MemStore) CreateEducation(_ context.Context, name string) (*core.Education, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	edu := core.Education{ID: m.id(), Name: name}
	m.education[edu.ID] = edu
	return &edu, nil
}

func (m *MemStore) UpdateEducation(_ context.Context, id int64, name string) (*core.Education, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.education[id]; !ok {
		return nil, core.NotFound("Education not found")
	}
	edu := core.Education{ID: id, Name: name}
	m.education[id] = edu
	return &edu, nil
}

func (m *MemStore) DeleteEducation(_ context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.countEmployees(func(e core.EmployeeInput) bool { return e.EducationID == id }) > 0 {
		return core.Conflict("Education is in use", nil)
	}
	delete(m.education, id)
	return nil
}

func (m *MemStore) employee(id int64) core.Employee {
	in := m.employees[id]
	edu, dep, pos := m.education[in.EducationID], m.departments[in.DepartmentID], m.positions[in.PositionID]
	var changes int64
	for _, h := range m.history {
		if h.employeeID == id {
			changes++
		}
	}
	return core.Employee{
		ID:              id,
		FirstName:       in.FirstName,
		EducationName:   edu.Name,
		EducationID:     edu.ID,
		DepartmentName:  dep.Name,
		DepartmentID:    dep.ID,
		PositionName:    pos.Name,
		PositionID:      pos.ID,
		Salary:          pos.Salary,
		PositionChanges: changes,
	}
}

func (m *MemStore) ListEmployees(_ context.Context, search string) ([]core.Employee, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	needle := strings.ToLower(search)
	out := []core.Employee{}
	for _, id := range sortedKeys(m.employees) {
		emp := m.employee(id)
		if needle != "" &&
			!strings.Contains(strings.ToLower(emp.FirstName), needle) &&
			!strings.Contains(strings.ToLower(emp.DepartmentName), needle) &&
			!strings.Contains(strings.ToLower(emp.PositionName), needle) {
			continue
		}
		out = append(out, emp)
	}
	return out, nil
}

func (m *MemStore) GetEmployee(_ context.Context, id int64) (*core.Employee, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.employees[id]; !ok {
		return nil, core.NotFound("Employee not found")
	}
	emp := m.employee(id)
	return &emp, nil
}

func (m *MemStore) referencesExist(in core.EmployeeInput) bool {
	_, edu := m.education[in.EducationID]
	_, dep := m.departments[in.DepartmentID]
	_, pos := m.positions[in.PositionID]
	return edu && dep && pos
}

func (m *MemStore) recordHistory(employeeID, positionID int64) {
	today := m.Today()
	for _, h := range m.history {
		if h.employeeID == employeeID && h.positionID == positionID && h.date.Equal(today.Time) {
			return
		}
	}
	m.history = append(m.history, historyRow{id: m.id(), employeeID: employeeID, positionID: positionID, date: today})
}

func (m *MemStore) CreateEmployee(_ context.Context, in core.EmployeeInput) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.referencesExist(in) {
		return 0, core.BadRequest("Invalid education_id, department_id or position_id", nil)
	}
	id := m.id()
	m.employees[id] = in
	m.history = append(m.history, historyRow{id: m.id(), employeeID: id, positionID: in.PositionID, date: m.Today()})
	return id, nil
}

func (m *MemStore) UpdateEmployee(_ context.Context, id int64, in core.EmployeeInput) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.employees[id]; !ok {
		return core.NotFound("Employee not found")
	}
	if !m.referencesExist(in) {
		return core.BadRequest("Invalid reference id", nil)
	}
	m.employees[id] = in
	m.recordHistory(id, in.PositionID)
	return nil
}

func (m *MemStore) DeleteEmployee(_ context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.employees[id]; !ok {
		return core.NotFound("Employee not found")
	}
	kept := m.history[:0]
	for _, h := range m.history {
		if h.employeeID != id {
			kept = append(kept, h)
		}
	}
	m.history = kept
	delete(m.employees, id)
	return nil
}

func (m *MemStore) EmployeeExists(_ context.Context, id int64) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.employees[id]
	return ok, nil
}

func (m *MemStore) sortedHistory() []historyRow {
	out := append([]historyRow(nil), m.history...)
	sort.Slice(out, func(i, j int) bool {
		if !out[i].date.Equal(out[j].date.Time) {
			return out[i].date.After(out[j].date.Time)
		}
		return out[i].id > out[j].id
	})
	return out
}

func (m *MemStore) EmployeeHistory(_ context.Context, employeeID int64) ([]core.EmployeeHistoryEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []core.EmployeeHistoryEntry{}
	for _, h := range m.sortedHistory() {
		if h.employeeID != employeeID {
			continue
		}
		pos := m.positions[h.positionID]
		out = append(out, core.EmployeeHistoryEntry{
			ID:           h.id,
			Date:         h.date,
			PositionName: pos.Name,
			Salary:       pos.Salary,
			FirstName:    m.employees[h.employeeID].FirstName,
		})
	}
	return out, nil
}

func (m *MemStore) ListHistory(context.Context) ([]core.HistoryEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []core.HistoryEntry{}
	for _, h := range m.sortedHistory() {
		pos := m.positions[h.positionID]
		out = append(out, core.HistoryEntry{
			ID:           h.id,
			EmployeeName: m.employees[h.employeeID].FirstName,
			EmployeeID:   h.employeeID,
			PositionName: pos.Name,
			Salary:       pos.Salary,
			Date:         h.date,
		})
	}
	return out, nil
}
