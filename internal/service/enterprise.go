package service

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/msomdec/enterprise/internal/domain"
)

// EnterpriseService runs the registry's use cases against an in-memory
// session (domain.Enterprise) and persists each change it makes. Calls are
// serialised; the session is not safe to share otherwise.
type EnterpriseService struct {
	mu          sync.Mutex
	employees   domain.EmployeeRepository
	departments domain.DepartmentRepository
	memberships domain.MembershipRepository
	session     *domain.Enterprise
}

// NewEnterpriseService creates a new EnterpriseService with an empty session.
// Call Load to populate it from the store.
func NewEnterpriseService(employees domain.EmployeeRepository, departments domain.DepartmentRepository, memberships domain.MembershipRepository) *EnterpriseService {
	return &EnterpriseService{
		employees:   employees,
		departments: departments,
		memberships: memberships,
		session:     domain.NewEnterprise(),
	}
}

// Load replaces the session with every stored department and its members.
func (s *EnterpriseService) Load(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	departments, err := s.departments.List(ctx)
	if err != nil {
		return fmt.Errorf("load departments: %w", err)
	}

	session := domain.NewEnterprise()
	for i := range departments {
		d := &departments[i]
		members, err := s.memberships.ListEmployees(ctx, d.ID)
		if err != nil {
			return fmt.Errorf("load members of department %d: %w", d.ID, err)
		}
		d.Employees = members
		session.AddDepartment(d)
	}
	s.session = session
	return nil
}

// Departments returns a copy of the session's departments.
func (s *EnterpriseService) Departments() []domain.Department {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.Department, 0, len(s.session.Departments()))
	for _, d := range s.session.Departments() {
		out = append(out, cloneDepartment(d))
	}
	return out
}

// Department returns a copy of one session department.
func (s *EnterpriseService) Department(id int64) (domain.Department, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	d := s.session.FindDepartmentByID(id)
	if d == nil {
		return domain.Department{}, domain.ErrNotFound
	}
	return cloneDepartment(d), nil
}

// DepartmentMembers reads a department's members from the join table
// rather than the session.
func (s *EnterpriseService) DepartmentMembers(ctx context.Context, id int64) ([]domain.Employee, error) {
	ok, err := s.departments.Exists(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("check department: %w", err)
	}
	if !ok {
		return nil, domain.ErrNotFound
	}
	return s.memberships.ListEmployees(ctx, id)
}

// Employees returns every stored employee, assigned or not.
func (s *EnterpriseService) Employees(ctx context.Context) ([]domain.Employee, error) {
	return s.employees.List(ctx)
}

// Employee returns one stored employee.
func (s *EnterpriseService) Employee(ctx context.Context, id int64) (*domain.Employee, error) {
	return s.employees.GetByID(ctx, id)
}

// AddDepartment creates a department in the session and the store.
func (s *EnterpriseService) AddDepartment(ctx context.Context, name string) (domain.Department, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return domain.Department{}, fmt.Errorf("%w: department name is required", domain.ErrInvalidInput)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	d := domain.NewDepartment(name)
	if err := s.departments.Save(ctx, d); err != nil {
		return domain.Department{}, fmt.Errorf("save department: %w", err)
	}
	s.session.AddDepartment(d)
	return cloneDepartment(d), nil
}

// RemoveDepartment deletes a department. Its members stay on record but
// no longer belong to any department.
func (s *EnterpriseService) RemoveDepartment(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	d := s.session.FindDepartmentByID(id)
	if d == nil {
		return domain.ErrNotFound
	}
	if err := s.departments.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete department: %w", err)
	}
	s.session.RemoveDepartment(d)
	return nil
}

// RenameDepartment changes a department's name in the session and the store.
func (s *EnterpriseService) RenameDepartment(ctx context.Context, id int64, name string) (domain.Department, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return domain.Department{}, fmt.Errorf("%w: department name is required", domain.ErrInvalidInput)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	d := s.session.FindDepartmentByID(id)
	if d == nil {
		return domain.Department{}, domain.ErrNotFound
	}

	renamed := domain.Department{ID: d.ID, Name: name}
	if err := s.departments.Update(ctx, &renamed); err != nil {
		return domain.Department{}, fmt.Errorf("rename department: %w", err)
	}
	d.Name = name
	return cloneDepartment(d), nil
}

// AddEmployee stores a new employee and assigns them to a department.
// If the assignment fails the employee remains stored but unassigned.
func (s *EnterpriseService) AddEmployee(ctx context.Context, fullName string, age int, salary float64, departmentID int64) (domain.Employee, error) {
	fullName = strings.TrimSpace(fullName)
	if fullName == "" {
		return domain.Employee{}, fmt.Errorf("%w: employee name is required", domain.ErrInvalidInput)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	d := s.session.FindDepartmentByID(departmentID)
	if d == nil {
		return domain.Employee{}, fmt.Errorf("department %d: %w", departmentID, domain.ErrNotFound)
	}

	id, err := s.employees.Insert(ctx, fullName, age, salary)
	if err != nil {
		return domain.Employee{}, fmt.Errorf("create employee: %w", err)
	}
	e := domain.Employee{ID: id, FullName: fullName, Age: age, Salary: salary}

	if err := s.attach(ctx, d, e); err != nil {
		return e, err
	}
	return e, nil
}

// UpdateEmployee replaces an employee's details and refreshes every session
// copy of that employee.
func (s *EnterpriseService) UpdateEmployee(ctx context.Context, id int64, fullName string, age int, salary float64) (domain.Employee, error) {
	fullName = strings.TrimSpace(fullName)
	if fullName == "" {
		return domain.Employee{}, fmt.Errorf("%w: employee name is required", domain.ErrInvalidInput)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.employees.GetByID(ctx, id); err != nil {
		return domain.Employee{}, err
	}

	e := domain.Employee{ID: id, FullName: fullName, Age: age, Salary: salary}
	if err := s.employees.Update(ctx, &e); err != nil {
		return domain.Employee{}, fmt.Errorf("update employee: %w", err)
	}

	for _, d := range s.session.Departments() {
		for i := range d.Employees {
			if d.Employees[i].ID == id {
				d.Employees[i] = e
			}
		}
	}
	return e, nil
}

// MoveEmployee takes an employee out of every department holding them and
// appends them to another one.
func (s *EnterpriseService) MoveEmployee(ctx context.Context, id, departmentID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, err := s.employees.GetByID(ctx, id)
	if err != nil {
		return err
	}
	target := s.session.FindDepartmentByID(departmentID)
	if target == nil {
		return fmt.Errorf("department %d: %w", departmentID, domain.ErrNotFound)
	}

	if err := s.detach(ctx, id); err != nil {
		return err
	}
	return s.attach(ctx, target, *e)
}

// RemoveEmployee takes an employee out of every department and deletes them.
func (s *EnterpriseService) RemoveEmployee(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.employees.GetByID(ctx, id); err != nil {
		return err
	}
	if err := s.detach(ctx, id); err != nil {
		return err
	}
	if err := s.employees.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete employee: %w", err)
	}
	return nil
}

// DepartmentsReport renders the session's departments as text.
func (s *EnterpriseService) DepartmentsReport() string {
	return RenderDepartmentsText(s.Departments())
}

// EmployeesReport renders every stored employee as text.
func (s *EnterpriseService) EmployeesReport(ctx context.Context) (string, error) {
	employees, err := s.employees.List(ctx)
	if err != nil {
		return "", fmt.Errorf("list employees: %w", err)
	}
	return RenderEmployeesText(employees), nil
}

// attach appends e to d and saves d, undoing the append if the save fails.
func (s *EnterpriseService) attach(ctx context.Context, d *domain.Department, e domain.Employee) error {
	prev := slices.Clone(d.Employees)
	d.AddEmployee(e)
	if err := s.departments.Save(ctx, d); err != nil {
		d.Employees = prev
		return fmt.Errorf("assign employee %d to department %d: %w", e.ID, d.ID, err)
	}
	return nil
}

// detach removes every occurrence of the employee from each session
// department that holds them, or that the join table links them to, and
// saves each of those departments. Departments saved before a failure stay
// saved.
func (s *EnterpriseService) detach(ctx context.Context, employeeID int64) error {
	linked, err := s.memberships.DepartmentIDs(ctx, employeeID)
	if err != nil {
		return fmt.Errorf("list departments of employee %d: %w", employeeID, err)
	}

	for _, d := range s.session.Departments() {
		if !d.HasEmployee(employeeID) && !slices.Contains(linked, d.ID) {
			continue
		}
		prev := slices.Clone(d.Employees)
		d.RemoveAllEmployees(employeeID)
		if err := s.departments.Save(ctx, d); err != nil {
			d.Employees = prev
			return fmt.Errorf("unassign employee %d from department %d: %w", employeeID, d.ID, err)
		}
	}
	return nil
}

func cloneDepartment(d *domain.Department) domain.Department {
	return domain.Department{ID: d.ID, Name: d.Name, Employees: slices.Clone(d.Employees)}
}
