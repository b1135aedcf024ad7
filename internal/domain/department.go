package domain

import (
	"context"
	"slices"
)

// Department groups employees. Employees keeps insertion order and does not
// enforce unique membership; changes are persisted only by
// DepartmentRepository.Save.
type Department struct {
	ID        int64
	Name      string
	Employees []Employee
}

// NewDepartment returns an unsaved department with no employees.
func NewDepartment(name string) *Department {
	return &Department{Name: name}
}

// TotalSalary sums the salaries of the department's employees.
func (d *Department) TotalSalary() float64 {
	var total float64
	for _, e := range d.Employees {
		total += e.Salary
	}
	return total
}

func (d *Department) AddEmployee(e Employee) {
	d.Employees = append(d.Employees, e)
}

// RemoveEmployee drops the first employee with the given ID and reports
// whether one was found.
func (d *Department) RemoveEmployee(id int64) bool {
	for i, e := range d.Employees {
		if e.ID == id {
			d.Employees = append(d.Employees[:i], d.Employees[i+1:]...)
			return true
		}
	}
	return false
}

// RemoveAllEmployees drops every occurrence of the employee and returns
// how many were removed.
func (d *Department) RemoveAllEmployees(id int64) int {
	before := len(d.Employees)
	d.Employees = slices.DeleteFunc(d.Employees, func(e Employee) bool { return e.ID == id })
	return before - len(d.Employees)
}

func (d *Department) HasEmployee(id int64) bool {
	for _, e := range d.Employees {
		if e.ID == id {
			return true
		}
	}
	return false
}

// DepartmentRepository defines persistence operations for departments.
type DepartmentRepository interface {
	// Insert stores a new row and returns its identity, or InvalidID on failure.
	Insert(ctx context.Context, name string) (int64, error)
	Create(ctx context.Context, department *Department) error
	GetByID(ctx context.Context, id int64) (*Department, error)
	List(ctx context.Context) ([]Department, error)
	Update(ctx context.Context, department *Department) error
	Delete(ctx context.Context, id int64) error
	Exists(ctx context.Context, id int64) (bool, error)
	// Save inserts the department if it has no ID yet, then replaces its
	// join rows with one row per in-memory employee, atomically.
	Save(ctx context.Context, department *Department) error
}

// MembershipRepository maintains the employee_department join table.
type MembershipRepository interface {
	// Link inserts a join row after checking both identities exist. It
	// returns ErrUnknownEmployee or ErrUnknownDepartment otherwise.
	Link(ctx context.Context, employeeID, departmentID int64) error
	ListEmployees(ctx context.Context, departmentID int64) ([]Employee, error)
	DepartmentIDs(ctx context.Context, employeeID int64) ([]int64, error)
	DeleteForDepartment(ctx context.Context, departmentID int64) error
}
