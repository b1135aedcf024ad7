package domain

import "context"

// Employee is a person on the payroll. ID is zero until the store assigns one.
type Employee struct {
	ID       int64
	FullName string
	Age      int
	Salary   float64
}

// EmployeeRepository defines persistence operations for employees.
type EmployeeRepository interface {
	// Insert stores a new row and returns its identity, or InvalidID on failure.
	Insert(ctx context.Context, fullName string, age int, salary float64) (int64, error)
	Create(ctx context.Context, employee *Employee) error
	GetByID(ctx context.Context, id int64) (*Employee, error)
	List(ctx context.Context) ([]Employee, error)
	// Update and Delete are no-ops when id does not match a row.
	Update(ctx context.Context, employee *Employee) error
	Delete(ctx context.Context, id int64) error
	Exists(ctx context.Context, id int64) (bool, error)
}
