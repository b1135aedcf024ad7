package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/msomdec/enterprise/internal/domain"
)

// employeeRepo implements domain.EmployeeRepository using SQLite.
type employeeRepo struct {
	db      *sql.DB
	metrics *Metrics
}

func (r *employeeRepo) Insert(ctx context.Context, fullName string, age int, salary float64) (id int64, err error) {
	defer func() { r.metrics.observe("employee.insert", err) }()

	result, err := r.db.ExecContext(ctx,
		"INSERT INTO employees (full_name, age, salary) VALUES (?, ?, ?)",
		fullName, age, salary,
	)
	if err != nil {
		return domain.InvalidID, fmt.Errorf("insert employee: %w", err)
	}
	return insertedID(result, "employee")
}

func (r *employeeRepo) Create(ctx context.Context, employee *domain.Employee) error {
	id, err := r.Insert(ctx, employee.FullName, employee.Age, employee.Salary)
	if err != nil {
		return err
	}
	employee.ID = id
	return nil
}

func (r *employeeRepo) GetByID(ctx context.Context, id int64) (_ *domain.Employee, err error) {
	defer func() { r.metrics.observe("employee.get", err) }()

	e := &domain.Employee{}
	err = r.db.QueryRowContext(ctx,
		"SELECT id, full_name, age, salary FROM employees WHERE id = ?", id,
	).Scan(&e.ID, &e.FullName, &e.Age, &e.Salary)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get employee: %w", err)
	}
	return e, nil
}

func (r *employeeRepo) List(ctx context.Context) (_ []domain.Employee, err error) {
	defer func() { r.metrics.observe("employee.list", err) }()

	rows, err := r.db.QueryContext(ctx,
		"SELECT id, full_name, age, salary FROM employees ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("list employees: %w", err)
	}
	defer rows.Close()
	return scanEmployees(rows)
}

func (r *employeeRepo) Update(ctx context.Context, employee *domain.Employee) (err error) {
	defer func() { r.metrics.observe("employee.update", err) }()

	_, err = r.db.ExecContext(ctx,
		"UPDATE employees SET full_name = ?, age = ?, salary = ? WHERE id = ?",
		employee.FullName, employee.Age, employee.Salary, employee.ID,
	)
	if err != nil {
		return fmt.Errorf("update employee: %w", err)
	}
	return nil
}

// Delete removes the employee; its join rows go with it through the
// ON DELETE CASCADE on employee_department.employee_id.
func (r *employeeRepo) Delete(ctx context.Context, id int64) (err error) {
	defer func() { r.metrics.observe("employee.delete", err) }()

	if _, err = r.db.ExecContext(ctx, "DELETE FROM employees WHERE id = ?", id); err != nil {
		return fmt.Errorf("delete employee: %w", err)
	}
	return nil
}

func (r *employeeRepo) Exists(ctx context.Context, id int64) (ok bool, err error) {
	defer func() { r.metrics.observe("employee.exists", err) }()
	return employeeExists(ctx, r.db, id)
}

func employeeExists(ctx context.Context, q querier, id int64) (bool, error) {
	var one int
	err := q.QueryRowContext(ctx, "SELECT 1 FROM employees WHERE id = ?", id).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("check employee %d: %w", id, err)
	}
	return true, nil
}

func scanEmployees(rows *sql.Rows) ([]domain.Employee, error) {
	employees := []domain.Employee{}
	for rows.Next() {
		var e domain.Employee
		if err := rows.Scan(&e.ID, &e.FullName, &e.Age, &e.Salary); err != nil {
			return nil, fmt.Errorf("scan employee: %w", err)
		}
		employees = append(employees, e)
	}
	return employees, rows.Err()
}
