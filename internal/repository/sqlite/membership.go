package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/msomdec/enterprise/internal/domain"
)

// membershipRepo implements domain.MembershipRepository using SQLite.
type membershipRepo struct {
	db      *sql.DB
	metrics *Metrics
}

func (r *membershipRepo) Link(ctx context.Context, employeeID, departmentID int64) (err error) {
	defer func() { r.metrics.observe("membership.link", err) }()

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	if err := link(ctx, tx, employeeID, departmentID); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

func (r *membershipRepo) ListEmployees(ctx context.Context, departmentID int64) (_ []domain.Employee, err error) {
	defer func() { r.metrics.observe("membership.list_employees", err) }()

	rows, err := r.db.QueryContext(ctx,
		`SELECT employees.id, employees.full_name, employees.age, employees.salary
		 FROM employees
		 JOIN employee_department ON employees.id = employee_department.employee_id
		 WHERE employee_department.department_id = ?
		 ORDER BY employee_department.rowid`, departmentID)
	if err != nil {
		return nil, fmt.Errorf("list department employees: %w", err)
	}
	defer rows.Close()
	return scanEmployees(rows)
}

func (r *membershipRepo) DepartmentIDs(ctx context.Context, employeeID int64) (_ []int64, err error) {
	defer func() { r.metrics.observe("membership.department_ids", err) }()

	rows, err := r.db.QueryContext(ctx,
		"SELECT department_id FROM employee_department WHERE employee_id = ? ORDER BY rowid", employeeID)
	if err != nil {
		return nil, fmt.Errorf("list employee departments: %w", err)
	}
	defer rows.Close()

	ids := []int64{}
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan department id: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func (r *membershipRepo) DeleteForDepartment(ctx context.Context, departmentID int64) (err error) {
	defer func() { r.metrics.observe("membership.delete_for_department", err) }()
	return deleteMemberships(ctx, r.db, departmentID)
}

// link inserts one join row after confirming both sides exist. A missing
// side is reported and nothing is written.
func link(ctx context.Context, q querier, employeeID, departmentID int64) error {
	ok, err := employeeExists(ctx, q, employeeID)
	if err != nil {
		return err
	}
	if !ok {
		slog.Warn("membership rejected", "employee_id", employeeID, "department_id", departmentID, "reason", "unknown employee")
		return fmt.Errorf("link employee %d: %w", employeeID, domain.ErrUnknownEmployee)
	}

	ok, err = departmentExists(ctx, q, departmentID)
	if err != nil {
		return err
	}
	if !ok {
		slog.Warn("membership rejected", "employee_id", employeeID, "department_id", departmentID, "reason", "unknown department")
		return fmt.Errorf("link department %d: %w", departmentID, domain.ErrUnknownDepartment)
	}

	if _, err := q.ExecContext(ctx,
		"INSERT INTO employee_department (employee_id, department_id) VALUES (?, ?)",
		employeeID, departmentID,
	); err != nil {
		return fmt.Errorf("insert membership: %w", err)
	}
	return nil
}

func deleteMemberships(ctx context.Context, q querier, departmentID int64) error {
	if _, err := q.ExecContext(ctx,
		"DELETE FROM employee_department WHERE department_id = ?", departmentID,
	); err != nil {
		return fmt.Errorf("delete memberships: %w", err)
	}
	return nil
}
