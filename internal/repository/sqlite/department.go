package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/msomdec/enterprise/internal/domain"
)

// departmentRepo implements domain.DepartmentRepository using SQLite.
type departmentRepo struct {
	db      *sql.DB
	metrics *Metrics
}

func (r *departmentRepo) Insert(ctx context.Context, name string) (id int64, err error) {
	defer func() { r.metrics.observe("department.insert", err) }()
	return insertDepartment(ctx, r.db, name)
}

func (r *departmentRepo) Create(ctx context.Context, department *domain.Department) error {
	id, err := r.Insert(ctx, department.Name)
	if err != nil {
		return err
	}
	department.ID = id
	return nil
}

// GetByID returns the department row. Employees is left empty; members
// are loaded through MembershipRepository.ListEmployees.
func (r *departmentRepo) GetByID(ctx context.Context, id int64) (_ *domain.Department, err error) {
	defer func() { r.metrics.observe("department.get", err) }()

	d := &domain.Department{}
	err = r.db.QueryRowContext(ctx,
		"SELECT id, name FROM departments WHERE id = ?", id,
	).Scan(&d.ID, &d.Name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get department: %w", err)
	}
	return d, nil
}

func (r *departmentRepo) List(ctx context.Context) (_ []domain.Department, err error) {
	defer func() { r.metrics.observe("department.list", err) }()

	rows, err := r.db.QueryContext(ctx, "SELECT id, name FROM departments ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("list departments: %w", err)
	}
	defer rows.Close()

	departments := []domain.Department{}
	for rows.Next() {
		var d domain.Department
		if err := rows.Scan(&d.ID, &d.Name); err != nil {
			return nil, fmt.Errorf("scan department: %w", err)
		}
		departments = append(departments, d)
	}
	return departments, rows.Err()
}

func (r *departmentRepo) Update(ctx context.Context, department *domain.Department) (err error) {
	defer func() { r.metrics.observe("department.update", err) }()

	_, err = r.db.ExecContext(ctx,
		"UPDATE departments SET name = ? WHERE id = ?", department.Name, department.ID)
	if err != nil {
		return fmt.Errorf("update department: %w", err)
	}
	return nil
}

// Delete removes the department; its join rows are removed by the
// ON DELETE CASCADE on employee_department.department_id.
func (r *departmentRepo) Delete(ctx context.Context, id int64) (err error) {
	defer func() { r.metrics.observe("department.delete", err) }()

	if _, err = r.db.ExecContext(ctx, "DELETE FROM departments WHERE id = ?", id); err != nil {
		return fmt.Errorf("delete department: %w", err)
	}
	return nil
}

func (r *departmentRepo) Exists(ctx context.Context, id int64) (ok bool, err error) {
	defer func() { r.metrics.observe("department.exists", err) }()
	return departmentExists(ctx, r.db, id)
}

func (r *departmentRepo) Save(ctx context.Context, department *domain.Department) (err error) {
	defer func() { r.metrics.observe("department.save", err) }()

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	id := department.ID
	if id == 0 {
		id, err = insertDepartment(ctx, tx, department.Name)
		if err != nil {
			return err
		}
	} else {
		ok, err := departmentExists(ctx, tx, id)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("save department %d: %w", id, domain.ErrUnknownDepartment)
		}
	}

	// Replace membership wholesale so the stored rows match the in-memory list.
	if err := deleteMemberships(ctx, tx, id); err != nil {
		return err
	}
	for _, e := range department.Employees {
		if err := link(ctx, tx, e.ID, id); err != nil {
			return fmt.Errorf("save department %q: %w", department.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}

	department.ID = id
	return nil
}

func insertDepartment(ctx context.Context, q querier, name string) (int64, error) {
	result, err := q.ExecContext(ctx, "INSERT INTO departments (name) VALUES (?)", name)
	if err != nil {
		return domain.InvalidID, fmt.Errorf("insert department: %w", err)
	}
	return insertedID(result, "department")
}

func departmentExists(ctx context.Context, q querier, id int64) (bool, error) {
	var one int
	err := q.QueryRowContext(ctx, "SELECT 1 FROM departments WHERE id = ?", id).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("check department %d: %w", id, err)
	}
	return true, nil
}
