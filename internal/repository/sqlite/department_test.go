package sqlite_test

import (
	"context"
	"errors"
	"slices"
	"testing"

	"github.com/msomdec/enterprise/internal/domain"
	"github.com/msomdec/enterprise/internal/repository/sqlite"
)

func seedEmployees(t *testing.T, db *sqlite.DB, names ...string) []domain.Employee {
	t.Helper()
	var out []domain.Employee
	for i, name := range names {
		e := domain.Employee{FullName: name, Age: 20 + i, Salary: float64(1000 * (i + 1))}
		if err := db.Employees().Create(context.Background(), &e); err != nil {
			t.Fatalf("seed employee %s: %v", name, err)
		}
		out = append(out, e)
	}
	return out
}

func TestDepartmentRepository_Insert(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	id, err := db.Departments().Insert(ctx, "Research")
	if err != nil {
		t.Fatalf("Insert: %v", err)
	}
	if id <= 0 {
		t.Fatalf("expected positive id, got %d", id)
	}

	all, err := db.Departments().List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(all) != 1 || all[0].ID != id || all[0].Name != "Research" {
		t.Fatalf("unexpected departments: %+v", all)
	}
}

func TestDepartmentRepository_GetByID_NotFound(t *testing.T) {
	db := newTestDB(t)

	_, err := db.Departments().GetByID(context.Background(), 12345)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestDepartmentRepository_Update(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	d := domain.NewDepartment("Old")
	if err := db.Departments().Create(ctx, d); err != nil {
		t.Fatalf("Create: %v", err)
	}
	d.Name = "New"
	if err := db.Departments().Update(ctx, d); err != nil {
		t.Fatalf("Update: %v", err)
	}

	found, err := db.Departments().GetByID(ctx, d.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if found.Name != "New" {
		t.Fatalf("expected name New, got %q", found.Name)
	}
}

func TestDepartmentRepository_Update_Missing(t *testing.T) {
	db := newTestDB(t)

	err := db.Departments().Update(context.Background(), &domain.Department{ID: 77, Name: "x"})
	if err != nil {
		t.Fatalf("expected no-op update, got %v", err)
	}
}

func TestDepartmentRepository_Delete_Cascades(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	emps := seedEmployees(t, db, "A", "B")
	d := domain.NewDepartment("Doomed")
	d.AddEmployee(emps[0])
	d.AddEmployee(emps[1])
	if err := db.Departments().Save(ctx, d); err != nil {
		t.Fatalf("Save: %v", err)
	}

	if err := db.Departments().Delete(ctx, d.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	members, err := db.Memberships().ListEmployees(ctx, d.ID)
	if err != nil {
		t.Fatalf("ListEmployees: %v", err)
	}
	if len(members) != 0 {
		t.Fatalf("expected no members after delete, got %+v", members)
	}
	if ids := joinRows(t, db, d.ID); len(ids) != 0 {
		t.Fatalf("expected join rows to cascade, got %v", ids)
	}

	// Employees themselves survive.
	all, err := db.Employees().List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected 2 employees to survive, got %d", len(all))
	}
}

func TestDepartmentRepository_Save_InsertsNew(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	emps := seedEmployees(t, db, "A", "B")
	d := domain.NewDepartment("Sales")
	d.AddEmployee(emps[0])
	d.AddEmployee(emps[1])

	if err := db.Departments().Save(ctx, d); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if d.ID <= 0 {
		t.Fatalf("expected department id to be assigned, got %d", d.ID)
	}

	got := joinRows(t, db, d.ID)
	want := []int64{emps[0].ID, emps[1].ID}
	if !slices.Equal(got, want) {
		t.Fatalf("expected join rows %v, got %v", want, got)
	}
}

func TestDepartmentRepository_Save_Resync(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	emps := seedEmployees(t, db, "A", "B", "C")
	d := domain.NewDepartment("Ops")
	d.AddEmployee(emps[0])
	d.AddEmployee(emps[1])
	if err := db.Departments().Save(ctx, d); err != nil {
		t.Fatalf("first Save: %v", err)
	}

	d.RemoveEmployee(emps[0].ID)
	d.AddEmployee(emps[2])
	if err := db.Departments().Save(ctx, d); err != nil {
		t.Fatalf("second Save: %v", err)
	}
	want := []int64{emps[1].ID, emps[2].ID}
	if got := joinRows(t, db, d.ID); !slices.Equal(got, want) {
		t.Fatalf("after resync expected %v, got %v", want, got)
	}

	// Saving again with unchanged membership yields the same rows.
	if err := db.Departments().Save(ctx, d); err != nil {
		t.Fatalf("third Save: %v", err)
	}
	if got := joinRows(t, db, d.ID); !slices.Equal(got, want) {
		t.Fatalf("after idempotent save expected %v, got %v", want, got)
	}

	members, err := db.Memberships().ListEmployees(ctx, d.ID)
	if err != nil {
		t.Fatalf("ListEmployees: %v", err)
	}
	if len(members) != 2 || members[0].ID != emps[1].ID || members[1].ID != emps[2].ID {
		t.Fatalf("expected members in save order, got %+v", members)
	}
}

func TestDepartmentRepository_Save_EmptyClearsMembership(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	emps := seedEmployees(t, db, "A")
	d := domain.NewDepartment("Solo")
	d.AddEmployee(emps[0])
	if err := db.Departments().Save(ctx, d); err != nil {
		t.Fatalf("Save: %v", err)
	}

	d.RemoveEmployee(emps[0].ID)
	if err := db.Departments().Save(ctx, d); err != nil {
		t.Fatalf("Save empty: %v", err)
	}
	if got := joinRows(t, db, d.ID); len(got) != 0 {
		t.Fatalf("expected no join rows, got %v", got)
	}
}

func TestDepartmentRepository_Save_UnknownEmployeeRollsBack(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	emps := seedEmployees(t, db, "A")
	d := domain.NewDepartment("Partial")
	d.AddEmployee(emps[0])
	if err := db.Departments().Save(ctx, d); err != nil {
		t.Fatalf("Save: %v", err)
	}

	d.AddEmployee(domain.Employee{ID: 9999, FullName: "Ghost"})
	err := db.Departments().Save(ctx, d)
	if !errors.Is(err, domain.ErrUnknownEmployee) {
		t.Fatalf("expected ErrUnknownEmployee, got %v", err)
	}

	// The earlier membership is intact: the delete was rolled back.
	if got := joinRows(t, db, d.ID); !slices.Equal(got, []int64{emps[0].ID}) {
		t.Fatalf("expected membership unchanged, got %v", got)
	}
}

func TestDepartmentRepository_Save_NewDepartmentRollsBack(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	d := domain.NewDepartment("Never")
	d.AddEmployee(domain.Employee{FullName: "Unsaved"})

	err := db.Departments().Save(ctx, d)
	if !errors.Is(err, domain.ErrUnknownEmployee) {
		t.Fatalf("expected ErrUnknownEmployee, got %v", err)
	}
	if d.ID != 0 {
		t.Fatalf("expected ID to stay 0 after failed save, got %d", d.ID)
	}

	all, err := db.Departments().List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(all) != 0 {
		t.Fatalf("expected insert to be rolled back, got %+v", all)
	}
}

func TestDepartmentRepository_Save_DeletedDepartment(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	d := domain.NewDepartment("Gone")
	if err := db.Departments().Save(ctx, d); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := db.Departments().Delete(ctx, d.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	err := db.Departments().Save(ctx, d)
	if !errors.Is(err, domain.ErrUnknownDepartment) {
		t.Fatalf("expected ErrUnknownDepartment, got %v", err)
	}
}
