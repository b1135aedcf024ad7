package domain_test

import (
	"testing"

	"github.com/msomdec/enterprise/internal/domain"
)

func TestDepartment_TotalSalary_Empty(t *testing.T) {
	d := domain.NewDepartment("Empty")
	if got := d.TotalSalary(); got != 0 {
		t.Fatalf("expected 0, got %v", got)
	}
}

func TestDepartment_TotalSalary(t *testing.T) {
	d := domain.NewDepartment("Sales")
	d.AddEmployee(domain.Employee{ID: 1, FullName: "A", Salary: 1000})
	d.AddEmployee(domain.Employee{ID: 2, FullName: "B", Salary: 2000})

	if got := d.TotalSalary(); got != 3000 {
		t.Fatalf("expected 3000, got %v", got)
	}
}

func TestDepartment_RemoveEmployee_FirstOccurrence(t *testing.T) {
	d := domain.NewDepartment("Ops")
	d.AddEmployee(domain.Employee{ID: 1, FullName: "A"})
	d.AddEmployee(domain.Employee{ID: 2, FullName: "B"})
	d.AddEmployee(domain.Employee{ID: 1, FullName: "A"})

	if !d.RemoveEmployee(1) {
		t.Fatal("expected employee 1 to be removed")
	}
	if len(d.Employees) != 2 {
		t.Fatalf("expected 2 employees, got %d", len(d.Employees))
	}
	if d.Employees[0].ID != 2 || d.Employees[1].ID != 1 {
		t.Fatalf("unexpected order after remove: %+v", d.Employees)
	}
	if !d.HasEmployee(1) {
		t.Fatal("expected duplicate of employee 1 to remain")
	}
}

func TestDepartment_RemoveEmployee_Missing(t *testing.T) {
	d := domain.NewDepartment("Ops")
	if d.RemoveEmployee(42) {
		t.Fatal("expected false for missing employee")
	}
}

func TestDepartment_RemoveAllEmployees(t *testing.T) {
	d := domain.NewDepartment("Ops")
	d.AddEmployee(domain.Employee{ID: 1})
	d.AddEmployee(domain.Employee{ID: 2})
	d.AddEmployee(domain.Employee{ID: 1})

	if n := d.RemoveAllEmployees(1); n != 2 {
		t.Fatalf("expected 2 removed, got %d", n)
	}
	if len(d.Employees) != 1 || d.Employees[0].ID != 2 {
		t.Fatalf("expected only employee 2 left, got %+v", d.Employees)
	}
	if n := d.RemoveAllEmployees(42); n != 0 {
		t.Fatalf("expected 0 removed for missing employee, got %d", n)
	}
}
