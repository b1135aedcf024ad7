package domain_test

import (
	"testing"

	"github.com/msomdec/enterprise/internal/domain"
)

func TestEnterprise_AddRemove(t *testing.T) {
	e := domain.NewEnterprise()
	sales := &domain.Department{ID: 1, Name: "Sales"}
	ops := &domain.Department{ID: 2, Name: "Ops"}
	e.AddDepartment(sales)
	e.AddDepartment(ops)

	if len(e.Departments()) != 2 {
		t.Fatalf("expected 2 departments, got %d", len(e.Departments()))
	}
	if !e.RemoveDepartment(sales) {
		t.Fatal("expected sales to be removed")
	}
	if e.RemoveDepartment(sales) {
		t.Fatal("expected second remove to report false")
	}
	if got := e.Departments(); len(got) != 1 || got[0] != ops {
		t.Fatalf("expected only ops to remain, got %+v", got)
	}
}

func TestEnterprise_Find(t *testing.T) {
	e := domain.NewEnterprise()
	sales := &domain.Department{ID: 1, Name: "Sales"}
	sales.AddEmployee(domain.Employee{ID: 7, FullName: "Alice Smith"})
	e.AddDepartment(sales)

	if e.FindDepartmentByName("Sales") != sales {
		t.Fatal("FindDepartmentByName: expected sales")
	}
	if e.FindDepartmentByName("Nope") != nil {
		t.Fatal("FindDepartmentByName: expected nil for unknown name")
	}
	if e.FindDepartmentByID(1) != sales {
		t.Fatal("FindDepartmentByID: expected sales")
	}
	if e.DepartmentOf(7) != sales {
		t.Fatal("DepartmentOf: expected sales")
	}
	if e.DepartmentOf(8) != nil {
		t.Fatal("DepartmentOf: expected nil for unassigned employee")
	}
}
