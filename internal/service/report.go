package service

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/msomdec/enterprise/internal/domain"
)

// RenderDepartmentsText renders each department with its members and
// salary total, separated by blank lines.
func RenderDepartmentsText(departments []domain.Department) string {
	var sb strings.Builder
	sb.WriteString("Departments:\n")
	for _, d := range departments {
		fmt.Fprintf(&sb, "Name: %s,\n", d.Name)
		sb.WriteString(renderMembers(d.Employees))
		fmt.Fprintf(&sb, "Department salary: %s\n\n", FormatSalary(d.TotalSalary()))
	}
	return sb.String()
}

// RenderEmployeesText renders one line per employee.
func RenderEmployeesText(employees []domain.Employee) string {
	var sb strings.Builder
	sb.WriteString("All employees:\n")
	for _, e := range employees {
		fmt.Fprintf(&sb, "ID: %d, Name: %s, Age: %d, Salary: %s\n",
			e.ID, e.FullName, e.Age, FormatSalary(e.Salary))
	}
	return sb.String()
}

// FormatSalary prints a salary with two decimals.
func FormatSalary(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

func renderMembers(employees []domain.Employee) string {
	var sb strings.Builder
	sb.WriteString("Employees:\n")
	for _, e := range employees {
		fmt.Fprintf(&sb, "(%d) %s,\n", e.ID, e.FullName)
	}
	return sb.String()
}
