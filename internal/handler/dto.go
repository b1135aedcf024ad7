package handler

import "github.com/msomdec/enterprise/internal/domain"

// EmployeeDTO is the JSON representation of an employee.
type EmployeeDTO struct {
	ID       int64   `json:"id"`
	FullName string  `json:"fullName"`
	Age      int     `json:"age"`
	Salary   float64 `json:"salary"`
}

func toEmployeeDTO(e domain.Employee) EmployeeDTO {
	return EmployeeDTO{ID: e.ID, FullName: e.FullName, Age: e.Age, Salary: e.Salary}
}

func toEmployeeDTOs(employees []domain.Employee) []EmployeeDTO {
	dtos := make([]EmployeeDTO, len(employees))
	for i, e := range employees {
		dtos[i] = toEmployeeDTO(e)
	}
	return dtos
}

// DepartmentDTO is the JSON representation of a department and its members.
type DepartmentDTO struct {
	ID          int64         `json:"id"`
	Name        string        `json:"name"`
	Employees   []EmployeeDTO `json:"employees"`
	TotalSalary float64       `json:"totalSalary"`
}

func toDepartmentDTO(d domain.Department) DepartmentDTO {
	return DepartmentDTO{
		ID:          d.ID,
		Name:        d.Name,
		Employees:   toEmployeeDTOs(d.Employees),
		TotalSalary: d.TotalSalary(),
	}
}

func toDepartmentDTOs(departments []domain.Department) []DepartmentDTO {
	dtos := make([]DepartmentDTO, len(departments))
	for i, d := range departments {
		dtos[i] = toDepartmentDTO(d)
	}
	return dtos
}

type departmentRequest struct {
	Name string `json:"name"`
}

type employeeRequest struct {
	FullName     string  `json:"fullName"`
	Age          int     `json:"age"`
	Salary       float64 `json:"salary"`
	DepartmentID int64   `json:"departmentId"`
}

type moveRequest struct {
	DepartmentID int64 `json:"departmentId"`
}
