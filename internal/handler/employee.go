package handler

import (
	"net/http"

	"github.com/msomdec/enterprise/internal/service"
)

// EmployeeHandler serves the employee API.
type EmployeeHandler struct {
	enterprise *service.EnterpriseService
}

// NewEmployeeHandler creates a new EmployeeHandler.
func NewEmployeeHandler(enterprise *service.EnterpriseService) *EmployeeHandler {
	return &EmployeeHandler{enterprise: enterprise}
}

// HandleList returns every stored employee.
func (h *EmployeeHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	employees, err := h.enterprise.Employees(r.Context())
	if err != nil {
		writeServiceError(w, "list employees", err)
		return
	}
	writeJSON(w, http.StatusOK, toEmployeeDTOs(employees))
}

// HandleGet returns one employee.
func (h *EmployeeHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid employee id")
		return
	}

	e, err := h.enterprise.Employee(r.Context(), id)
	if err != nil {
		writeServiceError(w, "get employee", err)
		return
	}
	writeJSON(w, http.StatusOK, toEmployeeDTO(*e))
}

// HandleCreate stores an employee and assigns them to departmentId.
func (h *EmployeeHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req employeeRequest
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	e, err := h.enterprise.AddEmployee(r.Context(), req.FullName, req.Age, req.Salary, req.DepartmentID)
	if err != nil {
		writeServiceError(w, "create employee", err)
		return
	}
	writeJSON(w, http.StatusCreated, toEmployeeDTO(e))
}

// HandleUpdate replaces an employee's details. departmentId is ignored;
// use HandleMove to reassign.
func (h *EmployeeHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid employee id")
		return
	}

	var req employeeRequest
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	e, err := h.enterprise.UpdateEmployee(r.Context(), id, req.FullName, req.Age, req.Salary)
	if err != nil {
		writeServiceError(w, "update employee", err)
		return
	}
	writeJSON(w, http.StatusOK, toEmployeeDTO(e))
}

// HandleMove reassigns an employee to another department.
func (h *EmployeeHandler) HandleMove(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid employee id")
		return
	}

	var req moveRequest
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.enterprise.MoveEmployee(r.Context(), id, req.DepartmentID); err != nil {
		writeServiceError(w, "move employee", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// HandleDelete removes an employee from their department and the store.
func (h *EmployeeHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid employee id")
		return
	}

	if err := h.enterprise.RemoveEmployee(r.Context(), id); err != nil {
		writeServiceError(w, "delete employee", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
