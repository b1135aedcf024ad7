package handler

import (
	"net/http"

	"github.com/msomdec/enterprise/internal/service"
)

// DepartmentHandler serves the department API.
type DepartmentHandler struct {
	enterprise *service.EnterpriseService
}

// NewDepartmentHandler creates a new DepartmentHandler.
func NewDepartmentHandler(enterprise *service.EnterpriseService) *DepartmentHandler {
	return &DepartmentHandler{enterprise: enterprise}
}

// HandleList returns every department in the session with its members.
func (h *DepartmentHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, toDepartmentDTOs(h.enterprise.Departments()))
}

// HandleGet returns one department.
func (h *DepartmentHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid department id")
		return
	}

	d, err := h.enterprise.Department(id)
	if err != nil {
		writeServiceError(w, "get department", err)
		return
	}
	writeJSON(w, http.StatusOK, toDepartmentDTO(d))
}

// HandleCreate adds a department.
func (h *DepartmentHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req departmentRequest
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	d, err := h.enterprise.AddDepartment(r.Context(), req.Name)
	if err != nil {
		writeServiceError(w, "create department", err)
		return
	}
	writeJSON(w, http.StatusCreated, toDepartmentDTO(d))
}

// HandleRename changes a department's name.
func (h *DepartmentHandler) HandleRename(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid department id")
		return
	}

	var req departmentRequest
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	d, err := h.enterprise.RenameDepartment(r.Context(), id, req.Name)
	if err != nil {
		writeServiceError(w, "rename department", err)
		return
	}
	writeJSON(w, http.StatusOK, toDepartmentDTO(d))
}

// HandleDelete removes a department. Its employees are kept.
func (h *DepartmentHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid department id")
		return
	}

	if err := h.enterprise.RemoveDepartment(r.Context(), id); err != nil {
		writeServiceError(w, "delete department", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// HandleMembers returns the stored members of a department.
func (h *DepartmentHandler) HandleMembers(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid department id")
		return
	}

	members, err := h.enterprise.DepartmentMembers(r.Context(), id)
	if err != nil {
		writeServiceError(w, "list department members", err)
		return
	}
	writeJSON(w, http.StatusOK, toEmployeeDTOs(members))
}
