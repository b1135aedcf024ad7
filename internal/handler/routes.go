package handler

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/msomdec/enterprise/internal/service"
)

// RegisterRoutes sets up all HTTP routes on the given mux.
func RegisterRoutes(mux *http.ServeMux, enterprise *service.EnterpriseService, db Pinger, gatherer prometheus.Gatherer) {
	departments := NewDepartmentHandler(enterprise)
	employees := NewEmployeeHandler(enterprise)
	reports := NewReportHandler(enterprise)

	mux.HandleFunc("GET /healthz", NewHealthHandler(db))
	mux.Handle("GET /metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	mux.HandleFunc("GET /{$}", HandleHome)
	mux.HandleFunc("GET /ui/report/{kind}", reports.HandleStream)

	mux.HandleFunc("GET /api/departments", departments.HandleList)
	mux.HandleFunc("POST /api/departments", departments.HandleCreate)
	mux.HandleFunc("GET /api/departments/{id}", departments.HandleGet)
	mux.HandleFunc("PUT /api/departments/{id}", departments.HandleRename)
	mux.HandleFunc("DELETE /api/departments/{id}", departments.HandleDelete)
	mux.HandleFunc("GET /api/departments/{id}/employees", departments.HandleMembers)

	mux.HandleFunc("GET /api/employees", employees.HandleList)
	mux.HandleFunc("POST /api/employees", employees.HandleCreate)
	mux.HandleFunc("GET /api/employees/{id}", employees.HandleGet)
	mux.HandleFunc("PUT /api/employees/{id}", employees.HandleUpdate)
	mux.HandleFunc("DELETE /api/employees/{id}", employees.HandleDelete)
	mux.HandleFunc("PUT /api/employees/{id}/department", employees.HandleMove)

	mux.HandleFunc("GET /api/report/{kind}", reports.HandleText)
}
