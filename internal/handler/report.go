package handler

import (
	"context"
	"net/http"

	"github.com/starfederation/datastar-go/datastar"

	"github.com/msomdec/enterprise/internal/service"
	"github.com/msomdec/enterprise/internal/view"
)

// ReportHandler serves the text reports, both as plain text and as a
// datastar patch for the home page.
type ReportHandler struct {
	enterprise *service.EnterpriseService
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(enterprise *service.EnterpriseService) *ReportHandler {
	return &ReportHandler{enterprise: enterprise}
}

// render returns the report named kind. ok is false for unknown kinds.
func (h *ReportHandler) render(ctx context.Context, kind string) (text string, ok bool, err error) {
	switch kind {
	case "departments":
		return h.enterprise.DepartmentsReport(), true, nil
	case "employees":
		text, err = h.enterprise.EmployeesReport(ctx)
		return text, true, err
	default:
		return "", false, nil
	}
}

// HandleText writes the report as text/plain.
func (h *ReportHandler) HandleText(w http.ResponseWriter, r *http.Request) {
	text, ok, err := h.render(r.Context(), r.PathValue("kind"))
	if !ok {
		http.NotFound(w, r)
		return
	}
	if err != nil {
		writeServiceError(w, "render report", err)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(text))
}

// HandleStream patches the home page's report panel over SSE.
func (h *ReportHandler) HandleStream(w http.ResponseWriter, r *http.Request) {
	text, ok, err := h.render(r.Context(), r.PathValue("kind"))
	if !ok {
		http.NotFound(w, r)
		return
	}
	if err != nil {
		writeServiceError(w, "render report", err)
		return
	}

	sse := datastar.NewSSE(w, r)
	sse.PatchElementTempl(
		view.ReportFragment(text),
		datastar.WithSelectorID(view.ReportID),
	)
}
