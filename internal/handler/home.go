package handler

import (
	"log/slog"
	"net/http"

	"github.com/msomdec/enterprise/internal/view"
)

// HandleHome renders the home page.
func HandleHome(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := view.HomePage(view.ReportKinds).Render(r.Context(), w); err != nil {
		slog.Error("render home page", "error", err)
	}
}
