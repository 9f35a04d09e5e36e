package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"mdaudit/internal/audit"
	"mdaudit/internal/contextutil"
)

// AuditRunner runs an audit and returns the report.
type AuditRunner interface {
	Run(ctx context.Context, threshold int) (*audit.Report, error)
}

// ProgressHandler serves a freshly computed audit report as JSON.
type ProgressHandler struct {
	runner    AuditRunner
	threshold int
}

// NewProgressHandler creates a new ProgressHandler.
func NewProgressHandler(runner AuditRunner, threshold int) *ProgressHandler {
	return &ProgressHandler{runner: runner, threshold: threshold}
}

// ServeHTTP handles GET /api/progress.
func (h *ProgressHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	report, err := h.runner.Run(ctx, h.threshold)
	if err != nil {
		logger.Error("audit failed", "error", err)
		writeError(w, http.StatusInternalServerError, "audit failed")
		return
	}

	writeJSON(w, http.StatusOK, report)
}

// writeJSON encodes v as the JSON response body.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError writes a JSON error body.
func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
