package handlers

import (
	"context"
	"database/sql"
	"net/http"
	"os"
	"time"

	"mdaudit/internal/contextutil"
)

// HealthHandler handles HTTP requests for health checks.
type HealthHandler struct {
	contentRoot        string
	summaryPath        string
	db                 *sql.DB
	healthCheckTimeout time.Duration
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(contentRoot, summaryPath string, db *sql.DB) *HealthHandler {
	return &HealthHandler{
		contentRoot:        contentRoot,
		summaryPath:        summaryPath,
		db:                 db,
		healthCheckTimeout: 5 * time.Second,
	}
}

// HealthResponse represents the health check response.
type HealthResponse struct {
	// Overall health status: "healthy" or "unhealthy"
	Status string `json:"status"`
	// Timestamp of the health check
	Timestamp string `json:"timestamp"`
	// Individual check results
	Checks map[string]string `json:"checks"`
	// List of issues (only present when unhealthy)
	Issues []string `json:"issues,omitempty"`
}

// ServeHTTP handles GET /api/health. Returns 200 when the content root,
// summary file, and database are all reachable, 503 otherwise.
func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	if r.Method != http.MethodGet {
		logger.Warn("method not allowed", "method", r.Method)
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	checkCtx, cancel := context.WithTimeout(ctx, h.healthCheckTimeout)
	defer cancel()

	checks := make(map[string]string)
	var issues []string

	if info, err := os.Stat(h.contentRoot); err != nil || !info.IsDir() {
		checks["content_root"] = "error"
		issues = append(issues, "content_root_unavailable")
	} else {
		checks["content_root"] = "ok"
	}

	if _, err := os.Stat(h.summaryPath); err != nil {
		checks["summary"] = "error"
		issues = append(issues, "summary_unavailable")
	} else {
		checks["summary"] = "ok"
	}

	if err := h.db.PingContext(checkCtx); err != nil {
		logger.Warn("database ping failed", "error", err)
		checks["database"] = "error"
		issues = append(issues, "database_unavailable")
	} else {
		checks["database"] = "ok"
	}

	resp := HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Checks:    checks,
		Issues:    issues,
	}

	status := http.StatusOK
	if len(issues) > 0 {
		resp.Status = "unhealthy"
		status = http.StatusServiceUnavailable
	}

	writeJSON(w, status, resp)
}
