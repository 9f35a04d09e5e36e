package handlers

import (
	"net/http"
	"strconv"

	"mdaudit/internal/contextutil"
	"mdaudit/internal/storage"
)

const (
	defaultHistoryLimit = 20
	maxHistoryLimit     = 100
)

// HistoryHandler serves recorded audit runs.
type HistoryHandler struct {
	store storage.RunStore
}

// NewHistoryHandler creates a new HistoryHandler.
func NewHistoryHandler(store storage.RunStore) *HistoryHandler {
	return &HistoryHandler{store: store}
}

// HistoryResponse is the response body for the history endpoint.
type HistoryResponse struct {
	Runs []storage.RunRecord `json:"runs"`
}

// ServeHTTP handles GET /api/history?limit=n.
func (h *HistoryHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	limit := defaultHistoryLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			writeError(w, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		limit = n
	}
	if limit > maxHistoryLimit {
		limit = maxHistoryLimit
	}

	runs, err := h.store.ListRecent(ctx, limit)
	if err != nil {
		logger.Error("failed to list runs", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to list runs")
		return
	}

	if runs == nil {
		runs = []storage.RunRecord{}
	}
	writeJSON(w, http.StatusOK, HistoryResponse{Runs: runs})
}
