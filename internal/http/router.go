package http

import (
	"database/sql"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"mdaudit/internal/handlers"
	"mdaudit/internal/storage"
)

// Deps holds dependencies for the HTTP router.
type Deps struct {
	Runner      handlers.AuditRunner
	RunStore    storage.RunStore
	DB          *sql.DB
	ContentRoot string
	SummaryPath string
	Threshold   int
}

// NewRouter creates a new HTTP router with the provided dependencies.
func NewRouter(deps *Deps) http.Handler {
	r := chi.NewRouter()

	// Add chi middleware
	r.Use(middleware.Recoverer)
	r.Use(LoggerMiddleware)
	r.Use(CORS)

	progressHandler := handlers.NewProgressHandler(deps.Runner, deps.Threshold)
	historyHandler := handlers.NewHistoryHandler(deps.RunStore)
	healthHandler := handlers.NewHealthHandler(deps.ContentRoot, deps.SummaryPath, deps.DB)

	r.Route("/api", func(r chi.Router) {
		r.Method(http.MethodGet, "/progress", progressHandler)
		r.Method(http.MethodGet, "/history", historyHandler)
		r.Method(http.MethodGet, "/health", healthHandler)
	})

	return r
}
