package cli

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"mdaudit/internal/audit"
	"mdaudit/internal/book"
	"mdaudit/internal/config"
	"mdaudit/internal/storage"
)

// app wires the pieces every subcommand needs: config, logging, the
// run-history database, and the auditor itself.
type app struct {
	cfg     *config.Config
	db      *sql.DB
	runs    *storage.RunRepo
	book    *book.Book
	auditor *audit.Auditor
}

// newApp loads configuration, configures logging, opens the database, and
// builds the auditor. Callers must Close it.
func newApp() (*app, error) {
	if cfgFile != "" {
		if err := godotenv.Load(cfgFile); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", cfgFile, err)
		}
	}
	if bookRoot != "" {
		// The flag takes the same precedence slot as the environment.
		if err := os.Setenv("BOOK_ROOT", bookRoot); err != nil {
			return nil, fmt.Errorf("failed to apply --book: %w", err)
		}
	}

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	setupLogging(cfg)

	db, err := storage.New(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err := storage.Migrate(db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}
	slog.Debug("database initialized", "path", cfg.DBPath)

	b := book.New(cfg.ContentDir)
	auditor := audit.New(b, cfg.SummaryPath, cfg.Project.Ignore)

	return &app{
		cfg:     cfg,
		db:      db,
		runs:    storage.NewRunRepo(db),
		book:    b,
		auditor: auditor,
	}, nil
}

// Close releases the app's resources.
func (a *app) Close() {
	_ = a.db.Close()
}

// setupLogging configures the default slog logger from config.
func setupLogging(cfg *config.Config) {
	opts := &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}
	var handler slog.Handler
	if cfg.LogFormat == "json" {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}
	slog.SetDefault(slog.New(handler))
}

// recordRun persists a report to the run history. Failures are logged, not
// fatal: a broken history database should not block report generation.
func (a *app) recordRun(ctx context.Context, r *audit.Report) {
	run := storage.RunRecord{
		ID:         r.RunID,
		StartedAt:  r.GeneratedAt,
		Threshold:  r.Threshold,
		Total:      r.Total,
		Complete:   r.Complete,
		Stub:       r.Stub,
		Missing:    r.Missing,
		Percentage: r.Percentage,
	}
	entries := make([]storage.RunEntryRecord, 0, len(r.Entries))
	for _, e := range r.Entries {
		entries = append(entries, storage.RunEntryRecord{
			RunID:  r.RunID,
			Path:   e.Path,
			Status: string(e.Status),
			Lines:  e.Lines,
		})
	}
	if err := a.runs.Insert(ctx, run, entries); err != nil {
		slog.Warn("failed to record run", "run_id", r.RunID, "error", err)
	}
}
