package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
)

// Default stub thresholds, in lines. The dashboard historically used a
// looser bar than the CI audit; both remain configurable per book via
// .mdaudit.yml.
const (
	DefaultDashboardThreshold = 20
	DefaultAuditThreshold     = 10
)

// Config holds all configuration for the application.
type Config struct {
	BookRoot      string
	ContentDir    string
	SummaryPath   string
	ProgressPath  string
	ChecklistPath string
	DBPath        string
	APIPort       string
	LogLevel      slog.Level
	LogFormat     string

	// Project carries per-book settings loaded from .mdaudit.yml in the
	// book root, with defaults applied when the file is absent.
	Project Project
}

// Load reads configuration from environment variables and returns a Config struct.
// It applies defaults for optional fields and validates required fields.
// If a .env file exists in the current directory or project root, it will be loaded
// automatically. Environment variables already set take precedence over .env values.
func Load() (*Config, error) {
	_ = godotenv.Load() // Try current directory

	// Walk up toward the module root looking for a .env file
	wd, err := os.Getwd()
	if err == nil {
		dir := wd
		for i := 0; i < 5; i++ {
			envPath := filepath.Join(dir, ".env")
			if _, err := os.Stat(envPath); err == nil {
				_ = godotenv.Load(envPath)
				break
			}
			parent := filepath.Dir(dir)
			if parent == dir {
				break
			}
			dir = parent
		}
	}

	cfg := &Config{
		BookRoot:  getEnv("BOOK_ROOT", ""),
		APIPort:   getEnv("API_PORT", "9000"),
		DBPath:    getEnv("DB_PATH", "./data/mdaudit.db"),
		LogFormat: getEnv("LOG_FORMAT", "text"),
	}

	if cfg.BookRoot == "" {
		return nil, fmt.Errorf("BOOK_ROOT is required")
	}

	cfg.ContentDir = getEnv("CONTENT_DIR", filepath.Join(cfg.BookRoot, "src"))
	cfg.SummaryPath = getEnv("SUMMARY_PATH", filepath.Join(cfg.ContentDir, "SUMMARY.md"))
	cfg.ProgressPath = getEnv("PROGRESS_PATH", filepath.Join(cfg.BookRoot, "PROGRESS.md"))
	cfg.ChecklistPath = getEnv("CHECKLIST_PATH", filepath.Join(cfg.BookRoot, ".github", "MISSING_CONTENT.md"))

	level, err := parseLogLevel(getEnv("LOG_LEVEL", "info"))
	if err != nil {
		return nil, err
	}
	cfg.LogLevel = level

	if cfg.LogFormat != "text" && cfg.LogFormat != "json" {
		return nil, fmt.Errorf("LOG_FORMAT must be \"text\" or \"json\", got %q", cfg.LogFormat)
	}

	project, err := LoadProject(cfg.BookRoot)
	if err != nil {
		return nil, fmt.Errorf("failed to load project file: %w", err)
	}
	cfg.Project = project

	// Create the data directory for the run-history database
	dataDir := filepath.Dir(cfg.DBPath)
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	return cfg, nil
}

// parseLogLevel converts a level name into a slog.Level.
func parseLogLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("LOG_LEVEL must be one of debug, info, warn, error; got %q", s)
	}
}

// getEnv gets an environment variable or returns a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
