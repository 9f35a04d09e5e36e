package storage

import "time"

// RunRecord represents one recorded audit run.
type RunRecord struct {
	ID         string    `json:"id"`         // UUID, same as the report run ID
	StartedAt  time.Time `json:"started_at"` // UTC
	Threshold  int       `json:"threshold"`
	Total      int       `json:"total"`
	Complete   int       `json:"complete"`
	Stub       int       `json:"stub"`
	Missing    int       `json:"missing"`
	Percentage int       `json:"percentage"`
}

// RunEntryRecord is the per-chapter status snapshot of a run.
type RunEntryRecord struct {
	RunID  string `json:"-"`
	Path   string `json:"path"`
	Status string `json:"status"`
	Lines  int    `json:"lines"`
}
