package audit

import "time"

// Status is the tri-state classification of a chapter file.
type Status string

const (
	// StatusMissing means the referenced file does not exist on disk.
	StatusMissing Status = "missing"
	// StatusStub means the file exists but is empty or below the
	// line-count threshold.
	StatusStub Status = "stub"
	// StatusComplete means the file exists and meets the threshold.
	StatusComplete Status = "complete"
)

// Entry is the audit result for a single chapter.
type Entry struct {
	// Title is the chapter title from the summary.
	Title string `json:"title"`
	// Path is the content-root relative path.
	Path string `json:"path"`
	// Part is the book part the chapter belongs to, if any.
	Part string `json:"part,omitempty"`
	// Depth is the nesting depth in the summary.
	Depth int `json:"depth"`
	// Status is the classification result.
	Status Status `json:"status"`
	// Lines is the observed line count (0 for missing files).
	Lines int `json:"lines"`
	// Bytes is the observed file size (0 for missing files).
	Bytes int64 `json:"bytes"`
	// Outside is true when the resolved path escapes the content root.
	Outside bool `json:"outside,omitempty"`
	// Error records a read failure, if one occurred.
	Error string `json:"error,omitempty"`
}

// PartSummary aggregates completeness per book part.
type PartSummary struct {
	Part     string `json:"part"`
	Total    int    `json:"total"`
	Complete int    `json:"complete"`
}

// DraftEntry is a chapter declared without a destination.
type DraftEntry struct {
	Title string `json:"title"`
	Part  string `json:"part,omitempty"`
}

// LineStats contains statistics about line counts across existing chapters.
type LineStats struct {
	// Min is the minimum line count.
	Min int `json:"min"`
	// Max is the maximum line count.
	Max int `json:"max"`
	// Mean is the mean line count.
	Mean float64 `json:"mean"`
	// P95 is the 95th percentile line count.
	P95 int `json:"p95"`
}

// Report is the result of one audit run.
type Report struct {
	// RunID identifies this audit run.
	RunID string `json:"run_id"`
	// GeneratedAt is when the run happened (UTC).
	GeneratedAt time.Time `json:"generated_at"`
	// Threshold is the stub line-count threshold the run used.
	Threshold int `json:"threshold"`

	// Total is the number of chapters referenced by the summary.
	Total int `json:"total"`
	// Complete is the number of chapters classified complete.
	Complete int `json:"complete"`
	// Stub is the number of chapters classified stub.
	Stub int `json:"stub"`
	// Missing is the number of chapters classified missing.
	Missing int `json:"missing"`
	// Percentage is complete*100/total, integer division; 0 when total is 0.
	Percentage int `json:"percentage"`

	// Entries holds the per-chapter results in summary order.
	Entries []Entry `json:"entries"`
	// Parts holds per-part completion in first-seen order.
	Parts []PartSummary `json:"parts,omitempty"`
	// Drafts lists chapters declared without content files.
	Drafts []DraftEntry `json:"drafts,omitempty"`
	// Orphans lists markdown files on disk never referenced by the summary.
	Orphans []string `json:"orphans,omitempty"`
	// LineStats covers the line counts of existing chapters.
	LineStats LineStats `json:"line_stats"`
}

// Issues returns the entries that block a clean audit: missing and stub
// chapters, in summary order.
func (r *Report) Issues() []Entry {
	var issues []Entry
	for _, e := range r.Entries {
		if e.Status != StatusComplete {
			issues = append(issues, e)
		}
	}
	return issues
}

// Clean reports whether the audit found no missing or stub chapters.
func (r *Report) Clean() bool {
	return r.Missing == 0 && r.Stub == 0
}
