package audit

import (
	"context"
	"fmt"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"mdaudit/internal/book"
	"mdaudit/internal/contextutil"
	"mdaudit/internal/summary"
)

// Auditor classifies every chapter the book summary references and
// aggregates the results into a Report.
type Auditor struct {
	parser      *summary.Parser
	book        *book.Book
	summaryPath string
	ignore      []string
}

// New creates an Auditor for the given book. ignore holds glob patterns
// (matched against content-root relative paths) excluded from orphan
// detection.
func New(b *book.Book, summaryPath string, ignore []string) *Auditor {
	return &Auditor{
		parser:      summary.NewParser(),
		book:        b,
		summaryPath: summaryPath,
		ignore:      ignore,
	}
}

// Run parses the summary, classifies each referenced chapter against the
// given stub threshold, and returns the aggregated report. A failed orphan
// scan is logged and leaves Orphans empty; it does not fail the run.
func (a *Auditor) Run(ctx context.Context, threshold int) (*Report, error) {
	logger := contextutil.LoggerFromContext(ctx)

	parsed, err := a.parser.ParseFile(a.summaryPath)
	if err != nil {
		return nil, fmt.Errorf("failed to parse summary: %w", err)
	}

	report := &Report{
		RunID:       uuid.NewString(),
		GeneratedAt: time.Now().UTC(),
		Threshold:   threshold,
		Total:       len(parsed.Chapters),
	}

	for _, d := range parsed.Drafts {
		report.Drafts = append(report.Drafts, DraftEntry{Title: d.Title, Part: d.Part})
	}

	partIndex := make(map[string]int)
	var lineCounts []int

	for _, ch := range parsed.Chapters {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		abs := a.book.Resolve(ch.Path)
		c := Classify(abs, threshold)
		if c.Err != nil {
			logger.Warn("chapter unreadable", "path", ch.Path, "error", c.Err)
		}

		entry := Entry{
			Title:   ch.Title,
			Path:    ch.Path,
			Part:    ch.Part,
			Depth:   ch.Depth,
			Status:  c.Status,
			Lines:   c.Lines,
			Bytes:   c.Bytes,
			Outside: escapesRoot(a.book.ContentRoot(), abs),
		}
		if c.Err != nil {
			entry.Error = c.Err.Error()
		}
		if entry.Outside {
			logger.Warn("chapter resolves outside content root", "path", ch.Path)
		}
		report.Entries = append(report.Entries, entry)

		switch c.Status {
		case StatusMissing:
			report.Missing++
		case StatusStub:
			report.Stub++
		case StatusComplete:
			report.Complete++
		}
		if c.Status != StatusMissing {
			lineCounts = append(lineCounts, c.Lines)
		}

		if ch.Part != "" {
			i, ok := partIndex[ch.Part]
			if !ok {
				i = len(report.Parts)
				partIndex[ch.Part] = i
				report.Parts = append(report.Parts, PartSummary{Part: ch.Part})
			}
			report.Parts[i].Total++
			if c.Status == StatusComplete {
				report.Parts[i].Complete++
			}
		}
	}

	// Integer percentage; an empty summary reports 0 instead of dividing
	// by zero.
	if report.Total > 0 {
		report.Percentage = report.Complete * 100 / report.Total
	}

	report.LineStats = computeLineStats(lineCounts)

	orphans, err := a.findOrphans(ctx, parsed)
	if err != nil {
		logger.Warn("orphan scan failed", "error", err)
	} else {
		report.Orphans = orphans
	}

	return report, nil
}

// findOrphans returns markdown files under the content root that the
// summary never references, minus the summary file itself and anything
// matching the ignore globs.
func (a *Auditor) findOrphans(ctx context.Context, parsed *summary.Summary) ([]string, error) {
	files, err := a.book.Scan(ctx)
	if err != nil {
		return nil, err
	}

	referenced := make(map[string]bool, len(parsed.Chapters))
	for _, ch := range parsed.Chapters {
		referenced[ch.Path] = true
	}

	summaryRel, err := filepath.Rel(a.book.ContentRoot(), a.summaryPath)
	if err == nil {
		referenced[filepath.ToSlash(summaryRel)] = true
	}

	var orphans []string
	for _, f := range files {
		if referenced[f.RelPath] || a.ignored(f.RelPath) {
			continue
		}
		orphans = append(orphans, f.RelPath)
	}
	sort.Strings(orphans)
	return orphans, nil
}

func (a *Auditor) ignored(relPath string) bool {
	for _, pattern := range a.ignore {
		if ok, _ := filepath.Match(pattern, relPath); ok {
			return true
		}
		// Also match against the bare filename so patterns like
		// "*.draft.md" apply at any depth.
		if ok, _ := filepath.Match(pattern, filepath.Base(relPath)); ok {
			return true
		}
	}
	return false
}

// escapesRoot reports whether abs lies outside the content root.
func escapesRoot(root, abs string) bool {
	rel, err := filepath.Rel(root, abs)
	if err != nil {
		return true
	}
	return rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator))
}
