package report

import (
	"strings"
	"testing"
	"time"

	"mdaudit/internal/audit"
	"mdaudit/internal/storage"
)

func sampleReport() *audit.Report {
	return &audit.Report{
		RunID:       "test-run",
		GeneratedAt: time.Date(2026, 8, 23, 12, 0, 0, 0, time.UTC),
		Threshold:   20,
		Total:       3,
		Complete:    1,
		Stub:        1,
		Missing:     1,
		Percentage:  33,
		Entries: []audit.Entry{
			{Title: "A", Path: "a.md", Status: audit.StatusMissing},
			{Title: "B", Path: "b.md", Status: audit.StatusStub, Lines: 5},
			{Title: "C", Path: "c.md", Status: audit.StatusComplete, Lines: 25},
		},
		Parts: []audit.PartSummary{
			{Part: "Basics", Total: 3, Complete: 1},
		},
		LineStats: audit.LineStats{Min: 5, Max: 25, Mean: 15, P95: 25},
	}
}

func TestBadgeURL(t *testing.T) {
	tests := []struct {
		name       string
		opts       BadgeOptions
		percentage int
		want       string
	}{
		{
			name:       "simple",
			opts:       BadgeOptions{Label: "content", Color: "blue"},
			percentage: 33,
			want:       "https://img.shields.io/badge/content-33%25-blue",
		},
		{
			name:       "label with space",
			opts:       BadgeOptions{Label: "book progress", Color: "green"},
			percentage: 100,
			want:       "https://img.shields.io/badge/book%20progress-100%25-green",
		},
		{
			name:       "zero percent",
			opts:       BadgeOptions{Label: "content", Color: "red"},
			percentage: 0,
			want:       "https://img.shields.io/badge/content-0%25-red",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BadgeURL(tt.opts, tt.percentage)
			if got != tt.want {
				t.Errorf("BadgeURL() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRenderDashboard(t *testing.T) {
	body := RenderDashboard(sampleReport(), nil, BadgeOptions{Label: "content", Color: "blue"})

	wantFragments := []string{
		"# Book Progress",
		"https://img.shields.io/badge/content-33%25-blue",
		"**33% complete** — 1 of 3 chapters",
		"| Complete | 1 |",
		"| Stub | 1 |",
		"| Missing | 1 |",
		"| Total | 3 |",
		"| Basics | 1 | 3 |",
		"- Mean: 15.00 lines",
		"run `test-run`",
	}
	for _, want := range wantFragments {
		if !strings.Contains(body, want) {
			t.Errorf("dashboard missing %q\n%s", want, body)
		}
	}
}

func TestRenderDashboard_Delta(t *testing.T) {
	delta := &storage.Delta{
		PrevRunID:  "prev",
		Progressed: []string{"b.md"},
		Regressed:  []string{"c.md"},
	}
	body := RenderDashboard(sampleReport(), delta, BadgeOptions{Label: "content", Color: "blue"})

	if !strings.Contains(body, "## Since last run") {
		t.Error("dashboard missing delta section")
	}
	if !strings.Contains(body, "`b.md` is now complete") {
		t.Error("dashboard missing progression line")
	}
	if !strings.Contains(body, "`c.md` is no longer complete") {
		t.Error("dashboard missing regression line")
	}
}

func TestRenderDashboard_EmptyBook(t *testing.T) {
	r := &audit.Report{
		RunID:       "empty-run",
		GeneratedAt: time.Date(2026, 8, 23, 12, 0, 0, 0, time.UTC),
		Threshold:   20,
	}
	body := RenderDashboard(r, nil, BadgeOptions{Label: "content", Color: "blue"})

	if !strings.Contains(body, "**0% complete** — 0 of 0 chapters") {
		t.Errorf("empty book dashboard wrong:\n%s", body)
	}
	if strings.Contains(body, "## Chapter length") {
		t.Error("empty book dashboard should omit length stats")
	}
}
