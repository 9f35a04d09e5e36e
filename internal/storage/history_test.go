package storage

import (
	"context"
	"testing"
	"time"
)

func TestCompareRuns(t *testing.T) {
	tests := []struct {
		name           string
		prev           []RunEntryRecord
		curr           []RunEntryRecord
		wantProgressed []string
		wantRegressed  []string
	}{
		{
			name: "no changes",
			prev: []RunEntryRecord{{Path: "a.md", Status: "complete"}},
			curr: []RunEntryRecord{{Path: "a.md", Status: "complete"}},
		},
		{
			name:           "stub to complete",
			prev:           []RunEntryRecord{{Path: "a.md", Status: "stub"}},
			curr:           []RunEntryRecord{{Path: "a.md", Status: "complete"}},
			wantProgressed: []string{"a.md"},
		},
		{
			name:          "complete to missing",
			prev:          []RunEntryRecord{{Path: "a.md", Status: "complete"}},
			curr:          []RunEntryRecord{{Path: "a.md", Status: "missing"}},
			wantRegressed: []string{"a.md"},
		},
		{
			name: "new chapter arriving complete is not a progression",
			prev: nil,
			curr: []RunEntryRecord{{Path: "new.md", Status: "complete"}},
		},
		{
			name: "new chapter arriving stub is not a regression",
			prev: nil,
			curr: []RunEntryRecord{{Path: "new.md", Status: "stub"}},
		},
		{
			name: "mixed, sorted output",
			prev: []RunEntryRecord{
				{Path: "b.md", Status: "stub"},
				{Path: "a.md", Status: "missing"},
				{Path: "c.md", Status: "complete"},
			},
			curr: []RunEntryRecord{
				{Path: "b.md", Status: "complete"},
				{Path: "a.md", Status: "complete"},
				{Path: "c.md", Status: "stub"},
			},
			wantProgressed: []string{"a.md", "b.md"},
			wantRegressed:  []string{"c.md"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := CompareRuns(tt.prev, tt.curr)
			if !equalStrings(d.Progressed, tt.wantProgressed) {
				t.Errorf("Progressed = %v, want %v", d.Progressed, tt.wantProgressed)
			}
			if !equalStrings(d.Regressed, tt.wantRegressed) {
				t.Errorf("Regressed = %v, want %v", d.Regressed, tt.wantRegressed)
			}
		})
	}
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestLatestDelta(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	// No runs yet
	_, ok, err := LatestDelta(ctx, repo)
	if err != nil {
		t.Fatalf("LatestDelta() error = %v", err)
	}
	if ok {
		t.Error("LatestDelta() ok = true with no runs")
	}

	base := time.Date(2026, 8, 23, 10, 0, 0, 0, time.UTC)

	run1 := testRun("run-1", base)
	if err := repo.Insert(ctx, run1, []RunEntryRecord{
		{RunID: "run-1", Path: "a.md", Status: "stub", Lines: 3},
		{RunID: "run-1", Path: "b.md", Status: "complete", Lines: 30},
	}); err != nil {
		t.Fatalf("Insert() error = %v", err)
	}

	// One run is not enough for a delta
	_, ok, err = LatestDelta(ctx, repo)
	if err != nil {
		t.Fatalf("LatestDelta() error = %v", err)
	}
	if ok {
		t.Error("LatestDelta() ok = true with one run")
	}

	run2 := testRun("run-2", base.Add(time.Hour))
	if err := repo.Insert(ctx, run2, []RunEntryRecord{
		{RunID: "run-2", Path: "a.md", Status: "complete", Lines: 25},
		{RunID: "run-2", Path: "b.md", Status: "stub", Lines: 4},
	}); err != nil {
		t.Fatalf("Insert() error = %v", err)
	}

	d, ok, err := LatestDelta(ctx, repo)
	if err != nil {
		t.Fatalf("LatestDelta() error = %v", err)
	}
	if !ok {
		t.Fatal("LatestDelta() ok = false with two runs")
	}
	if d.PrevRunID != "run-1" {
		t.Errorf("PrevRunID = %q, want run-1", d.PrevRunID)
	}
	if !equalStrings(d.Progressed, []string{"a.md"}) {
		t.Errorf("Progressed = %v, want [a.md]", d.Progressed)
	}
	if !equalStrings(d.Regressed, []string{"b.md"}) {
		t.Errorf("Regressed = %v, want [b.md]", d.Regressed)
	}
}
