package storage

import (
	"context"
	"errors"
	"sort"
)

// Delta describes how chapter statuses moved between two runs.
type Delta struct {
	// PrevRunID is the older run the comparison is against.
	PrevRunID string `json:"prev_run_id"`
	// Progressed lists paths that reached complete since the previous run.
	Progressed []string `json:"progressed,omitempty"`
	// Regressed lists paths that left complete since the previous run.
	Regressed []string `json:"regressed,omitempty"`
}

// CompareRuns computes the status delta from prev to curr entries.
func CompareRuns(prev, curr []RunEntryRecord) Delta {
	prevComplete := make(map[string]bool, len(prev))
	for _, e := range prev {
		prevComplete[e.Path] = e.Status == "complete"
	}

	var d Delta
	for _, e := range curr {
		wasComplete, known := prevComplete[e.Path]
		isComplete := e.Status == "complete"
		switch {
		case isComplete && known && !wasComplete:
			d.Progressed = append(d.Progressed, e.Path)
		case !isComplete && wasComplete:
			d.Regressed = append(d.Regressed, e.Path)
		}
	}
	sort.Strings(d.Progressed)
	sort.Strings(d.Regressed)
	return d
}

// LatestDelta compares the two most recent runs in the store. It returns
// ok=false when fewer than two runs exist.
func LatestDelta(ctx context.Context, store RunStore) (Delta, bool, error) {
	runs, err := store.ListRecent(ctx, 2)
	if err != nil {
		if errors.Is(err, ErrNoRuns) {
			return Delta{}, false, nil
		}
		return Delta{}, false, err
	}
	if len(runs) < 2 {
		return Delta{}, false, nil
	}

	currEntries, err := store.EntriesByRun(ctx, runs[0].ID)
	if err != nil {
		return Delta{}, false, err
	}
	prevEntries, err := store.EntriesByRun(ctx, runs[1].ID)
	if err != nil {
		return Delta{}, false, err
	}

	d := CompareRuns(prevEntries, currEntries)
	d.PrevRunID = runs[1].ID
	return d, true, nil
}
