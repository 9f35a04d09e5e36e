package report

import (
	"fmt"
	"net/url"
	"strings"

	"mdaudit/internal/audit"
	"mdaudit/internal/storage"
)

// BadgeOptions controls the shields.io badge embedded in the dashboard.
type BadgeOptions struct {
	Label string
	Color string
}

// BadgeURL builds the shields.io badge URL for a completion percentage.
// The "%" after the percentage must be escaped as %25 per the shields
// static badge format.
func BadgeURL(opts BadgeOptions, percentage int) string {
	label := url.PathEscape(opts.Label)
	return fmt.Sprintf("https://img.shields.io/badge/%s-%d%%25-%s", label, percentage, opts.Color)
}

// RenderDashboard renders the PROGRESS.md body for a report. delta may be
// nil when no earlier run exists to compare against.
func RenderDashboard(r *audit.Report, delta *storage.Delta, opts BadgeOptions) string {
	var b strings.Builder

	b.WriteString("# Book Progress\n\n")
	fmt.Fprintf(&b, "![%s](%s)\n\n", opts.Label, BadgeURL(opts, r.Percentage))
	fmt.Fprintf(&b, "**%d%% complete** — %d of %d chapters (stub threshold: %d lines)\n\n",
		r.Percentage, r.Complete, r.Total, r.Threshold)

	b.WriteString("## Totals\n\n")
	b.WriteString("| Status | Count |\n")
	b.WriteString("|--------|-------|\n")
	fmt.Fprintf(&b, "| Complete | %d |\n", r.Complete)
	fmt.Fprintf(&b, "| Stub | %d |\n", r.Stub)
	fmt.Fprintf(&b, "| Missing | %d |\n", r.Missing)
	fmt.Fprintf(&b, "| Total | %d |\n\n", r.Total)

	if len(r.Parts) > 0 {
		b.WriteString("## Parts\n\n")
		b.WriteString("| Part | Complete | Total |\n")
		b.WriteString("|------|----------|-------|\n")
		for _, p := range r.Parts {
			fmt.Fprintf(&b, "| %s | %d | %d |\n", p.Part, p.Complete, p.Total)
		}
		b.WriteString("\n")
	}

	if r.Total-r.Missing > 0 {
		b.WriteString("## Chapter length\n\n")
		fmt.Fprintf(&b, "- Min: %d lines\n", r.LineStats.Min)
		fmt.Fprintf(&b, "- Max: %d lines\n", r.LineStats.Max)
		fmt.Fprintf(&b, "- Mean: %.2f lines\n", r.LineStats.Mean)
		fmt.Fprintf(&b, "- P95: %d lines\n\n", r.LineStats.P95)
	}

	if delta != nil {
		b.WriteString("## Since last run\n\n")
		if len(delta.Progressed) == 0 && len(delta.Regressed) == 0 {
			b.WriteString("No status changes.\n\n")
		}
		for _, p := range delta.Progressed {
			fmt.Fprintf(&b, "- :arrow_up: `%s` is now complete\n", p)
		}
		for _, p := range delta.Regressed {
			fmt.Fprintf(&b, "- :arrow_down: `%s` is no longer complete\n", p)
		}
		if len(delta.Progressed)+len(delta.Regressed) > 0 {
			b.WriteString("\n")
		}
	}

	fmt.Fprintf(&b, "---\n\n_Generated %s (run `%s`)_\n",
		r.GeneratedAt.Format("2006-01-02 15:04:05 UTC"), r.RunID)

	return b.String()
}
