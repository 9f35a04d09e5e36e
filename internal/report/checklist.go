package report

import (
	"fmt"
	"strings"

	"mdaudit/internal/audit"
)

// RenderChecklist renders the MISSING_CONTENT.md body for a report. A
// clean report renders an all-clear body so a stale checklist from an
// earlier run never survives a passing audit.
func RenderChecklist(r *audit.Report) string {
	var b strings.Builder

	b.WriteString("# Missing Content\n\n")

	issues := r.Issues()
	if len(issues) == 0 {
		fmt.Fprintf(&b, "All %d chapters are complete. :tada:\n", r.Total)
		writeExtras(&b, r)
		writeFooter(&b, r)
		return b.String()
	}

	fmt.Fprintf(&b, "%d of %d chapters need work (stub threshold: %d lines).\n\n",
		len(issues), r.Total, r.Threshold)

	var missing, stubs []audit.Entry
	for _, e := range issues {
		if e.Status == audit.StatusMissing {
			missing = append(missing, e)
		} else {
			stubs = append(stubs, e)
		}
	}

	if len(missing) > 0 {
		b.WriteString("## Missing chapters\n\n")
		for _, e := range missing {
			fmt.Fprintf(&b, "- [ ] `%s` — %s\n", e.Path, e.Title)
		}
		b.WriteString("\n")
	}

	if len(stubs) > 0 {
		b.WriteString("## Stub chapters\n\n")
		for _, e := range stubs {
			fmt.Fprintf(&b, "- [ ] `%s` — %s (%d lines)\n", e.Path, e.Title, e.Lines)
		}
		b.WriteString("\n")
	}

	writeExtras(&b, r)
	writeFooter(&b, r)
	return b.String()
}

// writeExtras appends the draft and orphan sections, which inform but do
// not fail the audit.
func writeExtras(b *strings.Builder, r *audit.Report) {
	if len(r.Drafts) > 0 {
		b.WriteString("\n## Draft chapters (no file yet)\n\n")
		for _, d := range r.Drafts {
			if d.Part != "" {
				fmt.Fprintf(b, "- [ ] %s (%s)\n", d.Title, d.Part)
			} else {
				fmt.Fprintf(b, "- [ ] %s\n", d.Title)
			}
		}
	}
	if len(r.Orphans) > 0 {
		b.WriteString("\n## Files not referenced by SUMMARY.md\n\n")
		for _, p := range r.Orphans {
			fmt.Fprintf(b, "- `%s`\n", p)
		}
	}
}

func writeFooter(b *strings.Builder, r *audit.Report) {
	fmt.Fprintf(b, "\n---\n\n_Generated %s (run `%s`)_\n",
		r.GeneratedAt.Format("2006-01-02 15:04:05 UTC"), r.RunID)
}
