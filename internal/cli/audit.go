package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"mdaudit/internal/audit"
	"mdaudit/internal/report"
)

func newAuditCmd() *cobra.Command {
	var threshold int

	cmd := &cobra.Command{
		Use:   "audit",
		Short: "Audit content completeness and fail on issues (CI gate)",
		Long: `Audit the book, write the missing-content checklist, and exit with a
non-zero status when any chapter is missing or a stub. Intended to run
in CI to block merges on incomplete content.`,
		// Issues are an expected outcome, not a usage problem.
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			a, err := newApp()
			if err != nil {
				return err
			}
			defer a.Close()

			if threshold <= 0 {
				threshold = a.cfg.Project.Thresholds.Audit
			}

			rep, err := a.auditor.Run(ctx, threshold)
			if err != nil {
				return fmt.Errorf("audit failed: %w", err)
			}
			a.recordRun(ctx, rep)

			body := report.RenderChecklist(rep)
			if err := report.WriteFile(a.cfg.ChecklistPath, body); err != nil {
				return err
			}
			slog.Info("checklist written", "path", a.cfg.ChecklistPath)

			issues := rep.Issues()
			if len(issues) == 0 {
				fmt.Printf("OK: all %d chapters complete\n", rep.Total)
				return nil
			}

			fmt.Printf("%d of %d chapters incomplete (threshold: %d lines):\n",
				len(issues), rep.Total, threshold)
			for _, e := range issues {
				if e.Status == audit.StatusMissing {
					fmt.Printf("  missing  %s\n", e.Path)
				} else {
					fmt.Printf("  stub     %s (%d lines)\n", e.Path, e.Lines)
				}
			}
			return ErrIssuesFound
		},
	}

	cmd.Flags().IntVar(&threshold, "threshold", 0, "stub line-count threshold (default from .mdaudit.yml)")

	return cmd
}
