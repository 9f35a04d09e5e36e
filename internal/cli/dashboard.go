package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"mdaudit/internal/report"
	"mdaudit/internal/storage"
)

func newDashboardCmd() *cobra.Command {
	var (
		asJSON    bool
		threshold int
	)

	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Generate the progress dashboard (PROGRESS.md)",
		Long: `Audit the book and write the progress dashboard: completeness counts,
an overall percentage with a shields.io badge, per-part breakdown, and
the delta against the previous recorded run.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			a, err := newApp()
			if err != nil {
				return err
			}
			defer a.Close()

			if threshold <= 0 {
				threshold = a.cfg.Project.Thresholds.Dashboard
			}

			rep, err := a.auditor.Run(ctx, threshold)
			if err != nil {
				return fmt.Errorf("audit failed: %w", err)
			}
			a.recordRun(ctx, rep)

			if asJSON {
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(rep)
			}

			var delta *storage.Delta
			if d, ok, err := storage.LatestDelta(ctx, a.runs); err != nil {
				slog.Warn("failed to compute run delta", "error", err)
			} else if ok {
				delta = &d
			}

			badge := report.BadgeOptions{
				Label: a.cfg.Project.Badge.Label,
				Color: a.cfg.Project.Badge.Color,
			}
			body := report.RenderDashboard(rep, delta, badge)
			if err := report.WriteFile(a.cfg.ProgressPath, body); err != nil {
				return err
			}

			slog.Info("dashboard written",
				"path", a.cfg.ProgressPath,
				"percentage", rep.Percentage,
				"complete", rep.Complete,
				"total", rep.Total,
			)
			fmt.Printf("%d%% complete (%d/%d chapters) -> %s\n",
				rep.Percentage, rep.Complete, rep.Total, a.cfg.ProgressPath)
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print the report as JSON instead of writing the dashboard")
	cmd.Flags().IntVar(&threshold, "threshold", 0, "stub line-count threshold (default from .mdaudit.yml)")

	return cmd
}
