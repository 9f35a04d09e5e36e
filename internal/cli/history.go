package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func newHistoryCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Print recent audit runs",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			a, err := newApp()
			if err != nil {
				return err
			}
			defer a.Close()

			runs, err := a.runs.ListRecent(ctx, limit)
			if err != nil {
				return fmt.Errorf("failed to list runs: %w", err)
			}
			if len(runs) == 0 {
				fmt.Println("no recorded runs")
				return nil
			}

			fmt.Printf("%-20s  %4s  %8s  %4s  %7s  %5s\n",
				"STARTED", "PCT", "COMPLETE", "STUB", "MISSING", "THR")
			for _, run := range runs {
				fmt.Printf("%-20s  %3d%%  %8d  %4d  %7d  %5d\n",
					run.StartedAt.Format("2006-01-02 15:04:05"),
					run.Percentage, run.Complete, run.Stub, run.Missing, run.Threshold)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 10, "number of runs to show")

	return cmd
}
