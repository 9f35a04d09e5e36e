package cli

import (
	"log/slog"
	nethttp "net/http"

	"github.com/spf13/cobra"

	"mdaudit/internal/http"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve audit results over HTTP",
		Long: `Start a small HTTP API: GET /api/progress runs a fresh audit and
returns the JSON report, GET /api/history lists recorded runs, and
GET /api/health reports readiness.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			defer a.Close()

			router := http.NewRouter(&http.Deps{
				Runner:      a.auditor,
				RunStore:    a.runs,
				DB:          a.db,
				ContentRoot: a.cfg.ContentDir,
				SummaryPath: a.cfg.SummaryPath,
				Threshold:   a.cfg.Project.Thresholds.Dashboard,
			})

			addr := ":" + a.cfg.APIPort
			slog.Info("starting API server", "addr", addr, "book", a.cfg.BookRoot)
			return nethttp.ListenAndServe(addr, router)
		},
	}
}
