package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var (
	cfgFile  string
	bookRoot string
	version  = "dev"
)

// ErrIssuesFound is returned by the audit command when incomplete content
// exists. main maps it to a non-zero exit code, the contract CI consumes.
var ErrIssuesFound = errors.New("audit found incomplete content")

var rootCmd = &cobra.Command{
	Use:   "mdaudit",
	Short: "Content-completeness auditor for mdBook projects",
	Long: `mdaudit parses a book's SUMMARY.md, classifies every referenced chapter
as missing, stub, or complete, and renders a progress dashboard and a
missing-content checklist. The audit command exits non-zero when
incomplete content exists, so it can gate CI.`,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "path to a .env config file")
	rootCmd.PersistentFlags().StringVar(&bookRoot, "book", "", "book root directory (overrides BOOK_ROOT)")

	rootCmd.AddCommand(newDashboardCmd())
	rootCmd.AddCommand(newAuditCmd())
	rootCmd.AddCommand(newServeCmd())
	rootCmd.AddCommand(newHistoryCmd())
	rootCmd.AddCommand(newVersionCmd())
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("mdaudit version %s\n", version)
		},
	}
}
