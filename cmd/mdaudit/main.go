package main

import (
	"errors"
	"fmt"
	"os"

	"mdaudit/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		// The audit gate already printed its findings; anything else is a
		// real error worth surfacing.
		if !errors.Is(err, cli.ErrIssuesFound) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(1)
	}
}
