package main

import (
	"fmt"

	"github.com/metalagman/linkcheck"
	"github.com/spf13/cobra"
)

// Build metadata injected via -ldflags; defaults apply to local builds.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build metadata and the linked JSON library version",
		Args:  cobra.NoArgs,
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Printf("linkcheck %s (commit %s, built %s)\n", version, commit, date)

			if ver, err := linkcheck.NewExample().JSONLibVersion(); err == nil {
				fmt.Println("gojsonschema " + ver)
			}
		},
	}
}
