package main

import (
	"fmt"

	"github.com/metalagman/linkcheck"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func newExampleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "example",
		Short: "Print the library constant and the linked JSON library version",
		Args:  cobra.NoArgs,
		// The demonstration variant always succeeds; a failed version lookup
		// is printed, not fatal.
		Run: func(_ *cobra.Command, _ []string) {
			ex := linkcheck.NewExample()

			fmt.Println("linkcheck example linking " + ex.String())

			ver, err := ex.JSONLibVersion()
			if err != nil {
				log.Debug().Err(err).Msg("version lookup failed")
				ver = err.Error()
			}

			fmt.Println("Linking gojsonschema version " + ver)
		},
	}
}
