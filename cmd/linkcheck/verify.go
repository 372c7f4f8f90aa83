package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/metalagman/linkcheck"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

const reportFilePerm = 0o644

func newVerifyCmd() *cobra.Command {
	var (
		asJSON     bool
		reportPath string
	)

	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Check the library constant and exit non-zero on mismatch",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			rep, err := linkcheck.Verify(linkcheck.NewExample().String())
			if err != nil && !errors.Is(err, linkcheck.ErrMagicMismatch) {
				return err
			}

			log.Debug().
				Str("json_lib_version", rep.JSONLibVersion).
				Bool("match", rep.Match).
				Msg("verification complete")

			if reportPath != "" {
				if werr := writeReport(reportPath, rep); werr != nil {
					return werr
				}
			}

			if emitErr := emitResult(rep, asJSON); emitErr != nil {
				return emitErr
			}

			// Non-nil only for the mismatch branch; exit code 1 via main.
			return err
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print the report as JSON instead of a PASS/FAIL line")
	cmd.Flags().StringVar(&reportPath, "report", "", "write the JSON report to a file")

	return cmd
}

func emitResult(rep linkcheck.Report, asJSON bool) error {
	if asJSON {
		data, err := json.MarshalIndent(rep, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal report: %w", err)
		}

		fmt.Println(string(data))

		return nil
	}

	if rep.Match {
		fmt.Printf("PASS: %s = %s\n", rep.Got, rep.Want)
	} else {
		fmt.Printf("FAIL: %s != %s\n", rep.Got, rep.Want)
	}

	return nil
}

func writeReport(path string, rep linkcheck.Report) error {
	data, err := json.MarshalIndent(rep, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}

	if err := os.WriteFile(path, data, reportFilePerm); err != nil {
		return fmt.Errorf("write report %s: %w", path, err)
	}

	return nil
}
