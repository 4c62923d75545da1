package cmd

import (
	"github.com/spf13/cobra"
)

func newRunCmd(opts *rootOptions) *cobra.Command {
	var (
		concurrency int
		asJSON      bool
	)

	cmd := &cobra.Command{
		Use:   "run <file>...",
		Short: "Ingest syslog files and remediate the events they contain",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ids, err := ingestFiles(cmd, opts.app, args)
			if err != nil {
				return err
			}

			outcomes, err := remediateIDs(cmd, opts.app, ids, concurrency)
			if err != nil {
				return err
			}

			return writeOutcomes(cmd.OutOrStdout(), outcomes, asJSON)
		},
	}

	addRemediationFlags(cmd, &concurrency, &asJSON)

	return cmd
}
