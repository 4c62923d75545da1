package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newEventsCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "events",
		Short: "Inspect stored events",
	}

	cmd.AddCommand(newEventsListCmd(opts))

	return cmd
}

func newEventsListCmd(opts *rootOptions) *cobra.Command {
	var (
		limit  int
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List stored events in insertion order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			events, err := opts.app.repo.List(cmd.Context(), limit)
			if err != nil {
				return fmt.Errorf("list events: %w", err)
			}

			return writeEvents(cmd.OutOrStdout(), events, asJSON)
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 0, "maximum number of events (default 1000)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print events as JSON")

	return cmd
}
