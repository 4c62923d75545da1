package cmd

import (
	"fmt"

	"github.com/bnema/remedy/internal/adapters/syslog"
	"github.com/bnema/remedy/internal/domain"
	"github.com/spf13/cobra"
)

func newIngestCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "ingest <file>...",
		Short: "Record syslog events without remediating them",
		Long:  "ingest reads plain, gzip or zstd syslog files and stores every recognised line as an event. Lines already stored are not duplicated.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ids, err := ingestFiles(cmd, opts.app, args)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "ingested %d events from %d files\n", len(ids), len(args))
			return err
		},
	}
}

func ingestFiles(cmd *cobra.Command, a *app, paths []string) ([]domain.EventID, error) {
	var all []domain.EventID
	seen := map[domain.EventID]bool{}

	for _, path := range paths {
		lines, err := syslog.ReadFile(path)
		if err != nil {
			return nil, err
		}

		ids, err := a.ingest.Ingest(cmd.Context(), lines)
		if err != nil {
			return nil, fmt.Errorf("ingest %s: %w", path, err)
		}

		for _, id := range ids {
			if seen[id] {
				continue
			}
			seen[id] = true
			all = append(all, id)
		}
	}

	return all, nil
}
