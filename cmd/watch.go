package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/bnema/remedy/internal/adapters/syslog"
	"github.com/bnema/remedy/internal/domain"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newWatchCmd(opts *rootOptions) *cobra.Command {
	var (
		fromStart   bool
		concurrency int
		asJSON      bool
	)

	cmd := &cobra.Command{
		Use:   "watch <file>",
		Short: "Follow a syslog file and remediate events as they arrive",
		Long:  "watch tails a syslog file, surviving truncation and rotation, and remediates each new event. Events that already carry a result are not run again. Stop with Ctrl-C.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			a := opts.app
			if concurrency <= 0 {
				concurrency = a.cfg.Remediate.Concurrency
			}

			lines, err := syslog.NewFollower(args[0], a.logger.Named("follow")).Follow(ctx, fromStart)
			if err != nil {
				return err
			}

			a.logger.Info("watching syslog", zap.String("path", args[0]), zap.Bool("from_start", fromStart))
			for line := range lines {
				ids, err := a.ingest.Ingest(ctx, []string{line})
				if err != nil {
					a.logger.Error("could not record event", zap.Error(err))
					continue
				}

				pending, err := pendingIDs(ctx, a, ids)
				if err != nil {
					a.logger.Error("could not load event", zap.Error(err))
					continue
				}
				if len(pending) == 0 {
					continue
				}

				outcomes, err := a.remediation.RemediateAll(ctx, pending, concurrency)
				if err != nil && ctx.Err() == nil {
					return fmt.Errorf("remediate events: %w", err)
				}
				if err := writeOutcomes(cmd.OutOrStdout(), outcomes, asJSON); err != nil {
					return err
				}
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&fromStart, "from-start", false, "process lines already in the file before following it")
	addRemediationFlags(cmd, &concurrency, &asJSON)

	return cmd
}

func pendingIDs(ctx context.Context, a *app, ids []domain.EventID) ([]domain.EventID, error) {
	var pending []domain.EventID
	for _, id := range ids {
		event, err := a.repo.GetByID(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("get event %d: %w", id, err)
		}
		if event.Result == domain.ResultUnset {
			pending = append(pending, id)
		}
	}

	return pending, nil
}
