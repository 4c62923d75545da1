package cmd

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/bnema/remedy/internal/application"
	"github.com/bnema/remedy/internal/domain"
	"github.com/spf13/cobra"
)

type remediateFlags struct {
	all         bool
	limit       int
	concurrency int
	asJSON      bool
}

func newRemediateCmd(opts *rootOptions) *cobra.Command {
	flags := &remediateFlags{}

	cmd := &cobra.Command{
		Use:   "remediate [event-id]...",
		Short: "Run diagnostic routines for stored events",
		Long:  "remediate connects to the device behind each event, runs the routine registered for its error code and records the result. --all selects every stored event without a result.",
		RunE: func(cmd *cobra.Command, args []string) error {
			switch {
			case flags.all && len(args) > 0:
				return errors.New("pass event ids or --all, not both")
			case !flags.all && len(args) == 0:
				return errors.New("pass at least one event id or --all")
			}

			ids, err := selectEventIDs(cmd.Context(), opts.app, args, flags)
			if err != nil {
				return err
			}

			outcomes, err := remediateIDs(cmd, opts.app, ids, flags.concurrency)
			if err != nil {
				return err
			}

			return writeOutcomes(cmd.OutOrStdout(), outcomes, flags.asJSON)
		},
	}

	cmd.Flags().BoolVar(&flags.all, "all", false, "remediate every stored event that has no result yet")
	cmd.Flags().IntVar(&flags.limit, "limit", 0, "maximum number of stored events considered by --all")
	addRemediationFlags(cmd, &flags.concurrency, &flags.asJSON)

	return cmd
}

func addRemediationFlags(cmd *cobra.Command, concurrency *int, asJSON *bool) {
	cmd.Flags().IntVar(concurrency, "concurrency", 0, "devices remediated in parallel (default remediate.concurrency)")
	cmd.Flags().BoolVar(asJSON, "json", false, "print outcomes as JSON")
}

func selectEventIDs(ctx context.Context, a *app, args []string, flags *remediateFlags) ([]domain.EventID, error) {
	if !flags.all {
		ids := make([]domain.EventID, 0, len(args))
		for _, arg := range args {
			id, err := strconv.ParseInt(arg, 10, 64)
			if err != nil || id <= 0 {
				return nil, fmt.Errorf("invalid event id %q", arg)
			}
			ids = append(ids, domain.EventID(id))
		}
		return ids, nil
	}

	events, err := a.repo.List(ctx, flags.limit)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}

	var ids []domain.EventID
	for _, event := range events {
		if event.Result == domain.ResultUnset {
			ids = append(ids, event.ID)
		}
	}

	return ids, nil
}

func remediateIDs(cmd *cobra.Command, a *app, ids []domain.EventID, concurrency int) ([]application.Outcome, error) {
	if concurrency <= 0 {
		concurrency = a.cfg.Remediate.Concurrency
	}

	var outcomes []application.Outcome
	label := fmt.Sprintf("Remediating %d events...", len(ids))
	err := withProgress(cmd.Context(), cmd.ErrOrStderr(), label, func(ctx context.Context) error {
		var err error
		outcomes, err = a.remediation.RemediateAll(ctx, ids, concurrency)
		return err
	})
	if err != nil {
		return outcomes, fmt.Errorf("remediate events: %w", err)
	}

	return outcomes, nil
}
