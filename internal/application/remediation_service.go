package application

import (
	"context"
	"errors"
	"fmt"

	"github.com/bnema/remedy/internal/domain"
	"github.com/bnema/remedy/internal/ports"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Outcome is the remediation result for one event.
type Outcome struct {
	EventID domain.EventID
	Event   domain.Event
	Verdict domain.Verdict
	// Skipped is set when no routine handles the event's error code.
	Skipped bool
	Err     error
}

type RemediationService struct {
	repo   ports.EventRepository
	engine *Engine
	logger *zap.Logger
}

func NewRemediationService(repo ports.EventRepository, engine *Engine, logger *zap.Logger) *RemediationService {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &RemediationService{repo: repo, engine: engine, logger: logger}
}

// Remediate runs the engine for one stored event and records the result.
// Events whose classification is indeterminate for reasons other than the
// transport keep their current result.
func (s *RemediationService) Remediate(ctx context.Context, id domain.EventID) (Outcome, error) {
	event, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Outcome{EventID: id, Err: err}, fmt.Errorf("get event %d: %w", id, err)
	}

	outcome := s.remediateEvent(ctx, event)

	return outcome, outcome.Err
}

// RemediateAll remediates every event and never stops on a failed event.
// With concurrency above one, events are grouped by device: each device's
// events run in order while different devices run in parallel.
func (s *RemediationService) RemediateAll(ctx context.Context, ids []domain.EventID, concurrency int) ([]Outcome, error) {
	outcomes := make([]Outcome, len(ids))
	var byDevice [][]int
	deviceIndex := map[string]int{}

	for i, id := range ids {
		event, err := s.repo.GetByID(ctx, id)
		if err != nil {
			outcomes[i] = Outcome{EventID: id, Err: fmt.Errorf("get event %d: %w", id, err)}
			continue
		}
		outcomes[i] = Outcome{EventID: id, Event: event}

		group, ok := deviceIndex[event.Device]
		if !ok {
			group = len(byDevice)
			deviceIndex[event.Device] = group
			byDevice = append(byDevice, nil)
		}
		byDevice[group] = append(byDevice[group], i)
	}

	if concurrency <= 1 {
		for i := range outcomes {
			if outcomes[i].Err != nil {
				continue
			}
			if err := ctx.Err(); err != nil {
				return outcomes, err
			}
			outcomes[i] = s.remediateEvent(ctx, outcomes[i].Event)
		}

		return outcomes, nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)
	for _, group := range byDevice {
		g.Go(func() error {
			for _, i := range group {
				if err := gctx.Err(); err != nil {
					return err
				}
				outcomes[i] = s.remediateEvent(gctx, outcomes[i].Event)
			}
			return nil
		})
	}

	return outcomes, g.Wait()
}

func (s *RemediationService) remediateEvent(ctx context.Context, event domain.Event) Outcome {
	outcome := Outcome{EventID: event.ID, Event: event}

	verdict, err := s.engine.Remediate(ctx, event)
	outcome.Verdict = verdict
	if errors.Is(err, domain.ErrNoRoutine) {
		outcome.Skipped = true
		return outcome
	}
	outcome.Err = err

	result, ok := verdict.Result()
	if !ok {
		return outcome
	}

	if updateErr := s.repo.UpdateResult(ctx, event.ID, result); updateErr != nil {
		s.logger.Error("could not record remediation result",
			zap.Int64("event_id", int64(event.ID)),
			zap.String("result", result.String()),
			zap.Error(updateErr),
		)
		outcome.Err = errors.Join(outcome.Err, fmt.Errorf("update event %d result: %w", event.ID, updateErr))
		return outcome
	}
	outcome.Event.Result = result

	return outcome
}
