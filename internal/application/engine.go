package application

import (
	"context"
	"errors"
	"fmt"

	"github.com/bnema/remedy/internal/domain"
	"github.com/bnema/remedy/internal/ports"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Engine selects a routine for an event and runs it over a fresh session.
type Engine struct {
	registry  *Registry
	transport ports.Transport
	targets   TargetResolver
	executor  *Executor
	logger    *zap.Logger
	newRunID  func() string
}

func NewEngine(registry *Registry, transport ports.Transport, targets TargetResolver, executor *Executor, logger *zap.Logger) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Engine{
		registry:  registry,
		transport: transport,
		targets:   targets,
		executor:  executor,
		logger:    logger,
		newRunID:  func() string { return uuid.NewString() },
	}
}

// Remediate always returns a populated verdict. The error is non-nil exactly
// when the verdict is indeterminate.
func (e *Engine) Remediate(ctx context.Context, event domain.Event) (domain.Verdict, error) {
	verdict := domain.Verdict{
		RunID:  e.newRunID(),
		Device: event.Device,
	}
	logger := e.logger.With(
		zap.String("run_id", verdict.RunID),
		zap.String("device", event.Device),
		zap.String("error_code", event.ErrorCode),
	)

	routine, ok := e.registry.Match(event.ErrorCode)
	if !ok {
		logger.Debug("no routine for error code")
		return indeterminate(verdict, fmt.Errorf("%w %s", domain.ErrNoRoutine, event.ErrorCode))
	}
	verdict.Routine = routine.Name()
	logger = logger.With(zap.String("routine", verdict.Routine))

	subject, err := routine.Subject(event.ErrorMessage)
	if err != nil {
		logger.Warn("could not extract subject", zap.Error(err))
		return indeterminate(verdict, err)
	}
	verdict.Subject = subject
	logger = logger.With(zap.String("subject", subject))

	target, err := e.targets.Resolve(ctx, event.Device)
	if err != nil {
		logger.Warn("could not resolve target", zap.Error(err))
		return indeterminate(verdict, &domain.ConnectionError{Device: event.Device, Err: err})
	}

	logger.Info("starting remediation", zap.String("target", target.String()))
	session, err := e.transport.Open(ctx, target)
	if err != nil {
		logger.Warn("could not open session", zap.Error(err))
		return indeterminate(verdict, err)
	}
	defer func() {
		if closeErr := session.Close(); closeErr != nil {
			logger.Debug("close session", zap.Error(closeErr))
		}
	}()

	querier := e.executor.Bind(session)
	finding, err := routine.Diagnose(ctx, querier, event.Device, subject)
	verdict.Commands = querier.Commands()
	if err != nil {
		logger.Warn("remediation failed", zap.Error(err), zap.Strings("commands", verdict.Commands))
		return indeterminate(verdict, err)
	}

	verdict.Classification = finding.Classification
	verdict.Diagnosis = finding.Diagnosis
	logger.Info("remediation concluded",
		zap.String("classification", string(verdict.Classification)),
		zap.String("diagnosis", verdict.Diagnosis),
	)

	return verdict, nil
}

func indeterminate(verdict domain.Verdict, err error) (domain.Verdict, error) {
	verdict.Classification = domain.ClassificationIndeterminate
	verdict.Err = err
	verdict.Diagnosis = fmt.Sprintf("[%s] %s could not be classified: %s", verdict.Device, subjectLabel(verdict), reason(err))

	return verdict, err
}

func subjectLabel(verdict domain.Verdict) string {
	switch {
	case verdict.Subject == "":
		return "event"
	case verdict.Routine == (LinecardRoutine{}).Name():
		return "module " + verdict.Subject
	default:
		return "interface " + verdict.Subject
	}
}

func reason(err error) string {
	var timeoutErr *domain.TimeoutError
	var parseErr *domain.ParseError

	switch {
	case errors.As(err, &timeoutErr):
		return "device did not answer in time: " + err.Error()
	case errors.As(err, &parseErr):
		return "unexpected device output: " + err.Error()
	default:
		return err.Error()
	}
}
