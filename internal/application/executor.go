package application

import (
	"context"
	"strings"
	"time"

	"github.com/bnema/remedy/internal/domain"
	"github.com/bnema/remedy/internal/ports"
	"go.uber.org/zap"
)

const (
	DefaultCommandTimeout = 30 * time.Second
	DefaultCommandDelay   = 2 * time.Second
)

type ExecutorConfig struct {
	Prompt       domain.Prompt
	Timeout      time.Duration
	CommandDelay time.Duration
	Logger       *zap.Logger
}

// Executor runs command batches on an open session. Commands are paced by a
// fixed delay and the whole batch is read back in one pass.
type Executor struct {
	prompt  domain.Prompt
	timeout time.Duration
	delay   time.Duration
	logger  *zap.Logger
}

func NewExecutor(cfg ExecutorConfig) *Executor {
	if cfg.Prompt.String() == "" {
		cfg.Prompt = domain.MustPrompt(domain.DefaultPromptExpr)
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultCommandTimeout
	}
	if cfg.CommandDelay < 0 {
		cfg.CommandDelay = 0
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}

	return &Executor{
		prompt:  cfg.Prompt,
		timeout: cfg.Timeout,
		delay:   cfg.CommandDelay,
		logger:  cfg.Logger,
	}
}

// Run sends commands in order and returns the device output split into
// lines. The read completes once the device is back at its prompt after
// every command.
func (e *Executor) Run(ctx context.Context, session ports.Session, commands ...string) ([]string, error) {
	session.Reset()

	for _, command := range commands {
		if err := session.Send(ctx, command); err != nil {
			return nil, err
		}
		if err := sleep(ctx, e.delay); err != nil {
			return nil, err
		}
	}

	output, err := session.ReadUntil(ctx, domain.Until{Prompt: e.prompt, Boundaries: len(commands)}, e.timeout)
	if err != nil {
		return nil, err
	}

	lines := splitLines(output)
	e.logger.Debug("commands completed",
		zap.String("device", session.Device()),
		zap.Strings("commands", commands),
		zap.Int("lines", len(lines)),
	)

	return lines, nil
}

// Bind returns a Querier that runs commands on session and records them.
func (e *Executor) Bind(session ports.Session) *BoundQuerier {
	return &BoundQuerier{executor: e, session: session}
}

type BoundQuerier struct {
	executor *Executor
	session  ports.Session
	commands []string
}

func (q *BoundQuerier) Query(ctx context.Context, commands ...string) ([]string, error) {
	q.commands = append(q.commands, commands...)

	return q.executor.Run(ctx, q.session, commands...)
}

// Commands returns every command issued through the querier.
func (q *BoundQuerier) Commands() []string {
	return append([]string(nil), q.commands...)
}

func splitLines(output string) []string {
	lines := strings.Split(output, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, "\r")
	}

	return lines
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
