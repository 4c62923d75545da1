// Package transport implements the interactive device session shared by the
// concrete transports: a byte stream is pumped into a pending queue, and reads
// poll that queue until the device is back at its prompt.
package transport

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/bnema/remedy/internal/domain"
	"github.com/bnema/remedy/internal/ports"
	"go.uber.org/zap"
)

const (
	DefaultPollInterval     = 250 * time.Millisecond
	DefaultHandshakeTimeout = 15 * time.Second

	readChunkSize = 8096
	closeWait     = 5 * time.Second
)

// Options controls session polling and the opening handshake.
type Options struct {
	Prompt           domain.Prompt
	PollInterval     time.Duration
	HandshakeTimeout time.Duration
	Logger           *zap.Logger
}

func (o Options) withDefaults() Options {
	if o.PollInterval <= 0 {
		o.PollInterval = DefaultPollInterval
	}
	if o.HandshakeTimeout <= 0 {
		o.HandshakeTimeout = DefaultHandshakeTimeout
	}
	if o.Logger == nil {
		o.Logger = zap.NewNop()
	}

	return o
}

// Stream is the raw connection a session runs over. Closing Closer must
// unblock any pending Read on Reader.
type Stream struct {
	Reader io.Reader
	Writer io.Writer
	Closer io.Closer
}

type Session struct {
	device string
	stream Stream
	opts   Options

	mu       sync.Mutex
	pending  []byte
	pumpErr  error
	pumpDone chan struct{}

	buf         strings.Builder
	lastCommand string

	closeOnce sync.Once
	closeErr  error
	closed    chan struct{}
}

var _ ports.Session = (*Session)(nil)

// NewSession starts pumping the stream. Callers normally use Open, which also
// waits for the device's first prompt.
func NewSession(device string, stream Stream, opts Options) *Session {
	s := &Session{
		device:   device,
		stream:   stream,
		opts:     opts.withDefaults(),
		pumpDone: make(chan struct{}),
		closed:   make(chan struct{}),
	}
	go s.pump()

	return s
}

// Open starts a session over stream and performs the login handshake: the
// banner is consumed up to the first idle prompt and then discarded. The
// session is closed when the handshake fails.
func Open(ctx context.Context, device string, stream Stream, opts Options) (*Session, error) {
	s := NewSession(device, stream, opts)

	until := domain.Until{Prompt: s.opts.Prompt, Boundaries: 1}
	if _, err := s.ReadUntil(ctx, until, s.opts.HandshakeTimeout); err != nil {
		closeErr := s.Close()
		var connErr *domain.ConnectionError
		if errors.As(err, &connErr) {
			return nil, err
		}
		if closeErr != nil {
			err = errors.Join(err, closeErr)
		}
		return nil, &domain.ConnectionError{Device: device, Err: fmt.Errorf("wait for prompt: %w", err)}
	}
	s.Reset()

	return s, nil
}

func (s *Session) Device() string {
	return s.device
}

func (s *Session) Send(ctx context.Context, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s.isClosed() {
		return domain.ErrSessionClosed
	}

	s.lastCommand = text
	s.opts.Logger.Debug("send", zap.String("device", s.device), zap.String("command", text))

	if _, err := io.WriteString(s.stream.Writer, text+"\n"); err != nil {
		return &domain.ConnectionError{Device: s.device, Err: fmt.Errorf("send %q: %w", text, err)}
	}

	return nil
}

// ReadUntil accumulates output until until is satisfied by the whole buffer.
// When no data is pending it sleeps for the poll interval before checking
// again.
func (s *Session) ReadUntil(ctx context.Context, until domain.Until, timeout time.Duration) (string, error) {
	if s.isClosed() {
		return "", domain.ErrSessionClosed
	}

	deadline := time.Now().Add(timeout)
	if until.Satisfied(s.buf.String()) {
		return s.buf.String(), nil
	}

	for {
		chunk, pumpErr := s.drain()
		if len(chunk) > 0 {
			s.buf.Write(chunk)
			if output := s.buf.String(); until.Satisfied(output) {
				return output, nil
			}
			continue
		}

		if pumpErr != nil {
			return "", &domain.ConnectionError{Device: s.device, Err: fmt.Errorf("stream ended: %w", pumpErr)}
		}

		remaining := time.Until(deadline)
		if remaining <= 0 {
			return "", &domain.TimeoutError{Device: s.device, Command: s.lastCommand, Timeout: timeout}
		}

		wait := min(s.opts.PollInterval, remaining)
		timer := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			timer.Stop()
			return "", ctx.Err()
		case <-s.closed:
			timer.Stop()
			return "", domain.ErrSessionClosed
		case <-timer.C:
		}
	}
}

// Reset discards accumulated and not yet consumed output.
func (s *Session) Reset() {
	s.buf.Reset()

	s.mu.Lock()
	s.pending = nil
	s.mu.Unlock()
}

// Close is idempotent. It closes the stream and waits for the pump to exit.
func (s *Session) Close() error {
	s.closeOnce.Do(func() {
		close(s.closed)
		if s.stream.Closer != nil {
			s.closeErr = s.stream.Closer.Close()
		}

		select {
		case <-s.pumpDone:
		case <-time.After(closeWait):
			s.opts.Logger.Warn("stream reader did not stop after close", zap.String("device", s.device))
		}
	})

	return s.closeErr
}

func (s *Session) pump() {
	defer close(s.pumpDone)

	chunk := make([]byte, readChunkSize)
	for {
		n, err := s.stream.Reader.Read(chunk)
		if n > 0 {
			s.mu.Lock()
			s.pending = append(s.pending, chunk[:n]...)
			s.mu.Unlock()
		}
		if err != nil {
			s.mu.Lock()
			s.pumpErr = err
			s.mu.Unlock()
			return
		}
	}
}

func (s *Session) drain() ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	chunk := s.pending
	s.pending = nil

	return chunk, s.pumpErr
}

func (s *Session) isClosed() bool {
	select {
	case <-s.closed:
		return true
	default:
		return false
	}
}
