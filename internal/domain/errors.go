package domain

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrEventNotFound = errors.New("event not found")
	ErrNoRoutine     = errors.New("no remediation routine for error code")
	ErrSessionClosed = errors.New("session closed")
)

// ConnectionError reports that a session to a device could not be established.
type ConnectionError struct {
	Device string
	Err    error
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("connect to %s: %v", e.Device, e.Err)
}

func (e *ConnectionError) Unwrap() error {
	return e.Err
}

// TimeoutError reports that the device prompt was not observed within the
// read budget. Command is the last command sent before the wait began.
type TimeoutError struct {
	Device  string
	Command string
	Timeout time.Duration
}

func (e *TimeoutError) Error() string {
	if e.Command == "" {
		return fmt.Sprintf("timed out after %s waiting for prompt from %s", e.Timeout, e.Device)
	}

	return fmt.Sprintf("timed out after %s waiting for response to %q from %s", e.Timeout, e.Command, e.Device)
}

// ParseError reports that an expected field was missing or malformed in
// device output.
type ParseError struct {
	Field  string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %s: %s", e.Field, e.Reason)
}

// ExtractionMiss reports that a log line or error message did not have the
// expected shape.
type ExtractionMiss struct {
	What  string
	Input string
}

func (e *ExtractionMiss) Error() string {
	return fmt.Sprintf("no %s found in %q", e.What, e.Input)
}

func IsTransportFailure(err error) bool {
	var connErr *ConnectionError
	var timeoutErr *TimeoutError

	return errors.As(err, &connErr) || errors.As(err, &timeoutErr)
}
