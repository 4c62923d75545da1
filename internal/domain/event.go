package domain

import (
	"strings"
	"time"
)

type EventID int64

type Result int

const (
	ResultUnset Result = iota
	ResultRemediationFailed
	ResultRemediationCompleted
)

func (r Result) String() string {
	switch r {
	case ResultUnset:
		return "unset"
	case ResultRemediationFailed:
		return "remediation_failed"
	case ResultRemediationCompleted:
		return "remediation_completed"
	default:
		return "unknown"
	}
}

func (r Result) Valid() bool {
	switch r {
	case ResultUnset, ResultRemediationFailed, ResultRemediationCompleted:
		return true
	default:
		return false
	}
}

// IdentityKey is the exact tuple used for event deduplication.
type IdentityKey struct {
	Timestamp    string
	Device       string
	ErrorCode    string
	ErrorMessage string
}

type Event struct {
	ID           EventID
	Timestamp    string
	Device       string
	ErrorCode    string
	ErrorMessage string
	Result       Result
	ObservedAt   time.Time
}

func (e Event) Key() IdentityKey {
	return IdentityKey{
		Timestamp:    e.Timestamp,
		Device:       e.Device,
		ErrorCode:    e.ErrorCode,
		ErrorMessage: e.ErrorMessage,
	}
}

// JoinTimestamp combines a syslog datestamp and time of day into the
// single-spaced form stored on events ("2015 Apr 2 14:25:06").
func JoinTimestamp(datestamp, timeOfDay string) string {
	return strings.Join(strings.Fields(datestamp+" "+timeOfDay), " ")
}
