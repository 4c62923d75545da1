package ports

import (
	"context"
	"time"

	"github.com/bnema/remedy/internal/domain"
)

type Transport interface {
	Open(ctx context.Context, target domain.Target) (Session, error)
}

// Session is one interactive connection to a device. A session has a single
// owner; it is not safe for concurrent use.
type Session interface {
	Device() string
	Send(ctx context.Context, text string) error
	ReadUntil(ctx context.Context, until domain.Until, timeout time.Duration) (string, error)
	Reset()
	Close() error
}
