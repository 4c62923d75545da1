package ports

import (
	"context"

	"github.com/bnema/remedy/internal/domain"
)

// EventRepository persists events. Insert is idempotent per identity key and
// returns the existing id when the key is already stored.
type EventRepository interface {
	Insert(ctx context.Context, key domain.IdentityKey) (domain.EventID, error)
	GetByID(ctx context.Context, id domain.EventID) (domain.Event, error)
	UpdateResult(ctx context.Context, id domain.EventID, result domain.Result) error
	List(ctx context.Context, limit int) ([]domain.Event, error)
}
