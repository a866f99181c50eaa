package event

import (
	"context"

	domain "assosite/internal/domain/event"
)

// Store persists Event state.
type Store interface {
	GetByID(ctx context.Context, id string) (domain.Event, error)
	Save(ctx context.Context, value domain.Event) error

	// List returns all events ordered by date ascending, then start time.
	List(ctx context.Context) ([]domain.Event, error)
}
