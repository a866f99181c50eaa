package contact

import (
	"context"

	domain "assosite/internal/domain/contact"
)

// Store persists Contact state.
type Store interface {
	Save(ctx context.Context, value domain.Contact) error

	// List returns all contact messages, newest first.
	List(ctx context.Context) ([]domain.Contact, error)
}
