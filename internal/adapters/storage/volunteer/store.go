package volunteer

import (
	"context"

	domain "assosite/internal/domain/volunteer"
)

// Store persists Volunteer state.
type Store interface {
	Save(ctx context.Context, value domain.Volunteer) error

	// List returns all volunteers ordered by name.
	List(ctx context.Context) ([]domain.Volunteer, error)
}
