package registration

import (
	"context"

	domain "assosite/internal/domain/registration"
)

// WithEventTitle pairs a Registration with the title of the event it
// belongs to, for dashboard listings.
type WithEventTitle struct {
	domain.Registration
	EventTitle string
}

// Store persists Registration state.
type Store interface {
	Save(ctx context.Context, value domain.Registration) error
	CountByEventID(ctx context.Context, eventID string) (int, error)

	// ListWithEventTitle returns all registrations joined with their
	// event title, newest first.
	ListWithEventTitle(ctx context.Context) ([]WithEventTitle, error)
}
