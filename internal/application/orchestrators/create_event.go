package orchestrators

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"assosite/internal/domain/event"
	"assosite/pkg/validator"
)

// EventStoreForCreate defines the store interface needed by CreateEvent.
type EventStoreForCreate interface {
	Save(ctx context.Context, e event.Event) error
}

// CreateEventInput carries input for the event-creation orchestrator.
// Cost is in euro cents.
type CreateEventInput struct {
	Title       string `validate:"required,max=200"`
	Description string `validate:"max=4000"`
	Date        string `validate:"required"`
	StartTime   string `validate:"required"`
	EndTime     string
	Location    string `validate:"required,max=200"`
	Cost        int    `validate:"gte=0"`
	Capacity    int    `validate:"gte=0"`
}

// CreateEventDeps holds dependencies for CreateEvent.
type CreateEventDeps struct {
	EventStore EventStoreForCreate
}

// ExecuteCreateEvent validates an admin submission and persists a new
// event.
// PRE: Caller has verified the admin session
// POST: Event persisted on success, nothing written on failure
func ExecuteCreateEvent(ctx context.Context, input CreateEventInput, deps CreateEventDeps) (string, error) {
	if err := validator.Validate(ctx, input); err != nil {
		return "", fmt.Errorf("%w: %v", ErrValidation, err)
	}

	e := event.Event{
		ID:          uuid.New().String(),
		Title:       input.Title,
		Description: input.Description,
		Date:        input.Date,
		StartTime:   input.StartTime,
		EndTime:     input.EndTime,
		Location:    input.Location,
		Cost:        input.Cost,
		Capacity:    input.Capacity,
	}
	if err := e.Validate(); err != nil {
		return "", fmt.Errorf("%w: %v", ErrValidation, err)
	}

	if err := deps.EventStore.Save(ctx, e); err != nil {
		return "", err
	}

	slog.Info("admin_event", "event", "event_created", "title", e.Title, "date", e.Date)
	return e.ID, nil
}
