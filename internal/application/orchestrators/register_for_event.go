package orchestrators

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	emailAdapter "assosite/internal/adapters/email"
	"assosite/internal/domain/event"
	"assosite/internal/domain/registration"
	"assosite/pkg/validator"
)

// EventStoreForRegistration defines the store interface needed by
// RegisterForEvent.
type EventStoreForRegistration interface {
	GetByID(ctx context.Context, id string) (event.Event, error)
}

// RegistrationStoreForRegister defines the store interface needed by
// RegisterForEvent.
type RegistrationStoreForRegister interface {
	Save(ctx context.Context, r registration.Registration) error
}

// RegisterForEventInput carries input for the registration orchestrator.
type RegisterForEventInput struct {
	EventID string `validate:"required"`
	Name    string `validate:"required,max=120"`
	Email   string `validate:"required,email"`
	Phone   string `validate:"max=30"`
}

// RegisterForEventDeps holds dependencies for RegisterForEvent.
type RegisterForEventDeps struct {
	EventStore        EventStoreForRegistration
	RegistrationStore RegistrationStoreForRegister

	// Sender is optional; when set, a notification email is sent to
	// NotifyTo on each new registration (best effort).
	Sender   emailAdapter.Sender
	NotifyTo string
}

// ExecuteRegisterForEvent validates a public registration submission
// and persists it. Validation failures short-circuit before any write.
// PRE: none
// POST: Exactly one registration row on success, none on failure
func ExecuteRegisterForEvent(ctx context.Context, input RegisterForEventInput, deps RegisterForEventDeps) (string, error) {
	if err := validator.Validate(ctx, input); err != nil {
		return "", fmt.Errorf("%w: %v", ErrValidation, err)
	}

	evt, err := deps.EventStore.GetByID(ctx, input.EventID)
	if err != nil {
		return "", fmt.Errorf("%w: événement introuvable", ErrValidation)
	}

	reg := registration.Registration{
		ID:        uuid.New().String(),
		EventID:   evt.ID,
		Name:      input.Name,
		Email:     input.Email,
		Phone:     input.Phone,
		CreatedAt: time.Now(),
	}
	if err := reg.Validate(); err != nil {
		return "", fmt.Errorf("%w: %v", ErrValidation, err)
	}

	if err := deps.RegistrationStore.Save(ctx, reg); err != nil {
		return "", err
	}

	slog.Info("registration_event", "event", "registration_created",
		"event_id", evt.ID, "event_title", evt.Title, "email", input.Email)

	notifyRegistration(ctx, deps, evt, reg)

	return reg.ID, nil
}

// notifyRegistration emails the association inbox about a new
// registration. Failures are logged, never surfaced to the visitor.
func notifyRegistration(ctx context.Context, deps RegisterForEventDeps, evt event.Event, reg registration.Registration) {
	if deps.Sender == nil || deps.NotifyTo == "" {
		return
	}
	req := emailAdapter.SendRequest{
		To:      []string{deps.NotifyTo},
		Subject: "Nouvelle inscription : " + evt.Title,
		HTML: fmt.Sprintf("<p>%s (%s) s'est inscrit·e à <strong>%s</strong> du %s.</p>",
			reg.Name, reg.Email, evt.Title, evt.Date),
	}
	if _, err := deps.Sender.Send(ctx, req); err != nil {
		slog.Warn("registration_event", "event", "notify_failed", "error", err)
	}
}
