package orchestrators

import (
	"context"
	"errors"
	"testing"

	"assosite/internal/domain/event"
	"assosite/internal/domain/registration"
)

type mockEventStore struct {
	events map[string]event.Event
}

func (m *mockEventStore) GetByID(_ context.Context, id string) (event.Event, error) {
	e, ok := m.events[id]
	if !ok {
		return event.Event{}, errors.New("not found")
	}
	return e, nil
}

type mockRegistrationStore struct {
	saved   []registration.Registration
	saveErr error
}

func (m *mockRegistrationStore) Save(_ context.Context, r registration.Registration) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.saved = append(m.saved, r)
	return nil
}

func validRegistrationDeps() (RegisterForEventDeps, *mockRegistrationStore) {
	regs := &mockRegistrationStore{}
	deps := RegisterForEventDeps{
		EventStore: &mockEventStore{events: map[string]event.Event{
			"e-1": {ID: "e-1", Title: "Vide-grenier", Date: "2026-10-03"},
		}},
		RegistrationStore: regs,
	}
	return deps, regs
}

func TestExecuteRegisterForEvent_Success(t *testing.T) {
	deps, regs := validRegistrationDeps()

	input := RegisterForEventInput{EventID: "e-1", Name: "Marie Dupont", Email: "marie@example.org", Phone: "0601020304"}
	id, err := ExecuteRegisterForEvent(context.Background(), input, deps)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id == "" {
		t.Error("expected a registration ID")
	}
	if len(regs.saved) != 1 {
		t.Fatalf("expected 1 saved registration, got %d", len(regs.saved))
	}
	if regs.saved[0].EventID != "e-1" {
		t.Errorf("expected EventID %q, got %q", "e-1", regs.saved[0].EventID)
	}
	if regs.saved[0].CreatedAt.IsZero() {
		t.Error("expected CreatedAt to be set")
	}
}

// Validation failures must short-circuit before any write.
func TestExecuteRegisterForEvent_MissingEmailNoWrite(t *testing.T) {
	deps, regs := validRegistrationDeps()

	input := RegisterForEventInput{EventID: "e-1", Name: "Marie Dupont", Email: ""}
	_, err := ExecuteRegisterForEvent(context.Background(), input, deps)
	if !errors.Is(err, ErrValidation) {
		t.Errorf("expected ErrValidation, got %v", err)
	}
	if len(regs.saved) != 0 {
		t.Errorf("expected no saved registrations, got %d", len(regs.saved))
	}
}

func TestExecuteRegisterForEvent_InvalidEmail(t *testing.T) {
	deps, regs := validRegistrationDeps()

	input := RegisterForEventInput{EventID: "e-1", Name: "Marie Dupont", Email: "pas-un-email"}
	_, err := ExecuteRegisterForEvent(context.Background(), input, deps)
	if !errors.Is(err, ErrValidation) {
		t.Errorf("expected ErrValidation, got %v", err)
	}
	if len(regs.saved) != 0 {
		t.Errorf("expected no saved registrations, got %d", len(regs.saved))
	}
}

func TestExecuteRegisterForEvent_UnknownEvent(t *testing.T) {
	deps, regs := validRegistrationDeps()

	input := RegisterForEventInput{EventID: "e-404", Name: "Marie Dupont", Email: "marie@example.org"}
	_, err := ExecuteRegisterForEvent(context.Background(), input, deps)
	if !errors.Is(err, ErrValidation) {
		t.Errorf("expected ErrValidation, got %v", err)
	}
	if len(regs.saved) != 0 {
		t.Errorf("expected no saved registrations, got %d", len(regs.saved))
	}
}

func TestExecuteRegisterForEvent_StoreError(t *testing.T) {
	deps, regs := validRegistrationDeps()
	regs.saveErr = errors.New("disk full")

	input := RegisterForEventInput{EventID: "e-1", Name: "Marie Dupont", Email: "marie@example.org"}
	_, err := ExecuteRegisterForEvent(context.Background(), input, deps)
	if err == nil {
		t.Fatal("expected an error")
	}
	if errors.Is(err, ErrValidation) {
		t.Errorf("store errors must not be reported as validation errors, got %v", err)
	}
}
