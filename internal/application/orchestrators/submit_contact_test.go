package orchestrators

import (
	"context"
	"errors"
	"testing"

	emailAdapter "assosite/internal/adapters/email"
	"assosite/internal/domain/contact"
)

type mockContactStore struct {
	saved []contact.Contact
}

func (m *mockContactStore) Save(_ context.Context, c contact.Contact) error {
	m.saved = append(m.saved, c)
	return nil
}

type recordingSender struct {
	sent []emailAdapter.SendRequest
}

func (r *recordingSender) Send(_ context.Context, req emailAdapter.SendRequest) (emailAdapter.SendResult, error) {
	r.sent = append(r.sent, req)
	return emailAdapter.SendResult{MessageID: "msg-1"}, nil
}

func TestExecuteSubmitContact_Success(t *testing.T) {
	store := &mockContactStore{}
	sender := &recordingSender{}
	deps := SubmitContactDeps{ContactStore: store, Sender: sender, NotifyTo: "contact@asso.fr"}

	input := SubmitContactInput{
		Name:    "Paul Martin",
		Email:   "paul@example.org",
		Subject: "Adhésion",
		Message: "Bonjour, comment adhérer ?",
	}
	id, err := ExecuteSubmitContact(context.Background(), input, deps)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id == "" {
		t.Error("expected a contact ID")
	}
	if len(store.saved) != 1 {
		t.Fatalf("expected 1 saved contact, got %d", len(store.saved))
	}
	if len(sender.sent) != 1 {
		t.Fatalf("expected 1 forwarded email, got %d", len(sender.sent))
	}
	if sender.sent[0].ReplyTo != "paul@example.org" {
		t.Errorf("expected ReplyTo %q, got %q", "paul@example.org", sender.sent[0].ReplyTo)
	}
}

func TestExecuteSubmitContact_MissingMessage(t *testing.T) {
	store := &mockContactStore{}
	deps := SubmitContactDeps{ContactStore: store}

	input := SubmitContactInput{Name: "Paul Martin", Email: "paul@example.org"}
	_, err := ExecuteSubmitContact(context.Background(), input, deps)
	if !errors.Is(err, ErrValidation) {
		t.Errorf("expected ErrValidation, got %v", err)
	}
	if len(store.saved) != 0 {
		t.Errorf("expected no saved contacts, got %d", len(store.saved))
	}
}

// A nil sender means no forwarding is configured; submission still
// succeeds.
func TestExecuteSubmitContact_NoSender(t *testing.T) {
	store := &mockContactStore{}
	deps := SubmitContactDeps{ContactStore: store}

	input := SubmitContactInput{Name: "Paul Martin", Email: "paul@example.org", Message: "Bonjour"}
	if _, err := ExecuteSubmitContact(context.Background(), input, deps); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(store.saved) != 1 {
		t.Fatalf("expected 1 saved contact, got %d", len(store.saved))
	}
}
