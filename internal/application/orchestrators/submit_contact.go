package orchestrators

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	emailAdapter "assosite/internal/adapters/email"
	"assosite/internal/domain/contact"
	"assosite/pkg/validator"
)

// ContactStoreForSubmit defines the store interface needed by
// SubmitContact.
type ContactStoreForSubmit interface {
	Save(ctx context.Context, c contact.Contact) error
}

// SubmitContactInput carries input for the contact orchestrator.
type SubmitContactInput struct {
	Name    string `validate:"required,max=120"`
	Email   string `validate:"required,email"`
	Phone   string `validate:"max=30"`
	Subject string `validate:"max=200"`
	Message string `validate:"required,max=4000"`
}

// SubmitContactDeps holds dependencies for SubmitContact.
type SubmitContactDeps struct {
	ContactStore ContactStoreForSubmit

	// Sender is optional; when set, the message is forwarded to
	// NotifyTo (best effort).
	Sender   emailAdapter.Sender
	NotifyTo string
}

// ExecuteSubmitContact validates a contact submission and persists it.
// Validation failures short-circuit before any write.
// PRE: none
// POST: Exactly one contact row on success, none on failure
func ExecuteSubmitContact(ctx context.Context, input SubmitContactInput, deps SubmitContactDeps) (string, error) {
	if err := validator.Validate(ctx, input); err != nil {
		return "", fmt.Errorf("%w: %v", ErrValidation, err)
	}

	c := contact.Contact{
		ID:        uuid.New().String(),
		Name:      input.Name,
		Email:     input.Email,
		Phone:     input.Phone,
		Subject:   input.Subject,
		Message:   input.Message,
		CreatedAt: time.Now(),
	}
	if err := c.Validate(); err != nil {
		return "", fmt.Errorf("%w: %v", ErrValidation, err)
	}

	if err := deps.ContactStore.Save(ctx, c); err != nil {
		return "", err
	}

	slog.Info("contact_event", "event", "contact_created", "email", input.Email, "subject", input.Subject)

	if deps.Sender != nil && deps.NotifyTo != "" {
		req := emailAdapter.SendRequest{
			To:      []string{deps.NotifyTo},
			Subject: "Nouveau message de contact",
			HTML: fmt.Sprintf("<p><strong>%s</strong> (%s) a écrit :</p><p>%s</p>",
				c.Name, c.Email, c.Message),
			ReplyTo: c.Email,
		}
		if _, err := deps.Sender.Send(ctx, req); err != nil {
			slog.Warn("contact_event", "event", "notify_failed", "error", err)
		}
	}

	return c.ID, nil
}
