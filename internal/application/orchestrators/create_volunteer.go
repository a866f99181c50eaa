package orchestrators

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"assosite/internal/domain/volunteer"
	"assosite/pkg/validator"
)

// VolunteerStoreForCreate defines the store interface needed by
// CreateVolunteer.
type VolunteerStoreForCreate interface {
	Save(ctx context.Context, v volunteer.Volunteer) error
}

// CreateVolunteerInput carries input for the volunteer-creation
// orchestrator.
type CreateVolunteerInput struct {
	Name     string `validate:"required,max=120"`
	Position string `validate:"required,max=120"`
	Bio      string `validate:"max=2000"`
	Photo    string `validate:"max=300"`
}

// CreateVolunteerDeps holds dependencies for CreateVolunteer.
type CreateVolunteerDeps struct {
	VolunteerStore VolunteerStoreForCreate
}

// ExecuteCreateVolunteer validates an admin submission and persists a
// new volunteer.
// PRE: Caller has verified the admin session
// POST: Volunteer persisted on success, nothing written on failure
func ExecuteCreateVolunteer(ctx context.Context, input CreateVolunteerInput, deps CreateVolunteerDeps) (string, error) {
	if err := validator.Validate(ctx, input); err != nil {
		return "", fmt.Errorf("%w: %v", ErrValidation, err)
	}

	v := volunteer.Volunteer{
		ID:       uuid.New().String(),
		Name:     input.Name,
		Position: input.Position,
		Bio:      input.Bio,
		Photo:    input.Photo,
	}
	if err := v.Validate(); err != nil {
		return "", fmt.Errorf("%w: %v", ErrValidation, err)
	}

	if err := deps.VolunteerStore.Save(ctx, v); err != nil {
		return "", err
	}

	slog.Info("admin_event", "event", "volunteer_created", "name", v.Name, "position", v.Position)
	return v.ID, nil
}
