package user

import (
	"context"

	domain "assosite/internal/domain/user"
)

// Store persists User and Role state.
type Store interface {
	GetByID(ctx context.Context, id string) (domain.User, error)
	GetByUsername(ctx context.Context, username string) (domain.User, error)
	Save(ctx context.Context, value domain.User) error
	CountUsers(ctx context.Context) (int, error)
	CountRoles(ctx context.Context) (int, error)
	ListRoles(ctx context.Context) ([]domain.Role, error)

	// SeedDefaults installs the role taxonomy and the default admin
	// account inside a single transaction: either both seeds land or
	// neither does.
	SeedDefaults(ctx context.Context, roles []string, admin domain.User) error
}
