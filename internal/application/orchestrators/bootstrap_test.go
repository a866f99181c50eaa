package orchestrators

import (
	"context"
	"errors"
	"testing"

	"assosite/internal/domain/catalog"
	"assosite/internal/domain/user"
)

type mockBootstrapUserStore struct {
	roles []string
	admin user.User
	calls int
	err   error
}

func (m *mockBootstrapUserStore) SeedDefaults(_ context.Context, roles []string, admin user.User) error {
	m.calls++
	if m.err != nil {
		return m.err
	}
	m.roles = roles
	m.admin = admin
	return nil
}

type mockBootstrapCatalogStore struct {
	categories []catalog.Category
	products   []catalog.Product
	calls      int
}

func (m *mockBootstrapCatalogStore) SeedCatalog(_ context.Context, categories []catalog.Category, products []catalog.Product) error {
	m.calls++
	m.categories = categories
	m.products = products
	return nil
}

func TestExecuteBootstrap_SeedsDefaults(t *testing.T) {
	users := &mockBootstrapUserStore{}
	cat := &mockBootstrapCatalogStore{}

	err := ExecuteBootstrap(context.Background(), BootstrapDeps{UserStore: users, CatalogStore: cat})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(users.roles) != len(user.ValidRoles) {
		t.Errorf("expected %d roles, got %d", len(user.ValidRoles), len(users.roles))
	}
	if users.admin.Username != DefaultAdminUsername {
		t.Errorf("expected username %q, got %q", DefaultAdminUsername, users.admin.Username)
	}
	if users.admin.RoleName != user.RoleAdmin {
		t.Errorf("expected role %q, got %q", user.RoleAdmin, users.admin.RoleName)
	}
	if err := users.admin.CheckPassword(DefaultAdminPassword); err != nil {
		t.Error("admin password hash does not verify against the default password")
	}
	if users.admin.PasswordHash == DefaultAdminPassword {
		t.Error("admin password stored in clear")
	}
	if cat.calls != 1 {
		t.Errorf("expected catalog seeding once, got %d calls", cat.calls)
	}
	if len(cat.categories) != 2 || len(cat.products) == 0 {
		t.Errorf("expected 2 categories and some products, got %d/%d", len(cat.categories), len(cat.products))
	}
}

func TestExecuteBootstrap_CredentialOverrides(t *testing.T) {
	users := &mockBootstrapUserStore{}

	deps := BootstrapDeps{UserStore: users, AdminUsername: "president", AdminPassword: "s3cret"}
	if err := ExecuteBootstrap(context.Background(), deps); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if users.admin.Username != "president" {
		t.Errorf("expected username %q, got %q", "president", users.admin.Username)
	}
	if err := users.admin.CheckPassword("s3cret"); err != nil {
		t.Error("admin password hash does not verify against the override")
	}
}

func TestExecuteBootstrap_NilCatalogStore(t *testing.T) {
	users := &mockBootstrapUserStore{}

	if err := ExecuteBootstrap(context.Background(), BootstrapDeps{UserStore: users}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if users.calls != 1 {
		t.Errorf("expected one SeedDefaults call, got %d", users.calls)
	}
}

func TestExecuteBootstrap_SeedError(t *testing.T) {
	users := &mockBootstrapUserStore{err: errors.New("db locked")}
	cat := &mockBootstrapCatalogStore{}

	err := ExecuteBootstrap(context.Background(), BootstrapDeps{UserStore: users, CatalogStore: cat})
	if err == nil {
		t.Fatal("expected an error")
	}
	if cat.calls != 0 {
		t.Errorf("catalog must not be seeded after a user-seed failure, got %d calls", cat.calls)
	}
}
