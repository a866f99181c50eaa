package orchestrators

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"assosite/internal/domain/catalog"
	"assosite/internal/domain/user"
)

// Default admin credentials seeded when no users exist. The password is
// hashed before it ever reaches the store.
const (
	DefaultAdminUsername = "admin"
	DefaultAdminPassword = "admin"
)

// UserStoreForBootstrap defines the store interface needed by Bootstrap.
type UserStoreForBootstrap interface {
	SeedDefaults(ctx context.Context, roles []string, admin user.User) error
}

// CatalogStoreForBootstrap defines the store interface needed by Bootstrap.
type CatalogStoreForBootstrap interface {
	SeedCatalog(ctx context.Context, categories []catalog.Category, products []catalog.Product) error
}

// BootstrapDeps holds dependencies for Bootstrap.
type BootstrapDeps struct {
	UserStore    UserStoreForBootstrap
	CatalogStore CatalogStoreForBootstrap

	// AdminUsername/AdminPassword override the defaults when set.
	AdminUsername string
	AdminPassword string
}

// ExecuteBootstrap seeds the role taxonomy, the default admin account
// and the starter catalog. Role and admin seeding happen inside one
// store transaction so a crash mid-seed cannot leave roles without an
// admin or vice versa. Safe to run on every startup.
// POST: Roles, one admin and the catalog exist; reruns change nothing
func ExecuteBootstrap(ctx context.Context, deps BootstrapDeps) error {
	username := deps.AdminUsername
	if username == "" {
		username = DefaultAdminUsername
	}
	password := deps.AdminPassword
	if password == "" {
		password = DefaultAdminPassword
	}

	admin := user.User{
		ID:        uuid.New().String(),
		Username:  username,
		RoleName:  user.RoleAdmin,
		CreatedAt: time.Now(),
	}
	if err := admin.SetPassword(password); err != nil {
		return err
	}
	if err := admin.Validate(); err != nil {
		return err
	}

	if err := deps.UserStore.SeedDefaults(ctx, user.ValidRoles, admin); err != nil {
		return err
	}
	slog.Info("bootstrap_event", "event", "roles_and_admin_seeded", "username", username)

	if deps.CatalogStore != nil {
		cats, products := starterCatalog()
		if err := deps.CatalogStore.SeedCatalog(ctx, cats, products); err != nil {
			return err
		}
		slog.Info("bootstrap_event", "event", "catalog_seeded")
	}

	return nil
}

// starterCatalog builds the seed categories and products. Prices are in
// euro cents.
func starterCatalog() ([]catalog.Category, []catalog.Product) {
	merch := catalog.Category{ID: uuid.New().String(), Name: catalog.CategoryMerch}
	broc := catalog.Category{ID: uuid.New().String(), Name: catalog.CategoryBroc}

	products := []catalog.Product{
		{ID: uuid.New().String(), Name: "T-shirt de l'asso", Description: "Coton bio, logo brodé", Price: 1500, Image: "/static/img/tshirt.jpg", CategoryID: merch.ID},
		{ID: uuid.New().String(), Name: "Tote bag", Description: "Toile épaisse, sérigraphié", Price: 1200, Image: "/static/img/tote.jpg", CategoryID: merch.ID},
		{ID: uuid.New().String(), Name: "Mug", Description: "Céramique, passe au lave-vaisselle", Price: 800, Image: "/static/img/mug.jpg", CategoryID: merch.ID},
		{ID: uuid.New().String(), Name: "Lot de vaisselle chinée", Description: "Assorti, selon arrivage", Price: 600, Image: "/static/img/vaisselle.jpg", CategoryID: broc.ID},
		{ID: uuid.New().String(), Name: "Cadre ancien", Description: "Bois doré, début XXe", Price: 2500, Image: "/static/img/cadre.jpg", CategoryID: broc.ID},
	}
	return []catalog.Category{merch, broc}, products
}
