package catalog

import (
	"context"

	domain "assosite/internal/domain/catalog"
)

// Store persists Category and Product state.
type Store interface {
	// ListProducts returns all products joined with their category
	// name, grouped by category then name.
	ListProducts(ctx context.Context) ([]domain.Product, error)
	ListCategories(ctx context.Context) ([]domain.Category, error)
	GetProductByID(ctx context.Context, id string) (domain.Product, error)
	CountCategories(ctx context.Context) (int, error)

	// SeedCatalog installs categories and starter products inside a
	// single transaction when the catalog is empty.
	SeedCatalog(ctx context.Context, categories []domain.Category, products []domain.Product) error
}
