package catalog

import (
	"context"
	"database/sql"
	"fmt"

	domain "assosite/internal/domain/catalog"
)

// PostgresStore implements Store using a networked PostgreSQL server.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgresStore creates a new catalog store backed by Postgres.
func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

// ListProducts retrieves all products joined with their category name.
func (s *PostgresStore) ListProducts(ctx context.Context) ([]domain.Product, error) {
	rows, err := s.db.QueryContext(ctx, selectProduct+" ORDER BY c.name ASC, p.name ASC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []domain.Product
	for rows.Next() {
		entity, err := scanProduct(rows.Scan)
		if err != nil {
			return nil, err
		}
		results = append(results, entity)
	}
	return results, rows.Err()
}

// ListCategories retrieves all categories ordered by name.
func (s *PostgresStore) ListCategories(ctx context.Context) ([]domain.Category, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT id, name FROM category ORDER BY name ASC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []domain.Category
	for rows.Next() {
		var c domain.Category
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, err
		}
		results = append(results, c)
	}
	return results, rows.Err()
}

// GetProductByID retrieves a Product (with category name) by its ID.
// PRE: id is non-empty
// POST: Returns the entity or an error if not found
func (s *PostgresStore) GetProductByID(ctx context.Context, id string) (domain.Product, error) {
	row := s.db.QueryRowContext(ctx, selectProduct+" WHERE p.id = $1", id)
	entity, err := scanProduct(row.Scan)
	if err == sql.ErrNoRows {
		return domain.Product{}, fmt.Errorf("product not found: %w", err)
	}
	return entity, err
}

// CountCategories returns the total number of categories.
func (s *PostgresStore) CountCategories(ctx context.Context) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM category").Scan(&count)
	return count, err
}

// SeedCatalog installs categories and starter products in one
// transaction if the catalog is empty.
// POST: Catalog holds the seed rows, or nothing was written
func (s *PostgresStore) SeedCatalog(ctx context.Context, categories []domain.Category, products []domain.Product) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var count int
	if err := tx.QueryRowContext(ctx, "SELECT COUNT(*) FROM category").Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return tx.Commit()
	}

	for _, c := range categories {
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO category (id, name) VALUES ($1, $2)", c.ID, c.Name); err != nil {
			return err
		}
	}
	for _, p := range products {
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO product (id, name, description, price, image, category_id) VALUES ($1, $2, $3, $4, $5, $6)",
			p.ID, p.Name, p.Description, p.Price, p.Image, p.CategoryID); err != nil {
			return err
		}
	}

	return tx.Commit()
}
