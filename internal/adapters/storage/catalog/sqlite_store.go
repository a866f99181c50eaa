package catalog

import (
	"context"
	"database/sql"
	"fmt"

	domain "assosite/internal/domain/catalog"
)

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore creates a new catalog store backed by SQLite.
func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

const selectProduct = `SELECT p.id, p.name, COALESCE(p.description, ''), p.price, p.image, p.category_id, c.name
	FROM product p JOIN category c ON c.id = p.category_id`

// ListProducts retrieves all products joined with their category name.
func (s *SQLiteStore) ListProducts(ctx context.Context) ([]domain.Product, error) {
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
func (s *SQLiteStore) ListCategories(ctx context.Context) ([]domain.Category, error) {
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
func (s *SQLiteStore) GetProductByID(ctx context.Context, id string) (domain.Product, error) {
	row := s.db.QueryRowContext(ctx, selectProduct+" WHERE p.id = ?", id)
	entity, err := scanProduct(row.Scan)
	if err == sql.ErrNoRows {
		return domain.Product{}, fmt.Errorf("product not found: %w", err)
	}
	return entity, err
}

// CountCategories returns the total number of categories.
func (s *SQLiteStore) CountCategories(ctx context.Context) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM category").Scan(&count)
	return count, err
}

// SeedCatalog installs categories and starter products in one
// transaction if the catalog is empty.
// POST: Catalog holds the seed rows, or nothing was written
func (s *SQLiteStore) SeedCatalog(ctx context.Context, categories []domain.Category, products []domain.Product) error {
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
			"INSERT INTO category (id, name) VALUES (?, ?)", c.ID, c.Name); err != nil {
			return err
		}
	}
	for _, p := range products {
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO product (id, name, description, price, image, category_id) VALUES (?, ?, ?, ?, ?, ?)",
			p.ID, p.Name, p.Description, p.Price, p.Image, p.CategoryID); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// scanProduct extracts a Product from a row scanner function.
func scanProduct(scan func(dest ...interface{}) error) (domain.Product, error) {
	var entity domain.Product
	err := scan(
		&entity.ID,
		&entity.Name,
		&entity.Description,
		&entity.Price,
		&entity.Image,
		&entity.CategoryID,
		&entity.CategoryName,
	)
	if err != nil {
		return domain.Product{}, err
	}
	return entity, nil
}
