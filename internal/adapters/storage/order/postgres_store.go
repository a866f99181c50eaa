package order

import (
	"context"
	"database/sql"

	"assosite/internal/adapters/storage"
	domain "assosite/internal/domain/order"
)

// PostgresStore implements Store using a networked PostgreSQL server.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgresStore creates a new order store backed by Postgres.
func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

// Save persists an Order and its items in one transaction.
// PRE: value.ID is set; every item references value.ID
// POST: Order and items are persisted, or nothing was written
func (s *PostgresStore) Save(ctx context.Context, value domain.Order, items []domain.Item) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO customer_order (id, user_id, name, email, phone, total, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		value.ID, value.UserID, value.Name, value.Email, value.Phone, value.Total,
		storage.FormatTime(value.CreatedAt)); err != nil {
		return err
	}
	for _, it := range items {
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO order_item (order_id, product_id, quantity, price) VALUES ($1, $2, $3, $4)",
			value.ID, it.ProductID, it.Quantity, it.Price); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// ListWithItemCounts retrieves all orders with their line counts,
// newest first.
func (s *PostgresStore) ListWithItemCounts(ctx context.Context) ([]domain.WithItemCount, error) {
	query := `SELECT o.id, COALESCE(o.user_id, ''), o.name, o.email, COALESCE(o.phone, ''),
			o.total, o.created_at, COUNT(i.order_id)
		FROM customer_order o LEFT JOIN order_item i ON i.order_id = o.id
		GROUP BY o.id, o.user_id, o.name, o.email, o.phone, o.total, o.created_at
		ORDER BY o.created_at DESC`
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []domain.WithItemCount
	for rows.Next() {
		entity, err := scanWithItemCount(rows.Scan)
		if err != nil {
			return nil, err
		}
		results = append(results, entity)
	}
	return results, rows.Err()
}
