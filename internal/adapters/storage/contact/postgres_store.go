package contact

import (
	"context"
	"database/sql"

	"assosite/internal/adapters/storage"
	domain "assosite/internal/domain/contact"
)

// PostgresStore implements Store using a networked PostgreSQL server.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgresStore creates a new contact store backed by Postgres.
func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

// Save persists a Contact.
// PRE: entity has been validated
// POST: Entity is persisted
func (s *PostgresStore) Save(ctx context.Context, entity domain.Contact) error {
	query := `INSERT INTO contact (id, name, email, phone, subject, message, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := s.db.ExecContext(ctx, query,
		entity.ID, entity.Name, entity.Email, entity.Phone, entity.Subject,
		entity.Message, storage.FormatTime(entity.CreatedAt))
	return err
}

// List retrieves all contact messages, newest first.
func (s *PostgresStore) List(ctx context.Context) ([]domain.Contact, error) {
	query := `SELECT id, name, email, COALESCE(phone, ''), COALESCE(subject, ''), message, created_at
		FROM contact ORDER BY created_at DESC`
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []domain.Contact
	for rows.Next() {
		entity, err := scanContact(rows.Scan)
		if err != nil {
			return nil, err
		}
		results = append(results, entity)
	}
	return results, rows.Err()
}
