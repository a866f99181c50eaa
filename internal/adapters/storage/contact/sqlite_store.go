package contact

import (
	"context"
	"database/sql"

	"assosite/internal/adapters/storage"
	domain "assosite/internal/domain/contact"
)

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore creates a new contact store backed by SQLite.
func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

// Save persists a Contact.
// PRE: entity has been validated
// POST: Entity is persisted
func (s *SQLiteStore) Save(ctx context.Context, entity domain.Contact) error {
	query := `INSERT INTO contact (id, name, email, phone, subject, message, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`
	_, err := s.db.ExecContext(ctx, query,
		entity.ID, entity.Name, entity.Email, entity.Phone, entity.Subject,
		entity.Message, storage.FormatTime(entity.CreatedAt))
	return err
}

// List retrieves all contact messages, newest first.
func (s *SQLiteStore) List(ctx context.Context) ([]domain.Contact, error) {
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

// scanContact extracts a Contact from a row scanner function.
func scanContact(scan func(dest ...interface{}) error) (domain.Contact, error) {
	var entity domain.Contact
	var createdAt string
	err := scan(
		&entity.ID,
		&entity.Name,
		&entity.Email,
		&entity.Phone,
		&entity.Subject,
		&entity.Message,
		&createdAt,
	)
	if err != nil {
		return domain.Contact{}, err
	}
	entity.CreatedAt, _ = storage.ParseTime(createdAt)
	return entity, nil
}
