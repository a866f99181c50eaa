package registration

import (
	"context"
	"database/sql"

	"assosite/internal/adapters/storage"
	domain "assosite/internal/domain/registration"
)

// PostgresStore implements Store using a networked PostgreSQL server.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgresStore creates a new registration store backed by Postgres.
func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

// Save persists a Registration.
// PRE: entity has been validated and references an existing event
// POST: Entity is persisted
func (s *PostgresStore) Save(ctx context.Context, entity domain.Registration) error {
	query := `INSERT INTO registration (id, event_id, name, email, phone, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := s.db.ExecContext(ctx, query,
		entity.ID, entity.EventID, entity.Name, entity.Email, entity.Phone,
		storage.FormatTime(entity.CreatedAt))
	return err
}

// CountByEventID returns the number of registrations for an event.
func (s *PostgresStore) CountByEventID(ctx context.Context, eventID string) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM registration WHERE event_id = $1", eventID).Scan(&count)
	return count, err
}

// ListWithEventTitle retrieves all registrations joined with their
// event title, newest first.
func (s *PostgresStore) ListWithEventTitle(ctx context.Context) ([]WithEventTitle, error) {
	query := `SELECT r.id, r.event_id, r.name, r.email, COALESCE(r.phone, ''), r.created_at, e.title
		FROM registration r JOIN event e ON e.id = r.event_id
		ORDER BY r.created_at DESC`
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []WithEventTitle
	for rows.Next() {
		entity, err := scanWithEventTitle(rows.Scan)
		if err != nil {
			return nil, err
		}
		results = append(results, entity)
	}
	return results, rows.Err()
}
