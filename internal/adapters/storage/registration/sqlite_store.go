package registration

import (
	"context"
	"database/sql"

	"assosite/internal/adapters/storage"
	domain "assosite/internal/domain/registration"
)

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore creates a new registration store backed by SQLite.
func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

// Save persists a Registration.
// PRE: entity has been validated and references an existing event
// POST: Entity is persisted
func (s *SQLiteStore) Save(ctx context.Context, entity domain.Registration) error {
	query := `INSERT INTO registration (id, event_id, name, email, phone, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`
	_, err := s.db.ExecContext(ctx, query,
		entity.ID, entity.EventID, entity.Name, entity.Email, entity.Phone,
		storage.FormatTime(entity.CreatedAt))
	return err
}

// CountByEventID returns the number of registrations for an event.
func (s *SQLiteStore) CountByEventID(ctx context.Context, eventID string) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM registration WHERE event_id = ?", eventID).Scan(&count)
	return count, err
}

// ListWithEventTitle retrieves all registrations joined with their
// event title, newest first.
func (s *SQLiteStore) ListWithEventTitle(ctx context.Context) ([]WithEventTitle, error) {
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

// scanWithEventTitle extracts a joined registration row.
func scanWithEventTitle(scan func(dest ...interface{}) error) (WithEventTitle, error) {
	var entity WithEventTitle
	var createdAt string
	err := scan(
		&entity.ID,
		&entity.EventID,
		&entity.Name,
		&entity.Email,
		&entity.Phone,
		&createdAt,
		&entity.EventTitle,
	)
	if err != nil {
		return WithEventTitle{}, err
	}
	entity.CreatedAt, _ = storage.ParseTime(createdAt)
	return entity, nil
}
