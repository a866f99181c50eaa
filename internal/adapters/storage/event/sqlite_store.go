package event

import (
	"context"
	"database/sql"
	"fmt"

	domain "assosite/internal/domain/event"
)

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore creates a new event store backed by SQLite.
func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

const selectEvent = `SELECT id, title, COALESCE(description, ''), date, start_time,
	COALESCE(end_time, ''), location, cost, capacity FROM event`

// GetByID retrieves an Event by its ID.
// PRE: id is non-empty
// POST: Returns the entity or an error if not found
func (s *SQLiteStore) GetByID(ctx context.Context, id string) (domain.Event, error) {
	row := s.db.QueryRowContext(ctx, selectEvent+" WHERE id = ?", id)
	entity, err := scanEvent(row.Scan)
	if err == sql.ErrNoRows {
		return domain.Event{}, fmt.Errorf("event not found: %w", err)
	}
	return entity, err
}

// Save persists an Event (insert or update).
// PRE: entity has been validated
// POST: Entity is persisted
func (s *SQLiteStore) Save(ctx context.Context, entity domain.Event) error {
	query := `INSERT INTO event (id, title, description, date, start_time, end_time, location, cost, capacity)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			title=excluded.title,
			description=excluded.description,
			date=excluded.date,
			start_time=excluded.start_time,
			end_time=excluded.end_time,
			location=excluded.location,
			cost=excluded.cost,
			capacity=excluded.capacity`
	_, err := s.db.ExecContext(ctx, query,
		entity.ID, entity.Title, entity.Description, entity.Date, entity.StartTime,
		entity.EndTime, entity.Location, entity.Cost, entity.Capacity)
	return err
}

// List retrieves all events in chronological order.
func (s *SQLiteStore) List(ctx context.Context) ([]domain.Event, error) {
	rows, err := s.db.QueryContext(ctx, selectEvent+" ORDER BY date ASC, start_time ASC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []domain.Event
	for rows.Next() {
		entity, err := scanEvent(rows.Scan)
		if err != nil {
			return nil, err
		}
		results = append(results, entity)
	}
	return results, rows.Err()
}

// scanEvent extracts an Event from a row scanner function.
func scanEvent(scan func(dest ...interface{}) error) (domain.Event, error) {
	var entity domain.Event
	err := scan(
		&entity.ID,
		&entity.Title,
		&entity.Description,
		&entity.Date,
		&entity.StartTime,
		&entity.EndTime,
		&entity.Location,
		&entity.Cost,
		&entity.Capacity,
	)
	if err != nil {
		return domain.Event{}, err
	}
	return entity, nil
}
