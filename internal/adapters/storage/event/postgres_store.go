package event

import (
	"context"
	"database/sql"
	"fmt"

	domain "assosite/internal/domain/event"
)

// PostgresStore implements Store using a networked PostgreSQL server.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgresStore creates a new event store backed by Postgres.
func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

// GetByID retrieves an Event by its ID.
// PRE: id is non-empty
// POST: Returns the entity or an error if not found
func (s *PostgresStore) GetByID(ctx context.Context, id string) (domain.Event, error) {
	row := s.db.QueryRowContext(ctx, selectEvent+" WHERE id = $1", id)
	entity, err := scanEvent(row.Scan)
	if err == sql.ErrNoRows {
		return domain.Event{}, fmt.Errorf("event not found: %w", err)
	}
	return entity, err
}

// Save persists an Event (insert or update).
// PRE: entity has been validated
// POST: Entity is persisted
func (s *PostgresStore) Save(ctx context.Context, entity domain.Event) error {
	query := `INSERT INTO event (id, title, description, date, start_time, end_time, location, cost, capacity)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
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
func (s *PostgresStore) List(ctx context.Context) ([]domain.Event, error) {
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
