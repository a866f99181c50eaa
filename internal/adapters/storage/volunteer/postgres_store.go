package volunteer

import (
	"context"
	"database/sql"

	domain "assosite/internal/domain/volunteer"
)

// PostgresStore implements Store using a networked PostgreSQL server.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgresStore creates a new volunteer store backed by Postgres.
func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

// Save persists a Volunteer (insert or update).
// PRE: entity has been validated
// POST: Entity is persisted
func (s *PostgresStore) Save(ctx context.Context, entity domain.Volunteer) error {
	query := `INSERT INTO volunteer (id, name, position, bio, photo, user_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT(id) DO UPDATE SET
			name=excluded.name,
			position=excluded.position,
			bio=excluded.bio,
			photo=excluded.photo,
			user_id=excluded.user_id`
	_, err := s.db.ExecContext(ctx, query,
		entity.ID, entity.Name, entity.Position, entity.Bio, entity.Photo, entity.UserID)
	return err
}

// List retrieves all volunteers ordered by name.
func (s *PostgresStore) List(ctx context.Context) ([]domain.Volunteer, error) {
	query := `SELECT id, name, position, COALESCE(bio, ''), COALESCE(photo, ''), COALESCE(user_id, '')
		FROM volunteer ORDER BY name ASC`
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []domain.Volunteer
	for rows.Next() {
		entity, err := scanVolunteer(rows.Scan)
		if err != nil {
			return nil, err
		}
		results = append(results, entity)
	}
	return results, rows.Err()
}
