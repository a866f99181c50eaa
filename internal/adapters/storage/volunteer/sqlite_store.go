package volunteer

import (
	"context"
	"database/sql"

	domain "assosite/internal/domain/volunteer"
)

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore creates a new volunteer store backed by SQLite.
func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

// Save persists a Volunteer (insert or update).
// PRE: entity has been validated
// POST: Entity is persisted
func (s *SQLiteStore) Save(ctx context.Context, entity domain.Volunteer) error {
	query := `INSERT INTO volunteer (id, name, position, bio, photo, user_id)
		VALUES (?, ?, ?, ?, ?, ?)
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
func (s *SQLiteStore) List(ctx context.Context) ([]domain.Volunteer, error) {
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

// scanVolunteer extracts a Volunteer from a row scanner function.
func scanVolunteer(scan func(dest ...interface{}) error) (domain.Volunteer, error) {
	var entity domain.Volunteer
	err := scan(
		&entity.ID,
		&entity.Name,
		&entity.Position,
		&entity.Bio,
		&entity.Photo,
		&entity.UserID,
	)
	if err != nil {
		return domain.Volunteer{}, err
	}
	return entity, nil
}
