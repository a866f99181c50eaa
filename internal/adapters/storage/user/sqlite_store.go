package user

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"assosite/internal/adapters/storage"
	domain "assosite/internal/domain/user"
)

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore creates a new user store backed by SQLite.
func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

const selectUser = `SELECT u.id, u.username, u.password_hash, u.role_id, r.name, u.created_at
	FROM app_user u JOIN role r ON r.id = u.role_id`

// GetByID retrieves a User (with resolved role name) by its ID.
// PRE: id is non-empty
// POST: Returns the entity or an error if not found
func (s *SQLiteStore) GetByID(ctx context.Context, id string) (domain.User, error) {
	row := s.db.QueryRowContext(ctx, selectUser+" WHERE u.id = ?", id)
	entity, err := scanUser(row.Scan)
	if err == sql.ErrNoRows {
		return domain.User{}, fmt.Errorf("user not found: %w", err)
	}
	return entity, err
}

// GetByUsername retrieves a User (with resolved role name) by username.
// PRE: username is non-empty
// POST: Returns the entity or an error if not found
func (s *SQLiteStore) GetByUsername(ctx context.Context, username string) (domain.User, error) {
	row := s.db.QueryRowContext(ctx, selectUser+" WHERE u.username = ?", username)
	entity, err := scanUser(row.Scan)
	if err == sql.ErrNoRows {
		return domain.User{}, fmt.Errorf("user not found: %w", err)
	}
	return entity, err
}

// Save persists a User (insert or update).
// PRE: entity has been validated and RoleID is set
// POST: Entity is persisted
func (s *SQLiteStore) Save(ctx context.Context, entity domain.User) error {
	query := `INSERT INTO app_user (id, username, password_hash, role_id, created_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			username=excluded.username,
			password_hash=excluded.password_hash,
			role_id=excluded.role_id`
	_, err := s.db.ExecContext(ctx, query,
		entity.ID, entity.Username, entity.PasswordHash, entity.RoleID,
		storage.FormatTime(entity.CreatedAt))
	return err
}

// CountUsers returns the total number of users.
func (s *SQLiteStore) CountUsers(ctx context.Context) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM app_user").Scan(&count)
	return count, err
}

// CountRoles returns the total number of roles.
func (s *SQLiteStore) CountRoles(ctx context.Context) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM role").Scan(&count)
	return count, err
}

// ListRoles retrieves all roles ordered by name.
func (s *SQLiteStore) ListRoles(ctx context.Context) ([]domain.Role, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT id, name FROM role ORDER BY name")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []domain.Role
	for rows.Next() {
		var r domain.Role
		if err := rows.Scan(&r.ID, &r.Name); err != nil {
			return nil, err
		}
		results = append(results, r)
	}
	return results, rows.Err()
}

// SeedDefaults installs roles and the default admin in one transaction.
// PRE: admin carries a hashed password and the target role name
// POST: Role table has the taxonomy and at least one admin exists, or
// nothing was written
func (s *SQLiteStore) SeedDefaults(ctx context.Context, roles []string, admin domain.User) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var roleCount int
	if err := tx.QueryRowContext(ctx, "SELECT COUNT(*) FROM role").Scan(&roleCount); err != nil {
		return err
	}
	if roleCount == 0 {
		for _, name := range roles {
			if _, err := tx.ExecContext(ctx,
				"INSERT INTO role (id, name) VALUES (?, ?)", uuid.New().String(), name); err != nil {
				return err
			}
		}
	}

	var userCount int
	if err := tx.QueryRowContext(ctx, "SELECT COUNT(*) FROM app_user").Scan(&userCount); err != nil {
		return err
	}
	if userCount == 0 {
		var roleID string
		if err := tx.QueryRowContext(ctx,
			"SELECT id FROM role WHERE name = ?", admin.RoleName).Scan(&roleID); err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO app_user (id, username, password_hash, role_id, created_at) VALUES (?, ?, ?, ?, ?)",
			admin.ID, admin.Username, admin.PasswordHash, roleID,
			storage.FormatTime(admin.CreatedAt)); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// scanUser extracts a User from a row scanner function.
func scanUser(scan func(dest ...interface{}) error) (domain.User, error) {
	var entity domain.User
	var createdAt string
	err := scan(
		&entity.ID,
		&entity.Username,
		&entity.PasswordHash,
		&entity.RoleID,
		&entity.RoleName,
		&createdAt,
	)
	if err != nil {
		return domain.User{}, err
	}
	entity.CreatedAt, _ = storage.ParseTime(createdAt)
	return entity, nil
}
