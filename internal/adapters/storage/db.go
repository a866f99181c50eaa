package storage

import (
	"database/sql"
	"fmt"
)

// Driver names accepted by Open and InitDB.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// Open opens a database handle for the given driver and DSN and applies
// pool settings suitable for a small request-per-call server.
// PRE: driver is DriverSQLite or DriverPostgres
// POST: Returns a pinged connection or an error
func Open(driver, dsn string) (*sql.DB, error) {
	if driver != DriverSQLite && driver != DriverPostgres {
		return nil, fmt.Errorf("unknown database driver %q", driver)
	}
	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("database unreachable: %w", err)
	}
	return db, nil
}

// InitDB initializes the database schema. The DDL is shared between the
// embedded SQLite store and the networked Postgres store; only the
// SQLite pragmas differ.
// PRE: db is a valid connection for the named driver
// POST: All tables exist; safe to call on every startup
func InitDB(db *sql.DB, driver string) error {
	if driver == DriverSQLite {
		if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
			return fmt.Errorf("failed to enable WAL mode: %w", err)
		}
		if _, err := db.Exec("PRAGMA foreign_keys=ON"); err != nil {
			return fmt.Errorf("failed to enable foreign keys: %w", err)
		}
	}

	schema := `
	CREATE TABLE IF NOT EXISTS role (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL UNIQUE
	);

	CREATE TABLE IF NOT EXISTS app_user (
		id TEXT PRIMARY KEY,
		username TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL DEFAULT '',
		role_id TEXT NOT NULL,
		created_at TEXT NOT NULL,
		FOREIGN KEY (role_id) REFERENCES role(id)
	);

	CREATE TABLE IF NOT EXISTS volunteer (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		position TEXT NOT NULL,
		bio TEXT,
		photo TEXT,
		user_id TEXT
	);

	CREATE TABLE IF NOT EXISTS event (
		id TEXT PRIMARY KEY,
		title TEXT NOT NULL,
		description TEXT,
		date TEXT NOT NULL,
		start_time TEXT NOT NULL,
		end_time TEXT,
		location TEXT NOT NULL,
		cost INTEGER NOT NULL DEFAULT 0,
		capacity INTEGER NOT NULL DEFAULT 0
	);

	CREATE TABLE IF NOT EXISTS registration (
		id TEXT PRIMARY KEY,
		event_id TEXT NOT NULL,
		name TEXT NOT NULL,
		email TEXT NOT NULL,
		phone TEXT,
		created_at TEXT NOT NULL,
		FOREIGN KEY (event_id) REFERENCES event(id)
	);

	CREATE TABLE IF NOT EXISTS category (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL UNIQUE
	);

	CREATE TABLE IF NOT EXISTS product (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		description TEXT,
		price INTEGER NOT NULL DEFAULT 0,
		image TEXT NOT NULL DEFAULT '',
		category_id TEXT NOT NULL,
		FOREIGN KEY (category_id) REFERENCES category(id)
	);

	CREATE TABLE IF NOT EXISTS customer_order (
		id TEXT PRIMARY KEY,
		user_id TEXT,
		name TEXT NOT NULL,
		email TEXT NOT NULL,
		phone TEXT,
		total INTEGER NOT NULL DEFAULT 0,
		created_at TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS order_item (
		order_id TEXT NOT NULL,
		product_id TEXT NOT NULL,
		quantity INTEGER NOT NULL,
		price INTEGER NOT NULL,
		FOREIGN KEY (order_id) REFERENCES customer_order(id),
		FOREIGN KEY (product_id) REFERENCES product(id)
	);

	CREATE TABLE IF NOT EXISTS contact (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		email TEXT NOT NULL,
		phone TEXT,
		subject TEXT,
		message TEXT NOT NULL,
		created_at TEXT NOT NULL
	);
	`

	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}
