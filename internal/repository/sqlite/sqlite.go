// Package sqlite implements the repository interfaces on SQLite.
//
// The driver is modernc.org/sqlite, a pure Go translation of SQLite, so no
// CGo and no external database server. Use a file path for persistence or
// ":memory:" for tests.
package sqlite

import (
	"database/sql"
	"fmt"
	"strings"

	// Registers the "sqlite" driver with database/sql.
	_ "modernc.org/sqlite"
)

// DB wraps a sql.DB connection pool and implements the repository
// interfaces. It is created by New and owned by the server, which closes it
// on shutdown.
type DB struct {
	conn *sql.DB
}

// New opens the SQLite database at dbPath, configures it, and runs
// migrations. sql.Open alone does not establish a connection, so we Ping to
// surface path or permission problems immediately.
func New(dbPath string) (*DB, error) {
	conn, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("sqlite: opening database: %w", err)
	}

	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("sqlite: pinging database: %w", err)
	}

	// WAL allows concurrent reads while a write is in progress, which
	// matters for a web server sharing one database file.
	if _, err := conn.Exec("PRAGMA journal_mode=WAL"); err != nil {
		conn.Close()
		return nil, fmt.Errorf("sqlite: setting WAL mode: %w", err)
	}

	// Foreign keys are off by default in SQLite.
	if _, err := conn.Exec("PRAGMA foreign_keys=ON"); err != nil {
		conn.Close()
		return nil, fmt.Errorf("sqlite: enabling foreign keys: %w", err)
	}

	db := &DB{conn: conn}

	if err := db.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("sqlite: running migrations: %w", err)
	}

	return db, nil
}

// Close closes the connection pool, flushing the WAL.
func (db *DB) Close() error {
	return db.conn.Close()
}

// migrate creates the schema. CREATE TABLE IF NOT EXISTS keeps this safe to
// run on every start.
//
// movie_id and parent_comment_id are plain columns, not enforced foreign
// keys: movie deletion does not cascade, so ratings and comments may
// legitimately outlive the movie (or parent comment) they reference. The
// service layer validates both references at create time instead. user_id
// stays an enforced reference since users are never deleted.
func (db *DB) migrate() error {
	_, err := db.conn.Exec(`
		CREATE TABLE IF NOT EXISTS users (
			id            INTEGER PRIMARY KEY AUTOINCREMENT,
			username      TEXT NOT NULL UNIQUE,
			email         TEXT NOT NULL UNIQUE,
			password_hash TEXT NOT NULL,
			created_at    DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
		);

		CREATE TABLE IF NOT EXISTS movies (
			id           INTEGER PRIMARY KEY AUTOINCREMENT,
			title        TEXT NOT NULL,
			description  TEXT NOT NULL DEFAULT '',
			release_date DATETIME NOT NULL,
			user_id      INTEGER NOT NULL REFERENCES users(id)
		);
		CREATE INDEX IF NOT EXISTS idx_movies_user_id ON movies(user_id);

		CREATE TABLE IF NOT EXISTS ratings (
			id       INTEGER PRIMARY KEY AUTOINCREMENT,
			rating   REAL NOT NULL,
			movie_id INTEGER NOT NULL,
			user_id  INTEGER NOT NULL REFERENCES users(id)
		);
		CREATE INDEX IF NOT EXISTS idx_ratings_movie_id ON ratings(movie_id);

		CREATE TABLE IF NOT EXISTS comments (
			id                INTEGER PRIMARY KEY AUTOINCREMENT,
			content           TEXT NOT NULL,
			movie_id          INTEGER NOT NULL,
			user_id           INTEGER NOT NULL REFERENCES users(id),
			parent_comment_id INTEGER,
			created_at        DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_comments_movie_id ON comments(movie_id);
	`)
	if err != nil {
		return fmt.Errorf("creating tables: %w", err)
	}

	return nil
}

// isUniqueViolation reports whether err is a UNIQUE constraint failure.
// The modernc driver surfaces SQLite's own message, so matching on it is
// the stable way to detect duplicates without importing driver internals.
func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}
