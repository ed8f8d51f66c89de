// Package store provides the SQLite-backed document record store. Ownership
// and the admin-singleton rules are enforced by conditional SQL writes, not
// by caller-side pre-checks.
package store

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/mattn/go-sqlite3"

	"github.com/starford/doctrail/internal/apperr"
)

const schemaSQL = `
CREATE TABLE IF NOT EXISTS documents (
	id           TEXT PRIMARY KEY,
	title        TEXT NOT NULL DEFAULT '',
	description  TEXT NOT NULL DEFAULT '',
	status       TEXT NOT NULL DEFAULT 'Draft',
	category     TEXT NOT NULL DEFAULT 'Uncategorized',
	created_at   DATETIME NOT NULL,
	user_id      TEXT NOT NULL,
	is_public    INTEGER NOT NULL DEFAULT 0,
	tracking_id  TEXT NOT NULL UNIQUE,
	file_name    TEXT NOT NULL DEFAULT '',
	file_content TEXT NOT NULL DEFAULT ''
);

CREATE INDEX IF NOT EXISTS idx_documents_owner_created ON documents(user_id, created_at DESC);
CREATE INDEX IF NOT EXISTS idx_documents_tracking_public ON documents(tracking_id, is_public);

CREATE TABLE IF NOT EXISTS users (
	id            TEXT PRIMARY KEY,
	email         TEXT NOT NULL UNIQUE,
	password_hash TEXT NOT NULL,
	created_at    DATETIME NOT NULL
);

CREATE TABLE IF NOT EXISTS admin_config (
	name       TEXT PRIMARY KEY,
	user_id    TEXT NOT NULL,
	created_at DATETIME NOT NULL
);
`

// DB wraps a sql.DB with record-store operations.
type DB struct {
	conn *sql.DB
}

// Open opens (or creates) the SQLite database and applies the schema.
func Open(dsn string) (*DB, error) {
	conn, err := sql.Open("sqlite3", dsn+"?_journal_mode=WAL&_busy_timeout=5000&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("store: open db: %w", err)
	}
	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("store: ping: %w", err)
	}
	if _, err := conn.Exec(schemaSQL); err != nil {
		conn.Close()
		return nil, fmt.Errorf("store: apply schema: %w", err)
	}
	return &DB{conn: conn}, nil
}

// Close closes the underlying database connection.
func (db *DB) Close() error {
	return db.conn.Close()
}

// isConstraintErr reports whether err is a SQLite uniqueness/constraint
// violation (duplicate primary key or unique column).
func isConstraintErr(err error) bool {
	var se sqlite3.Error
	if errors.As(err, &se) {
		return se.Code == sqlite3.ErrConstraint
	}
	return false
}

// storeErr wraps an infrastructure failure (connection, query execution,
// scan) so handlers can surface it as a store-unavailable condition, distinct
// from domain outcomes like missing or denied.
func storeErr(op string, err error) error {
	return fmt.Errorf("%w: %s: %v", apperr.ErrUnavailable, op, err)
}
