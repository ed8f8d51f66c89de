package store

import (
	"database/sql"
	"errors"
	"time"

	"github.com/starford/doctrail/internal/apperr"
	"github.com/starford/doctrail/internal/models"
)

// adminKey is the fixed name of the singleton enrollment row.
const adminKey = "admin_user"

// AdminExists reports whether the administrator singleton has been created.
// This is a UX short-circuit only; RegisterAdmin is the authoritative check.
func (db *DB) AdminExists() (bool, error) {
	var one int
	err := db.conn.QueryRow(`SELECT 1 FROM admin_config WHERE name = ?`, adminKey).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, storeErr("admin exists", err)
	}
	return true, nil
}

// RegisterAdmin creates the administrator singleton with check-and-set
// discipline: the primary key on the fixed row name makes the insert
// conditional, so of two racing registrations exactly one lands and the
// loser gets ErrDenied. There is no read-then-write window.
func (db *DB) RegisterAdmin(userID string) error {
	_, err := db.conn.Exec(`
		INSERT INTO admin_config (name, user_id, created_at) VALUES (?, ?, ?)
	`, adminKey, userID, time.Now().UTC())
	if err != nil {
		if isConstraintErr(err) {
			return apperr.ErrDenied
		}
		return storeErr("register admin", err)
	}
	return nil
}

// GetAdmin returns the enrollment record, or ErrNotFound when no
// administrator has been registered.
func (db *DB) GetAdmin() (*models.AdminRecord, error) {
	var rec models.AdminRecord
	err := db.conn.QueryRow(`
		SELECT user_id, created_at FROM admin_config WHERE name = ?
	`, adminKey).Scan(&rec.UserID, &rec.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperr.ErrNotFound
	}
	if err != nil {
		return nil, storeErr("get admin", err)
	}
	return &rec, nil
}
