package store

import (
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/starford/doctrail/internal/apperr"
	"github.com/starford/doctrail/internal/models"
)

// CreateUser persists a new account. The store assigns the identifier and
// creation timestamp. A duplicate email returns ErrAlreadyExists.
func (db *DB) CreateUser(email, passwordHash string) (*models.User, error) {
	u := &models.User{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now().UTC(),
	}
	_, err := db.conn.Exec(`
		INSERT INTO users (id, email, password_hash, created_at) VALUES (?, ?, ?, ?)
	`, u.ID, u.Email, u.PasswordHash, u.CreatedAt)
	if err != nil {
		if isConstraintErr(err) {
			return nil, apperr.ErrAlreadyExists
		}
		return nil, storeErr("insert user", err)
	}
	return u, nil
}

// DeleteUser removes an account row. Used to roll back a sign-up whose
// admin enrollment lost the race.
func (db *DB) DeleteUser(id string) error {
	if _, err := db.conn.Exec(`DELETE FROM users WHERE id = ?`, id); err != nil {
		return storeErr("delete user", err)
	}
	return nil
}

// GetUserByEmail returns the account registered under email.
func (db *DB) GetUserByEmail(email string) (*models.User, error) {
	var u models.User
	err := db.conn.QueryRow(`
		SELECT id, email, password_hash, created_at FROM users WHERE email = ?
	`, email).Scan(&u.ID, &u.Email, &u.PasswordHash, &u.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperr.ErrNotFound
	}
	if err != nil {
		return nil, storeErr("get user", err)
	}
	return &u, nil
}
