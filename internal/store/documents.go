package store

import (
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/starford/doctrail/internal/apperr"
	"github.com/starford/doctrail/internal/models"
)

const docColumns = `id, title, description, status, category, created_at, user_id, is_public, tracking_id, file_name, file_content`

// CreateDocument persists a new document. The store assigns the identifier
// and creation timestamp; the caller supplies everything else, including the
// tracking code. A duplicate tracking code returns ErrAlreadyExists so the
// caller can mint a fresh code and retry.
func (db *DB) CreateDocument(d *models.Document) (string, error) {
	d.ID = uuid.NewString()
	d.CreatedAt = time.Now().UTC()

	_, err := db.conn.Exec(`
		INSERT INTO documents (`+docColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, d.ID, d.Title, d.Description, string(d.Status), d.Category, d.CreatedAt,
		d.UserID, d.IsPublic, d.TrackingID, d.FileName, d.FileContent)
	if err != nil {
		if isConstraintErr(err) {
			return "", apperr.ErrAlreadyExists
		}
		return "", storeErr("insert document", err)
	}
	return d.ID, nil
}

// GetDocument is a point lookup without authorization narrowing; callers
// apply visibility rules per use case.
func (db *DB) GetDocument(id string) (*models.Document, error) {
	row := db.conn.QueryRow(`SELECT `+docColumns+` FROM documents WHERE id = ?`, id)
	return scanDocument(row)
}

// GetPublicDocument fetches a document by identifier only if it is public.
// A private document is indistinguishable from a missing one.
func (db *DB) GetPublicDocument(id string) (*models.Document, error) {
	row := db.conn.QueryRow(`SELECT `+docColumns+` FROM documents WHERE id = ? AND is_public = 1`, id)
	return scanDocument(row)
}

// ResolveTrackingCode maps a tracking code to a document identifier. The
// query filters on both the code and the public flag: a private document is
// never resolvable, even for an exact code match.
func (db *DB) ResolveTrackingCode(code string) (string, error) {
	var id string
	err := db.conn.QueryRow(`
		SELECT id FROM documents WHERE tracking_id = ? AND is_public = 1 LIMIT 1
	`, code).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return "", apperr.ErrNotFound
	}
	if err != nil {
		return "", storeErr("resolve tracking code", err)
	}
	return id, nil
}

// ListByOwner returns every document owned by ownerID, created_at descending.
func (db *DB) ListByOwner(ownerID string) ([]models.Document, error) {
	rows, err := db.conn.Query(`
		SELECT `+docColumns+` FROM documents
		WHERE user_id = ?
		ORDER BY created_at DESC, id
	`, ownerID)
	if err != nil {
		return nil, storeErr("list by owner", err)
	}
	defer rows.Close()

	out := []models.Document{}
	for rows.Next() {
		d, err := scanDocument(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *d)
	}
	return out, rows.Err()
}

// UpdateStatus sets the lifecycle status of a document. The write is
// conditional on ownerID matching the stored owner.
func (db *DB) UpdateStatus(id, ownerID string, status models.Status) error {
	return db.ownerUpdate(id, ownerID, `UPDATE documents SET status = ? WHERE id = ? AND user_id = ?`, string(status))
}

// UpdateVisibility toggles the public flag of a document, conditional on
// ownership.
func (db *DB) UpdateVisibility(id, ownerID string, isPublic bool) error {
	return db.ownerUpdate(id, ownerID, `UPDATE documents SET is_public = ? WHERE id = ? AND user_id = ?`, isPublic)
}

// DeleteDocument removes a document, conditional on ownership.
func (db *DB) DeleteDocument(id, ownerID string) error {
	res, err := db.conn.Exec(`DELETE FROM documents WHERE id = ? AND user_id = ?`, id, ownerID)
	if err != nil {
		return storeErr("delete document", err)
	}
	return db.checkOwnerWrite(res, id)
}

// ownerUpdate runs an owner-conditional UPDATE and distinguishes a missing
// record from a denied one when no row was touched.
func (db *DB) ownerUpdate(id, ownerID, query string, value any) error {
	res, err := db.conn.Exec(query, value, id, ownerID)
	if err != nil {
		return storeErr("update document", err)
	}
	return db.checkOwnerWrite(res, id)
}

// checkOwnerWrite inspects the result of an owner-conditional write. Zero
// affected rows means either the record does not exist (ErrNotFound) or it
// belongs to someone else (ErrDenied).
func (db *DB) checkOwnerWrite(res sql.Result, id string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return storeErr("rows affected", err)
	}
	if n > 0 {
		return nil
	}
	var exists int
	err = db.conn.QueryRow(`SELECT 1 FROM documents WHERE id = ?`, id).Scan(&exists)
	if errors.Is(err, sql.ErrNoRows) {
		return apperr.ErrNotFound
	}
	if err != nil {
		return storeErr("check existence", err)
	}
	return apperr.ErrDenied
}

type rowScanner interface {
	Scan(dest ...any) error
}

// scanDocument reads one document row and applies the defensive defaults
// (unknown status coerced to Draft, empty category to "Uncategorized").
func scanDocument(row rowScanner) (*models.Document, error) {
	var d models.Document
	var status string
	err := row.Scan(&d.ID, &d.Title, &d.Description, &status, &d.Category,
		&d.CreatedAt, &d.UserID, &d.IsPublic, &d.TrackingID, &d.FileName, &d.FileContent)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperr.ErrNotFound
	}
	if err != nil {
		return nil, storeErr("scan document", err)
	}
	d.Status = models.Status(status)
	d.Normalize()
	return &d, nil
}
