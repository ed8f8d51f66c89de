// Package models defines the domain types for Doctrail.
package models

import "time"

// Status is the lifecycle state of a document.
type Status string

// Document lifecycle states.
const (
	StatusDraft    Status = "Draft"
	StatusInReview Status = "In Review"
	StatusApproved Status = "Approved"
	StatusArchived Status = "Archived"
)

// Statuses lists every valid lifecycle state.
var Statuses = []Status{StatusDraft, StatusInReview, StatusApproved, StatusArchived}

// ParseStatus coerces a stored value to a valid Status. Anything outside the
// enumeration maps to StatusDraft; reads never fail on a malformed row.
func ParseStatus(s string) Status {
	for _, st := range Statuses {
		if Status(s) == st {
			return st
		}
	}
	return StatusDraft
}

// Valid reports whether s is a member of the status enumeration.
func (s Status) Valid() bool {
	for _, st := range Statuses {
		if s == st {
			return true
		}
	}
	return false
}

// Document is the central tracked entity. ID, CreatedAt, UserID and
// TrackingID are assigned at creation and immutable afterwards.
type Document struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Status      Status    `json:"status"`
	Category    string    `json:"category"`
	CreatedAt   time.Time `json:"created_at"`
	UserID      string    `json:"user_id"`
	IsPublic    bool      `json:"is_public"`
	TrackingID  string    `json:"tracking_id"`
	FileName    string    `json:"file_name,omitempty"`
	FileContent string    `json:"file_content,omitempty"`
}

// Normalize applies the defensive-read defaults to fields loaded from the
// store: out-of-range status becomes Draft, empty category becomes
// "Uncategorized". Applied uniformly on every read path.
func (d *Document) Normalize() {
	d.Status = ParseStatus(string(d.Status))
	if d.Category == "" {
		d.Category = "Uncategorized"
	}
}

// AdminRecord is the singleton enrollment record naming the sole
// administrator account.
type AdminRecord struct {
	UserID    string    `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}

// User is an authenticated account.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}
