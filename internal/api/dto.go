package api

import (
	"github.com/starford/doctrail/internal/models"
)

// CredentialsRequest is the request body for sign-up and login.
type CredentialsRequest struct {
	Email    string `json:"email" example:"admin@example.com" validate:"required"`
	Password string `json:"password" example:"s3cret" validate:"required"`
}

// SessionResponse is returned after a successful sign-up or login.
type SessionResponse struct {
	Token string       `json:"token" validate:"required"`
	User  *models.User `json:"user" validate:"required"`
}

// AdminStatusResponse reports whether the administrator account exists.
type AdminStatusResponse struct {
	Exists bool `json:"exists"`
}

// CreateDocumentRequest is the request body for creating a document.
type CreateDocumentRequest struct {
	Title       string `json:"title" example:"Q1 Report" validate:"required"`
	Description string `json:"description,omitempty"`
	Category    string `json:"category,omitempty" example:"Finance"`
	FileName    string `json:"file_name,omitempty"`
	FileContent string `json:"file_content,omitempty"`
}

// UpdateStatusRequest is the request body for a status transition.
type UpdateStatusRequest struct {
	Status string `json:"status" example:"In Review" validate:"required"`
}

// UpdateVisibilityRequest is the request body for toggling the public flag.
type UpdateVisibilityRequest struct {
	IsPublic bool `json:"is_public"`
}

// DocumentListResponse wraps a filtered document listing.
type DocumentListResponse struct {
	Documents []models.Document `json:"documents" validate:"required"`
	Total     int               `json:"total" example:"7" validate:"required"`
}

// TrackingResponse maps a tracking code to a document identifier.
type TrackingResponse struct {
	ID string `json:"id" validate:"required"`
}

// SummaryRequest is the request body for AI summarization.
type SummaryRequest struct {
	Content string `json:"content"`
}

// SummaryResponse carries the generated (or fallback) summary text.
type SummaryResponse struct {
	Summary string `json:"summary" validate:"required"`
}

// CategoryRequest is the request body for AI category suggestion.
type CategoryRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// CategoryResponse carries the suggested (or fallback) category label.
type CategoryResponse struct {
	Category string `json:"category"`
}
