// Package docservice implements the document lifecycle operations and the
// public tracking-code lookup.
package docservice

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/starford/doctrail/internal/apperr"
	"github.com/starford/doctrail/internal/feed"
	"github.com/starford/doctrail/internal/models"
	"github.com/starford/doctrail/internal/store"
	"github.com/starford/doctrail/internal/tracking"
)

// maxMintAttempts bounds tracking-code regeneration when a freshly minted
// code collides with an existing one.
const maxMintAttempts = 5

// AddInput carries the caller-supplied fields for document creation.
// Everything except Title is optional.
type AddInput struct {
	Title       string
	Description string
	Category    string
	FileName    string
	FileContent string
}

// Service coordinates record-store operations and change notifications.
type Service struct {
	store  store.RecordStore
	broker *feed.Broker
}

// NewService creates a new document service.
func NewService(st store.RecordStore, broker *feed.Broker) *Service {
	return &Service{store: st, broker: broker}
}

// Add creates a document owned by ownerID. The title must be non-empty;
// status, visibility and category take their defaults. The tracking code is
// minted here and re-minted on the rare collision with a stored code.
func (s *Service) Add(_ context.Context, ownerID string, in AddInput) (*models.Document, error) {
	if strings.TrimSpace(in.Title) == "" {
		return nil, fmt.Errorf("%w: title is required", apperr.ErrValidation)
	}
	category := strings.TrimSpace(in.Category)
	if category == "" {
		category = "Uncategorized"
	}

	doc := &models.Document{
		Title:       in.Title,
		Description: in.Description,
		Status:      models.StatusDraft,
		Category:    category,
		UserID:      ownerID,
		IsPublic:    false,
		FileName:    in.FileName,
		FileContent: in.FileContent,
	}

	for attempt := 0; attempt < maxMintAttempts; attempt++ {
		doc.TrackingID = tracking.Generate()
		id, err := s.store.CreateDocument(doc)
		if errors.Is(err, apperr.ErrAlreadyExists) {
			continue
		}
		if err != nil {
			return nil, err
		}
		s.broker.Publish(feed.Event{Kind: feed.DocumentCreated, OwnerID: ownerID, DocID: id})
		return doc, nil
	}
	return nil, fmt.Errorf("docservice: exhausted tracking code attempts: %w", apperr.ErrAlreadyExists)
}

// SetStatus moves a document to the given lifecycle state. Only members of
// the status enumeration are accepted for writes; coercion applies to reads
// only.
func (s *Service) SetStatus(_ context.Context, ownerID, id string, status models.Status) error {
	if !status.Valid() {
		return fmt.Errorf("%w: unknown status %q", apperr.ErrValidation, status)
	}
	if err := s.store.UpdateStatus(id, ownerID, status); err != nil {
		return err
	}
	s.broker.Publish(feed.Event{Kind: feed.DocumentUpdated, OwnerID: ownerID, DocID: id})
	return nil
}

// SetVisibility toggles the public flag of a document.
func (s *Service) SetVisibility(_ context.Context, ownerID, id string, isPublic bool) error {
	if err := s.store.UpdateVisibility(id, ownerID, isPublic); err != nil {
		return err
	}
	s.broker.Publish(feed.Event{Kind: feed.DocumentUpdated, OwnerID: ownerID, DocID: id})
	return nil
}

// Remove deletes a document permanently. There is no soft delete.
func (s *Service) Remove(_ context.Context, ownerID, id string) error {
	if err := s.store.DeleteDocument(id, ownerID); err != nil {
		return err
	}
	s.broker.Publish(feed.Event{Kind: feed.DocumentDeleted, OwnerID: ownerID, DocID: id})
	return nil
}

// Get returns a single document readable by callerID: the owner always,
// any caller once the document is public.
func (s *Service) Get(_ context.Context, callerID, id string) (*models.Document, error) {
	doc, err := s.store.GetDocument(id)
	if err != nil {
		return nil, err
	}
	if !doc.IsPublic && doc.UserID != callerID {
		return nil, apperr.ErrDenied
	}
	return doc, nil
}

// List returns every document owned by ownerID, newest first.
func (s *Service) List(_ context.Context, ownerID string) ([]models.Document, error) {
	return s.store.ListByOwner(ownerID)
}

// ResolveTrackingCode maps caller input to a document identifier. Input is
// normalized to the generator's uppercase form before the lookup; only
// public documents resolve.
func (s *Service) ResolveTrackingCode(_ context.Context, code string) (string, error) {
	normalized := tracking.Normalize(code)
	if normalized == "" {
		return "", apperr.ErrNotFound
	}
	return s.store.ResolveTrackingCode(normalized)
}

// GetPublicDocument returns the public projection of a document. A private
// document is indistinguishable from a missing one.
func (s *Service) GetPublicDocument(_ context.Context, id string) (*models.Document, error) {
	return s.store.GetPublicDocument(id)
}
