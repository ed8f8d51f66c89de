package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/starford/doctrail/internal/aiassist"
	"github.com/starford/doctrail/internal/apperr"
	"github.com/starford/doctrail/internal/auth"
	"github.com/starford/doctrail/internal/docservice"
	"github.com/starford/doctrail/internal/models"
)

// Handler holds API route handlers.
type Handler struct {
	svc       *docservice.Service
	authSvc   *auth.Service
	assistant *aiassist.Assistant
}

// NewHandler creates a new Handler.
func NewHandler(svc *docservice.Service, authSvc *auth.Service, assistant *aiassist.Assistant) *Handler {
	return &Handler{svc: svc, authSvc: authSvc, assistant: assistant}
}

// SignUp handles POST /auth/signup. Creates the single administrator account.
func (h *Handler) SignUp(w http.ResponseWriter, r *http.Request) {
	var req CredentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody("invalid JSON body"))
		return
	}
	user, token, err := h.authSvc.SignUp(r.Context(), req.Email, req.Password)
	if err != nil {
		writeError(w, "sign up", err)
		return
	}
	writeJSON(w, http.StatusCreated, SessionResponse{Token: token, User: user})
}

// Login handles POST /auth/login.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req CredentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody("invalid JSON body"))
		return
	}
	user, token, err := h.authSvc.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		writeError(w, "login", err)
		return
	}
	writeJSON(w, http.StatusOK, SessionResponse{Token: token, User: user})
}

// AdminStatus handles GET /auth/admin. Readable by anyone; a sign-up form
// uses it to short-circuit before the authoritative store check.
func (h *Handler) AdminStatus(w http.ResponseWriter, r *http.Request) {
	exists, err := h.authSvc.AdminExists(r.Context())
	if err != nil {
		writeError(w, "admin status", err)
		return
	}
	writeJSON(w, http.StatusOK, AdminStatusResponse{Exists: exists})
}

// ListDocuments handles GET /documents. Optional q (substring search) and
// status (exact match) parameters filter the caller's set.
func (h *Handler) ListDocuments(w http.ResponseWriter, r *http.Request) {
	docs, err := h.svc.List(r.Context(), userID(r))
	if err != nil {
		writeError(w, "list documents", err)
		return
	}

	q := r.URL.Query()
	status := models.Status(q.Get("status"))
	if status != "" && !status.Valid() {
		writeJSON(w, http.StatusBadRequest, errorBody("unknown status filter"))
		return
	}
	docs = docservice.Filter(docs, q.Get("q"), status)

	writeJSON(w, http.StatusOK, DocumentListResponse{Documents: docs, Total: len(docs)})
}

// CreateDocument handles POST /documents.
func (h *Handler) CreateDocument(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 10<<20)
	var req CreateDocumentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody("invalid JSON body"))
		return
	}
	doc, err := h.svc.Add(r.Context(), userID(r), docservice.AddInput{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		FileName:    req.FileName,
		FileContent: req.FileContent,
	})
	if err != nil {
		writeError(w, "create document", err)
		return
	}
	writeJSON(w, http.StatusCreated, doc)
}

// GetDocument handles GET /documents/{id}. Readable by the owner always and
// by any authenticated caller once public.
func (h *Handler) GetDocument(w http.ResponseWriter, r *http.Request) {
	doc, err := h.svc.Get(r.Context(), userID(r), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, "get document", err)
		return
	}
	writeJSON(w, http.StatusOK, doc)
}

// UpdateStatus handles PATCH /documents/{id}/status.
func (h *Handler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req UpdateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody("invalid JSON body"))
		return
	}
	if err := h.svc.SetStatus(r.Context(), userID(r), chi.URLParam(r, "id"), models.Status(req.Status)); err != nil {
		writeError(w, "update status", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// UpdateVisibility handles PATCH /documents/{id}/visibility.
func (h *Handler) UpdateVisibility(w http.ResponseWriter, r *http.Request) {
	var req UpdateVisibilityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody("invalid JSON body"))
		return
	}
	if err := h.svc.SetVisibility(r.Context(), userID(r), chi.URLParam(r, "id"), req.IsPublic); err != nil {
		writeError(w, "update visibility", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// DeleteDocument handles DELETE /documents/{id}.
func (h *Handler) DeleteDocument(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Remove(r.Context(), userID(r), chi.URLParam(r, "id")); err != nil {
		writeError(w, "delete document", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ResolveTracking handles GET /track/{code}. Unauthenticated; resolves only
// public documents.
func (h *Handler) ResolveTracking(w http.ResponseWriter, r *http.Request) {
	id, err := h.svc.ResolveTrackingCode(r.Context(), chi.URLParam(r, "code"))
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			writeJSON(w, http.StatusNotFound, errorBody("no public document found with that tracking code"))
			return
		}
		writeError(w, "resolve tracking code", err)
		return
	}
	writeJSON(w, http.StatusOK, TrackingResponse{ID: id})
}

// GetPublicDocument handles GET /public/documents/{id}. Unauthenticated;
// a private document is indistinguishable from a missing one.
func (h *Handler) GetPublicDocument(w http.ResponseWriter, r *http.Request) {
	doc, err := h.svc.GetPublicDocument(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, "get public document", err)
		return
	}
	writeJSON(w, http.StatusOK, doc)
}

// Summarize handles POST /assist/summary. Best-effort: the response is
// always 200 with either the generated summary or a fixed fallback.
func (h *Handler) Summarize(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 10<<20)
	var req SummaryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody("invalid JSON body"))
		return
	}
	writeJSON(w, http.StatusOK, SummaryResponse{Summary: h.assistant.Summarize(r.Context(), req.Content)})
}

// SuggestCategory handles POST /assist/category. Best-effort like Summarize.
func (h *Handler) SuggestCategory(w http.ResponseWriter, r *http.Request) {
	var req CategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody("invalid JSON body"))
		return
	}
	writeJSON(w, http.StatusOK, CategoryResponse{Category: h.assistant.SuggestCategory(r.Context(), req.Title, req.Description)})
}
