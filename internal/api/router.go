package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/starford/doctrail/internal/aiassist"
	"github.com/starford/doctrail/internal/auth"
	"github.com/starford/doctrail/internal/docservice"
)

// NewRouter creates a chi router with all API routes mounted. The public
// group serves account creation, login and tracking-code lookup; everything
// else requires a Bearer session token.
func NewRouter(svc *docservice.Service, authSvc *auth.Service, assistant *aiassist.Assistant) chi.Router {
	h := NewHandler(svc, authSvc, assistant)

	r := chi.NewRouter()

	// Unauthenticated surface.
	r.Post("/auth/signup", h.SignUp)
	r.Post("/auth/login", h.Login)
	r.Get("/auth/admin", h.AdminStatus)
	r.Get("/track/{code}", h.ResolveTracking)
	r.Get("/public/documents/{id}", h.GetPublicDocument)

	// Owner surface.
	r.Group(func(r chi.Router) {
		r.Use(AuthMiddleware(authSvc))

		r.Get("/documents", h.ListDocuments)
		r.Post("/documents", h.CreateDocument)
		r.Get("/documents/{id}", h.GetDocument)
		r.Patch("/documents/{id}/status", h.UpdateStatus)
		r.Patch("/documents/{id}/visibility", h.UpdateVisibility)
		r.Delete("/documents/{id}", h.DeleteDocument)

		r.Get("/events", h.Events)

		r.Post("/assist/summary", h.Summarize)
		r.Post("/assist/category", h.SuggestCategory)
	})

	return r
}
