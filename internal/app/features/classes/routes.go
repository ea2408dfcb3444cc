// internal/app/features/classes/routes.go
package classes

import (
	"github.com/camphub/camphub/internal/app/system/tokens"
	"github.com/go-chi/chi/v5"
)

// Routes returns a subrouter for the class endpoints, mounted under
// /classes. Only the seat and enrollment mutations are token-gated; the
// CRUD surface (including status changes) is open.
func Routes(h *Handler, tok *tokens.Service) chi.Router {
	r := chi.NewRouter()

	r.Post("/", h.HandleCreate)
	r.Get("/", h.HandleListByInstructor)
	r.Get("/all", h.HandleListAll)
	r.Get("/approved", h.HandleListApproved)
	r.Patch("/{id}", h.HandleSetStatus)
	r.Patch("/{id}/feedback", h.HandleSetFeedback)

	r.Group(func(r chi.Router) {
		r.Use(tok.RequireBearer)
		r.Patch("/{id}/seats", h.HandleSetSeats)
		r.Patch("/{id}/enrolled", h.HandleSetEnrolled)
	})

	return r
}
