// internal/app/features/selections/routes.go
package selections

import (
	"github.com/camphub/camphub/internal/app/system/tokens"
	"github.com/go-chi/chi/v5"
)

// Routes returns a subrouter for the selection endpoints, mounted under
// /selectedClasses. The plain delete is open and the by-id variant is
// gated; clients use both.
func Routes(h *Handler, tok *tokens.Service) chi.Router {
	r := chi.NewRouter()

	r.Post("/", h.HandleCreate)
	r.Get("/", h.HandleList)
	r.Delete("/{id}", h.HandleDelete)

	r.Group(func(r chi.Router) {
		r.Use(tok.RequireBearer)
		r.Patch("/by-class/{classId}/seats", h.HandleSetSeatsByClass)
		r.Delete("/by-id/{id}", h.HandleDelete)
	})

	return r
}
