// internal/app/features/enrollments/routes.go
package enrollments

import (
	"github.com/camphub/camphub/internal/app/system/tokens"
	"github.com/go-chi/chi/v5"
)

// Routes returns a subrouter for the enrollment endpoints, mounted under
// /enrolledClasses. Token-gated.
func Routes(h *Handler, tok *tokens.Service) chi.Router {
	r := chi.NewRouter()
	r.Use(tok.RequireBearer)
	r.Get("/", h.HandleList)
	return r
}
