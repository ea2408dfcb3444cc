// internal/app/features/token/routes.go
package token

import "github.com/go-chi/chi/v5"

// Routes returns a subrouter for the token endpoint, mounted under /token.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Post("/", h.HandleIssue)
	return r
}
