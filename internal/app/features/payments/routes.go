// internal/app/features/payments/routes.go
package payments

import (
	"github.com/camphub/camphub/internal/app/system/tokens"
	"github.com/go-chi/chi/v5"
)

// Routes returns a subrouter for the payment endpoints, mounted under
// /payments. Both endpoints require a valid bearer token.
func Routes(h *Handler, tok *tokens.Service) chi.Router {
	r := chi.NewRouter()
	r.Use(tok.RequireBearer)
	r.Post("/intent", h.HandleCreateIntent)
	r.Post("/", h.HandleRecord)
	return r
}
