// Package token serves the identity-token endpoint. The caller supplies
// its email and receives a signed bearer token for the gated payment and
// enrollment endpoints. Nothing is persisted.
package token

import (
	"net/http"

	"github.com/camphub/camphub/internal/app/system/httpjson"
	"github.com/camphub/camphub/internal/app/system/tokens"
	"go.uber.org/zap"
)

// Handler holds dependencies for the token endpoint.
type Handler struct {
	Tokens *tokens.Service
	Log    *zap.Logger
}

// NewHandler constructs a token Handler.
func NewHandler(svc *tokens.Service, logger *zap.Logger) *Handler {
	return &Handler{Tokens: svc, Log: logger}
}

type issueRequest struct {
	Email string `json:"email"`
}

type issueResponse struct {
	Token string `json:"token"`
}

// HandleIssue handles POST /token. The identity is taken at face value;
// the token only proves the caller went through this endpoint. The
// frontend signs users in elsewhere and then calls this for an API token.
func (h *Handler) HandleIssue(w http.ResponseWriter, r *http.Request) {
	var req issueRequest
	if err := httpjson.Decode(r, &req); err != nil {
		httpjson.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Email == "" {
		httpjson.Error(w, http.StatusBadRequest, "email is required")
		return
	}

	signed, err := h.Tokens.Issue(req.Email)
	if err != nil {
		h.Log.Error("token signing failed", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "could not issue token")
		return
	}

	httpjson.Respond(w, http.StatusOK, issueResponse{Token: signed})
}
