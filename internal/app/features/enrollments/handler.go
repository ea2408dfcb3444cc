// Package enrollments serves the token-gated read side of the payment
// flow: the enrollment records a student has paid for.
package enrollments

import (
	"context"
	"net/http"

	"github.com/camphub/camphub/internal/app/system/httpjson"
	"github.com/camphub/camphub/internal/app/system/timeouts"
	"github.com/camphub/camphub/internal/domain/models"
	"go.uber.org/zap"
)

// Store is the slice of the enrollment store this feature needs.
type Store interface {
	ListByEmail(ctx context.Context, email string) ([]models.EnrolledClass, error)
}

// Handler holds dependencies for the enrollment endpoints.
type Handler struct {
	Store Store
	Log   *zap.Logger
}

// NewHandler constructs an enrollments Handler.
func NewHandler(store Store, logger *zap.Logger) *Handler {
	return &Handler{Store: store, Log: logger}
}

// HandleList handles GET /enrolledClasses?email=.
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")
	if email == "" {
		httpjson.Error(w, http.StatusBadRequest, "email query parameter is required")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	enrollments, err := h.Store.ListByEmail(ctx, email)
	if err != nil {
		h.Log.Error("enrollment list failed", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "a database error occurred")
		return
	}
	if enrollments == nil {
		enrollments = []models.EnrolledClass{}
	}

	httpjson.Respond(w, http.StatusOK, enrollments)
}
