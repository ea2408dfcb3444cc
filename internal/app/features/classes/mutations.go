// internal/app/features/classes/mutations.go
package classes

import (
	"context"
	"net/http"

	"github.com/camphub/camphub/internal/app/system/httpjson"
	"github.com/camphub/camphub/internal/app/system/timeouts"
	"github.com/camphub/camphub/internal/domain/models"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type setStatusRequest struct {
	SetStatus models.ClassStatus `json:"setStatus"`
}

type setFeedbackRequest struct {
	FeedbackText string `json:"feedbackText"`
}

type setSeatsRequest struct {
	NewSeats int `json:"newSeats"`
}

type setEnrolledRequest struct {
	NewEnrolled int `json:"newEnrolled"`
}

// HandleSetStatus handles PATCH /classes/{id}: admin approval/denial.
func (h *Handler) HandleSetStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := classID(w, r)
	if !ok {
		return
	}
	var req setStatusRequest
	if err := httpjson.Decode(r, &req); err != nil {
		httpjson.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	h.setField(w, r, "status update", func(ctx context.Context) (int64, int64, error) {
		return h.Store.SetStatus(ctx, id, req.SetStatus)
	})
}

// HandleSetFeedback handles PATCH /classes/{id}/feedback.
func (h *Handler) HandleSetFeedback(w http.ResponseWriter, r *http.Request) {
	id, ok := classID(w, r)
	if !ok {
		return
	}
	var req setFeedbackRequest
	if err := httpjson.Decode(r, &req); err != nil {
		httpjson.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	h.setField(w, r, "feedback update", func(ctx context.Context) (int64, int64, error) {
		return h.Store.SetFeedback(ctx, id, req.FeedbackText)
	})
}

// HandleSetSeats handles PATCH /classes/{id}/seats (token-gated). The
// caller supplies the new absolute seat count; no delta or sign check is
// applied.
func (h *Handler) HandleSetSeats(w http.ResponseWriter, r *http.Request) {
	id, ok := classID(w, r)
	if !ok {
		return
	}
	var req setSeatsRequest
	if err := httpjson.Decode(r, &req); err != nil {
		httpjson.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	h.setField(w, r, "seat update", func(ctx context.Context) (int64, int64, error) {
		return h.Store.SetAvailableSeats(ctx, id, req.NewSeats)
	})
}

// HandleSetEnrolled handles PATCH /classes/{id}/enrolled (token-gated).
func (h *Handler) HandleSetEnrolled(w http.ResponseWriter, r *http.Request) {
	id, ok := classID(w, r)
	if !ok {
		return
	}
	var req setEnrolledRequest
	if err := httpjson.Decode(r, &req); err != nil {
		httpjson.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	h.setField(w, r, "enrolled update", func(ctx context.Context) (int64, int64, error) {
		return h.Store.SetEnrolled(ctx, id, req.NewEnrolled)
	})
}

func classID(w http.ResponseWriter, r *http.Request) (primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httpjson.Error(w, http.StatusBadRequest, "invalid id")
		return primitive.NilObjectID, false
	}
	return id, true
}

// setField runs one single-document $set and writes the driver's counts.
// Zero matches (unknown id) pass through with 200.
func (h *Handler) setField(w http.ResponseWriter, r *http.Request, op string, fn func(ctx context.Context) (int64, int64, error)) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	matched, modified, err := fn(ctx)
	if err != nil {
		h.Log.Error("class "+op+" failed", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "a database error occurred")
		return
	}

	httpjson.Respond(w, http.StatusOK, map[string]int64{
		"matchedCount":  matched,
		"modifiedCount": modified,
	})
}
