// Package selections serves a student's pending class choices: the
// selectedClasses collection that sits between browsing and payment.
package selections

import (
	"context"
	"errors"
	"net/http"

	selectionstore "github.com/camphub/camphub/internal/app/store/selections"
	"github.com/camphub/camphub/internal/app/system/httpjson"
	"github.com/camphub/camphub/internal/app/system/timeouts"
	"github.com/camphub/camphub/internal/domain/models"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// Store is the slice of the selection store this feature needs.
type Store interface {
	Insert(ctx context.Context, sel models.SelectedClass) (primitive.ObjectID, error)
	ListByEmail(ctx context.Context, email string) ([]models.SelectedClass, error)
	Delete(ctx context.Context, id primitive.ObjectID) (int64, error)
	SetSeatsByClass(ctx context.Context, classID string, seats int) (matched, modified int64, err error)
}

// Handler holds dependencies for the selection endpoints.
type Handler struct {
	Store Store
	Log   *zap.Logger
}

// NewHandler constructs a selections Handler.
func NewHandler(store Store, logger *zap.Logger) *Handler {
	return &Handler{Store: store, Log: logger}
}

type createRequest struct {
	Email          string  `json:"email"`
	ClassID        string  `json:"classId"`
	ClassName      string  `json:"className"`
	Image          string  `json:"image"`
	Price          float64 `json:"price"`
	AvailableSeats int     `json:"availableSeats"`
	InstructorName string  `json:"instructorName"`
}

// HandleCreate handles POST /selectedClasses. The unique (email, classId)
// index makes a repeat selection report "already_exists" rather than
// inserting a duplicate, even when two requests race.
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req createRequest
	if err := httpjson.Decode(r, &req); err != nil {
		httpjson.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Email == "" || req.ClassID == "" {
		httpjson.Error(w, http.StatusBadRequest, "email and classId are required")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	id, err := h.Store.Insert(ctx, models.SelectedClass{
		Email:          req.Email,
		ClassID:        req.ClassID,
		ClassName:      req.ClassName,
		Image:          req.Image,
		Price:          req.Price,
		AvailableSeats: req.AvailableSeats,
		InstructorName: req.InstructorName,
	})
	if err != nil {
		if errors.Is(err, selectionstore.ErrAlreadyExists) {
			httpjson.Respond(w, http.StatusOK, map[string]any{"result": "already_exists"})
			return
		}
		h.Log.Error("selection insert failed", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "a database error occurred")
		return
	}

	httpjson.Respond(w, http.StatusOK, map[string]any{
		"result":     "created",
		"insertedId": id.Hex(),
	})
}

// HandleList handles GET /selectedClasses?email=.
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")
	if email == "" {
		httpjson.Error(w, http.StatusBadRequest, "email query parameter is required")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	selections, err := h.Store.ListByEmail(ctx, email)
	if err != nil {
		h.Log.Error("selection list failed", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "a database error occurred")
		return
	}
	if selections == nil {
		selections = []models.SelectedClass{}
	}

	httpjson.Respond(w, http.StatusOK, selections)
}

// HandleDelete handles DELETE /selectedClasses/{id} and its token-gated
// twin DELETE /selectedClasses/by-id/{id}. Deleting an unknown id returns
// deletedCount 0 with 200.
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httpjson.Error(w, http.StatusBadRequest, "invalid id")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	deleted, err := h.Store.Delete(ctx, id)
	if err != nil {
		h.Log.Error("selection delete failed", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "a database error occurred")
		return
	}

	httpjson.Respond(w, http.StatusOK, map[string]int64{"deletedCount": deleted})
}

type setSeatsRequest struct {
	NewSeats int `json:"newSeats"`
}

// HandleSetSeatsByClass handles PATCH /selectedClasses/by-class/{classId}/seats
// (token-gated): the bulk denormalized update that fans a class's new seat
// count out to every selection referencing it. This write and the
// corresponding classes update are independent and non-transactional.
func (h *Handler) HandleSetSeatsByClass(w http.ResponseWriter, r *http.Request) {
	classID := chi.URLParam(r, "classId")
	if classID == "" {
		httpjson.Error(w, http.StatusBadRequest, "classId is required")
		return
	}

	var req setSeatsRequest
	if err := httpjson.Decode(r, &req); err != nil {
		httpjson.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	matched, modified, err := h.Store.SetSeatsByClass(ctx, classID, req.NewSeats)
	if err != nil {
		h.Log.Error("selection bulk seat update failed", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "a database error occurred")
		return
	}

	httpjson.Respond(w, http.StatusOK, map[string]int64{
		"matchedCount":  matched,
		"modifiedCount": modified,
	})
}
