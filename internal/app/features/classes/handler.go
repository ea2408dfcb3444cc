// Package classes serves the class catalog: instructors create classes,
// admins approve or deny them and leave feedback, and the payment flow
// adjusts seat and enrollment counts.
package classes

import (
	"context"
	"net/http"

	"github.com/camphub/camphub/internal/app/system/httpjson"
	"github.com/camphub/camphub/internal/app/system/timeouts"
	"github.com/camphub/camphub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// Store is the slice of the class store this feature needs.
type Store interface {
	Insert(ctx context.Context, c models.Class) (primitive.ObjectID, error)
	ListByInstructor(ctx context.Context, email string) ([]models.Class, error)
	ListAll(ctx context.Context) ([]models.Class, error)
	ListApproved(ctx context.Context) ([]models.Class, error)
	SetStatus(ctx context.Context, id primitive.ObjectID, status models.ClassStatus) (matched, modified int64, err error)
	SetFeedback(ctx context.Context, id primitive.ObjectID, feedback string) (matched, modified int64, err error)
	SetAvailableSeats(ctx context.Context, id primitive.ObjectID, seats int) (matched, modified int64, err error)
	SetEnrolled(ctx context.Context, id primitive.ObjectID, enrolled int) (matched, modified int64, err error)
}

// Handler holds dependencies for the class endpoints.
type Handler struct {
	Store Store
	Log   *zap.Logger
}

// NewHandler constructs a classes Handler.
func NewHandler(store Store, logger *zap.Logger) *Handler {
	return &Handler{Store: store, Log: logger}
}

type createRequest struct {
	Name            string  `json:"name"`
	Image           string  `json:"image"`
	InstructorName  string  `json:"instructorName"`
	InstructorEmail string  `json:"instructorEmail"`
	Price           float64 `json:"price"`
	AvailableSeats  int     `json:"availableSeats"`
}

// HandleCreate handles POST /classes. Status is always forced to pending;
// approval is an admin action through HandleSetStatus.
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req createRequest
	if err := httpjson.Decode(r, &req); err != nil {
		httpjson.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Name == "" || req.InstructorEmail == "" {
		httpjson.Error(w, http.StatusBadRequest, "name and instructorEmail are required")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	id, err := h.Store.Insert(ctx, models.Class{
		Name:            req.Name,
		Image:           req.Image,
		InstructorName:  req.InstructorName,
		InstructorEmail: req.InstructorEmail,
		Price:           req.Price,
		AvailableSeats:  req.AvailableSeats,
		Status:          models.StatusPending,
	})
	if err != nil {
		h.Log.Error("class insert failed", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "a database error occurred")
		return
	}

	httpjson.Respond(w, http.StatusOK, map[string]string{"insertedId": id.Hex()})
}

// HandleListByInstructor handles GET /classes?email=: the instructor's
// own classes, all statuses included.
func (h *Handler) HandleListByInstructor(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")
	if email == "" {
		httpjson.Error(w, http.StatusBadRequest, "email query parameter is required")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	classes, err := h.Store.ListByInstructor(ctx, email)
	if err != nil {
		h.Log.Error("class list by instructor failed", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "a database error occurred")
		return
	}
	if classes == nil {
		classes = []models.Class{}
	}

	httpjson.Respond(w, http.StatusOK, classes)
}

// HandleListAll handles GET /classes/all: every class, for the admin view.
func (h *Handler) HandleListAll(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	classes, err := h.Store.ListAll(ctx)
	if err != nil {
		h.Log.Error("class list failed", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "a database error occurred")
		return
	}
	if classes == nil {
		classes = []models.Class{}
	}

	httpjson.Respond(w, http.StatusOK, classes)
}

// HandleListApproved handles GET /classes/approved: the public catalog,
// strictly classes whose status equals "approved".
func (h *Handler) HandleListApproved(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	classes, err := h.Store.ListApproved(ctx)
	if err != nil {
		h.Log.Error("approved class list failed", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "a database error occurred")
		return
	}
	if classes == nil {
		classes = []models.Class{}
	}

	httpjson.Respond(w, http.StatusOK, classes)
}
