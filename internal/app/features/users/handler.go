// Package users serves account registration, role lookup, the user list,
// and role assignment.
package users

import (
	"context"
	"errors"
	"net/http"

	userstore "github.com/camphub/camphub/internal/app/store/users"
	"github.com/camphub/camphub/internal/app/system/httpjson"
	"github.com/camphub/camphub/internal/app/system/timeouts"
	"github.com/camphub/camphub/internal/domain/models"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// Store is the slice of the user store this feature needs. The concrete
// implementation is userstore.Store; tests substitute an in-memory fake.
type Store interface {
	Create(ctx context.Context, u models.User) (primitive.ObjectID, error)
	RoleByEmail(ctx context.Context, email string) (string, error)
	List(ctx context.Context) ([]models.User, error)
	SetRole(ctx context.Context, id primitive.ObjectID, role string) (matched, modified int64, err error)
}

// Handler holds dependencies for the user endpoints.
type Handler struct {
	Store Store
	Log   *zap.Logger
}

// NewHandler constructs a users Handler.
func NewHandler(store Store, logger *zap.Logger) *Handler {
	return &Handler{Store: store, Log: logger}
}

type createRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	PhotoURL string `json:"photoURL"`
}

// HandleCreate handles POST /users: register the account on first sign-in.
// Registration is idempotent per email; repeating it reports
// "already_exists", and the unique index closes the concurrent-duplicate
// window.
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req createRequest
	if err := httpjson.Decode(r, &req); err != nil {
		httpjson.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Email == "" {
		httpjson.Error(w, http.StatusBadRequest, "email is required")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	id, err := h.Store.Create(ctx, models.User{
		Name:     req.Name,
		Email:    req.Email,
		PhotoURL: req.PhotoURL,
	})
	if err != nil {
		if errors.Is(err, userstore.ErrAlreadyExists) {
			httpjson.Respond(w, http.StatusOK, map[string]any{"result": "already_exists"})
			return
		}
		h.Log.Error("user insert failed", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "a database error occurred")
		return
	}

	httpjson.Respond(w, http.StatusOK, map[string]any{
		"result":     "created",
		"insertedId": id.Hex(),
	})
}

// HandleRole handles GET /users/role?email=. Responds with the user's
// role, or an empty role when the user is unknown or has none.
func (h *Handler) HandleRole(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")
	if email == "" {
		httpjson.Error(w, http.StatusBadRequest, "email query parameter is required")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	role, err := h.Store.RoleByEmail(ctx, email)
	if err != nil {
		h.Log.Error("role lookup failed", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "a database error occurred")
		return
	}

	httpjson.Respond(w, http.StatusOK, map[string]string{"role": role})
}

// HandleList handles GET /users: every user document.
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	users, err := h.Store.List(ctx)
	if err != nil {
		h.Log.Error("user list failed", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "a database error occurred")
		return
	}
	if users == nil {
		users = []models.User{}
	}

	httpjson.Respond(w, http.StatusOK, users)
}

type setRoleRequest struct {
	UserRole string `json:"userRole"`
}

// HandleSetRole handles PATCH /users/{id}: set the role field. A zero
// matched count (unknown id) is returned as-is with 200, matching the
// store pass-through behavior clients already expect.
//
// NOTE: this endpoint is not token-gated; existing clients call it
// before any token is issued. See the routes documentation in bootstrap.
func (h *Handler) HandleSetRole(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httpjson.Error(w, http.StatusBadRequest, "invalid id")
		return
	}

	var req setRoleRequest
	if err := httpjson.Decode(r, &req); err != nil {
		httpjson.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	matched, modified, err := h.Store.SetRole(ctx, id, req.UserRole)
	if err != nil {
		h.Log.Error("role update failed", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "a database error occurred")
		return
	}

	httpjson.Respond(w, http.StatusOK, map[string]int64{
		"matchedCount":  matched,
		"modifiedCount": modified,
	})
}
