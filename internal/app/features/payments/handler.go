// Package payments serves the token-gated payment flow: minting a
// payment intent with the processor and persisting the resulting
// enrollment record.
package payments

import (
	"context"
	"math"
	"net/http"

	"github.com/camphub/camphub/internal/app/system/httpjson"
	processor "github.com/camphub/camphub/internal/app/system/payments"
	"github.com/camphub/camphub/internal/app/system/timeouts"
	"github.com/camphub/camphub/internal/domain/models"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// Store is the slice of the enrollment store this feature needs.
type Store interface {
	Insert(ctx context.Context, e models.EnrolledClass) (primitive.ObjectID, error)
}

// Handler holds dependencies for the payment endpoints.
type Handler struct {
	Store   Store
	Intents processor.IntentCreator
	Log     *zap.Logger
}

// NewHandler constructs a payments Handler.
func NewHandler(store Store, intents processor.IntentCreator, logger *zap.Logger) *Handler {
	return &Handler{Store: store, Intents: intents, Log: logger}
}

type intentRequest struct {
	Price float64 `json:"price"`
}

type intentResponse struct {
	ClientSecret string `json:"clientSecret"`
}

// HandleCreateIntent handles POST /payments/intent. The price arrives in
// currency units and is converted to integer minor units by rounding
// (19.99 becomes exactly 1999); that integer is forwarded to the
// processor unchanged.
func (h *Handler) HandleCreateIntent(w http.ResponseWriter, r *http.Request) {
	var req intentRequest
	if err := httpjson.Decode(r, &req); err != nil {
		httpjson.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	amount := int64(math.Round(req.Price * 100))

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	clientSecret, err := h.Intents.CreateIntent(ctx, amount)
	if err != nil {
		h.Log.Error("payment intent creation failed", zap.Error(err), zap.Int64("amount", amount))
		httpjson.Error(w, http.StatusBadGateway, "payment processor unavailable")
		return
	}

	httpjson.Respond(w, http.StatusOK, intentResponse{ClientSecret: clientSecret})
}

type recordRequest struct {
	Email           string `json:"email"`
	ClassID         string `json:"classId"`
	ClassName       string `json:"className"`
	TransactionID   string `json:"transactionId"`
	PaymentIntentID string `json:"paymentIntentId"`
	Amount          int64  `json:"amount"`
}

// HandleRecord handles POST /payments: persist the enrollment record the
// client reports after confirming the payment. A TransactionID is
// assigned when the client omits one.
func (h *Handler) HandleRecord(w http.ResponseWriter, r *http.Request) {
	var req recordRequest
	if err := httpjson.Decode(r, &req); err != nil {
		httpjson.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Email == "" || req.ClassID == "" {
		httpjson.Error(w, http.StatusBadRequest, "email and classId are required")
		return
	}
	if req.TransactionID == "" {
		req.TransactionID = uuid.NewString()
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	id, err := h.Store.Insert(ctx, models.EnrolledClass{
		Email:           req.Email,
		ClassID:         req.ClassID,
		ClassName:       req.ClassName,
		TransactionID:   req.TransactionID,
		PaymentIntentID: req.PaymentIntentID,
		Amount:          req.Amount,
	})
	if err != nil {
		h.Log.Error("enrollment record insert failed", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "a database error occurred")
		return
	}

	httpjson.Respond(w, http.StatusOK, map[string]string{"insertedId": id.Hex()})
}
