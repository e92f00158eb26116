package payment

import (
	"net/http"

	"eats-marketplace/internal/api"
	"eats-marketplace/internal/auth"
	"eats-marketplace/internal/logger"
	"eats-marketplace/internal/models"
)

// Handler exposes payments over HTTP
type Handler struct {
	service *Service
	logger  *logger.Logger
}

// NewHandler creates a new payment handler
func NewHandler(service *Service, log *logger.Logger) *Handler {
	return &Handler{
		service: service,
		logger:  log,
	}
}

// Register sets up the payment routes
func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("POST /payments", h.createPayment)
	mux.HandleFunc("GET /payments", h.getPayments)
}

func (h *Handler) createPayment(w http.ResponseWriter, r *http.Request) {
	requestID := logger.GenerateRequestID()

	owner, ok := h.requireOwner(w, r, requestID)
	if !ok {
		return
	}

	var req models.CreatePaymentRequest
	if err := api.DecodeJSON(r, &req); err != nil {
		api.WriteError(w, http.StatusBadRequest, "Invalid JSON format", requestID)
		return
	}
	if err := req.Validate(); err != nil {
		h.logger.Error("validation_failed", "Payment request validation failed", requestID, err, nil)
		api.WriteError(w, http.StatusBadRequest, err.Error(), requestID)
		return
	}

	api.WriteJSON(w, http.StatusOK, h.service.CreatePayment(r.Context(), owner, &req))
}

func (h *Handler) getPayments(w http.ResponseWriter, r *http.Request) {
	requestID := logger.GenerateRequestID()

	owner, ok := h.requireOwner(w, r, requestID)
	if !ok {
		return
	}

	api.WriteJSON(w, http.StatusOK, h.service.GetPayments(r.Context(), owner))
}

func (h *Handler) requireOwner(w http.ResponseWriter, r *http.Request, requestID string) (*models.User, bool) {
	user, ok := auth.UserFromContext(r.Context())
	if !ok {
		api.WriteError(w, http.StatusUnauthorized, "Authentication required", requestID)
		return nil, false
	}
	if !auth.HasRole(user, models.RoleOwner) {
		api.WriteError(w, http.StatusForbidden, "Only owners may manage payments", requestID)
		return nil, false
	}
	return user, true
}
