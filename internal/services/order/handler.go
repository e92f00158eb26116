package order

import (
	"net/http"
	"strconv"

	"eats-marketplace/internal/api"
	"eats-marketplace/internal/auth"
	"eats-marketplace/internal/logger"
	"eats-marketplace/internal/models"
)

// Handler exposes the order lifecycle over HTTP
type Handler struct {
	service *Service
	logger  *logger.Logger
}

// NewHandler creates a new order handler
func NewHandler(service *Service, log *logger.Logger) *Handler {
	return &Handler{
		service: service,
		logger:  log,
	}
}

// Register sets up the order routes
func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("POST /orders", h.createOrder)
	mux.HandleFunc("GET /orders", h.getOrders)
	mux.HandleFunc("GET /orders/{id}", h.getOrder)
	mux.HandleFunc("PUT /orders/{id}/status", h.editOrder)
	mux.HandleFunc("GET /orders/{id}/history", h.statusHistory)
}

func (h *Handler) createOrder(w http.ResponseWriter, r *http.Request) {
	requestID := logger.GenerateRequestID()

	user, ok := auth.UserFromContext(r.Context())
	if !ok {
		api.WriteError(w, http.StatusUnauthorized, "Authentication required", requestID)
		return
	}
	if !auth.HasRole(user, models.RoleClient) {
		api.WriteError(w, http.StatusForbidden, "Only clients may place orders", requestID)
		return
	}

	var req models.CreateOrderRequest
	if err := api.DecodeJSON(r, &req); err != nil {
		api.WriteError(w, http.StatusBadRequest, "Invalid JSON format", requestID)
		return
	}
	if err := req.Validate(); err != nil {
		h.logger.Error("validation_failed", "Order request validation failed", requestID, err, nil)
		api.WriteError(w, http.StatusBadRequest, err.Error(), requestID)
		return
	}

	api.WriteJSON(w, http.StatusOK, h.service.CreateOrder(r.Context(), user, &req))
}

func (h *Handler) getOrders(w http.ResponseWriter, r *http.Request) {
	requestID := logger.GenerateRequestID()

	user, ok := auth.UserFromContext(r.Context())
	if !ok {
		api.WriteError(w, http.StatusUnauthorized, "Authentication required", requestID)
		return
	}

	var status *models.OrderStatus
	if raw := r.URL.Query().Get("status"); raw != "" {
		parsed, err := models.ParseOrderStatus(raw)
		if err != nil {
			api.WriteError(w, http.StatusBadRequest, err.Error(), requestID)
			return
		}
		status = &parsed
	}

	api.WriteJSON(w, http.StatusOK, h.service.GetOrders(r.Context(), user, status))
}

func (h *Handler) getOrder(w http.ResponseWriter, r *http.Request) {
	requestID := logger.GenerateRequestID()

	user, ok := auth.UserFromContext(r.Context())
	if !ok {
		api.WriteError(w, http.StatusUnauthorized, "Authentication required", requestID)
		return
	}

	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		api.WriteError(w, http.StatusBadRequest, "Invalid order id", requestID)
		return
	}

	api.WriteJSON(w, http.StatusOK, h.service.GetOrder(r.Context(), user, id))
}

func (h *Handler) editOrder(w http.ResponseWriter, r *http.Request) {
	requestID := logger.GenerateRequestID()

	user, ok := auth.UserFromContext(r.Context())
	if !ok {
		api.WriteError(w, http.StatusUnauthorized, "Authentication required", requestID)
		return
	}

	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		api.WriteError(w, http.StatusBadRequest, "Invalid order id", requestID)
		return
	}

	var body struct {
		Status string `json:"status"`
	}
	if err := api.DecodeJSON(r, &body); err != nil {
		api.WriteError(w, http.StatusBadRequest, "Invalid JSON format", requestID)
		return
	}
	status, err := models.ParseOrderStatus(body.Status)
	if err != nil {
		api.WriteError(w, http.StatusBadRequest, err.Error(), requestID)
		return
	}

	req := &models.EditOrderRequest{ID: id, Status: status}
	api.WriteJSON(w, http.StatusOK, h.service.EditOrder(r.Context(), user, req))
}

func (h *Handler) statusHistory(w http.ResponseWriter, r *http.Request) {
	requestID := logger.GenerateRequestID()

	user, ok := auth.UserFromContext(r.Context())
	if !ok {
		api.WriteError(w, http.StatusUnauthorized, "Authentication required", requestID)
		return
	}

	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		api.WriteError(w, http.StatusBadRequest, "Invalid order id", requestID)
		return
	}

	history, errMsg := h.service.StatusHistory(r.Context(), user, id)
	if errMsg != "" {
		api.WriteJSON(w, http.StatusOK, map[string]interface{}{"success": false, "error": errMsg})
		return
	}
	api.WriteJSON(w, http.StatusOK, map[string]interface{}{"success": true, "history": history})
}
