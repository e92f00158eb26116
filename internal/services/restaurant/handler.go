package restaurant

import (
	"net/http"

	"eats-marketplace/internal/api"
	"eats-marketplace/internal/auth"
	"eats-marketplace/internal/logger"
	"eats-marketplace/internal/models"
)

// Handler exposes the catalog over HTTP
type Handler struct {
	service *Service
	logger  *logger.Logger
}

// NewHandler creates a new catalog handler
func NewHandler(service *Service, log *logger.Logger) *Handler {
	return &Handler{
		service: service,
		logger:  log,
	}
}

// Register sets up the catalog routes
func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /restaurants", h.listRestaurants)
	mux.HandleFunc("POST /restaurants", h.createRestaurant)
	mux.HandleFunc("PUT /restaurants", h.updateRestaurant)
	mux.HandleFunc("POST /dishes", h.createDish)
}

func (h *Handler) listRestaurants(w http.ResponseWriter, r *http.Request) {
	api.WriteJSON(w, http.StatusOK, h.service.ListRestaurants(r.Context()))
}

func (h *Handler) createRestaurant(w http.ResponseWriter, r *http.Request) {
	requestID := logger.GenerateRequestID()

	owner, ok := h.requireOwner(w, r, requestID)
	if !ok {
		return
	}

	var req models.CreateRestaurantRequest
	if err := api.DecodeJSON(r, &req); err != nil {
		api.WriteError(w, http.StatusBadRequest, "Invalid JSON format", requestID)
		return
	}
	if err := req.Validate(); err != nil {
		h.logger.Error("validation_failed", "Restaurant request validation failed", requestID, err, nil)
		api.WriteError(w, http.StatusBadRequest, err.Error(), requestID)
		return
	}

	api.WriteJSON(w, http.StatusOK, h.service.CreateRestaurant(r.Context(), owner, &req))
}

func (h *Handler) updateRestaurant(w http.ResponseWriter, r *http.Request) {
	requestID := logger.GenerateRequestID()

	owner, ok := h.requireOwner(w, r, requestID)
	if !ok {
		return
	}

	var req models.UpdateRestaurantRequest
	if err := api.DecodeJSON(r, &req); err != nil {
		api.WriteError(w, http.StatusBadRequest, "Invalid JSON format", requestID)
		return
	}
	if req.ID <= 0 {
		api.WriteError(w, http.StatusBadRequest, "id is required", requestID)
		return
	}

	api.WriteJSON(w, http.StatusOK, h.service.UpdateRestaurant(r.Context(), owner, &req))
}

func (h *Handler) createDish(w http.ResponseWriter, r *http.Request) {
	requestID := logger.GenerateRequestID()

	owner, ok := h.requireOwner(w, r, requestID)
	if !ok {
		return
	}

	var req models.CreateDishRequest
	if err := api.DecodeJSON(r, &req); err != nil {
		api.WriteError(w, http.StatusBadRequest, "Invalid JSON format", requestID)
		return
	}
	if err := req.Validate(); err != nil {
		h.logger.Error("validation_failed", "Dish request validation failed", requestID, err, nil)
		api.WriteError(w, http.StatusBadRequest, err.Error(), requestID)
		return
	}

	api.WriteJSON(w, http.StatusOK, h.service.CreateDish(r.Context(), owner, &req))
}

func (h *Handler) requireOwner(w http.ResponseWriter, r *http.Request, requestID string) (*models.User, bool) {
	user, ok := auth.UserFromContext(r.Context())
	if !ok {
		api.WriteError(w, http.StatusUnauthorized, "Authentication required", requestID)
		return nil, false
	}
	if !auth.HasRole(user, models.RoleOwner) {
		api.WriteError(w, http.StatusForbidden, "Only owners may manage restaurants", requestID)
		return nil, false
	}
	return user, true
}
