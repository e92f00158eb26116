package user

import (
	"net/http"

	"eats-marketplace/internal/api"
	"eats-marketplace/internal/auth"
	"eats-marketplace/internal/logger"
	"eats-marketplace/internal/models"
)

// Handler exposes account management over HTTP
type Handler struct {
	service *Service
	logger  *logger.Logger
}

// NewHandler creates a new user handler
func NewHandler(service *Service, log *logger.Logger) *Handler {
	return &Handler{
		service: service,
		logger:  log,
	}
}

// Register sets up the account routes
func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("POST /accounts", h.createAccount)
	mux.HandleFunc("POST /accounts/login", h.login)
	mux.HandleFunc("GET /accounts/me", h.me)
	mux.HandleFunc("PUT /accounts/me", h.editProfile)
	mux.HandleFunc("POST /accounts/verify", h.verifyEmail)
}

func (h *Handler) createAccount(w http.ResponseWriter, r *http.Request) {
	requestID := logger.GenerateRequestID()

	var req models.CreateAccountRequest
	if err := api.DecodeJSON(r, &req); err != nil {
		api.WriteError(w, http.StatusBadRequest, "Invalid JSON format", requestID)
		return
	}
	if err := req.Validate(); err != nil {
		h.logger.Error("validation_failed", "Account request validation failed", requestID, err, nil)
		api.WriteError(w, http.StatusBadRequest, err.Error(), requestID)
		return
	}

	api.WriteJSON(w, http.StatusOK, h.service.CreateAccount(r.Context(), &req))
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	requestID := logger.GenerateRequestID()

	var req models.LoginRequest
	if err := api.DecodeJSON(r, &req); err != nil {
		api.WriteError(w, http.StatusBadRequest, "Invalid JSON format", requestID)
		return
	}

	api.WriteJSON(w, http.StatusOK, h.service.Login(r.Context(), &req))
}

func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	requestID := logger.GenerateRequestID()

	user, ok := auth.UserFromContext(r.Context())
	if !ok {
		api.WriteError(w, http.StatusUnauthorized, "Authentication required", requestID)
		return
	}

	api.WriteJSON(w, http.StatusOK, h.service.FindByID(r.Context(), user.ID))
}

func (h *Handler) editProfile(w http.ResponseWriter, r *http.Request) {
	requestID := logger.GenerateRequestID()

	user, ok := auth.UserFromContext(r.Context())
	if !ok {
		api.WriteError(w, http.StatusUnauthorized, "Authentication required", requestID)
		return
	}

	var req models.EditProfileRequest
	if err := api.DecodeJSON(r, &req); err != nil {
		api.WriteError(w, http.StatusBadRequest, "Invalid JSON format", requestID)
		return
	}

	api.WriteJSON(w, http.StatusOK, h.service.EditProfile(r.Context(), user.ID, &req))
}

func (h *Handler) verifyEmail(w http.ResponseWriter, r *http.Request) {
	requestID := logger.GenerateRequestID()

	var req struct {
		Code string `json:"code"`
	}
	if err := api.DecodeJSON(r, &req); err != nil {
		api.WriteError(w, http.StatusBadRequest, "Invalid JSON format", requestID)
		return
	}
	if req.Code == "" {
		api.WriteError(w, http.StatusBadRequest, "code is required", requestID)
		return
	}

	api.WriteJSON(w, http.StatusOK, h.service.VerifyEmail(r.Context(), req.Code))
}
