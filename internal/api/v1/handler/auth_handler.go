package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"transportpro/internal/api/v1/dto"
	"transportpro/internal/model"
	"transportpro/internal/service"
)

type AuthHandler struct {
	authService service.AuthService
	validate    *validator.Validate
	logger      zerolog.Logger
}

func NewAuthHandler(authService service.AuthService, v *validator.Validate, logger zerolog.Logger) *AuthHandler {
	return &AuthHandler{authService: authService, validate: v, logger: logger}
}

// RegisterRoutes mounts the auth endpoints.
func (h *AuthHandler) RegisterRoutes(mux *http.ServeMux, authMw func(http.Handler) http.Handler) {
	mux.Handle("POST /auth/register", http.HandlerFunc(h.register))
	mux.Handle("POST /auth/login", http.HandlerFunc(h.login))
	mux.Handle("GET /auth/me", authMw(http.HandlerFunc(h.me)))
}

func (h *AuthHandler) register(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON payload: "+err.Error(), http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(&req); err != nil {
		http.Error(w, "Validation failed: "+err.Error(), http.StatusBadRequest)
		return
	}
	if req.UserType == "" {
		req.UserType = model.UserTypeDriver
	}

	user, err := h.authService.Register(r.Context(), service.RegisterInput{
		Email:    req.Email,
		Password: req.Password,
		Name:     req.Name,
		Phone:    req.Phone,
		City:     req.City,
		UserType: req.UserType,
	})
	if err != nil {
		if errors.Is(err, service.ErrEmailAlreadyRegistered) {
			http.Error(w, "Email already registered", http.StatusBadRequest)
			return
		}
		h.logger.Error().Err(err).Msg("Failed to register user")
		http.Error(w, "Failed to register user", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, dto.NewUserResponse(user))
}

func (h *AuthHandler) login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON payload: "+err.Error(), http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(&req); err != nil {
		http.Error(w, "Validation failed: "+err.Error(), http.StatusBadRequest)
		return
	}

	token, user, err := h.authService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			http.Error(w, "Invalid credentials", http.StatusUnauthorized)
			return
		}
		h.logger.Error().Err(err).Msg("Login failed")
		http.Error(w, "Login failed", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, dto.LoginResponse{Token: token, User: dto.NewUserResponse(user)})
}

func (h *AuthHandler) me(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r, h.authService)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, dto.NewUserResponse(user))
}
