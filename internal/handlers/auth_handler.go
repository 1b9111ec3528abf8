package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/clubtrack/backend/internal/models"
	"github.com/clubtrack/backend/internal/repositories"
	"github.com/clubtrack/backend/internal/services"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// AuthService is the interface that wraps methods for authentication business logic.
type AuthService interface {
	// Method Register performs user creation with the default candidate role.
	//
	// "req" parameter contains the profile fields, email and password.
	//
	// If the email is already registered, repositories.ErrDuplicateEmail is returned.
	Register(ctx context.Context, req *models.RegisterRequest) error
	// Method Login performs credential verification and issues a session token.
	//
	// "req" parameter contains email and password.
	//
	// If the email is unknown or the password does not match, services.ErrInvalidCredentials is returned together with an empty token.
	Login(ctx context.Context, req *models.LoginRequest) (string, error)
}

// AuthHandler handles authentication-related HTTP requests
type AuthHandler struct {
	BaseHandler
	authService AuthService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService AuthService, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{
		BaseHandler: BaseHandler{logger: logger},
		authService: authService,
	}
}

// RegisterRoutes registers all auth handler routes
// Note: This assumes the router is already scoped to /api
func (h *AuthHandler) RegisterRoutes(r chi.Router) {
	r.Route("/auth", func(r chi.Router) {
		r.Post("/register", h.Register)
		r.Post("/login", h.Login)
	})
}

// Register handles POST /api/auth/register
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	if err := decodeJSON(r, &req); err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid json")
		return
	}

	if req.FullName == "" || req.BirthDate == "" || req.Phone == "" || req.Email == "" || req.Password == "" {
		h.respondError(w, http.StatusBadRequest, "full_name, birth_date, phone, email and password are required")
		return
	}

	if err := h.authService.Register(r.Context(), &req); err != nil {
		if errors.Is(err, repositories.ErrDuplicateEmail) {
			h.respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		h.logger.Error("failed to register user", zap.Error(err))
		h.respondError(w, http.StatusInternalServerError, "failed to register user")
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Login handles POST /api/auth/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := decodeJSON(r, &req); err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid json")
		return
	}

	if req.Email == "" || req.Password == "" {
		h.respondError(w, http.StatusBadRequest, "email and password are required")
		return
	}

	token, err := h.authService.Login(r.Context(), &req)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			h.respondError(w, http.StatusBadRequest, "invalid credentials")
			return
		}
		h.logger.Error("failed to login user", zap.Error(err))
		h.respondError(w, http.StatusInternalServerError, "failed to login")
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]string{"token": token})
}
