package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/clubtrack/backend/internal/models"
	"github.com/clubtrack/backend/internal/services"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// AdminService is the interface that wraps methods for user administration.
type AdminService interface {
	// Method ListUsers retrieves every user as a listing projection, password hash excluded.
	ListUsers(ctx context.Context) ([]models.UserListItem, error)
	// Method UpdateUserRole applies a partial role/approved update to a user.
	//
	// If the named role is outside the known set, services.ErrInvalidRole is returned.
	UpdateUserRole(ctx context.Context, userID int, req *models.RoleUpdateRequest) error
}

// AdminHandler handles admin-only HTTP requests
type AdminHandler struct {
	BaseHandler
	adminService AdminService
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(adminService AdminService, logger *zap.Logger) *AdminHandler {
	return &AdminHandler{
		BaseHandler:  BaseHandler{logger: logger},
		adminService: adminService,
	}
}

// RegisterRoutes registers all admin handler routes.
// Note: the caller mounts these behind the privileged-role middleware.
func (h *AdminHandler) RegisterRoutes(r chi.Router) {
	r.Get("/users", h.ListUsers)
	r.Post("/roles/{userID}", h.UpdateUserRole)
}

// ListUsers handles GET /api/users
func (h *AdminHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.adminService.ListUsers(r.Context())
	if err != nil {
		h.logger.Error("failed to list users", zap.Error(err))
		h.respondError(w, http.StatusInternalServerError, "failed to list users")
		return
	}

	if users == nil {
		users = []models.UserListItem{}
	}
	h.respondJSON(w, http.StatusOK, users)
}

// UpdateUserRole handles POST /api/roles/{userID}
func (h *AdminHandler) UpdateUserRole(w http.ResponseWriter, r *http.Request) {
	userID, err := strconv.Atoi(chi.URLParam(r, "userID"))
	if err != nil || userID <= 0 {
		h.respondError(w, http.StatusBadRequest, "invalid user id")
		return
	}

	var req models.RoleUpdateRequest
	if err := decodeJSON(r, &req); err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid json")
		return
	}

	if err := h.adminService.UpdateUserRole(r.Context(), userID, &req); err != nil {
		if errors.Is(err, services.ErrInvalidRole) {
			h.respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		h.logger.Error("failed to update user role", zap.Int("userID", userID), zap.Error(err))
		h.respondError(w, http.StatusInternalServerError, "failed to update user role")
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]string{"status": "updated"})
}
