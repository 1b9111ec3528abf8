package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/clubtrack/backend/internal/auth"
	"github.com/clubtrack/backend/internal/models"
	"github.com/clubtrack/backend/internal/repositories"
	"github.com/clubtrack/backend/internal/services"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// AttendanceService is the interface that wraps methods for attendance business logic.
type AttendanceService interface {
	// Method Record upserts the attendance flag for a (user, event) pair.
	//
	// If the request omits the event, services.ErrEventIDRequired is returned.
	// If the named event does not exist, repositories.ErrEventNotFound is returned.
	Record(ctx context.Context, userID int, req *models.AttendanceRequest) error
}

// AttendanceHandler handles attendance-related HTTP requests
type AttendanceHandler struct {
	BaseHandler
	attendanceService AttendanceService
}

// NewAttendanceHandler creates a new attendance handler
func NewAttendanceHandler(attendanceService AttendanceService, logger *zap.Logger) *AttendanceHandler {
	return &AttendanceHandler{
		BaseHandler:       BaseHandler{logger: logger},
		attendanceService: attendanceService,
	}
}

// RegisterRoutes registers all attendance handler routes
func (h *AttendanceHandler) RegisterRoutes(r chi.Router) {
	r.Post("/attendance", h.Record)
}

// Record handles POST /api/attendance. The row is always written for the
// calling user; the body only names the event and the attended flag.
func (h *AttendanceHandler) Record(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.CurrentUser(r.Context())
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req models.AttendanceRequest
	if err := decodeJSON(r, &req); err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid json")
		return
	}

	if err := h.attendanceService.Record(r.Context(), user.ID, &req); err != nil {
		if errors.Is(err, services.ErrEventIDRequired) || errors.Is(err, repositories.ErrEventNotFound) {
			h.respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		h.logger.Error("failed to save attendance", zap.Int("userID", user.ID), zap.Error(err))
		h.respondError(w, http.StatusInternalServerError, "failed to save attendance")
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]string{"status": "saved"})
}
