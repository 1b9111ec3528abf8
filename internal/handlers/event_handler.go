package handlers

import (
	"context"
	"net/http"

	"github.com/clubtrack/backend/internal/models"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// EventService is the interface that wraps methods for event business logic.
type EventService interface {
	// Method List retrieves all events.
	List(ctx context.Context) ([]models.Event, error)
	// Method Create stores a new event; absent points default to 10.
	Create(ctx context.Context, req *models.CreateEventRequest) (*models.Event, error)
}

// EventHandler handles event-related HTTP requests
type EventHandler struct {
	BaseHandler
	eventService EventService
}

// NewEventHandler creates a new event handler
func NewEventHandler(eventService EventService, logger *zap.Logger) *EventHandler {
	return &EventHandler{
		BaseHandler:  BaseHandler{logger: logger},
		eventService: eventService,
	}
}

// RegisterRoutes registers the routes available to any authenticated user
func (h *EventHandler) RegisterRoutes(r chi.Router) {
	r.Get("/events", h.List)
}

// RegisterManageRoutes registers the routes gated to admin/chairman
func (h *EventHandler) RegisterManageRoutes(r chi.Router) {
	r.Post("/events", h.Create)
}

// List handles GET /api/events
func (h *EventHandler) List(w http.ResponseWriter, r *http.Request) {
	events, err := h.eventService.List(r.Context())
	if err != nil {
		h.logger.Error("failed to list events", zap.Error(err))
		h.respondError(w, http.StatusInternalServerError, "failed to list events")
		return
	}

	if events == nil {
		events = []models.Event{}
	}
	h.respondJSON(w, http.StatusOK, events)
}

// Create handles POST /api/events
func (h *EventHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreateEventRequest
	if err := decodeJSON(r, &req); err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid json")
		return
	}

	if req.Title == "" || req.Datetime == "" || req.Category == "" {
		h.respondError(w, http.StatusBadRequest, "title, datetime and category are required")
		return
	}

	if _, err := h.eventService.Create(r.Context(), &req); err != nil {
		h.logger.Error("failed to create event", zap.Error(err))
		h.respondError(w, http.StatusInternalServerError, "failed to create event")
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]string{"status": "created"})
}
