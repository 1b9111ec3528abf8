package services

import (
	"context"

	"github.com/clubtrack/backend/internal/models"
)

// EventRepository is the interface that wraps methods for events table data access
type EventRepository interface {
	// Method Create inserts a new event into the database; its ID is set on success.
	Create(ctx context.Context, event *models.Event) error
	// Method GetAll retrieves all events.
	GetAll(ctx context.Context) ([]models.Event, error)
}

// eventService implements event listing and creation
type eventService struct {
	eventRepo EventRepository
}

// NewEventService creates a new event service
func NewEventService(eventRepo EventRepository) *eventService {
	return &eventService{
		eventRepo: eventRepo,
	}
}

// List retrieves all events
func (s *eventService) List(ctx context.Context) ([]models.Event, error) {
	return s.eventRepo.GetAll(ctx)
}

// Create stores a new event. Events are immutable once created; there is
// no update or delete path. Absent points default to
// models.DefaultEventPoints.
func (s *eventService) Create(ctx context.Context, req *models.CreateEventRequest) (*models.Event, error) {
	points := models.DefaultEventPoints
	if req.Points != nil {
		points = *req.Points
	}

	event := &models.Event{
		Title:       req.Title,
		Datetime:    req.Datetime,
		Category:    req.Category,
		Points:      points,
		Description: req.Description,
	}

	if err := s.eventRepo.Create(ctx, event); err != nil {
		return nil, err
	}

	return event, nil
}
