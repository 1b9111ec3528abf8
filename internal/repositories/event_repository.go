package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/clubtrack/backend/internal/models"
)

// eventRepository implements event table data access
type eventRepository struct {
	db *sql.DB
}

// NewEventRepository creates a new event repository
func NewEventRepository(db *sql.DB) *eventRepository {
	return &eventRepository{
		db: db,
	}
}

// Create inserts a new event into the database
func (r *eventRepository) Create(ctx context.Context, event *models.Event) error {
	query := `
		INSERT INTO events (title, datetime, category, points, description)
		VALUES (?, ?, ?, ?, ?)
	`

	result, err := r.db.ExecContext(ctx, query,
		event.Title,
		event.Datetime,
		event.Category,
		event.Points,
		event.Description,
	)
	if err != nil {
		return fmt.Errorf("failed to create event: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert id: %w", err)
	}

	event.ID = int(id)
	return nil
}

// GetAll retrieves all events
func (r *eventRepository) GetAll(ctx context.Context) ([]models.Event, error) {
	query := `
		SELECT id, title, datetime, category, points, description
		FROM events
		ORDER BY id
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query events: %w", err)
	}
	defer rows.Close()

	var events []models.Event
	for rows.Next() {
		var event models.Event
		var description sql.NullString
		if err := rows.Scan(&event.ID, &event.Title, &event.Datetime, &event.Category, &event.Points, &description); err != nil {
			return nil, fmt.Errorf("failed to scan event: %w", err)
		}
		event.Description = description.String
		events = append(events, event)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return events, nil
}
