package services

import (
	"context"
	"errors"
	"testing"

	"github.com/clubtrack/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockEventRepository is a mock implementation of EventRepository
type mockEventRepository struct {
	created   *models.Event
	createErr error
	events    []models.Event
	getErr    error
}

func (m *mockEventRepository) Create(ctx context.Context, event *models.Event) error {
	if m.createErr != nil {
		return m.createErr
	}
	event.ID = 1
	m.created = event
	return nil
}

func (m *mockEventRepository) GetAll(ctx context.Context) ([]models.Event, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	return m.events, nil
}

func TestEventService_Create(t *testing.T) {
	points := 25

	tests := []struct {
		name           string
		req            *models.CreateEventRequest
		expectedPoints int
	}{
		{
			name:           "absent points default to 10",
			req:            &models.CreateEventRequest{Title: "M", Datetime: "2025-01-01", Category: "c"},
			expectedPoints: 10,
		},
		{
			name:           "explicit points stored exactly",
			req:            &models.CreateEventRequest{Title: "M", Datetime: "2025-01-01", Category: "c", Points: &points},
			expectedPoints: 25,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &mockEventRepository{}
			svc := NewEventService(repo)

			event, err := svc.Create(context.Background(), tt.req)

			require.NoError(t, err)
			assert.Equal(t, tt.expectedPoints, event.Points)
			require.NotNil(t, repo.created)
			assert.Equal(t, tt.expectedPoints, repo.created.Points)
		})
	}
}

func TestEventService_Create_RepositoryError(t *testing.T) {
	repo := &mockEventRepository{createErr: errors.New("database error")}
	svc := NewEventService(repo)

	event, err := svc.Create(context.Background(), &models.CreateEventRequest{Title: "M", Datetime: "2025-01-01", Category: "c"})

	assert.Error(t, err)
	assert.Nil(t, event)
}

func TestEventService_List(t *testing.T) {
	events := []models.Event{
		{ID: 1, Title: "M", Datetime: "2025-01-01", Category: "c", Points: 10},
	}
	svc := NewEventService(&mockEventRepository{events: events})

	got, err := svc.List(context.Background())

	require.NoError(t, err)
	assert.Equal(t, events, got)
}
