package repositories

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/clubtrack/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupEventTestRepository creates an event repository with a mock database
func setupEventTestRepository(t *testing.T) (*eventRepository, sqlmock.Sqlmock, func()) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	repo := NewEventRepository(db)

	cleanup := func() {
		db.Close()
	}

	return repo, mock, cleanup
}

func TestEventRepository_Create(t *testing.T) {
	tests := []struct {
		name          string
		event         *models.Event
		setupMock     func(sqlmock.Sqlmock)
		expectedError bool
		expectedID    int
	}{
		{
			name:  "success",
			event: &models.Event{Title: "Meeting", Datetime: "2025-01-01", Category: "general", Points: 10, Description: "monthly"},
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`INSERT INTO events`).
					WithArgs("Meeting", "2025-01-01", "general", 10, "monthly").
					WillReturnResult(sqlmock.NewResult(3, 1))
			},
			expectedID: 3,
		},
		{
			name:  "database error",
			event: &models.Event{Title: "Meeting", Datetime: "2025-01-01", Category: "general", Points: 10},
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`INSERT INTO events`).
					WithArgs("Meeting", "2025-01-01", "general", 10, "").
					WillReturnError(errors.New("database error"))
			},
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, cleanup := setupEventTestRepository(t)
			defer cleanup()

			tt.setupMock(mock)

			err := repo.Create(context.Background(), tt.event)

			if tt.expectedError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedID, tt.event.ID)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestEventRepository_GetAll(t *testing.T) {
	repo, mock, cleanup := setupEventTestRepository(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT (.+) FROM events`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "datetime", "category", "points", "description"}).
			AddRow(1, "Meeting", "2025-01-01", "general", 10, "monthly").
			AddRow(2, "Hackathon", "2025-02-01", "tech", 25, nil))

	events, err := repo.GetAll(context.Background())

	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, models.Event{ID: 1, Title: "Meeting", Datetime: "2025-01-01", Category: "general", Points: 10, Description: "monthly"}, events[0])

	// NULL description scans to an empty string
	assert.Equal(t, "", events[1].Description)
	assert.Equal(t, 25, events[1].Points)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEventRepository_GetAll_Empty(t *testing.T) {
	repo, mock, cleanup := setupEventTestRepository(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT (.+) FROM events`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "datetime", "category", "points", "description"}))

	events, err := repo.GetAll(context.Background())

	assert.NoError(t, err)
	assert.Empty(t, events)
	assert.NoError(t, mock.ExpectationsWereMet())
}
