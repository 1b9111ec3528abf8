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

// setupTokenTestRepository creates a user token repository with a mock database
func setupTokenTestRepository(t *testing.T) (*userTokenRepository, sqlmock.Sqlmock, func()) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	repo := NewUserTokenRepository(db)

	cleanup := func() {
		db.Close()
	}

	return repo, mock, cleanup
}

func TestUserTokenRepository_Create(t *testing.T) {
	tests := []struct {
		name          string
		userToken     *models.UserToken
		setupMock     func(sqlmock.Sqlmock)
		expectedError bool
	}{
		{
			name:      "success",
			userToken: &models.UserToken{Token: "abc123", UserID: 1},
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`INSERT INTO user_tokens`).
					WithArgs("abc123", 1).
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
		},
		{
			name:      "database error",
			userToken: &models.UserToken{Token: "abc123", UserID: 1},
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`INSERT INTO user_tokens`).
					WithArgs("abc123", 1).
					WillReturnError(errors.New("database error"))
			},
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, cleanup := setupTokenTestRepository(t)
			defer cleanup()

			tt.setupMock(mock)

			err := repo.Create(context.Background(), tt.userToken)

			if tt.expectedError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestUserTokenRepository_GetByToken(t *testing.T) {
	tests := []struct {
		name          string
		token         string
		setupMock     func(sqlmock.Sqlmock)
		expectedError error
		expectedUser  int
	}{
		{
			name:  "success",
			token: "abc123",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT (.+) FROM user_tokens`).
					WithArgs("abc123").
					WillReturnRows(sqlmock.NewRows([]string{"token", "user_id"}).
						AddRow("abc123", 1))
			},
			expectedUser: 1,
		},
		{
			name:  "unknown token",
			token: "nope",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT (.+) FROM user_tokens`).
					WithArgs("nope").
					WillReturnRows(sqlmock.NewRows([]string{"token", "user_id"}))
			},
			expectedError: ErrTokenNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, cleanup := setupTokenTestRepository(t)
			defer cleanup()

			tt.setupMock(mock)

			userToken, err := repo.GetByToken(context.Background(), tt.token)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, userToken)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedUser, userToken.UserID)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
