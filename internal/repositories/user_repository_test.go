package repositories

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/clubtrack/backend/internal/models"
	"github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// setupUserTestRepository creates a user repository with a mock database
func setupUserTestRepository(t *testing.T) (*userRepository, sqlmock.Sqlmock, func()) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	repo := NewUserRepository(db, zap.NewNop())

	cleanup := func() {
		db.Close()
	}

	return repo, mock, cleanup
}

func TestUserRepository_Create(t *testing.T) {
	tests := []struct {
		name          string
		user          *models.User
		setupMock     func(sqlmock.Sqlmock)
		expectedError error
		expectedID    int
	}{
		{
			name: "success",
			user: &models.User{
				FullName:     "Test User",
				BirthDate:    "2000-01-01",
				Phone:        "123",
				Username:     "test",
				Email:        "test@example.com",
				PasswordHash: "hashedpassword",
				Role:         models.RoleCandidate,
			},
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`INSERT INTO users`).
					WithArgs("Test User", "2000-01-01", "123", "test", "test@example.com", "hashedpassword", models.RoleCandidate, false).
					WillReturnResult(sqlmock.NewResult(1, 1))
			},
			expectedID: 1,
		},
		{
			name: "duplicate email",
			user: &models.User{
				FullName:     "Test User",
				BirthDate:    "2000-01-01",
				Phone:        "123",
				Email:        "duplicate@example.com",
				PasswordHash: "hashedpassword",
				Role:         models.RoleCandidate,
			},
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`INSERT INTO users`).
					WithArgs("Test User", "2000-01-01", "123", "", "duplicate@example.com", "hashedpassword", models.RoleCandidate, false).
					WillReturnError(&mysql.MySQLError{Number: 1062, Message: "Duplicate entry 'duplicate@example.com' for key 'email'"})
			},
			expectedError: ErrDuplicateEmail,
		},
		{
			name: "database error on insert",
			user: &models.User{
				FullName:     "Test User",
				BirthDate:    "2000-01-01",
				Phone:        "123",
				Email:        "test@example.com",
				PasswordHash: "hashedpassword",
				Role:         models.RoleCandidate,
			},
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`INSERT INTO users`).
					WithArgs("Test User", "2000-01-01", "123", "", "test@example.com", "hashedpassword", models.RoleCandidate, false).
					WillReturnError(errors.New("database error"))
			},
			expectedError: errors.New("database error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, cleanup := setupUserTestRepository(t)
			defer cleanup()

			tt.setupMock(mock)

			err := repo.Create(context.Background(), tt.user)

			if tt.expectedError != nil {
				assert.Error(t, err)
				if errors.Is(tt.expectedError, ErrDuplicateEmail) {
					assert.ErrorIs(t, err, ErrDuplicateEmail)
				}
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedID, tt.user.ID)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestUserRepository_GetByEmail(t *testing.T) {
	columns := []string{"id", "full_name", "birth_date", "phone", "username", "email", "password_hash", "role", "approved"}

	tests := []struct {
		name          string
		email         string
		setupMock     func(sqlmock.Sqlmock)
		expectedError error
		expectedUser  *models.User
	}{
		{
			name:  "success",
			email: "test@example.com",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT (.+) FROM users`).
					WithArgs("test@example.com").
					WillReturnRows(sqlmock.NewRows(columns).
						AddRow(1, "Test User", "2000-01-01", "123", "test", "test@example.com", "hash", "candidate", false))
			},
			expectedUser: &models.User{
				ID:           1,
				FullName:     "Test User",
				BirthDate:    "2000-01-01",
				Phone:        "123",
				Username:     "test",
				Email:        "test@example.com",
				PasswordHash: "hash",
				Role:         models.RoleCandidate,
				Approved:     false,
			},
		},
		{
			name:  "not found",
			email: "missing@example.com",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT (.+) FROM users`).
					WithArgs("missing@example.com").
					WillReturnRows(sqlmock.NewRows(columns))
			},
			expectedError: ErrUserNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, cleanup := setupUserTestRepository(t)
			defer cleanup()

			tt.setupMock(mock)

			user, err := repo.GetByEmail(context.Background(), tt.email)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, user)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedUser, user)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestUserRepository_GetByID(t *testing.T) {
	columns := []string{"id", "full_name", "birth_date", "phone", "username", "email", "password_hash", "role", "approved"}

	repo, mock, cleanup := setupUserTestRepository(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT (.+) FROM users`).
		WithArgs(7).
		WillReturnRows(sqlmock.NewRows(columns).
			AddRow(7, "Chair Person", "1990-05-05", "555", "chair", "chair@example.com", "hash", "chairman", true))

	user, err := repo.GetByID(context.Background(), 7)

	require.NoError(t, err)
	assert.Equal(t, 7, user.ID)
	assert.Equal(t, models.RoleChairman, user.Role)
	assert.True(t, user.Approved)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_GetAll(t *testing.T) {
	repo, mock, cleanup := setupUserTestRepository(t)
	defer cleanup()

	// the listing projection never selects the password hash column
	mock.ExpectQuery(`SELECT id, full_name, username, email, role, approved FROM users`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "full_name", "username", "email", "role", "approved"}).
			AddRow(1, "Test User", "test", "test@example.com", "candidate", false).
			AddRow(2, "Admin User", "admin", "admin@example.com", "admin", true))

	users, err := repo.GetAll(context.Background())

	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, models.UserListItem{ID: 1, FullName: "Test User", Username: "test", Email: "test@example.com", Role: models.RoleCandidate, Approved: false}, users[0])
	assert.Equal(t, models.RoleAdmin, users[1].Role)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_UpdateRoleApproved(t *testing.T) {
	adminRole := models.RoleAdmin
	approved := true

	tests := []struct {
		name      string
		role      *models.Role
		approved  *bool
		setupMock func(sqlmock.Sqlmock)
	}{
		{
			name:     "both fields",
			role:     &adminRole,
			approved: &approved,
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`UPDATE users`).
					WithArgs("admin", true, 5).
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
		},
		{
			name: "role only, approved unchanged",
			role: &adminRole,
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`UPDATE users`).
					WithArgs("admin", nil, 5).
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
		},
		{
			name: "no fields, nothing changes",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`UPDATE users`).
					WithArgs(nil, nil, 5).
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, cleanup := setupUserTestRepository(t)
			defer cleanup()

			tt.setupMock(mock)

			err := repo.UpdateRoleApproved(context.Background(), 5, tt.role, tt.approved)

			assert.NoError(t, err)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
