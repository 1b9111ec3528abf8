package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/clubtrack/backend/internal/models"
	"github.com/go-sql-driver/mysql"
	"go.uber.org/zap"
)

// mysqlDuplicateEntry is the server error number for unique key violations
const mysqlDuplicateEntry = 1062

// userRepository implements user table data access
type userRepository struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *sql.DB, logger *zap.Logger) *userRepository {
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// Create inserts a new user into the database. A unique key violation on
// email is reported as ErrDuplicateEmail; two concurrent registrations with
// the same address race down to one winner here.
func (r *userRepository) Create(ctx context.Context, user *models.User) error {
	query := `
		INSERT INTO users (full_name, birth_date, phone, username, email, password_hash, role, approved)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`

	result, err := r.db.ExecContext(ctx, query,
		user.FullName,
		user.BirthDate,
		user.Phone,
		user.Username,
		user.Email,
		user.PasswordHash,
		user.Role,
		user.Approved,
	)
	if err != nil {
		var mysqlErr *mysql.MySQLError
		if errors.As(err, &mysqlErr) && mysqlErr.Number == mysqlDuplicateEntry {
			return fmt.Errorf("%w: %s", ErrDuplicateEmail, mysqlErr.Message)
		}
		r.logger.Error("failed to create user", zap.Error(err))
		return fmt.Errorf("failed to create user: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		r.logger.Error("failed to get last insert id", zap.Error(err))
		return fmt.Errorf("failed to get last insert id: %w", err)
	}

	user.ID = int(id)
	return nil
}

// GetByEmail retrieves a user by email
func (r *userRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	query := `
		SELECT id, full_name, birth_date, phone, username, email, password_hash, role, approved
		FROM users
		WHERE email = ?
		LIMIT 1
	`

	user := &models.User{}
	err := r.db.QueryRowContext(ctx, query, email).Scan(
		&user.ID,
		&user.FullName,
		&user.BirthDate,
		&user.Phone,
		&user.Username,
		&user.Email,
		&user.PasswordHash,
		&user.Role,
		&user.Approved,
	)

	if err == sql.ErrNoRows {
		return nil, ErrUserNotFound
	}
	if err != nil {
		r.logger.Error("failed to get user by email", zap.Error(err), zap.String("email", email))
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}

	return user, nil
}

// GetByID retrieves a user by ID
func (r *userRepository) GetByID(ctx context.Context, userID int) (*models.User, error) {
	query := `
		SELECT id, full_name, birth_date, phone, username, email, password_hash, role, approved
		FROM users
		WHERE id = ?
		LIMIT 1
	`

	user := &models.User{}
	err := r.db.QueryRowContext(ctx, query, userID).Scan(
		&user.ID,
		&user.FullName,
		&user.BirthDate,
		&user.Phone,
		&user.Username,
		&user.Email,
		&user.PasswordHash,
		&user.Role,
		&user.Approved,
	)

	if err == sql.ErrNoRows {
		return nil, ErrUserNotFound
	}
	if err != nil {
		r.logger.Error("failed to get user by id", zap.Error(err), zap.Int("userID", userID))
		return nil, fmt.Errorf("failed to get user by id: %w", err)
	}

	return user, nil
}

// GetAll retrieves every user as a listing projection. The password hash
// column is never selected here.
func (r *userRepository) GetAll(ctx context.Context) ([]models.UserListItem, error) {
	query := `
		SELECT id, full_name, username, email, role, approved
		FROM users
		ORDER BY id
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		r.logger.Error("failed to query users", zap.Error(err))
		return nil, fmt.Errorf("failed to query users: %w", err)
	}
	defer rows.Close()

	var users []models.UserListItem
	for rows.Next() {
		var user models.UserListItem
		if err := rows.Scan(&user.ID, &user.FullName, &user.Username, &user.Email, &user.Role, &user.Approved); err != nil {
			r.logger.Error("failed to scan user", zap.Error(err))
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, user)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error("error iterating rows", zap.Error(err))
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return users, nil
}

// UpdateRoleApproved updates the role and/or approved flag of a user.
// Nil fields are left unchanged via COALESCE. Updating a nonexistent user
// affects zero rows and is not an error.
func (r *userRepository) UpdateRoleApproved(ctx context.Context, userID int, role *models.Role, approved *bool) error {
	query := `
		UPDATE users
		SET role = COALESCE(?, role), approved = COALESCE(?, approved)
		WHERE id = ?
	`

	if _, err := r.db.ExecContext(ctx, query, role, approved, userID); err != nil {
		r.logger.Error("failed to update user role", zap.Error(err), zap.Int("userID", userID))
		return fmt.Errorf("failed to update user role: %w", err)
	}

	return nil
}
