package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/clubtrack/backend/internal/models"
	"github.com/go-sql-driver/mysql"
)

// mysqlForeignKeyViolation is the server error number for failed FK checks
const mysqlForeignKeyViolation = 1452

// attendanceRepository implements attendance table data access
type attendanceRepository struct {
	db *sql.DB
}

// NewAttendanceRepository creates a new attendance repository
func NewAttendanceRepository(db *sql.DB) *attendanceRepository {
	return &attendanceRepository{
		db: db,
	}
}

// Upsert inserts an attendance row or replaces the attended flag of the
// existing one. The unique key on (user_id, event_id) guarantees at most
// one row per pair; re-submission overwrites, never appends.
func (r *attendanceRepository) Upsert(ctx context.Context, attendance *models.Attendance) error {
	query := `
		INSERT INTO attendance (user_id, event_id, attended)
		VALUES (?, ?, ?)
		ON DUPLICATE KEY UPDATE attended = VALUES(attended)
	`

	if _, err := r.db.ExecContext(ctx, query, attendance.UserID, attendance.EventID, attendance.Attended); err != nil {
		var mysqlErr *mysql.MySQLError
		if errors.As(err, &mysqlErr) && mysqlErr.Number == mysqlForeignKeyViolation {
			return fmt.Errorf("%w: %s", ErrEventNotFound, mysqlErr.Message)
		}
		return fmt.Errorf("failed to save attendance: %w", err)
	}

	return nil
}

// GetByUserEvent retrieves the attendance row for a (user, event) pair
func (r *attendanceRepository) GetByUserEvent(ctx context.Context, userID, eventID int) (*models.Attendance, error) {
	query := `
		SELECT id, user_id, event_id, attended
		FROM attendance
		WHERE user_id = ? AND event_id = ?
		LIMIT 1
	`

	attendance := &models.Attendance{}
	err := r.db.QueryRowContext(ctx, query, userID, eventID).Scan(
		&attendance.ID,
		&attendance.UserID,
		&attendance.EventID,
		&attendance.Attended,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get attendance: %w", err)
	}

	return attendance, nil
}
