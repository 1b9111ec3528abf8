package services

import (
	"context"
	"errors"

	"github.com/clubtrack/backend/internal/models"
)

// ErrEventIDRequired is returned when an attendance submission omits the event
var ErrEventIDRequired = errors.New("event_id is required")

// AttendanceRepository is the interface that wraps methods for attendance table data access
type AttendanceRepository interface {
	// Method Upsert inserts an attendance row or overwrites the attended
	// flag of the existing (user, event) row.
	Upsert(ctx context.Context, attendance *models.Attendance) error
}

// attendanceService implements attendance recording
type attendanceService struct {
	attendanceRepo AttendanceRepository
}

// NewAttendanceService creates a new attendance service
func NewAttendanceService(attendanceRepo AttendanceRepository) *attendanceService {
	return &attendanceService{
		attendanceRepo: attendanceRepo,
	}
}

// Record upserts the attendance flag for the calling user and the given
// event. Submitting twice for the same pair keeps a single row with the
// latest attended value.
func (s *attendanceService) Record(ctx context.Context, userID int, req *models.AttendanceRequest) error {
	if req.EventID <= 0 {
		return ErrEventIDRequired
	}

	return s.attendanceRepo.Upsert(ctx, &models.Attendance{
		UserID:   userID,
		EventID:  req.EventID,
		Attended: req.Attended,
	})
}
