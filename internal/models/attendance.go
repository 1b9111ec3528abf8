package models

// Attendance records whether a user attended an event.
// At most one row exists per (user, event) pair.
type Attendance struct {
	ID       int  `json:"id"`
	UserID   int  `json:"user_id"`
	EventID  int  `json:"event_id"`
	Attended bool `json:"attended"`
}

// AttendanceRequest represents an attendance submission
type AttendanceRequest struct {
	EventID  int  `json:"event_id"`
	Attended bool `json:"attended"`
}
