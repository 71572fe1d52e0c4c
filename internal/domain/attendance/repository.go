package attendance

import (
	"context"
	"time"
)

// AttendanceRepository defines data access methods for attendance records.
type AttendanceRepository interface {
	// Create inserts a new attendance record. The store enforces daily
	// uniqueness on (user_id, local day); a violating insert returns
	// ErrAlreadyClockedIn.
	Create(ctx context.Context, att Attendance) (Attendance, error)

	// GetByUserAndRange returns the record whose clock_in falls within
	// [start, end), or nil when none exists. Used with the UTC bounds of a
	// local calendar day to find "today's" record.
	GetByUserAndRange(ctx context.Context, userID string, start, end time.Time) (*Attendance, error)

	// SetClockOut closes an open record. is_late is never touched.
	SetClockOut(ctx context.Context, id string, clockOut time.Time, isEarlyLeave bool) error

	// ListByUser returns all records for a user, newest clock_in first.
	ListByUser(ctx context.Context, userID string) ([]Attendance, error)
}
