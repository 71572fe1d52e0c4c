package attendance

import (
	"context"
)

// AttendanceService defines business logic for clock-in/clock-out tracking.
type AttendanceService interface {
	// ClockIn records the start of today's attendance. The late flag is
	// computed against the active policy at creation time and never changes.
	// A second clock-in within the same local day fails with
	// ErrAlreadyClockedIn.
	ClockIn(ctx context.Context, req ClockInRequest) (AttendanceResponse, error)

	// ClockOut closes today's open record, computing the early-leave flag.
	// Fails with ErrNotClockedIn when there is no open record today.
	ClockOut(ctx context.Context, req ClockOutRequest) (AttendanceResponse, error)

	// GetMyAttendance returns the caller's records, newest first.
	GetMyAttendance(ctx context.Context, userID string) ([]AttendanceResponse, error)
}
