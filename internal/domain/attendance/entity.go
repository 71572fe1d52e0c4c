package attendance

import (
	"time"
)

// Attendance is one clock-in/clock-out record. ClockIn and ClockOut are UTC
// instants; at most one record may exist per user per local calendar day.
// A record is OPEN while ClockOut is nil and CLOSED once it is set; the
// transition happens exactly once, on clock-out.
type Attendance struct {
	ID           string
	UserID       string
	ClockIn      time.Time
	ClockOut     *time.Time
	IsLate       bool
	IsEarlyLeave bool
	DeviceID     *string
	Location     *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
