package overtime

import "time"

const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

// Overtime is a request for extra-hours credit over an explicit window.
// TotalMinutes is derived from the window at creation time.
type Overtime struct {
	ID            string
	UserID        string
	OvertimeStart time.Time
	OvertimeEnd   time.Time
	TotalMinutes  int
	Reason        *string
	Status        string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
