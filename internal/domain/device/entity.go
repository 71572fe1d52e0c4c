package device

import "time"

// Device is a registered clock-in terminal.
type Device struct {
	ID         string
	DeviceName string
	DeviceType string
	Location   *string
	IsActive   bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
