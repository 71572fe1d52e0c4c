package setting

import "time"

// Setting is a free-text configuration entry keyed by name.
type Setting struct {
	ID           string
	SettingName  string
	SettingValue string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
