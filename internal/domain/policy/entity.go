package policy

import (
	"fmt"
	"time"
)

// AttendancePolicy is the singleton configuration governing work hours.
// There is at most one active policy; it is replaced by upsert, never deleted.
type AttendancePolicy struct {
	ID                 string
	WorkStart          TimeOfDay
	WorkEnd            TimeOfDay
	GracePeriodMinutes int
	LunchBreakMinutes  int
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// Default returns the policy substituted when no policy has been configured,
// so attendance recording never blocks on missing configuration.
func Default() AttendancePolicy {
	return AttendancePolicy{
		WorkStart:          TimeOfDay{Hour: 9},
		WorkEnd:            TimeOfDay{Hour: 18},
		GracePeriodMinutes: 10,
		LunchBreakMinutes:  60,
	}
}

// TimeOfDay is a wall-clock time with no date or zone attached.
type TimeOfDay struct {
	Hour   int
	Minute int
	Second int
}

// ParseTimeOfDay accepts "15:04:05" or "15:04".
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	t, err := time.Parse("15:04:05", s)
	if err != nil {
		t, err = time.Parse("15:04", s)
	}
	if err != nil {
		return TimeOfDay{}, fmt.Errorf("invalid time of day %q", s)
	}
	return TimeOfDay{Hour: t.Hour(), Minute: t.Minute(), Second: t.Second()}, nil
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d:%02d", t.Hour, t.Minute, t.Second)
}

// On anchors the wall-clock time to the calendar day of ref, in ref's zone.
func (t TimeOfDay) On(ref time.Time) time.Time {
	return time.Date(ref.Year(), ref.Month(), ref.Day(), t.Hour, t.Minute, t.Second, 0, ref.Location())
}
