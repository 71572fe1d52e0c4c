// Package timeutil isolates the organization-local time conversions used by
// the attendance logic. All instants are stored in UTC; "same day" and
// "on time" decisions are made after converting through the single fixed
// organizational zone configured here.
package timeutil

import "time"

// Asia/Taipei has a constant +08:00 offset, so the fallback zone is
// behaviorally identical when tzdata is unavailable.
var location = mustLoad("Asia/Taipei")

func mustLoad(name string) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		return time.FixedZone("UTC+8", 8*60*60)
	}
	return loc
}

// SetLocation replaces the organizational zone. Called once at startup;
// unknown names keep the current zone.
func SetLocation(name string) error {
	loc, err := time.LoadLocation(name)
	if err != nil {
		return err
	}
	location = loc
	return nil
}

// Location returns the organizational time zone.
func Location() *time.Location {
	return location
}

// ToLocal converts a UTC instant to organizational local time.
func ToLocal(t time.Time) time.Time {
	return t.In(location)
}

// DayRangeUTC returns the UTC instants bounding the local calendar day that
// contains t: start is inclusive local midnight, end is exclusive next local
// midnight. Local midnight is not UTC midnight, so queries for "today" must
// use this range rather than a UTC date.
func DayRangeUTC(t time.Time) (start, end time.Time) {
	local := ToLocal(t)
	midnight := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, location)
	return midnight.UTC(), midnight.AddDate(0, 0, 1).UTC()
}

// LocalDay returns the local calendar date of t as "YYYY-MM-DD". Used as the
// uniqueness key for attendance records.
func LocalDay(t time.Time) string {
	return ToLocal(t).Format("2006-01-02")
}

// MonthKey returns the local calendar month of t as "YYYY-MM". Used as the
// grouping key for monthly reports.
func MonthKey(t time.Time) string {
	return ToLocal(t).Format("2006-01")
}
