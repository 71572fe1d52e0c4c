package report

import "time"

// MonthlyReport is the aggregation of one user's attendance over one local
// calendar month. At most one report exists per (user_id, month); once
// created it is immutable and regenerating the month returns it unchanged.
type MonthlyReport struct {
	ID            string
	UserID        string
	Month         string // "YYYY-MM", local calendar
	TotalWorkTime int    // minutes
	TotalOvertime int    // minutes
	TotalAbsences int
	CreatedAt     time.Time
}
