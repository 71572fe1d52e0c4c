package report

import "context"

// ReportRepository defines data access for monthly reports.
type ReportRepository interface {
	// Create inserts a report. The store enforces uniqueness on
	// (user_id, month); a violating insert returns ErrReportExists.
	Create(ctx context.Context, r MonthlyReport) (MonthlyReport, error)

	// GetByUserAndMonth returns the report for the period, or nil when none
	// has been generated.
	GetByUserAndMonth(ctx context.Context, userID, month string) (*MonthlyReport, error)

	// ListByUser returns all reports for a user, in no guaranteed order.
	ListByUser(ctx context.Context, userID string) ([]MonthlyReport, error)
}
