package report

import "context"

// ReportService defines business logic for monthly report aggregation.
type ReportService interface {
	// GenerateReport aggregates a user's attendance for the requested local
	// month and persists the result. Generation is idempotent: a repeat
	// request for an existing period returns the stored report's identifier
	// without recomputation.
	GenerateReport(ctx context.Context, req GenerateReportRequest) (string, error)

	// GetReportsByUser returns all generated reports for a user.
	GetReportsByUser(ctx context.Context, userID string) ([]ReportResponse, error)
}
