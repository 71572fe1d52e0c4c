package postgresql

import (
	"context"
	"fmt"

	"github.com/attendly/attendance-backend-go/internal/domain/report"
	"github.com/attendly/attendance-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type reportRepository struct {
	db *database.DB
}

func NewReportRepository(db *database.DB) report.ReportRepository {
	return &reportRepository{db: db}
}

// Create implements report.ReportRepository. The unique index on
// (user_id, month) guarantees at most one report per period; a violating
// insert surfaces as ErrReportExists for the service to resolve.
func (r *reportRepository) Create(ctx context.Context, newReport report.MonthlyReport) (report.MonthlyReport, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO monthly_reports (
			user_id, month, total_work_time, total_overtime, total_absences, created_at
		) VALUES (
			$1, $2, $3, $4, $5, $6
		) RETURNING id
	`

	err := q.QueryRow(ctx, query,
		newReport.UserID,
		newReport.Month,
		newReport.TotalWorkTime,
		newReport.TotalOvertime,
		newReport.TotalAbsences,
		newReport.CreatedAt,
	).Scan(&newReport.ID)

	if err != nil {
		if isUniqueViolation(err) {
			return report.MonthlyReport{}, report.ErrReportExists
		}
		return report.MonthlyReport{}, fmt.Errorf("failed to create report: %w", err)
	}

	return newReport, nil
}

// GetByUserAndMonth implements report.ReportRepository.
func (r *reportRepository) GetByUserAndMonth(ctx context.Context, userID, month string) (*report.MonthlyReport, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, user_id, month, total_work_time, total_overtime, total_absences, created_at
		FROM monthly_reports
		WHERE user_id = $1 AND month = $2
	`

	var rep report.MonthlyReport
	err := q.QueryRow(ctx, query, userID, month).Scan(
		&rep.ID, &rep.UserID, &rep.Month,
		&rep.TotalWorkTime, &rep.TotalOvertime, &rep.TotalAbsences,
		&rep.CreatedAt,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil // No report generated for the period
		}
		return nil, fmt.Errorf("failed to get report by month: %w", err)
	}

	return &rep, nil
}

// ListByUser implements report.ReportRepository.
func (r *reportRepository) ListByUser(ctx context.Context, userID string) ([]report.MonthlyReport, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, user_id, month, total_work_time, total_overtime, total_absences, created_at
		FROM monthly_reports
		WHERE user_id = $1
	`

	rows, err := q.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list reports: %w", err)
	}
	defer rows.Close()

	var reports []report.MonthlyReport
	for rows.Next() {
		var rep report.MonthlyReport
		if err := rows.Scan(
			&rep.ID, &rep.UserID, &rep.Month,
			&rep.TotalWorkTime, &rep.TotalOvertime, &rep.TotalAbsences,
			&rep.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan report row: %w", err)
		}
		reports = append(reports, rep)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate report rows: %w", err)
	}

	return reports, nil
}
