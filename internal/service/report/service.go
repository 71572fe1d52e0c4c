package report

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/attendly/attendance-backend-go/internal/domain/attendance"
	"github.com/attendly/attendance-backend-go/internal/domain/report"
	"github.com/attendly/attendance-backend-go/internal/pkg/timeutil"
	"github.com/attendly/attendance-backend-go/internal/pkg/validator"
)

// standardWorkdayMinutes is the fixed 8-hour threshold above which a clean
// day earns overtime credit. Not policy-configurable.
const standardWorkdayMinutes = 480

type ReportServiceImpl struct {
	reportRepo     report.ReportRepository
	attendanceRepo attendance.AttendanceRepository

	now func() time.Time
}

func NewReportService(
	reportRepo report.ReportRepository,
	attendanceRepo attendance.AttendanceRepository,
) report.ReportService {
	return &ReportServiceImpl{
		reportRepo:     reportRepo,
		attendanceRepo: attendanceRepo,
		now:            time.Now,
	}
}

// GenerateReport implements report.ReportService.
func (s *ReportServiceImpl) GenerateReport(ctx context.Context, req report.GenerateReportRequest) (string, error) {
	if !validator.IsValidID(req.UserID) {
		return "", report.ErrInvalidUserID
	}
	if err := req.Validate(); err != nil {
		return "", err
	}

	// At-most-one report per period: an existing report is returned as-is,
	// never recomputed.
	existing, err := s.reportRepo.GetByUserAndMonth(ctx, req.UserID, req.Month)
	if err != nil {
		return "", fmt.Errorf("failed to check existing report: %w", err)
	}
	if existing != nil {
		return existing.ID, nil
	}

	records, err := s.attendanceRepo.ListByUser(ctx, req.UserID)
	if err != nil {
		return "", fmt.Errorf("failed to list attendance: %w", err)
	}

	totalWork, totalOvertime, totalAbsences := aggregate(records, req.Month)

	created, err := s.reportRepo.Create(ctx, report.MonthlyReport{
		UserID:        req.UserID,
		Month:         req.Month,
		TotalWorkTime: totalWork,
		TotalOvertime: totalOvertime,
		TotalAbsences: totalAbsences,
		CreatedAt:     s.now().UTC(),
	})
	if err != nil {
		// A concurrent request won the (user_id, month) uniqueness race;
		// return its report to keep generation idempotent.
		if errors.Is(err, report.ErrReportExists) {
			winner, getErr := s.reportRepo.GetByUserAndMonth(ctx, req.UserID, req.Month)
			if getErr == nil && winner != nil {
				return winner.ID, nil
			}
		}
		return "", fmt.Errorf("failed to create report: %w", err)
	}

	return created.ID, nil
}

// aggregate folds a user's attendance records into the monthly totals.
// Month membership is decided on the local-time clock-in.
func aggregate(records []attendance.Attendance, month string) (totalWork, totalOvertime, totalAbsences int) {
	for _, rec := range records {
		if timeutil.MonthKey(rec.ClockIn) != month {
			continue
		}

		// An open record is an absence and contributes no minutes.
		if rec.ClockOut == nil {
			totalAbsences++
			continue
		}

		duration := int(rec.ClockOut.Sub(rec.ClockIn).Minutes())
		totalWork += duration

		// A day with any timing violation earns no overtime credit.
		if rec.IsLate || rec.IsEarlyLeave {
			continue
		}
		if duration > standardWorkdayMinutes {
			totalOvertime += duration - standardWorkdayMinutes
		}
	}
	return totalWork, totalOvertime, totalAbsences
}

// GetReportsByUser implements report.ReportService.
func (s *ReportServiceImpl) GetReportsByUser(ctx context.Context, userID string) ([]report.ReportResponse, error) {
	reports, err := s.reportRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list reports: %w", err)
	}

	responses := make([]report.ReportResponse, 0, len(reports))
	for _, r := range reports {
		responses = append(responses, mapReportToResponse(r))
	}

	return responses, nil
}

func mapReportToResponse(r report.MonthlyReport) report.ReportResponse {
	return report.ReportResponse{
		ID:            r.ID,
		UserID:        r.UserID,
		Month:         r.Month,
		TotalWorkTime: r.TotalWorkTime,
		TotalOvertime: r.TotalOvertime,
		TotalAbsences: r.TotalAbsences,
		CreatedAt:     r.CreatedAt.UTC().Format(time.RFC3339),
	}
}
