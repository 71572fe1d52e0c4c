package report

import (
	"github.com/attendly/attendance-backend-go/internal/pkg/validator"
)

// ========================================
// REPORT DTOs
// ========================================

type GenerateReportRequest struct {
	UserID string `json:"user_id"`
	Month  string `json:"month"` // "YYYY-MM"
}

func (r *GenerateReportRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidID(r.UserID) {
		errs = append(errs, validator.ValidationError{
			Field:   "user_id",
			Message: "user_id is not a valid identifier",
		})
	}

	if !validator.IsValidMonth(r.Month) {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month must be in YYYY-MM format",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ReportResponse struct {
	ID            string `json:"id"`
	UserID        string `json:"user_id"`
	Month         string `json:"month"`
	TotalWorkTime int    `json:"total_work_time"`
	TotalOvertime int    `json:"total_overtime"`
	TotalAbsences int    `json:"total_absences"`
	CreatedAt     string `json:"created_at"`
}
