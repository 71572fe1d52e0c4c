package policy

import (
	"github.com/attendly/attendance-backend-go/internal/pkg/validator"
)

// ========================================
// ATTENDANCE POLICY DTOs
// ========================================

type UpsertPolicyRequest struct {
	WorkStart          string `json:"work_start_time"`
	WorkEnd            string `json:"work_end_time"`
	GracePeriodMinutes int    `json:"grace_period"`
	LunchBreakMinutes  int    `json:"lunch_break_time"`
}

func (r *UpsertPolicyRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidTimeOfDay(r.WorkStart) {
		errs = append(errs, validator.ValidationError{
			Field:   "work_start_time",
			Message: "work_start_time must be HH:MM or HH:MM:SS",
		})
	}

	if !validator.IsValidTimeOfDay(r.WorkEnd) {
		errs = append(errs, validator.ValidationError{
			Field:   "work_end_time",
			Message: "work_end_time must be HH:MM or HH:MM:SS",
		})
	}

	if r.GracePeriodMinutes < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "grace_period",
			Message: "grace_period must not be negative",
		})
	}

	if r.LunchBreakMinutes < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "lunch_break_time",
			Message: "lunch_break_time must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type PolicyResponse struct {
	ID                 string `json:"id"`
	WorkStart          string `json:"work_start_time"`
	WorkEnd            string `json:"work_end_time"`
	GracePeriodMinutes int    `json:"grace_period"`
	LunchBreakMinutes  int    `json:"lunch_break_time"`
	CreatedAt          string `json:"created_at"`
	UpdatedAt          string `json:"updated_at"`
}
