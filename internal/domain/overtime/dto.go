package overtime

import (
	"time"

	"github.com/attendly/attendance-backend-go/internal/pkg/validator"
)

type ApplyOvertimeRequest struct {
	UserID        string    `json:"-"`
	OvertimeStart time.Time `json:"overtime_start"`
	OvertimeEnd   time.Time `json:"overtime_end"`
	Reason        *string   `json:"reason"`
}

func (r *ApplyOvertimeRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.OvertimeStart.IsZero() || r.OvertimeEnd.IsZero() {
		errs = append(errs, validator.ValidationError{
			Field:   "overtime_start",
			Message: "overtime_start and overtime_end are required",
		})
	} else if !r.OvertimeEnd.After(r.OvertimeStart) {
		errs = append(errs, validator.ValidationError{
			Field:   "overtime_end",
			Message: "overtime_end must be after overtime_start",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateOvertimeStatusRequest struct {
	Status string `json:"status"`
}

func (r *UpdateOvertimeStatusRequest) Validate() error {
	if !validator.IsInSlice(r.Status, []string{StatusApproved, StatusRejected, StatusPending}) {
		return validator.ValidationErrors{{
			Field:   "status",
			Message: "status must be pending, approved or rejected",
		}}
	}
	return nil
}

type OvertimeResponse struct {
	ID            string  `json:"id"`
	UserID        string  `json:"user_id"`
	OvertimeStart string  `json:"overtime_start"`
	OvertimeEnd   string  `json:"overtime_end"`
	TotalMinutes  int     `json:"total_minutes"`
	Reason        *string `json:"reason"`
	Status        string  `json:"status"`
	CreatedAt     string  `json:"created_at"`
	UpdatedAt     string  `json:"updated_at"`
}
