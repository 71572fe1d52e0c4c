package leave

import (
	"time"

	"github.com/attendly/attendance-backend-go/internal/pkg/validator"
)

type ApplyLeaveRequest struct {
	UserID    string    `json:"-"`
	LeaveType string    `json:"leave_type"`
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
}

func (r *ApplyLeaveRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.LeaveType) {
		errs = append(errs, validator.ValidationError{
			Field:   "leave_type",
			Message: "leave_type is required",
		})
	}

	if r.StartDate.IsZero() || r.EndDate.IsZero() {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date and end_date are required",
		})
	} else if r.EndDate.Before(r.StartDate) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must not be before start_date",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateLeaveStatusRequest struct {
	Status string `json:"status"`
}

func (r *UpdateLeaveStatusRequest) Validate() error {
	if !validator.IsInSlice(r.Status, []string{StatusApproved, StatusRejected, StatusPending}) {
		return validator.ValidationErrors{{
			Field:   "status",
			Message: "status must be pending, approved or rejected",
		}}
	}
	return nil
}

type LeaveResponse struct {
	ID        string `json:"id"`
	UserID    string `json:"user_id"`
	LeaveType string `json:"leave_type"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Status    string `json:"status"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}
