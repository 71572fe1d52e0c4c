package leave

import "context"

type LeaveService interface {
	Apply(ctx context.Context, req ApplyLeaveRequest) (string, error)
	GetMyLeaves(ctx context.Context, userID string) ([]LeaveResponse, error)
	GetAllLeaves(ctx context.Context) ([]LeaveResponse, error)
	UpdateStatus(ctx context.Context, id string, req UpdateLeaveStatusRequest) error
}
