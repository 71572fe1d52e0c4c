package overtime

import "context"

type OvertimeService interface {
	Apply(ctx context.Context, req ApplyOvertimeRequest) (string, error)
	GetMyOvertimes(ctx context.Context, userID string) ([]OvertimeResponse, error)
	GetAllOvertimes(ctx context.Context) ([]OvertimeResponse, error)
	UpdateStatus(ctx context.Context, id string, req UpdateOvertimeStatusRequest) error
}
