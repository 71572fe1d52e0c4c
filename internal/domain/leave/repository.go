package leave

import "context"

type LeaveRepository interface {
	Create(ctx context.Context, l Leave) (Leave, error)
	ListByUser(ctx context.Context, userID string) ([]Leave, error)
	ListAll(ctx context.Context) ([]Leave, error)
	UpdateStatus(ctx context.Context, id string, status string) error
}
