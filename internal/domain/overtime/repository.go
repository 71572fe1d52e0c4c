package overtime

import "context"

type OvertimeRepository interface {
	Create(ctx context.Context, o Overtime) (Overtime, error)
	ListByUser(ctx context.Context, userID string) ([]Overtime, error)
	ListAll(ctx context.Context) ([]Overtime, error)
	UpdateStatus(ctx context.Context, id string, status string) error
}
