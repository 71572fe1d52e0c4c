package setting

import "context"

type SettingRepository interface {
	Create(ctx context.Context, s Setting) (Setting, error)
	GetByName(ctx context.Context, name string) (Setting, error)
	List(ctx context.Context) ([]Setting, error)
	UpdateValue(ctx context.Context, name string, value string) (Setting, error)
	Delete(ctx context.Context, name string) error
}
