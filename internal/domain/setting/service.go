package setting

import "context"

type SettingService interface {
	Create(ctx context.Context, req CreateSettingRequest) (string, error)
	GetByName(ctx context.Context, name string) (SettingResponse, error)
	List(ctx context.Context) ([]SettingResponse, error)
	UpdateValue(ctx context.Context, name string, req UpdateSettingRequest) (SettingResponse, error)
	Delete(ctx context.Context, name string) error
}
