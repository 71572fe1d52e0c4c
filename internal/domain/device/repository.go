package device

import "context"

type DeviceRepository interface {
	Create(ctx context.Context, d Device) (Device, error)
	GetByID(ctx context.Context, id string) (Device, error)
	List(ctx context.Context) ([]Device, error)
	Delete(ctx context.Context, id string) error
}
