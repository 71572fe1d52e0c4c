package device

import "context"

type DeviceService interface {
	Create(ctx context.Context, req CreateDeviceRequest) (string, error)
	GetByID(ctx context.Context, id string) (DeviceResponse, error)
	List(ctx context.Context) ([]DeviceResponse, error)
	Delete(ctx context.Context, id string) error
}
