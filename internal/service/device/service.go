package device

import (
	"context"
	"fmt"
	"time"

	"github.com/attendly/attendance-backend-go/internal/domain/device"
)

type DeviceServiceImpl struct {
	device.DeviceRepository
}

func NewDeviceService(deviceRepo device.DeviceRepository) device.DeviceService {
	return &DeviceServiceImpl{
		DeviceRepository: deviceRepo,
	}
}

// Create implements device.DeviceService.
func (s *DeviceServiceImpl) Create(ctx context.Context, req device.CreateDeviceRequest) (string, error) {
	if err := req.Validate(); err != nil {
		return "", err
	}

	created, err := s.DeviceRepository.Create(ctx, device.Device{
		DeviceName: req.DeviceName,
		DeviceType: req.DeviceType,
		Location:   req.Location,
		IsActive:   true,
	})
	if err != nil {
		return "", fmt.Errorf("failed to register device: %w", err)
	}

	return created.ID, nil
}

// GetByID implements device.DeviceService.
func (s *DeviceServiceImpl) GetByID(ctx context.Context, id string) (device.DeviceResponse, error) {
	d, err := s.DeviceRepository.GetByID(ctx, id)
	if err != nil {
		return device.DeviceResponse{}, err
	}
	return mapDeviceToResponse(d), nil
}

// List implements device.DeviceService.
func (s *DeviceServiceImpl) List(ctx context.Context) ([]device.DeviceResponse, error) {
	devices, err := s.DeviceRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list devices: %w", err)
	}

	responses := make([]device.DeviceResponse, 0, len(devices))
	for _, d := range devices {
		responses = append(responses, mapDeviceToResponse(d))
	}
	return responses, nil
}

// Delete implements device.DeviceService.
func (s *DeviceServiceImpl) Delete(ctx context.Context, id string) error {
	return s.DeviceRepository.Delete(ctx, id)
}

func mapDeviceToResponse(d device.Device) device.DeviceResponse {
	return device.DeviceResponse{
		ID:         d.ID,
		DeviceName: d.DeviceName,
		DeviceType: d.DeviceType,
		Location:   d.Location,
		IsActive:   d.IsActive,
		CreatedAt:  d.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:  d.UpdatedAt.UTC().Format(time.RFC3339),
	}
}
