package setting

import (
	"context"
	"fmt"
	"time"

	"github.com/attendly/attendance-backend-go/internal/domain/setting"
)

type SettingServiceImpl struct {
	setting.SettingRepository
}

func NewSettingService(settingRepo setting.SettingRepository) setting.SettingService {
	return &SettingServiceImpl{
		SettingRepository: settingRepo,
	}
}

// Create implements setting.SettingService.
func (s *SettingServiceImpl) Create(ctx context.Context, req setting.CreateSettingRequest) (string, error) {
	if err := req.Validate(); err != nil {
		return "", err
	}

	created, err := s.SettingRepository.Create(ctx, setting.Setting{
		SettingName:  req.SettingName,
		SettingValue: req.SettingValue,
	})
	if err != nil {
		return "", err
	}

	return created.ID, nil
}

// GetByName implements setting.SettingService.
func (s *SettingServiceImpl) GetByName(ctx context.Context, name string) (setting.SettingResponse, error) {
	entry, err := s.SettingRepository.GetByName(ctx, name)
	if err != nil {
		return setting.SettingResponse{}, err
	}
	return mapSettingToResponse(entry), nil
}

// List implements setting.SettingService.
func (s *SettingServiceImpl) List(ctx context.Context) ([]setting.SettingResponse, error) {
	settings, err := s.SettingRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list settings: %w", err)
	}

	responses := make([]setting.SettingResponse, 0, len(settings))
	for _, entry := range settings {
		responses = append(responses, mapSettingToResponse(entry))
	}
	return responses, nil
}

// UpdateValue implements setting.SettingService.
func (s *SettingServiceImpl) UpdateValue(ctx context.Context, name string, req setting.UpdateSettingRequest) (setting.SettingResponse, error) {
	updated, err := s.SettingRepository.UpdateValue(ctx, name, req.SettingValue)
	if err != nil {
		return setting.SettingResponse{}, err
	}
	return mapSettingToResponse(updated), nil
}

// Delete implements setting.SettingService.
func (s *SettingServiceImpl) Delete(ctx context.Context, name string) error {
	return s.SettingRepository.Delete(ctx, name)
}

func mapSettingToResponse(entry setting.Setting) setting.SettingResponse {
	return setting.SettingResponse{
		ID:           entry.ID,
		SettingName:  entry.SettingName,
		SettingValue: entry.SettingValue,
		CreatedAt:    entry.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:    entry.UpdatedAt.UTC().Format(time.RFC3339),
	}
}
