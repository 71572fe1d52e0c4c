package overtime

import (
	"context"
	"fmt"
	"time"

	"github.com/attendly/attendance-backend-go/internal/domain/overtime"
)

type OvertimeServiceImpl struct {
	overtime.OvertimeRepository
}

func NewOvertimeService(overtimeRepo overtime.OvertimeRepository) overtime.OvertimeService {
	return &OvertimeServiceImpl{
		OvertimeRepository: overtimeRepo,
	}
}

// Apply implements overtime.OvertimeService. The requested window is
// converted to whole minutes, truncating seconds.
func (s *OvertimeServiceImpl) Apply(ctx context.Context, req overtime.ApplyOvertimeRequest) (string, error) {
	if err := req.Validate(); err != nil {
		return "", err
	}

	totalMinutes := int(req.OvertimeEnd.Sub(req.OvertimeStart).Minutes())

	created, err := s.OvertimeRepository.Create(ctx, overtime.Overtime{
		UserID:        req.UserID,
		OvertimeStart: req.OvertimeStart.UTC(),
		OvertimeEnd:   req.OvertimeEnd.UTC(),
		TotalMinutes:  totalMinutes,
		Reason:        req.Reason,
		Status:        overtime.StatusPending,
	})
	if err != nil {
		return "", fmt.Errorf("failed to create overtime request: %w", err)
	}

	return created.ID, nil
}

// GetMyOvertimes implements overtime.OvertimeService.
func (s *OvertimeServiceImpl) GetMyOvertimes(ctx context.Context, userID string) ([]overtime.OvertimeResponse, error) {
	overtimes, err := s.OvertimeRepository.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list overtime requests: %w", err)
	}
	return mapOvertimes(overtimes), nil
}

// GetAllOvertimes implements overtime.OvertimeService.
func (s *OvertimeServiceImpl) GetAllOvertimes(ctx context.Context) ([]overtime.OvertimeResponse, error) {
	overtimes, err := s.OvertimeRepository.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list overtime requests: %w", err)
	}
	return mapOvertimes(overtimes), nil
}

// UpdateStatus implements overtime.OvertimeService.
func (s *OvertimeServiceImpl) UpdateStatus(ctx context.Context, id string, req overtime.UpdateOvertimeStatusRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}
	return s.OvertimeRepository.UpdateStatus(ctx, id, req.Status)
}

func mapOvertimes(overtimes []overtime.Overtime) []overtime.OvertimeResponse {
	responses := make([]overtime.OvertimeResponse, 0, len(overtimes))
	for _, o := range overtimes {
		responses = append(responses, overtime.OvertimeResponse{
			ID:            o.ID,
			UserID:        o.UserID,
			OvertimeStart: o.OvertimeStart.UTC().Format(time.RFC3339),
			OvertimeEnd:   o.OvertimeEnd.UTC().Format(time.RFC3339),
			TotalMinutes:  o.TotalMinutes,
			Reason:        o.Reason,
			Status:        o.Status,
			CreatedAt:     o.CreatedAt.UTC().Format(time.RFC3339),
			UpdatedAt:     o.UpdatedAt.UTC().Format(time.RFC3339),
		})
	}
	return responses
}
