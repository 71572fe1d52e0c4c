package leave

import (
	"context"
	"fmt"
	"time"

	"github.com/attendly/attendance-backend-go/internal/domain/leave"
)

type LeaveServiceImpl struct {
	leave.LeaveRepository
}

func NewLeaveService(leaveRepo leave.LeaveRepository) leave.LeaveService {
	return &LeaveServiceImpl{
		LeaveRepository: leaveRepo,
	}
}

// Apply implements leave.LeaveService.
func (s *LeaveServiceImpl) Apply(ctx context.Context, req leave.ApplyLeaveRequest) (string, error) {
	if err := req.Validate(); err != nil {
		return "", err
	}

	created, err := s.LeaveRepository.Create(ctx, leave.Leave{
		UserID:    req.UserID,
		LeaveType: req.LeaveType,
		StartDate: req.StartDate.UTC(),
		EndDate:   req.EndDate.UTC(),
		Status:    leave.StatusPending,
	})
	if err != nil {
		return "", fmt.Errorf("failed to create leave request: %w", err)
	}

	return created.ID, nil
}

// GetMyLeaves implements leave.LeaveService.
func (s *LeaveServiceImpl) GetMyLeaves(ctx context.Context, userID string) ([]leave.LeaveResponse, error) {
	leaves, err := s.LeaveRepository.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave requests: %w", err)
	}
	return mapLeaves(leaves), nil
}

// GetAllLeaves implements leave.LeaveService.
func (s *LeaveServiceImpl) GetAllLeaves(ctx context.Context) ([]leave.LeaveResponse, error) {
	leaves, err := s.LeaveRepository.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave requests: %w", err)
	}
	return mapLeaves(leaves), nil
}

// UpdateStatus implements leave.LeaveService.
func (s *LeaveServiceImpl) UpdateStatus(ctx context.Context, id string, req leave.UpdateLeaveStatusRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}
	return s.LeaveRepository.UpdateStatus(ctx, id, req.Status)
}

func mapLeaves(leaves []leave.Leave) []leave.LeaveResponse {
	responses := make([]leave.LeaveResponse, 0, len(leaves))
	for _, l := range leaves {
		responses = append(responses, leave.LeaveResponse{
			ID:        l.ID,
			UserID:    l.UserID,
			LeaveType: l.LeaveType,
			StartDate: l.StartDate.UTC().Format(time.RFC3339),
			EndDate:   l.EndDate.UTC().Format(time.RFC3339),
			Status:    l.Status,
			CreatedAt: l.CreatedAt.UTC().Format(time.RFC3339),
			UpdatedAt: l.UpdatedAt.UTC().Format(time.RFC3339),
		})
	}
	return responses
}
