package policy

import (
	"context"
	"fmt"
	"time"

	"github.com/attendly/attendance-backend-go/internal/domain/policy"
)

type PolicyServiceImpl struct {
	policy.PolicyRepository
}

func NewPolicyService(policyRepo policy.PolicyRepository) policy.PolicyService {
	return &PolicyServiceImpl{
		PolicyRepository: policyRepo,
	}
}

// GetPolicy implements policy.PolicyService.
func (s *PolicyServiceImpl) GetPolicy(ctx context.Context) (policy.PolicyResponse, error) {
	p, err := s.PolicyRepository.Get(ctx)
	if err != nil {
		return policy.PolicyResponse{}, fmt.Errorf("failed to load policy: %w", err)
	}
	if p == nil {
		return policy.PolicyResponse{}, policy.ErrPolicyNotSet
	}

	return policy.PolicyResponse{
		ID:                 p.ID,
		WorkStart:          p.WorkStart.String(),
		WorkEnd:            p.WorkEnd.String(),
		GracePeriodMinutes: p.GracePeriodMinutes,
		LunchBreakMinutes:  p.LunchBreakMinutes,
		CreatedAt:          p.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:          p.UpdatedAt.UTC().Format(time.RFC3339),
	}, nil
}

// UpsertPolicy implements policy.PolicyService.
func (s *PolicyServiceImpl) UpsertPolicy(ctx context.Context, req policy.UpsertPolicyRequest) (string, error) {
	if err := req.Validate(); err != nil {
		return "", err
	}

	workStart, err := policy.ParseTimeOfDay(req.WorkStart)
	if err != nil {
		return "", fmt.Errorf("invalid work_start_time: %w", err)
	}
	workEnd, err := policy.ParseTimeOfDay(req.WorkEnd)
	if err != nil {
		return "", fmt.Errorf("invalid work_end_time: %w", err)
	}

	id, err := s.PolicyRepository.Upsert(ctx, policy.AttendancePolicy{
		WorkStart:          workStart,
		WorkEnd:            workEnd,
		GracePeriodMinutes: req.GracePeriodMinutes,
		LunchBreakMinutes:  req.LunchBreakMinutes,
	})
	if err != nil {
		return "", fmt.Errorf("failed to upsert policy: %w", err)
	}

	return id, nil
}
