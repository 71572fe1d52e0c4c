package policy

import "context"

// PolicyService defines business logic for the attendance policy.
type PolicyService interface {
	// GetPolicy returns the configured policy; ErrPolicyNotSet when absent.
	GetPolicy(ctx context.Context) (PolicyResponse, error)

	// UpsertPolicy replaces the active policy and returns its identifier.
	UpsertPolicy(ctx context.Context, req UpsertPolicyRequest) (string, error)
}
