package policy

import "context"

// PolicyRepository defines data access for the singleton attendance policy.
type PolicyRepository interface {
	// Get returns the active policy, or nil when none has been configured.
	Get(ctx context.Context) (*AttendancePolicy, error)

	// Upsert replaces the active policy, creating it on first use, and
	// returns the policy row's identifier.
	Upsert(ctx context.Context, p AttendancePolicy) (string, error)
}

// LoadOrDefault resolves the active policy, substituting Default() when none
// exists. It always returns a usable value so the clock-in/clock-out decision
// logic stays total.
func LoadOrDefault(ctx context.Context, repo PolicyRepository) (AttendancePolicy, error) {
	p, err := repo.Get(ctx)
	if err != nil {
		return AttendancePolicy{}, err
	}
	if p == nil {
		return Default(), nil
	}
	return *p, nil
}
