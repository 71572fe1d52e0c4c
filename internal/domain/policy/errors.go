package policy

import "errors"

var (
	// ErrPolicyNotSet is returned by reads of the raw policy; the attendance
	// engine never sees it because LoadOrDefault substitutes Default().
	ErrPolicyNotSet = errors.New("attendance policy has not been configured")
)
