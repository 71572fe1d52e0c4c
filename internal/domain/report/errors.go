package report

import "errors"

// Report domain errors
var (
	ErrInvalidUserID = errors.New("user_id is not a well-formed identifier")

	// ErrReportExists signals the storage uniqueness constraint on
	// (user_id, month); the service resolves it by returning the winner.
	ErrReportExists = errors.New("report already exists for this month")
)
