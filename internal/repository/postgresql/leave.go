package postgresql

import (
	"context"
	"fmt"

	"github.com/attendly/attendance-backend-go/internal/domain/leave"
	"github.com/attendly/attendance-backend-go/internal/pkg/database"
)

type leaveRepository struct {
	db *database.DB
}

func NewLeaveRepository(db *database.DB) leave.LeaveRepository {
	return &leaveRepository{db: db}
}

// Create implements leave.LeaveRepository.
func (l *leaveRepository) Create(ctx context.Context, newLeave leave.Leave) (leave.Leave, error) {
	q := GetQuerier(ctx, l.db)

	query := `
		INSERT INTO leaves (user_id, leave_type, start_date, end_date, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		newLeave.UserID,
		newLeave.LeaveType,
		newLeave.StartDate,
		newLeave.EndDate,
		newLeave.Status,
	).Scan(&newLeave.ID, &newLeave.CreatedAt, &newLeave.UpdatedAt)

	if err != nil {
		return leave.Leave{}, fmt.Errorf("failed to create leave: %w", err)
	}

	return newLeave, nil
}

// ListByUser implements leave.LeaveRepository.
func (l *leaveRepository) ListByUser(ctx context.Context, userID string) ([]leave.Leave, error) {
	return l.list(ctx, `WHERE user_id = $1`, userID)
}

// ListAll implements leave.LeaveRepository.
func (l *leaveRepository) ListAll(ctx context.Context) ([]leave.Leave, error) {
	return l.list(ctx, ``)
}

func (l *leaveRepository) list(ctx context.Context, where string, args ...interface{}) ([]leave.Leave, error) {
	q := GetQuerier(ctx, l.db)

	query := `
		SELECT id, user_id, leave_type, start_date, end_date, status, created_at, updated_at
		FROM leaves
	` + where + ` ORDER BY created_at DESC`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list leaves: %w", err)
	}
	defer rows.Close()

	var leaves []leave.Leave
	for rows.Next() {
		var lv leave.Leave
		if err := rows.Scan(
			&lv.ID, &lv.UserID, &lv.LeaveType, &lv.StartDate, &lv.EndDate,
			&lv.Status, &lv.CreatedAt, &lv.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan leave row: %w", err)
		}
		leaves = append(leaves, lv)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate leave rows: %w", err)
	}

	return leaves, nil
}

// UpdateStatus implements leave.LeaveRepository.
func (l *leaveRepository) UpdateStatus(ctx context.Context, id string, status string) error {
	q := GetQuerier(ctx, l.db)

	tag, err := q.Exec(ctx, `
		UPDATE leaves SET status = $2, updated_at = NOW() WHERE id = $1
	`, id, status)
	if err != nil {
		return fmt.Errorf("failed to update leave status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return leave.ErrLeaveNotFound
	}

	return nil
}
