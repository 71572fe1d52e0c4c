package postgresql

import (
	"context"
	"fmt"

	"github.com/attendly/attendance-backend-go/internal/domain/overtime"
	"github.com/attendly/attendance-backend-go/internal/pkg/database"
)

type overtimeRepository struct {
	db *database.DB
}

func NewOvertimeRepository(db *database.DB) overtime.OvertimeRepository {
	return &overtimeRepository{db: db}
}

// Create implements overtime.OvertimeRepository.
func (o *overtimeRepository) Create(ctx context.Context, newOvertime overtime.Overtime) (overtime.Overtime, error) {
	q := GetQuerier(ctx, o.db)

	query := `
		INSERT INTO overtimes (user_id, overtime_start, overtime_end, total_minutes, reason, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		newOvertime.UserID,
		newOvertime.OvertimeStart,
		newOvertime.OvertimeEnd,
		newOvertime.TotalMinutes,
		newOvertime.Reason,
		newOvertime.Status,
	).Scan(&newOvertime.ID, &newOvertime.CreatedAt, &newOvertime.UpdatedAt)

	if err != nil {
		return overtime.Overtime{}, fmt.Errorf("failed to create overtime: %w", err)
	}

	return newOvertime, nil
}

// ListByUser implements overtime.OvertimeRepository.
func (o *overtimeRepository) ListByUser(ctx context.Context, userID string) ([]overtime.Overtime, error) {
	return o.list(ctx, `WHERE user_id = $1`, userID)
}

// ListAll implements overtime.OvertimeRepository.
func (o *overtimeRepository) ListAll(ctx context.Context) ([]overtime.Overtime, error) {
	return o.list(ctx, ``)
}

func (o *overtimeRepository) list(ctx context.Context, where string, args ...interface{}) ([]overtime.Overtime, error) {
	q := GetQuerier(ctx, o.db)

	query := `
		SELECT id, user_id, overtime_start, overtime_end, total_minutes, reason, status, created_at, updated_at
		FROM overtimes
	` + where + ` ORDER BY created_at DESC`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list overtimes: %w", err)
	}
	defer rows.Close()

	var overtimes []overtime.Overtime
	for rows.Next() {
		var ot overtime.Overtime
		if err := rows.Scan(
			&ot.ID, &ot.UserID, &ot.OvertimeStart, &ot.OvertimeEnd,
			&ot.TotalMinutes, &ot.Reason, &ot.Status, &ot.CreatedAt, &ot.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan overtime row: %w", err)
		}
		overtimes = append(overtimes, ot)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate overtime rows: %w", err)
	}

	return overtimes, nil
}

// UpdateStatus implements overtime.OvertimeRepository.
func (o *overtimeRepository) UpdateStatus(ctx context.Context, id string, status string) error {
	q := GetQuerier(ctx, o.db)

	tag, err := q.Exec(ctx, `
		UPDATE overtimes SET status = $2, updated_at = NOW() WHERE id = $1
	`, id, status)
	if err != nil {
		return fmt.Errorf("failed to update overtime status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return overtime.ErrOvertimeNotFound
	}

	return nil
}
