package postgresql

import (
	"context"
	"fmt"

	"github.com/attendly/attendance-backend-go/internal/domain/policy"
	"github.com/attendly/attendance-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type policyRepository struct {
	db *database.DB
}

func NewPolicyRepository(db *database.DB) policy.PolicyRepository {
	return &policyRepository{db: db}
}

// Get implements policy.PolicyRepository. Wall-clock times are stored as
// "HH:MM:SS" text so the row carries no date or zone.
func (p *policyRepository) Get(ctx context.Context) (*policy.AttendancePolicy, error) {
	q := GetQuerier(ctx, p.db)

	query := `
		SELECT id, work_start_time, work_end_time, grace_period_minutes, lunch_break_minutes,
			   created_at, updated_at
		FROM attendance_policies
		LIMIT 1
	`

	var (
		pol                policy.AttendancePolicy
		workStart, workEnd string
	)
	err := q.QueryRow(ctx, query).Scan(
		&pol.ID, &workStart, &workEnd,
		&pol.GracePeriodMinutes, &pol.LunchBreakMinutes,
		&pol.CreatedAt, &pol.UpdatedAt,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil // No policy configured yet
		}
		return nil, fmt.Errorf("failed to get attendance policy: %w", err)
	}

	if pol.WorkStart, err = policy.ParseTimeOfDay(workStart); err != nil {
		return nil, fmt.Errorf("stored work_start_time is invalid: %w", err)
	}
	if pol.WorkEnd, err = policy.ParseTimeOfDay(workEnd); err != nil {
		return nil, fmt.Errorf("stored work_end_time is invalid: %w", err)
	}

	return &pol, nil
}

// Upsert implements policy.PolicyRepository. The policy is a singleton row:
// updated in place when present, inserted on first configuration. The lookup
// and write run in one transaction so concurrent upserts cannot both insert.
func (p *policyRepository) Upsert(ctx context.Context, pol policy.AttendancePolicy) (string, error) {
	var id string

	err := WithTransaction(ctx, p.db, func(tx pgx.Tx) error {
		txCtx := WithTx(ctx, tx)
		q := GetQuerier(txCtx, p.db)

		err := q.QueryRow(txCtx, `SELECT id FROM attendance_policies LIMIT 1 FOR UPDATE`).Scan(&id)
		if err != nil && err != pgx.ErrNoRows {
			return fmt.Errorf("failed to look up attendance policy: %w", err)
		}

		if err == pgx.ErrNoRows {
			insert := `
				INSERT INTO attendance_policies (
					work_start_time, work_end_time, grace_period_minutes, lunch_break_minutes
				) VALUES ($1, $2, $3, $4)
				RETURNING id
			`
			if err := q.QueryRow(txCtx, insert,
				pol.WorkStart.String(),
				pol.WorkEnd.String(),
				pol.GracePeriodMinutes,
				pol.LunchBreakMinutes,
			).Scan(&id); err != nil {
				return fmt.Errorf("failed to insert attendance policy: %w", err)
			}
			return nil
		}

		update := `
			UPDATE attendance_policies
			SET work_start_time = $2,
				work_end_time = $3,
				grace_period_minutes = $4,
				lunch_break_minutes = $5,
				updated_at = NOW()
			WHERE id = $1
		`
		if _, err := q.Exec(txCtx, update,
			id,
			pol.WorkStart.String(),
			pol.WorkEnd.String(),
			pol.GracePeriodMinutes,
			pol.LunchBreakMinutes,
		); err != nil {
			return fmt.Errorf("failed to update attendance policy: %w", err)
		}

		return nil
	})
	if err != nil {
		return "", err
	}

	return id, nil
}
