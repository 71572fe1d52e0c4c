package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/attendly/attendance-backend-go/internal/domain/attendance"
	"github.com/attendly/attendance-backend-go/internal/pkg/database"
	"github.com/attendly/attendance-backend-go/internal/pkg/timeutil"
	"github.com/jackc/pgx/v5"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}

// Create implements attendance.AttendanceRepository. The local_day column is
// derived here from clock_in; the unique index on (user_id, local_day) is
// what makes daily uniqueness hold under concurrent clock-ins.
func (a *attendanceRepository) Create(ctx context.Context, newAttendance attendance.Attendance) (attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		INSERT INTO attendances (
			user_id, clock_in, clock_out, local_day,
			is_late, is_early_leave, device_id, location
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8
		) RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		newAttendance.UserID,
		newAttendance.ClockIn,
		newAttendance.ClockOut,
		timeutil.LocalDay(newAttendance.ClockIn),
		newAttendance.IsLate,
		newAttendance.IsEarlyLeave,
		newAttendance.DeviceID,
		newAttendance.Location,
	).Scan(&newAttendance.ID, &newAttendance.CreatedAt, &newAttendance.UpdatedAt)

	if err != nil {
		if isUniqueViolation(err) {
			return attendance.Attendance{}, attendance.ErrAlreadyClockedIn
		}
		return attendance.Attendance{}, fmt.Errorf("failed to create attendance: %w", err)
	}

	return newAttendance, nil
}

// GetByUserAndRange implements attendance.AttendanceRepository.
func (a *attendanceRepository) GetByUserAndRange(ctx context.Context, userID string, start, end time.Time) (*attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT id, user_id, clock_in, clock_out,
			   is_late, is_early_leave, device_id, location,
			   created_at, updated_at
		FROM attendances
		WHERE user_id = $1
		  AND clock_in >= $2
		  AND clock_in < $3
		LIMIT 1
	`

	var att attendance.Attendance
	err := q.QueryRow(ctx, query, userID, start, end).Scan(
		&att.ID, &att.UserID, &att.ClockIn, &att.ClockOut,
		&att.IsLate, &att.IsEarlyLeave, &att.DeviceID, &att.Location,
		&att.CreatedAt, &att.UpdatedAt,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil // No attendance in the range
		}
		return nil, fmt.Errorf("failed to get attendance by range: %w", err)
	}

	return &att, nil
}

// SetClockOut implements attendance.AttendanceRepository.
func (a *attendanceRepository) SetClockOut(ctx context.Context, id string, clockOut time.Time, isEarlyLeave bool) error {
	q := GetQuerier(ctx, a.db)

	query := `
		UPDATE attendances
		SET clock_out = $2,
			is_early_leave = $3,
			updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query, id, clockOut, isEarlyLeave)
	if err != nil {
		return fmt.Errorf("failed to set clock out: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrAttendanceNotFound
	}

	return nil
}

// ListByUser implements attendance.AttendanceRepository.
func (a *attendanceRepository) ListByUser(ctx context.Context, userID string) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT id, user_id, clock_in, clock_out,
			   is_late, is_early_leave, device_id, location,
			   created_at, updated_at
		FROM attendances
		WHERE user_id = $1
		ORDER BY clock_in DESC
	`

	rows, err := q.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance: %w", err)
	}
	defer rows.Close()

	var records []attendance.Attendance
	for rows.Next() {
		var att attendance.Attendance
		if err := rows.Scan(
			&att.ID, &att.UserID, &att.ClockIn, &att.ClockOut,
			&att.IsLate, &att.IsEarlyLeave, &att.DeviceID, &att.Location,
			&att.CreatedAt, &att.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan attendance row: %w", err)
		}
		records = append(records, att)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate attendance rows: %w", err)
	}

	return records, nil
}
