package attendance

import (
	"context"
	"fmt"
	"time"

	"github.com/attendly/attendance-backend-go/internal/domain/attendance"
	"github.com/attendly/attendance-backend-go/internal/domain/policy"
	"github.com/attendly/attendance-backend-go/internal/pkg/timeutil"
)

type AttendanceServiceImpl struct {
	attendance.AttendanceRepository
	policyRepo policy.PolicyRepository

	// now is swapped out by tests to pin the clock.
	now func() time.Time
}

func NewAttendanceService(
	attendanceRepo attendance.AttendanceRepository,
	policyRepo policy.PolicyRepository,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		AttendanceRepository: attendanceRepo,
		policyRepo:           policyRepo,
		now:                  time.Now,
	}
}

// timePtrToString safely converts a *time.Time to an RFC3339 string in
// organizational local time.
func timePtrToString(t *time.Time) *string {
	if t == nil {
		return nil
	}
	formatted := timeutil.ToLocal(*t).Format(time.RFC3339)
	return &formatted
}

// ClockIn implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) ClockIn(ctx context.Context, req attendance.ClockInRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	nowUTC := a.now().UTC()
	nowLocal := timeutil.ToLocal(nowUTC)

	// "Today" is the local calendar day; its UTC bounds are what the store
	// is queried with, since local midnight is not UTC midnight.
	dayStart, dayEnd := timeutil.DayRangeUTC(nowUTC)

	existing, err := a.AttendanceRepository.GetByUserAndRange(ctx, req.UserID, dayStart, dayEnd)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to check today's attendance: %w", err)
	}
	if existing != nil {
		return attendance.AttendanceResponse{}, attendance.ErrAlreadyClockedIn
	}

	pol, err := policy.LoadOrDefault(ctx, a.policyRepo)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to load attendance policy: %w", err)
	}

	// Grace limit: a clock-in at exactly work_start+grace is still on time.
	graceLimit := pol.WorkStart.On(nowLocal).Add(time.Duration(pol.GracePeriodMinutes) * time.Minute)
	isLate := nowLocal.After(graceLimit)

	created, err := a.AttendanceRepository.Create(ctx, attendance.Attendance{
		UserID:       req.UserID,
		ClockIn:      nowUTC,
		ClockOut:     nil,
		IsLate:       isLate,
		IsEarlyLeave: false,
		DeviceID:     req.DeviceID,
		Location:     req.Location,
	})
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	return mapAttendanceToResponse(created), nil
}

// ClockOut implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) ClockOut(ctx context.Context, req attendance.ClockOutRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	nowUTC := a.now().UTC()
	nowLocal := timeutil.ToLocal(nowUTC)

	dayStart, dayEnd := timeutil.DayRangeUTC(nowUTC)

	record, err := a.AttendanceRepository.GetByUserAndRange(ctx, req.UserID, dayStart, dayEnd)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to find today's attendance: %w", err)
	}
	if record == nil || record.ClockOut != nil {
		return attendance.AttendanceResponse{}, attendance.ErrNotClockedIn
	}

	pol, err := policy.LoadOrDefault(ctx, a.policyRepo)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to load attendance policy: %w", err)
	}

	isEarlyLeave := nowLocal.Before(pol.WorkEnd.On(nowLocal))

	if err := a.AttendanceRepository.SetClockOut(ctx, record.ID, nowUTC, isEarlyLeave); err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to close attendance record: %w", err)
	}

	record.ClockOut = &nowUTC
	record.IsEarlyLeave = isEarlyLeave
	record.UpdatedAt = nowUTC

	return mapAttendanceToResponse(*record), nil
}

// GetMyAttendance implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) GetMyAttendance(ctx context.Context, userID string) ([]attendance.AttendanceResponse, error) {
	records, err := a.AttendanceRepository.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance: %w", err)
	}

	responses := make([]attendance.AttendanceResponse, 0, len(records))
	for _, att := range records {
		responses = append(responses, mapAttendanceToResponse(att))
	}

	return responses, nil
}

// mapAttendanceToResponse converts an Attendance entity to AttendanceResponse
func mapAttendanceToResponse(att attendance.Attendance) attendance.AttendanceResponse {
	return attendance.AttendanceResponse{
		ID:           att.ID,
		UserID:       att.UserID,
		ClockIn:      timeutil.ToLocal(att.ClockIn).Format(time.RFC3339),
		ClockOut:     timePtrToString(att.ClockOut),
		IsLate:       att.IsLate,
		IsEarlyLeave: att.IsEarlyLeave,
		DeviceID:     att.DeviceID,
		Location:     att.Location,
		CreatedAt:    att.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:    att.UpdatedAt.UTC().Format(time.RFC3339),
	}
}
