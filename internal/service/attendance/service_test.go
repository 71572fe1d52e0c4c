package attendance

import (
	"context"
	"testing"
	"time"

	"github.com/attendly/attendance-backend-go/internal/domain/attendance"
	"github.com/attendly/attendance-backend-go/internal/domain/policy"
	"github.com/attendly/attendance-backend-go/internal/pkg/timeutil"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ===== IN-MEMORY FAKES =====

type fakeAttendanceRepo struct {
	records []attendance.Attendance
}

func (f *fakeAttendanceRepo) Create(ctx context.Context, att attendance.Attendance) (attendance.Attendance, error) {
	att.ID = uuid.NewString()
	att.CreatedAt = att.ClockIn
	att.UpdatedAt = att.ClockIn
	f.records = append(f.records, att)
	return att, nil
}

func (f *fakeAttendanceRepo) GetByUserAndRange(ctx context.Context, userID string, start, end time.Time) (*attendance.Attendance, error) {
	for i := range f.records {
		rec := &f.records[i]
		if rec.UserID != userID {
			continue
		}
		if !rec.ClockIn.Before(start) && rec.ClockIn.Before(end) {
			cp := *rec
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeAttendanceRepo) SetClockOut(ctx context.Context, id string, clockOut time.Time, isEarlyLeave bool) error {
	for i := range f.records {
		if f.records[i].ID == id {
			f.records[i].ClockOut = &clockOut
			f.records[i].IsEarlyLeave = isEarlyLeave
			f.records[i].UpdatedAt = clockOut
			return nil
		}
	}
	return attendance.ErrAttendanceNotFound
}

func (f *fakeAttendanceRepo) ListByUser(ctx context.Context, userID string) ([]attendance.Attendance, error) {
	var out []attendance.Attendance
	for _, rec := range f.records {
		if rec.UserID == userID {
			out = append(out, rec)
		}
	}
	return out, nil
}

type fakePolicyRepo struct {
	pol *policy.AttendancePolicy
}

func (f *fakePolicyRepo) Get(ctx context.Context) (*policy.AttendancePolicy, error) {
	return f.pol, nil
}

func (f *fakePolicyRepo) Upsert(ctx context.Context, pol policy.AttendancePolicy) (string, error) {
	f.pol = &pol
	return "policy-id", nil
}

// ===== HELPERS =====

func newTestService(pol *policy.AttendancePolicy, at time.Time) (*AttendanceServiceImpl, *fakeAttendanceRepo) {
	repo := &fakeAttendanceRepo{}
	svc := NewAttendanceService(repo, &fakePolicyRepo{pol: pol}).(*AttendanceServiceImpl)
	svc.now = func() time.Time { return at }
	return svc, repo
}

// localTime builds an instant on a fixed date in the organizational zone.
func localTime(hour, min, sec int) time.Time {
	return time.Date(2025, 3, 10, hour, min, sec, 0, timeutil.Location())
}

const testUserID = "c1f9f6cc-2b54-4f7a-9f39-8f2a4a1f4c01"

// ===== CLOCK IN =====

func TestClockIn_OnTimeAtExactGraceLimit(t *testing.T) {
	ctx := context.Background()

	// Default policy: work starts 09:00, grace 10 minutes.
	svc, _ := newTestService(nil, localTime(9, 10, 0))

	result, err := svc.ClockIn(ctx, attendance.ClockInRequest{UserID: testUserID})
	require.NoError(t, err)
	assert.False(t, result.IsLate, "clock-in at exactly work_start+grace is on time")
	assert.False(t, result.IsEarlyLeave)
	assert.Nil(t, result.ClockOut)
}

func TestClockIn_LateOneSecondPastGrace(t *testing.T) {
	ctx := context.Background()

	svc, _ := newTestService(nil, localTime(9, 10, 1))

	result, err := svc.ClockIn(ctx, attendance.ClockInRequest{UserID: testUserID})
	require.NoError(t, err)
	assert.True(t, result.IsLate)
}

func TestClockIn_DuplicateSameDayRejected(t *testing.T) {
	ctx := context.Background()

	svc, _ := newTestService(nil, localTime(8, 55, 0))

	_, err := svc.ClockIn(ctx, attendance.ClockInRequest{UserID: testUserID})
	require.NoError(t, err)

	svc.now = func() time.Time { return localTime(13, 0, 0) }
	_, err = svc.ClockIn(ctx, attendance.ClockInRequest{UserID: testUserID})
	assert.ErrorIs(t, err, attendance.ErrAlreadyClockedIn)
}

func TestClockIn_NextLocalDayAllowed(t *testing.T) {
	ctx := context.Background()

	svc, repo := newTestService(nil, localTime(23, 50, 0))

	_, err := svc.ClockIn(ctx, attendance.ClockInRequest{UserID: testUserID})
	require.NoError(t, err)

	// Fifteen minutes later it is a new local day, so a fresh record opens.
	svc.now = func() time.Time { return localTime(23, 50, 0).Add(15 * time.Minute) }
	result, err := svc.ClockIn(ctx, attendance.ClockInRequest{UserID: testUserID})
	require.NoError(t, err)
	assert.True(t, result.IsLate, "00:05 is past the morning grace limit")
	assert.Len(t, repo.records, 2)
}

func TestClockIn_CustomPolicyZeroGrace(t *testing.T) {
	ctx := context.Background()

	pol := &policy.AttendancePolicy{
		WorkStart:          policy.TimeOfDay{Hour: 8},
		WorkEnd:            policy.TimeOfDay{Hour: 17},
		GracePeriodMinutes: 0,
	}

	svc, _ := newTestService(pol, localTime(8, 0, 0))
	result, err := svc.ClockIn(ctx, attendance.ClockInRequest{UserID: testUserID})
	require.NoError(t, err)
	assert.False(t, result.IsLate)

	svc2, _ := newTestService(pol, localTime(8, 0, 1))
	result, err = svc2.ClockIn(ctx, attendance.ClockInRequest{UserID: testUserID})
	require.NoError(t, err)
	assert.True(t, result.IsLate)
}

func TestClockIn_MissingUserID(t *testing.T) {
	ctx := context.Background()

	svc, _ := newTestService(nil, localTime(9, 0, 0))

	_, err := svc.ClockIn(ctx, attendance.ClockInRequest{})
	assert.Error(t, err)
}

// ===== CLOCK OUT =====

func TestClockOut_WithoutClockIn(t *testing.T) {
	ctx := context.Background()

	svc, _ := newTestService(nil, localTime(18, 0, 0))

	_, err := svc.ClockOut(ctx, attendance.ClockOutRequest{UserID: testUserID})
	assert.ErrorIs(t, err, attendance.ErrNotClockedIn)
}

func TestClockOut_EarlyLeaveBeforeWorkEnd(t *testing.T) {
	ctx := context.Background()

	svc, _ := newTestService(nil, localTime(9, 0, 0))
	_, err := svc.ClockIn(ctx, attendance.ClockInRequest{UserID: testUserID})
	require.NoError(t, err)

	svc.now = func() time.Time { return localTime(17, 59, 59) }
	result, err := svc.ClockOut(ctx, attendance.ClockOutRequest{UserID: testUserID})
	require.NoError(t, err)
	assert.True(t, result.IsEarlyLeave)
	require.NotNil(t, result.ClockOut)
}

func TestClockOut_AtWorkEndNotEarly(t *testing.T) {
	ctx := context.Background()

	svc, _ := newTestService(nil, localTime(9, 0, 0))
	_, err := svc.ClockIn(ctx, attendance.ClockInRequest{UserID: testUserID})
	require.NoError(t, err)

	svc.now = func() time.Time { return localTime(18, 0, 0) }
	result, err := svc.ClockOut(ctx, attendance.ClockOutRequest{UserID: testUserID})
	require.NoError(t, err)
	assert.False(t, result.IsEarlyLeave)
}

func TestClockOut_TwiceRejected(t *testing.T) {
	ctx := context.Background()

	svc, _ := newTestService(nil, localTime(9, 0, 0))
	_, err := svc.ClockIn(ctx, attendance.ClockInRequest{UserID: testUserID})
	require.NoError(t, err)

	svc.now = func() time.Time { return localTime(18, 30, 0) }
	_, err = svc.ClockOut(ctx, attendance.ClockOutRequest{UserID: testUserID})
	require.NoError(t, err)

	_, err = svc.ClockOut(ctx, attendance.ClockOutRequest{UserID: testUserID})
	assert.ErrorIs(t, err, attendance.ErrNotClockedIn)
}

func TestClockOut_LateFlagSurvivesClockOut(t *testing.T) {
	ctx := context.Background()

	svc, _ := newTestService(nil, localTime(10, 30, 0))
	in, err := svc.ClockIn(ctx, attendance.ClockInRequest{UserID: testUserID})
	require.NoError(t, err)
	require.True(t, in.IsLate)

	svc.now = func() time.Time { return localTime(19, 0, 0) }
	out, err := svc.ClockOut(ctx, attendance.ClockOutRequest{UserID: testUserID})
	require.NoError(t, err)
	assert.True(t, out.IsLate)
	assert.False(t, out.IsEarlyLeave)
}

// ===== LISTING =====

func TestGetMyAttendance_ReturnsOnlyOwnRecords(t *testing.T) {
	ctx := context.Background()
	otherUser := "7f3f3f60-96cd-4f0f-8f6d-0f6a25d28f02"

	svc, _ := newTestService(nil, localTime(9, 0, 0))
	_, err := svc.ClockIn(ctx, attendance.ClockInRequest{UserID: testUserID})
	require.NoError(t, err)
	_, err = svc.ClockIn(ctx, attendance.ClockInRequest{UserID: otherUser})
	require.NoError(t, err)

	results, err := svc.GetMyAttendance(ctx, testUserID)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, testUserID, results[0].UserID)
}
