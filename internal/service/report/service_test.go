package report

import (
	"context"
	"testing"
	"time"

	"github.com/attendly/attendance-backend-go/internal/domain/attendance"
	"github.com/attendly/attendance-backend-go/internal/domain/report"
	"github.com/attendly/attendance-backend-go/internal/pkg/timeutil"
	"github.com/attendly/attendance-backend-go/internal/pkg/validator"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ===== IN-MEMORY FAKES =====

type fakeReportRepo struct {
	reports []report.MonthlyReport
}

func (f *fakeReportRepo) Create(ctx context.Context, rep report.MonthlyReport) (report.MonthlyReport, error) {
	for _, existing := range f.reports {
		if existing.UserID == rep.UserID && existing.Month == rep.Month {
			return report.MonthlyReport{}, report.ErrReportExists
		}
	}
	rep.ID = uuid.NewString()
	f.reports = append(f.reports, rep)
	return rep, nil
}

func (f *fakeReportRepo) GetByUserAndMonth(ctx context.Context, userID, month string) (*report.MonthlyReport, error) {
	for i := range f.reports {
		if f.reports[i].UserID == userID && f.reports[i].Month == month {
			cp := f.reports[i]
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeReportRepo) ListByUser(ctx context.Context, userID string) ([]report.MonthlyReport, error) {
	var out []report.MonthlyReport
	for _, rep := range f.reports {
		if rep.UserID == userID {
			out = append(out, rep)
		}
	}
	return out, nil
}

type stubAttendanceRepo struct {
	records []attendance.Attendance
}

func (s *stubAttendanceRepo) Create(ctx context.Context, att attendance.Attendance) (attendance.Attendance, error) {
	s.records = append(s.records, att)
	return att, nil
}

func (s *stubAttendanceRepo) GetByUserAndRange(ctx context.Context, userID string, start, end time.Time) (*attendance.Attendance, error) {
	return nil, nil
}

func (s *stubAttendanceRepo) SetClockOut(ctx context.Context, id string, clockOut time.Time, isEarlyLeave bool) error {
	return nil
}

func (s *stubAttendanceRepo) ListByUser(ctx context.Context, userID string) ([]attendance.Attendance, error) {
	return s.records, nil
}

// ===== HELPERS =====

const reportUserID = "3d9a9c7e-5a1d-46a5-8b30-1f6f2b8a9c03"

// day builds a closed attendance record spanning workedMinutes on the given
// local date.
func day(dayOfMonth int, workedMinutes int, isLate, isEarlyLeave bool) attendance.Attendance {
	clockIn := time.Date(2025, 3, dayOfMonth, 9, 0, 0, 0, timeutil.Location()).UTC()
	clockOut := clockIn.Add(time.Duration(workedMinutes) * time.Minute)
	return attendance.Attendance{
		ID:           uuid.NewString(),
		UserID:       reportUserID,
		ClockIn:      clockIn,
		ClockOut:     &clockOut,
		IsLate:       isLate,
		IsEarlyLeave: isEarlyLeave,
	}
}

// openDay builds a record with no clock-out.
func openDay(dayOfMonth int) attendance.Attendance {
	clockIn := time.Date(2025, 3, dayOfMonth, 9, 0, 0, 0, timeutil.Location()).UTC()
	return attendance.Attendance{
		ID:      uuid.NewString(),
		UserID:  reportUserID,
		ClockIn: clockIn,
	}
}

func newTestService(records ...attendance.Attendance) (report.ReportService, *fakeReportRepo) {
	repRepo := &fakeReportRepo{}
	attRepo := &stubAttendanceRepo{records: records}
	return NewReportService(repRepo, attRepo), repRepo
}

// ===== VALIDATION =====

func TestGenerateReport_RejectsInvalidUserID(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService()

	_, err := svc.GenerateReport(ctx, report.GenerateReportRequest{
		UserID: "not-a-uuid",
		Month:  "2025-03",
	})
	assert.ErrorIs(t, err, report.ErrInvalidUserID)
}

func TestGenerateReport_RejectsInvalidMonth(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService()

	_, err := svc.GenerateReport(ctx, report.GenerateReportRequest{
		UserID: reportUserID,
		Month:  "March 2025",
	})

	var validationErrs validator.ValidationErrors
	assert.ErrorAs(t, err, &validationErrs)
}

// ===== AGGREGATION =====

func TestGenerateReport_AggregatesMonth(t *testing.T) {
	ctx := context.Background()

	svc, repRepo := newTestService(
		day(3, 605, false, false), // clean 10h05m: 125 overtime minutes
		day(4, 600, true, false),  // late 10h: no overtime credit
		day(5, 540, false, true),  // early leave 9h: no overtime credit
		openDay(6),                // never clocked out: absence
		day(7, 480, false, false), // exactly 8h: no overtime
	)

	id, err := svc.GenerateReport(ctx, report.GenerateReportRequest{
		UserID: reportUserID,
		Month:  "2025-03",
	})
	require.NoError(t, err)
	require.NotEmpty(t, id)

	stored, err := repRepo.GetByUserAndMonth(ctx, reportUserID, "2025-03")
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, 605+600+540+480, stored.TotalWorkTime)
	assert.Equal(t, 125, stored.TotalOvertime)
	assert.Equal(t, 1, stored.TotalAbsences)
}

func TestGenerateReport_IgnoresOtherMonths(t *testing.T) {
	ctx := context.Background()

	february := day(3, 600, false, false)
	february.ClockIn = time.Date(2025, 2, 3, 9, 0, 0, 0, timeutil.Location()).UTC()
	clockOut := february.ClockIn.Add(600 * time.Minute)
	february.ClockOut = &clockOut

	svc, repRepo := newTestService(
		february,
		day(10, 480, false, false),
	)

	_, err := svc.GenerateReport(ctx, report.GenerateReportRequest{
		UserID: reportUserID,
		Month:  "2025-03",
	})
	require.NoError(t, err)

	stored, err := repRepo.GetByUserAndMonth(ctx, reportUserID, "2025-03")
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, 480, stored.TotalWorkTime)
	assert.Equal(t, 0, stored.TotalOvertime)
	assert.Equal(t, 0, stored.TotalAbsences)
}

func TestGenerateReport_EmptyMonthZeroTotals(t *testing.T) {
	ctx := context.Background()

	svc, repRepo := newTestService()

	_, err := svc.GenerateReport(ctx, report.GenerateReportRequest{
		UserID: reportUserID,
		Month:  "2025-03",
	})
	require.NoError(t, err)

	stored, err := repRepo.GetByUserAndMonth(ctx, reportUserID, "2025-03")
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Zero(t, stored.TotalWorkTime)
	assert.Zero(t, stored.TotalOvertime)
	assert.Zero(t, stored.TotalAbsences)
}

func TestGenerateReport_TruncatesPartialMinutes(t *testing.T) {
	ctx := context.Background()

	rec := day(3, 480, false, false)
	clockOut := rec.ClockOut.Add(30 * time.Second) // 480m30s worked
	rec.ClockOut = &clockOut

	svc, repRepo := newTestService(rec)

	_, err := svc.GenerateReport(ctx, report.GenerateReportRequest{
		UserID: reportUserID,
		Month:  "2025-03",
	})
	require.NoError(t, err)

	stored, _ := repRepo.GetByUserAndMonth(ctx, reportUserID, "2025-03")
	require.NotNil(t, stored)
	assert.Equal(t, 480, stored.TotalWorkTime, "partial minutes are dropped")
	assert.Equal(t, 0, stored.TotalOvertime)
}

// ===== IDEMPOTENCY =====

func TestGenerateReport_IdempotentAcrossNewRecords(t *testing.T) {
	ctx := context.Background()

	attRepo := &stubAttendanceRepo{records: []attendance.Attendance{day(3, 600, false, false)}}
	repRepo := &fakeReportRepo{}
	svc := NewReportService(repRepo, attRepo)

	firstID, err := svc.GenerateReport(ctx, report.GenerateReportRequest{
		UserID: reportUserID,
		Month:  "2025-03",
	})
	require.NoError(t, err)

	// New attendance lands after generation; a repeat request must return the
	// stored report untouched.
	attRepo.records = append(attRepo.records, day(10, 700, false, false))

	secondID, err := svc.GenerateReport(ctx, report.GenerateReportRequest{
		UserID: reportUserID,
		Month:  "2025-03",
	})
	require.NoError(t, err)
	assert.Equal(t, firstID, secondID)

	stored, _ := repRepo.GetByUserAndMonth(ctx, reportUserID, "2025-03")
	require.NotNil(t, stored)
	assert.Equal(t, 600, stored.TotalWorkTime)
}

func TestGenerateReport_ConcurrentInsertReturnsWinner(t *testing.T) {
	ctx := context.Background()

	repRepo := &fakeReportRepo{}
	svc := NewReportService(repRepo, &stubAttendanceRepo{}).(*ReportServiceImpl)

	// Simulate a racing request inserting between the existence check and the
	// create by pre-seeding the winner behind the service's back.
	winner, err := repRepo.Create(ctx, report.MonthlyReport{
		UserID: reportUserID,
		Month:  "2025-03",
	})
	require.NoError(t, err)

	raced := &racingReportRepo{fakeReportRepo: repRepo, winner: winner}
	svc.reportRepo = raced

	id, err := svc.GenerateReport(ctx, report.GenerateReportRequest{
		UserID: reportUserID,
		Month:  "2025-03",
	})
	require.NoError(t, err)
	assert.Equal(t, winner.ID, id)
}

// racingReportRepo hides the winner from the pre-insert existence check so the
// service hits the uniqueness conflict path.
type racingReportRepo struct {
	*fakeReportRepo
	winner  report.MonthlyReport
	checked bool
}

func (r *racingReportRepo) GetByUserAndMonth(ctx context.Context, userID, month string) (*report.MonthlyReport, error) {
	if !r.checked {
		r.checked = true
		return nil, nil
	}
	return r.fakeReportRepo.GetByUserAndMonth(ctx, userID, month)
}

// ===== LISTING =====

func TestGetReportsByUser(t *testing.T) {
	ctx := context.Background()

	repRepo := &fakeReportRepo{}
	svc := NewReportService(repRepo, &stubAttendanceRepo{})

	_, err := repRepo.Create(ctx, report.MonthlyReport{
		UserID:        reportUserID,
		Month:         "2025-02",
		TotalWorkTime: 9600,
		CreatedAt:     time.Now().UTC(),
	})
	require.NoError(t, err)

	results, err := svc.GetReportsByUser(ctx, reportUserID)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "2025-02", results[0].Month)
	assert.Equal(t, 9600, results[0].TotalWorkTime)
}
