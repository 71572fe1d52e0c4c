package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/attendly/attendance-backend-go/internal/config"
	"github.com/attendly/attendance-backend-go/internal/domain/attendance"
	"github.com/attendly/attendance-backend-go/internal/domain/auth"
	"github.com/attendly/attendance-backend-go/internal/domain/device"
	"github.com/attendly/attendance-backend-go/internal/domain/leave"
	"github.com/attendly/attendance-backend-go/internal/domain/overtime"
	"github.com/attendly/attendance-backend-go/internal/domain/policy"
	"github.com/attendly/attendance-backend-go/internal/domain/report"
	"github.com/attendly/attendance-backend-go/internal/domain/setting"
	"github.com/attendly/attendance-backend-go/internal/domain/user"
	"github.com/attendly/attendance-backend-go/internal/pkg/jwt"
	attendanceService "github.com/attendly/attendance-backend-go/internal/service/attendance"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const routerTestSecret = "test-secret-key-for-jwt"

// ===== IN-MEMORY REPOSITORIES FOR THE ATTENDANCE FLOW =====

type memAttendanceRepo struct {
	records []attendance.Attendance
}

func (m *memAttendanceRepo) Create(ctx context.Context, att attendance.Attendance) (attendance.Attendance, error) {
	att.ID = uuid.NewString()
	att.CreatedAt = att.ClockIn
	att.UpdatedAt = att.ClockIn
	m.records = append(m.records, att)
	return att, nil
}

func (m *memAttendanceRepo) GetByUserAndRange(ctx context.Context, userID string, start, end time.Time) (*attendance.Attendance, error) {
	for i := range m.records {
		rec := &m.records[i]
		if rec.UserID == userID && !rec.ClockIn.Before(start) && rec.ClockIn.Before(end) {
			cp := *rec
			return &cp, nil
		}
	}
	return nil, nil
}

func (m *memAttendanceRepo) SetClockOut(ctx context.Context, id string, clockOut time.Time, isEarlyLeave bool) error {
	for i := range m.records {
		if m.records[i].ID == id {
			m.records[i].ClockOut = &clockOut
			m.records[i].IsEarlyLeave = isEarlyLeave
			return nil
		}
	}
	return attendance.ErrAttendanceNotFound
}

func (m *memAttendanceRepo) ListByUser(ctx context.Context, userID string) ([]attendance.Attendance, error) {
	var out []attendance.Attendance
	for _, rec := range m.records {
		if rec.UserID == userID {
			out = append(out, rec)
		}
	}
	return out, nil
}

type memPolicyRepo struct{}

func (memPolicyRepo) Get(ctx context.Context) (*policy.AttendancePolicy, error) { return nil, nil }
func (memPolicyRepo) Upsert(ctx context.Context, p policy.AttendancePolicy) (string, error) {
	return "policy-1", nil
}

// ===== SERVICE STUBS FOR ROUTES NOT UNDER TEST =====

type stubUserService struct {
	createdIDs []string
}

func (s *stubUserService) Create(ctx context.Context, req user.CreateUserRequest) (string, error) {
	if err := req.Validate(); err != nil {
		return "", err
	}
	id := uuid.NewString()
	s.createdIDs = append(s.createdIDs, id)
	return id, nil
}

func (s *stubUserService) GetByID(ctx context.Context, id string) (user.UserResponse, error) {
	return user.UserResponse{ID: id}, nil
}

func (s *stubUserService) List(ctx context.Context) ([]user.UserResponse, error) { return nil, nil }

func (s *stubUserService) Update(ctx context.Context, id string, req user.UpdateUserRequest) error {
	return nil
}

func (s *stubUserService) Delete(ctx context.Context, id string) error { return nil }

type stubAuthService struct{}

func (stubAuthService) Login(ctx context.Context, req auth.LoginRequest) (auth.LoginResponse, error) {
	return auth.LoginResponse{}, auth.ErrInvalidCredentials
}

type stubReportService struct {
	generated int
}

func (s *stubReportService) GenerateReport(ctx context.Context, req report.GenerateReportRequest) (string, error) {
	s.generated++
	return "report-1", nil
}

func (s *stubReportService) GetReportsByUser(ctx context.Context, userID string) ([]report.ReportResponse, error) {
	return nil, nil
}

type stubPolicyService struct{}

func (stubPolicyService) GetPolicy(ctx context.Context) (policy.PolicyResponse, error) {
	return policy.PolicyResponse{}, policy.ErrPolicyNotSet
}

func (stubPolicyService) UpsertPolicy(ctx context.Context, req policy.UpsertPolicyRequest) (string, error) {
	return "policy-1", nil
}

type stubLeaveService struct{}

func (stubLeaveService) Apply(ctx context.Context, req leave.ApplyLeaveRequest) (string, error) {
	return "leave-1", nil
}

func (stubLeaveService) GetMyLeaves(ctx context.Context, userID string) ([]leave.LeaveResponse, error) {
	return nil, nil
}

func (stubLeaveService) GetAllLeaves(ctx context.Context) ([]leave.LeaveResponse, error) {
	return nil, nil
}

func (stubLeaveService) UpdateStatus(ctx context.Context, id string, req leave.UpdateLeaveStatusRequest) error {
	return nil
}

type stubOvertimeService struct{}

func (stubOvertimeService) Apply(ctx context.Context, req overtime.ApplyOvertimeRequest) (string, error) {
	return "overtime-1", nil
}

func (stubOvertimeService) GetMyOvertimes(ctx context.Context, userID string) ([]overtime.OvertimeResponse, error) {
	return nil, nil
}

func (stubOvertimeService) GetAllOvertimes(ctx context.Context) ([]overtime.OvertimeResponse, error) {
	return nil, nil
}

func (stubOvertimeService) UpdateStatus(ctx context.Context, id string, req overtime.UpdateOvertimeStatusRequest) error {
	return nil
}

type stubDeviceService struct{}

func (stubDeviceService) Create(ctx context.Context, req device.CreateDeviceRequest) (string, error) {
	return "device-1", nil
}

func (stubDeviceService) GetByID(ctx context.Context, id string) (device.DeviceResponse, error) {
	return device.DeviceResponse{}, device.ErrDeviceNotFound
}

func (stubDeviceService) List(ctx context.Context) ([]device.DeviceResponse, error) { return nil, nil }

func (stubDeviceService) Delete(ctx context.Context, id string) error { return nil }

type stubSettingService struct{}

func (stubSettingService) Create(ctx context.Context, req setting.CreateSettingRequest) (string, error) {
	return "setting-1", nil
}

func (stubSettingService) GetByName(ctx context.Context, name string) (setting.SettingResponse, error) {
	return setting.SettingResponse{}, setting.ErrSettingNotFound
}

func (stubSettingService) List(ctx context.Context) ([]setting.SettingResponse, error) {
	return nil, nil
}

func (stubSettingService) UpdateValue(ctx context.Context, name string, req setting.UpdateSettingRequest) (setting.SettingResponse, error) {
	return setting.SettingResponse{}, nil
}

func (stubSettingService) Delete(ctx context.Context, name string) error { return nil }

// ===== HELPERS =====

type testEnvelope struct {
	Success bool                   `json:"success"`
	Data    map[string]interface{} `json:"data"`
}

func newTestRouter() (http.Handler, jwt.Service, *stubReportService) {
	cfg := &config.Config{
		App: config.AppConfig{Env: "test", FrontendURL: "http://localhost:3000"},
	}
	jwtSvc := jwt.NewJWTService(routerTestSecret, "1h")
	reportStub := &stubReportService{}

	handlers := Handlers{
		Auth:       NewAuthHandler(stubAuthService{}),
		User:       NewUserHandler(&stubUserService{}),
		Attendance: NewAttendanceHandler(attendanceService.NewAttendanceService(&memAttendanceRepo{}, memPolicyRepo{})),
		Report:     NewReportHandler(reportStub),
		Policy:     NewPolicyHandler(stubPolicyService{}),
		Leave:      NewLeaveHandler(stubLeaveService{}),
		Overtime:   NewOvertimeHandler(stubOvertimeService{}),
		Device:     NewDeviceHandler(stubDeviceService{}),
		Setting:    NewSettingHandler(stubSettingService{}),
	}

	return NewRouter(cfg, jwtSvc, handlers), jwtSvc, reportStub
}

func bearerToken(t *testing.T, jwtSvc jwt.Service, userID, role string) string {
	token, _, err := jwtSvc.GenerateAccessToken(userID, "alice", role)
	require.NoError(t, err)
	return "Bearer " + token
}

func doJSON(router http.Handler, method, path, authorization string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

// ===== ROUTER TESTS =====

func TestRouter_CreateUserWithoutToken(t *testing.T) {
	router, _, _ := newTestRouter()

	// Registration is the one open user route; it bootstraps the first admin.
	rec := doJSON(router, http.MethodPost, "/api/v1/users", "", map[string]string{
		"username": "boss",
		"password": "long-enough-pw",
		"name":     "Boss",
		"role":     "admin",
	})

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var env testEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	assert.True(t, env.Success)
	assert.NotEmpty(t, env.Data["user_id"])
}

func TestRouter_ListUsersRequiresAdmin(t *testing.T) {
	router, jwtSvc, _ := newTestRouter()
	userID := uuid.NewString()

	rec := doJSON(router, http.MethodGet, "/api/v1/users", bearerToken(t, jwtSvc, userID, "user"), nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestRouter_ClockInFlow(t *testing.T) {
	router, jwtSvc, _ := newTestRouter()
	userID := uuid.NewString()
	authz := bearerToken(t, jwtSvc, userID, "user")

	rec := doJSON(router, http.MethodPost, "/api/v1/attendance/clock-in", authz, nil)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var env testEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	assert.True(t, env.Success)
	assert.Equal(t, userID, env.Data["user_id"], "record is created for the token's user")

	// Same local day, same user: the second clock-in is refused.
	rec = doJSON(router, http.MethodPost, "/api/v1/attendance/clock-in", authz, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRouter_ClockInWithoutToken(t *testing.T) {
	router, _, _ := newTestRouter()

	rec := doJSON(router, http.MethodPost, "/api/v1/attendance/clock-in", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRouter_GenerateReportAdminGate(t *testing.T) {
	router, jwtSvc, reportStub := newTestRouter()
	body := map[string]string{
		"user_id": uuid.NewString(),
		"month":   "2025-03",
	}

	// Role comparison is case sensitive: only exactly "admin" passes.
	for _, role := range []string{"user", "Admin"} {
		rec := doJSON(router, http.MethodPost, "/api/v1/reports/generate",
			bearerToken(t, jwtSvc, uuid.NewString(), role), body)
		assert.Equal(t, http.StatusForbidden, rec.Code, "role %q", role)
	}
	assert.Zero(t, reportStub.generated)

	rec := doJSON(router, http.MethodPost, "/api/v1/reports/generate",
		bearerToken(t, jwtSvc, uuid.NewString(), "admin"), body)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.Equal(t, 1, reportStub.generated)
}
