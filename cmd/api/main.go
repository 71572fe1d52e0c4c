package main

import (
	"fmt"
	"net/http"

	"github.com/attendly/attendance-backend-go/internal/config"
	appHTTP "github.com/attendly/attendance-backend-go/internal/handler/http"
	"github.com/attendly/attendance-backend-go/internal/pkg/database"
	"github.com/attendly/attendance-backend-go/internal/pkg/jwt"
	"github.com/attendly/attendance-backend-go/internal/pkg/timeutil"
	"github.com/attendly/attendance-backend-go/internal/repository/postgresql"
	attendanceService "github.com/attendly/attendance-backend-go/internal/service/attendance"
	authService "github.com/attendly/attendance-backend-go/internal/service/auth"
	deviceService "github.com/attendly/attendance-backend-go/internal/service/device"
	leaveService "github.com/attendly/attendance-backend-go/internal/service/leave"
	overtimeService "github.com/attendly/attendance-backend-go/internal/service/overtime"
	policyService "github.com/attendly/attendance-backend-go/internal/service/policy"
	reportService "github.com/attendly/attendance-backend-go/internal/service/report"
	settingService "github.com/attendly/attendance-backend-go/internal/service/setting"
	userService "github.com/attendly/attendance-backend-go/internal/service/user"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	if err := timeutil.SetLocation(cfg.App.Timezone); err != nil {
		fmt.Println("Error loading timezone:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn, cfg.Database.MaxConns, cfg.Database.MinConns)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	userRepo := postgresql.NewUserRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	reportRepo := postgresql.NewReportRepository(db)
	policyRepo := postgresql.NewPolicyRepository(db)
	leaveRepo := postgresql.NewLeaveRepository(db)
	overtimeRepo := postgresql.NewOvertimeRepository(db)
	deviceRepo := postgresql.NewDeviceRepository(db)
	settingRepo := postgresql.NewSettingRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)

	authSvc := authService.NewAuthService(userRepo, jwtService)
	userSvc := userService.NewUserService(userRepo)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, policyRepo)
	reportSvc := reportService.NewReportService(reportRepo, attendanceRepo)
	policySvc := policyService.NewPolicyService(policyRepo)
	leaveSvc := leaveService.NewLeaveService(leaveRepo)
	overtimeSvc := overtimeService.NewOvertimeService(overtimeRepo)
	deviceSvc := deviceService.NewDeviceService(deviceRepo)
	settingSvc := settingService.NewSettingService(settingRepo)

	handlers := appHTTP.Handlers{
		Auth:       appHTTP.NewAuthHandler(authSvc),
		User:       appHTTP.NewUserHandler(userSvc),
		Attendance: appHTTP.NewAttendanceHandler(attendanceSvc),
		Report:     appHTTP.NewReportHandler(reportSvc),
		Policy:     appHTTP.NewPolicyHandler(policySvc),
		Leave:      appHTTP.NewLeaveHandler(leaveSvc),
		Overtime:   appHTTP.NewOvertimeHandler(overtimeSvc),
		Device:     appHTTP.NewDeviceHandler(deviceSvc),
		Setting:    appHTTP.NewSettingHandler(settingSvc),
	}

	router := appHTTP.NewRouter(cfg, jwtService, handlers)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
