package main

import (
	"context"
	"fmt"
	"net/http"

	"github.com/pontohq/timeclock-backend-go/internal/config"
	appHTTP "github.com/pontohq/timeclock-backend-go/internal/handler/http"
	"github.com/pontohq/timeclock-backend-go/internal/pkg/clock"
	"github.com/pontohq/timeclock-backend-go/internal/pkg/database"
	"github.com/pontohq/timeclock-backend-go/internal/pkg/poller"
	"github.com/pontohq/timeclock-backend-go/internal/pkg/token"
	"github.com/pontohq/timeclock-backend-go/internal/repository/postgresql"
	credentialService "github.com/pontohq/timeclock-backend-go/internal/service/credential"
	mirrorService "github.com/pontohq/timeclock-backend-go/internal/service/mirror"
	statusService "github.com/pontohq/timeclock-backend-go/internal/service/status"
	summaryService "github.com/pontohq/timeclock-backend-go/internal/service/summary"
	timeclockService "github.com/pontohq/timeclock-backend-go/internal/service/timeclock"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	employeeRepo := postgresql.NewEmployeeRepository(db)
	workScheduleRepo := postgresql.NewWorkScheduleRepository(db)
	punchRepo := postgresql.NewPunchRepository(db)
	credentialRepo := postgresql.NewCredentialRepository(db)

	clk := clock.New()
	tokenService := token.NewSessionService(cfg.Session.SecretKey, cfg.Session.Duration, clk)

	authService := credentialService.NewAuthService(
		credentialRepo,
		employeeRepo,
		tokenService,
		credentialService.DirectComparator{},
		credentialService.NewTokenQRValidator(tokenService),
		credentialService.SlogAuditSink{},
		clk,
		cfg.Session.LockoutThreshold,
		cfg.Session.LockoutDuration,
	)
	summarySvc := summaryService.NewSummaryService(
		punchRepo,
		employeeRepo,
		workScheduleRepo,
		clk,
		cfg.Attendance.DefaultToleranceMinutes,
		cfg.Attendance.DefaultWorkHours,
		cfg.Attendance.MonthFanoutLimit,
	)
	statusSvc := statusService.NewStatusService(
		punchRepo,
		employeeRepo,
		workScheduleRepo,
		clk,
		cfg.Attendance.DefaultExpectedEntry,
		cfg.Attendance.DefaultToleranceMinutes,
		cfg.Attendance.DefaultWorkHours,
	)
	timeClockSvc := timeclockService.NewTimeClockService(punchRepo, employeeRepo, authService, summarySvc, clk)
	mirrorSvc := mirrorService.NewMirrorService(employeeRepo, summarySvc, clk)

	authHandler := appHTTP.NewAuthHandler(authService)
	timeClockHandler := appHTTP.NewTimeClockHandler(timeClockSvc)
	summaryHandler := appHTTP.NewSummaryHandler(summarySvc)
	statusHandler := appHTTP.NewStatusHandler(statusSvc)
	mirrorHandler := appHTTP.NewMirrorHandler(mirrorSvc)

	router := appHTTP.NewRouter(
		tokenService,
		authHandler,
		timeClockHandler,
		summaryHandler,
		statusHandler,
		mirrorHandler,
		cfg.App.AllowedOrigins,
	)

	// Live status is recomputed per request; the background tick keeps the
	// pool warm so status polls never pay the reconnect cost.
	keepalive := poller.New("db-keepalive", cfg.Attendance.StatusPollInterval, func(ctx context.Context) error {
		return db.Ping(ctx)
	})
	keepalive.Start()
	defer keepalive.Stop()

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
