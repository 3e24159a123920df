package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cmlabs-hris/attendance-engine/internal/config"
	"github.com/cmlabs-hris/attendance-engine/internal/domain/attendance"
	appHTTP "github.com/cmlabs-hris/attendance-engine/internal/handler/http"
	"github.com/cmlabs-hris/attendance-engine/internal/pkg/database"
	"github.com/cmlabs-hris/attendance-engine/internal/pkg/jwt"
	"github.com/cmlabs-hris/attendance-engine/internal/repository/postgresql"
	attendanceService "github.com/cmlabs-hris/attendance-engine/internal/service/attendance"
	leaveService "github.com/cmlabs-hris/attendance-engine/internal/service/leave"
	reportService "github.com/cmlabs-hris/attendance-engine/internal/service/report"
	teamService "github.com/cmlabs-hris/attendance-engine/internal/service/team"
	"github.com/go-chi/httplog/v3"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		os.Exit(1)
	}

	logger := newLogger(cfg)
	slog.SetDefault(logger)

	db, err := database.NewPostgreSQLDB(context.Background(), cfg.DatabaseURL(), database.PoolConfig{
		MaxConns: cfg.Database.MaxConns,
		MinConns: cfg.Database.MinConns,
	})
	if err != nil {
		logger.Error("Error connecting to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if cfg.Database.AutoMigrate {
		if err := postgresql.Migrate(context.Background(), db); err != nil {
			logger.Error("Error applying schema", "error", err)
			os.Exit(1)
		}
	}

	clockEventRepo := postgresql.NewClockEventRepository(db)
	teamRepo := postgresql.NewTeamRepository(db)
	leavePeriodRepo := postgresql.NewLeavePeriodRepository(db)
	transactor := postgresql.NewTransactor(db)

	evaluator, err := attendanceService.NewEvaluator(cfg.Engine.Timezone, time.Now)
	if err != nil {
		logger.Error("Error loading timezone", "timezone", cfg.Engine.Timezone, "error", err)
		os.Exit(1)
	}
	evaluator.DefaultStartHour = cfg.Engine.DefaultStartHour

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)
	attendanceSvc, err := attendanceService.NewAttendanceService(
		clockEventRepo,
		teamRepo,
		evaluator,
		attendance.LatenessMode(cfg.Engine.LatenessMode),
	)
	if err != nil {
		logger.Error("Error creating attendance service", "error", err)
		os.Exit(1)
	}
	leaveSvc := leaveService.NewLeaveService(leavePeriodRepo, transactor)
	teamSvc := teamService.NewTeamService(teamRepo, clockEventRepo)
	reportSvc := reportService.NewReportService(clockEventRepo, attendanceSvc, evaluator)

	router := appHTTP.NewRouter(
		appHTTP.RouterConfig{
			Logger:         logger,
			AllowedOrigins: cfg.CORS.AllowedOrigins,
		},
		JWTService,
		appHTTP.NewAttendanceHandler(attendanceSvc),
		appHTTP.NewLeaveHandler(leaveSvc),
		appHTTP.NewTeamHandler(teamSvc),
		appHTTP.NewReportHandler(reportSvc),
	)

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("Server running", "addr", server.Addr, "env", cfg.App.Env)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Server error", "error", err)
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Error("Graceful shutdown failed", "error", err)
	}
}

func newLogger(cfg *config.Config) *slog.Logger {
	level := slog.LevelInfo
	if err := level.UnmarshalText([]byte(cfg.App.LogLevel)); err != nil {
		level = slog.LevelInfo
	}

	logFormat := httplog.SchemaECS.Concise(cfg.App.Env != "production")
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level:       level,
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", cfg.App.Name),
		slog.String("version", cfg.App.Version),
		slog.String("env", cfg.App.Env),
	)
}
