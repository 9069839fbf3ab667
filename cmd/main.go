package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"hrm/inner/common"
	"hrm/inner/database"
	"hrm/inner/department"
	"hrm/inner/employee"
	"hrm/inner/info"
	"hrm/inner/job"
	"hrm/inner/jobhistory"
	"hrm/inner/location"
	"hrm/inner/report"
	"hrm/inner/user"
	"hrm/inner/validator"
	"hrm/inner/web"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 10 * time.Second

// @title HR management API
// @version 1.0
// @BasePath /api/v1
func main() {
	rootCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// читаем конфиги
	var cfg = common.GetConfig(".env")
	var logger = common.NewLogger(cfg)
	defer func() { _ = logger.Sync() }()

	db, err := database.ConnectDbWithCfg(cfg, logger)
	if err != nil {
		logger.Fatal("Connection error", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Error("error closing db", zap.Error(err))
		}
	}()

	if cfg.ApplySchema {
		if err = database.Migrate(rootCtx, db); err != nil {
			logger.Fatal("Schema migration failed", zap.Error(err))
		}
		logger.Info("Database schema applied")
	}

	var server = build(cfg, db, logger)

	group, gctx := errgroup.WithContext(rootCtx)
	group.Go(func() error {
		logger.Info("Starting HTTP server", zap.String("address", cfg.ServerAddress))
		if err := server.App.Listen(cfg.ServerAddress); err != nil {
			return fmt.Errorf("http server error: %w", err)
		}
		return nil
	})
	group.Go(func() error {
		<-gctx.Done()
		logger.Info("Shutting down HTTP server")
		return server.App.ShutdownWithTimeout(shutdownTimeout)
	})

	if err = group.Wait(); err != nil {
		logger.Error("Server stopped with error", zap.Error(err))
		return
	}
	logger.Info("Server stopped")
}

// build собирает все компоненты приложения
func build(cfg common.Config, db *sqlx.DB, logger *common.Logger) *web.Server {
	var server = web.NewServer(logger)
	var vld = validator.New()

	employeeService := employee.NewService(employee.NewEmployeeRepository(db), vld, logger)
	employee.NewController(server, employeeService, logger).RegisterRoutes()

	departmentService := department.NewService(department.NewDepartmentRepository(db), vld, logger)
	department.NewController(server, departmentService, logger).RegisterRoutes()

	jobService := job.NewService(job.NewJobRepository(db), vld, logger)
	job.NewController(server, jobService, logger).RegisterRoutes()

	historyService := jobhistory.NewService(jobhistory.NewJobHistoryRepository(db), vld, logger)
	jobhistory.NewController(server, historyService, logger).RegisterRoutes()

	locationService := location.NewService(location.NewLocationRepository(db), vld, logger)
	location.NewController(server, locationService, logger).RegisterRoutes()

	userService := user.NewService(user.NewUserRepository(db), vld, logger)
	user.NewController(server, userService, logger).RegisterRoutes()

	reportService := report.NewService(report.NewRepository(db), logger)
	report.NewController(server, reportService, logger).RegisterRoutes()

	info.NewController(server, cfg, db, logger).RegisterRoutes()

	return server
}
