package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/lineworks/workforce-system/internal/api/handler"
	"github.com/lineworks/workforce-system/internal/api/middleware"
	"github.com/lineworks/workforce-system/internal/core/domain"
	"github.com/lineworks/workforce-system/internal/core/service"
	pgdb "github.com/lineworks/workforce-system/internal/infrastructure/db/postgres"
	redisdb "github.com/lineworks/workforce-system/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *gorm.DB, rdb *redis.Client, jwtSecret string, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("workforce"))

	// --- Dependencies ---
	userRepo := pgdb.NewUserRepository(db)
	lineRepo := pgdb.NewLineRepository(db)
	trainingRepo := pgdb.NewTrainingLogRepository(db)
	defectRepo := pgdb.NewDefectLogRepository(db)
	workLogRepo := pgdb.NewWorkLogRepository(db)
	backupRepo := pgdb.NewBackupScheduleRepository(db)
	presence := redisdb.NewPresenceTracker(rdb, 0)

	authService := service.NewAuthService(userRepo, jwtSecret, 24*time.Hour)
	lineService := service.NewLineService(lineRepo, userRepo, log)
	logService := service.NewLogService(trainingRepo, defectRepo, userRepo, log)
	workLogService := service.NewWorkLogService(workLogRepo, userRepo, log)
	backupService := service.NewBackupService(backupRepo, log)

	authHandler := handler.NewAuthHandler(authService)
	lineHandler := handler.NewLineHandler(lineService)
	logHandler := handler.NewLogHandler(logService)
	workLogHandler := handler.NewWorkLogHandler(workLogService)
	backupHandler := handler.NewBackupHandler(backupService)
	presenceHandler := handler.NewPresenceHandler(presence, redisdb.Channel)

	authRequired := middleware.Auth(jwtSecret)
	adminOnly := middleware.RBAC(string(domain.RoleAdmin))
	managerOrAdmin := middleware.RBAC(string(domain.RoleManager), string(domain.RoleAdmin))

	// --- Auth routes ---
	// Register is optionally authenticated: the bootstrap account needs no
	// token, later registrations are ADMIN-gated inside the service.
	e.POST("/v1/auth/register", authHandler.Register, middleware.OptionalAuth(jwtSecret))
	e.POST("/v1/auth/login", authHandler.Login)

	// --- Lines & shifts ---
	v1 := e.Group("/v1", authRequired)
	v1.GET("/lines", lineHandler.Board)
	v1.GET("/lines/:id/summary", lineHandler.Summary)
	v1.POST("/lines", lineHandler.CreateLine, adminOnly)
	v1.POST("/lines/:id/processes", lineHandler.CreateProcess, adminOnly)
	v1.PUT("/line-status", lineHandler.UpdateShiftStatus, managerOrAdmin)
	v1.PUT("/waiting-worker", lineHandler.AssignWaitingWorker, managerOrAdmin)
	v1.DELETE("/waiting-worker", lineHandler.RemoveWaitingWorker, managerOrAdmin)

	// --- Work sessions ---
	v1.POST("/work-logs", workLogHandler.Start)
	v1.PUT("/work-logs/:id/end", workLogHandler.End)
	v1.GET("/work-logs/:workerId", workLogHandler.List)

	// --- Training / defect logs ---
	v1.POST("/training-logs", logHandler.CreateTraining, managerOrAdmin)
	v1.GET("/training-logs/:workerId", logHandler.ListTraining)
	v1.DELETE("/training-logs/:id", logHandler.DeleteTraining, managerOrAdmin)
	v1.POST("/defect-logs", logHandler.CreateDefect, managerOrAdmin)
	v1.GET("/defect-logs/:workerId", logHandler.ListDefects)
	v1.DELETE("/defect-logs/:id", logHandler.DeleteDefect, managerOrAdmin)

	// --- Backup schedule ---
	v1.GET("/backup-schedule", backupHandler.Get, adminOnly)
	v1.PUT("/backup-schedule", backupHandler.Update, adminOnly)

	// --- Presence ---
	v1.POST("/presence/heartbeat", presenceHandler.Heartbeat)
	v1.DELETE("/presence", presenceHandler.Leave)
	v1.GET("/presence/lines/:id", presenceHandler.Online)

	// --- Health probes & metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
