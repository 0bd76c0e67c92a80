package main

import (
	"teamadmin-service/internal/handler"
	"teamadmin-service/internal/middleware"
	"teamadmin-service/internal/store"
	"teamadmin-service/pkg/config"
	"teamadmin-service/pkg/logger"
	"teamadmin-service/prometheus"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
)

func main() {
	// Load configuration from .env file and environment variables
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger with config
	if err := logger.InitLogger(cfg); err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	log := logger.GetLogger()
	log.Info("Starting team admin service...", zap.String("environment", cfg.Server.Env))

	// Open the SQLite store (runs migrations and seeds sample data once)
	st, err := store.Open(&cfg.Database)
	if err != nil {
		log.Fatal("Failed to open store", zap.Error(err))
	}
	defer st.Close()
	log.Info("Store opened", zap.String("path", st.Path()))

	// Initialize handlers with the shared store handle
	authHandler := handler.NewAuthHandler(cfg.Auth)
	userHandler := handler.NewUserHandler(st)
	teamHandler := handler.NewTeamHandler(st)
	memberHandler := handler.NewMemberHandler(st)
	statsHandler := handler.NewStatsHandler(st)
	backupHandler := handler.NewBackupHandler(st, cfg.Backup)
	healthHandler := handler.NewHealthHandler(st)

	// Initialize Echo framework
	e := echo.New()

	// Apply global middleware - order matters
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.CORS())
	e.Use(middleware.RequestIDMiddleware)
	e.Use(logger.Middleware())
	e.Use(prometheus.MetricsMiddleware())

	// Operational endpoints
	e.GET("/health", healthHandler.Check)
	e.GET("/metrics", echo.WrapHandler(prometheus.GetPrometheusHandler()))

	// Admin login
	e.POST("/login", authHandler.Login)

	// Teams
	e.GET("/teams", teamHandler.List)
	e.GET("/teams/:id", teamHandler.Get)
	e.POST("/teams", teamHandler.Create)
	e.PUT("/teams/:id", teamHandler.Update)
	e.DELETE("/teams/:id", teamHandler.Delete)

	// Users
	e.GET("/users", userHandler.List)
	e.GET("/users/:id", userHandler.Get)
	e.POST("/users", userHandler.Create)
	e.PUT("/users/:id", userHandler.Update)
	e.DELETE("/users/:id", userHandler.Delete)

	// Team membership
	e.POST("/teams/:teamId/users", memberHandler.Add)
	e.DELETE("/teams/:teamId/users/:userId", memberHandler.Remove)
	e.PUT("/teams/:teamId/users/:userId/role", memberHandler.SetRole)

	// Reporting
	e.GET("/stats", statsHandler.Stats)
	e.GET("/recent-activity", statsHandler.RecentActivity)

	// Backup and restore
	e.GET("/backup", backupHandler.Download)
	e.POST("/restore", backupHandler.Restore)

	// Start server
	log.Info("Starting server", zap.String("port", cfg.Server.Port))
	if err := e.Start(":" + cfg.Server.Port); err != nil {
		log.Fatal("Failed to start server", zap.Error(err))
	}
}
