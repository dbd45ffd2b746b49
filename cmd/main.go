package main

import (
	"log"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"github.com/estiakahmed98/islami-dawa-production-sub001/config"
	"github.com/estiakahmed98/islami-dawa-production-sub001/database"
	"github.com/estiakahmed98/islami-dawa-production-sub001/logging"
	"github.com/estiakahmed98/islami-dawa-production-sub001/middlewares"
	"github.com/estiakahmed98/islami-dawa-production-sub001/routes"
)

func main() {
	cfg := config.Load()

	logger, err := logging.Init(cfg.LogLevel, cfg.AppEnv)
	if err != nil {
		log.Fatalf("logger init failed: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	// DB must be up before we serve anything; fail fast otherwise.
	database.Connect(cfg)

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(middlewares.CountRequests())
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI: true, LogStatus: true, LogMethod: true, LogLatency: true, LogRequestID: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			logger.Info("request",
				zap.String("id", v.RequestID),
				zap.String("method", v.Method),
				zap.String("uri", v.URI),
				zap.Int("status", v.Status),
				zap.Duration("latency", v.Latency),
			)
			return nil
		},
	}))

	routes.Register(e, cfg, logger)

	addr := ":" + cfg.AppPort
	logger.Info("server listening", zap.String("addr", addr))
	if err := e.Start(addr); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
