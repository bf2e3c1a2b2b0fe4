package main

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"wedplan-go/internal/config"
	"wedplan-go/internal/handlers"
	"wedplan-go/internal/logging"
	"wedplan-go/internal/middleware"
	"wedplan-go/internal/service"
)

func main() {
	cfg := config.Load()
	logger := logging.New(cfg.AppName, cfg.LogLevel)

	seatingHandler := handlers.NewSeatingHandler(service.NewSeatingService(), logger, cfg.AppVersion)

	if !cfg.Debug {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.CORS())

	r.GET("/health", seatingHandler.HealthCheck)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := r.Group("/v1")
	{
		v1.POST("/optimize", seatingHandler.Optimize)
	}

	logger.Info("starting server", "port", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("server exited", "error", err)
	}
}
