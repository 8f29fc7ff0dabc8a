package server

import (
	"net/http"
	"time"

	"blog-service/cmd/api/di"
	ginmiddleware "blog-service/internal/adapter/gin/middleware"
	ginrouter "blog-service/internal/adapter/gin/router"
	"blog-service/internal/config"

	"go.uber.org/zap"
)

// SetupGinServer creates and configures the Gin REST API server
func SetupGinServer(cfg *config.Config, l *zap.Logger, container *di.Container) *http.Server {
	// Setup Gin router with all middleware and routes
	router := ginrouter.SetupRouter(
		ginrouter.Handlers{
			Auth:    container.Handlers.Auth,
			Post:    container.Handlers.Post,
			Contact: container.Handlers.Contact,
		},
		container.SessionAuth,
		ginmiddleware.RateLimiterConfig{
			Enabled:           cfg.RateLimit.Enabled,
			RequestsPerSecond: cfg.RateLimit.RequestsPerSecond,
			BurstCapacity:     cfg.RateLimit.BurstCapacity,
		},
		container.RedisClient,
		l,
	)

	addr := ":" + cfg.App.HTTPPort
	l.Info("Gin REST API configured", zap.String("address", addr))

	return &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 2 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}
}
