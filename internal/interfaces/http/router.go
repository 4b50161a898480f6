// Package http wires the gin route tree and the HTTP server for the
// augmentation API.
package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/matthewstachyra/virtual-assistant-utterance-generator/internal/infrastructure/monitoring/logging"
	"github.com/matthewstachyra/virtual-assistant-utterance-generator/internal/interfaces/http/handlers"
	"github.com/matthewstachyra/virtual-assistant-utterance-generator/internal/interfaces/http/middleware"
)

// RouterConfig aggregates the handler and middleware dependencies for the
// complete route tree.
type RouterConfig struct {
	GenerateHandler *handlers.GenerateHandler
	HealthHandler   *handlers.HealthHandler

	MetricsHandler  http.Handler
	MetricsObserver middleware.HTTPObserver

	Logger logging.Logger
	Mode   string
}

// NewRouter builds the gin engine with global middleware, probe endpoints,
// the metrics endpoint, and the versioned API group.
func NewRouter(cfg RouterConfig) *gin.Engine {
	if cfg.Mode != "" {
		gin.SetMode(cfg.Mode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	if cfg.Logger != nil {
		r.Use(middleware.RequestLogging(cfg.Logger, middleware.DefaultLoggingConfig()))
	}
	if cfg.MetricsObserver != nil {
		r.Use(middleware.Metrics(cfg.MetricsObserver))
	}

	if cfg.HealthHandler != nil {
		r.GET("/healthz", cfg.HealthHandler.Liveness)
		r.GET("/readyz", cfg.HealthHandler.Readiness)
	}
	if cfg.MetricsHandler != nil {
		r.GET("/metrics", gin.WrapH(cfg.MetricsHandler))
	}

	api := r.Group("/api/v1")
	if cfg.GenerateHandler != nil {
		api.POST("/generate", cfg.GenerateHandler.Generate)
		api.GET("/batches", cfg.GenerateHandler.ListBatches)
		api.GET("/batches/:id", cfg.GenerateHandler.GetBatch)
	}

	return r
}
