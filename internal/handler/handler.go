package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/maxviazov/bjj-scoreboard/internal/service"
)

// Register mounts every HTTP and websocket route on the given engine.
func Register(r *gin.Engine, svc service.ScoreboardService, feedInterval time.Duration, logger zerolog.Logger) {
	h := NewHealthHandler(svc)

	// Health probes
	r.GET("/live", h.Liveness)
	r.GET("/ready", h.Readiness)

	NewFeedHandler(svc, feedInterval, logger).Register(r)
	RegisterDocs(r)

	api := r.Group(APIV1Prefix)
	{
		health := api.Group("/health")
		{
			health.GET("/live", h.Liveness)
			health.GET("/ready", h.Readiness)
		}
		NewMatchHandler(svc).Register(api)
	}
}
