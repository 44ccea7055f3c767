package handler

import (
	"context"
	"net/http"

	coreport "github.com/amirhossein-jamali/fanattics-portal/internal/domain/port/core"
	"github.com/amirhossein-jamali/fanattics-portal/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/fanattics-portal/internal/infrastructure/adapter/database"
	"github.com/gin-gonic/gin"
)

// Database is what the health check needs from the store
type Database interface {
	Ping(ctx context.Context) error
	PoolMetrics() database.ConnectionPoolMetrics
}

// HealthHandler answers liveness checks
type HealthHandler struct {
	database Database
	logger   coreport.Logger
}

// NewHealthHandler creates a new health handler instance
func NewHealthHandler(database Database, logger coreport.Logger) *HealthHandler {
	return &HealthHandler{database: database, logger: logger}
}

// Health handles GET /healthz and reports the sampled pool usage
func (h *HealthHandler) Health(c *gin.Context) {
	if err := h.database.Ping(c.Request.Context()); err != nil {
		h.logger.Warn("Health check failed", map[string]any{"error": err.Error()})
		c.JSON(http.StatusServiceUnavailable, dto.NewErrorResponse(c.Request.Context(), err, "Database unavailable"))
		return
	}

	pool := h.database.PoolMetrics()
	c.JSON(http.StatusOK, dto.HealthResponse{
		Status: "ok",
		Pool: &dto.PoolResponse{
			Open:         pool.OpenConnections,
			Idle:         pool.IdleConnections,
			InUse:        pool.InUse,
			MaxOpen:      pool.MaxOpenConnections,
			WaitCount:    pool.WaitCount,
			WaitDuration: pool.WaitDuration.String(),
		},
	})
}
