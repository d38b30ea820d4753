package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	coreport "github.com/amirhossein-jamali/alert-processor/internal/domain/port/core"
	"github.com/amirhossein-jamali/alert-processor/internal/infrastructure/adapter/api/dto"
)

// Pinger checks that the backing store is reachable
type Pinger interface {
	Ping(ctx context.Context) error
}

// PoolReporter is implemented by stores that can report connection pool usage
type PoolReporter interface {
	PoolUsage() (inUse, maxOpen int, saturated bool)
}

// HealthHandler reports liveness of the service and its database
type HealthHandler struct {
	db     Pinger
	logger coreport.Logger
}

// NewHealthHandler creates a new health handler instance
func NewHealthHandler(db Pinger, logger coreport.Logger) *HealthHandler {
	return &HealthHandler{db: db, logger: logger}
}

// Health handles the GET /health endpoint
func (h *HealthHandler) Health(c *gin.Context) {
	if err := h.db.Ping(c.Request.Context()); err != nil {
		h.logger.Error("Health check failed", map[string]any{
			"error": err.Error(),
		})
		c.JSON(http.StatusServiceUnavailable, dto.HealthResponse{Status: "unhealthy", Database: "unreachable"})
		return
	}

	resp := dto.HealthResponse{Status: "ok", Database: "ok"}
	if pr, ok := h.db.(PoolReporter); ok {
		inUse, maxOpen, saturated := pr.PoolUsage()
		resp.Pool = &dto.PoolStatus{InUse: inUse, MaxOpen: maxOpen, Saturated: saturated}
		if saturated {
			resp.Status = "degraded"
		}
	}
	c.JSON(http.StatusOK, resp)
}
