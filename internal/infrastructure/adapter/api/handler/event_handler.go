package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	domainerr "github.com/amirhossein-jamali/alert-processor/internal/domain/error"
	coreport "github.com/amirhossein-jamali/alert-processor/internal/domain/port/core"
	"github.com/amirhossein-jamali/alert-processor/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/alert-processor/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/alert-processor/internal/infrastructure/adapter/api/middleware"
)

// EventHandler handles event ingestion requests
type EventHandler struct {
	events usecase.EventUseCase
	logger coreport.Logger
}

// NewEventHandler creates a new event handler instance
func NewEventHandler(events usecase.EventUseCase, logger coreport.Logger) *EventHandler {
	return &EventHandler{
		events: events,
		logger: logger,
	}
}

// IngestEvent handles the POST /event endpoint
func (h *EventHandler) IngestEvent(c *gin.Context) {
	var body dto.EventRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.logger.Warn("Invalid event payload", map[string]any{
			"error":      err.Error(),
			"request_id": c.GetString(middleware.RequestIDKey),
		})
		invalidPayload(c, map[string]string{"body": err.Error()})
		return
	}

	req, details := body.ToUseCase()
	if details != nil {
		h.logger.Warn("Invalid event payload", map[string]any{
			"details":    details,
			"request_id": c.GetString(middleware.RequestIDKey),
		})
		invalidPayload(c, details)
		return
	}

	resp, err := h.events.IngestEvent(c.Request.Context(), req)
	if err != nil {
		fields := map[string]any{
			"user_id":    req.UserID,
			"timestamp":  req.Timestamp,
			"status":     StatusCode(err),
			"error":      err.Error(),
			"error_code": domainerr.ErrorCode(err),
			"request_id": c.GetString(middleware.RequestIDKey),
		}
		if StatusCode(err) >= http.StatusInternalServerError {
			h.logger.Error("Event ingestion failed", fields)
		} else {
			h.logger.Info("Event rejected", fields)
		}
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
