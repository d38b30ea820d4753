package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	domainerr "github.com/amirhossein-jamali/alert-processor/internal/domain/error"
	coreport "github.com/amirhossein-jamali/alert-processor/internal/domain/port/core"
	"github.com/amirhossein-jamali/alert-processor/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/alert-processor/internal/infrastructure/adapter/api/dto"
)

// UserHandler handles user-related HTTP requests
type UserHandler struct {
	userUseCase  usecase.UserUseCase
	events       usecase.EventUseCase
	historyLimit int
	logger       coreport.Logger
}

// NewUserHandler creates a new user handler instance
func NewUserHandler(
	userUseCase usecase.UserUseCase,
	events usecase.EventUseCase,
	historyLimit int,
	logger coreport.Logger,
) *UserHandler {
	return &UserHandler{
		userUseCase:  userUseCase,
		events:       events,
		historyLimit: historyLimit,
		logger:       logger,
	}
}

func parseUserID(c *gin.Context) (uint64, bool) {
	userID, err := strconv.ParseUint(c.Param("userId"), 10, 64)
	if err != nil || userID == 0 {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidUserID),
			Error:   "Invalid payload",
			Message: "Invalid user ID format",
		})
		return 0, false
	}
	return userID, true
}

// GetUser handles the GET /user/{userId} endpoint
func (h *UserHandler) GetUser(c *gin.Context) {
	userID, ok := parseUserID(c)
	if !ok {
		return
	}

	user, err := h.userUseCase.GetUser(c.Request.Context(), userID)
	if err != nil {
		if StatusCode(err) >= http.StatusInternalServerError {
			h.logger.Error("Error getting user", map[string]any{
				"userId": userID,
				"error":  err.Error(),
			})
		}
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.UserResponse{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
	})
}

// RecentEvents handles the GET /user/{userId}/events endpoint
func (h *UserHandler) RecentEvents(c *gin.Context) {
	userID, ok := parseUserID(c)
	if !ok {
		return
	}

	limit := h.historyLimit
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			invalidPayload(c, map[string]string{"limit": "Ensure this value is a positive integer."})
			return
		}
		limit = parsed
	}

	events, err := h.events.RecentEvents(c.Request.Context(), userID, limit)
	if err != nil {
		if StatusCode(err) >= http.StatusInternalServerError {
			h.logger.Error("Error reading event history", map[string]any{
				"userId": userID,
				"error":  err.Error(),
			})
		}
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.EventHistoryResponse{
		UserID: userID,
		Events: dto.NewEventResponses(events),
	})
}
