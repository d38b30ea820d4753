package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainerr "github.com/amirhossein-jamali/alert-processor/internal/domain/error"
	"github.com/amirhossein-jamali/alert-processor/internal/infrastructure/adapter/api/dto"
)

// StatusCode maps a domain error to its HTTP status
func StatusCode(err error) int {
	switch {
	case domainerr.IsInputError(err):
		return http.StatusBadRequest
	case domainerr.IsUserNotFoundError(err):
		return http.StatusNotFound
	case domainerr.IsConflictError(err):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// writeError renders err in the response shape matching its class
func writeError(c *gin.Context, err error) {
	status := StatusCode(err)

	var verr *domainerr.ValidationError
	var ordering *domainerr.OrderingViolationError
	var duplicate *domainerr.DuplicateTimestampError

	switch {
	case errors.As(err, &verr):
		c.JSON(status, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(err),
			Error:   "Invalid payload",
			Details: verr.Details,
		})
	case errors.As(err, &ordering):
		latest := ordering.Latest
		c.JSON(status, dto.ConflictResponse{
			Code:      domainerr.CodeOrderingViolation,
			Error:     "Invalid payload",
			Message:   ordering.Error(),
			UserID:    ordering.UserID,
			Timestamp: ordering.Attempted,
			Latest:    &latest,
		})
	case errors.As(err, &duplicate):
		c.JSON(status, dto.ConflictResponse{
			Code:      domainerr.CodeDuplicateTimestamp,
			Error:     "Duplicate timestamp",
			Message:   duplicate.Error(),
			UserID:    duplicate.UserID,
			Timestamp: duplicate.Timestamp,
		})
	case status == http.StatusBadRequest:
		c.JSON(status, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(err),
			Error:   "Invalid payload",
			Message: err.Error(),
		})
	case status == http.StatusNotFound:
		c.JSON(status, dto.ErrorResponse{
			Code:    domainerr.CodeUserNotFound,
			Error:   "User not found",
			Details: map[string]string{"user_id": "User does not exist"},
		})
	default:
		c.JSON(status, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(err),
			Error:   "Database error",
			Message: "Failed to process request",
		})
	}
}

// invalidPayload renders a 400 for a body that failed to bind
func invalidPayload(c *gin.Context, details map[string]string) {
	c.JSON(http.StatusBadRequest, dto.ErrorResponse{
		Code:    domainerr.CodeInvalidRequest,
		Error:   "Invalid payload",
		Details: details,
	})
}
