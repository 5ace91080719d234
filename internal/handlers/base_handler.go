package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/skillhorizon/marketplace-service/internal/services"
	"github.com/skillhorizon/marketplace-service/internal/utils"
)

// ErrorResponse is the error payload returned by all handlers
type ErrorResponse struct {
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

// BaseHandler provides shared logging and error translation for handlers
type BaseHandler struct {
	logger utils.Logger
}

func NewBaseHandler(logger utils.Logger) BaseHandler {
	return BaseHandler{logger: logger}
}

// LogRequest logs a handler entry with the request-scoped logger
func (h *BaseHandler) LogRequest(c *gin.Context, msg string, args ...any) {
	utils.LoggerFromContext(c, h.logger).Info(msg, args...)
}

// LogError logs a handler failure with the request-scoped logger
func (h *BaseHandler) LogError(c *gin.Context, err error, msg string, args ...any) {
	args = append(args, "error", err)
	utils.LoggerFromContext(c, h.logger).Error(msg, args...)
}

// parseIDParam parses a numeric path parameter, writing a 400 and returning 0
// when it is not a positive integer.
func (h *BaseHandler) parseIDParam(c *gin.Context, name string) uint {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid " + name + " parameter",
			Details: "must be a positive integer",
		})
		return 0
	}
	return uint(id)
}

// handleServiceError translates service sentinel errors to HTTP status codes
func (h *BaseHandler) handleServiceError(c *gin.Context, err error) {
	switch {
	case services.IsValidationError(err):
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Validation failed",
			Details: err.Error(),
		})
	case services.IsUnauthorizedError(err):
		c.JSON(http.StatusUnauthorized, ErrorResponse{
			Message: "Unauthorized",
			Details: err.Error(),
		})
	case services.IsForbiddenError(err):
		c.JSON(http.StatusForbidden, ErrorResponse{
			Message: "Forbidden",
			Details: err.Error(),
		})
	case services.IsNotFoundError(err):
		c.JSON(http.StatusNotFound, ErrorResponse{
			Message: "Not found",
			Details: err.Error(),
		})
	case services.IsAlreadyExistsError(err):
		c.JSON(http.StatusConflict, ErrorResponse{
			Message: "Already exists",
			Details: err.Error(),
		})
	default:
		h.LogError(c, err, "Unhandled service error")
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Message: "Internal server error",
		})
	}
}
