package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/skillhorizon/marketplace-service/internal/services"
	"github.com/skillhorizon/marketplace-service/internal/utils"
)

type TeacherRequestHandler struct {
	BaseHandler
	requestService services.TeacherRequestService
}

func NewTeacherRequestHandler(requestService services.TeacherRequestService, logger utils.Logger) *TeacherRequestHandler {
	return &TeacherRequestHandler{
		BaseHandler:    NewBaseHandler(logger),
		requestService: requestService,
	}
}

// CreateTeacherRequest submits a new teacher application
// @Summary Submit teacher request
// @Tags teacher-requests
// @Accept json
// @Produce json
// @Param request body services.TeacherRequestCreate true "Application data"
// @Success 201 {object} services.InsertResult
// @Failure 400 {object} ErrorResponse
// @Router /teacher-requests [post]
func (h *TeacherRequestHandler) CreateTeacherRequest(c *gin.Context) {
	var req services.TeacherRequestCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid request payload",
			Details: err.Error(),
		})
		return
	}

	result, err := h.requestService.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, result)
}

// ListTeacherRequests lists all teacher applications
// @Summary List teacher requests
// @Tags teacher-requests
// @Produce json
// @Success 200 {array} models.TeacherRequest
// @Failure 403 {object} ErrorResponse
// @Router /teacher-requests [get]
func (h *TeacherRequestHandler) ListTeacherRequests(c *gin.Context) {
	requests, err := h.requestService.List(c.Request.Context())
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, requests)
}

// ResubmitTeacherRequest resets a rejected application back to Pending. The
// path email must match the caller's verified email.
// @Summary Resubmit teacher request
// @Tags teacher-requests
// @Produce json
// @Param email path string true "Applicant email"
// @Success 200 {object} services.UpdateResult
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /teacher-requests/{email} [patch]
func (h *TeacherRequestHandler) ResubmitTeacherRequest(c *gin.Context) {
	email, err := GetUserEmailFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, ErrorResponse{
			Message: "User not authenticated",
		})
		return
	}

	if c.Param("email") != email {
		c.JSON(http.StatusForbidden, ErrorResponse{
			Message: "Forbidden",
			Details: "cannot resubmit another user's request",
		})
		return
	}

	h.LogRequest(c, "Resubmitting teacher request", "email", email)

	result, err := h.requestService.Resubmit(c.Request.Context(), email)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
