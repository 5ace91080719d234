package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/skillhorizon/marketplace-service/internal/services"
	"github.com/skillhorizon/marketplace-service/internal/utils"
)

type AssignmentHandler struct {
	BaseHandler
	assignmentService services.AssignmentService
}

func NewAssignmentHandler(assignmentService services.AssignmentService, logger utils.Logger) *AssignmentHandler {
	return &AssignmentHandler{
		BaseHandler:       NewBaseHandler(logger),
		assignmentService: assignmentService,
	}
}

// CreateAssignment creates an assignment for one of the caller's classes
// @Summary Create assignment
// @Tags assignments
// @Accept json
// @Produce json
// @Param assignment body services.AssignmentCreateRequest true "Assignment data"
// @Success 201 {object} services.InsertResult
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Router /assignments [post]
func (h *AssignmentHandler) CreateAssignment(c *gin.Context) {
	var req services.AssignmentCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid request payload",
			Details: err.Error(),
		})
		return
	}

	email, err := GetUserEmailFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, ErrorResponse{
			Message: "User not authenticated",
		})
		return
	}

	result, err := h.assignmentService.Create(c.Request.Context(), &req, email)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, result)
}

// ListAssignments lists assignments filtered by teacher email and class ID
// @Summary List assignments
// @Tags assignments
// @Produce json
// @Param email query string true "Teacher email"
// @Param class_id query uint true "Class ID"
// @Success 200 {array} models.Assignment
// @Failure 400 {object} ErrorResponse
// @Router /assignments [get]
func (h *AssignmentHandler) ListAssignments(c *gin.Context) {
	email := c.Query("email")
	classID, err := strconv.ParseUint(c.Query("class_id"), 10, 64)
	if err != nil || classID == 0 {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid class_id parameter",
			Details: "must be a positive integer",
		})
		return
	}

	assignments, err := h.assignmentService.ListByTeacherAndClass(c.Request.Context(), email, uint(classID))
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, assignments)
}
