package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/skillhorizon/marketplace-service/internal/services"
	"github.com/skillhorizon/marketplace-service/internal/utils"
)

type ClassHandler struct {
	BaseHandler
	classService services.ClassService
}

func NewClassHandler(classService services.ClassService, logger utils.Logger) *ClassHandler {
	return &ClassHandler{
		BaseHandler:  NewBaseHandler(logger),
		classService: classService,
	}
}

// CreateClass submits a new class for review
// @Summary Create class
// @Description Submits a class; new classes always start Pending
// @Tags classes
// @Accept json
// @Produce json
// @Param class body services.ClassCreateRequest true "Class data"
// @Success 201 {object} services.InsertResult
// @Failure 400 {object} ErrorResponse
// @Router /classes [post]
func (h *ClassHandler) CreateClass(c *gin.Context) {
	var req services.ClassCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid request payload",
			Details: err.Error(),
		})
		return
	}

	result, err := h.classService.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, result)
}

// ListAcceptedClasses lists the public catalog of approved classes
// @Summary List accepted classes
// @Tags classes
// @Produce json
// @Success 200 {array} models.Class
// @Router /all-classes [get]
func (h *ClassHandler) ListAcceptedClasses(c *gin.Context) {
	classes, err := h.classService.ListAccepted(c.Request.Context())
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, classes)
}

// ListAllClasses lists every class regardless of status
// @Summary List all classes
// @Tags classes
// @Produce json
// @Success 200 {array} models.Class
// @Failure 403 {object} ErrorResponse
// @Router /classes [get]
func (h *ClassHandler) ListAllClasses(c *gin.Context) {
	classes, err := h.classService.List(c.Request.Context())
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, classes)
}

// ListOwnClasses lists a teacher's classes. The path email must match the
// caller's verified email.
// @Summary List own classes
// @Tags classes
// @Produce json
// @Param email path string true "Owner email"
// @Success 200 {array} models.Class
// @Failure 403 {object} ErrorResponse
// @Router /classes/{email} [get]
func (h *ClassHandler) ListOwnClasses(c *gin.Context) {
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
			Details: "cannot list another teacher's classes",
		})
		return
	}

	classes, err := h.classService.GetByOwner(c.Request.Context(), email)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, classes)
}

// UpdateClass updates a class the caller owns
// @Summary Update class
// @Tags classes
// @Accept json
// @Produce json
// @Param id path uint true "Class ID"
// @Param class body services.ClassUpdateRequest true "Fields to update"
// @Success 200 {object} map[string]string
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /classes/{id} [patch]
func (h *ClassHandler) UpdateClass(c *gin.Context) {
	id := h.parseIDParam(c, "id")
	if id == 0 {
		return
	}

	var req services.ClassUpdateRequest
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

	if err := h.classService.Update(c.Request.Context(), id, &req, email); err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "class updated"})
}

// DeleteClass removes a class the caller owns
// @Summary Delete class
// @Tags classes
// @Produce json
// @Param id path uint true "Class ID"
// @Success 200 {object} map[string]string
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /classes/{id} [delete]
func (h *ClassHandler) DeleteClass(c *gin.Context) {
	id := h.parseIDParam(c, "id")
	if id == 0 {
		return
	}

	email, err := GetUserEmailFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, ErrorResponse{
			Message: "User not authenticated",
		})
		return
	}

	h.LogRequest(c, "Deleting class", "class_id", id)

	if err := h.classService.Delete(c.Request.Context(), id, email); err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "class deleted"})
}

// ApproveClass marks a class Accepted, publishing it to the catalog
// @Summary Approve class
// @Tags classes
// @Produce json
// @Param id path uint true "Class ID"
// @Success 200 {object} services.UpdateResult
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /admin/approve-class/{id} [patch]
func (h *ClassHandler) ApproveClass(c *gin.Context) {
	id := h.parseIDParam(c, "id")
	if id == 0 {
		return
	}

	h.LogRequest(c, "Approving class", "class_id", id)

	result, err := h.classService.Approve(c.Request.Context(), id)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// RejectClass marks a class Rejected
// @Summary Reject class
// @Tags classes
// @Produce json
// @Param id path uint true "Class ID"
// @Success 200 {object} services.UpdateResult
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /admin/reject-class/{id} [patch]
func (h *ClassHandler) RejectClass(c *gin.Context) {
	id := h.parseIDParam(c, "id")
	if id == 0 {
		return
	}

	h.LogRequest(c, "Rejecting class", "class_id", id)

	result, err := h.classService.Reject(c.Request.Context(), id)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
