package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/skillhorizon/marketplace-service/internal/models"
	"github.com/skillhorizon/marketplace-service/internal/services"
	"github.com/skillhorizon/marketplace-service/internal/utils"
)

type UserHandler struct {
	BaseHandler
	userService services.UserService
}

func NewUserHandler(userService services.UserService, logger utils.Logger) *UserHandler {
	return &UserHandler{
		BaseHandler: NewBaseHandler(logger),
		userService: userService,
	}
}

// IssueToken issues a signed token for the given email
// @Summary Issue token
// @Description Issues a short-lived bearer token for the given email
// @Tags auth
// @Accept json
// @Produce json
// @Param request body services.TokenRequest true "Token request"
// @Success 200 {object} services.TokenResponse
// @Failure 400 {object} ErrorResponse
// @Router /jwt [post]
func (h *UserHandler) IssueToken(c *gin.Context) {
	var req services.TokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid request payload",
			Details: err.Error(),
		})
		return
	}

	resp, err := h.userService.IssueToken(c.Request.Context(), &req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// CreateUser registers a user, idempotently by email
// @Summary Create user
// @Description Registers a user; an existing email yields a no-op marker
// @Tags users
// @Accept json
// @Produce json
// @Param user body services.UserCreateRequest true "User data"
// @Success 200 {object} services.InsertResult "User already existed"
// @Success 201 {object} services.InsertResult
// @Failure 400 {object} ErrorResponse
// @Router /users [post]
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req services.UserCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid request payload",
			Details: err.Error(),
		})
		return
	}

	result, err := h.userService.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	if result.InsertedID == nil {
		c.JSON(http.StatusOK, result)
		return
	}
	c.JSON(http.StatusCreated, result)
}

// GetUserRole returns the role stored for an email
// @Summary Get user role
// @Description Returns the stored role for an email, or 404 when unknown
// @Tags users
// @Produce json
// @Param email path string true "User email"
// @Success 200 {object} services.RoleResponse
// @Failure 404 {object} ErrorResponse
// @Router /users/role/{email} [get]
func (h *UserHandler) GetUserRole(c *gin.Context) {
	role, err := h.userService.GetRole(c.Request.Context(), c.Param("email"))
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, services.RoleResponse{Role: role})
}

// GetUser returns a user profile. Callers may read their own profile;
// reading someone else's requires the Admin role.
// @Summary Get user
// @Tags users
// @Produce json
// @Param email path string true "User email"
// @Success 200 {object} models.User
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /users/{email} [get]
func (h *UserHandler) GetUser(c *gin.Context) {
	email := c.Param("email")

	requester, err := GetUserEmailFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, ErrorResponse{
			Message: "User not authenticated",
		})
		return
	}

	if requester != email {
		role, err := h.userService.GetRole(c.Request.Context(), requester)
		if err != nil || role != models.RoleAdmin {
			c.JSON(http.StatusForbidden, ErrorResponse{
				Message: "Forbidden",
				Details: "cannot read another user's profile",
			})
			return
		}
	}

	user, err := h.userService.GetByEmail(c.Request.Context(), email)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

// ListUsers lists all users
// @Summary List users
// @Tags users
// @Produce json
// @Success 200 {array} models.User
// @Failure 403 {object} ErrorResponse
// @Router /users [get]
func (h *UserHandler) ListUsers(c *gin.Context) {
	h.LogRequest(c, "Listing users")

	users, err := h.userService.List(c.Request.Context())
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, users)
}

// MakeAdmin promotes a user to Admin by ID
// @Summary Promote user to admin
// @Tags users
// @Produce json
// @Param id path uint true "User ID"
// @Success 200 {object} services.UpdateResult
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /users/admin/{id} [patch]
func (h *UserHandler) MakeAdmin(c *gin.Context) {
	id := h.parseIDParam(c, "id")
	if id == 0 {
		return
	}

	h.LogRequest(c, "Promoting user to admin", "user_id", id)

	result, err := h.userService.MakeAdmin(c.Request.Context(), id)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// ApproveTeacher accepts a user's teacher request and grants the Teacher role
// @Summary Approve teacher request
// @Tags users
// @Produce json
// @Param email path string true "Applicant email"
// @Success 200 {object} services.DualUpdateResult
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /users/teacher-approve/{email} [patch]
func (h *UserHandler) ApproveTeacher(c *gin.Context) {
	h.LogRequest(c, "Approving teacher request", "email", c.Param("email"))

	result, err := h.userService.ApproveTeacher(c.Request.Context(), c.Param("email"))
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// RejectTeacher rejects a user's teacher request and demotes them to Student
// @Summary Reject teacher request
// @Tags users
// @Produce json
// @Param email path string true "Applicant email"
// @Success 200 {object} services.DualUpdateResult
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /users/teacher-reject/{email} [patch]
func (h *UserHandler) RejectTeacher(c *gin.Context) {
	h.LogRequest(c, "Rejecting teacher request", "email", c.Param("email"))

	result, err := h.userService.RejectTeacher(c.Request.Context(), c.Param("email"))
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
