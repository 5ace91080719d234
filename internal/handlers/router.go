package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/skillhorizon/marketplace-service/internal/auth"
	"github.com/skillhorizon/marketplace-service/internal/models"
	"github.com/skillhorizon/marketplace-service/internal/repositories"
	"github.com/skillhorizon/marketplace-service/internal/services"
	"github.com/skillhorizon/marketplace-service/internal/utils"
)

type HandlerManager struct {
	userHandler           *UserHandler
	teacherRequestHandler *TeacherRequestHandler
	classHandler          *ClassHandler
	assignmentHandler     *AssignmentHandler
	paymentHandler        *PaymentHandler
	reportHandler         *ReportHandler
	authMiddleware        *JWTAuthMiddleware
}

func NewHandlerManager(
	serviceManager services.ServiceManager,
	tokens *auth.TokenManager,
	userRepo repositories.UserRepository,
	logger utils.Logger,
) *HandlerManager {
	return &HandlerManager{
		userHandler:           NewUserHandler(serviceManager.User(), logger),
		teacherRequestHandler: NewTeacherRequestHandler(serviceManager.TeacherRequest(), logger),
		classHandler:          NewClassHandler(serviceManager.Class(), logger),
		assignmentHandler:     NewAssignmentHandler(serviceManager.Assignment(), logger),
		paymentHandler:        NewPaymentHandler(serviceManager.Payment(), logger),
		reportHandler:         NewReportHandler(serviceManager.Report(), logger),
		authMiddleware:        NewJWTAuthMiddleware(tokens, userRepo),
	}
}

// SetupRoutes sets up all API routes
func (hm *HandlerManager) SetupRoutes(router *gin.Engine) {
	requireAuth := hm.authMiddleware.AuthMiddleware()
	requireTeacher := hm.authMiddleware.RequireRoleMiddleware(models.RoleTeacher)
	requireAdmin := hm.authMiddleware.RequireRoleMiddleware(models.RoleAdmin)

	// Public routes
	router.GET("/", func(c *gin.Context) {
		c.String(200, "SkillHorizon marketplace is running")
	})
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "healthy",
			"service": "marketplace-service",
		})
	})
	router.POST("/jwt", hm.userHandler.IssueToken)
	router.POST("/users", hm.userHandler.CreateUser)
	router.GET("/users/role/:email", hm.userHandler.GetUserRole)
	router.GET("/all-classes", hm.classHandler.ListAcceptedClasses)
	router.POST("/create-payment-intent", hm.paymentHandler.CreatePaymentIntent)

	// Authenticated routes (any role)
	router.GET("/users/:email", requireAuth, hm.userHandler.GetUser)
	router.POST("/teacher-requests", requireAuth, hm.teacherRequestHandler.CreateTeacherRequest)
	router.PATCH("/teacher-requests/:email", requireAuth, hm.teacherRequestHandler.ResubmitTeacherRequest)
	router.POST("/payments", requireAuth, hm.paymentHandler.RecordPayment)
	router.GET("/enrolled-classes/:email", requireAuth, hm.paymentHandler.ListEnrolledClasses)

	// Teacher routes
	classes := router.Group("/classes")
	{
		classes.POST("", requireAuth, requireTeacher, hm.classHandler.CreateClass)
		classes.GET("/:email", requireAuth, requireTeacher, hm.classHandler.ListOwnClasses)
		classes.PATCH("/:id", requireAuth, requireTeacher, hm.classHandler.UpdateClass)
		classes.DELETE("/:id", requireAuth, requireTeacher, hm.classHandler.DeleteClass)

		// Admin listing of every class, any status
		classes.GET("", requireAuth, requireAdmin, hm.classHandler.ListAllClasses)
	}

	assignments := router.Group("/assignments")
	assignments.Use(requireAuth, requireTeacher)
	{
		assignments.POST("", hm.assignmentHandler.CreateAssignment)
		assignments.GET("", hm.assignmentHandler.ListAssignments)
	}

	// Admin routes
	router.GET("/users", requireAuth, requireAdmin, hm.userHandler.ListUsers)
	router.GET("/teacher-requests", requireAuth, requireAdmin, hm.teacherRequestHandler.ListTeacherRequests)
	router.PATCH("/users/admin/:id", requireAuth, requireAdmin, hm.userHandler.MakeAdmin)
	router.PATCH("/users/teacher-approve/:email", requireAuth, requireAdmin, hm.userHandler.ApproveTeacher)
	router.PATCH("/users/teacher-reject/:email", requireAuth, requireAdmin, hm.userHandler.RejectTeacher)

	admin := router.Group("/admin")
	admin.Use(requireAuth, requireAdmin)
	{
		admin.PATCH("/approve-class/:id", hm.classHandler.ApproveClass)
		admin.PATCH("/reject-class/:id", hm.classHandler.RejectClass)
		admin.GET("/reports/payments", hm.reportHandler.PaymentsReport)
		admin.GET("/reports/classes", hm.reportHandler.ClassesReport)
	}
}
