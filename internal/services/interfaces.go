package services

import (
	"context"

	"github.com/xuri/excelize/v2"

	"github.com/skillhorizon/marketplace-service/internal/models"
	"github.com/skillhorizon/marketplace-service/internal/validator"
)

// ===== REQUEST/RESPONSE DTOs =====

// Request DTOs live with the validator so the validation tags stay in one
// place.
type TokenRequest = validator.TokenRequest
type UserCreateRequest = validator.UserCreateRequest
type TeacherRequestCreate = validator.TeacherRequestCreate
type ClassCreateRequest = validator.ClassCreateRequest
type ClassUpdateRequest = validator.ClassUpdateRequest
type AssignmentCreateRequest = validator.AssignmentCreateRequest
type PaymentIntentRequest = validator.PaymentIntentRequest
type PaymentCreateRequest = validator.PaymentCreateRequest

// InsertResult reports the outcome of a create call. A sign-up that found
// an existing user returns a nil InsertedID and a message, distinguishable
// from a fresh insert.
type InsertResult struct {
	InsertedID *uint  `json:"inserted_id"`
	Message    string `json:"message,omitempty"`
}

// UpdateResult mirrors the matched/modified counts of a single update call.
type UpdateResult struct {
	MatchedCount  int64 `json:"matched_count"`
	ModifiedCount int64 `json:"modified_count"`
}

// DualUpdateResult reports the two halves of a teacher approve/reject. The
// two updates are sequential and non-atomic; RequestMatched can be nonzero
// even when the flow fails on the user side.
type DualUpdateResult struct {
	RequestMatched int64 `json:"request_matched_count"`
	UserMatched    int64 `json:"user_matched_count"`
}

type TokenResponse struct {
	Token string `json:"token"`
}

type RoleResponse struct {
	Role models.UserRole `json:"role"`
}

// PaymentIntentResponse keeps the clientSecret key the frontend expects.
type PaymentIntentResponse struct {
	ClientSecret string `json:"clientSecret"`
}

// ===== SERVICE INTERFACES =====

type UserService interface {
	IssueToken(ctx context.Context, req *TokenRequest) (*TokenResponse, error)

	// Create is idempotent by email: an existing user yields a no-op
	// success marker, not an error.
	Create(ctx context.Context, req *UserCreateRequest) (*InsertResult, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetRole(ctx context.Context, email string) (models.UserRole, error)
	List(ctx context.Context) ([]*models.User, error)

	MakeAdmin(ctx context.Context, id uint) (*UpdateResult, error)

	// ApproveTeacher / RejectTeacher update TeacherRequest.Status and then
	// User.Role as two separate calls with no rollback of the first when
	// the second fails.
	ApproveTeacher(ctx context.Context, email string) (*DualUpdateResult, error)
	RejectTeacher(ctx context.Context, email string) (*DualUpdateResult, error)
}

type TeacherRequestService interface {
	Create(ctx context.Context, req *TeacherRequestCreate) (*InsertResult, error)
	List(ctx context.Context) ([]*models.TeacherRequest, error)

	// Resubmit resets the caller's request back to Pending.
	Resubmit(ctx context.Context, email string) (*UpdateResult, error)
}

type ClassService interface {
	Create(ctx context.Context, req *ClassCreateRequest) (*InsertResult, error)
	GetByOwner(ctx context.Context, ownerEmail string) ([]*models.Class, error)
	List(ctx context.Context) ([]*models.Class, error)
	ListAccepted(ctx context.Context) ([]*models.Class, error)

	Update(ctx context.Context, id uint, req *ClassUpdateRequest, requesterEmail string) error
	Delete(ctx context.Context, id uint, requesterEmail string) error

	Approve(ctx context.Context, id uint) (*UpdateResult, error)
	Reject(ctx context.Context, id uint) (*UpdateResult, error)
}

type AssignmentService interface {
	Create(ctx context.Context, req *AssignmentCreateRequest, requesterEmail string) (*InsertResult, error)
	ListByTeacherAndClass(ctx context.Context, teacherEmail string, classID uint) ([]*models.Assignment, error)
}

type PaymentService interface {
	CreateIntent(ctx context.Context, req *PaymentIntentRequest) (*PaymentIntentResponse, error)
	Record(ctx context.Context, req *PaymentCreateRequest) (*InsertResult, error)

	// EnrolledClasses resolves a student's payments to class summaries,
	// preserving payment order. Dangling class references keep their slot
	// with zero-valued fields.
	EnrolledClasses(ctx context.Context, studentEmail string) ([]models.EnrolledClass, error)
}

type ReportService interface {
	PaymentsReport(ctx context.Context) (*excelize.File, error)
	ClassesReport(ctx context.Context) (*excelize.File, error)
}

// ===== SERVICE MANAGER =====

type ServiceManager interface {
	User() UserService
	TeacherRequest() TeacherRequestService
	Class() ClassService
	Assignment() AssignmentService
	Payment() PaymentService
	Report() ReportService

	Initialize(ctx context.Context) error
	HealthCheck(ctx context.Context) error
	Shutdown(ctx context.Context) error
}
