package repositories

import (
	"context"

	"gorm.io/gorm"

	"github.com/skillhorizon/marketplace-service/internal/models"
)

// Every method takes an optional transaction handle; pass nil to run
// against the base connection.

type UserRepository interface {
	Create(ctx context.Context, tx *gorm.DB, user *models.User) error
	GetByID(ctx context.Context, tx *gorm.DB, id uint) (*models.User, error)
	GetByEmail(ctx context.Context, tx *gorm.DB, email string) (*models.User, error)
	List(ctx context.Context, tx *gorm.DB) ([]*models.User, error)
	ExistsByEmail(ctx context.Context, tx *gorm.DB, email string) (bool, error)

	// Role updates return the matched row count so callers can map a zero
	// match to not-found.
	UpdateRoleByID(ctx context.Context, tx *gorm.DB, id uint, role models.UserRole) (int64, error)
	UpdateRoleByEmail(ctx context.Context, tx *gorm.DB, email string, role models.UserRole) (int64, error)
}

type TeacherRequestRepository interface {
	Create(ctx context.Context, tx *gorm.DB, request *models.TeacherRequest) error
	GetByEmail(ctx context.Context, tx *gorm.DB, email string) (*models.TeacherRequest, error)
	List(ctx context.Context, tx *gorm.DB) ([]*models.TeacherRequest, error)
	UpdateStatusByEmail(ctx context.Context, tx *gorm.DB, email string, status models.RequestStatus) (int64, error)
}

type ClassRepository interface {
	Create(ctx context.Context, tx *gorm.DB, class *models.Class) error
	GetByID(ctx context.Context, tx *gorm.DB, id uint) (*models.Class, error)
	GetByOwner(ctx context.Context, tx *gorm.DB, ownerEmail string) ([]*models.Class, error)
	List(ctx context.Context, tx *gorm.DB) ([]*models.Class, error)
	ListByStatus(ctx context.Context, tx *gorm.DB, status models.RequestStatus) ([]*models.Class, error)
	Update(ctx context.Context, tx *gorm.DB, class *models.Class) error
	UpdateStatus(ctx context.Context, tx *gorm.DB, id uint, status models.RequestStatus) (int64, error)
	Delete(ctx context.Context, tx *gorm.DB, id uint) (int64, error)
}

type AssignmentRepository interface {
	Create(ctx context.Context, tx *gorm.DB, assignment *models.Assignment) error
	ListByTeacherAndClass(ctx context.Context, tx *gorm.DB, teacherEmail string, classID uint) ([]*models.Assignment, error)
}

type PaymentRepository interface {
	Create(ctx context.Context, tx *gorm.DB, payment *models.Payment) error
	// ListByStudent returns payments in insertion order; the enrollment
	// lookup depends on that ordering.
	ListByStudent(ctx context.Context, tx *gorm.DB, studentEmail string) ([]*models.Payment, error)
	List(ctx context.Context, tx *gorm.DB) ([]*models.Payment, error)
}
