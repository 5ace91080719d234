package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/skillhorizon/marketplace-service/internal/models"
	"github.com/skillhorizon/marketplace-service/internal/repositories"
)

type assignmentRepository struct {
	db *gorm.DB
}

func NewAssignmentPostgreSQL(db *gorm.DB) repositories.AssignmentRepository {
	return &assignmentRepository{db: db}
}

func (r *assignmentRepository) Create(ctx context.Context, tx *gorm.DB, assignment *models.Assignment) error {
	db := getDB(r.db, tx)
	if err := db.WithContext(ctx).Create(assignment).Error; err != nil {
		return handleDBError(err, "create assignment")
	}
	return nil
}

func (r *assignmentRepository) ListByTeacherAndClass(ctx context.Context, tx *gorm.DB, teacherEmail string, classID uint) ([]*models.Assignment, error) {
	db := getDB(r.db, tx)
	var assignments []*models.Assignment
	if err := db.WithContext(ctx).
		Where("teacher_email = ? AND class_id = ?", teacherEmail, classID).
		Order("created_at ASC").
		Find(&assignments).Error; err != nil {
		return nil, handleDBError(err, "list assignments by teacher and class")
	}
	return assignments, nil
}
