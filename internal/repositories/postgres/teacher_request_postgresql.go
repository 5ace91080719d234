package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/skillhorizon/marketplace-service/internal/models"
	"github.com/skillhorizon/marketplace-service/internal/repositories"
)

type teacherRequestRepository struct {
	db *gorm.DB
}

func NewTeacherRequestPostgreSQL(db *gorm.DB) repositories.TeacherRequestRepository {
	return &teacherRequestRepository{db: db}
}

func (r *teacherRequestRepository) Create(ctx context.Context, tx *gorm.DB, request *models.TeacherRequest) error {
	db := getDB(r.db, tx)
	if err := db.WithContext(ctx).Create(request).Error; err != nil {
		return handleDBError(err, "create teacher request")
	}
	return nil
}

func (r *teacherRequestRepository) GetByEmail(ctx context.Context, tx *gorm.DB, email string) (*models.TeacherRequest, error) {
	db := getDB(r.db, tx)
	var request models.TeacherRequest
	if err := db.WithContext(ctx).
		Where("email = ?", email).
		Order("created_at DESC").
		First(&request).Error; err != nil {
		return nil, handleDBError(err, "get teacher request by email")
	}
	return &request, nil
}

func (r *teacherRequestRepository) List(ctx context.Context, tx *gorm.DB) ([]*models.TeacherRequest, error) {
	db := getDB(r.db, tx)
	var requests []*models.TeacherRequest
	if err := db.WithContext(ctx).Order("created_at ASC").Find(&requests).Error; err != nil {
		return nil, handleDBError(err, "list teacher requests")
	}
	return requests, nil
}

func (r *teacherRequestRepository) UpdateStatusByEmail(ctx context.Context, tx *gorm.DB, email string, status models.RequestStatus) (int64, error) {
	db := getDB(r.db, tx)
	result := db.WithContext(ctx).
		Model(&models.TeacherRequest{}).
		Where("email = ?", email).
		Update("status", status)
	if result.Error != nil {
		return 0, handleDBError(result.Error, "update teacher request status")
	}
	return result.RowsAffected, nil
}
