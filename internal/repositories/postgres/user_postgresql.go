package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/skillhorizon/marketplace-service/internal/models"
	"github.com/skillhorizon/marketplace-service/internal/repositories"
)

type userRepository struct {
	db *gorm.DB
}

func NewUserPostgreSQL(db *gorm.DB) repositories.UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, tx *gorm.DB, user *models.User) error {
	db := getDB(r.db, tx)
	if err := db.WithContext(ctx).Create(user).Error; err != nil {
		return handleDBError(err, "create user")
	}
	return nil
}

func (r *userRepository) GetByID(ctx context.Context, tx *gorm.DB, id uint) (*models.User, error) {
	db := getDB(r.db, tx)
	var user models.User
	if err := db.WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, handleDBError(err, "get user by id")
	}
	return &user, nil
}

func (r *userRepository) GetByEmail(ctx context.Context, tx *gorm.DB, email string) (*models.User, error) {
	db := getDB(r.db, tx)
	var user models.User
	if err := db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return nil, handleDBError(err, "get user by email")
	}
	return &user, nil
}

func (r *userRepository) List(ctx context.Context, tx *gorm.DB) ([]*models.User, error) {
	db := getDB(r.db, tx)
	var users []*models.User
	if err := db.WithContext(ctx).Order("created_at ASC").Find(&users).Error; err != nil {
		return nil, handleDBError(err, "list users")
	}
	return users, nil
}

func (r *userRepository) ExistsByEmail(ctx context.Context, tx *gorm.DB, email string) (bool, error) {
	db := getDB(r.db, tx)
	var count int64
	if err := db.WithContext(ctx).
		Model(&models.User{}).
		Where("email = ?", email).
		Count(&count).Error; err != nil {
		return false, handleDBError(err, "check user exists")
	}
	return count > 0, nil
}

func (r *userRepository) UpdateRoleByID(ctx context.Context, tx *gorm.DB, id uint, role models.UserRole) (int64, error) {
	db := getDB(r.db, tx)
	result := db.WithContext(ctx).
		Model(&models.User{}).
		Where("id = ?", id).
		Update("role", role)
	if result.Error != nil {
		return 0, handleDBError(result.Error, "update user role by id")
	}
	return result.RowsAffected, nil
}

func (r *userRepository) UpdateRoleByEmail(ctx context.Context, tx *gorm.DB, email string, role models.UserRole) (int64, error) {
	db := getDB(r.db, tx)
	result := db.WithContext(ctx).
		Model(&models.User{}).
		Where("email = ?", email).
		Update("role", role)
	if result.Error != nil {
		return 0, handleDBError(result.Error, "update user role by email")
	}
	return result.RowsAffected, nil
}
