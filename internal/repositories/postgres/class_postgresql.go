package postgres

import (
	"context"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/skillhorizon/marketplace-service/internal/cache"
	"github.com/skillhorizon/marketplace-service/internal/models"
	"github.com/skillhorizon/marketplace-service/internal/repositories"
)

// classRepository caches only the public Accepted-classes listing. Every
// write path drops the cached listing so approvals and rejections are
// visible immediately.
type classRepository struct {
	db    *gorm.DB
	cache *cache.CacheHelper
}

func NewClassPostgreSQL(db *gorm.DB, redisClient *redis.Client) repositories.ClassRepository {
	return &classRepository{
		db:    db,
		cache: cache.NewCacheHelper(redisClient, "classes:"),
	}
}

func (r *classRepository) Create(ctx context.Context, tx *gorm.DB, class *models.Class) error {
	db := getDB(r.db, tx)
	if err := db.WithContext(ctx).Create(class).Error; err != nil {
		return handleDBError(err, "create class")
	}
	r.invalidateListing(ctx)
	return nil
}

func (r *classRepository) GetByID(ctx context.Context, tx *gorm.DB, id uint) (*models.Class, error) {
	db := getDB(r.db, tx)
	var class models.Class
	if err := db.WithContext(ctx).First(&class, id).Error; err != nil {
		return nil, handleDBError(err, "get class by id")
	}
	return &class, nil
}

func (r *classRepository) GetByOwner(ctx context.Context, tx *gorm.DB, ownerEmail string) ([]*models.Class, error) {
	db := getDB(r.db, tx)
	var classes []*models.Class
	if err := db.WithContext(ctx).
		Where("owner_email = ?", ownerEmail).
		Order("created_at ASC").
		Find(&classes).Error; err != nil {
		return nil, handleDBError(err, "list classes by owner")
	}
	return classes, nil
}

func (r *classRepository) List(ctx context.Context, tx *gorm.DB) ([]*models.Class, error) {
	db := getDB(r.db, tx)
	var classes []*models.Class
	if err := db.WithContext(ctx).Order("created_at ASC").Find(&classes).Error; err != nil {
		return nil, handleDBError(err, "list classes")
	}
	return classes, nil
}

func (r *classRepository) ListByStatus(ctx context.Context, tx *gorm.DB, status models.RequestStatus) ([]*models.Class, error) {
	// Cache hit path only serves the public Accepted listing.
	if status == models.StatusAccepted && tx == nil {
		var cached []*models.Class
		if err := r.cache.Get(ctx, cache.AcceptedClassesKey, &cached); err == nil {
			return cached, nil
		}
		// Misses and cache failures both fall through to the database.
	}

	db := getDB(r.db, tx)
	var classes []*models.Class
	if err := db.WithContext(ctx).
		Where("status = ?", status).
		Order("created_at ASC").
		Find(&classes).Error; err != nil {
		return nil, handleDBError(err, "list classes by status")
	}

	if status == models.StatusAccepted && tx == nil {
		_ = r.cache.Set(ctx, cache.AcceptedClassesKey, classes, cache.ListingTTL)
	}

	return classes, nil
}

func (r *classRepository) Update(ctx context.Context, tx *gorm.DB, class *models.Class) error {
	db := getDB(r.db, tx)
	if err := db.WithContext(ctx).Save(class).Error; err != nil {
		return handleDBError(err, "update class")
	}
	r.invalidateListing(ctx)
	return nil
}

func (r *classRepository) UpdateStatus(ctx context.Context, tx *gorm.DB, id uint, status models.RequestStatus) (int64, error) {
	db := getDB(r.db, tx)
	result := db.WithContext(ctx).
		Model(&models.Class{}).
		Where("id = ?", id).
		Update("status", status)
	if result.Error != nil {
		return 0, handleDBError(result.Error, "update class status")
	}
	r.invalidateListing(ctx)
	return result.RowsAffected, nil
}

func (r *classRepository) Delete(ctx context.Context, tx *gorm.DB, id uint) (int64, error) {
	db := getDB(r.db, tx)
	result := db.WithContext(ctx).Delete(&models.Class{}, id)
	if result.Error != nil {
		return 0, handleDBError(result.Error, "delete class")
	}
	r.invalidateListing(ctx)
	return result.RowsAffected, nil
}

func (r *classRepository) invalidateListing(ctx context.Context) {
	_ = r.cache.Delete(ctx, cache.AcceptedClassesKey)
}
