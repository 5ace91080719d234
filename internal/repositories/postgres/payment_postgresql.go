package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/skillhorizon/marketplace-service/internal/models"
	"github.com/skillhorizon/marketplace-service/internal/repositories"
)

type paymentRepository struct {
	db *gorm.DB
}

func NewPaymentPostgreSQL(db *gorm.DB) repositories.PaymentRepository {
	return &paymentRepository{db: db}
}

func (r *paymentRepository) Create(ctx context.Context, tx *gorm.DB, payment *models.Payment) error {
	db := getDB(r.db, tx)
	if err := db.WithContext(ctx).Create(payment).Error; err != nil {
		return handleDBError(err, "create payment")
	}
	return nil
}

func (r *paymentRepository) ListByStudent(ctx context.Context, tx *gorm.DB, studentEmail string) ([]*models.Payment, error) {
	db := getDB(r.db, tx)
	var payments []*models.Payment
	// Insertion order; the enrollment projection preserves it.
	if err := db.WithContext(ctx).
		Where("student_email = ?", studentEmail).
		Order("id ASC").
		Find(&payments).Error; err != nil {
		return nil, handleDBError(err, "list payments by student")
	}
	return payments, nil
}

func (r *paymentRepository) List(ctx context.Context, tx *gorm.DB) ([]*models.Payment, error) {
	db := getDB(r.db, tx)
	var payments []*models.Payment
	if err := db.WithContext(ctx).Order("id ASC").Find(&payments).Error; err != nil {
		return nil, handleDBError(err, "list payments")
	}
	return payments, nil
}
