package postgres

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/skillhorizon/marketplace-service/internal/repositories"
)

// getDB picks the transaction handle when one is supplied.
func getDB(base, tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx
	}
	return base
}

// handleDBError maps driver errors to the repository sentinel errors,
// keeping the operation name for logs.
func handleDBError(err error, op string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%s: %w", op, repositories.ErrNotFound)
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return fmt.Errorf("%s: %w", op, repositories.ErrDuplicate)
	}
	return fmt.Errorf("%s: %w", op, err)
}
