package models

import (
	"time"

	"gorm.io/datatypes"
)

// Payment records a completed charge for a class. ClassID is a weak
// reference: the class may be deleted later and the payment still stands.
type Payment struct {
	ID            uint           `json:"id" gorm:"primaryKey"`
	StudentEmail  string         `json:"student_email" gorm:"index;not null;size:255"`
	ClassID       uint           `json:"class_id" gorm:"not null"`
	Amount        float64        `json:"amount" gorm:"not null"`
	Currency      string         `json:"currency" gorm:"not null;default:usd;size:10"`
	TransactionID string         `json:"transaction_id" gorm:"size:255"`
	Metadata      datatypes.JSON `json:"metadata,omitempty" gorm:"type:jsonb"`

	CreatedAt time.Time `json:"created_at"`
}

func (Payment) TableName() string {
	return "payments"
}

// EnrolledClass is the projection returned by the enrollment lookup: one
// entry per payment, resolved against the classes table. A dangling class
// reference keeps its slot with zero-valued fields.
type EnrolledClass struct {
	ClassID    uint   `json:"class_id"`
	Title      string `json:"title"`
	Image      string `json:"image"`
	OwnerEmail string `json:"owner_email"`
}
