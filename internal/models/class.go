package models

import "time"

type Class struct {
	ID          uint          `json:"id" gorm:"primaryKey"`
	OwnerEmail  string        `json:"owner_email" gorm:"index;not null;size:255"`
	OwnerName   string        `json:"owner_name" gorm:"size:100"`
	Title       string        `json:"title" gorm:"not null;size:200"`
	Price       float64       `json:"price" gorm:"not null"`
	Image       string        `json:"image" gorm:"size:500"`
	Description string        `json:"description" gorm:"size:2000"`
	Status      RequestStatus `json:"status" gorm:"not null;default:Pending;size:20"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Class) TableName() string {
	return "classes"
}
