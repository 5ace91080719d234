package models

import (
	"time"

	"gorm.io/gorm"
)

type UserRole string

const (
	RoleStudent UserRole = "Student"
	RoleTeacher UserRole = "Teacher"
	RoleAdmin   UserRole = "Admin"
)

// IsValid reports whether the role is one of the stored role values.
func (r UserRole) IsValid() bool {
	switch r {
	case RoleStudent, RoleTeacher, RoleAdmin:
		return true
	}
	return false
}

type User struct {
	ID    uint     `json:"id" gorm:"primaryKey"`
	Name  string   `json:"name" gorm:"size:100"`
	Email string   `json:"email" gorm:"uniqueIndex;not null;size:255"`
	Role  UserRole `json:"role" gorm:"not null;default:Student;size:20"`

	// Profile info
	PhotoURL *string `json:"photo_url" gorm:"size:500"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}

func (User) TableName() string {
	return "users"
}
