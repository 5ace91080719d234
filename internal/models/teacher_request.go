package models

import (
	"time"

	"gorm.io/datatypes"
)

// RequestStatus is the lifecycle state shared by teacher requests and classes.
type RequestStatus string

const (
	StatusPending  RequestStatus = "Pending"
	StatusAccepted RequestStatus = "Accepted"
	StatusRejected RequestStatus = "Rejected"
)

func (s RequestStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusAccepted, StatusRejected:
		return true
	}
	return false
}

// TeacherRequest is a user's application to become a teacher. The paired
// User row keeps its own role field; the two are updated by separate calls
// (see the admin approve/reject flow).
type TeacherRequest struct {
	ID         uint          `json:"id" gorm:"primaryKey"`
	Email      string        `json:"email" gorm:"index;not null;size:255"`
	Name       string        `json:"name" gorm:"size:100"`
	Image      *string       `json:"image" gorm:"size:500"`
	Experience string        `json:"experience" gorm:"size:50"`
	Title      string        `json:"title" gorm:"size:200"`
	Category   string        `json:"category" gorm:"size:100"`
	Status     RequestStatus `json:"status" gorm:"not null;default:Pending;size:20"`

	// Free-form profile fields the frontend sends along with the request.
	Profile datatypes.JSON `json:"profile,omitempty" gorm:"type:jsonb"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (TeacherRequest) TableName() string {
	return "teacher_requests"
}
