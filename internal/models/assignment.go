package models

import "time"

// Assignment references its class by id only. There is no foreign key and
// no cascade: deleting a class leaves its assignments behind.
type Assignment struct {
	ID           uint       `json:"id" gorm:"primaryKey"`
	TeacherEmail string     `json:"teacher_email" gorm:"index:idx_assignments_teacher_class;not null;size:255"`
	ClassID      uint       `json:"class_id" gorm:"index:idx_assignments_teacher_class;not null"`
	Title        string     `json:"title" gorm:"not null;size:200"`
	Description  string     `json:"description" gorm:"size:2000"`
	Deadline     *time.Time `json:"deadline"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Assignment) TableName() string {
	return "assignments"
}
