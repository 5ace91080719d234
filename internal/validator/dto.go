package validator

import (
	"encoding/json"
	"time"
)

// TokenRequest is the identity payload sent to POST /jwt. Anything beyond
// the email is accepted and ignored; only the email is asserted by the
// issued credential.
type TokenRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// UserCreateRequest represents the sign-up POST. Role is optional and
// defaults to Student server-side.
type UserCreateRequest struct {
	Email    string  `json:"email" validate:"required,email"`
	Name     string  `json:"name" validate:"omitempty,max=100"`
	PhotoURL *string `json:"photo_url" validate:"omitempty,max=500"`
	Role     string  `json:"role" validate:"omitempty,user_role"`
}

// TeacherRequestCreate represents a user's application to become a teacher.
type TeacherRequestCreate struct {
	Email      string          `json:"email" validate:"required,email"`
	Name       string          `json:"name" validate:"required,max=100"`
	Image      *string         `json:"image" validate:"omitempty,max=500"`
	Experience string          `json:"experience" validate:"omitempty,max=50"`
	Title      string          `json:"title" validate:"required,max=200"`
	Category   string          `json:"category" validate:"omitempty,max=100"`
	Profile    json.RawMessage `json:"profile" validate:"omitempty"`
}

// ClassCreateRequest represents a teacher submitting a class. Status is
// never client-supplied; new classes always start Pending.
type ClassCreateRequest struct {
	OwnerEmail  string  `json:"owner_email" validate:"required,email"`
	OwnerName   string  `json:"owner_name" validate:"omitempty,max=100"`
	Title       string  `json:"title" validate:"required,max=200"`
	Price       float64 `json:"price" validate:"required,class_price"`
	Image       string  `json:"image" validate:"omitempty,max=500"`
	Description string  `json:"description" validate:"omitempty,max=2000"`
}

// ClassUpdateRequest carries the fields a teacher may change on their own
// class.
type ClassUpdateRequest struct {
	Title       *string  `json:"title" validate:"omitempty,max=200"`
	Price       *float64 `json:"price" validate:"omitempty,class_price"`
	Image       *string  `json:"image" validate:"omitempty,max=500"`
	Description *string  `json:"description" validate:"omitempty,max=2000"`
}

// AssignmentCreateRequest represents a teacher adding an assignment to a
// class they own.
type AssignmentCreateRequest struct {
	TeacherEmail string     `json:"teacher_email" validate:"required,email"`
	ClassID      uint       `json:"class_id" validate:"required"`
	Title        string     `json:"title" validate:"required,max=200"`
	Description  string     `json:"description" validate:"omitempty,max=2000"`
	Deadline     *time.Time `json:"deadline"`
}

// PaymentIntentRequest carries the price to charge. The amount is taken
// as-is from the client; there is no server-side catalog to verify against.
type PaymentIntentRequest struct {
	Price float64 `json:"price" validate:"required,class_price"`
}

// PaymentCreateRequest records a completed charge.
type PaymentCreateRequest struct {
	StudentEmail  string          `json:"student_email" validate:"required,email"`
	ClassID       uint            `json:"class_id" validate:"required"`
	Amount        float64         `json:"amount" validate:"required,class_price"`
	Currency      string          `json:"currency" validate:"omitempty,max=10"`
	TransactionID string          `json:"transaction_id" validate:"omitempty,max=255"`
	Metadata      json.RawMessage `json:"metadata" validate:"omitempty"`
}
