package events

import (
	"time"

	"github.com/google/uuid"
)

// Topic carries every domain event; consumers route on Event.Type.
const Topic = "marketplace.events"

const (
	Source  = "marketplace-service"
	Version = "1.0"
)

// Event types published by the service.
const (
	TypeUserCreated             = "user.created"
	TypeTeacherRequestSubmitted = "teacher_request.submitted"
	TypeTeacherRequestApproved  = "teacher_request.approved"
	TypeTeacherRequestRejected  = "teacher_request.rejected"
	TypeClassSubmitted          = "class.submitted"
	TypeClassApproved           = "class.approved"
	TypeClassRejected           = "class.rejected"
	TypePaymentRecorded         = "payment.recorded"
)

// Event is the envelope every published message carries.
type Event struct {
	ID        string      `json:"id"`
	Type      string      `json:"type"`
	Source    string      `json:"source"`
	Version   string      `json:"version"`
	Timestamp time.Time   `json:"timestamp"`
	Data      interface{} `json:"data"`
}

func NewEvent(eventType string, data interface{}) Event {
	return Event{
		ID:        uuid.New().String(),
		Type:      eventType,
		Source:    Source,
		Version:   Version,
		Timestamp: time.Now().UTC(),
		Data:      data,
	}
}
