package events

import (
	"time"

	"github.com/spec-kit/class-booking-service/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventClassCreated       EventType = "class_created"
	EventClassStatusChanged EventType = "class_status_changed"
	EventBookingCreated     EventType = "booking_created"
	EventBookingCancelled   EventType = "booking_cancelled"
)

// Event represents a domain event emitted by services.
type Event struct {
	ID         string      `json:"id"`
	Type       EventType   `json:"type"`
	ActorEmail string      `json:"actor_email"`
	Timestamp  time.Time   `json:"timestamp"`
	Payload    interface{} `json:"payload"`
}

// ClassCreatedPayload payload.
type ClassCreatedPayload struct {
	ClassID         string  `json:"class_id"`
	Title           string  `json:"title"`
	InstructorEmail string  `json:"instructor_email"`
	AvailableSeats  int32   `json:"available_seats"`
	Price           float64 `json:"price"`
}

// ClassStatusChangedPayload payload.
type ClassStatusChangedPayload struct {
	ClassID   string             `json:"class_id"`
	OldStatus domain.ClassStatus `json:"old_status"`
	NewStatus domain.ClassStatus `json:"new_status"`
	Feedback  string             `json:"feedback,omitempty"`
}

// BookingCreatedPayload payload.
type BookingCreatedPayload struct {
	BookingID    string `json:"booking_id"`
	ClassID      string `json:"class_id"`
	ClassTitle   string `json:"class_title"`
	StudentEmail string `json:"student_email"`
}

// BookingCancelledPayload payload.
type BookingCancelledPayload struct {
	BookingID string `json:"booking_id"`
}
