package dto

import (
	"time"

	"github.com/spec-kit/class-booking-service/internal/domain"
)

// CreateClassRequest payload. A status field in the body is ignored: the
// lifecycle manager forces every new class to pending.
type CreateClassRequest struct {
	Title          string `json:"title"`
	ThumbnailURL   string `json:"thumbnail_url,omitempty"`
	InstructorName string `json:"instructor_name,omitempty"`
	AvailableSeats Number `json:"available_seats"`
	Price          Number `json:"price"`
}

// UpdateClassRequest payload for instructor content edits.
type UpdateClassRequest struct {
	Title          string `json:"title"`
	ThumbnailURL   string `json:"thumbnail_url,omitempty"`
	AvailableSeats Number `json:"available_seats"`
	Price          Number `json:"price"`
}

// UpdateClassStatusRequest payload for admin status transitions.
type UpdateClassStatusRequest struct {
	Status   string `json:"status"`
	Feedback string `json:"feedback,omitempty"`
}

// ClassResponse is the class shape returned to callers.
type ClassResponse struct {
	ID              string             `json:"id"`
	InstructorName  string             `json:"instructor_name,omitempty"`
	InstructorEmail string             `json:"instructor_email"`
	Title           string             `json:"title"`
	ThumbnailURL    string             `json:"thumbnail_url,omitempty"`
	AvailableSeats  int32              `json:"available_seats"`
	Price           float64            `json:"price"`
	Status          domain.ClassStatus `json:"status"`
	Feedback        *string            `json:"feedback,omitempty"`
	CreatedAt       time.Time          `json:"created_at"`
	UpdatedAt       time.Time          `json:"updated_at"`
}

// NewClassResponse maps a domain class.
func NewClassResponse(class *domain.Class) ClassResponse {
	return ClassResponse{
		ID:              class.ID,
		InstructorName:  class.InstructorName,
		InstructorEmail: class.InstructorEmail,
		Title:           class.Title,
		ThumbnailURL:    class.ThumbnailURL,
		AvailableSeats:  class.AvailableSeats,
		Price:           class.Price,
		Status:          class.Status,
		Feedback:        class.Feedback,
		CreatedAt:       class.CreatedAt,
		UpdatedAt:       class.UpdatedAt,
	}
}

// NewClassResponses maps a slice of domain classes.
func NewClassResponses(classes []domain.Class) []ClassResponse {
	items := make([]ClassResponse, 0, len(classes))
	for i := range classes {
		items = append(items, NewClassResponse(&classes[i]))
	}
	return items
}
