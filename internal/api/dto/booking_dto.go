package dto

import (
	"time"

	"github.com/spec-kit/class-booking-service/internal/domain"
)

// CreateBookingRequest payload. The booking snapshots the stored class
// record server-side; clients send only the reference.
type CreateBookingRequest struct {
	ClassID string `json:"class_id"`
}

// BookingResponse is the booking shape returned to callers.
type BookingResponse struct {
	ID              string    `json:"id"`
	StudentEmail    string    `json:"student_email"`
	ClassID         string    `json:"class_id"`
	ClassTitle      string    `json:"class_title"`
	ThumbnailURL    string    `json:"thumbnail_url,omitempty"`
	InstructorName  string    `json:"instructor_name,omitempty"`
	InstructorEmail string    `json:"instructor_email"`
	Price           float64   `json:"price"`
	CreatedAt       time.Time `json:"created_at"`
}

// NewBookingResponse maps a domain booking.
func NewBookingResponse(booking *domain.Booking) BookingResponse {
	return BookingResponse{
		ID:              booking.ID,
		StudentEmail:    booking.StudentEmail,
		ClassID:         booking.ClassID,
		ClassTitle:      booking.ClassTitle,
		ThumbnailURL:    booking.ThumbnailURL,
		InstructorName:  booking.InstructorName,
		InstructorEmail: booking.InstructorEmail,
		Price:           booking.Price,
		CreatedAt:       booking.CreatedAt,
	}
}
