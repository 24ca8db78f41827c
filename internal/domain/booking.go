package domain

import "time"

// Booking records a student's intent to attend a class. It snapshots the
// class fields it was created against and holds a reference, not ownership:
// the class may be edited or removed afterwards without touching the booking.
type Booking struct {
	ID              string
	StudentEmail    string
	ClassID         string
	ClassTitle      string
	ThumbnailURL    string
	InstructorName  string
	InstructorEmail string
	Price           float64
	CreatedAt       time.Time
}
