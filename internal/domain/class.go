package domain

import "time"

// ClassStatus enumerates lifecycle states for a class.
type ClassStatus string

const (
	ClassStatusPending  ClassStatus = "pending"
	ClassStatusApproved ClassStatus = "approved"
	ClassStatusDenied   ClassStatus = "denied"
)

// ParseClassStatus validates a caller-supplied status value.
func ParseClassStatus(value string) (ClassStatus, bool) {
	switch ClassStatus(value) {
	case ClassStatusPending, ClassStatusApproved, ClassStatusDenied:
		return ClassStatus(value), true
	default:
		return "", false
	}
}

// Class is the aggregate for a bookable class. Status always starts at
// pending; only an admin moves it. Feedback is present exactly when the
// class is denied.
type Class struct {
	ID              string
	InstructorName  string
	InstructorEmail string
	Title           string
	ThumbnailURL    string
	AvailableSeats  int32
	Price           float64
	Status          ClassStatus
	Feedback        *string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
