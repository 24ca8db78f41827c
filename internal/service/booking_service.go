package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/spec-kit/class-booking-service/internal/domain"
	"github.com/spec-kit/class-booking-service/internal/events"
	"github.com/spec-kit/class-booking-service/internal/repository"
	apperrors "github.com/spec-kit/class-booking-service/pkg/util/errorutil"
)

// BookingService owns the booking ledger. A booking references a class but
// does not own it; the snapshot fields keep the booking meaningful if the
// class is later edited or removed.
type BookingService struct {
	bookings   repository.BookingRepository
	classes    repository.ClassRepository
	dispatcher events.Dispatcher
}

// NewBookingService builds the service.
func NewBookingService(bookings repository.BookingRepository, classes repository.ClassRepository, dispatcher events.Dispatcher) *BookingService {
	return &BookingService{bookings: bookings, classes: classes, dispatcher: dispatcher}
}

// CreateBooking books a seat on a class for the authenticated student. The
// seat reservation is atomic with the insert: an unapproved or full class
// rejects the booking before anything is written.
func (s *BookingService) CreateBooking(ctx context.Context, studentEmail, classID string) (*domain.Booking, error) {
	class, err := s.classes.GetByID(ctx, classID)
	if err != nil {
		return nil, apperrors.MapError(err)
	}

	booking := &domain.Booking{
		StudentEmail:    studentEmail,
		ClassID:         class.ID,
		ClassTitle:      class.Title,
		ThumbnailURL:    class.ThumbnailURL,
		InstructorName:  class.InstructorName,
		InstructorEmail: class.InstructorEmail,
		Price:           class.Price,
	}
	if err := s.bookings.Create(ctx, booking); err != nil {
		if errors.Is(err, repository.ErrClassUnavailable) {
			return nil, apperrors.NewConflict("class is not open for booking or has no seats left", map[string]any{"class_id": classID})
		}
		return nil, err
	}

	s.publish(ctx, events.EventBookingCreated, studentEmail, events.BookingCreatedPayload{
		BookingID:    booking.ID,
		ClassID:      booking.ClassID,
		ClassTitle:   booking.ClassTitle,
		StudentEmail: booking.StudentEmail,
	})
	return booking, nil
}

// ListForStudent returns the bookings for email, but only to that student:
// a caller asking about someone else's email is refused regardless of
// whether such bookings exist.
func (s *BookingService) ListForStudent(ctx context.Context, callerEmail, email string) ([]domain.Booking, error) {
	if email == "" || email != callerEmail {
		return nil, apperrors.NewForbidden("forbidden access")
	}
	return s.bookings.ListByStudent(ctx, email)
}

// CancelBooking deletes the booking by id. Deleting an id that is already
// gone reports not-found; repeating a delete is safe.
func (s *BookingService) CancelBooking(ctx context.Context, actorEmail, id string) error {
	found, err := s.bookings.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !found {
		return apperrors.NewNotFound("booking", map[string]any{"id": id})
	}

	s.publish(ctx, events.EventBookingCancelled, actorEmail, events.BookingCancelledPayload{BookingID: id})
	return nil
}

func (s *BookingService) publish(ctx context.Context, eventType events.EventType, actorEmail string, payload interface{}) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, events.Event{
		ID:         uuid.NewString(),
		Type:       eventType,
		ActorEmail: actorEmail,
		Timestamp:  time.Now(),
		Payload:    payload,
	})
}
