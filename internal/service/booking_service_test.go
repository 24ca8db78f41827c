package service

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/class-booking-service/internal/domain"
	"github.com/spec-kit/class-booking-service/internal/repository"
	apperrors "github.com/spec-kit/class-booking-service/pkg/util/errorutil"
)

type mockBookingRepo struct {
	createFn        func(ctx context.Context, booking *domain.Booking) error
	listByStudentFn func(ctx context.Context, email string) ([]domain.Booking, error)
	deleteFn        func(ctx context.Context, id string) (bool, error)
}

func (m *mockBookingRepo) Create(ctx context.Context, booking *domain.Booking) error {
	return m.createFn(ctx, booking)
}
func (m *mockBookingRepo) ListByStudent(ctx context.Context, email string) ([]domain.Booking, error) {
	return m.listByStudentFn(ctx, email)
}
func (m *mockBookingRepo) Delete(ctx context.Context, id string) (bool, error) {
	return m.deleteFn(ctx, id)
}

func approvedClassRepo() *mockClassRepo {
	return &mockClassRepo{
		getByIDFn: func(_ context.Context, id string) (*domain.Class, error) {
			return &domain.Class{
				ID:              id,
				Title:           "Yoga",
				InstructorEmail: "i@example.com",
				Status:          domain.ClassStatusApproved,
				AvailableSeats:  10,
				Price:           20,
			}, nil
		},
	}
}

func TestCreateBookingSnapshotsClass(t *testing.T) {
	var persisted *domain.Booking
	bookings := &mockBookingRepo{
		createFn: func(_ context.Context, booking *domain.Booking) error {
			persisted = booking
			booking.ID = "booking-1"
			return nil
		},
	}
	svc := NewBookingService(bookings, approvedClassRepo(), nil)

	booking, err := svc.CreateBooking(context.Background(), "s@example.com", "class-1")
	if err != nil {
		t.Fatalf("CreateBooking: %v", err)
	}
	if persisted.StudentEmail != "s@example.com" {
		t.Fatalf("expected student email from claims, got %q", persisted.StudentEmail)
	}
	if booking.ClassTitle != "Yoga" || booking.Price != 20 {
		t.Fatalf("expected class snapshot on booking, got %+v", booking)
	}
}

func TestCreateBookingRejectsUnavailableClass(t *testing.T) {
	bookings := &mockBookingRepo{
		createFn: func(_ context.Context, _ *domain.Booking) error {
			return repository.ErrClassUnavailable
		},
	}
	svc := NewBookingService(bookings, approvedClassRepo(), nil)

	_, err := svc.CreateBooking(context.Background(), "s@example.com", "class-1")
	var de *apperrors.DomainError
	if !errors.As(err, &de) || de.Code != "CONFLICT" {
		t.Fatalf("expected CONFLICT for full or unapproved class, got %v", err)
	}
}

func TestCreateBookingReportsMissingClass(t *testing.T) {
	classes := &mockClassRepo{
		getByIDFn: func(_ context.Context, _ string) (*domain.Class, error) {
			return nil, pgx.ErrNoRows
		},
	}
	svc := NewBookingService(&mockBookingRepo{}, classes, nil)

	_, err := svc.CreateBooking(context.Background(), "s@example.com", "missing")
	var de *apperrors.DomainError
	if !errors.As(err, &de) || de.Code != "NOT_FOUND" {
		t.Fatalf("expected NOT_FOUND, got %v", err)
	}
}

func TestListForStudentIsSelfScoped(t *testing.T) {
	bookings := &mockBookingRepo{
		listByStudentFn: func(_ context.Context, email string) ([]domain.Booking, error) {
			return []domain.Booking{{ID: "booking-1", StudentEmail: email}}, nil
		},
	}
	svc := NewBookingService(bookings, approvedClassRepo(), nil)

	_, err := svc.ListForStudent(context.Background(), "b@example.com", "a@example.com")
	var de *apperrors.DomainError
	if !errors.As(err, &de) || de.Code != "FORBIDDEN" {
		t.Fatalf("expected FORBIDDEN for someone else's email, got %v", err)
	}

	result, err := svc.ListForStudent(context.Background(), "a@example.com", "a@example.com")
	if err != nil {
		t.Fatalf("ListForStudent: %v", err)
	}
	if len(result) != 1 {
		t.Fatalf("expected one booking, got %d", len(result))
	}
}

func TestCancelBookingTwiceReportsNotFound(t *testing.T) {
	deleted := map[string]bool{}
	bookings := &mockBookingRepo{
		deleteFn: func(_ context.Context, id string) (bool, error) {
			if deleted[id] {
				return false, nil
			}
			deleted[id] = true
			return true, nil
		},
	}
	svc := NewBookingService(bookings, approvedClassRepo(), nil)

	if err := svc.CancelBooking(context.Background(), "s@example.com", "booking-1"); err != nil {
		t.Fatalf("first CancelBooking: %v", err)
	}

	err := svc.CancelBooking(context.Background(), "s@example.com", "booking-1")
	var de *apperrors.DomainError
	if !errors.As(err, &de) || de.Code != "NOT_FOUND" {
		t.Fatalf("expected NOT_FOUND on second delete, got %v", err)
	}
}
