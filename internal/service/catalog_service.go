package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/spec-kit/class-booking-service/internal/cache"
	"github.com/spec-kit/class-booking-service/internal/domain"
	"github.com/spec-kit/class-booking-service/internal/events"
	"github.com/spec-kit/class-booking-service/internal/repository"
	apperrors "github.com/spec-kit/class-booking-service/pkg/util/errorutil"
)

const popularClassLimit = 6

// CatalogService owns the class entity and its approval state machine:
// instructors create and edit, admins move status between pending, approved
// and denied. Content edits are gated on the instructor role only, not on
// authorship of the class; any instructor may edit any class.
type CatalogService struct {
	classes    repository.ClassRepository
	popular    *cache.PopularClassCache
	dispatcher events.Dispatcher
}

// NewCatalogService builds the service.
func NewCatalogService(classes repository.ClassRepository, popular *cache.PopularClassCache, dispatcher events.Dispatcher) *CatalogService {
	return &CatalogService{classes: classes, popular: popular, dispatcher: dispatcher}
}

// ClassCreateInput describes class creation. There is no status field here:
// whatever the caller sent was dropped at the boundary, and creation always
// starts the class at pending.
type ClassCreateInput struct {
	Title          string
	ThumbnailURL   string
	AvailableSeats int32
	Price          float64
}

// ClassContentInput describes an instructor content edit.
type ClassContentInput struct {
	Title          string
	ThumbnailURL   string
	AvailableSeats int32
	Price          float64
}

// CreateClass persists a new class in pending status for the authenticated
// instructor.
func (s *CatalogService) CreateClass(ctx context.Context, instructorEmail, instructorName string, input ClassCreateInput) (*domain.Class, error) {
	if err := validateClassFields(input.Title, input.AvailableSeats, input.Price); err != nil {
		return nil, err
	}

	class := &domain.Class{
		InstructorName:  instructorName,
		InstructorEmail: instructorEmail,
		Title:           strings.TrimSpace(input.Title),
		ThumbnailURL:    input.ThumbnailURL,
		AvailableSeats:  input.AvailableSeats,
		Price:           input.Price,
		Status:          domain.ClassStatusPending,
	}
	if err := s.classes.Create(ctx, class); err != nil {
		return nil, err
	}

	s.publish(ctx, events.EventClassCreated, instructorEmail, events.ClassCreatedPayload{
		ClassID:         class.ID,
		Title:           class.Title,
		InstructorEmail: class.InstructorEmail,
		AvailableSeats:  class.AvailableSeats,
		Price:           class.Price,
	})
	return class, nil
}

// UpdateContent overwrites the instructor-editable fields. Status is never
// touched here.
func (s *CatalogService) UpdateContent(ctx context.Context, id string, input ClassContentInput) (int64, error) {
	if err := validateClassFields(input.Title, input.AvailableSeats, input.Price); err != nil {
		return 0, err
	}

	count, err := s.classes.UpdateContent(ctx, id, repository.ClassContent{
		Title:          strings.TrimSpace(input.Title),
		ThumbnailURL:   input.ThumbnailURL,
		AvailableSeats: input.AvailableSeats,
		Price:          input.Price,
	})
	if err != nil {
		return 0, err
	}
	if count == 0 {
		return 0, apperrors.NewNotFound("class", map[string]any{"id": id})
	}
	return count, nil
}

// UpdateStatus applies an admin status transition. Denial requires
// feedback; any transition away from denied clears the stored feedback, so
// feedback exists exactly while the class is denied. The machine has no
// terminal state: approved and denied classes may be moved again.
func (s *CatalogService) UpdateStatus(ctx context.Context, adminEmail, id, status, feedback string) (int64, error) {
	parsed, ok := domain.ParseClassStatus(status)
	if !ok {
		return 0, apperrors.NewValidationError("invalid status", map[string]any{"status": status})
	}

	var storedFeedback *string
	if parsed == domain.ClassStatusDenied {
		trimmed := strings.TrimSpace(feedback)
		if trimmed == "" {
			return 0, apperrors.NewValidationError("feedback is required when denying a class", nil)
		}
		storedFeedback = &trimmed
	}

	current, err := s.classes.GetByID(ctx, id)
	if err != nil {
		return 0, apperrors.MapError(err)
	}

	count, err := s.classes.UpdateStatus(ctx, id, parsed, storedFeedback)
	if err != nil {
		return 0, err
	}
	if count == 0 {
		return 0, apperrors.NewNotFound("class", map[string]any{"id": id})
	}

	s.popular.Invalidate(ctx)
	s.publish(ctx, events.EventClassStatusChanged, adminEmail, events.ClassStatusChangedPayload{
		ClassID:   id,
		OldStatus: current.Status,
		NewStatus: parsed,
		Feedback:  feedback,
	})
	return count, nil
}

// GetByID fetches one class.
func (s *CatalogService) GetByID(ctx context.Context, id string) (*domain.Class, error) {
	class, err := s.classes.GetByID(ctx, id)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return class, nil
}

// ListAll returns every class regardless of status.
func (s *CatalogService) ListAll(ctx context.Context) ([]domain.Class, error) {
	return s.classes.List(ctx)
}

// ListApproved returns approved classes only.
func (s *CatalogService) ListApproved(ctx context.Context) ([]domain.Class, error) {
	return s.classes.ListByStatus(ctx, domain.ClassStatusApproved, 0)
}

// ListPopular returns the most recently created approved classes, at most
// six, serving from the cache when it is warm.
func (s *CatalogService) ListPopular(ctx context.Context) ([]domain.Class, error) {
	if classes, ok := s.popular.Get(ctx); ok {
		return classes, nil
	}
	classes, err := s.classes.ListByStatus(ctx, domain.ClassStatusApproved, popularClassLimit)
	if err != nil {
		return nil, err
	}
	s.popular.Set(ctx, classes)
	return classes, nil
}

func (s *CatalogService) publish(ctx context.Context, eventType events.EventType, actorEmail string, payload interface{}) {
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

func validateClassFields(title string, seats int32, price float64) error {
	if strings.TrimSpace(title) == "" {
		return apperrors.NewValidationError("title required", nil)
	}
	if seats < 0 {
		return apperrors.NewValidationError("available seats must be non-negative", nil)
	}
	if price < 0 {
		return apperrors.NewValidationError("price must be non-negative", nil)
	}
	return nil
}
