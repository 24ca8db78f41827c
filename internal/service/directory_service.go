package service

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/class-booking-service/internal/domain"
	"github.com/spec-kit/class-booking-service/internal/repository"
	apperrors "github.com/spec-kit/class-booking-service/pkg/util/errorutil"
)

// DirectoryService owns the user directory: one record per person, keyed by
// email, holding the role everything else gates on.
type DirectoryService struct {
	users repository.UserRepository
}

// NewDirectoryService builds the service.
func NewDirectoryService(users repository.UserRepository) *DirectoryService {
	return &DirectoryService{users: users}
}

// RegisterInput describes first-sign-in registration.
type RegisterInput struct {
	Name     string
	Email    string
	PhotoURL string
}

// Register creates the directory record on first sign-in. Calling it again
// with the same email changes nothing and reports created=false. Role is
// always unset at creation; an admin assigns it later.
func (s *DirectoryService) Register(ctx context.Context, input RegisterInput) (*domain.User, bool, error) {
	user := &domain.User{
		Name:     input.Name,
		Email:    input.Email,
		PhotoURL: input.PhotoURL,
		Role:     domain.RoleNone,
	}
	created, err := s.users.CreateIfAbsent(ctx, user)
	if err != nil {
		return nil, false, err
	}
	return user, created, nil
}

// SetRole overwrites the role on the record with that id and returns the
// modified count. The caller's right to assign roles is enforced by the
// admin gate on the route, not here.
func (s *DirectoryService) SetRole(ctx context.Context, id, role string) (int64, error) {
	parsed, ok := domain.ParseRole(role)
	if !ok {
		return 0, apperrors.NewValidationError("invalid role", map[string]any{"role": role})
	}
	count, err := s.users.UpdateRole(ctx, id, parsed)
	if err != nil {
		return 0, err
	}
	if count == 0 {
		return 0, apperrors.NewNotFound("user", map[string]any{"id": id})
	}
	return count, nil
}

// ListAll returns every directory record.
func (s *DirectoryService) ListAll(ctx context.Context) ([]domain.User, error) {
	return s.users.List(ctx)
}

// ListInstructors returns instructor records, newest first; limit zero
// means all of them.
func (s *DirectoryService) ListInstructors(ctx context.Context, limit int) ([]domain.User, error) {
	return s.users.ListByRole(ctx, domain.RoleInstructor, limit)
}

// HasRole reports whether the record for email carries exactly the given
// role. A missing record is a plain false, not an error.
func (s *DirectoryService) HasRole(ctx context.Context, email string, role domain.Role) (bool, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, err
	}
	return user.Role == role, nil
}
