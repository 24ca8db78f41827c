package service

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/class-booking-service/internal/domain"
	apperrors "github.com/spec-kit/class-booking-service/pkg/util/errorutil"
)

type mockUserRepo struct {
	createIfAbsentFn func(ctx context.Context, user *domain.User) (bool, error)
	updateRoleFn     func(ctx context.Context, id string, role domain.Role) (int64, error)
	getByEmailFn     func(ctx context.Context, email string) (*domain.User, error)
	listFn           func(ctx context.Context) ([]domain.User, error)
	listByRoleFn     func(ctx context.Context, role domain.Role, limit int) ([]domain.User, error)
}

func (m *mockUserRepo) CreateIfAbsent(ctx context.Context, user *domain.User) (bool, error) {
	return m.createIfAbsentFn(ctx, user)
}
func (m *mockUserRepo) UpdateRole(ctx context.Context, id string, role domain.Role) (int64, error) {
	return m.updateRoleFn(ctx, id, role)
}
func (m *mockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return m.getByEmailFn(ctx, email)
}
func (m *mockUserRepo) List(ctx context.Context) ([]domain.User, error) {
	return m.listFn(ctx)
}
func (m *mockUserRepo) ListByRole(ctx context.Context, role domain.Role, limit int) ([]domain.User, error) {
	return m.listByRoleFn(ctx, role, limit)
}

func TestRegisterIsIdempotentByEmail(t *testing.T) {
	seen := map[string]bool{}
	repo := &mockUserRepo{
		createIfAbsentFn: func(_ context.Context, user *domain.User) (bool, error) {
			if seen[user.Email] {
				return false, nil
			}
			seen[user.Email] = true
			user.ID = "user-1"
			return true, nil
		},
	}
	svc := NewDirectoryService(repo)

	input := RegisterInput{Name: "Student", Email: "s@example.com"}
	user, created, err := svc.Register(context.Background(), input)
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if !created {
		t.Fatal("expected first registration to create the record")
	}
	if user.Role != domain.RoleNone {
		t.Fatalf("expected unset role at creation, got %q", user.Role)
	}

	_, created, err = svc.Register(context.Background(), input)
	if err != nil {
		t.Fatalf("Register (second): %v", err)
	}
	if created {
		t.Fatal("expected second registration with the same email to report already-exists")
	}
}

func TestSetRoleRejectsUnknownRole(t *testing.T) {
	svc := NewDirectoryService(&mockUserRepo{})

	_, err := svc.SetRole(context.Background(), "user-1", "superuser")
	var de *apperrors.DomainError
	if !errors.As(err, &de) || de.Code != "VALIDATION_FAILED" {
		t.Fatalf("expected VALIDATION_FAILED, got %v", err)
	}
}

func TestSetRoleReportsNotFound(t *testing.T) {
	repo := &mockUserRepo{
		updateRoleFn: func(_ context.Context, _ string, _ domain.Role) (int64, error) {
			return 0, nil
		},
	}
	svc := NewDirectoryService(repo)

	_, err := svc.SetRole(context.Background(), "missing", "admin")
	var de *apperrors.DomainError
	if !errors.As(err, &de) || de.Code != "NOT_FOUND" {
		t.Fatalf("expected NOT_FOUND, got %v", err)
	}
}

func TestSetRoleOverwrites(t *testing.T) {
	var gotRole domain.Role
	repo := &mockUserRepo{
		updateRoleFn: func(_ context.Context, _ string, role domain.Role) (int64, error) {
			gotRole = role
			return 1, nil
		},
	}
	svc := NewDirectoryService(repo)

	count, err := svc.SetRole(context.Background(), "user-1", "instructor")
	if err != nil {
		t.Fatalf("SetRole: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected modified count 1, got %d", count)
	}
	if gotRole != domain.RoleInstructor {
		t.Fatalf("expected instructor role, got %q", gotRole)
	}
}

func TestHasRoleTreatsMissAsNonMatch(t *testing.T) {
	repo := &mockUserRepo{
		getByEmailFn: func(_ context.Context, _ string) (*domain.User, error) {
			return nil, pgx.ErrNoRows
		},
	}
	svc := NewDirectoryService(repo)

	match, err := svc.HasRole(context.Background(), "ghost@example.com", domain.RoleAdmin)
	if err != nil {
		t.Fatalf("HasRole: %v", err)
	}
	if match {
		t.Fatal("expected missing record to report false")
	}
}

func TestHasRoleExactMatchOnly(t *testing.T) {
	repo := &mockUserRepo{
		getByEmailFn: func(_ context.Context, email string) (*domain.User, error) {
			return &domain.User{Email: email, Role: domain.RoleInstructor}, nil
		},
	}
	svc := NewDirectoryService(repo)

	match, err := svc.HasRole(context.Background(), "i@example.com", domain.RoleAdmin)
	if err != nil {
		t.Fatalf("HasRole: %v", err)
	}
	if match {
		t.Fatal("instructor must not pass an admin check")
	}

	match, err = svc.HasRole(context.Background(), "i@example.com", domain.RoleInstructor)
	if err != nil {
		t.Fatalf("HasRole: %v", err)
	}
	if !match {
		t.Fatal("expected instructor check to pass")
	}
}
