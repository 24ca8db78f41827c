package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/class-booking-service/internal/domain"
	apperrors "github.com/spec-kit/class-booking-service/pkg/util/errorutil"
)

type mockRoleSource struct {
	getByEmailFn func(ctx context.Context, email string) (*domain.User, error)
}

func (m *mockRoleSource) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return m.getByEmailFn(ctx, email)
}

func newGateApp(tm *TokenManager, gates ...Gate) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			de := apperrors.ToDomainError(err)
			return c.Status(de.HTTPStatus).JSON(fiber.Map{"error": de.Code})
		},
	})
	m := NewAuthMiddleware(tm)
	handlers := append(m.Pipeline(gates...), func(c *fiber.Ctx) error {
		claims, _ := ClaimsFromContext(c)
		return c.JSON(fiber.Map{"email": claims.Email})
	})
	app.Get("/protected", handlers...)
	return app
}

func TestIdentityGateRejectsMissingHeader(t *testing.T) {
	app := newGateApp(NewTokenManager("secret", 60))

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", resp.StatusCode)
	}
}

func TestIdentityGateRejectsBadToken(t *testing.T) {
	app := newGateApp(NewTokenManager("secret", 60))

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer bogus")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", resp.StatusCode)
	}
}

func TestIdentityGateAttachesClaims(t *testing.T) {
	tm := NewTokenManager("secret", 60)
	app := newGateApp(tm)

	token, _, err := tm.Issue("user@example.com", "")
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
}

func TestRoleGateMatchesExactRole(t *testing.T) {
	tm := NewTokenManager("secret", 60)

	cases := []struct {
		name   string
		role   domain.Role
		err    error
		status int
	}{
		{"matching role", domain.RoleAdmin, nil, http.StatusOK},
		{"different role", domain.RoleStudent, nil, http.StatusForbidden},
		{"unset role", domain.RoleNone, nil, http.StatusForbidden},
		{"missing record", domain.RoleNone, pgx.ErrNoRows, http.StatusForbidden},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			directory := &mockRoleSource{
				getByEmailFn: func(_ context.Context, email string) (*domain.User, error) {
					if tc.err != nil {
						return nil, tc.err
					}
					return &domain.User{Email: email, Role: tc.role}, nil
				},
			}
			app := newGateApp(tm, RequireRole(directory, domain.RoleAdmin))

			token, _, err := tm.Issue("admin@example.com", "")
			if err != nil {
				t.Fatalf("Issue: %v", err)
			}
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			req.Header.Set("Authorization", "Bearer "+token)
			resp, err := app.Test(req)
			if err != nil {
				t.Fatalf("app.Test: %v", err)
			}
			if resp.StatusCode != tc.status {
				t.Fatalf("expected %d, got %d", tc.status, resp.StatusCode)
			}
		})
	}
}

func TestRequireSelfComparesQueryEmail(t *testing.T) {
	tm := NewTokenManager("secret", 60)
	app := newGateApp(tm, RequireSelf("email"))

	token, _, err := tm.Issue("a@example.com", "")
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/protected?email=a@example.com", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 for own email, got %d", resp.StatusCode)
	}

	req = httptest.NewRequest(http.MethodGet, "/protected?email=b@example.com", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err = app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != http.StatusForbidden {
		t.Fatalf("expected 403 for someone else's email, got %d", resp.StatusCode)
	}
}
