package auth

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/class-booking-service/internal/domain"
	apperrors "github.com/spec-kit/class-booking-service/pkg/util/errorutil"
)

// RoleSource is the slice of the user directory the gates need.
type RoleSource interface {
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}

// Gate is one capability check in the authorization pipeline. Gates run
// after the identity gate, so the claims they receive are authenticated.
type Gate interface {
	Authorize(c *fiber.Ctx, claims *Claims) error
}

// GateFunc adapts a function to the Gate interface.
type GateFunc func(c *fiber.Ctx, claims *Claims) error

func (f GateFunc) Authorize(c *fiber.Ctx, claims *Claims) error {
	return f(c, claims)
}

// RequireRole allows the request only when the directory record for the
// claims' email carries exactly the required role. A missing record or an
// unset role is a plain mismatch, not a distinct error.
func RequireRole(directory RoleSource, role domain.Role) Gate {
	return GateFunc(func(c *fiber.Ctx, claims *Claims) error {
		user, err := directory.GetByEmail(c.Context(), claims.Email)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return apperrors.NewForbidden("insufficient role")
			}
			return apperrors.MapError(err)
		}
		if user.Role != role {
			return apperrors.NewForbidden("insufficient role")
		}
		return nil
	})
}

// RequireSelf allows the request only when the claims' email equals the
// email the caller is asking about, read from the named route parameter or,
// when absent, the query string. Keeps one caller from reading another's
// ownership-scoped data.
func RequireSelf(param string) Gate {
	return GateFunc(func(c *fiber.Ctx, claims *Claims) error {
		email := c.Params(param)
		if email == "" {
			email = c.Query(param)
		}
		if email == "" || email != claims.Email {
			return apperrors.NewForbidden("forbidden access")
		}
		return nil
	})
}
