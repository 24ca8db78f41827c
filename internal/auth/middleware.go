package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	apperrors "github.com/spec-kit/class-booking-service/pkg/util/errorutil"
)

const claimsKey = "auth_claims"

// AuthMiddleware is the identity gate: it validates bearer tokens and
// attaches the decoded claims for downstream gates and handlers. It never
// consults the directory; role checks are separate gates that run after it.
type AuthMiddleware struct {
	tokens *TokenManager
}

// NewAuthMiddleware constructs middleware.
func NewAuthMiddleware(tokens *TokenManager) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens}
}

// Handle enforces authentication for protected routes.
func (m *AuthMiddleware) Handle(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return apperrors.NewUnauthorized("missing authorization header")
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return apperrors.NewUnauthorized("invalid authorization header")
	}

	claims, err := m.tokens.Verify(parts[1])
	if err != nil {
		return apperrors.NewUnauthorized("invalid token")
	}

	c.Locals(claimsKey, claims)
	return c.Next()
}

// Pipeline composes the identity gate with an ordered list of capability
// gates. Each gate runs only after the previous one allowed the request, so
// a role gate can trust that claims are already authenticated.
func (m *AuthMiddleware) Pipeline(gates ...Gate) []fiber.Handler {
	handlers := make([]fiber.Handler, 0, len(gates)+1)
	handlers = append(handlers, m.Handle)
	for _, gate := range gates {
		gate := gate
		handlers = append(handlers, func(c *fiber.Ctx) error {
			claims, ok := ClaimsFromContext(c)
			if !ok {
				return apperrors.NewUnauthorized("missing claims")
			}
			if err := gate.Authorize(c, claims); err != nil {
				return err
			}
			return c.Next()
		})
	}
	return handlers
}

// ClaimsFromContext retrieves the authenticated claims.
func ClaimsFromContext(c *fiber.Ctx) (*Claims, bool) {
	val := c.Locals(claimsKey)
	if val == nil {
		return nil, false
	}
	claims, ok := val.(*Claims)
	return claims, ok
}
