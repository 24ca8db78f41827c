package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/class-booking-service/internal/api/dto"
	"github.com/spec-kit/class-booking-service/internal/auth"
	apperrors "github.com/spec-kit/class-booking-service/pkg/util/errorutil"
)

// AuthHandler exposes token issuance.
type AuthHandler struct {
	tokens *auth.TokenManager
}

// NewAuthHandler constructs handler.
func NewAuthHandler(tokens *auth.TokenManager) *AuthHandler {
	return &AuthHandler{tokens: tokens}
}

// IssueToken handles POST /jwt. The identity payload arrives from the
// upstream sign-in step; this endpoint only signs it.
func (h *AuthHandler) IssueToken(c *fiber.Ctx) error {
	var req dto.IssueTokenRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Email == "" {
		return apperrors.NewValidationError("email required", nil)
	}

	token, exp, err := h.tokens.Issue(req.Email, req.Name)
	if err != nil {
		return apperrors.NewInternalError(err)
	}
	return c.Status(http.StatusOK).JSON(fiber.Map{
		"data": dto.AuthResponse{Token: token, ExpiresAt: exp},
	})
}
