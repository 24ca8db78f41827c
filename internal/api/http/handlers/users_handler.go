package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/class-booking-service/internal/api/dto"
	"github.com/spec-kit/class-booking-service/internal/auth"
	"github.com/spec-kit/class-booking-service/internal/domain"
	"github.com/spec-kit/class-booking-service/internal/service"
	apperrors "github.com/spec-kit/class-booking-service/pkg/util/errorutil"
)

// UsersHandler exposes the user directory endpoints.
type UsersHandler struct {
	directory *service.DirectoryService
}

// NewUsersHandler constructs handler.
func NewUsersHandler(directory *service.DirectoryService) *UsersHandler {
	return &UsersHandler{directory: directory}
}

// List handles GET /users (admin only).
func (h *UsersHandler) List(c *fiber.Ctx) error {
	users, err := h.directory.ListAll(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": userResponses(users)})
}

// Create handles POST /users: idempotent first-sign-in registration.
func (h *UsersHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Email == "" {
		return apperrors.NewValidationError("email required", nil)
	}

	user, created, err := h.directory.Register(c.Context(), service.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		PhotoURL: req.PhotoURL,
	})
	if err != nil {
		return err
	}
	if !created {
		return c.JSON(fiber.Map{"message": "user already exists"})
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": dto.NewUserResponse(user)})
}

// SetRole handles PATCH /users/:id/role (admin only).
func (h *UsersHandler) SetRole(c *fiber.Ctx) error {
	var req dto.SetRoleRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	count, err := h.directory.SetRole(c.Context(), c.Params("id"), req.Role)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"modified_count": count}})
}

// CheckAdmin handles GET /users/admin/:email. Asking about someone else's
// email returns a plain false rather than leaking their role.
func (h *UsersHandler) CheckAdmin(c *fiber.Ctx) error {
	return h.checkRole(c, domain.RoleAdmin, "admin")
}

// CheckInstructor handles GET /users/instructor/:email.
func (h *UsersHandler) CheckInstructor(c *fiber.Ctx) error {
	return h.checkRole(c, domain.RoleInstructor, "instructor")
}

func (h *UsersHandler) checkRole(c *fiber.Ctx, role domain.Role, field string) error {
	claims, ok := auth.ClaimsFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("missing claims")
	}

	email := c.Params("email")
	if email != claims.Email {
		return c.JSON(fiber.Map{field: false})
	}

	match, err := h.directory.HasRole(c.Context(), email, role)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{field: match})
}

// ListInstructors handles GET /instructors.
func (h *UsersHandler) ListInstructors(c *fiber.Ctx) error {
	users, err := h.directory.ListInstructors(c.Context(), 0)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": userResponses(users)})
}

// ListPopularInstructors handles GET /instructors/popular.
func (h *UsersHandler) ListPopularInstructors(c *fiber.Ctx) error {
	users, err := h.directory.ListInstructors(c.Context(), 6)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": userResponses(users)})
}

func userResponses(users []domain.User) []dto.UserResponse {
	items := make([]dto.UserResponse, 0, len(users))
	for i := range users {
		items = append(items, dto.NewUserResponse(&users[i]))
	}
	return items
}
