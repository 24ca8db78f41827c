package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/class-booking-service/internal/api/dto"
	"github.com/spec-kit/class-booking-service/internal/auth"
	"github.com/spec-kit/class-booking-service/internal/service"
	apperrors "github.com/spec-kit/class-booking-service/pkg/util/errorutil"
)

// ClassesHandler exposes the class catalog and lifecycle endpoints.
type ClassesHandler struct {
	catalog *service.CatalogService
}

// NewClassesHandler constructs handler.
func NewClassesHandler(catalog *service.CatalogService) *ClassesHandler {
	return &ClassesHandler{catalog: catalog}
}

// Create handles POST /classes (instructor only). The instructor identity
// comes from the verified claims, never from the body.
func (h *ClassesHandler) Create(c *fiber.Ctx) error {
	claims, ok := auth.ClaimsFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("missing claims")
	}

	var req dto.CreateClassRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	seats, ok := req.AvailableSeats.Int32()
	if !ok {
		return apperrors.NewValidationError("available_seats must be a whole number", nil)
	}

	instructorName := req.InstructorName
	if instructorName == "" {
		instructorName = claims.Name
	}

	class, err := h.catalog.CreateClass(c.Context(), claims.Email, instructorName, service.ClassCreateInput{
		Title:          req.Title,
		ThumbnailURL:   req.ThumbnailURL,
		AvailableSeats: seats,
		Price:          req.Price.Float64(),
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": dto.NewClassResponse(class)})
}

// List handles GET /classes.
func (h *ClassesHandler) List(c *fiber.Ctx) error {
	classes, err := h.catalog.ListAll(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewClassResponses(classes)})
}

// ListApproved handles GET /classes/approved.
func (h *ClassesHandler) ListApproved(c *fiber.Ctx) error {
	classes, err := h.catalog.ListApproved(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewClassResponses(classes)})
}

// ListPopular handles GET /classes/popular.
func (h *ClassesHandler) ListPopular(c *fiber.Ctx) error {
	classes, err := h.catalog.ListPopular(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewClassResponses(classes)})
}

// UpdateContent handles PATCH /classes/:id (instructor only).
func (h *ClassesHandler) UpdateContent(c *fiber.Ctx) error {
	var req dto.UpdateClassRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	seats, ok := req.AvailableSeats.Int32()
	if !ok {
		return apperrors.NewValidationError("available_seats must be a whole number", nil)
	}

	count, err := h.catalog.UpdateContent(c.Context(), c.Params("id"), service.ClassContentInput{
		Title:          req.Title,
		ThumbnailURL:   req.ThumbnailURL,
		AvailableSeats: seats,
		Price:          req.Price.Float64(),
	})
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"modified_count": count}})
}

// UpdateStatus handles PATCH /classes/:id/status (admin only).
func (h *ClassesHandler) UpdateStatus(c *fiber.Ctx) error {
	claims, ok := auth.ClaimsFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("missing claims")
	}

	var req dto.UpdateClassStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	count, err := h.catalog.UpdateStatus(c.Context(), claims.Email, c.Params("id"), req.Status, req.Feedback)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"modified_count": count}})
}
