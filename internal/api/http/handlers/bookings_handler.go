package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/class-booking-service/internal/api/dto"
	"github.com/spec-kit/class-booking-service/internal/auth"
	"github.com/spec-kit/class-booking-service/internal/service"
	apperrors "github.com/spec-kit/class-booking-service/pkg/util/errorutil"
)

// BookingsHandler exposes the booking ledger endpoints.
type BookingsHandler struct {
	bookings *service.BookingService
}

// NewBookingsHandler constructs handler.
func NewBookingsHandler(bookings *service.BookingService) *BookingsHandler {
	return &BookingsHandler{bookings: bookings}
}

// Create handles POST /bookings (student only).
func (h *BookingsHandler) Create(c *fiber.Ctx) error {
	claims, ok := auth.ClaimsFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("missing claims")
	}

	var req dto.CreateBookingRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.ClassID == "" {
		return apperrors.NewValidationError("class_id required", nil)
	}

	booking, err := h.bookings.CreateBooking(c.Context(), claims.Email, req.ClassID)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": dto.NewBookingResponse(booking)})
}

// List handles GET /bookings?email= (self-scoped).
func (h *BookingsHandler) List(c *fiber.Ctx) error {
	claims, ok := auth.ClaimsFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("missing claims")
	}

	bookings, err := h.bookings.ListForStudent(c.Context(), claims.Email, c.Query("email"))
	if err != nil {
		return err
	}
	items := make([]dto.BookingResponse, 0, len(bookings))
	for i := range bookings {
		items = append(items, dto.NewBookingResponse(&bookings[i]))
	}
	return c.JSON(fiber.Map{"data": items})
}

// Delete handles DELETE /bookings/:id.
func (h *BookingsHandler) Delete(c *fiber.Ctx) error {
	claims, ok := auth.ClaimsFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("missing claims")
	}

	if err := h.bookings.CancelBooking(c.Context(), claims.Email, c.Params("id")); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "booking deleted"})
}
