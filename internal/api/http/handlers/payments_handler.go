package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/class-booking-service/internal/api/dto"
	"github.com/spec-kit/class-booking-service/internal/service"
	apperrors "github.com/spec-kit/class-booking-service/pkg/util/errorutil"
)

// PaymentsHandler exposes the payment bridge.
type PaymentsHandler struct {
	payments *service.PaymentService
}

// NewPaymentsHandler constructs handler.
func NewPaymentsHandler(payments *service.PaymentService) *PaymentsHandler {
	return &PaymentsHandler{payments: payments}
}

// CreateIntent handles POST /payments/intent.
func (h *PaymentsHandler) CreateIntent(c *fiber.Ctx) error {
	var req dto.CreatePaymentIntentRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	secret, err := h.payments.CreateIntent(c.Context(), req.Price.Float64())
	if err != nil {
		return err
	}
	return c.JSON(dto.PaymentIntentResponse{ClientSecret: secret})
}
