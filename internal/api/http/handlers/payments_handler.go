package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/gym-service/internal/api/dto"
	"github.com/spec-kit/gym-service/internal/domain"
	"github.com/spec-kit/gym-service/internal/service"
	apperrors "github.com/spec-kit/gym-service/pkg/util/errorutil"
)

// PaymentsHandler manages payment endpoints.
type PaymentsHandler struct {
	service *service.PaymentService
}

// NewPaymentsHandler constructs handler.
func NewPaymentsHandler(paymentService *service.PaymentService) *PaymentsHandler {
	return &PaymentsHandler{service: paymentService}
}

// Record POST /api/payments.
func (h *PaymentsHandler) Record(c *fiber.Ctx) error {
	var req dto.PaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.ClassBookingID <= 0 {
		return apperrors.NewValidationError("class_booking_id required", nil)
	}

	payment := &domain.Payment{
		ClassBookingID: req.ClassBookingID,
		Amount:         req.Amount,
		Method:         domain.PaymentMethod(req.Method),
		Status:         domain.PaymentStatus(req.Status),
	}
	created, err := h.service.Record(c.Context(), payment)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": dto.NewPaymentResponse(created)})
}

// UpdateStatus PUT /api/payments/:id/status.
func (h *PaymentsHandler) UpdateStatus(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	var req dto.PaymentStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	payment, err := h.service.UpdateStatus(c.Context(), id, domain.PaymentStatus(req.Status))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewPaymentResponse(payment)})
}

// Get GET /api/payments/:id.
func (h *PaymentsHandler) Get(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	payment, err := h.service.Get(c.Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewPaymentResponse(payment)})
}

// List GET /api/payments.
func (h *PaymentsHandler) List(c *fiber.Ctx) error {
	var (
		payments []domain.Payment
		err      error
	)
	if status := c.Query("status"); status != "" {
		payments, err = h.service.ListByStatus(c.Context(), domain.PaymentStatus(status))
	} else {
		payments, err = h.service.List(c.Context())
	}
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewPaymentResponses(payments)})
}

// ListByMember GET /api/payments/member/:memberId.
func (h *PaymentsHandler) ListByMember(c *fiber.Ctx) error {
	memberID, err := parseID(c, "memberId")
	if err != nil {
		return err
	}
	payments, err := h.service.ListByMember(c.Context(), memberID)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewPaymentResponses(payments)})
}
