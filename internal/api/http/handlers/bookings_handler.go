package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/gym-service/internal/api/dto"
	"github.com/spec-kit/gym-service/internal/auth"
	"github.com/spec-kit/gym-service/internal/domain"
	"github.com/spec-kit/gym-service/internal/service"
	apperrors "github.com/spec-kit/gym-service/pkg/util/errorutil"
)

// BookingsHandler manages class booking endpoints.
type BookingsHandler struct {
	service *service.BookingService
}

// NewBookingsHandler constructs handler.
func NewBookingsHandler(bookingService *service.BookingService) *BookingsHandler {
	return &BookingsHandler{service: bookingService}
}

// Book POST /api/class-bookings.
func (h *BookingsHandler) Book(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	var req dto.BookingRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.FitnessClassID <= 0 {
		return apperrors.NewValidationError("fitness_class_id required", nil)
	}

	booking, err := h.service.Book(c.Context(), principal, req.FitnessClassID)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": dto.NewBookingResponse(booking)})
}

// Cancel PUT /api/class-bookings/:bookingId/cancel.
func (h *BookingsHandler) Cancel(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	bookingID, err := parseID(c, "bookingId")
	if err != nil {
		return err
	}

	booking, err := h.service.Cancel(c.Context(), principal, bookingID)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewBookingResponse(booking)})
}

// UpdateStatus PUT /api/class-bookings/:bookingId/status.
func (h *BookingsHandler) UpdateStatus(c *fiber.Ctx) error {
	bookingID, err := parseID(c, "bookingId")
	if err != nil {
		return err
	}
	var req dto.BookingStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	booking, err := h.service.UpdateStatus(c.Context(), bookingID, domain.BookingStatus(req.Status))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewBookingResponse(booking)})
}

// Delete DELETE /api/class-bookings/:bookingId.
func (h *BookingsHandler) Delete(c *fiber.Ctx) error {
	bookingID, err := parseID(c, "bookingId")
	if err != nil {
		return err
	}
	if err := h.service.Delete(c.Context(), bookingID); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Get GET /api/class-bookings/:bookingId.
func (h *BookingsHandler) Get(c *fiber.Ctx) error {
	bookingID, err := parseID(c, "bookingId")
	if err != nil {
		return err
	}
	booking, err := h.service.Get(c.Context(), bookingID)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewBookingResponse(booking)})
}

// ListByMember GET /api/class-bookings/member/:memberId.
func (h *BookingsHandler) ListByMember(c *fiber.Ctx) error {
	memberID, err := parseID(c, "memberId")
	if err != nil {
		return err
	}
	bookings, err := h.service.ListByMember(c.Context(), memberID)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewBookingResponses(bookings)})
}

// ListByClass GET /api/class-bookings/class/:classId.
func (h *BookingsHandler) ListByClass(c *fiber.Ctx) error {
	classID, err := parseID(c, "classId")
	if err != nil {
		return err
	}
	bookings, err := h.service.ListByClass(c.Context(), classID)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewBookingResponses(bookings)})
}

// ListActive GET /api/class-bookings/active.
func (h *BookingsHandler) ListActive(c *fiber.Ctx) error {
	bookings, err := h.service.ListByStatus(c.Context(), domain.BookingStatusActive)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewBookingResponses(bookings)})
}

// ListCancelled GET /api/class-bookings/cancelled.
func (h *BookingsHandler) ListCancelled(c *fiber.Ctx) error {
	bookings, err := h.service.ListByStatus(c.Context(), domain.BookingStatusCancelled)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewBookingResponses(bookings)})
}
