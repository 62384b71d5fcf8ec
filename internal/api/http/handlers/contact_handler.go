package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/gym-service/internal/api/dto"
	"github.com/spec-kit/gym-service/internal/domain"
	"github.com/spec-kit/gym-service/internal/service"
	apperrors "github.com/spec-kit/gym-service/pkg/util/errorutil"
)

// ContactHandler manages the contact form endpoints. Submission is public;
// reading and managing messages is admin-only by route policy.
type ContactHandler struct {
	service *service.ContactService
}

// NewContactHandler constructs handler.
func NewContactHandler(contactService *service.ContactService) *ContactHandler {
	return &ContactHandler{service: contactService}
}

// Submit POST /api/contact-messages.
func (h *ContactHandler) Submit(c *fiber.Ctx) error {
	var req dto.ContactRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	msg := &domain.ContactMessage{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Body:    req.Message,
	}
	created, err := h.service.Submit(c.Context(), msg)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "thanks for reaching out",
		"data":    dto.NewContactResponse(created),
	})
}

// Get GET /api/contact-messages/:id.
func (h *ContactHandler) Get(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	msg, err := h.service.Get(c.Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewContactResponse(msg)})
}

// List GET /api/contact-messages.
func (h *ContactHandler) List(c *fiber.Ctx) error {
	messages, err := h.service.List(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewContactResponses(messages)})
}

// MarkRead PUT /api/contact-messages/:id/read.
func (h *ContactHandler) MarkRead(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	if err := h.service.MarkRead(c.Context(), id); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "marked as read"})
}

// Delete DELETE /api/contact-messages/:id.
func (h *ContactHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	if err := h.service.Delete(c.Context(), id); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}
