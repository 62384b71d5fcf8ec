package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/gym-service/internal/service"
)

// NotificationsHandler serves the admin-triggered reminder endpoints.
type NotificationsHandler struct {
	service *service.NotificationService
}

// NewNotificationsHandler constructs handler.
func NewNotificationsHandler(notificationService *service.NotificationService) *NotificationsHandler {
	return &NotificationsHandler{service: notificationService}
}

// SendClassReminders POST /api/notifications/class-reminders/:classId.
func (h *NotificationsHandler) SendClassReminders(c *fiber.Ctx) error {
	classID, err := parseID(c, "classId")
	if err != nil {
		return err
	}
	count, err := h.service.SendClassReminders(c.Context(), classID)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "class reminders sent", "count": count})
}

// SendPaymentReminders POST /api/notifications/payment-reminders.
func (h *NotificationsHandler) SendPaymentReminders(c *fiber.Ctx) error {
	count, err := h.service.SendPaymentReminders(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "payment reminders sent", "count": count})
}

// SendMembershipExpiryReminders POST /api/notifications/membership-expiry-reminders.
func (h *NotificationsHandler) SendMembershipExpiryReminders(c *fiber.Ctx) error {
	count, err := h.service.SendMembershipExpiryReminders(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "membership expiry reminders sent", "count": count})
}

// SendWelcome POST /api/notifications/welcome/:memberId.
func (h *NotificationsHandler) SendWelcome(c *fiber.Ctx) error {
	memberID, err := parseID(c, "memberId")
	if err != nil {
		return err
	}
	if err := h.service.SendWelcome(c.Context(), memberID); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "welcome sent"})
}
