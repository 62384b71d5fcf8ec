package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/gym-service/internal/api/dto"
	"github.com/spec-kit/gym-service/internal/domain"
	"github.com/spec-kit/gym-service/internal/service"
	apperrors "github.com/spec-kit/gym-service/pkg/util/errorutil"
)

// AdminsHandler manages admin account endpoints. Everything under
// /api/admins requires the ADMIN role by route policy.
type AdminsHandler struct {
	users *service.UserService
	auth  *service.AuthService
}

// NewAdminsHandler constructs handler.
func NewAdminsHandler(userService *service.UserService, authService *service.AuthService) *AdminsHandler {
	return &AdminsHandler{users: userService, auth: authService}
}

// List GET /api/admins.
func (h *AdminsHandler) List(c *fiber.Ctx) error {
	admins, err := h.users.ListByRole(c.Context(), domain.RoleAdmin)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewUserResponses(admins)})
}

// Create POST /api/admins.
func (h *AdminsHandler) Create(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if strings.TrimSpace(req.Username) == "" || strings.TrimSpace(req.Email) == "" || req.Password == "" {
		return apperrors.NewValidationError("username, email, password required", nil)
	}

	admin, err := h.auth.Register(c.Context(), req.Username, req.Email, req.Password, string(domain.RoleAdmin))
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": dto.NewUserResponse(admin)})
}
