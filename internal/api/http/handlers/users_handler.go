package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/gym-service/internal/api/dto"
	"github.com/spec-kit/gym-service/internal/auth"
	"github.com/spec-kit/gym-service/internal/domain"
	"github.com/spec-kit/gym-service/internal/service"
	apperrors "github.com/spec-kit/gym-service/pkg/util/errorutil"
)

// UsersHandler manages user account endpoints. Credential operations
// delegate to the auth service so hashing stays in one place.
type UsersHandler struct {
	service *service.UserService
	auth    *service.AuthService
}

// NewUsersHandler constructs handler.
func NewUsersHandler(userService *service.UserService, authService *service.AuthService) *UsersHandler {
	return &UsersHandler{service: userService, auth: authService}
}

// Create POST /api/users. Public registration, same flow as /auth/register.
func (h *UsersHandler) Create(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Username == "" || req.Email == "" || req.Password == "" {
		return apperrors.NewValidationError("username, email, password required", nil)
	}

	user, err := h.auth.Register(c.Context(), req.Username, req.Email, req.Password, req.Role)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": dto.NewUserResponse(user)})
}

// Get GET /api/users/:id.
func (h *UsersHandler) Get(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	user, err := h.service.Get(c.Context(), principal, id)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewUserResponse(user)})
}

// List GET /api/users.
func (h *UsersHandler) List(c *fiber.Ctx) error {
	users, err := h.service.List(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewUserResponses(users)})
}

// Search GET /api/users/search.
func (h *UsersHandler) Search(c *fiber.Ctx) error {
	var role *domain.Role
	if roleStr := c.Query("role"); roleStr != "" {
		parsed, ok := domain.ParseRole(roleStr)
		if !ok {
			return apperrors.NewValidationError("unknown role", map[string]any{"role": roleStr})
		}
		role = &parsed
	}
	var enabled *bool
	if enabledStr := c.Query("enabled"); enabledStr != "" {
		val := enabledStr == "true"
		enabled = &val
	}

	users, err := h.service.Search(c.Context(), c.Query("username"), c.Query("email"), role, enabled)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewUserResponses(users)})
}

// GetByUsername GET /api/users/username/:username.
func (h *UsersHandler) GetByUsername(c *fiber.Ctx) error {
	user, err := h.service.GetByUsername(c.Context(), c.Params("username"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewUserResponse(user)})
}

// GetByEmail GET /api/users/email/:email.
func (h *UsersHandler) GetByEmail(c *fiber.Ctx) error {
	user, err := h.service.GetByEmail(c.Context(), c.Params("email"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewUserResponse(user)})
}

// ListByRole GET /api/users/role/:role.
func (h *UsersHandler) ListByRole(c *fiber.Ctx) error {
	role, ok := domain.ParseRole(c.Params("role"))
	if !ok {
		return apperrors.NewValidationError("unknown role", map[string]any{"role": c.Params("role")})
	}
	users, err := h.service.ListByRole(c.Context(), role)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewUserResponses(users)})
}

// ListEnabled GET /api/users/enabled.
func (h *UsersHandler) ListEnabled(c *fiber.Ctx) error {
	users, err := h.service.ListByEnabled(c.Context(), true)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewUserResponses(users)})
}

// ListDisabled GET /api/users/disabled.
func (h *UsersHandler) ListDisabled(c *fiber.Ctx) error {
	users, err := h.service.ListByEnabled(c.Context(), false)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewUserResponses(users)})
}

// UpdateProfile PUT /api/users/:id.
func (h *UsersHandler) UpdateProfile(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	var req dto.UserUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	user, err := h.service.UpdateProfile(c.Context(), principal, id, req.Username, req.Email)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewUserResponse(user)})
}

// UpdateRole PUT /api/users/:id/role.
func (h *UsersHandler) UpdateRole(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	var req dto.RoleRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	user, err := h.service.UpdateRole(c.Context(), id, req.Role)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewUserResponse(user)})
}

// UpdatePassword PUT /api/users/:id/password. Self-service only: callers
// must prove the current password even for their own account; admins use
// /auth/reset-password instead.
func (h *UsersHandler) UpdatePassword(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	if !principal.HasRole(domain.RoleAdmin) && principal.User.ID != id {
		return apperrors.NewForbidden("account belongs to another user")
	}
	var req dto.ChangePasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.CurrentPassword == "" || req.NewPassword == "" {
		return apperrors.NewValidationError("currentPassword and newPassword required", nil)
	}

	if _, err := h.auth.ChangePassword(c.Context(), id, req.CurrentPassword, req.NewPassword); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "password changed"})
}

// SetEnabled PUT /api/users/:id/enabled.
func (h *UsersHandler) SetEnabled(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	var req dto.EnableRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Enabled == nil {
		return apperrors.NewValidationError("enabled required", nil)
	}

	user, err := h.auth.SetUserEnabled(c.Context(), id, *req.Enabled)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewUserResponse(user)})
}

// Delete DELETE /api/users/:id.
func (h *UsersHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	if err := h.service.Delete(c.Context(), id); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}
