package handlers

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/gym-service/internal/api/dto"
	"github.com/spec-kit/gym-service/internal/auth"
	"github.com/spec-kit/gym-service/internal/domain"
	"github.com/spec-kit/gym-service/internal/service"
	apperrors "github.com/spec-kit/gym-service/pkg/util/errorutil"
)

// AuthHandler serves the /auth endpoints.
type AuthHandler struct {
	service *service.AuthService
}

// NewAuthHandler constructs handler.
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{service: authService}
}

// Login POST /auth/login.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Username == "" || req.Password == "" {
		return apperrors.NewValidationError("username and password required", nil)
	}

	user, token, _, err := h.service.Login(c.Context(), req.Username, req.Password)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"token": token,
		"user":  dto.NewUserResponse(user),
	})
}

// Register POST /auth/register.
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if strings.TrimSpace(req.Username) == "" || strings.TrimSpace(req.Email) == "" || req.Password == "" {
		return apperrors.NewValidationError("username, email, password required", nil)
	}

	user, err := h.service.Register(c.Context(), req.Username, req.Email, req.Password, req.Role)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"message": "user registered successfully",
		"user":    dto.NewUserResponse(user),
	})
}

// Refresh POST /auth/refresh.
func (h *AuthHandler) Refresh(c *fiber.Ctx) error {
	req, err := parseTokenRequest(c)
	if err != nil {
		return err
	}
	token, _, err := h.service.Refresh(c.Context(), req.Token)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"token": token})
}

// Logout POST /auth/logout. Advisory: the token stays valid until expiry.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	req, err := parseTokenRequest(c)
	if err != nil {
		return err
	}
	if err := h.service.Logout(c.Context(), req.Token); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "logged out"})
}

// Validate POST /auth/validate.
func (h *AuthHandler) Validate(c *fiber.Ctx) error {
	req, err := parseTokenRequest(c)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"valid": h.service.Validate(c.Context(), req.Token)})
}

// Me GET /auth/me.
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.User == nil {
		return apperrors.NewUnauthorized("authentication required")
	}
	return c.JSON(fiber.Map{"user": dto.NewUserResponse(principal.User)})
}

// ChangePassword POST /auth/change-password.
func (h *AuthHandler) ChangePassword(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.User == nil {
		return apperrors.NewUnauthorized("authentication required")
	}
	var req dto.ChangePasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.CurrentPassword == "" || req.NewPassword == "" {
		return apperrors.NewValidationError("currentPassword and newPassword required", nil)
	}

	if _, err := h.service.ChangePassword(c.Context(), principal.User.ID, req.CurrentPassword, req.NewPassword); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "password changed"})
}

// ResetPassword POST /auth/reset-password/:userId. Admin-only: the /auth
// prefix is public for login and registration, so the gate is here.
func (h *AuthHandler) ResetPassword(c *fiber.Ctx) error {
	if err := requireAdmin(c); err != nil {
		return err
	}
	userID, err := parseID(c, "userId")
	if err != nil {
		return err
	}
	var req dto.ResetPasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.NewPassword == "" {
		return apperrors.NewValidationError("newPassword required", nil)
	}

	if _, err := h.service.ResetPassword(c.Context(), userID, req.NewPassword); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "password reset"})
}

// SetEnabled POST /auth/:userId/enable. Admin-only, same as ResetPassword.
func (h *AuthHandler) SetEnabled(c *fiber.Ctx) error {
	if err := requireAdmin(c); err != nil {
		return err
	}
	userID, err := parseID(c, "userId")
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

	user, err := h.service.SetUserEnabled(c.Context(), userID, *req.Enabled)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"user": dto.NewUserResponse(user)})
}

func requireAdmin(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.User == nil {
		return apperrors.NewUnauthorized("authentication required")
	}
	if !principal.HasRole(domain.RoleAdmin) {
		return apperrors.NewForbidden("admin role required")
	}
	return nil
}

func parseTokenRequest(c *fiber.Ctx) (dto.TokenRequest, error) {
	var req dto.TokenRequest
	if err := c.BodyParser(&req); err != nil {
		return req, apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Token == "" {
		return req, apperrors.NewValidationError("token required", nil)
	}
	return req, nil
}

func parseID(c *fiber.Ctx, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Params(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, apperrors.NewValidationError("invalid "+name, nil)
	}
	return id, nil
}
