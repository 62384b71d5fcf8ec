package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/gym-service/internal/api/dto"
	"github.com/spec-kit/gym-service/internal/auth"
	"github.com/spec-kit/gym-service/internal/domain"
	"github.com/spec-kit/gym-service/internal/service"
	apperrors "github.com/spec-kit/gym-service/pkg/util/errorutil"
)

// ProgressHandler manages fitness progress endpoints.
type ProgressHandler struct {
	service *service.ProgressService
}

// NewProgressHandler constructs handler.
func NewProgressHandler(progressService *service.ProgressService) *ProgressHandler {
	return &ProgressHandler{service: progressService}
}

// Create POST /api/progress.
func (h *ProgressHandler) Create(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	entry, err := parseProgressRequest(c)
	if err != nil {
		return err
	}

	created, err := h.service.Create(c.Context(), principal, entry)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": dto.NewProgressResponse(created)})
}

// Update PUT /api/progress/:id.
func (h *ProgressHandler) Update(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	entry, err := parseProgressRequest(c)
	if err != nil {
		return err
	}
	entry.ID = id

	updated, err := h.service.Update(c.Context(), principal, entry)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewProgressResponse(updated)})
}

// Delete DELETE /api/progress/:id.
func (h *ProgressHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	if err := h.service.Delete(c.Context(), id); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Get GET /api/progress/:id.
func (h *ProgressHandler) Get(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	entry, err := h.service.Get(c.Context(), principal, id)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewProgressResponse(entry)})
}

// List GET /api/progress.
func (h *ProgressHandler) List(c *fiber.Ctx) error {
	entries, err := h.service.List(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewProgressResponses(entries)})
}

// ListByMember GET /api/progress/member/:memberId.
func (h *ProgressHandler) ListByMember(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	memberID, err := parseID(c, "memberId")
	if err != nil {
		return err
	}

	from := parseDate(c.Query("from"))
	to := parseDate(c.Query("to"))

	var entries []domain.FitnessProgress
	switch {
	case from != nil && to != nil:
		entries, err = h.service.ListByMemberDateRange(c.Context(), principal, memberID, *from, *to)
	case c.Query("limit") != "":
		entries, err = h.service.ListRecentByMember(c.Context(), principal, memberID, c.QueryInt("limit"))
	default:
		entries, err = h.service.ListByMember(c.Context(), principal, memberID)
	}
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewProgressResponses(entries)})
}

// ListByMemberDateRange GET /api/progress/member/:memberId/date-range.
func (h *ProgressHandler) ListByMemberDateRange(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	memberID, err := parseID(c, "memberId")
	if err != nil {
		return err
	}
	from := parseDate(c.Query("from"))
	to := parseDate(c.Query("to"))
	if from == nil || to == nil {
		return apperrors.NewValidationError("from and to dates required", nil)
	}

	entries, err := h.service.ListByMemberDateRange(c.Context(), principal, memberID, *from, *to)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewProgressResponses(entries)})
}

// ListRecentByMember GET /api/progress/member/:memberId/recent.
func (h *ProgressHandler) ListRecentByMember(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	memberID, err := parseID(c, "memberId")
	if err != nil {
		return err
	}

	entries, err := h.service.ListRecentByMember(c.Context(), principal, memberID, c.QueryInt("limit", 10))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewProgressResponses(entries)})
}

func parseProgressRequest(c *fiber.Ctx) (*domain.FitnessProgress, error) {
	var req dto.ProgressRequest
	if err := c.BodyParser(&req); err != nil {
		return nil, apperrors.NewValidationError("invalid payload", nil)
	}
	return &domain.FitnessProgress{
		MemberID:       req.MemberID,
		RecordedAt:     req.RecordedAt,
		WeightKG:       req.WeightKG,
		BodyFatPercent: req.BodyFatPercent,
		MuscleMassKG:   req.MuscleMassKG,
		Notes:          req.Notes,
	}, nil
}

func parseDate(val string) *time.Time {
	if val == "" {
		return nil
	}
	if t, err := time.Parse(time.RFC3339, val); err == nil {
		return &t
	}
	if t, err := time.Parse("2006-01-02", val); err == nil {
		return &t
	}
	return nil
}
