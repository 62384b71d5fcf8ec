package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/gym-service/internal/api/dto"
	"github.com/spec-kit/gym-service/internal/auth"
	"github.com/spec-kit/gym-service/internal/domain"
	"github.com/spec-kit/gym-service/internal/service"
	apperrors "github.com/spec-kit/gym-service/pkg/util/errorutil"
)

// MembersHandler manages member profile endpoints.
type MembersHandler struct {
	service *service.MemberService
}

// NewMembersHandler constructs handler.
func NewMembersHandler(memberService *service.MemberService) *MembersHandler {
	return &MembersHandler{service: memberService}
}

// Create POST /api/members.
func (h *MembersHandler) Create(c *fiber.Ctx) error {
	member, err := parseMemberRequest(c)
	if err != nil {
		return err
	}
	created, err := h.service.Create(c.Context(), member)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": dto.NewMemberResponse(created)})
}

// Update PUT /api/members/:id.
func (h *MembersHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	member, err := parseMemberRequest(c)
	if err != nil {
		return err
	}
	member.ID = id
	updated, err := h.service.Update(c.Context(), member)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewMemberResponse(updated)})
}

// Delete DELETE /api/members/:id.
func (h *MembersHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	if err := h.service.Delete(c.Context(), id); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Get GET /api/members/:id.
func (h *MembersHandler) Get(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	member, err := h.service.Get(c.Context(), principal, id)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewMemberResponse(member)})
}

// GetMine GET /api/members/me.
func (h *MembersHandler) GetMine(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	member, err := h.service.GetByUser(c.Context(), principal.User.ID)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewMemberResponse(member)})
}

// List GET /api/members.
func (h *MembersHandler) List(c *fiber.Ctx) error {
	var (
		members []domain.Member
		err     error
	)
	if c.QueryBool("active") {
		members, err = h.service.ListActive(c.Context())
	} else {
		members, err = h.service.List(c.Context())
	}
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewMemberResponses(members)})
}

func parseMemberRequest(c *fiber.Ctx) (*domain.Member, error) {
	var req dto.MemberRequest
	if err := c.BodyParser(&req); err != nil {
		return nil, apperrors.NewValidationError("invalid payload", nil)
	}
	if req.UserID <= 0 {
		return nil, apperrors.NewValidationError("user_id required", nil)
	}

	active := true
	if req.Active != nil {
		active = *req.Active
	}
	return &domain.Member{
		UserID:            req.UserID,
		DateOfBirth:       req.DateOfBirth,
		Gender:            domain.Gender(req.Gender),
		PhoneNumber:       req.PhoneNumber,
		Address:           req.Address,
		MembershipStart:   req.MembershipStart,
		MembershipEnd:     req.MembershipEnd,
		MembershipType:    domain.MembershipType(req.MembershipType),
		Active:            active,
		MedicalConditions: req.MedicalConditions,
		EmergencyContact:  req.EmergencyContact,
	}, nil
}
