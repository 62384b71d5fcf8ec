package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/gym-service/internal/api/dto"
	"github.com/spec-kit/gym-service/internal/domain"
	"github.com/spec-kit/gym-service/internal/service"
	apperrors "github.com/spec-kit/gym-service/pkg/util/errorutil"
)

// ClassesHandler manages the class schedule endpoints.
type ClassesHandler struct {
	service *service.ClassService
}

// NewClassesHandler constructs handler.
func NewClassesHandler(classService *service.ClassService) *ClassesHandler {
	return &ClassesHandler{service: classService}
}

// Create POST /api/classes.
func (h *ClassesHandler) Create(c *fiber.Ctx) error {
	class, err := parseClassRequest(c)
	if err != nil {
		return err
	}
	created, err := h.service.Create(c.Context(), class)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": dto.NewClassResponse(created)})
}

// Update PUT /api/classes/:id.
func (h *ClassesHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	class, err := parseClassRequest(c)
	if err != nil {
		return err
	}
	class.ID = id
	updated, err := h.service.Update(c.Context(), class)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewClassResponse(updated)})
}

// Delete DELETE /api/classes/:id.
func (h *ClassesHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	if err := h.service.Delete(c.Context(), id); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Get GET /api/classes/:id.
func (h *ClassesHandler) Get(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	class, err := h.service.Get(c.Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewClassResponse(class)})
}

// List GET /api/classes.
func (h *ClassesHandler) List(c *fiber.Ctx) error {
	classes, err := h.service.List(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewClassResponses(classes)})
}

// ListUpcoming GET /api/classes/upcoming.
func (h *ClassesHandler) ListUpcoming(c *fiber.Ctx) error {
	classes, err := h.service.ListUpcoming(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewClassResponses(classes)})
}

// ListByTrainer GET /api/classes/trainer/:trainerId.
func (h *ClassesHandler) ListByTrainer(c *fiber.Ctx) error {
	trainerID, err := parseID(c, "trainerId")
	if err != nil {
		return err
	}
	classes, err := h.service.ListByTrainer(c.Context(), trainerID)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewClassResponses(classes)})
}

func parseClassRequest(c *fiber.Ctx) (*domain.FitnessClass, error) {
	var req dto.ClassRequest
	if err := c.BodyParser(&req); err != nil {
		return nil, apperrors.NewValidationError("invalid payload", nil)
	}

	active := true
	if req.Active != nil {
		active = *req.Active
	}
	return &domain.FitnessClass{
		Name:        req.Name,
		Description: req.Description,
		TrainerID:   req.TrainerID,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		Capacity:    req.Capacity,
		Price:       req.Price,
		Active:      active,
	}, nil
}
