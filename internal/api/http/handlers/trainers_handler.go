package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/gym-service/internal/api/dto"
	"github.com/spec-kit/gym-service/internal/domain"
	"github.com/spec-kit/gym-service/internal/service"
	apperrors "github.com/spec-kit/gym-service/pkg/util/errorutil"
)

// TrainersHandler manages trainer profile endpoints.
type TrainersHandler struct {
	service *service.TrainerService
}

// NewTrainersHandler constructs handler.
func NewTrainersHandler(trainerService *service.TrainerService) *TrainersHandler {
	return &TrainersHandler{service: trainerService}
}

// Create POST /api/trainers.
func (h *TrainersHandler) Create(c *fiber.Ctx) error {
	trainer, err := parseTrainerRequest(c)
	if err != nil {
		return err
	}
	created, err := h.service.Create(c.Context(), trainer)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": dto.NewTrainerResponse(created)})
}

// Update PUT /api/trainers/:id.
func (h *TrainersHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	trainer, err := parseTrainerRequest(c)
	if err != nil {
		return err
	}
	trainer.ID = id
	updated, err := h.service.Update(c.Context(), trainer)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewTrainerResponse(updated)})
}

// Delete DELETE /api/trainers/:id.
func (h *TrainersHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	if err := h.service.Delete(c.Context(), id); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Get GET /api/trainers/:id.
func (h *TrainersHandler) Get(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	trainer, err := h.service.Get(c.Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewTrainerResponse(trainer)})
}

// List GET /api/trainers.
func (h *TrainersHandler) List(c *fiber.Ctx) error {
	var (
		trainers []domain.Trainer
		err      error
	)
	if spec := c.Query("specialization"); spec != "" {
		trainers, err = h.service.ListBySpecialization(c.Context(), spec)
	} else {
		trainers, err = h.service.List(c.Context())
	}
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewTrainerResponses(trainers)})
}

func parseTrainerRequest(c *fiber.Ctx) (*domain.Trainer, error) {
	var req dto.TrainerRequest
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
	return &domain.Trainer{
		UserID:         req.UserID,
		Specialization: req.Specialization,
		PhoneNumber:    req.PhoneNumber,
		Bio:            req.Bio,
		HireDate:       req.HireDate,
		HourlyRate:     req.HourlyRate,
		Active:         active,
	}, nil
}
