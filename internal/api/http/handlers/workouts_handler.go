package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/gym-service/internal/api/dto"
	"github.com/spec-kit/gym-service/internal/domain"
	"github.com/spec-kit/gym-service/internal/service"
	apperrors "github.com/spec-kit/gym-service/pkg/util/errorutil"
)

// WorkoutsHandler manages workout catalogue endpoints.
type WorkoutsHandler struct {
	service *service.WorkoutService
}

// NewWorkoutsHandler constructs handler.
func NewWorkoutsHandler(workoutService *service.WorkoutService) *WorkoutsHandler {
	return &WorkoutsHandler{service: workoutService}
}

// Create POST /api/workouts.
func (h *WorkoutsHandler) Create(c *fiber.Ctx) error {
	workout, err := parseWorkoutRequest(c)
	if err != nil {
		return err
	}
	created, err := h.service.Create(c.Context(), workout)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": dto.NewWorkoutResponse(created)})
}

// Update PUT /api/workouts/:id.
func (h *WorkoutsHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	workout, err := parseWorkoutRequest(c)
	if err != nil {
		return err
	}
	workout.ID = id
	updated, err := h.service.Update(c.Context(), workout)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewWorkoutResponse(updated)})
}

// Delete DELETE /api/workouts/:id.
func (h *WorkoutsHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	if err := h.service.Delete(c.Context(), id); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Get GET /api/workouts/:id.
func (h *WorkoutsHandler) Get(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	workout, err := h.service.Get(c.Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewWorkoutResponse(workout)})
}

// List GET /api/workouts.
func (h *WorkoutsHandler) List(c *fiber.Ctx) error {
	workouts, err := h.service.List(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewWorkoutResponses(workouts)})
}

func parseWorkoutRequest(c *fiber.Ctx) (*domain.Workout, error) {
	var req dto.WorkoutRequest
	if err := c.BodyParser(&req); err != nil {
		return nil, apperrors.NewValidationError("invalid payload", nil)
	}
	return &domain.Workout{
		Type:     req.Type,
		Date:     req.Date,
		Duration: req.Duration,
		Calories: req.Calories,
		Notes:    req.Notes,
	}, nil
}
