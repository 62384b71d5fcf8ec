package service

import (
	"context"

	"github.com/spec-kit/gym-service/internal/domain"
	"github.com/spec-kit/gym-service/internal/repository"
	apperrors "github.com/spec-kit/gym-service/pkg/util/errorutil"
)

// WorkoutService manages the workout catalogue.
type WorkoutService struct {
	workouts repository.WorkoutRepository
}

// NewWorkoutService builds the service.
func NewWorkoutService(workouts repository.WorkoutRepository) *WorkoutService {
	return &WorkoutService{workouts: workouts}
}

// Create validates and stores a workout.
func (s *WorkoutService) Create(ctx context.Context, workout *domain.Workout) (*domain.Workout, error) {
	if err := validateWorkout(workout); err != nil {
		return nil, err
	}
	if err := s.workouts.Create(ctx, workout); err != nil {
		return nil, err
	}
	return workout, nil
}

// Update validates and rewrites a workout.
func (s *WorkoutService) Update(ctx context.Context, workout *domain.Workout) (*domain.Workout, error) {
	if err := validateWorkout(workout); err != nil {
		return nil, err
	}
	if err := s.workouts.Update(ctx, workout); err != nil {
		return nil, err
	}
	return workout, nil
}

// Delete removes a workout.
func (s *WorkoutService) Delete(ctx context.Context, id int64) error {
	return s.workouts.Delete(ctx, id)
}

// Get returns one workout.
func (s *WorkoutService) Get(ctx context.Context, id int64) (*domain.Workout, error) {
	return s.workouts.GetByID(ctx, id)
}

// List returns all workouts, newest first.
func (s *WorkoutService) List(ctx context.Context) ([]domain.Workout, error) {
	return s.workouts.List(ctx)
}

func validateWorkout(workout *domain.Workout) error {
	if workout.Type == "" {
		return apperrors.NewValidationError("workout type is required", nil)
	}
	if workout.Duration <= 0 {
		return apperrors.NewValidationError("duration must be positive", nil)
	}
	if workout.Calories < 0 {
		return apperrors.NewValidationError("calories cannot be negative", nil)
	}
	return nil
}
