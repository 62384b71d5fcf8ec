package service

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/gym-service/internal/domain"
	"github.com/spec-kit/gym-service/internal/repository"
	apperrors "github.com/spec-kit/gym-service/pkg/util/errorutil"
)

// ClassService manages the class schedule.
type ClassService struct {
	classes  repository.ClassRepository
	trainers repository.TrainerRepository
}

// NewClassService builds the service.
func NewClassService(classes repository.ClassRepository, trainers repository.TrainerRepository) *ClassService {
	return &ClassService{classes: classes, trainers: trainers}
}

// Create validates and stores a new class.
func (s *ClassService) Create(ctx context.Context, class *domain.FitnessClass) (*domain.FitnessClass, error) {
	if err := s.validate(ctx, class); err != nil {
		return nil, err
	}
	if err := s.classes.Create(ctx, class); err != nil {
		return nil, err
	}
	return class, nil
}

// Update validates and rewrites a class.
func (s *ClassService) Update(ctx context.Context, class *domain.FitnessClass) (*domain.FitnessClass, error) {
	if err := s.validate(ctx, class); err != nil {
		return nil, err
	}
	if err := s.classes.Update(ctx, class); err != nil {
		return nil, err
	}
	return class, nil
}

// Delete removes a class.
func (s *ClassService) Delete(ctx context.Context, id int64) error {
	return s.classes.Delete(ctx, id)
}

// Get returns one class.
func (s *ClassService) Get(ctx context.Context, id int64) (*domain.FitnessClass, error) {
	return s.classes.GetByID(ctx, id)
}

// List returns the full schedule.
func (s *ClassService) List(ctx context.Context) ([]domain.FitnessClass, error) {
	return s.classes.List(ctx)
}

// ListUpcoming returns active classes that have not started yet.
func (s *ClassService) ListUpcoming(ctx context.Context) ([]domain.FitnessClass, error) {
	return s.classes.ListUpcoming(ctx, time.Now())
}

// ListByTrainer returns the classes assigned to a trainer.
func (s *ClassService) ListByTrainer(ctx context.Context, trainerID int64) ([]domain.FitnessClass, error) {
	return s.classes.ListByTrainer(ctx, trainerID)
}

func (s *ClassService) validate(ctx context.Context, class *domain.FitnessClass) error {
	if class.Name == "" {
		return apperrors.NewValidationError("class name is required", nil)
	}
	if class.Capacity <= 0 {
		return apperrors.NewValidationError("capacity must be positive", nil)
	}
	if !class.EndTime.After(class.StartTime) {
		return apperrors.NewValidationError("end time must be after start time", nil)
	}
	if class.TrainerID != nil {
		if _, err := s.trainers.GetByID(ctx, *class.TrainerID); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return apperrors.NewValidationError("trainer does not exist", map[string]any{"trainer_id": *class.TrainerID})
			}
			return err
		}
	}
	return nil
}
