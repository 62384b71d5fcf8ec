package service

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/gym-service/internal/domain"
	"github.com/spec-kit/gym-service/internal/repository"
	apperrors "github.com/spec-kit/gym-service/pkg/util/errorutil"
)

// TrainerService manages trainer profiles.
type TrainerService struct {
	trainers repository.TrainerRepository
	users    repository.UserRepository
}

// NewTrainerService builds the service.
func NewTrainerService(trainers repository.TrainerRepository, users repository.UserRepository) *TrainerService {
	return &TrainerService{trainers: trainers, users: users}
}

// Create attaches a trainer profile to an existing user account.
func (s *TrainerService) Create(ctx context.Context, trainer *domain.Trainer) (*domain.Trainer, error) {
	if _, err := s.users.GetByID(ctx, trainer.UserID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewValidationError("user account does not exist", map[string]any{"user_id": trainer.UserID})
		}
		return nil, err
	}
	if _, err := s.trainers.GetByUserID(ctx, trainer.UserID); err == nil {
		return nil, apperrors.NewConflict("user already has a trainer profile", nil)
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return nil, err
	}

	if err := s.trainers.Create(ctx, trainer); err != nil {
		return nil, err
	}
	return trainer, nil
}

// Update rewrites the profile fields.
func (s *TrainerService) Update(ctx context.Context, trainer *domain.Trainer) (*domain.Trainer, error) {
	if err := s.trainers.Update(ctx, trainer); err != nil {
		return nil, err
	}
	return trainer, nil
}

// Delete removes the profile.
func (s *TrainerService) Delete(ctx context.Context, id int64) error {
	return s.trainers.Delete(ctx, id)
}

// Get returns one trainer profile.
func (s *TrainerService) Get(ctx context.Context, id int64) (*domain.Trainer, error) {
	return s.trainers.GetByID(ctx, id)
}

// List returns all trainers.
func (s *TrainerService) List(ctx context.Context) ([]domain.Trainer, error) {
	return s.trainers.List(ctx)
}

// ListBySpecialization filters trainers by specialization substring.
func (s *TrainerService) ListBySpecialization(ctx context.Context, specialization string) ([]domain.Trainer, error) {
	return s.trainers.ListBySpecialization(ctx, specialization)
}
