package service

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/gym-service/internal/auth"
	"github.com/spec-kit/gym-service/internal/domain"
	"github.com/spec-kit/gym-service/internal/repository"
	apperrors "github.com/spec-kit/gym-service/pkg/util/errorutil"
)

// MemberService manages member profiles.
type MemberService struct {
	members repository.MemberRepository
	users   repository.UserRepository
}

// NewMemberService builds the service.
func NewMemberService(members repository.MemberRepository, users repository.UserRepository) *MemberService {
	return &MemberService{members: members, users: users}
}

// Create attaches a member profile to an existing user account.
func (s *MemberService) Create(ctx context.Context, member *domain.Member) (*domain.Member, error) {
	if _, err := s.users.GetByID(ctx, member.UserID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewValidationError("user account does not exist", map[string]any{"user_id": member.UserID})
		}
		return nil, err
	}
	if _, err := s.members.GetByUserID(ctx, member.UserID); err == nil {
		return nil, apperrors.NewConflict("user already has a member profile", nil)
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return nil, err
	}

	if err := s.members.Create(ctx, member); err != nil {
		return nil, err
	}
	return member, nil
}

// Update rewrites the profile fields.
func (s *MemberService) Update(ctx context.Context, member *domain.Member) (*domain.Member, error) {
	if err := s.members.Update(ctx, member); err != nil {
		return nil, err
	}
	return member, nil
}

// Delete removes the profile.
func (s *MemberService) Delete(ctx context.Context, id int64) error {
	return s.members.Delete(ctx, id)
}

// Get returns one member profile. Non-admin callers may only read their own
// profile; the route policy only requires authentication here.
func (s *MemberService) Get(ctx context.Context, actor *auth.Principal, id int64) (*domain.Member, error) {
	member, err := s.members.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !actor.HasRole(domain.RoleAdmin, domain.RoleTrainer) && member.UserID != actor.User.ID {
		return nil, apperrors.NewForbidden("profile belongs to another member")
	}
	return member, nil
}

// GetByUser returns the member profile linked to a user account.
func (s *MemberService) GetByUser(ctx context.Context, userID int64) (*domain.Member, error) {
	return s.members.GetByUserID(ctx, userID)
}

// List returns all member profiles.
func (s *MemberService) List(ctx context.Context) ([]domain.Member, error) {
	return s.members.List(ctx)
}

// ListActive returns members with active membership.
func (s *MemberService) ListActive(ctx context.Context) ([]domain.Member, error) {
	return s.members.ListActive(ctx)
}
