package service

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/gym-service/internal/auth"
	"github.com/spec-kit/gym-service/internal/domain"
	"github.com/spec-kit/gym-service/internal/repository"
	apperrors "github.com/spec-kit/gym-service/pkg/util/errorutil"
)

// ProgressService manages fitness progress entries. The route policy only
// requires authentication for most progress routes; per-entry ownership is
// enforced here: members touch only their own entries, trainers may read
// any, admins may do anything.
type ProgressService struct {
	progress repository.ProgressRepository
	members  repository.MemberRepository
}

// NewProgressService builds the service.
func NewProgressService(progress repository.ProgressRepository, members repository.MemberRepository) *ProgressService {
	return &ProgressService{progress: progress, members: members}
}

// Create stores a new entry for the caller's member profile. Admins may
// record entries for any member.
func (s *ProgressService) Create(ctx context.Context, actor *auth.Principal, entry *domain.FitnessProgress) (*domain.FitnessProgress, error) {
	if entry.WeightKG <= 0 {
		return nil, apperrors.NewValidationError("weight must be positive", nil)
	}
	if entry.RecordedAt.IsZero() {
		entry.RecordedAt = time.Now()
	}

	if !actor.HasRole(domain.RoleAdmin) {
		member, err := s.memberForActor(ctx, actor)
		if err != nil {
			return nil, err
		}
		entry.MemberID = member.ID
	}

	if err := s.progress.Create(ctx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

// Update rewrites an entry the caller owns.
func (s *ProgressService) Update(ctx context.Context, actor *auth.Principal, entry *domain.FitnessProgress) (*domain.FitnessProgress, error) {
	existing, err := s.progress.GetByID(ctx, entry.ID)
	if err != nil {
		return nil, err
	}
	if err := s.checkOwnership(ctx, actor, existing.MemberID, false); err != nil {
		return nil, err
	}

	entry.MemberID = existing.MemberID
	if err := s.progress.Update(ctx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

// Delete removes an entry. Admin-only by route policy.
func (s *ProgressService) Delete(ctx context.Context, id int64) error {
	return s.progress.Delete(ctx, id)
}

// Get returns one entry, subject to ownership.
func (s *ProgressService) Get(ctx context.Context, actor *auth.Principal, id int64) (*domain.FitnessProgress, error) {
	entry, err := s.progress.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.checkOwnership(ctx, actor, entry.MemberID, true); err != nil {
		return nil, err
	}
	return entry, nil
}

// List returns every entry. Admin-only by route policy.
func (s *ProgressService) List(ctx context.Context) ([]domain.FitnessProgress, error) {
	return s.progress.List(ctx)
}

// ListByMember returns a member's history, subject to ownership.
func (s *ProgressService) ListByMember(ctx context.Context, actor *auth.Principal, memberID int64) ([]domain.FitnessProgress, error) {
	if err := s.checkOwnership(ctx, actor, memberID, true); err != nil {
		return nil, err
	}
	return s.progress.ListByMember(ctx, memberID)
}

// ListByMemberDateRange returns a member's entries in [from, to].
func (s *ProgressService) ListByMemberDateRange(ctx context.Context, actor *auth.Principal, memberID int64, from, to time.Time) ([]domain.FitnessProgress, error) {
	if err := s.checkOwnership(ctx, actor, memberID, true); err != nil {
		return nil, err
	}
	if to.Before(from) {
		return nil, apperrors.NewValidationError("date range end precedes start", nil)
	}
	return s.progress.ListByMemberDateRange(ctx, memberID, from, to)
}

// ListRecentByMember returns a member's latest entries.
func (s *ProgressService) ListRecentByMember(ctx context.Context, actor *auth.Principal, memberID int64, limit int) ([]domain.FitnessProgress, error) {
	if err := s.checkOwnership(ctx, actor, memberID, true); err != nil {
		return nil, err
	}
	if limit <= 0 || limit > 100 {
		limit = 10
	}
	return s.progress.ListRecentByMember(ctx, memberID, limit)
}

func (s *ProgressService) checkOwnership(ctx context.Context, actor *auth.Principal, memberID int64, readOnly bool) error {
	if actor.HasRole(domain.RoleAdmin) {
		return nil
	}
	if readOnly && actor.HasRole(domain.RoleTrainer) {
		return nil
	}
	member, err := s.memberForActor(ctx, actor)
	if err != nil {
		return err
	}
	if member.ID != memberID {
		return apperrors.NewForbidden("progress belongs to another member")
	}
	return nil
}

func (s *ProgressService) memberForActor(ctx context.Context, actor *auth.Principal) (*domain.Member, error) {
	member, err := s.members.GetByUserID(ctx, actor.User.ID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewForbidden("no member profile for this account")
		}
		return nil, err
	}
	return member, nil
}
