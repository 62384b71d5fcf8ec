package service

import (
	"context"

	"github.com/spec-kit/gym-service/internal/auth"
	"github.com/spec-kit/gym-service/internal/domain"
	"github.com/spec-kit/gym-service/internal/repository"
	apperrors "github.com/spec-kit/gym-service/pkg/util/errorutil"
)

// UserService manages user accounts beyond the auth flows.
type UserService struct {
	users repository.UserRepository
}

// NewUserService builds the service.
func NewUserService(users repository.UserRepository) *UserService {
	return &UserService{users: users}
}

// Get returns one account. Non-admin callers may only read their own.
func (s *UserService) Get(ctx context.Context, actor *auth.Principal, id int64) (*domain.User, error) {
	if !actor.HasRole(domain.RoleAdmin) && actor.User.ID != id {
		return nil, apperrors.NewForbidden("account belongs to another user")
	}
	return s.users.GetByID(ctx, id)
}

// GetByUsername returns the account with the given username.
func (s *UserService) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	return s.users.FindByUsername(ctx, username)
}

// GetByEmail returns the account with the given email.
func (s *UserService) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return s.users.GetByEmail(ctx, email)
}

// List returns all accounts.
func (s *UserService) List(ctx context.Context) ([]domain.User, error) {
	return s.users.List(ctx)
}

// ListByRole filters accounts by role.
func (s *UserService) ListByRole(ctx context.Context, role domain.Role) ([]domain.User, error) {
	return s.users.ListByRole(ctx, role)
}

// ListByEnabled filters accounts by enabled flag.
func (s *UserService) ListByEnabled(ctx context.Context, enabled bool) ([]domain.User, error) {
	return s.users.ListByEnabled(ctx, enabled)
}

// Search combines the optional filters.
func (s *UserService) Search(ctx context.Context, username, email string, role *domain.Role, enabled *bool) ([]domain.User, error) {
	return s.users.Search(ctx, username, email, role, enabled)
}

// UpdateProfile updates username and email. Non-admin callers may only
// update their own account.
func (s *UserService) UpdateProfile(ctx context.Context, actor *auth.Principal, id int64, username, email string) (*domain.User, error) {
	if !actor.HasRole(domain.RoleAdmin) && actor.User.ID != id {
		return nil, apperrors.NewForbidden("account belongs to another user")
	}

	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if username != "" {
		user.Username = username
	}
	if email != "" {
		user.Email = email
	}
	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// UpdateRole changes an account's role. Admin-only by route policy.
func (s *UserService) UpdateRole(ctx context.Context, id int64, role string) (*domain.User, error) {
	parsed, ok := domain.ParseRole(role)
	if !ok {
		return nil, apperrors.NewValidationError("unknown role", map[string]any{"role": role})
	}

	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	user.Role = parsed
	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Delete removes an account. Admin-only by route policy.
func (s *UserService) Delete(ctx context.Context, id int64) error {
	return s.users.Delete(ctx, id)
}
