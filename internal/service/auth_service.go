package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/gym-service/internal/auth"
	"github.com/spec-kit/gym-service/internal/config"
	"github.com/spec-kit/gym-service/internal/domain"
	"github.com/spec-kit/gym-service/internal/events"
	apperrors "github.com/spec-kit/gym-service/pkg/util/errorutil"
)

// AuthService coordinates registration, login and account credential flows.
type AuthService struct {
	users      repositoryUserStore
	tokens     *auth.TokenManager
	resolver   *auth.PrincipalResolver
	dispatcher events.Dispatcher
	bcryptCost int
}

// repositoryUserStore is the slice of the user repository the auth flows
// need.
type repositoryUserStore interface {
	auth.PrincipalStore
	Create(ctx context.Context, user *domain.User) error
	Update(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}

// NewAuthService builds the service.
func NewAuthService(cfg config.AuthConfig, users repositoryUserStore, dispatcher events.Dispatcher) *AuthService {
	tokens := auth.NewTokenManager(cfg.JWTSecret, cfg.AccessTokenTTL())
	return &AuthService{
		users:      users,
		tokens:     tokens,
		resolver:   auth.NewPrincipalResolver(tokens, users),
		dispatcher: dispatcher,
		bcryptCost: cfg.BcryptCost,
	}
}

// Login authenticates the credentials and issues a token. Bad username, bad
// password and disabled account all collapse to the same 401 so callers
// cannot probe accounts.
func (s *AuthService) Login(ctx context.Context, username, password string) (*domain.User, string, time.Time, error) {
	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, "", time.Time{}, apperrors.NewUnauthorized("invalid username or password")
		}
		return nil, "", time.Time{}, err
	}
	if !user.Enabled {
		return nil, "", time.Time{}, apperrors.NewUnauthorized("invalid username or password")
	}
	if err := auth.ComparePassword(user.PasswordHash, password); err != nil {
		return nil, "", time.Time{}, apperrors.NewUnauthorized("invalid username or password")
	}

	token, exp, err := s.tokens.Issue(user.Username, user.Role, time.Now())
	if err != nil {
		return nil, "", time.Time{}, err
	}
	return user, token, exp, nil
}

// Register creates a new account. Unknown or missing roles default to
// MEMBER.
func (s *AuthService) Register(ctx context.Context, username, email, password string, role string) (*domain.User, error) {
	if _, err := s.users.FindByUsername(ctx, username); err == nil {
		return nil, apperrors.NewValidationError("username already exists", nil)
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return nil, err
	}
	if _, err := s.users.GetByEmail(ctx, email); err == nil {
		return nil, apperrors.NewValidationError("email already exists", nil)
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return nil, err
	}

	parsedRole, ok := domain.ParseRole(role)
	if !ok {
		parsedRole = domain.RoleMember
	}

	hash, err := auth.HashPassword(password, s.bcryptCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		Role:         parsedRole,
		Enabled:      true,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	s.publish(ctx, events.EventUserRegistered, user.ID, events.UserRegisteredPayload{
		Username: user.Username,
		Email:    user.Email,
		Role:     user.Role,
	})
	return user, nil
}

// Refresh verifies the presented token end to end and issues a fresh one for
// the same subject.
func (s *AuthService) Refresh(ctx context.Context, tokenStr string) (string, time.Time, error) {
	principal, err := s.resolver.Resolve(ctx, tokenStr, time.Now())
	if err != nil {
		return "", time.Time{}, apperrors.NewUnauthorized("invalid token")
	}
	return s.tokens.Issue(principal.User.Username, principal.User.Role, time.Now())
}

// Validate reports whether the token currently resolves to an enabled
// principal. It never returns resolution detail.
func (s *AuthService) Validate(ctx context.Context, tokenStr string) bool {
	_, err := s.resolver.Resolve(ctx, tokenStr, time.Now())
	return err == nil
}

// Logout is advisory: tokens stay valid until natural expiry because there
// is no server-side revocation store.
func (s *AuthService) Logout(_ context.Context, _ string) error {
	return nil
}

// ChangePassword verifies the current password before updating to new hash.
func (s *AuthService) ChangePassword(ctx context.Context, userID int64, currentPassword, newPassword string) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if err := auth.ComparePassword(user.PasswordHash, currentPassword); err != nil {
		return nil, apperrors.NewUnauthorized("current password is incorrect")
	}

	hash, err := auth.HashPassword(newPassword, s.bcryptCost)
	if err != nil {
		return nil, err
	}
	user.PasswordHash = hash
	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// ResetPassword overwrites a user's password without knowing the old one.
// Route policy restricts this to admins.
func (s *AuthService) ResetPassword(ctx context.Context, userID int64, newPassword string) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	hash, err := auth.HashPassword(newPassword, s.bcryptCost)
	if err != nil {
		return nil, err
	}
	user.PasswordHash = hash
	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// SetUserEnabled flips the enabled flag. Disabling takes effect on the next
// request: the resolver refuses disabled principals regardless of token
// validity.
func (s *AuthService) SetUserEnabled(ctx context.Context, userID int64, enabled bool) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	user.Enabled = enabled
	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// TokenManager exposes the underlying token manager.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokens
}

// Resolver exposes the principal resolver for gate wiring.
func (s *AuthService) Resolver() *auth.PrincipalResolver {
	return s.resolver
}

func (s *AuthService) publish(ctx context.Context, eventType events.EventType, entityID int64, payload any) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		EntityID:  entityID,
		Timestamp: time.Now(),
		Payload:   payload,
	})
}
