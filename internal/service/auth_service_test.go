package service

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/spec-kit/gym-service/internal/auth"
	"github.com/spec-kit/gym-service/internal/config"
	"github.com/spec-kit/gym-service/internal/domain"
	apperrors "github.com/spec-kit/gym-service/pkg/util/errorutil"
)

type memUserStore struct {
	seq   int64
	users map[int64]*domain.User
}

func newMemUserStore() *memUserStore {
	return &memUserStore{users: map[int64]*domain.User{}}
}

func (s *memUserStore) Create(_ context.Context, user *domain.User) error {
	s.seq++
	user.ID = s.seq
	copied := *user
	s.users[user.ID] = &copied
	return nil
}

func (s *memUserStore) Update(_ context.Context, user *domain.User) error {
	if _, ok := s.users[user.ID]; !ok {
		return pgx.ErrNoRows
	}
	copied := *user
	s.users[user.ID] = &copied
	return nil
}

func (s *memUserStore) GetByID(_ context.Context, id int64) (*domain.User, error) {
	user, ok := s.users[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := *user
	return &copied, nil
}

func (s *memUserStore) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	for _, user := range s.users {
		if user.Username == username {
			copied := *user
			return &copied, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (s *memUserStore) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, user := range s.users {
		if user.Email == email {
			copied := *user
			return &copied, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func testAuthConfig() config.AuthConfig {
	return config.AuthConfig{
		JWTSecret:           "service-test-secret",
		AccessTokenTTLHours: 24,
		BcryptCost:          bcrypt.MinCost,
	}
}

func seedAccount(t *testing.T, store *memUserStore, username string, role domain.Role, enabled bool) *domain.User {
	t.Helper()
	hash, err := auth.HashPassword("password123", bcrypt.MinCost)
	require.NoError(t, err)
	user := &domain.User{
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: hash,
		Role:         role,
		Enabled:      enabled,
	}
	require.NoError(t, store.Create(context.Background(), user))
	return user
}

func requireStatus(t *testing.T, err error, status int) {
	t.Helper()
	require.Error(t, err)
	domainErr := apperrors.ToDomainError(err)
	assert.Equal(t, status, domainErr.HTTPStatus)
}

func TestLoginIssuesToken(t *testing.T) {
	store := newMemUserStore()
	seedAccount(t, store, "alice", domain.RoleMember, true)
	svc := NewAuthService(testAuthConfig(), store, nil)

	user, token, expiresAt, err := svc.Login(context.Background(), "alice", "password123")
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)
	assert.NotEmpty(t, token)
	assert.WithinDuration(t, time.Now().Add(24*time.Hour), expiresAt, time.Minute)

	claims, err := svc.TokenManager().Verify(token, time.Now())
	require.NoError(t, err)
	assert.Equal(t, "alice", claims.Subject)
	assert.Equal(t, domain.RoleMember, claims.Role)
}

func TestLoginFailuresAreUniform(t *testing.T) {
	store := newMemUserStore()
	seedAccount(t, store, "alice", domain.RoleMember, true)
	seedAccount(t, store, "frozen", domain.RoleMember, false)
	svc := NewAuthService(testAuthConfig(), store, nil)

	cases := []struct {
		name     string
		username string
		password string
	}{
		{"unknown user", "ghost", "password123"},
		{"wrong password", "alice", "nope"},
		{"disabled account", "frozen", "password123"},
	}
	var messages []string
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, _, err := svc.Login(context.Background(), tc.username, tc.password)
			requireStatus(t, err, 401)
			messages = append(messages, apperrors.ToDomainError(err).Message)
		})
	}
	// The caller cannot tell the three failures apart.
	for _, msg := range messages {
		assert.Equal(t, messages[0], msg)
	}
}

func TestRegister(t *testing.T) {
	store := newMemUserStore()
	svc := NewAuthService(testAuthConfig(), store, nil)

	user, err := svc.Register(context.Background(), "bob", "bob@example.com", "secret123", "TRAINER")
	require.NoError(t, err)
	assert.Equal(t, domain.RoleTrainer, user.Role)
	assert.True(t, user.Enabled)
	assert.NotEqual(t, "secret123", user.PasswordHash)

	_, err = svc.Register(context.Background(), "bob", "other@example.com", "secret123", "")
	requireStatus(t, err, 400)

	_, err = svc.Register(context.Background(), "bobby", "bob@example.com", "secret123", "")
	requireStatus(t, err, 400)

	unknownRole, err := svc.Register(context.Background(), "carla", "carla@example.com", "secret123", "OVERLORD")
	require.NoError(t, err)
	assert.Equal(t, domain.RoleMember, unknownRole.Role)
}

func TestRefresh(t *testing.T) {
	store := newMemUserStore()
	seedAccount(t, store, "alice", domain.RoleMember, true)
	svc := NewAuthService(testAuthConfig(), store, nil)

	_, token, _, err := svc.Login(context.Background(), "alice", "password123")
	require.NoError(t, err)

	fresh, _, err := svc.Refresh(context.Background(), token)
	require.NoError(t, err)
	claims, err := svc.TokenManager().Verify(fresh, time.Now())
	require.NoError(t, err)
	assert.Equal(t, "alice", claims.Subject)

	_, _, err = svc.Refresh(context.Background(), "garbage")
	requireStatus(t, err, 401)
}

func TestValidate(t *testing.T) {
	store := newMemUserStore()
	user := seedAccount(t, store, "alice", domain.RoleMember, true)
	svc := NewAuthService(testAuthConfig(), store, nil)

	_, token, _, err := svc.Login(context.Background(), "alice", "password123")
	require.NoError(t, err)
	assert.True(t, svc.Validate(context.Background(), token))
	assert.False(t, svc.Validate(context.Background(), "garbage"))

	// Disabling the account invalidates an otherwise valid token.
	user.Enabled = false
	require.NoError(t, store.Update(context.Background(), user))
	assert.False(t, svc.Validate(context.Background(), token))
}

func TestChangePassword(t *testing.T) {
	store := newMemUserStore()
	user := seedAccount(t, store, "alice", domain.RoleMember, true)
	svc := NewAuthService(testAuthConfig(), store, nil)

	_, err := svc.ChangePassword(context.Background(), user.ID, "wrong", "newpassword")
	requireStatus(t, err, 401)

	_, err = svc.ChangePassword(context.Background(), user.ID, "password123", "newpassword")
	require.NoError(t, err)

	_, _, _, err = svc.Login(context.Background(), "alice", "password123")
	requireStatus(t, err, 401)
	_, _, _, err = svc.Login(context.Background(), "alice", "newpassword")
	require.NoError(t, err)
}

func TestResetPassword(t *testing.T) {
	store := newMemUserStore()
	user := seedAccount(t, store, "alice", domain.RoleMember, true)
	svc := NewAuthService(testAuthConfig(), store, nil)

	_, err := svc.ResetPassword(context.Background(), user.ID, "forced")
	require.NoError(t, err)

	_, _, _, err = svc.Login(context.Background(), "alice", "forced")
	require.NoError(t, err)
}

func TestSetUserEnabled(t *testing.T) {
	store := newMemUserStore()
	user := seedAccount(t, store, "alice", domain.RoleMember, true)
	svc := NewAuthService(testAuthConfig(), store, nil)

	updated, err := svc.SetUserEnabled(context.Background(), user.ID, false)
	require.NoError(t, err)
	assert.False(t, updated.Enabled)

	_, _, _, err = svc.Login(context.Background(), "alice", "password123")
	requireStatus(t, err, 401)
}
