package auth

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/gym-service/internal/domain"
)

type stubPrincipalStore struct {
	users map[string]*domain.User
}

func (s *stubPrincipalStore) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	user, ok := s.users[username]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := *user
	return &copied, nil
}

func newResolverFixture(users ...*domain.User) (*PrincipalResolver, *TokenManager) {
	store := &stubPrincipalStore{users: map[string]*domain.User{}}
	for _, u := range users {
		store.users[u.Username] = u
	}
	tm := NewTokenManager("resolver-secret", time.Hour)
	return NewPrincipalResolver(tm, store), tm
}

func TestResolveSuccess(t *testing.T) {
	resolver, tm := newResolverFixture(
		&domain.User{ID: 7, Username: "alice", Role: domain.RoleTrainer, Enabled: true},
	)
	now := time.Now()
	token, _, err := tm.Issue("alice", domain.RoleTrainer, now)
	require.NoError(t, err)

	principal, err := resolver.Resolve(context.Background(), token, now)
	require.NoError(t, err)
	assert.Equal(t, int64(7), principal.User.ID)
	assert.True(t, principal.HasRole(domain.RoleTrainer))
}

func TestResolveGarbageToken(t *testing.T) {
	resolver, _ := newResolverFixture()

	_, err := resolver.Resolve(context.Background(), "not-a-token", time.Now())
	assert.ErrorIs(t, err, ErrNoCredentials)
}

func TestResolveUnknownSubject(t *testing.T) {
	resolver, tm := newResolverFixture()
	now := time.Now()
	token, _, err := tm.Issue("ghost", domain.RoleMember, now)
	require.NoError(t, err)

	_, err = resolver.Resolve(context.Background(), token, now)
	assert.ErrorIs(t, err, ErrUnknownSubject)
}

func TestResolveDisabledAccount(t *testing.T) {
	resolver, tm := newResolverFixture(
		&domain.User{ID: 9, Username: "bob", Role: domain.RoleMember, Enabled: false},
	)
	now := time.Now()
	token, _, err := tm.Issue("bob", domain.RoleMember, now)
	require.NoError(t, err)

	// The account is refused even though the token itself is valid.
	_, err = resolver.Resolve(context.Background(), token, now)
	assert.ErrorIs(t, err, ErrDisabled)
}

func TestResolveExpiredToken(t *testing.T) {
	resolver, tm := newResolverFixture(
		&domain.User{ID: 3, Username: "carol", Role: domain.RoleMember, Enabled: true},
	)
	issuedAt := time.Now().Add(-2 * time.Hour)
	token, _, err := tm.Issue("carol", domain.RoleMember, issuedAt)
	require.NoError(t, err)

	_, err = resolver.Resolve(context.Background(), token, time.Now())
	var invalid *InvalidTokenError
	require.ErrorAs(t, err, &invalid)
	assert.ErrorIs(t, invalid.Reason, ErrTokenExpired)
}

func TestResolveForeignSignature(t *testing.T) {
	resolver, _ := newResolverFixture(
		&domain.User{ID: 4, Username: "dave", Role: domain.RoleMember, Enabled: true},
	)
	now := time.Now()
	foreign, _, err := NewTokenManager("other-secret", time.Hour).Issue("dave", domain.RoleMember, now)
	require.NoError(t, err)

	_, err = resolver.Resolve(context.Background(), foreign, now)
	var invalid *InvalidTokenError
	require.ErrorAs(t, err, &invalid)
	assert.ErrorIs(t, invalid.Reason, ErrBadSignature)
}
