package auth

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/gym-service/internal/domain"
)

func TestIssueVerifyRoundTrip(t *testing.T) {
	tm := NewTokenManager("test-secret", 24*time.Hour)
	issuedAt := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	token, expiresAt, err := tm.Issue("alice", domain.RoleMember, issuedAt)
	require.NoError(t, err)
	assert.Equal(t, issuedAt.Add(24*time.Hour), expiresAt)

	for _, at := range []time.Time{
		issuedAt,
		issuedAt.Add(time.Minute),
		issuedAt.Add(24*time.Hour - time.Second),
	} {
		claims, err := tm.Verify(token, at)
		require.NoError(t, err, "verify at %v", at)
		assert.Equal(t, "alice", claims.Subject)
		assert.Equal(t, domain.RoleMember, claims.Role)
	}
}

func TestVerifyExpired(t *testing.T) {
	tm := NewTokenManager("test-secret", time.Hour)
	issuedAt := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	token, expiresAt, err := tm.Issue("alice", domain.RoleMember, issuedAt)
	require.NoError(t, err)

	for _, at := range []time.Time{
		expiresAt,
		expiresAt.Add(time.Second),
		expiresAt.Add(365 * 24 * time.Hour),
	} {
		_, err := tm.Verify(token, at)
		assert.ErrorIs(t, err, ErrTokenExpired, "verify at %v", at)
	}
}

func TestVerifyTamperedSignature(t *testing.T) {
	tm := NewTokenManager("test-secret", time.Hour)
	now := time.Now()

	token, _, err := tm.Issue("alice", domain.RoleMember, now)
	require.NoError(t, err)

	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)

	sig := []byte(parts[2])
	for i := range sig {
		flipped := byte('A')
		if sig[i] == 'A' {
			flipped = 'B'
		}
		tampered := parts[0] + "." + parts[1] + "." + string(sig[:i]) + string(flipped) + string(sig[i+1:])

		_, err := tm.Verify(tampered, now)
		assert.ErrorIs(t, err, ErrBadSignature, "byte %d", i)
	}
}

func TestVerifyTamperedPayload(t *testing.T) {
	tm := NewTokenManager("test-secret", time.Hour)
	now := time.Now()

	token, _, err := tm.Issue("alice", domain.RoleMember, now)
	require.NoError(t, err)

	other, _, err := tm.Issue("mallory", domain.RoleAdmin, now)
	require.NoError(t, err)

	// Graft alice's signature onto mallory's payload.
	tokenParts := strings.Split(token, ".")
	otherParts := strings.Split(other, ".")
	spliced := otherParts[0] + "." + otherParts[1] + "." + tokenParts[2]

	_, err = tm.Verify(spliced, now)
	assert.ErrorIs(t, err, ErrBadSignature)
}

func TestVerifyWrongSecret(t *testing.T) {
	tm := NewTokenManager("test-secret", time.Hour)
	imposter := NewTokenManager("other-secret", time.Hour)
	now := time.Now()

	token, _, err := imposter.Issue("alice", domain.RoleMember, now)
	require.NoError(t, err)

	_, err = tm.Verify(token, now)
	assert.ErrorIs(t, err, ErrBadSignature)
}

func TestVerifyMalformed(t *testing.T) {
	tm := NewTokenManager("test-secret", time.Hour)
	now := time.Now()

	for _, token := range []string{
		"",
		"garbage",
		"a.b",
		"not.a.jwt",
		"....",
	} {
		_, err := tm.Verify(token, now)
		assert.ErrorIs(t, err, ErrTokenMalformed, "token %q", token)
	}
}

func TestExtractSubjectSkipsVerification(t *testing.T) {
	tm := NewTokenManager("test-secret", time.Hour)
	issuedAt := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	token, _, err := tm.Issue("alice", domain.RoleMember, issuedAt)
	require.NoError(t, err)

	// Expired and foreign-signed tokens still yield their subject.
	subject, err := tm.ExtractSubject(token)
	require.NoError(t, err)
	assert.Equal(t, "alice", subject)

	foreign, _, err := NewTokenManager("other-secret", time.Hour).Issue("bob", domain.RoleAdmin, issuedAt)
	require.NoError(t, err)

	subject, err = tm.ExtractSubject(foreign)
	require.NoError(t, err)
	assert.Equal(t, "bob", subject)

	_, err = tm.ExtractSubject("garbage")
	assert.ErrorIs(t, err, ErrTokenMalformed)
}
