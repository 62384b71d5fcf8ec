package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/spec-kit/gym-service/internal/domain"
)

func principalWithRole(role domain.Role) *Principal {
	return &Principal{User: &domain.User{ID: 1, Username: "tester", Role: role, Enabled: true}}
}

func TestPolicyFirstMatchWins(t *testing.T) {
	// A public rule declared before a role rule on the same path must win,
	// and the other way around; the table is never re-sorted.
	publicFirst := NewPolicy(
		Rule{Method: "GET", Pattern: "/things", Require: Public()},
		Rule{Method: "GET", Pattern: "/things", Require: RequireRole(domain.RoleAdmin)},
	)
	assert.True(t, publicFirst.Decide("GET", "/things", nil).Allowed)

	adminFirst := NewPolicy(
		Rule{Method: "GET", Pattern: "/things", Require: RequireRole(domain.RoleAdmin)},
		Rule{Method: "GET", Pattern: "/things", Require: Public()},
	)
	decision := adminFirst.Decide("GET", "/things", nil)
	assert.False(t, decision.Allowed)
	assert.Equal(t, DenyUnauthenticated, decision.Reason)
}

func TestPolicyDefaultFailClosed(t *testing.T) {
	policy := NewPolicy(
		Rule{Method: "GET", Pattern: "/known", Require: Public()},
	)

	decision := policy.Decide("GET", "/unknown", nil)
	assert.False(t, decision.Allowed)
	assert.Equal(t, DenyUnauthenticated, decision.Reason)

	assert.True(t, policy.Decide("GET", "/unknown", principalWithRole(domain.RoleMember)).Allowed)
}

func TestPolicyMethodMatching(t *testing.T) {
	policy := NewPolicy(
		Rule{Method: "OPTIONS", Pattern: "/**", Require: Public()},
		Rule{Method: "GET", Pattern: "/widgets", Require: Public()},
		Rule{Pattern: "/widgets", Require: RequireRole(domain.RoleAdmin)},
	)

	assert.True(t, policy.Decide("OPTIONS", "/anything/at/all", nil).Allowed)
	assert.True(t, policy.Decide("GET", "/widgets", nil).Allowed)
	assert.True(t, policy.Decide("get", "/widgets", nil).Allowed)

	decision := policy.Decide("POST", "/widgets", principalWithRole(domain.RoleMember))
	assert.False(t, decision.Allowed)
	assert.Equal(t, DenyInsufficientRole, decision.Reason)
}

func TestPolicyPathVariables(t *testing.T) {
	policy := NewPolicy(
		Rule{Method: "GET", Pattern: "/items/{id}", Require: Public()},
	)

	assert.True(t, policy.Decide("GET", "/items/42", nil).Allowed)
	assert.True(t, policy.Decide("GET", "/items/anything", nil).Allowed)

	// A variable matches exactly one segment.
	assert.False(t, policy.Decide("GET", "/items", nil).Allowed)
	assert.False(t, policy.Decide("GET", "/items/42/extra", nil).Allowed)
}

func TestPolicyTrailingWildcard(t *testing.T) {
	policy := NewPolicy(
		Rule{Pattern: "/files/**", Require: Public()},
	)

	// ** matches zero or more trailing segments.
	assert.True(t, policy.Decide("GET", "/files", nil).Allowed)
	assert.True(t, policy.Decide("GET", "/files/a", nil).Allowed)
	assert.True(t, policy.Decide("GET", "/files/a/b/c", nil).Allowed)
	assert.False(t, policy.Decide("GET", "/other", nil).Allowed)
}

func TestPolicyRoleDecisions(t *testing.T) {
	policy := NewPolicy(
		Rule{Pattern: "/admin-only", Require: RequireRole(domain.RoleAdmin)},
		Rule{Pattern: "/staff", Require: AnyRole(domain.RoleAdmin, domain.RoleTrainer)},
		Rule{Pattern: "/any", Require: Authenticated()},
	)

	cases := []struct {
		name      string
		path      string
		principal *Principal
		allowed   bool
		reason    DenyReason
	}{
		{"admin path as admin", "/admin-only", principalWithRole(domain.RoleAdmin), true, ""},
		{"admin path as member", "/admin-only", principalWithRole(domain.RoleMember), false, DenyInsufficientRole},
		{"admin path anonymous", "/admin-only", nil, false, DenyUnauthenticated},
		{"staff path as trainer", "/staff", principalWithRole(domain.RoleTrainer), true, ""},
		{"staff path as member", "/staff", principalWithRole(domain.RoleMember), false, DenyInsufficientRole},
		{"authenticated path as member", "/any", principalWithRole(domain.RoleMember), true, ""},
		{"authenticated path anonymous", "/any", nil, false, DenyUnauthenticated},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			decision := policy.Decide("GET", tc.path, tc.principal)
			assert.Equal(t, tc.allowed, decision.Allowed)
			if !tc.allowed {
				assert.Equal(t, tc.reason, decision.Reason)
			}
		})
	}
}
