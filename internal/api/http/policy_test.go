package http

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/spec-kit/gym-service/internal/auth"
	"github.com/spec-kit/gym-service/internal/domain"
)

func asRole(role domain.Role) *auth.Principal {
	return &auth.Principal{User: &domain.User{ID: 1, Username: "tester", Role: role, Enabled: true}}
}

func TestRoutePolicyTable(t *testing.T) {
	policy := RoutePolicy()

	anon := (*auth.Principal)(nil)
	member := asRole(domain.RoleMember)
	trainer := asRole(domain.RoleTrainer)
	admin := asRole(domain.RoleAdmin)

	cases := []struct {
		name      string
		method    string
		path      string
		principal *auth.Principal
		allowed   bool
		reason    auth.DenyReason
	}{
		{"preflight always allowed", "OPTIONS", "/api/admins", anon, true, ""},
		{"root public", "GET", "/", anon, true, ""},
		{"greeting public", "GET", "/api/greeting", anon, true, ""},
		{"health public", "GET", "/health/ready", anon, true, ""},
		{"auth public", "POST", "/auth/login", anon, true, ""},
		{"api auth public", "POST", "/api/auth/register", anon, true, ""},

		{"admins anonymous", "GET", "/api/admins", anon, false, auth.DenyUnauthenticated},
		{"admins as member", "GET", "/api/admins", member, false, auth.DenyInsufficientRole},
		{"admins as admin", "GET", "/api/admins", admin, true, ""},
		{"admins subpath as trainer", "POST", "/api/admins/1", trainer, false, auth.DenyInsufficientRole},

		{"book class as member", "POST", "/api/class-bookings", member, true, ""},
		{"book class anonymous", "POST", "/api/class-bookings", anon, false, auth.DenyUnauthenticated},
		{"cancel own booking as member", "PUT", "/api/class-bookings/5/cancel", member, true, ""},
		{"set booking status as member", "PUT", "/api/class-bookings/5/status", member, false, auth.DenyInsufficientRole},
		{"delete booking as member", "DELETE", "/api/class-bookings/5", member, false, auth.DenyInsufficientRole},
		{"delete booking as admin", "DELETE", "/api/class-bookings/5", admin, true, ""},
		{"bookings by member as member", "GET", "/api/class-bookings/member/2", member, true, ""},
		// The {bookingId} rule precedes the /active and /cancelled rules, so
		// any authenticated caller passes the policy for those two paths.
		{"active bookings as member", "GET", "/api/class-bookings/active", member, true, ""},
		{"cancelled bookings as member", "GET", "/api/class-bookings/cancelled", member, true, ""},
		{"active bookings anonymous", "GET", "/api/class-bookings/active", anon, false, auth.DenyUnauthenticated},

		{"record progress as member", "POST", "/api/progress", member, true, ""},
		{"list all progress as member", "GET", "/api/progress", member, false, auth.DenyInsufficientRole},
		{"list all progress as admin", "GET", "/api/progress", admin, true, ""},
		{"delete progress as trainer", "DELETE", "/api/progress/3", trainer, false, auth.DenyInsufficientRole},
		{"progress by member as member", "GET", "/api/progress/member/2", member, true, ""},
		{"progress date range as member", "GET", "/api/progress/member/2/date-range", member, true, ""},

		// GET /api/members/** (authenticated) precedes the ADMIN catch-all.
		{"read member as member", "GET", "/api/members/9", member, true, ""},
		{"list members as member", "GET", "/api/members", member, true, ""},
		{"create member as member", "POST", "/api/members", member, false, auth.DenyInsufficientRole},
		{"create member as admin", "POST", "/api/members", admin, true, ""},

		{"list classes anonymous", "GET", "/api/classes", anon, true, ""},
		{"read class anonymous", "GET", "/api/classes/7", anon, true, ""},
		{"create class as trainer", "POST", "/api/classes", trainer, false, auth.DenyInsufficientRole},
		{"create class as admin", "POST", "/api/classes", admin, true, ""},

		{"list workouts anonymous", "GET", "/api/workouts", anon, true, ""},
		{"create workout as member", "POST", "/api/workouts", member, false, auth.DenyInsufficientRole},

		{"submit contact anonymous", "POST", "/api/contact-messages", anon, true, ""},
		{"read contact as member", "GET", "/api/contact-messages", member, false, auth.DenyInsufficientRole},
		{"read contact as admin", "GET", "/api/contact-messages/1", admin, true, ""},

		{"register via users anonymous", "POST", "/api/users", anon, true, ""},
		{"list users as member", "GET", "/api/users", member, false, auth.DenyInsufficientRole},
		{"read user as member", "GET", "/api/users/1", member, true, ""},
		{"user by username as member", "GET", "/api/users/username/alice", member, true, ""},
		{"users by role as member", "GET", "/api/users/role/ADMIN", member, false, auth.DenyInsufficientRole},
		// Like the bookings quirk above: GET /api/users/{id} precedes the
		// search/enabled/disabled rules, so those paths only need
		// authentication.
		{"search users as member", "GET", "/api/users/search", member, true, ""},
		{"search users anonymous", "GET", "/api/users/search", anon, false, auth.DenyUnauthenticated},
		{"change own password as member", "PUT", "/api/users/1/password", member, true, ""},
		{"change role as member", "PUT", "/api/users/1/role", member, false, auth.DenyInsufficientRole},
		{"delete user as admin", "DELETE", "/api/users/1", admin, true, ""},

		{"read trainer as member", "GET", "/api/trainers/1", member, true, ""},
		{"create trainer as trainer", "POST", "/api/trainers", trainer, false, auth.DenyInsufficientRole},

		{"payments as member", "GET", "/api/payments", member, false, auth.DenyInsufficientRole},
		{"payments as admin", "POST", "/api/payments", admin, true, ""},
		{"send class reminders as member", "POST", "/api/notifications/class-reminders/3", member, false, auth.DenyInsufficientRole},
		{"send class reminders as admin", "POST", "/api/notifications/class-reminders/3", admin, true, ""},
		{"send welcome anonymous", "POST", "/api/notifications/welcome/1", anon, false, auth.DenyUnauthenticated},

		{"dashboard as trainer", "GET", "/api/dashboard/stats", trainer, false, auth.DenyInsufficientRole},
		{"dashboard as admin", "GET", "/api/dashboard/stats", admin, true, ""},

		// No rule matches: fail closed to authenticated.
		{"unknown path anonymous", "GET", "/api/unknown", anon, false, auth.DenyUnauthenticated},
		{"unknown path as member", "GET", "/api/unknown", member, true, ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			decision := policy.Decide(tc.method, tc.path, tc.principal)
			assert.Equal(t, tc.allowed, decision.Allowed)
			if !tc.allowed {
				assert.Equal(t, tc.reason, decision.Reason)
			}
		})
	}
}
