package http

import (
	"github.com/spec-kit/gym-service/internal/auth"
	"github.com/spec-kit/gym-service/internal/domain"
)

// RoutePolicy is the ordered authorization table for the whole API. Order
// matters: the first matching rule wins, so narrow per-method rules sit
// above the broad catch-alls for the same prefix. Note two quirks kept
// from the declared order: GET /api/class-bookings/active and /cancelled
// are listed after the {bookingId} rule, which matches those paths first,
// so in practice both only need authentication. The same goes for
// /api/users/search, /enabled and /disabled behind the {id} rule.
func RoutePolicy() *auth.Policy {
	admin := auth.RequireRole(domain.RoleAdmin)

	return auth.NewPolicy(
		// CORS preflight and the public landing pages.
		auth.Rule{Method: "OPTIONS", Pattern: "/**", Require: auth.Public()},
		auth.Rule{Pattern: "/", Require: auth.Public()},
		auth.Rule{Pattern: "/favicon.ico", Require: auth.Public()},
		auth.Rule{Pattern: "/hello", Require: auth.Public()},
		auth.Rule{Pattern: "/api/hello", Require: auth.Public()},
		auth.Rule{Pattern: "/greeting", Require: auth.Public()},
		auth.Rule{Pattern: "/api/greeting", Require: auth.Public()},
		auth.Rule{Pattern: "/status", Require: auth.Public()},
		auth.Rule{Pattern: "/api/status", Require: auth.Public()},
		auth.Rule{Pattern: "/error", Require: auth.Public()},
		auth.Rule{Pattern: "/api/error", Require: auth.Public()},
		auth.Rule{Pattern: "/health/**", Require: auth.Public()},

		auth.Rule{Pattern: "/auth/**", Require: auth.Public()},
		auth.Rule{Pattern: "/api/auth/**", Require: auth.Public()},

		auth.Rule{Pattern: "/api/admins/**", Require: admin},

		auth.Rule{Method: "POST", Pattern: "/api/class-bookings", Require: auth.Authenticated()},
		auth.Rule{Method: "PUT", Pattern: "/api/class-bookings/{bookingId}/cancel", Require: auth.Authenticated()},
		auth.Rule{Method: "PUT", Pattern: "/api/class-bookings/{bookingId}/status", Require: admin},
		auth.Rule{Method: "DELETE", Pattern: "/api/class-bookings/{bookingId}", Require: admin},
		auth.Rule{Method: "GET", Pattern: "/api/class-bookings/member/{memberId}", Require: auth.Authenticated()},
		auth.Rule{Method: "GET", Pattern: "/api/class-bookings/class/{classId}", Require: auth.Authenticated()},
		auth.Rule{Method: "GET", Pattern: "/api/class-bookings/{bookingId}", Require: auth.Authenticated()},
		auth.Rule{Method: "GET", Pattern: "/api/class-bookings/active", Require: admin},
		auth.Rule{Method: "GET", Pattern: "/api/class-bookings/cancelled", Require: admin},

		auth.Rule{Method: "POST", Pattern: "/api/progress", Require: auth.Authenticated()},
		auth.Rule{Method: "PUT", Pattern: "/api/progress/{id}", Require: auth.Authenticated()},
		auth.Rule{Method: "DELETE", Pattern: "/api/progress/{id}", Require: admin},
		auth.Rule{Method: "GET", Pattern: "/api/progress", Require: admin},
		auth.Rule{Method: "GET", Pattern: "/api/progress/{id}", Require: auth.Authenticated()},
		auth.Rule{Method: "GET", Pattern: "/api/progress/member/{memberId}", Require: auth.Authenticated()},
		auth.Rule{Method: "GET", Pattern: "/api/progress/member/{memberId}/date-range", Require: auth.Authenticated()},
		auth.Rule{Method: "GET", Pattern: "/api/progress/member/{memberId}/recent", Require: auth.Authenticated()},

		auth.Rule{Method: "GET", Pattern: "/api/members/**", Require: auth.Authenticated()},
		auth.Rule{Pattern: "/api/members/**", Require: admin},

		auth.Rule{Method: "POST", Pattern: "/api/classes/**", Require: admin},
		auth.Rule{Method: "PUT", Pattern: "/api/classes/**", Require: admin},
		auth.Rule{Method: "DELETE", Pattern: "/api/classes/**", Require: admin},
		auth.Rule{Method: "GET", Pattern: "/api/classes/**", Require: auth.Public()},

		auth.Rule{Method: "POST", Pattern: "/api/workouts/**", Require: admin},
		auth.Rule{Method: "PUT", Pattern: "/api/workouts/**", Require: admin},
		auth.Rule{Method: "DELETE", Pattern: "/api/workouts/**", Require: admin},
		auth.Rule{Method: "GET", Pattern: "/api/workouts/**", Require: auth.Public()},

		auth.Rule{Method: "POST", Pattern: "/api/contact-messages", Require: auth.Public()},
		auth.Rule{Pattern: "/api/contact-messages/**", Require: admin},

		auth.Rule{Method: "POST", Pattern: "/api/users", Require: auth.Public()},
		auth.Rule{Method: "GET", Pattern: "/api/users", Require: admin},
		auth.Rule{Method: "GET", Pattern: "/api/users/{id}", Require: auth.Authenticated()},
		auth.Rule{Method: "GET", Pattern: "/api/users/username/**", Require: auth.Authenticated()},
		auth.Rule{Method: "GET", Pattern: "/api/users/email/**", Require: auth.Authenticated()},
		auth.Rule{Method: "GET", Pattern: "/api/users/role/**", Require: admin},
		auth.Rule{Method: "GET", Pattern: "/api/users/enabled", Require: admin},
		auth.Rule{Method: "GET", Pattern: "/api/users/disabled", Require: admin},
		auth.Rule{Method: "GET", Pattern: "/api/users/search", Require: admin},
		auth.Rule{Method: "PUT", Pattern: "/api/users/{id}", Require: auth.Authenticated()},
		auth.Rule{Method: "PUT", Pattern: "/api/users/{id}/password", Require: auth.Authenticated()},
		auth.Rule{Method: "PUT", Pattern: "/api/users/{id}/role", Require: admin},
		auth.Rule{Method: "PUT", Pattern: "/api/users/{id}/enabled", Require: admin},
		auth.Rule{Method: "DELETE", Pattern: "/api/users/{id}", Require: admin},

		auth.Rule{Method: "GET", Pattern: "/api/trainers/**", Require: auth.Authenticated()},
		auth.Rule{Pattern: "/api/trainers/**", Require: admin},

		auth.Rule{Pattern: "/api/payments/**", Require: admin},
		auth.Rule{Pattern: "/api/notifications/**", Require: admin},
		auth.Rule{Pattern: "/api/dashboard/**", Require: admin},

		// Anything else falls through to the policy default: authenticated.
	)
}
