package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/gym-service/internal/domain"
	apperrors "github.com/spec-kit/gym-service/pkg/util/errorutil"
)

// Requirement is what a route rule demands from the caller.
type Requirement struct {
	public bool
	roles  []domain.Role
}

// Public allows everyone, authenticated or not.
func Public() Requirement {
	return Requirement{public: true}
}

// Authenticated allows any principal.
func Authenticated() Requirement {
	return Requirement{}
}

// AnyRole allows principals holding one of the given roles.
func AnyRole(roles ...domain.Role) Requirement {
	return Requirement{roles: roles}
}

// RequireRole allows principals holding exactly the given role.
func RequireRole(role domain.Role) Requirement {
	return Requirement{roles: []domain.Role{role}}
}

// Rule maps (method, path pattern) to a Requirement. Method "*" matches any
// verb. Patterns are segment-wise: "{name}" matches one segment of any
// non-slash content, a trailing "**" matches zero or more segments.
type Rule struct {
	Method  string
	Pattern string
	Require Requirement

	segments []string
}

// DenyReason explains a negative decision.
type DenyReason string

const (
	DenyUnauthenticated  DenyReason = "unauthenticated"
	DenyInsufficientRole DenyReason = "insufficient_role"
)

// Decision is the outcome of a policy lookup.
type Decision struct {
	Allowed bool
	Reason  DenyReason
}

// Policy is an ordered route authorization table. Rules are evaluated in
// declaration order and the first match decides; it is never re-sorted by
// specificity. Paths matching no rule require authentication.
type Policy struct {
	rules []Rule
}

// NewPolicy compiles the ordered rule list.
func NewPolicy(rules ...Rule) *Policy {
	compiled := make([]Rule, len(rules))
	for i, rule := range rules {
		rule.Method = strings.ToUpper(strings.TrimSpace(rule.Method))
		if rule.Method == "" {
			rule.Method = "*"
		}
		rule.segments = splitPath(rule.Pattern)
		compiled[i] = rule
	}
	return &Policy{rules: compiled}
}

// Decide scans rules in order and returns the first matching rule's verdict.
func (p *Policy) Decide(method, path string, principal *Principal) Decision {
	method = strings.ToUpper(method)
	pathSegs := splitPath(path)

	for _, rule := range p.rules {
		if rule.Method != "*" && rule.Method != method {
			continue
		}
		if !matchSegments(rule.segments, pathSegs) {
			continue
		}
		return evaluate(rule.Require, principal)
	}

	// Fail closed: unknown paths require authentication.
	return evaluate(Authenticated(), principal)
}

func evaluate(req Requirement, principal *Principal) Decision {
	if req.public {
		return Decision{Allowed: true}
	}
	if principal == nil {
		return Decision{Reason: DenyUnauthenticated}
	}
	if len(req.roles) == 0 {
		return Decision{Allowed: true}
	}
	if principal.HasRole(req.roles...) {
		return Decision{Allowed: true}
	}
	return Decision{Reason: DenyInsufficientRole}
}

func splitPath(path string) []string {
	trimmed := strings.Trim(path, "/")
	if trimmed == "" {
		return nil
	}
	return strings.Split(trimmed, "/")
}

func matchSegments(pattern, path []string) bool {
	for i, seg := range pattern {
		if seg == "**" {
			// Trailing wildcard swallows the remainder, including nothing.
			return true
		}
		if i >= len(path) {
			return false
		}
		if seg == "*" || isPathVar(seg) {
			continue
		}
		if seg != path[i] {
			return false
		}
	}
	return len(pattern) == len(path)
}

func isPathVar(seg string) bool {
	return len(seg) > 1 && seg[0] == '{' && seg[len(seg)-1] == '}'
}

// Authorize enforces the policy after the gate has populated the request
// context. Denials surface here and nowhere earlier: 401 when anonymous,
// 403 when authenticated but lacking the role.
func Authorize(policy *Policy) fiber.Handler {
	return func(c *fiber.Ctx) error {
		principal, _ := PrincipalFromContext(c)
		decision := policy.Decide(c.Method(), c.Path(), principal)
		if decision.Allowed {
			return c.Next()
		}
		if decision.Reason == DenyInsufficientRole {
			return apperrors.NewForbidden("insufficient role")
		}
		return apperrors.NewUnauthorized("authentication required")
	}
}
