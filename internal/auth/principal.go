package auth

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/gym-service/internal/domain"
)

const principalKey = "auth_principal"

// Principal represents the authenticated caller for the current request.
// It is allocated per request and never shared or stored.
type Principal struct {
	User *domain.User
}

// Role returns the caller's role.
func (p *Principal) Role() domain.Role {
	return p.User.Role
}

// HasRole reports whether the caller holds one of the given roles.
func (p *Principal) HasRole(roles ...domain.Role) bool {
	for _, r := range roles {
		if p.User.Role == r {
			return true
		}
	}
	return false
}

// StorePrincipal attaches the principal to the request-scoped context.
func StorePrincipal(c *fiber.Ctx, p *Principal) {
	c.Locals(principalKey, p)
}

// PrincipalFromContext retrieves the authenticated entity, if any.
func PrincipalFromContext(c *fiber.Ctx) (*Principal, bool) {
	val := c.Locals(principalKey)
	if val == nil {
		return nil, false
	}
	principal, ok := val.(*Principal)
	if !ok || principal == nil {
		return nil, false
	}
	return principal, true
}
