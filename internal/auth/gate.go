package auth

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Gate authenticates bearer tokens on every request. It never writes an
// error response: a missing, garbled or rejected token leaves the request
// anonymous and processing continues, so public routes stay reachable. The
// route policy decides later whether anonymous is acceptable.
type Gate struct {
	resolver *PrincipalResolver
	logger   *zap.Logger
}

// NewGate constructs the gate middleware.
func NewGate(resolver *PrincipalResolver, logger *zap.Logger) *Gate {
	return &Gate{resolver: resolver, logger: logger}
}

// Handle extracts and resolves the bearer token, if any.
func (g *Gate) Handle(c *fiber.Ctx) error {
	token, ok := bearerToken(c.Get(fiber.HeaderAuthorization))
	if !ok {
		return c.Next()
	}

	principal, err := g.resolver.Resolve(c.UserContext(), token, time.Now())
	if err != nil {
		// Swallowed on purpose: the failure kind must not leak to
		// unauthenticated callers.
		g.logger.Debug("token rejected", zap.String("path", c.Path()), zap.Error(err))
		return c.Next()
	}

	StorePrincipal(c, principal)
	return c.Next()
}

func bearerToken(header string) (string, bool) {
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}
	token := strings.TrimSpace(parts[1])
	return token, token != ""
}
