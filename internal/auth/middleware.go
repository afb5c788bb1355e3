package auth

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/account-service/internal/domain"
	"github.com/spec-kit/account-service/internal/observability"
	apperrors "github.com/spec-kit/account-service/pkg/util"
)

const identityKey = "auth_identity"

// Middleware adapts guard decisions to fiber routes.
type Middleware struct {
	guard   *AccessGuard
	metrics *observability.Metrics
}

// NewMiddleware constructs middleware.
func NewMiddleware(guard *AccessGuard, metrics *observability.Metrics) *Middleware {
	return &Middleware{guard: guard, metrics: metrics}
}

// RequireAuth enforces authentication and stores the identity for handlers.
func (m *Middleware) RequireAuth() fiber.Handler {
	return func(c *fiber.Ctx) error {
		bearer, err := BearerToken(c)
		if err != nil {
			return m.deny("authenticate", err)
		}
		identity, err := m.guard.Authenticate(bearer)
		if err != nil {
			return m.deny("authenticate", err)
		}
		m.metrics.RecordAuthDecision("authenticate", "allow")
		c.Locals(identityKey, identity)
		return c.Next()
	}
}

// RequireSelf enforces that the caller owns the account named by the route
// parameter.
func (m *Middleware) RequireSelf(param string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		target, err := strconv.ParseInt(c.Params(param), 10, 64)
		if err != nil {
			return apperrors.NewBadRequest("invalid user id", nil)
		}
		bearer, err := BearerToken(c)
		if err != nil {
			return m.deny("self", err)
		}
		identity, err := m.guard.AuthorizeSelf(bearer, domain.Identity(target))
		if err != nil {
			return m.deny("self", err)
		}
		m.metrics.RecordAuthDecision("self", "allow")
		c.Locals(identityKey, identity)
		return c.Next()
	}
}

// RequireRole enforces that the caller currently holds the required role.
func (m *Middleware) RequireRole(required domain.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		bearer, err := BearerToken(c)
		if err != nil {
			return m.deny("role", err)
		}
		identity, err := m.guard.AuthorizeRole(c.Context(), bearer, required)
		if err != nil {
			return m.deny("role", err)
		}
		m.metrics.RecordAuthDecision("role", "allow")
		c.Locals(identityKey, identity)
		return c.Next()
	}
}

func (m *Middleware) deny(check string, err error) error {
	m.metrics.RecordAuthDecision(check, apperrors.ToDomainError(err).Code)
	return err
}

// BearerToken extracts the bearer token from the Authorization header.
func BearerToken(c *fiber.Ctx) (string, error) {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return "", apperrors.NewUnauthorized("missing authorization header")
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", apperrors.NewUnauthorized("invalid authorization header")
	}
	return parts[1], nil
}

// IdentityFromContext retrieves the authenticated identity.
func IdentityFromContext(c *fiber.Ctx) (domain.Identity, bool) {
	val := c.Locals(identityKey)
	if val == nil {
		return 0, false
	}
	identity, ok := val.(domain.Identity)
	return identity, ok
}
