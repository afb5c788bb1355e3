package auth

import (
	"context"

	"github.com/spec-kit/account-service/internal/domain"
	apperrors "github.com/spec-kit/account-service/pkg/util"
)

// AccessGuard composes the token manager and role resolver into the two
// decision primitives every protected endpoint uses. Unauthorized strictly
// means authentication failed; Forbidden means the caller is authenticated but
// not entitled; NotFound means the token subject no longer resolves.
type AccessGuard struct {
	tokens *TokenManager
	roles  *RoleResolver
}

// NewAccessGuard constructs the guard.
func NewAccessGuard(tokens *TokenManager, roles *RoleResolver) *AccessGuard {
	return &AccessGuard{tokens: tokens, roles: roles}
}

// Authenticate validates the bearer token and returns the subject identity.
// This is the single gate all protected routes pass through first.
func (g *AccessGuard) Authenticate(bearer string) (domain.Identity, error) {
	return g.tokens.Validate(bearer)
}

// AuthorizeSelf authenticates and then requires the subject to be exactly
// target. A valid token for a different identity yields Forbidden, never
// Unauthorized: "logged in as the wrong person" is not "not logged in".
func (g *AccessGuard) AuthorizeSelf(bearer string, target domain.Identity) (domain.Identity, error) {
	identity, err := g.tokens.Validate(bearer)
	if err != nil {
		return 0, err
	}
	if identity != target {
		return 0, apperrors.NewForbidden("access denied")
	}
	return identity, nil
}

// AuthorizeRole authenticates and then resolves the subject's role from the
// directory, requiring it to equal required. The role is never read from the
// token, so a role change is enforced on the next request.
func (g *AccessGuard) AuthorizeRole(ctx context.Context, bearer string, required domain.Role) (domain.Identity, error) {
	identity, err := g.tokens.Validate(bearer)
	if err != nil {
		return 0, err
	}
	role, _, err := g.roles.ResolveRole(ctx, identity)
	if err != nil {
		return 0, err
	}
	if role != required {
		return 0, apperrors.NewForbidden("insufficient role")
	}
	return identity, nil
}
