package auth

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/account-service/internal/domain"
	"github.com/spec-kit/account-service/internal/repository"
	apperrors "github.com/spec-kit/account-service/pkg/util"
)

// RoleResolver maps a validated identity to its role and account status.
// Every call is a fresh directory read, never a cache, so role and status
// changes apply on the very next request without re-login.
type RoleResolver struct {
	directory repository.UserDirectory
}

// NewRoleResolver constructs a resolver over the directory.
func NewRoleResolver(directory repository.UserDirectory) *RoleResolver {
	return &RoleResolver{directory: directory}
}

// ResolveRole returns the identity's role and status. A missing record maps
// to NotFound, which covers a valid token whose account was deleted; a failed
// lookup maps to InternalError so callers can tell "no such user" apart from
// "storage is down".
func (r *RoleResolver) ResolveRole(ctx context.Context, identity domain.Identity) (domain.Role, domain.AccountStatus, error) {
	user, err := r.directory.FindByID(ctx, identity)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", "", apperrors.NewNotFound("user", map[string]any{"id": int64(identity)})
		}
		return "", "", apperrors.NewInternalError(err)
	}
	return user.Role, user.Status, nil
}
