package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/account-service/internal/auth"
	"github.com/spec-kit/account-service/internal/domain"
	"github.com/spec-kit/account-service/internal/events"
	"github.com/spec-kit/account-service/internal/repository"
	apperrors "github.com/spec-kit/account-service/pkg/util"
)

// adminListLimit caps the admin user listing to its first page.
const adminListLimit = 5

// ProfilePatch carries a self-service profile update. Nil fields are left
// unchanged; a new password is rehashed before it reaches the directory.
type ProfilePatch struct {
	Username *string
	Email    *string
	Password *string
}

// AdminPatch carries an administrative update. Role and status arrive as
// free-text names and are mapped through the fail-safe name→id tables.
type AdminPatch struct {
	Username   *string
	Email      *string
	Password   *string
	RoleName   *string
	StatusName *string
}

// AccountService serves profile and administration flows over the directory.
type AccountService struct {
	directory  repository.UserDirectory
	hasher     *auth.Hasher
	dispatcher events.Dispatcher
}

// NewAccountService builds the service.
func NewAccountService(directory repository.UserDirectory, hasher *auth.Hasher, dispatcher events.Dispatcher) *AccountService {
	return &AccountService{directory: directory, hasher: hasher, dispatcher: dispatcher}
}

// Profile returns the account for the given identity.
func (s *AccountService) Profile(ctx context.Context, id domain.Identity) (*domain.User, error) {
	user, err := s.directory.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("user", map[string]any{"id": int64(id)})
		}
		return nil, apperrors.NewInternalError(err)
	}
	return user, nil
}

// UpdateProfile applies a self-service patch to the caller's own account.
func (s *AccountService) UpdateProfile(ctx context.Context, id domain.Identity, patch ProfilePatch) error {
	fields := repository.UserPatch{
		Username: patch.Username,
		Email:    patch.Email,
	}
	var changed []string
	if patch.Username != nil {
		changed = append(changed, "username")
	}
	if patch.Email != nil {
		changed = append(changed, "email")
	}
	if patch.Password != nil {
		changed = append(changed, "password")
	}

	if patch.Password != nil {
		hash, err := s.hasher.Hash(ctx, *patch.Password)
		if err != nil {
			return apperrors.NewInternalError(err)
		}
		fields.PasswordHash = &hash
	}

	if err := s.applyPatch(ctx, id, fields); err != nil {
		return err
	}
	s.publish(ctx, events.EventProfileUpdated, id, events.ProfileUpdatedPayload{ChangedFields: changed})
	return nil
}

// ListUsers returns the first page of accounts ordered by identity. An empty
// directory maps to NotFound.
func (s *AccountService) ListUsers(ctx context.Context) ([]domain.User, error) {
	users, err := s.directory.List(ctx, adminListLimit)
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}
	if len(users) == 0 {
		return nil, apperrors.NewNotFound("users", nil)
	}
	return users, nil
}

// AdminPatchUser applies an administrative partial update to target. The
// target must exist; unknown role or status names silently map to the least
// privileged values rather than erroring.
func (s *AccountService) AdminPatchUser(ctx context.Context, actor, target domain.Identity, patch AdminPatch) error {
	if _, err := s.directory.FindByID(ctx, target); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("user", map[string]any{"id": int64(target)})
		}
		return apperrors.NewInternalError(err)
	}

	fields := repository.UserPatch{
		Username: patch.Username,
		Email:    patch.Email,
	}
	var changed []string
	if patch.Username != nil {
		changed = append(changed, "username")
	}
	if patch.Email != nil {
		changed = append(changed, "email")
	}
	if patch.Password != nil {
		changed = append(changed, "password")
	}
	if patch.RoleName != nil {
		changed = append(changed, "role")
	}
	if patch.StatusName != nil {
		changed = append(changed, "status")
	}

	if patch.Password != nil {
		hash, err := s.hasher.Hash(ctx, *patch.Password)
		if err != nil {
			return apperrors.NewInternalError(err)
		}
		fields.PasswordHash = &hash
	}
	if patch.RoleName != nil {
		roleID := domain.RoleID(*patch.RoleName)
		fields.RoleID = &roleID
	}
	if patch.StatusName != nil {
		statusID := domain.StatusID(*patch.StatusName)
		fields.StatusID = &statusID
	}

	if err := s.applyPatch(ctx, target, fields); err != nil {
		return err
	}
	s.publish(ctx, events.EventAdminPatched, target, events.AdminPatchedPayload{ActorID: actor, ChangedFields: changed})
	return nil
}

func (s *AccountService) applyPatch(ctx context.Context, id domain.Identity, fields repository.UserPatch) error {
	rows, err := s.directory.UpdateFields(ctx, id, fields)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return apperrors.NewBadRequest("email already in use", nil)
		}
		return apperrors.NewInternalError(err)
	}
	if rows == 0 {
		return apperrors.NewInternalError(errors.New("user not updated"))
	}
	return nil
}

func (s *AccountService) publish(ctx context.Context, eventType events.EventType, userID domain.Identity, payload interface{}) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		UserID:    userID,
		Timestamp: time.Now().UTC(),
		Payload:   payload,
	})
}
