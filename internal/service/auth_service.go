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

// AuthService coordinates signup and login flows.
type AuthService struct {
	directory  repository.UserDirectory
	hasher     *auth.Hasher
	tokens     *auth.TokenManager
	dispatcher events.Dispatcher
}

// AuthDependencies encapsulates collaborator requirements for auth service.
type AuthDependencies struct {
	Directory  repository.UserDirectory
	Hasher     *auth.Hasher
	Tokens     *auth.TokenManager
	Dispatcher events.Dispatcher
}

// NewAuthService builds the service.
func NewAuthService(deps AuthDependencies) *AuthService {
	return &AuthService{
		directory:  deps.Directory,
		hasher:     deps.Hasher,
		tokens:     deps.Tokens,
		dispatcher: deps.Dispatcher,
	}
}

// SignUp creates a new account with the least-privileged role and an active
// status. A reused email yields BadRequest without creating a second record.
func (s *AuthService) SignUp(ctx context.Context, username, email, password string) (*domain.User, error) {
	if _, err := s.directory.FindByEmail(ctx, email); err == nil {
		return nil, apperrors.NewBadRequest("email already in use", nil)
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.NewInternalError(err)
	}

	hash, err := s.hasher.Hash(ctx, password)
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}

	user := &domain.User{
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		Role:         domain.RoleUser,
		Status:       domain.StatusActive,
	}
	if err := s.directory.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, apperrors.NewBadRequest("email already in use", nil)
		}
		return nil, apperrors.NewInternalError(err)
	}

	s.publish(ctx, events.EventUserRegistered, user.ID, nil)
	return user, nil
}

// Login authenticates by email and password and issues a bearer token. An
// unknown email maps to NotFound; a wrong password maps to Unauthorized.
func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.User, domain.IssuedToken, error) {
	user, err := s.directory.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.IssuedToken{}, apperrors.NewNotFound("user", nil)
		}
		return nil, domain.IssuedToken{}, apperrors.NewInternalError(err)
	}

	if !s.hasher.Verify(ctx, user.PasswordHash, password) {
		return nil, domain.IssuedToken{}, apperrors.NewUnauthorized("invalid credentials")
	}

	issued, err := s.tokens.Issue(user.ID)
	if err != nil {
		return nil, domain.IssuedToken{}, err
	}

	s.publish(ctx, events.EventUserLoggedIn, user.ID, nil)
	return user, issued, nil
}

// ValidateToken reports the subject of a bearer token if it is still valid.
func (s *AuthService) ValidateToken(tokenStr string) (domain.Identity, error) {
	return s.tokens.Validate(tokenStr)
}

func (s *AuthService) publish(ctx context.Context, eventType events.EventType, userID domain.Identity, payload interface{}) {
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
