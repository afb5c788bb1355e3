package auth

import (
	"errors"
	"strconv"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"

	"github.com/spec-kit/account-service/internal/domain"
	apperrors "github.com/spec-kit/account-service/pkg/util"
)

// TokenManager issues and validates stateless bearer tokens. Tokens carry only
// the subject identity and an expiry; there is no server-side token storage
// and no revocation list. The signing secret is loaded once at startup and
// shared read-only across requests.
type TokenManager struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenManager builds a manager around the process-wide secret.
func NewTokenManager(secret string, ttl time.Duration) *TokenManager {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &TokenManager{secret: []byte(secret), ttl: ttl}
}

// Issue builds and signs a token for the identity. Expiry is computed in UTC.
func (tm *TokenManager) Issue(identity domain.Identity) (domain.IssuedToken, error) {
	now := time.Now().UTC()
	expiresAt := now.Add(tm.ttl)
	claims := jwt.RegisteredClaims{
		Subject:   strconv.FormatInt(int64(identity), 10),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
		IssuedAt:  jwt.NewNumericDate(now),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(tm.secret)
	if err != nil {
		return domain.IssuedToken{}, apperrors.NewInternalError(err)
	}
	return domain.IssuedToken{
		Token:     signed,
		Subject:   identity,
		ExpiresAt: expiresAt,
		IssuedAt:  now,
	}, nil
}

// Validate verifies signature and expiry and parses the subject back into an
// identity. Every failure mode collapses into the same unauthorized error so
// a caller cannot distinguish a bad signature from an expired token.
func (tm *TokenManager) Validate(tokenStr string) (domain.Identity, error) {
	parsed, err := jwt.ParseWithClaims(tokenStr, &jwt.RegisteredClaims{}, func(token *jwt.Token) (interface{}, error) {
		if token.Method != jwt.SigningMethodHS256 {
			return nil, errors.New("unexpected signing method")
		}
		return tm.secret, nil
	}, jwt.WithExpirationRequired())
	if err != nil {
		return 0, errInvalidToken()
	}

	claims, ok := parsed.Claims.(*jwt.RegisteredClaims)
	if !ok || !parsed.Valid {
		return 0, errInvalidToken()
	}

	id, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil {
		return 0, errInvalidToken()
	}
	return domain.Identity(id), nil
}

func errInvalidToken() error {
	return apperrors.NewUnauthorized("invalid or expired token")
}
