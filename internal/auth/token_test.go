package auth

import (
	"testing"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/account-service/internal/domain"
	apperrors "github.com/spec-kit/account-service/pkg/util"
)

const testSecret = "unit-test-secret"

func signTestToken(t *testing.T, method jwt.SigningMethod, secret string, claims jwt.Claims) string {
	t.Helper()
	signed, err := jwt.NewWithClaims(method, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func TestIssueValidateRoundTrip(t *testing.T) {
	tm := NewTokenManager(testSecret, 24*time.Hour)

	issued, err := tm.Issue(domain.Identity(42))
	require.NoError(t, err)
	assert.Equal(t, domain.Identity(42), issued.Subject)
	assert.WithinDuration(t, time.Now().UTC().Add(24*time.Hour), issued.ExpiresAt, time.Minute)

	identity, err := tm.Validate(issued.Token)
	require.NoError(t, err)
	assert.Equal(t, domain.Identity(42), identity)
}

func TestValidateExpiredToken(t *testing.T) {
	tm := NewTokenManager(testSecret, 24*time.Hour)

	expired := signTestToken(t, jwt.SigningMethodHS256, testSecret, jwt.RegisteredClaims{
		Subject:   "42",
		ExpiresAt: jwt.NewNumericDate(time.Now().UTC().Add(-25 * time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now().UTC().Add(-49 * time.Hour)),
	})

	_, err := tm.Validate(expired)
	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, "UNAUTHORIZED"))
}

func TestValidateTamperedSignature(t *testing.T) {
	tm := NewTokenManager(testSecret, 24*time.Hour)

	issued, err := tm.Issue(domain.Identity(7))
	require.NoError(t, err)

	tampered := []byte(issued.Token)
	last := len(tampered) - 1
	if tampered[last] == 'A' {
		tampered[last] = 'B'
	} else {
		tampered[last] = 'A'
	}

	_, err = tm.Validate(string(tampered))
	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, "UNAUTHORIZED"))
}

func TestValidateRejectsWithoutLeakingReason(t *testing.T) {
	tm := NewTokenManager(testSecret, 24*time.Hour)
	now := time.Now().UTC()

	tests := []struct {
		name  string
		token string
	}{
		{
			name:  "garbage",
			token: "not.a.token",
		},
		{
			name:  "empty",
			token: "",
		},
		{
			name: "wrong secret",
			token: signTestToken(t, jwt.SigningMethodHS256, "other-secret", jwt.RegisteredClaims{
				Subject:   "42",
				ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
			}),
		},
		{
			name: "wrong algorithm",
			token: signTestToken(t, jwt.SigningMethodHS512, testSecret, jwt.RegisteredClaims{
				Subject:   "42",
				ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
			}),
		},
		{
			name: "missing expiry",
			token: signTestToken(t, jwt.SigningMethodHS256, testSecret, jwt.RegisteredClaims{
				Subject: "42",
			}),
		},
		{
			name: "non-numeric subject",
			token: signTestToken(t, jwt.SigningMethodHS256, testSecret, jwt.RegisteredClaims{
				Subject:   "alice",
				ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
			}),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tm.Validate(tt.token)
			require.Error(t, err)
			// every failure mode produces the same outward error
			assert.True(t, apperrors.IsCode(err, "UNAUTHORIZED"))
			assert.EqualError(t, err, "invalid or expired token")
		})
	}
}
