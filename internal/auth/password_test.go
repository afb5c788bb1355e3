package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashVerifyRoundTrip(t *testing.T) {
	hasher := NewHasher(bcrypt.MinCost, 2)
	ctx := context.Background()

	hash, err := hasher.Hash(ctx, "correct horse battery staple")
	require.NoError(t, err)
	assert.NotEqual(t, "correct horse battery staple", hash)

	assert.True(t, hasher.Verify(ctx, hash, "correct horse battery staple"))
	assert.False(t, hasher.Verify(ctx, hash, "wrong password"))
}

func TestHashSaltRandomness(t *testing.T) {
	hasher := NewHasher(bcrypt.MinCost, 2)
	ctx := context.Background()

	first, err := hasher.Hash(ctx, "pw1")
	require.NoError(t, err)
	second, err := hasher.Hash(ctx, "pw1")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.True(t, hasher.Verify(ctx, first, "pw1"))
	assert.True(t, hasher.Verify(ctx, second, "pw1"))
}

func TestVerifyMalformedHash(t *testing.T) {
	hasher := NewHasher(bcrypt.MinCost, 2)
	ctx := context.Background()

	tests := []struct {
		name   string
		stored string
	}{
		{name: "empty", stored: ""},
		{name: "not a hash", stored: "plainly-not-bcrypt"},
		{name: "truncated", stored: "$2a$10$abc"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.False(t, hasher.Verify(ctx, tt.stored, "anything"))
		})
	}
}
