package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAuthConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     AuthConfig
		wantErr bool
	}{
		{name: "valid", cfg: AuthConfig{JWTSecret: "s", TokenTTLHours: 24, BcryptCost: 12}, wantErr: false},
		{name: "missing secret", cfg: AuthConfig{TokenTTLHours: 24, BcryptCost: 12}, wantErr: true},
		{name: "cost too low", cfg: AuthConfig{JWTSecret: "s", TokenTTLHours: 24, BcryptCost: 2}, wantErr: true},
		{name: "cost too high", cfg: AuthConfig{JWTSecret: "s", TokenTTLHours: 24, BcryptCost: 40}, wantErr: true},
		{name: "zero ttl", cfg: AuthConfig{JWTSecret: "s", BcryptCost: 12}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
