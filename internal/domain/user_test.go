package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoleID(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want int32
	}{
		{name: "admin", in: "admin", want: RoleIDAdmin},
		{name: "mixed case with trailing space", in: "ADMIN ", want: RoleIDAdmin},
		{name: "moderator", in: "  Moderator", want: RoleIDModerator},
		{name: "user", in: "user", want: RoleIDUser},
		{name: "unknown falls back to user", in: "superuser", want: RoleIDUser},
		{name: "empty falls back to user", in: "", want: RoleIDUser},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RoleID(tt.in))
		})
	}
}

func TestStatusID(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want int32
	}{
		{name: "restricted", in: "Restricted", want: StatusIDRestricted},
		{name: "banned with whitespace", in: " BANNED ", want: StatusIDBanned},
		{name: "active", in: "active", want: StatusIDActive},
		{name: "unknown falls back to active", in: "frozen", want: StatusIDActive},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StatusID(tt.in))
		})
	}
}
