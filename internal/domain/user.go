package domain

import (
	"strings"
	"time"
)

// Identity is the opaque numeric handle for an account. It is assigned by the
// directory at creation time and never changes afterwards.
type Identity int64

// Role is the coarse permission tier attached to an account.
type Role string

const (
	RoleUser      Role = "user"
	RoleAdmin     Role = "admin"
	RoleModerator Role = "moderator"
)

// AccountStatus is the lifecycle flag, orthogonal to Role.
type AccountStatus string

const (
	StatusActive     AccountStatus = "active"
	StatusRestricted AccountStatus = "restricted"
	StatusBanned     AccountStatus = "banned"
)

// Directory ids for the closed role and status sets.
const (
	RoleIDUser      int32 = 1
	RoleIDAdmin     int32 = 2
	RoleIDModerator int32 = 3

	StatusIDActive     int32 = 1
	StatusIDRestricted int32 = 2
	StatusIDBanned     int32 = 3
)

// User is the domain model for an account.
type User struct {
	ID           Identity
	Username     string
	Email        string
	PasswordHash string
	Role         Role
	Status       AccountStatus
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// RoleID maps a free-text role name to its directory id. Matching is
// case-insensitive and ignores surrounding whitespace. Unrecognized names map
// to the user role, never to an error: an admin patch with a bad role name
// must not escalate privileges.
func RoleID(name string) int32 {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "admin":
		return RoleIDAdmin
	case "moderator":
		return RoleIDModerator
	default:
		return RoleIDUser
	}
}

// StatusID maps a free-text status name to its directory id with the same
// normalization as RoleID. Unrecognized names map to active.
func StatusID(name string) int32 {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "restricted":
		return StatusIDRestricted
	case "banned":
		return StatusIDBanned
	default:
		return StatusIDActive
	}
}
