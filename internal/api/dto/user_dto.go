package dto

import (
	"time"

	"github.com/spec-kit/account-service/internal/domain"
)

// UserResponse is the public view of an account.
type UserResponse struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	Status   string `json:"account_status"`
}

// NewUserResponse converts a domain user.
func NewUserResponse(user *domain.User) UserResponse {
	return UserResponse{
		ID:       int64(user.ID),
		Username: user.Username,
		Email:    user.Email,
		Role:     string(user.Role),
		Status:   string(user.Status),
	}
}

// RoleResponse is the caller's resolved role.
type RoleResponse struct {
	Username string `json:"username"`
	ID       int32  `json:"id"`
	RoleName string `json:"role_name"`
}

// ProfilePatchRequest is the self-service partial update payload.
type ProfilePatchRequest struct {
	Username *string `json:"username"`
	Email    *string `json:"email"`
	Password *string `json:"password"`
}

// AdminPatchRequest is the administrative partial update payload. Role and
// status arrive as free-text names.
type AdminPatchRequest struct {
	Username      *string `json:"username"`
	Email         *string `json:"email"`
	Password      *string `json:"password"`
	RoleName      *string `json:"role_name"`
	AccountStatus *string `json:"account_status"`
}

// ActivityEntryResponse is one audit row.
type ActivityEntryResponse struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	Action    string    `json:"action"`
	CreatedAt time.Time `json:"created_at"`
}
