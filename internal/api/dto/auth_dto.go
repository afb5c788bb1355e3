package dto

import "time"

// SignUpRequest payload for new accounts.
type SignUpRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest payload for login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse standard response for auth endpoints.
type AuthResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// ValidateResponse reports the subject of a presented token.
type ValidateResponse struct {
	UserID  int64  `json:"user_id"`
	Message string `json:"message"`
}
