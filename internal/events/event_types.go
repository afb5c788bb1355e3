package events

import (
	"time"

	"github.com/spec-kit/account-service/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventUserRegistered EventType = "user_registered"
	EventUserLoggedIn   EventType = "user_logged_in"
	EventProfileUpdated EventType = "profile_updated"
	EventAdminPatched   EventType = "admin_patched"
)

// Event represents a domain event emitted by services.
type Event struct {
	ID        string          `json:"id"`
	Type      EventType       `json:"type"`
	UserID    domain.Identity `json:"user_id"`
	Timestamp time.Time       `json:"timestamp"`
	Payload   interface{}     `json:"payload"`
}

// ProfileUpdatedPayload payload.
type ProfileUpdatedPayload struct {
	ChangedFields []string `json:"changed_fields"`
}

// AdminPatchedPayload payload.
type AdminPatchedPayload struct {
	ActorID       domain.Identity `json:"actor_id"`
	ChangedFields []string        `json:"changed_fields"`
}
