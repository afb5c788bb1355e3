package domain

import "time"

// IssuedToken carries the metadata of a freshly signed bearer token.
type IssuedToken struct {
	Token     string
	Subject   Identity
	ExpiresAt time.Time
	IssuedAt  time.Time
}
