package domain

import "time"

// TokenInfo is the decoded metadata of an issued bearer token.
type TokenInfo struct {
	Subject   string
	Role      Role
	IssuedAt  time.Time
	ExpiresAt time.Time
}
