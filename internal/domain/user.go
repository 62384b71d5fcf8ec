package domain

import "time"

// Role enumerates account roles. There is no hierarchy between roles; route
// rules and services name the exact roles they accept.
type Role string

const (
	RoleAdmin   Role = "ADMIN"
	RoleTrainer Role = "TRAINER"
	RoleMember  Role = "MEMBER"
)

// ParseRole maps a stored string to a known Role.
func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleAdmin, RoleTrainer, RoleMember:
		return Role(s), true
	}
	return "", false
}

// User is the account record every principal resolves to. Disabled users
// keep their rows but can never authenticate.
type User struct {
	ID           int64
	Username     string
	Email        string
	PasswordHash string
	Role         Role
	Enabled      bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
