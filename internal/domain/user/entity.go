package user

import "time"

type Role string

const (
	RoleAdmin    Role = "admin"
	RoleSubAdmin Role = "subadmin"
	RoleMember   Role = "member"
)

// IsPrivileged reports whether the role may approve requests and edit balances.
func (r Role) IsPrivileged() bool {
	return r == RoleAdmin || r == RoleSubAdmin
}

// User entity
type User struct {
	ID           string
	Email        string
	PasswordHash *string // nil for SSO-only accounts
	FullName     string
	Role         Role
	GoogleID     *string
	IsActive     bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// RefreshToken is a persisted refresh session.
type RefreshToken struct {
	ID        string
	UserID    string
	Token     string
	UserAgent *string
	ExpiresAt time.Time
	RevokedAt *time.Time
	CreatedAt time.Time
}
