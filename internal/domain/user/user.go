// Package user holds the credential-store entities: the User account and
// its server-side Session records.
package user

import (
	"fmt"
	"strings"
	"time"

	"curator/internal/shared/authorization"
	"curator/internal/shared/biztime"
)

// User represents an administrative account. Accounts are created by a
// superadmin, never deleted in normal operation; deactivation permanently
// excludes them from authentication.
type User struct {
	id           uint
	email        string
	passwordHash string
	role         authorization.Role
	isActive     bool
	createdAt    time.Time
}

func NewUser(email, passwordHash string, role authorization.Role) (*User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return nil, fmt.Errorf("email is required")
	}
	if passwordHash == "" {
		return nil, fmt.Errorf("password hash is required")
	}
	if !role.IsValid() {
		return nil, fmt.Errorf("invalid role: %s", role)
	}

	return &User{
		email:        email,
		passwordHash: passwordHash,
		role:         role,
		isActive:     true,
		createdAt:    biztime.NowUTC(),
	}, nil
}

// ReconstructUser rebuilds a user from persistence.
func ReconstructUser(id uint, email, passwordHash string, role authorization.Role, isActive bool, createdAt time.Time) (*User, error) {
	if id == 0 {
		return nil, fmt.Errorf("user ID cannot be zero")
	}
	if email == "" {
		return nil, fmt.Errorf("email is required")
	}
	if !role.IsValid() {
		return nil, fmt.Errorf("invalid role: %s", role)
	}

	return &User{
		id:           id,
		email:        email,
		passwordHash: passwordHash,
		role:         role,
		isActive:     isActive,
		createdAt:    createdAt,
	}, nil
}

func (u *User) ID() uint {
	return u.id
}

func (u *User) Email() string {
	return u.email
}

func (u *User) PasswordHash() string {
	return u.passwordHash
}

func (u *User) Role() authorization.Role {
	return u.role
}

func (u *User) IsActive() bool {
	return u.isActive
}

func (u *User) CreatedAt() time.Time {
	return u.createdAt
}

// SetID sets the user ID (only for persistence layer use)
func (u *User) SetID(id uint) error {
	if u.id != 0 {
		return fmt.Errorf("user ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("user ID cannot be zero")
	}
	u.id = id
	return nil
}

// Deactivate permanently excludes the account from authentication.
func (u *User) Deactivate() {
	u.isActive = false
}

// Summary is the caller-visible projection of an account.
type Summary struct {
	ID    uint   `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

func (u *User) Summary() Summary {
	return Summary{
		ID:    u.id,
		Email: u.email,
		Role:  u.role.String(),
	}
}
