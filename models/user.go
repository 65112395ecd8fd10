package models

import (
	"slices"
	"time"

	"github.com/google/uuid"
)

// User represents an authenticated principal.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// ID is the unique identifier of the user.
	ID uuid.UUID `json:"id"`

	// Email is the unique login identifier.
	Email string `json:"email"`

	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`

	// HashedPassword stores the bcrypt hash of the user's password.
	// It is never exposed via JSON.
	HashedPassword string `json:"-"`

	// IsActive is false for disabled accounts; they cannot authenticate.
	IsActive bool `json:"is_active"`

	// Roles is the set of permission tiers the user holds.
	Roles []Role `json:"roles"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// HasAnyRole reports whether the user holds at least one of roles.
// An empty roles list is always satisfied.
func (u User) HasAnyRole(roles ...Role) bool {
	if len(roles) == 0 {
		return true
	}
	for _, role := range roles {
		if slices.Contains(u.Roles, role) {
			return true
		}
	}
	return false
}

// Credentials is the body of a login request.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
