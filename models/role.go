package models

// Role is a named permission tier held by a [User].
type Role string

const (
	// RoleAdmin may manage every resource.
	RoleAdmin Role = "admin"
	// RoleManager may create, update and delete heroes and teams.
	RoleManager Role = "manager"
	// RoleUser is the default tier: read-only access.
	RoleUser Role = "user"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleManager, RoleUser:
		return true
	}
	return false
}

func (r Role) String() string {
	return string(r)
}
