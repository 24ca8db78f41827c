package domain

import "time"

// Role is the platform role assigned to a user. A freshly registered user
// carries no role until an admin assigns one.
type Role string

const (
	RoleNone       Role = ""
	RoleStudent    Role = "student"
	RoleInstructor Role = "instructor"
	RoleAdmin      Role = "admin"
)

// ParseRole validates a caller-supplied role value.
func ParseRole(value string) (Role, bool) {
	switch Role(value) {
	case RoleStudent, RoleInstructor, RoleAdmin:
		return Role(value), true
	default:
		return RoleNone, false
	}
}

// User is the directory record for a person. Email is the unique key; the
// directory is the source of truth for role.
type User struct {
	ID        string
	Name      string
	Email     string
	PhotoURL  string
	Role      Role
	CreatedAt time.Time
	UpdatedAt time.Time
}
