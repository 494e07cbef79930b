package domain

import "fmt"

// Role enumerates the closed set of caller roles.
type Role string

const (
	RoleAdmin     Role = "admin"
	RoleEditor    Role = "editor"
	RoleViewer    Role = "viewer"
	RoleDeveloper Role = "developer"
	RoleTester    Role = "tester"
	RoleGuest     Role = "guest"
)

// Roles lists every valid role.
func Roles() []Role {
	return []Role{RoleAdmin, RoleEditor, RoleViewer, RoleDeveloper, RoleTester, RoleGuest}
}

// ParseRole validates a role string against the closed enumeration.
func ParseRole(s string) (Role, error) {
	role := Role(s)
	switch role {
	case RoleAdmin, RoleEditor, RoleViewer, RoleDeveloper, RoleTester, RoleGuest:
		return role, nil
	default:
		return "", fmt.Errorf("unknown role %q", s)
	}
}

// Principal is the authenticated caller, supplied per call by the
// identity provider. Read-only input to every handler.
type Principal struct {
	ID    string
	Email string
	Role  Role
}
