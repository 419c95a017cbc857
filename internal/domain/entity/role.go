package entity

import "slices"

const (
	// RoleAdmin grants full access, including user and role management.
	RoleAdmin = "admin"
	// RoleManagement grants access to the reference data endpoints.
	RoleManagement = "management"
)

// PredefinedRoles are created on startup when missing. Route guards match
// them by name, so their names never change.
var PredefinedRoles = Roles{
	{RoleName: RoleAdmin, Description: "System administrator"},
	{RoleName: RoleManagement, Description: "Back office management"},
}

// Role is a named permission set assigned to users.
type Role struct {
	ID          int64
	RoleName    string // Unique, always lowercase.
	Description string

	CommonField
}

// Roles is a slice of Role for convenience.
type Roles []Role

// Names returns the role names, suitable for a JWT roles claim.
func (rs Roles) Names() []string {
	result := make([]string, len(rs))
	for i, r := range rs {
		result[i] = r.RoleName
	}

	return result
}

// Contains reports whether a role with the given name is present.
func (rs Roles) Contains(name string) bool {
	return slices.ContainsFunc(rs, func(r Role) bool {
		return r.RoleName == name
	})
}
