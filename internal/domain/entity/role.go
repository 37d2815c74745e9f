package entity

import (
	"slices"
	"strings"
)

// Role represents the access class of an account.
type Role string

const (
	// RoleAdmin manages accounts.
	RoleAdmin Role = "Admin"
	// RoleDoctor is clinical staff with a provisioned account.
	RoleDoctor Role = "Doctor"
	// RoleStaff is non-clinical staff with a provisioned account.
	RoleStaff Role = "Staff"
	// RolePatient is only reachable through patient self-registration.
	RolePatient Role = "Patient"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleDoctor, RoleStaff, RolePatient:
		return true
	default:
		return false
	}
}

// ParseRole matches s against the known roles ignoring case.
func ParseRole(s string) (Role, bool) {
	for _, role := range AllRoles() {
		if strings.EqualFold(string(role), s) {
			return role, true
		}
	}

	return "", false
}

// AllRoles lists every role in display order.
func AllRoles() Roles {
	return Roles{RoleAdmin, RoleDoctor, RoleStaff, RolePatient}
}

// Roles is a slice of Role for convenience.
type Roles []Role

// Contains checks if the roles slice contains a specific role.
func (rs Roles) Contains(role Role) bool {
	return slices.Contains(rs, role)
}

// ToStrings converts Roles to []string for JWT compatibility.
func (rs Roles) ToStrings() []string {
	result := make([]string, len(rs))
	for i, r := range rs {
		result[i] = r.String()
	}

	return result
}

// RolesFromStrings converts []string to Roles, filtering out invalid role strings.
func RolesFromStrings(ss []string) Roles {
	result := make(Roles, 0, len(ss))
	for _, s := range ss {
		role := Role(s)
		if role.IsValid() {
			result = append(result, role)
		}
	}

	return result
}
