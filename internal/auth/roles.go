package auth

import (
	"fmt"
	"strings"
)

// Role is a closed enumeration of account roles. Roles are assigned at
// registration and changed only through an administrative path.
type Role string

const (
	RoleAdmin        Role = "ADMIN"
	RoleBandManager  Role = "BAND_MANAGER"
	RoleBandMember   Role = "BAND_MEMBER"
	RoleBookingAgent Role = "BOOKING_AGENT"
	RoleTourManager  Role = "TOUR_MANAGER"
)

// Roles lists every valid role in a stable order.
var Roles = []Role{RoleAdmin, RoleBandManager, RoleBandMember, RoleBookingAgent, RoleTourManager}

// ParseRole converts raw input into a Role, rejecting anything outside the
// enumeration.
func ParseRole(raw string) (Role, error) {
	candidate := Role(strings.ToUpper(strings.TrimSpace(raw)))
	for _, r := range Roles {
		if candidate == r {
			return r, nil
		}
	}
	return "", fmt.Errorf("%w: role must be one of %s", ErrInvalidInput, roleList())
}

// Valid reports whether r belongs to the enumeration.
func (r Role) Valid() bool {
	for _, known := range Roles {
		if r == known {
			return true
		}
	}
	return false
}

func (r Role) String() string { return string(r) }

func roleList() string {
	names := make([]string, len(Roles))
	for i, r := range Roles {
		names[i] = string(r)
	}
	return strings.Join(names, ", ")
}
