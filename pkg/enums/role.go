package enums

import "fmt"

// Role is the account role. Exactly one role per user; there is no
// role-change operation, so the value is immutable after creation.
type Role string

const (
	RoleCustomer Role = "customer"
	RoleSeller   Role = "seller"
)

var validRoles = []Role{
	RoleCustomer,
	RoleSeller,
}

// String implements fmt.Stringer.
func (r Role) String() string {
	return string(r)
}

// IsValid reports whether the value is a known Role.
func (r Role) IsValid() bool {
	for _, candidate := range validRoles {
		if candidate == r {
			return true
		}
	}
	return false
}

// ParseRole converts the raw string to Role.
func ParseRole(value string) (Role, error) {
	for _, candidate := range validRoles {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid role %q", value)
}
