package domain

// Role identifies the privilege level carried by a session token.
type Role string

const (
	RoleSuperAdmin   Role = "SuperAdmin"
	RoleGeneralAdmin Role = "Admin"
	RoleCustomer     Role = "Customer"
)

// Valid reports whether the role is one of the recognized values.
func (r Role) Valid() bool {
	switch r {
	case RoleSuperAdmin, RoleGeneralAdmin, RoleCustomer:
		return true
	}
	return false
}

// IsAdmin reports whether the role is one of the two admin kinds.
func (r Role) IsAdmin() bool {
	return r == RoleSuperAdmin || r == RoleGeneralAdmin
}
