package domain

import "github.com/google/uuid"

// Principal is the common capability shared by the two principal kinds
// (Admin, Customer): an identity, a role and a stored password hash. It lets
// the login flow probe both backing tables through one code path.
type Principal interface {
	PrincipalID() uuid.UUID
	PrincipalRole() Role
	StoredPasswordHash() string
}

func (c *Customer) PrincipalID() uuid.UUID     { return c.ID }
func (c *Customer) PrincipalRole() Role        { return RoleCustomer }
func (c *Customer) StoredPasswordHash() string { return c.PasswordHash }

func (a *Admin) PrincipalID() uuid.UUID     { return a.ID }
func (a *Admin) PrincipalRole() Role        { return Role(a.Role) }
func (a *Admin) StoredPasswordHash() string { return a.PasswordHash }
