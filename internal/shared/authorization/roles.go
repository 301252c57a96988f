// Package authorization defines the closed role set and exact-match role
// checks. There is deliberately no role hierarchy: a superadmin does not
// implicitly pass an admin-only gate.
package authorization

type Role string

const (
	RoleAdmin      Role = "admin"
	RoleSuperadmin Role = "superadmin"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	return r == RoleAdmin || r == RoleSuperadmin
}

// Satisfies reports whether the role passes a gate requiring the given role.
// Comparison is exact, not hierarchical.
func (r Role) Satisfies(required Role) bool {
	return r == required
}

func ParseRole(s string) (Role, bool) {
	role := Role(s)
	return role, role.IsValid()
}
