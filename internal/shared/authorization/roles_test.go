package authorization

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoleIsValid(t *testing.T) {
	assert.True(t, RoleAdmin.IsValid())
	assert.True(t, RoleSuperadmin.IsValid())
	assert.False(t, Role("user").IsValid())
	assert.False(t, Role("").IsValid())
}

func TestSatisfiesIsExactMatch(t *testing.T) {
	assert.True(t, RoleAdmin.Satisfies(RoleAdmin))
	assert.True(t, RoleSuperadmin.Satisfies(RoleSuperadmin))

	// No hierarchy: superadmin does not pass an admin-only gate.
	assert.False(t, RoleSuperadmin.Satisfies(RoleAdmin))
	assert.False(t, RoleAdmin.Satisfies(RoleSuperadmin))
}

func TestParseRole(t *testing.T) {
	role, ok := ParseRole("superadmin")
	assert.True(t, ok)
	assert.Equal(t, RoleSuperadmin, role)

	_, ok = ParseRole("root")
	assert.False(t, ok)
}
