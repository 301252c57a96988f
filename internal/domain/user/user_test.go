package user

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"curator/internal/shared/authorization"
	"curator/internal/shared/biztime"
)

func TestNewUser(t *testing.T) {
	u, err := NewUser("Admin@Example.Gov", "$2a$12$hash", authorization.RoleAdmin)
	require.NoError(t, err)

	assert.Equal(t, "admin@example.gov", u.Email(), "email is normalized to lower case")
	assert.True(t, u.IsActive())
	assert.Equal(t, authorization.RoleAdmin, u.Role())

	_, err = NewUser("", "$2a$12$hash", authorization.RoleAdmin)
	assert.Error(t, err)

	_, err = NewUser("a@b.c", "$2a$12$hash", authorization.Role("root"))
	assert.Error(t, err)
}

func TestDeactivateExcludesFromAuthentication(t *testing.T) {
	u, err := NewUser("a@b.c", "$2a$12$hash", authorization.RoleSuperadmin)
	require.NoError(t, err)

	u.Deactivate()
	assert.False(t, u.IsActive())
}

func TestSetIDOnlyOnce(t *testing.T) {
	u, err := NewUser("a@b.c", "$2a$12$hash", authorization.RoleAdmin)
	require.NoError(t, err)

	require.NoError(t, u.SetID(5))
	assert.Error(t, u.SetID(6))
	assert.Equal(t, uint(5), u.ID())
}

func TestSessionExpiry(t *testing.T) {
	s, err := NewSession(1, "token", "10.0.0.1", "agent", biztime.NowUTC().Add(time.Hour))
	require.NoError(t, err)
	assert.False(t, s.IsExpired())

	s.ExpiresAt = biztime.NowUTC().Add(-time.Minute)
	assert.True(t, s.IsExpired())

	_, err = NewSession(0, "token", "", "", biztime.NowUTC())
	assert.Error(t, err)

	_, err = NewSession(1, "", "", "", biztime.NowUTC())
	assert.Error(t, err)
}
