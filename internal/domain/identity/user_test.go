package identity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	t.Run("hashes the password", func(t *testing.T) {
		u, err := NewUser("owner", "Shop Owner", "secret123", RoleAdmin)
		require.NoError(t, err)
		assert.NotEqual(t, "secret123", u.PasswordHash)
		assert.True(t, u.CheckPassword("secret123"))
		assert.False(t, u.CheckPassword("wrong"))
	})

	t.Run("name defaults to username", func(t *testing.T) {
		u, err := NewUser("owner", "", "secret123", RoleStaff)
		require.NoError(t, err)
		assert.Equal(t, "owner", u.Name)
		assert.False(t, u.IsAdmin())
	})

	t.Run("rejects short passwords", func(t *testing.T) {
		_, err := NewUser("owner", "", "abc", RoleAdmin)
		assert.Error(t, err)
	})

	t.Run("rejects unknown roles", func(t *testing.T) {
		_, err := NewUser("owner", "", "secret123", Role("root"))
		assert.Error(t, err)
	})

	t.Run("rejects empty username", func(t *testing.T) {
		_, err := NewUser("", "", "secret123", RoleAdmin)
		assert.Error(t, err)
	})
}
