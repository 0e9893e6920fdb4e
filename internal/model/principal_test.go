package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrincipal_Authorities(t *testing.T) {
	t.Run("prefixes each role with ROLE_", func(t *testing.T) {
		principal := NewPrincipal(User{
			Email: "jane@example.com",
			Roles: []Role{RoleAdmin, RoleUser},
		})

		assert.Equal(t, []string{"ROLE_ADMIN", "ROLE_USER"}, principal.Authorities())
	})

	t.Run("defaults to ROLE_USER when the user has no roles", func(t *testing.T) {
		principal := NewPrincipal(User{Email: "jane@example.com"})

		assert.Equal(t, []string{"ROLE_USER"}, principal.Authorities())
	})
}

func TestPrincipal_UsernameIsEmail(t *testing.T) {
	principal := NewPrincipal(User{Email: "jane@example.com", Name: "Jane Doe"})
	assert.Equal(t, "jane@example.com", principal.Username())
}

func TestParseRole(t *testing.T) {
	assert.Equal(t, RoleAdmin, ParseRole("ADMIN"))
	assert.Equal(t, RoleAdmin, ParseRole("admin"))
	assert.Equal(t, RoleUser, ParseRole("user"))
	// Unknown labels fall back to USER instead of erroring.
	assert.Equal(t, RoleUser, ParseRole("SUPERVISOR"))
	assert.Equal(t, RoleUser, ParseRole(""))
}

func TestUser_PasswordHashNeverSerialized(t *testing.T) {
	user := User{
		ID:           "u-1",
		Name:         "Jane Doe",
		Email:        "jane@example.com",
		PasswordHash: "$2a$12$secret",
		Roles:        []Role{RoleUser},
	}

	raw, err := json.Marshal(user)
	require.NoError(t, err)

	assert.NotContains(t, string(raw), "secret")
	assert.NotContains(t, string(raw), "password")
}
