package permission

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bulletin/internal/infrastructure/database/dbtest"
	"bulletin/internal/shared/logger"
)

func TestDefaultPolicies_Memory(t *testing.T) {
	log := logger.NewNopLogger()
	e, err := NewMemoryEnforcer(log)
	require.NoError(t, err)
	require.NoError(t, SeedDefaultPolicies(e, log))

	tests := []struct {
		subject, resource, action string
		want                      bool
	}{
		{"admin", ResourceAnnouncements, ActionWrite, true},
		{"admin", ResourceAnnouncements, ActionDelete, true},
		{"admin", ResourceFeed, ActionMark, true},
		{"user", ResourceFeed, ActionRead, true},
		{"user", ResourceFeed, ActionMark, true},
		{"user", ResourceAnnouncements, ActionRead, false},
		{"user", ResourceAnnouncements, ActionWrite, false},
		{"guest", ResourceFeed, ActionRead, false},
	}

	for _, tt := range tests {
		allowed, err := e.Enforce(tt.subject, tt.resource, tt.action)
		require.NoError(t, err)
		assert.Equal(t, tt.want, allowed, "%s %s %s", tt.subject, tt.resource, tt.action)
	}
}

func TestSeedDefaultPolicies_Idempotent(t *testing.T) {
	log := logger.NewNopLogger()
	e, err := NewMemoryEnforcer(log)
	require.NoError(t, err)

	require.NoError(t, SeedDefaultPolicies(e, log))
	require.NoError(t, SeedDefaultPolicies(e, log))

	perms, err := e.GetPermissionsForSubject("user")
	require.NoError(t, err)
	assert.Len(t, perms, 2)
}

func TestRoleForUser(t *testing.T) {
	log := logger.NewNopLogger()
	e, err := NewMemoryEnforcer(log)
	require.NoError(t, err)
	require.NoError(t, SeedDefaultPolicies(e, log))

	allowed, err := e.Enforce("42", ResourceAnnouncements, ActionWrite)
	require.NoError(t, err)
	assert.False(t, allowed)

	require.NoError(t, e.AddRoleForUser("42", "admin"))

	allowed, err = e.Enforce("42", ResourceAnnouncements, ActionWrite)
	require.NoError(t, err)
	assert.True(t, allowed)
}

func TestEnforcer_PersistsThroughGorm(t *testing.T) {
	db := dbtest.Open(t)
	log := logger.NewNopLogger()

	e, err := NewEnforcer(db, log)
	require.NoError(t, err)
	require.NoError(t, SeedDefaultPolicies(e, log))
	require.NoError(t, e.RemovePolicy("user", ResourceFeed, ActionMark))

	reloaded, err := NewEnforcer(db, log)
	require.NoError(t, err)

	allowed, err := reloaded.Enforce("admin", ResourceAnnouncements, ActionWrite)
	require.NoError(t, err)
	assert.True(t, allowed)

	allowed, err = reloaded.Enforce("user", ResourceFeed, ActionMark)
	require.NoError(t, err)
	assert.False(t, allowed)
}
