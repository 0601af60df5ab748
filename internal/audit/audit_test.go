package audit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/dropDatabas3/rbacconsole/internal/directory"
)

func TestTrail_LogsEachMutation(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	store := directory.NewDefault()
	cancel := New(zap.New(core)).Attach(store)

	u := store.AddUser(directory.UserInput{Name: "Kim", Email: "kim@example.com", Role: "Admin"})
	u.Name = "Kimberly"
	store.EditUser(u)
	store.EditUser(directory.User{ID: 404})
	store.AddRole(directory.RoleInput{Name: "Auditor", Permissions: []string{"Read"}})
	store.DeleteUser(u.ID)

	entries := logs.All()
	require.Len(t, entries, 4)

	first := entries[0].ContextMap()
	assert.Equal(t, "directory mutation", entries[0].Message)
	assert.Equal(t, "users.add", first["event"])
	assert.Equal(t, "users", first["collection"])
	assert.Equal(t, u.ID, first["user_id"])
	assert.Equal(t, uint64(1), first["version"])
	assert.Equal(t, "k…@e….com", first["email"])
	assert.Equal(t, "Admin", first["role"])
	assert.Equal(t, "Active", first["status"])

	assert.Equal(t, "users.edit", entries[1].ContextMap()["event"])
	assert.Equal(t, "roles.add", entries[2].ContextMap()["event"])
	assert.Equal(t, int64(3), entries[2].ContextMap()["role_id"])
	assert.Equal(t, "Auditor", entries[2].ContextMap()["role"])
	assert.Equal(t, "users.delete", entries[3].ContextMap()["event"])
	assert.Equal(t, uint64(3), entries[3].ContextMap()["version"])
	assert.NotContains(t, entries[3].ContextMap(), "email")

	cancel()
	store.AddUser(directory.UserInput{Name: "Lee"})
	assert.Equal(t, 4, logs.Len())
}

func TestTrail_ObserveWithoutStore(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	New(zap.New(core)).Observe(directory.Event{Collection: directory.CollectionUsers, Op: directory.OpAdd, ID: 9, Version: 1})

	require.Equal(t, 1, logs.Len())
	assert.NotContains(t, logs.All()[0].ContextMap(), "email")
}

func TestNew_DefaultsToNamedLogger(t *testing.T) {
	assert.NotNil(t, New(nil).log)
}
