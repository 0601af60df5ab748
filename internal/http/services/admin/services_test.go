package admin

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/dropDatabas3/rbacconsole/internal/directory"
	"github.com/dropDatabas3/rbacconsole/internal/observability/logger"
)

func newServices(t *testing.T) (Services, *directory.Store) {
	t.Helper()
	store := directory.NewDefault()
	return NewServices(Deps{Store: store}), store
}

func TestUserService_ListFilters(t *testing.T) {
	svc, store := newServices(t)
	page := svc.Users.List(context.Background(), "JANE")

	require.Len(t, page.Items, 1)
	assert.Equal(t, "Jane Smith", page.Items[0].Name)
	assert.Equal(t, store.Users().Tag(), page.Tag)
	assert.Equal(t, uint64(0), page.Version)
}

func TestUserService_NotFound(t *testing.T) {
	svc, _ := newServices(t)
	ctx := context.Background()

	_, err := svc.Users.Get(ctx, 99)
	assert.True(t, directory.IsNotFound(err))
	assert.True(t, directory.IsNotFound(svc.Users.Update(ctx, directory.User{ID: 99}, "")))
	assert.True(t, directory.IsNotFound(svc.Users.Delete(ctx, 99)))
}

func TestUserService_UpdateStaleTag(t *testing.T) {
	svc, store := newServices(t)
	ctx := context.Background()
	tag := store.Users().Tag()

	svc.Users.Create(ctx, directory.UserInput{Name: "Kim", Role: "Admin"})

	err := svc.Users.Update(ctx, directory.User{ID: 1, Name: "J", Status: directory.StatusActive}, tag)
	assert.True(t, errors.Is(err, ErrStale))

	require.NoError(t, svc.Users.Update(ctx, directory.User{ID: 1, Name: "J", Status: directory.StatusActive}, store.Users().Tag()))
	u, err := svc.Users.Get(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "J", u.Name)
}

func TestUserService_WarnsOnUndefinedRole(t *testing.T) {
	svc, _ := newServices(t)
	core, logs := observer.New(zap.WarnLevel)
	ctx := logger.ToContext(context.Background(), zap.New(core))

	u := svc.Users.Create(ctx, directory.UserInput{Name: "Kim", Role: "Ghost"})
	assert.Equal(t, "Ghost", u.Role)
	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "Ghost", logs.All()[0].ContextMap()["role"])

	svc.Users.Create(ctx, directory.UserInput{Name: "Lee", Role: "Admin"})
	assert.Equal(t, 1, logs.Len())
}

func TestRoleService_CreateUpdate(t *testing.T) {
	svc, _ := newServices(t)
	ctx := context.Background()

	r := svc.Roles.Create(ctx, directory.RoleInput{Name: "Auditor", Permissions: []string{"Read"}})
	assert.Equal(t, int64(3), r.ID)

	r.Permissions = append(r.Permissions, "Export")
	require.NoError(t, svc.Roles.Update(ctx, r, ""))

	got, err := svc.Roles.Get(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, []string{"Read", "Export"}, got.Permissions)

	page := svc.Roles.List(ctx)
	assert.Len(t, page.Items, 3)
	assert.Equal(t, uint64(2), page.Version)

	assert.True(t, errors.Is(svc.Roles.Update(ctx, r, "stale"), ErrStale))
	assert.True(t, directory.IsNotFound(svc.Roles.Update(ctx, directory.Role{ID: 42}, "")))
}
