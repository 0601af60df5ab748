// Package admin holds the admin API services over the directory store.
package admin

import (
	"context"

	"github.com/dropDatabas3/rbacconsole/internal/directory"
)

// UserSearcher finds users in a snapshot. *query.Searcher implements it.
type UserSearcher interface {
	Search(ctx context.Context, snap *directory.Snapshot[directory.User], term string) []directory.User
}

// Deps are the collaborators of the admin services.
type Deps struct {
	Store    *directory.Store
	Searcher UserSearcher
}

// Services groups the admin services.
type Services struct {
	Users UserService
	Roles RoleService
}

// NewServices builds the admin services.
func NewServices(d Deps) Services {
	return Services{
		Users: NewUserService(d.Store, d.Searcher),
		Roles: NewRoleService(d.Store),
	}
}
