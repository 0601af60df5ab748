package admin

import (
	"context"
	"fmt"

	"github.com/dropDatabas3/rbacconsole/internal/directory"
	"github.com/dropDatabas3/rbacconsole/internal/observability/logger"
)

// RolePage is one read of the role collection.
type RolePage struct {
	Tag     string
	Version uint64
	Items   []directory.Role
}

// RoleService defines the role operations of the admin API. Roles cannot
// be deleted.
type RoleService interface {
	List(ctx context.Context) RolePage
	Get(ctx context.Context, id int64) (directory.Role, error)
	Create(ctx context.Context, in directory.RoleInput) directory.Role
	Update(ctx context.Context, r directory.Role, ifTag string) error
}

const componentRoles = "admin.roles"

type roleService struct {
	store *directory.Store
}

func NewRoleService(store *directory.Store) RoleService {
	return &roleService{store: store}
}

func (s *roleService) List(_ context.Context) RolePage {
	snap := s.store.Roles()
	return RolePage{Tag: snap.Tag(), Version: snap.Version(), Items: snap.Items()}
}

func (s *roleService) Get(_ context.Context, id int64) (directory.Role, error) {
	r, ok := s.store.Roles().Get(id)
	if !ok {
		return directory.Role{}, fmt.Errorf("role %d: %w", id, directory.ErrNotFound)
	}
	return r, nil
}

func (s *roleService) Create(ctx context.Context, in directory.RoleInput) directory.Role {
	r := s.store.AddRole(in)
	logger.From(ctx).Info("role created",
		logger.Layer("service"),
		logger.Component(componentRoles),
		logger.RoleID(r.ID),
		logger.Count(len(r.Permissions)),
	)
	return r
}

func (s *roleService) Update(ctx context.Context, r directory.Role, ifTag string) error {
	if ifTag != "" {
		if err := s.store.EditRoleIf(r, ifTag); err != nil {
			return fmt.Errorf("role %d: %w", r.ID, err)
		}
	} else if !s.store.EditRole(r) {
		return fmt.Errorf("role %d: %w", r.ID, directory.ErrNotFound)
	}
	logger.From(ctx).Info("role updated",
		logger.Layer("service"),
		logger.Component(componentRoles),
		logger.RoleID(r.ID),
	)
	return nil
}

