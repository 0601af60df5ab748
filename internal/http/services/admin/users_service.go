package admin

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/dropDatabas3/rbacconsole/internal/directory"
	"github.com/dropDatabas3/rbacconsole/internal/observability/logger"
	"github.com/dropDatabas3/rbacconsole/internal/query"
)

// UserPage is one read of the user collection.
type UserPage struct {
	Tag     string
	Version uint64
	Items   []directory.User
}

// UserService defines the user operations of the admin API.
type UserService interface {
	// List returns the users matching term in the current snapshot.
	List(ctx context.Context, term string) UserPage
	Get(ctx context.Context, id int64) (directory.User, error)
	Create(ctx context.Context, in directory.UserInput) directory.User
	// Update replaces the user with u.ID. ifTag, when non-empty, must equal
	// the current collection tag.
	Update(ctx context.Context, u directory.User, ifTag string) error
	Delete(ctx context.Context, id int64) error
}

const componentUsers = "admin.users"

type userService struct {
	store    *directory.Store
	searcher UserSearcher
}

// NewUserService builds a UserService. A nil searcher filters without caching.
func NewUserService(store *directory.Store, searcher UserSearcher) UserService {
	if searcher == nil {
		searcher = query.NewSearcher(nil)
	}
	return &userService{store: store, searcher: searcher}
}

func (s *userService) List(ctx context.Context, term string) UserPage {
	snap := s.store.Users()
	items := s.searcher.Search(ctx, snap, term)

	logger.From(ctx).Debug("users listed",
		logger.Layer("service"),
		logger.Component(componentUsers),
		logger.Term(term),
		logger.Count(len(items)),
		logger.Version(snap.Version()),
	)
	return UserPage{Tag: snap.Tag(), Version: snap.Version(), Items: items}
}

func (s *userService) Get(_ context.Context, id int64) (directory.User, error) {
	u, ok := s.store.Users().Get(id)
	if !ok {
		return directory.User{}, fmt.Errorf("user %d: %w", id, directory.ErrNotFound)
	}
	return u, nil
}

func (s *userService) Create(ctx context.Context, in directory.UserInput) directory.User {
	u := s.store.AddUser(in)
	log := logger.From(ctx).With(
		logger.Layer("service"),
		logger.Component(componentUsers),
		logger.Op("Create"),
		logger.UserID(u.ID),
	)
	s.warnUnknownRole(log, u.Role)
	log.Info("user created")
	return u
}

func (s *userService) Update(ctx context.Context, u directory.User, ifTag string) error {
	log := logger.From(ctx).With(
		logger.Layer("service"),
		logger.Component(componentUsers),
		logger.Op("Update"),
		logger.UserID(u.ID),
	)
	if ifTag != "" {
		if err := s.store.EditUserIf(u, ifTag); err != nil {
			return fmt.Errorf("user %d: %w", u.ID, err)
		}
	} else if !s.store.EditUser(u) {
		return fmt.Errorf("user %d: %w", u.ID, directory.ErrNotFound)
	}
	s.warnUnknownRole(log, u.Role)
	log.Info("user updated")
	return nil
}

func (s *userService) Delete(ctx context.Context, id int64) error {
	n := s.store.DeleteUser(id)
	if n == 0 {
		return fmt.Errorf("user %d: %w", id, directory.ErrNotFound)
	}
	logger.From(ctx).Info("user deleted",
		logger.Layer("service"),
		logger.Component(componentUsers),
		logger.UserID(id),
		logger.Count(n),
	)
	return nil
}

// Role labels are not validated against the role collection; an unknown
// label is accepted and only reported.
func (s *userService) warnUnknownRole(log *zap.Logger, role string) {
	if role != "" && !s.store.RoleDefined(role) {
		log.Warn("user references undefined role", logger.RoleName(role))
	}
}
