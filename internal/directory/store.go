package directory

import (
	"fmt"
	"slices"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"
)

// Store is the single source of truth for the user and role collections.
//
// Writers are serialised by mu. Readers load the current snapshot from an
// atomic pointer and never block.
type Store struct {
	epoch string

	mu      sync.Mutex
	userSeq int64
	roleSeq int64
	users   atomic.Pointer[Snapshot[User]]
	roles   atomic.Pointer[Snapshot[Role]]

	// live subscriptions, in subscription order
	observers []subscription
	nextObs   int
}

type subscription struct {
	id int
	fn Observer
}

// New builds a store holding the given seed rows. Ids must be unique inside
// each collection; the id counters start after the largest seeded id.
func New(seed Seed) (*Store, error) {
	if err := checkUnique(seed.Users); err != nil {
		return nil, fmt.Errorf("seed users: %w", err)
	}
	if err := checkUnique(seed.Roles); err != nil {
		return nil, fmt.Errorf("seed roles: %w", err)
	}

	s := &Store{epoch: uuid.NewString()}

	users := make([]User, len(seed.Users))
	for i, u := range seed.Users {
		if u.Status == "" {
			u.Status = StatusActive
		}
		users[i] = u
		s.userSeq = max(s.userSeq, u.ID)
	}
	roles := make([]Role, len(seed.Roles))
	for i, r := range seed.Roles {
		roles[i] = r.clone()
		s.roleSeq = max(s.roleSeq, r.ID)
	}

	s.users.Store(newSnapshot(s.epoch, CollectionUsers, 0, users))
	s.roles.Store(newSnapshot(s.epoch, CollectionRoles, 0, roles))
	return s, nil
}

// NewDefault builds a store holding DefaultSeed.
func NewDefault() *Store {
	s, err := New(DefaultSeed())
	if err != nil {
		panic(err)
	}
	return s
}

// Epoch is the random identifier minted when the store was created.
func (s *Store) Epoch() string { return s.epoch }

// Users returns the current user snapshot.
func (s *Store) Users() *Snapshot[User] { return s.users.Load() }

// Roles returns the current role snapshot.
func (s *Store) Roles() *Snapshot[Role] { return s.roles.Load() }

// AddUser appends a new Active user built from in and returns it.
func (s *Store) AddUser(in UserInput) User {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.userSeq++
	u := User{
		ID:     s.userSeq,
		Name:   in.Name,
		Email:  in.Email,
		Role:   in.Role,
		Status: StatusActive,
	}
	cur := s.users.Load()
	s.publishUsers(cur.appendItem(u), OpAdd, u.ID)
	return u
}

// EditUser replaces, in place, the user whose id matches u.ID.
// It reports false and changes nothing when no user matches.
func (s *Store) EditUser(u User) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	cur := s.users.Load()
	i := cur.index(u.ID)
	if i < 0 {
		return false
	}
	s.publishUsers(cur.replace(i, u), OpEdit, u.ID)
	return true
}

// EditUserIf is EditUser guarded by tag: it fails with ErrStale, changing
// nothing, unless tag names the current user snapshot.
func (s *Store) EditUserIf(u User, tag string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cur := s.users.Load()
	if cur.Tag() != tag {
		return ErrStale
	}
	i := cur.index(u.ID)
	if i < 0 {
		return ErrNotFound
	}
	s.publishUsers(cur.replace(i, u), OpEdit, u.ID)
	return nil
}

// DeleteUser removes every user with the given id and returns how many went.
func (s *Store) DeleteUser(id int64) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	cur := s.users.Load()
	next, removed := cur.without(id)
	if removed == 0 {
		return 0
	}
	s.publishUsers(next, OpDelete, id)
	return removed
}

// AddRole appends a new role built from in and returns it.
func (s *Store) AddRole(in RoleInput) Role {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.roleSeq++
	r := Role{
		ID:          s.roleSeq,
		Name:        in.Name,
		Permissions: clonePermissions(in.Permissions),
	}
	cur := s.roles.Load()
	s.publishRoles(cur.appendItem(r), OpAdd, r.ID)
	return r.clone()
}

// EditRole replaces, in place, the role whose id matches r.ID.
// It reports false and changes nothing when no role matches.
func (s *Store) EditRole(r Role) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	cur := s.roles.Load()
	i := cur.index(r.ID)
	if i < 0 {
		return false
	}
	s.publishRoles(cur.replace(i, r.clone()), OpEdit, r.ID)
	return true
}

// EditRoleIf is EditRole guarded by the role snapshot tag.
func (s *Store) EditRoleIf(r Role, tag string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cur := s.roles.Load()
	if cur.Tag() != tag {
		return ErrStale
	}
	i := cur.index(r.ID)
	if i < 0 {
		return ErrNotFound
	}
	s.publishRoles(cur.replace(i, r.clone()), OpEdit, r.ID)
	return nil
}

// RoleDefined reports whether some role carries exactly this name.
func (s *Store) RoleDefined(name string) bool {
	snap := s.roles.Load()
	for _, r := range snap.items {
		if r.Name == name {
			return true
		}
	}
	return false
}

// Subscribe registers fn for every subsequent mutation. The returned func
// removes the subscription; calling it twice is harmless. It must not be
// called from inside an Observer.
func (s *Store) Subscribe(fn Observer) (cancel func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextObs
	s.nextObs++
	s.observers = append(s.observers, subscription{id: id, fn: fn})

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			defer s.mu.Unlock()
			s.observers = slices.DeleteFunc(slices.Clone(s.observers), func(sub subscription) bool {
				return sub.id == id
			})
		})
	}
}

// publishUsers and publishRoles must be called with mu held.
func (s *Store) publishUsers(items []User, op Op, id int64) {
	snap := newSnapshot(s.epoch, CollectionUsers, s.users.Load().version+1, items)
	s.users.Store(snap)
	s.notify(Event{Collection: CollectionUsers, Op: op, ID: id, Version: snap.version})
}

func (s *Store) publishRoles(items []Role, op Op, id int64) {
	snap := newSnapshot(s.epoch, CollectionRoles, s.roles.Load().version+1, items)
	s.roles.Store(snap)
	s.notify(Event{Collection: CollectionRoles, Op: op, ID: id, Version: snap.version})
}

func (s *Store) notify(ev Event) {
	for _, sub := range s.observers {
		sub.fn(ev)
	}
}

func checkUnique[T record[T]](items []T) error {
	seen := make(map[int64]struct{}, len(items))
	for _, it := range items {
		if _, dup := seen[it.key()]; dup {
			return fmt.Errorf("%w: %d", ErrDuplicateID, it.key())
		}
		seen[it.key()] = struct{}{}
	}
	return nil
}
