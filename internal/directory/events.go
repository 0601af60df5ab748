package directory

// Collection names the collection an Event refers to.
type Collection string

const (
	CollectionUsers Collection = "users"
	CollectionRoles Collection = "roles"
)

// Op names the mutation an Event reports.
type Op string

const (
	OpAdd    Op = "add"
	OpEdit   Op = "edit"
	OpDelete Op = "delete"
)

// Event describes one successful mutation. Version is the version of the
// snapshot the mutation published.
type Event struct {
	Collection Collection
	Op         Op
	ID         int64
	Version    uint64
}

// Observer receives events synchronously, in mutation order, while the store
// write lock is held. It may read snapshots; it must not call mutating methods
// or the cancel func returned by Subscribe, both of which deadlock on that lock.
type Observer func(Event)
