package directory

import "strconv"

// record is implemented by the entities held in a Snapshot.
type record[T any] interface {
	key() int64
	clone() T
}

// Snapshot is an immutable view of one collection at a given version.
// A mutation never touches a published Snapshot; it publishes a new one.
type Snapshot[T record[T]] struct {
	epoch      string
	collection Collection
	version    uint64
	items      []T
}

func newSnapshot[T record[T]](epoch string, c Collection, version uint64, items []T) *Snapshot[T] {
	return &Snapshot[T]{epoch: epoch, collection: c, version: version, items: items}
}

// Version increases by one with every successful mutation of the collection.
func (s *Snapshot[T]) Version() uint64 { return s.version }

// Tag identifies the snapshot across store instances and collections:
// "<epoch>.<collection>.<version>".
func (s *Snapshot[T]) Tag() string {
	return s.epoch + "." + string(s.collection) + "." + strconv.FormatUint(s.version, 10)
}

// Len returns the number of entries.
func (s *Snapshot[T]) Len() int { return len(s.items) }

// Items returns a deep copy of the entries in collection order.
func (s *Snapshot[T]) Items() []T {
	out := make([]T, len(s.items))
	for i, it := range s.items {
		out[i] = it.clone()
	}
	return out
}

// At returns a copy of the entry at position i.
func (s *Snapshot[T]) At(i int) T { return s.items[i].clone() }

// Get returns the first entry with the given id.
func (s *Snapshot[T]) Get(id int64) (T, bool) {
	if i := s.index(id); i >= 0 {
		return s.items[i].clone(), true
	}
	var zero T
	return zero, false
}

func (s *Snapshot[T]) index(id int64) int {
	for i, it := range s.items {
		if it.key() == id {
			return i
		}
	}
	return -1
}

// replace returns the entries with position i swapped for v, leaving s untouched.
func (s *Snapshot[T]) replace(i int, v T) []T {
	next := make([]T, len(s.items))
	copy(next, s.items)
	next[i] = v
	return next
}

// appendItem returns the entries plus v, leaving s untouched.
func (s *Snapshot[T]) appendItem(v T) []T {
	next := make([]T, len(s.items), len(s.items)+1)
	copy(next, s.items)
	return append(next, v)
}

// without returns the entries whose id differs from id and how many were dropped.
func (s *Snapshot[T]) without(id int64) ([]T, int) {
	next := make([]T, 0, len(s.items))
	for _, it := range s.items {
		if it.key() != id {
			next = append(next, it)
		}
	}
	return next, len(s.items) - len(next)
}
