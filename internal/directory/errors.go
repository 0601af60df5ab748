package directory

import "errors"

var (
	// ErrNotFound reports that no entry carries the requested id.
	ErrNotFound = errors.New("directory: not found")

	// ErrDuplicateID reports a seed that repeats an id inside one collection.
	ErrDuplicateID = errors.New("directory: duplicate id")

	// ErrStale reports a tag that no longer names the current snapshot.
	ErrStale = errors.New("directory: collection changed")
)

// IsNotFound reports whether err is ErrNotFound.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
