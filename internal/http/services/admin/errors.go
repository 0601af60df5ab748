package admin

import "github.com/dropDatabas3/rbacconsole/internal/directory"

// ErrStale reports an If-Match tag that no longer names the current snapshot.
var ErrStale = directory.ErrStale
