// Package rate implements a fixed-window request limiter on top of the
// shared cache, so every console instance pointed at the same Redis shares
// one budget per key.
package rate

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/dropDatabas3/rbacconsole/internal/cache"
)

type Result struct {
	Allowed     bool
	Remaining   int64
	RetryAfter  time.Duration
	CurrentHits int64
}

type Limiter interface {
	Allow(ctx context.Context, key string) (Result, error)
}

// Window: fixed window sencillo, Max hits por key en cada ventana alineada.
type Window struct {
	Counter cache.Client
	Max     int64
	Window  time.Duration

	now func() time.Time
}

func NewWindow(c cache.Client, max int, window time.Duration) *Window {
	return &Window{Counter: c, Max: int64(max), Window: window, now: time.Now}
}

func (l *Window) Allow(ctx context.Context, key string) (Result, error) {
	now := l.now().UTC()
	start := now.Truncate(l.Window)
	k := fmt.Sprintf("rl:%s:%d", strings.ReplaceAll(key, " ", "_"), start.Unix())

	hits, err := l.Counter.Incr(ctx, k, l.Window)
	if err != nil {
		return Result{}, err
	}

	res := Result{
		Allowed:     hits <= l.Max,
		Remaining:   max(l.Max-hits, 0),
		CurrentHits: hits,
	}
	if !res.Allowed {
		res.RetryAfter = start.Add(l.Window).Sub(now)
		if res.RetryAfter <= 0 {
			res.RetryAfter = time.Second
		}
	}
	return res, nil
}
