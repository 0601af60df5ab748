package rate

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dropDatabas3/rbacconsole/internal/cache"
)

func TestWindow_Allow(t *testing.T) {
	ctx := context.Background()
	l := NewWindow(cache.NewMemory(cache.Config{}), 2, time.Minute)
	base := time.Date(2026, 1, 1, 10, 0, 15, 0, time.UTC)
	l.now = func() time.Time { return base }

	r, err := l.Allow(ctx, "10.0.0.1")
	require.NoError(t, err)
	assert.True(t, r.Allowed)
	assert.Equal(t, int64(1), r.Remaining)

	r, _ = l.Allow(ctx, "10.0.0.1")
	assert.True(t, r.Allowed)
	assert.Equal(t, int64(0), r.Remaining)

	r, _ = l.Allow(ctx, "10.0.0.1")
	assert.False(t, r.Allowed)
	assert.Equal(t, int64(3), r.CurrentHits)
	assert.Equal(t, 45*time.Second, r.RetryAfter)

	// other keys have their own budget
	r, _ = l.Allow(ctx, "10.0.0.2")
	assert.True(t, r.Allowed)

	// next slot
	l.now = func() time.Time { return base.Add(time.Minute) }
	r, _ = l.Allow(ctx, "10.0.0.1")
	assert.True(t, r.Allowed)
	assert.Equal(t, int64(1), r.CurrentHits)
}
