// Package health serves the liveness and readiness probes.
package health

import (
	"context"
	"net/http"
	"time"

	"github.com/dropDatabas3/rbacconsole/internal/http/helpers"
	"github.com/dropDatabas3/rbacconsole/internal/observability/logger"
)

// Pinger is a dependency whose reachability gates readiness. cache.Client
// satisfies it.
type Pinger interface {
	Ping(ctx context.Context) error
	Driver() string
}

type Controller struct {
	cache Pinger
}

func NewController(cache Pinger) *Controller {
	return &Controller{cache: cache}
}

// Healthz handles GET /healthz.
func (c *Controller) Healthz(w http.ResponseWriter, _ *http.Request) {
	helpers.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Readyz handles GET /readyz. It reports 503 when the search cache is unreachable.
func (c *Controller) Readyz(w http.ResponseWriter, r *http.Request) {
	body := map[string]string{"status": "ok"}
	if c.cache == nil {
		helpers.WriteJSON(w, http.StatusOK, body)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	body["cache"] = c.cache.Driver()
	if err := c.cache.Ping(ctx); err != nil {
		logger.From(ctx).Warn("readiness check failed", logger.Component("health"), logger.Err(err))
		body["status"] = "degraded"
		helpers.WriteJSON(w, http.StatusServiceUnavailable, body)
		return
	}
	helpers.WriteJSON(w, http.StatusOK, body)
}
