// Package router assembles the admin API on a chi router.
package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/dropDatabas3/rbacconsole/internal/http/controllers/admin"
	"github.com/dropDatabas3/rbacconsole/internal/http/controllers/health"
	httperrors "github.com/dropDatabas3/rbacconsole/internal/http/errors"
	mw "github.com/dropDatabas3/rbacconsole/internal/http/middlewares"
	"github.com/dropDatabas3/rbacconsole/internal/metrics"
	"github.com/dropDatabas3/rbacconsole/internal/rate"
)

// Deps are the collaborators of the router. Zero values disable the
// optional parts: no metrics, no CORS, no admin key, no rate limit.
type Deps struct {
	Admin  *admin.Controllers
	Health *health.Controller
	Logger *zap.Logger

	HTTPMetrics    *metrics.HTTP
	MetricsHandler http.Handler
	MetricsPath    string

	CORSAllowedOrigins []string
	AdminAPIKey        string
	RateLimiter        rate.Limiter
}

// New returns the root handler.
func New(d Deps) http.Handler {
	r := chi.NewRouter()
	r.Use(
		mw.WithRequestID(),
		mw.WithLogging(d.Logger),
		d.HTTPMetrics.Wrap,
		mw.WithRecover(),
		mw.WithCORS(d.CORSAllowedOrigins),
	)

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		httperrors.WriteError(w, httperrors.ErrRouteNotFound)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		httperrors.WriteError(w, httperrors.ErrMethodNotAllowed)
	})

	if d.Health != nil {
		r.Get("/healthz", d.Health.Healthz)
		r.Get("/readyz", d.Health.Readyz)
	}
	if d.MetricsHandler != nil {
		path := d.MetricsPath
		if path == "" {
			path = "/metrics"
		}
		r.Method(http.MethodGet, path, d.MetricsHandler)
	}

	if d.Admin != nil {
		r.Route("/v1/admin", func(r chi.Router) {
			r.Use(mw.WithRateLimit(d.RateLimiter), mw.RequireAdminKey(d.AdminAPIKey), mw.WithNoStore())
			registerUsers(r, d.Admin.Users)
			registerRoles(r, d.Admin.Roles)
		})
	}
	return r
}

func registerUsers(r chi.Router, c *admin.UsersController) {
	r.Get("/users", c.List)
	r.Post("/users", c.Create)
	r.Get("/users/{id}", c.Get)
	r.Put("/users/{id}", c.Update)
	r.Delete("/users/{id}", c.Delete)
}

// Roles have no delete route.
func registerRoles(r chi.Router, c *admin.RolesController) {
	r.Get("/roles", c.List)
	r.Post("/roles", c.Create)
	r.Get("/roles/{id}", c.Get)
	r.Put("/roles/{id}", c.Update)
}
