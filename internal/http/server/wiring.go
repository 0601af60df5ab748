// Package server wires the directory, cache, metrics and admin API into one
// http.Handler.
package server

import (
	"fmt"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/dropDatabas3/rbacconsole/internal/audit"
	"github.com/dropDatabas3/rbacconsole/internal/cache"
	"github.com/dropDatabas3/rbacconsole/internal/config"
	"github.com/dropDatabas3/rbacconsole/internal/directory"
	"github.com/dropDatabas3/rbacconsole/internal/http/controllers/admin"
	"github.com/dropDatabas3/rbacconsole/internal/http/controllers/health"
	"github.com/dropDatabas3/rbacconsole/internal/http/router"
	svc "github.com/dropDatabas3/rbacconsole/internal/http/services/admin"
	"github.com/dropDatabas3/rbacconsole/internal/metrics"
	"github.com/dropDatabas3/rbacconsole/internal/observability/logger"
	"github.com/dropDatabas3/rbacconsole/internal/query"
	"github.com/dropDatabas3/rbacconsole/internal/rate"
)

// App is the wired console.
type App struct {
	Handler http.Handler
	Store   *directory.Store
	Cache   cache.Client

	cleanup []func()
}

// Options override collaborators Build would otherwise create.
type Options struct {
	// Registry receives all metrics. Default: a fresh registry.
	Registry *prometheus.Registry
	// Logger is the base request logger. Default: logger.L().
	Logger *zap.Logger
}

// Build assembles the console from cfg.
func Build(cfg *config.Config, opts Options) (*App, error) {
	log := opts.Logger
	if log == nil {
		log = logger.L()
	}
	reg := opts.Registry
	if reg == nil {
		reg = prometheus.NewRegistry()
	}

	seed, err := directory.LoadSeed(cfg.Seed.Path)
	if err != nil {
		return nil, fmt.Errorf("load seed: %w", err)
	}
	store, err := directory.New(seed)
	if err != nil {
		return nil, fmt.Errorf("build store: %w", err)
	}

	cc, err := cache.New(cache.Config{
		Driver:     cfg.Cache.Kind,
		Addr:       cfg.Cache.Redis.Addr,
		Password:   cfg.Cache.Redis.Password,
		DB:         cfg.Cache.Redis.DB,
		Prefix:     cfg.Cache.Redis.Prefix,
		DefaultTTL: cfg.CacheTTL(),
	})
	if err != nil {
		return nil, fmt.Errorf("build cache: %w", err)
	}

	app := &App{Store: store, Cache: cc}
	app.cleanup = append(app.cleanup, func() {
		if err := cc.Close(); err != nil {
			log.Warn("cache close failed", logger.Err(err))
		}
	})

	app.cleanup = append(app.cleanup, audit.New(log.Named("audit")).Attach(store))

	searchOpts := []query.SearcherOption{query.WithTTL(cfg.CacheTTL())}
	var (
		httpMetrics    *metrics.HTTP
		metricsHandler http.Handler
	)
	if cfg.Metrics.Enabled {
		dm, err := metrics.NewDirectory(reg, store)
		if err != nil {
			app.Close()
			return nil, fmt.Errorf("register directory metrics: %w", err)
		}
		app.cleanup = append(app.cleanup, store.Subscribe(dm.Observe))
		searchOpts = append(searchOpts, query.WithRecorder(dm))

		if httpMetrics, err = metrics.NewHTTP(reg); err != nil {
			app.Close()
			return nil, fmt.Errorf("register http metrics: %w", err)
		}
		metricsHandler = metrics.Handler(reg)
	}

	var limiter rate.Limiter
	if n := cfg.Server.RateLimit.Requests; n > 0 {
		limiter = rate.NewWindow(cc, n, cfg.RateLimitWindow())
	}

	services := svc.NewServices(svc.Deps{
		Store:    store,
		Searcher: query.NewSearcher(cc, searchOpts...),
	})

	app.Handler = router.New(router.Deps{
		Admin:              admin.NewControllers(services),
		Health:             health.NewController(cc),
		Logger:             log,
		HTTPMetrics:        httpMetrics,
		MetricsHandler:     metricsHandler,
		MetricsPath:        cfg.Metrics.Path,
		CORSAllowedOrigins: cfg.Server.CORSAllowedOrigins,
		AdminAPIKey:        cfg.Server.AdminAPIKey,
		RateLimiter:        limiter,
	})

	log.Info("console wired",
		logger.Component("server"),
		zap.String("cache", cc.Driver()),
		zap.Bool("metrics", cfg.Metrics.Enabled),
		zap.Bool("admin_key", cfg.Server.AdminAPIKey != ""),
		zap.Int("rate_limit", cfg.Server.RateLimit.Requests),
		logger.Count(store.Users().Len()+store.Roles().Len()),
	)
	return app, nil
}

// Close releases subscriptions and the cache, in reverse order.
func (a *App) Close() {
	for i := len(a.cleanup) - 1; i >= 0; i-- {
		a.cleanup[i]()
	}
	a.cleanup = nil
}
