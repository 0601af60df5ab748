package server

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/dropDatabas3/rbacconsole/internal/config"
)

func TestBuild_Defaults(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	app, err := Build(config.Default(), Options{Logger: zap.New(core)})
	require.NoError(t, err)
	defer app.Close()

	assert.Equal(t, "memory", app.Cache.Driver())

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/v1/admin/users", strings.NewReader(`{"name":"Kim","email":"kim@example.com","role":"Admin"}`))
	app.Handler.ServeHTTP(rr, req)
	require.Equal(t, http.StatusCreated, rr.Code)

	assert.Equal(t, 1, logs.FilterLoggerName("audit").Len())

	rr = httptest.NewRecorder()
	app.Handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Contains(t, rr.Body.String(), "rbac_directory_mutations_total")
}

func TestBuild_SeedFileAndNoMetrics(t *testing.T) {
	p := filepath.Join(t.TempDir(), "seed.yaml")
	require.NoError(t, os.WriteFile(p, []byte("users:\n  - {id: 10, name: Ana, email: ana@x.io, role: Ops}\nroles: []\n"), 0o600))

	cfg := config.Default()
	cfg.Seed.Path = p
	cfg.Metrics.Enabled = false

	app, err := Build(cfg, Options{Logger: zap.NewNop()})
	require.NoError(t, err)
	defer app.Close()

	assert.Equal(t, 1, app.Store.Users().Len())
	assert.Equal(t, 0, app.Store.Roles().Len())

	rr := httptest.NewRecorder()
	app.Handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestBuild_BadSeed(t *testing.T) {
	cfg := config.Default()
	cfg.Seed.Path = filepath.Join(t.TempDir(), "missing.yaml")
	_, err := Build(cfg, Options{Logger: zap.NewNop()})
	assert.ErrorContains(t, err, "load seed")
}

func TestBuild_RateLimit(t *testing.T) {
	cfg := config.Default()
	cfg.Server.RateLimit.Requests = 1

	app, err := Build(cfg, Options{Logger: zap.NewNop()})
	require.NoError(t, err)
	defer app.Close()

	rr := httptest.NewRecorder()
	app.Handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/v1/admin/roles", nil))
	require.Equal(t, http.StatusOK, rr.Code)

	rr = httptest.NewRecorder()
	app.Handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/v1/admin/roles", nil))
	assert.Equal(t, http.StatusTooManyRequests, rr.Code)

	// health probes are not limited
	rr = httptest.NewRecorder()
	app.Handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, rr.Code)
}
