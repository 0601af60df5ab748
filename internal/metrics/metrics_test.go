package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dropDatabas3/rbacconsole/internal/directory"
)

func TestDirectory_CountsMutations(t *testing.T) {
	reg := prometheus.NewRegistry()
	store := directory.NewDefault()
	d, err := NewDirectory(reg, store)
	require.NoError(t, err)
	defer store.Subscribe(d.Observe)()

	u := store.AddUser(directory.UserInput{Name: "Kim"})
	store.DeleteUser(u.ID)
	store.DeleteUser(999)
	store.AddRole(directory.RoleInput{Name: "Auditor"})

	assert.Equal(t, 1.0, testutil.ToFloat64(d.mutations.WithLabelValues("users", "add")))
	assert.Equal(t, 1.0, testutil.ToFloat64(d.mutations.WithLabelValues("users", "delete")))
	assert.Equal(t, 1.0, testutil.ToFloat64(d.mutations.WithLabelValues("roles", "add")))

	d.SearchHit()
	d.SearchMiss()
	d.SearchMiss()
	assert.Equal(t, 1.0, testutil.ToFloat64(d.searches.WithLabelValues("hit")))
	assert.Equal(t, 2.0, testutil.ToFloat64(d.searches.WithLabelValues("miss")))
}

func TestDirectory_SnapshotGauges(t *testing.T) {
	reg := prometheus.NewRegistry()
	store := directory.NewDefault()
	_, err := NewDirectory(reg, store)
	require.NoError(t, err)

	store.AddRole(directory.RoleInput{Name: "Auditor"})

	expected := `
# HELP rbac_directory_entries Entries in the current snapshot.
# TYPE rbac_directory_entries gauge
rbac_directory_entries{collection="roles"} 3
rbac_directory_entries{collection="users"} 2
`
	require.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected), "rbac_directory_entries"))
}

func TestDirectory_RegisterTwice(t *testing.T) {
	reg := prometheus.NewRegistry()
	store := directory.NewDefault()
	_, err := NewDirectory(reg, store)
	require.NoError(t, err)
	a, err := NewHTTP(reg)
	require.NoError(t, err)
	b, err := NewHTTP(reg)
	require.NoError(t, err)

	b.requests.WithLabelValues("GET", "/", "200").Inc()
	assert.Equal(t, 1.0, testutil.ToFloat64(a.requests.WithLabelValues("GET", "/", "200")))
}

func TestHTTP_Wrap(t *testing.T) {
	reg := prometheus.NewRegistry()
	m, err := NewHTTP(reg)
	require.NoError(t, err)

	h := m.Wrap(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasSuffix(r.URL.Path, "/404") {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		_, _ = w.Write([]byte("ok"))
	}))

	for _, p := range []string{"/v1/admin/users/1", "/v1/admin/users/2", "/v1/admin/users/404"} {
		h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, p, nil))
	}

	assert.Equal(t, 2.0, testutil.ToFloat64(m.requests.WithLabelValues("GET", "/v1/admin/users/:id", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.requests.WithLabelValues("GET", "/v1/admin/users/:id", "404")))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.inflight.WithLabelValues("GET", "/v1/admin/users/:id")))
}

func TestHTTP_NilWrapIsPassthrough(t *testing.T) {
	var m *HTTP
	called := false
	h := m.Wrap(http.HandlerFunc(func(http.ResponseWriter, *http.Request) { called = true }))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	assert.True(t, called)
}

func TestNormalizePath(t *testing.T) {
	assert.Equal(t, "/", NormalizePath(""))
	assert.Equal(t, "/healthz", NormalizePath("/healthz"))
	assert.Equal(t, "/v1/admin/users", NormalizePath("/v1/admin/users?q=jo"))
	assert.Equal(t, "/v1/admin/roles/:id", NormalizePath("/v1/admin/roles/17/"))
}
