package main

import (
	"bytes"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/dropDatabas3/rbacconsole/internal/config"
	"github.com/dropDatabas3/rbacconsole/internal/http/server"
)

func startConsole(t *testing.T, key string) string {
	t.Helper()
	cfg := config.Default()
	cfg.Server.AdminAPIKey = key
	app, err := server.Build(cfg, server.Options{Logger: zap.NewNop()})
	require.NoError(t, err)
	srv := httptest.NewServer(app.Handler)
	t.Cleanup(func() {
		srv.Close()
		app.Close()
	})
	return srv.URL
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestUsers_AddEditDeleteList(t *testing.T) {
	url := startConsole(t, "")

	out, err := run(t, "--api-url", url, "users", "add", "--name", "Kim Lee", "--email", "kim@example.com", "--role", "Manager")
	require.NoError(t, err)
	assert.Contains(t, out, "3\tKim Lee\tkim@example.com\tManager\tActive")

	out, err = run(t, "--api-url", url, "users", "edit", "3", "--status", "Inactive")
	require.NoError(t, err)
	assert.Contains(t, out, "Kim Lee")
	assert.Contains(t, out, "Inactive")

	out, err = run(t, "--api-url", url, "--out", "json", "users", "list", "-q", "KIM")
	require.NoError(t, err)
	assert.Contains(t, out, `"email": "kim@example.com"`)
	assert.NotContains(t, out, "john@example.com")

	_, err = run(t, "--api-url", url, "users", "delete", "3")
	require.NoError(t, err)

	_, err = run(t, "--api-url", url, "users", "delete", "3")
	var apiErr *apiError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 404, apiErr.Status)
}

func TestRoles_AddEdit(t *testing.T) {
	url := startConsole(t, "")

	out, err := run(t, "--api-url", url, "roles", "add", "--name", "Auditor", "--perm", "Read", "--perm", "Export")
	require.NoError(t, err)
	assert.Contains(t, out, "3\tAuditor\tRead, Export")

	out, err = run(t, "--api-url", url, "roles", "edit", "3", "--perm", "Read")
	require.NoError(t, err)
	assert.Contains(t, out, "3\tAuditor\tRead\n")

	out, err = run(t, "--api-url", url, "roles", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "Full Access")
	assert.Contains(t, out, "Auditor")
}

func TestAPIKey(t *testing.T) {
	url := startConsole(t, "s3cret")

	_, err := run(t, "--api-url", url, "roles", "list")
	var apiErr *apiError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 401, apiErr.Status)

	_, err = run(t, "--api-url", url, "--api-key", "s3cret", "roles", "list")
	assert.NoError(t, err)
}

func TestBadInput(t *testing.T) {
	_, err := run(t, "--out", "xml", "roles", "list")
	assert.Error(t, err)

	_, err = run(t, "users", "delete", "abc")
	assert.Error(t, err)
}
