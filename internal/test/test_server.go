package test

import (
	"testing"

	"github/orbitpulse/orbit-gateway/internal/api"
	"github/orbitpulse/orbit-gateway/internal/api/router"
	"github/orbitpulse/orbit-gateway/internal/config"

	"github.com/stretchr/testify/require"
)

// WithTestServer creates a fully wired server backed by a local catalog
// fixture and calls the closure with it.
func WithTestServer(t *testing.T, closure func(s *api.Server)) {
	t.Helper()

	WithTestServerConfigurable(t, DefaultTestServerConfig(t), closure)
}

// WithTestServerConfigurable creates a server from the given config and
// calls the closure with it.
func WithTestServerConfigurable(t *testing.T, cfg config.Server, closure func(s *api.Server)) {
	t.Helper()

	s, err := api.InitNewServer(cfg)
	require.NoError(t, err)

	router.Init(s)

	closure(s)
}

// DefaultTestServerConfig returns the service config pointed at a fresh
// catalog fixture server.
func DefaultTestServerConfig(t *testing.T) config.Server {
	t.Helper()

	catalog := StartCatalogServer(t, DefaultCatalogDocument())

	cfg := config.DefaultServiceConfigFromEnv()
	cfg.Echo.ListenAddress = ":0"
	cfg.Catalog.URL = catalog.URL()

	return cfg
}
