//go:build wireinject

package api

import (
	"github.com/google/wire"
	"github/orbitpulse/orbit-gateway/internal/config"
	"github/orbitpulse/orbit-gateway/internal/metrics"
)

// INJECTORS - https://github.com/google/wire/blob/main/docs/guide.md#injectors

// serviceSet groups the default set of providers that are required for initing a server
var serviceSet = wire.NewSet(
	newServerWithComponents,
	NewRegistry,
	NewResolver,
	NewStatus,
	metrics.New,
)

// InitNewServer returns a new Server instance.
func InitNewServer(
	cfg config.Server,
) (*Server, error) {
	wire.Build(serviceSet)
	return new(Server), nil
}
