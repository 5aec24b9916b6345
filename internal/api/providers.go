package api

import (
	"github/orbitpulse/orbit-gateway/internal/chains/registry"
	"github/orbitpulse/orbit-gateway/internal/chains/resolver"
	"github/orbitpulse/orbit-gateway/internal/chains/status"
	"github/orbitpulse/orbit-gateway/internal/config"
	"github/orbitpulse/orbit-gateway/internal/metrics"
)

// PROVIDERS - the functions wire assembles the Server from.

//nolint:ireturn
func NewRegistry(cfg config.Server, m *metrics.Service) (RegistryService, error) {
	return registry.New(cfg, m)
}

//nolint:ireturn
func NewResolver(reg RegistryService) ResolverService {
	return resolver.New(reg)
}

//nolint:ireturn
func NewStatus(cfg config.Server, reg RegistryService, res ResolverService, m *metrics.Service) StatusService {
	return status.New(cfg, reg, res, m)
}
