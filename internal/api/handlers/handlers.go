package handlers

import (
	"github.com/labstack/echo/v4"
	"github/orbitpulse/orbit-gateway/internal/api"
	"github/orbitpulse/orbit-gateway/internal/api/handlers/chains"
	"github/orbitpulse/orbit-gateway/internal/api/handlers/common"
)

// AttachAllRoutes attaches all route handlers to their router groups.
func AttachAllRoutes(s *api.Server) {
	s.Router.Routes = []*echo.Route{
		chains.GetChainsRoute(s),
		chains.GetChainsResolveRoute(s),
		chains.GetChainsSearchRoute(s),
		chains.GetChainsStatusRoute(s),
		common.GetHealthyRoute(s),
		common.GetMetricsRoute(s),
		common.GetReadyRoute(s),
	}
}
