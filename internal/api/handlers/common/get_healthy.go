package common

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github/orbitpulse/orbit-gateway/internal/api"
)

func GetHealthyRoute(s *api.Server) *echo.Route {
	return s.Router.Management.GET("/healthy", getHealthyHandler(s))
}

// getHealthyHandler only reports whether the process serves requests.
// Upstream reachability is deliberately not part of liveness.
func getHealthyHandler(_ *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy.")
	}
}
