package common

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github/orbitpulse/orbit-gateway/internal/api"
	"github/orbitpulse/orbit-gateway/internal/util"
)

func GetReadyRoute(s *api.Server) *echo.Route {
	return s.Router.Management.GET("/ready", getReadyHandler(s))
}

// getReadyHandler reports ready once all components are initialized and
// the chain catalog is loadable. A stale but previously loaded catalog
// still counts as ready.
func getReadyHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		if !s.Ready() {
			return c.String(521, "Not ready.")
		}

		if err := s.Registry.EnsureFresh(c.Request().Context()); err != nil {
			util.LogFromEchoContext(c).Debug().Err(err).Msg("Chain catalog is not loadable")
			return c.String(521, "Not ready.")
		}

		return c.String(http.StatusOK, "Ready.")
	}
}
