package chains

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github/orbitpulse/orbit-gateway/internal/api"
	"github/orbitpulse/orbit-gateway/internal/util"
)

func GetChainsStatusRoute(s *api.Server) *echo.Route {
	return s.Router.APIV1Chains.GET("/status", getChainsStatusHandler(s))
}

func getChainsStatusHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		log := util.LogFromContext(ctx)

		chain, err := requireChainParam(c)
		if err != nil {
			return err
		}

		report, err := s.Status.ChainStatus(ctx, chain)
		if err != nil {
			log.Debug().Err(err).Str("chain", chain).Msg("Failed to aggregate chain status")
			return err
		}

		return c.JSON(http.StatusOK, report)
	}
}
