package chains

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github/orbitpulse/orbit-gateway/internal/api"
	"github/orbitpulse/orbit-gateway/internal/util"
)

func GetChainsResolveRoute(s *api.Server) *echo.Route {
	return s.Router.APIV1Chains.GET("/resolve", getChainsResolveHandler(s))
}

func getChainsResolveHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		log := util.LogFromContext(ctx)

		chain, err := requireChainParam(c)
		if err != nil {
			return err
		}

		result, err := s.Resolver.Resolve(ctx, chain)
		if err != nil {
			log.Debug().Err(err).Str("chain", chain).Msg("Failed to resolve chain")
			return err
		}

		return c.JSON(http.StatusOK, result)
	}
}
