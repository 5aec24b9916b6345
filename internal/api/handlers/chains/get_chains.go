package chains

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github/orbitpulse/orbit-gateway/internal/api"
	"github/orbitpulse/orbit-gateway/internal/chains"
	"github/orbitpulse/orbit-gateway/internal/util"
)

type GetChainsResponse struct {
	Count  int             `json:"count"`
	Chains []chains.Record `json:"chains"`
}

func GetChainsRoute(s *api.Server) *echo.Route {
	return s.Router.APIV1Chains.GET("", getChainsHandler(s))
}

func getChainsHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		log := util.LogFromContext(ctx)

		records, err := s.Registry.All(ctx)
		if err != nil {
			log.Debug().Err(err).Msg("Failed to load chain catalog")
			return err
		}

		response := &GetChainsResponse{
			Count:  len(records),
			Chains: records,
		}

		return c.JSON(http.StatusOK, response)
	}
}
