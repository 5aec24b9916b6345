package chains

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github/orbitpulse/orbit-gateway/internal/api"
	"github/orbitpulse/orbit-gateway/internal/chains"
	"github/orbitpulse/orbit-gateway/internal/util"
)

type SearchChainsResponse struct {
	Query  string          `json:"query"`
	Count  int             `json:"count"`
	Chains []chains.Record `json:"chains"`
}

func GetChainsSearchRoute(s *api.Server) *echo.Route {
	return s.Router.APIV1Chains.GET("/search", getChainsSearchHandler(s))
}

func getChainsSearchHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		log := util.LogFromContext(ctx)

		query := c.QueryParam("q")

		records, err := s.Registry.Search(ctx, query)
		if err != nil {
			log.Debug().Err(err).Str("query", query).Msg("Failed to search chain catalog")
			return err
		}

		response := &SearchChainsResponse{
			Query:  query,
			Count:  len(records),
			Chains: records,
		}

		return c.JSON(http.StatusOK, response)
	}
}
