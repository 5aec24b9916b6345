package chains

import (
	"net/http"

	"github.com/go-openapi/swag"
	"github.com/labstack/echo/v4"
	"github/orbitpulse/orbit-gateway/internal/api/httperrors"
)

// requireChainParam reads the mandatory "chain" query parameter.
func requireChainParam(c echo.Context) (string, error) {
	chain := c.QueryParam("chain")
	if chain == "" {
		return "", httperrors.NewHTTPValidationError(
			http.StatusBadRequest,
			httperrors.TypeGeneric,
			"Missing required query parameter",
			[]*httperrors.HTTPValidationErrorDetail{
				{
					Key:   swag.String("chain"),
					In:    swag.String("query"),
					Error: swag.String("required"),
				},
			},
		)
	}

	return chain, nil
}
