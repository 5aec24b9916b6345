package router

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github/orbitpulse/orbit-gateway/internal/api/httperrors"
	"github/orbitpulse/orbit-gateway/internal/chains"
	"github/orbitpulse/orbit-gateway/internal/util"
)

// errorHandler maps errors escaping handlers to the public JSON error
// envelope.
func errorHandler(hideInternalServerErrorDetails bool) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		var code int
		var payload interface{}

		var validationErr *httperrors.HTTPValidationError
		var httpErr *httperrors.HTTPError
		var echoErr *echo.HTTPError

		switch {
		case errors.As(err, &validationErr):
			code = validationErr.Code
			payload = validationErr
		case errors.As(err, &httpErr):
			code = httpErr.Code
			payload = httpErr
		case errors.Is(err, chains.ErrCatalogUnavailable):
			e := *httperrors.ErrServiceUnavailableCatalog
			if !hideInternalServerErrorDetails {
				e.Detail = err.Error()
			}
			code = e.Code
			payload = &e
		case errors.As(err, &echoErr):
			code = echoErr.Code
			payload = httperrors.NewHTTPError(code, httperrors.TypeGeneric, fmt.Sprintf("%v", echoErr.Message))
		default:
			code = http.StatusInternalServerError
			if hideInternalServerErrorDetails {
				payload = httperrors.NewHTTPError(code, httperrors.TypeGeneric, http.StatusText(code))
			} else {
				payload = httperrors.NewHTTPErrorWithDetail(code, httperrors.TypeGeneric, http.StatusText(code), err.Error())
			}
		}

		if jsonErr := c.JSON(code, payload); jsonErr != nil {
			util.LogFromEchoContext(c).Error().Err(jsonErr).Msg("Failed to write error response")
		}
	}
}
