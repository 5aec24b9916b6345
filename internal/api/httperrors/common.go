package httperrors

import (
	"net/http"
)

var (
	ErrBadRequestMalformedAddress = NewHTTPError(http.StatusBadRequest, TypeMalformedInput, "Address must be a 0x-prefixed 20 byte hex string.")
	ErrBadRequestMalformedTxHash  = NewHTTPError(http.StatusBadRequest, TypeMalformedInput, "Transaction hash must be a 0x-prefixed 32 byte hex string.")
	ErrServiceUnavailableCatalog  = NewHTTPError(http.StatusServiceUnavailable, TypeCatalogUnavailable, "Chain catalog could not be loaded.")
	ErrBadGatewayEndpoint         = NewHTTPError(http.StatusBadGateway, TypeEndpointUnreachable, "Upstream RPC endpoint could not be reached.")
)
