package chains_test

import (
	"net/http"
	"testing"

	"github.com/go-openapi/swag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github/orbitpulse/orbit-gateway/internal/api"
	"github/orbitpulse/orbit-gateway/internal/api/httperrors"
	"github/orbitpulse/orbit-gateway/internal/chains/status"
	"github/orbitpulse/orbit-gateway/internal/config"
	"github/orbitpulse/orbit-gateway/internal/test"
)

// TestGetChainsStatus drives the aggregation against unreachable
// upstreams, the report must still come back complete with 200.
func TestGetChainsStatus(t *testing.T) {
	child := test.StartRPCNode(t)
	parent := test.StartRPCNode(t)
	child.Close()
	parent.Close()

	doc := test.DefaultCatalogDocument()
	doc.Mainnet[0].RPCURL = child.URL()
	catalog := test.StartCatalogServer(t, doc)

	cfg := config.DefaultServiceConfigFromEnv()
	cfg.Echo.ListenAddress = ":0"
	cfg.Catalog.URL = catalog.URL()
	cfg.RPC.ParentChainURLs = map[int64]string{42161: parent.URL()}

	test.WithTestServerConfigurable(t, cfg, func(s *api.Server) {
		res := test.PerformRequest(t, s, "GET", "/api/v1/chains/status?chain=xai", nil, nil)
		require.Equal(t, http.StatusOK, res.Result().StatusCode)

		var report status.Report
		test.ParseResponseBody(t, res, &report)

		assert.Equal(t, "Xai", report.Chain.Name)
		assert.Equal(t, int64(660279), report.Chain.ChainID)
		assert.Equal(t, "resolved", report.Chain.Resolution)

		assert.Equal(t, "Unknown", report.ArbOSVersion)
		assert.NotEmpty(t, report.BatchPosting.Error)
		assert.Equal(t, "0", report.BatchPosting.BacklogSize)
		assert.NotEmpty(t, report.Assertions.Error)
		assert.Equal(t, "0.00", report.Gas.GasPriceGwei)
	})
}

func TestGetChainsStatusMissingParam(t *testing.T) {
	test.WithTestServer(t, func(s *api.Server) {
		res := test.PerformRequest(t, s, "GET", "/api/v1/chains/status", nil, nil)
		require.Equal(t, http.StatusBadRequest, res.Result().StatusCode)

		var response httperrors.HTTPValidationError
		test.ParseResponseBody(t, res, &response)

		require.Len(t, response.ValidationErrors, 1)
		assert.Equal(t, "chain", swag.StringValue(response.ValidationErrors[0].Key))
	})
}
