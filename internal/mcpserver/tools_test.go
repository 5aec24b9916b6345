package mcpserver_test

import (
	"encoding/json"
	"math/big"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/mark3labs/mcp-go/server"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github/orbitpulse/orbit-gateway/internal/api"
	"github/orbitpulse/orbit-gateway/internal/chains"
	"github/orbitpulse/orbit-gateway/internal/config"
	"github/orbitpulse/orbit-gateway/internal/mcpserver"
	"github/orbitpulse/orbit-gateway/internal/test"
)

type toolCallResponse struct {
	Result struct {
		Content []struct {
			Type string `json:"type"`
			Text string `json:"text"`
		} `json:"content"`
		IsError bool `json:"isError"`
	} `json:"result"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// callTool drives a tools/call request through the server without a
// transport attached.
func callTool(t *testing.T, srv *server.MCPServer, tool string, args map[string]interface{}) toolCallResponse {
	t.Helper()

	request, err := json.Marshal(map[string]interface{}{
		"jsonrpc": "2.0",
		"id":      1,
		"method":  "tools/call",
		"params": map[string]interface{}{
			"name":      tool,
			"arguments": args,
		},
	})
	require.NoError(t, err)

	raw := srv.HandleMessage(t.Context(), request)
	require.NotNil(t, raw)

	b, err := json.Marshal(raw)
	require.NoError(t, err)

	var response toolCallResponse
	require.NoError(t, json.Unmarshal(b, &response))

	return response
}

// toolText returns the text payload of a successful tool result.
func toolText(t *testing.T, response toolCallResponse) string {
	t.Helper()

	require.Nil(t, response.Error)
	require.False(t, response.Result.IsError, "tool result is an error: %+v", response.Result.Content)
	require.NotEmpty(t, response.Result.Content)

	return response.Result.Content[0].Text
}

// toolErrorText returns the text payload of a failed tool result.
func toolErrorText(t *testing.T, response toolCallResponse) string {
	t.Helper()

	require.Nil(t, response.Error)
	require.True(t, response.Result.IsError, "expected tool error, got: %+v", response.Result.Content)
	require.NotEmpty(t, response.Result.Content)

	return response.Result.Content[0].Text
}

func TestToolCatalog(t *testing.T) {
	test.WithTestServer(t, func(s *api.Server) {
		srv := mcpserver.New(s)

		request, err := json.Marshal(map[string]interface{}{
			"jsonrpc": "2.0",
			"id":      1,
			"method":  "tools/list",
		})
		require.NoError(t, err)

		raw := srv.HandleMessage(t.Context(), request)
		require.NotNil(t, raw)

		b, err := json.Marshal(raw)
		require.NoError(t, err)

		var response struct {
			Result struct {
				Tools []struct {
					Name string `json:"name"`
				} `json:"tools"`
			} `json:"result"`
		}
		require.NoError(t, json.Unmarshal(b, &response))

		names := make([]string, 0, len(response.Result.Tools))
		for _, tool := range response.Result.Tools {
			names = append(names, tool.Name)
		}

		assert.Len(t, names, 15)
		assert.Contains(t, names, "list_chains")
		assert.Contains(t, names, "get_chain_status")
		assert.Contains(t, names, "get_balance")
		assert.Contains(t, names, "call_rpc_method")
	})
}

func TestListChains(t *testing.T) {
	test.WithTestServer(t, func(s *api.Server) {
		srv := mcpserver.New(s)

		response := callTool(t, srv, "list_chains", nil)

		var result struct {
			Count  int      `json:"count"`
			Chains []string `json:"chains"`
		}
		require.NoError(t, json.Unmarshal([]byte(toolText(t, response)), &result))

		assert.GreaterOrEqual(t, result.Count, 6)
		assert.Equal(t, "Arbitrum One", result.Chains[0])
	})
}

func TestSearchChains(t *testing.T) {
	test.WithTestServer(t, func(s *api.Server) {
		srv := mcpserver.New(s)

		response := callTool(t, srv, "search_chains", map[string]interface{}{"query": "xai"})

		var result struct {
			Query  string          `json:"query"`
			Count  int             `json:"count"`
			Chains []chains.Record `json:"chains"`
		}
		require.NoError(t, json.Unmarshal([]byte(toolText(t, response)), &result))

		assert.Equal(t, "xai", result.Query)
		require.Equal(t, 2, result.Count)
		assert.Equal(t, "Xai", result.Chains[0].Name)
	})
}

func TestResolveChainURLPassthrough(t *testing.T) {
	test.WithTestServer(t, func(s *api.Server) {
		srv := mcpserver.New(s)

		response := callTool(t, srv, "resolve_chain", map[string]interface{}{"chain": "https://rpc.example.org"})

		var result struct {
			Kind   string `json:"kind"`
			RPCURL string `json:"rpcUrl"`
		}
		require.NoError(t, json.Unmarshal([]byte(toolText(t, response)), &result))

		assert.Equal(t, "resolved", result.Kind)
		assert.Equal(t, "https://rpc.example.org", result.RPCURL)
	})
}

func TestResolveChainUnknownFallsBack(t *testing.T) {
	test.WithTestServer(t, func(s *api.Server) {
		srv := mcpserver.New(s)

		response := callTool(t, srv, "resolve_chain", map[string]interface{}{"chain": "mystery-chain"})

		var result struct {
			Kind   string `json:"kind"`
			RPCURL string `json:"rpcUrl"`
		}
		require.NoError(t, json.Unmarshal([]byte(toolText(t, response)), &result))

		assert.Equal(t, "fallback", result.Kind)
		assert.Equal(t, "mystery-chain", result.RPCURL)
	})
}

func TestResolveChainMissingArgument(t *testing.T) {
	test.WithTestServer(t, func(s *api.Server) {
		srv := mcpserver.New(s)

		response := callTool(t, srv, "resolve_chain", nil)

		assert.Contains(t, toolErrorText(t, response), "chain")
	})
}

func TestGetBalance(t *testing.T) {
	test.WithTestServer(t, func(s *api.Server) {
		srv := mcpserver.New(s)

		node := test.StartRPCNode(t)
		node.HandleBalance(big.NewInt(1500000000000000000))

		response := callTool(t, srv, "get_balance", map[string]interface{}{
			"chain":   node.URL(),
			"address": "0x912CE59144191C1204E64559FE8253a0e49E6548",
		})

		var result struct {
			BalanceWei string `json:"balanceWei"`
			Balance    string `json:"balance"`
			Symbol     string `json:"symbol"`
		}
		require.NoError(t, json.Unmarshal([]byte(toolText(t, response)), &result))

		assert.Equal(t, "1500000000000000000", result.BalanceWei)
		assert.Equal(t, "1.5", result.Balance)
		assert.Equal(t, "ETH", result.Symbol)
	})
}

func TestGetBalanceMalformedAddress(t *testing.T) {
	test.WithTestServer(t, func(s *api.Server) {
		srv := mcpserver.New(s)

		response := callTool(t, srv, "get_balance", map[string]interface{}{
			"chain":   "xai",
			"address": "not-an-address",
		})

		assert.Contains(t, toolErrorText(t, response), "malformed address")
	})
}

func TestGetBlockNumber(t *testing.T) {
	test.WithTestServer(t, func(s *api.Server) {
		srv := mcpserver.New(s)

		node := test.StartRPCNode(t)
		node.HandleBlockNumber(12345)

		response := callTool(t, srv, "get_block_number", map[string]interface{}{"chain": node.URL()})

		var result struct {
			Chain       string `json:"chain"`
			BlockNumber uint64 `json:"blockNumber"`
		}
		require.NoError(t, json.Unmarshal([]byte(toolText(t, response)), &result))

		assert.Equal(t, node.URL(), result.Chain)
		assert.Equal(t, uint64(12345), result.BlockNumber)
	})
}

func TestGetSyncStatusSynced(t *testing.T) {
	test.WithTestServer(t, func(s *api.Server) {
		srv := mcpserver.New(s)

		node := test.StartRPCNode(t)
		node.HandleResult("eth_syncing", false)

		response := callTool(t, srv, "get_sync_status", map[string]interface{}{"chain": node.URL()})

		var result struct {
			Syncing bool            `json:"syncing"`
			Details json.RawMessage `json:"details"`
		}
		require.NoError(t, json.Unmarshal([]byte(toolText(t, response)), &result))

		assert.False(t, result.Syncing)
		assert.Empty(t, result.Details)
	})
}

func TestGetSyncStatusSyncing(t *testing.T) {
	test.WithTestServer(t, func(s *api.Server) {
		srv := mcpserver.New(s)

		node := test.StartRPCNode(t)
		node.HandleResult("eth_syncing", map[string]string{
			"currentBlock": "0x64",
			"highestBlock": "0xc8",
		})

		response := callTool(t, srv, "get_sync_status", map[string]interface{}{"chain": node.URL()})

		var result struct {
			Syncing bool `json:"syncing"`
			Details struct {
				CurrentBlock string `json:"currentBlock"`
			} `json:"details"`
		}
		require.NoError(t, json.Unmarshal([]byte(toolText(t, response)), &result))

		assert.True(t, result.Syncing)
		assert.Equal(t, "0x64", result.Details.CurrentBlock)
	})
}

func TestGetNodeHealthHealthy(t *testing.T) {
	test.WithTestServer(t, func(s *api.Server) {
		srv := mcpserver.New(s)

		node := test.StartRPCNode(t)
		node.HandleBlockNumber(1000)
		node.HandleHeader(test.NewTestHeader(1000, uint64(time.Now().Unix()-5)))
		node.HandleResult("eth_chainId", hexutil.Uint64(660279))
		node.HandleResult("eth_syncing", false)

		response := callTool(t, srv, "get_node_health", map[string]interface{}{"chain": node.URL()})

		var result struct {
			ChainID         int64  `json:"chainId"`
			Healthy         bool   `json:"healthy"`
			LatestBlock     uint64 `json:"latestBlock"`
			BlockAgeSeconds *int64 `json:"blockAgeSeconds"`
			Syncing         bool   `json:"syncing"`
		}
		require.NoError(t, json.Unmarshal([]byte(toolText(t, response)), &result))

		assert.True(t, result.Healthy)
		assert.Equal(t, int64(660279), result.ChainID)
		assert.Equal(t, uint64(1000), result.LatestBlock)
		require.NotNil(t, result.BlockAgeSeconds)
		assert.GreaterOrEqual(t, *result.BlockAgeSeconds, int64(5))
		assert.False(t, result.Syncing)
	})
}

// An unreachable node is a finding, not a tool failure.
func TestGetNodeHealthUnreachable(t *testing.T) {
	test.WithTestServer(t, func(s *api.Server) {
		srv := mcpserver.New(s)

		node := test.StartRPCNode(t)
		node.Close()

		response := callTool(t, srv, "get_node_health", map[string]interface{}{"chain": node.URL()})

		var result struct {
			Healthy bool   `json:"healthy"`
			Error   string `json:"error"`
		}
		require.NoError(t, json.Unmarshal([]byte(toolText(t, response)), &result))

		assert.False(t, result.Healthy)
		assert.NotEmpty(t, result.Error)
	})
}

func TestGetArbOSVersionReportsResolvedName(t *testing.T) {
	node := test.StartRPCNode(t)
	node.HandleResult("web3_clientVersion", "nitro/v3.1.2")

	doc := test.DefaultCatalogDocument()
	doc.Mainnet[0].RPCURL = node.URL()
	catalog := test.StartCatalogServer(t, doc)

	cfg := config.DefaultServiceConfigFromEnv()
	cfg.Echo.ListenAddress = ":0"
	cfg.Catalog.URL = catalog.URL()

	test.WithTestServerConfigurable(t, cfg, func(s *api.Server) {
		srv := mcpserver.New(s)

		response := callTool(t, srv, "get_arbos_version", map[string]interface{}{"chain": "xai"})

		var result struct {
			Chain        string `json:"chain"`
			ArbOSVersion string `json:"arbosVersion"`
		}
		require.NoError(t, json.Unmarshal([]byte(toolText(t, response)), &result))

		// the catalog name, not the raw identifier input
		assert.Equal(t, "Xai", result.Chain)
		assert.Equal(t, "nitro/v3.1.2", result.ArbOSVersion)
	})
}

func TestGetPeers(t *testing.T) {
	test.WithTestServer(t, func(s *api.Server) {
		srv := mcpserver.New(s)

		node := test.StartRPCNode(t)
		node.HandleResult("admin_peers", []map[string]string{
			{"id": "peer-1"},
			{"id": "peer-2"},
		})

		response := callTool(t, srv, "get_peers", map[string]interface{}{"chain": node.URL()})

		var result struct {
			PeerCount int `json:"peerCount"`
		}
		require.NoError(t, json.Unmarshal([]byte(toolText(t, response)), &result))

		assert.Equal(t, 2, result.PeerCount)
	})
}

func TestGetPeersUnsupported(t *testing.T) {
	test.WithTestServer(t, func(s *api.Server) {
		srv := mcpserver.New(s)

		node := test.StartRPCNode(t)

		response := callTool(t, srv, "get_peers", map[string]interface{}{"chain": node.URL()})

		assert.Contains(t, toolErrorText(t, response), "admin_peers is not exposed")
	})
}

func TestTraceTransactionMalformedHash(t *testing.T) {
	test.WithTestServer(t, func(s *api.Server) {
		srv := mcpserver.New(s)

		response := callTool(t, srv, "trace_transaction", map[string]interface{}{
			"chain":  "xai",
			"txHash": "0x123",
		})

		assert.Contains(t, toolErrorText(t, response), "malformed transaction hash")
	})
}

func TestCallRPCMethod(t *testing.T) {
	test.WithTestServer(t, func(s *api.Server) {
		srv := mcpserver.New(s)

		node := test.StartRPCNode(t)
		node.HandleResult("web3_clientVersion", "nitro/v3.1.0")

		response := callTool(t, srv, "call_rpc_method", map[string]interface{}{
			"chain":  node.URL(),
			"method": "web3_clientVersion",
		})

		var result struct {
			Method string          `json:"method"`
			Result json.RawMessage `json:"result"`
		}
		require.NoError(t, json.Unmarshal([]byte(toolText(t, response)), &result))

		assert.Equal(t, "web3_clientVersion", result.Method)

		var version string
		require.NoError(t, json.Unmarshal(result.Result, &version))
		assert.Equal(t, "nitro/v3.1.0", version)
	})
}

func TestCallRPCMethodOutsideNamespaces(t *testing.T) {
	test.WithTestServer(t, func(s *api.Server) {
		srv := mcpserver.New(s)

		response := callTool(t, srv, "call_rpc_method", map[string]interface{}{
			"chain":  "xai",
			"method": "debug_traceCall",
		})

		assert.Contains(t, toolErrorText(t, response), "outside the allowed namespaces")
	})
}

func TestCallRPCMethodInvalidParams(t *testing.T) {
	test.WithTestServer(t, func(s *api.Server) {
		srv := mcpserver.New(s)

		node := test.StartRPCNode(t)

		response := callTool(t, srv, "call_rpc_method", map[string]interface{}{
			"chain":  node.URL(),
			"method": "eth_getBalance",
			"params": "{not-an-array}",
		})

		assert.Contains(t, toolErrorText(t, response), "params must be a JSON array")
	})
}
