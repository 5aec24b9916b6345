package mcpserver

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"time"

	"github/orbitpulse/orbit-gateway/internal/chains"
	"github/orbitpulse/orbit-gateway/internal/chains/node"
	"github/orbitpulse/orbit-gateway/internal/util/eth"

	"github.com/ethereum/go-ethereum/common"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/pkg/errors"
)

// allowedMethodPrefixes are the RPC namespaces the raw call tool exposes.
var allowedMethodPrefixes = []string{
	"arb_",
	"admin_",
	"arbtrace_",
	"arbdebug_",
	"maintenance_",
	"timeboost_",
	"eth_",
	"web3_",
	"net_",
}

func (h *handler) registerRPCTools(srv *server.MCPServer) {
	srv.AddTool(mcp.NewTool("get_balance",
		mcp.WithDescription("Native currency balance of an address, in wei and formatted units."),
		chainArg("Chain name, slug or RPC URL."),
		mcp.WithString("address",
			mcp.Required(),
			mcp.Description("0x-prefixed 20 byte hex address."),
		),
	), h.instrument("get_balance", h.balance))

	srv.AddTool(mcp.NewTool("get_block_number",
		mcp.WithDescription("Latest block number of a chain."),
		chainArg("Chain name, slug or RPC URL."),
	), h.instrument("get_block_number", h.blockNumber))

	srv.AddTool(mcp.NewTool("get_sync_status",
		mcp.WithDescription("Sync status of a node, including the raw progress details while syncing."),
		chainArg("Chain name, slug or RPC URL."),
	), h.instrument("get_sync_status", h.syncStatus))

	srv.AddTool(mcp.NewTool("get_node_health",
		mcp.WithDescription("Node health probe: reachability, latest block age and sync state."),
		chainArg("Chain name, slug or RPC URL."),
	), h.instrument("get_node_health", h.nodeHealth))

	srv.AddTool(mcp.NewTool("get_peers",
		mcp.WithDescription("Peers connected to the node, requires the admin namespace."),
		chainArg("Chain name, slug or RPC URL."),
	), h.instrument("get_peers", h.peers))

	srv.AddTool(mcp.NewTool("trace_transaction",
		mcp.WithDescription("Trace a transaction through the arbtrace namespace."),
		chainArg("Chain name, slug or RPC URL."),
		mcp.WithString("txHash",
			mcp.Required(),
			mcp.Description("0x-prefixed 32 byte transaction hash."),
		),
	), h.instrument("trace_transaction", h.traceTransaction))

	srv.AddTool(mcp.NewTool("call_rpc_method",
		mcp.WithDescription("Call a raw JSON-RPC method within the allowed namespaces (arb_, admin_, arbtrace_, arbdebug_, maintenance_, timeboost_, eth_, web3_, net_)."),
		chainArg("Chain name, slug or RPC URL."),
		mcp.WithString("method",
			mcp.Required(),
			mcp.Description("JSON-RPC method name, e.g. arb_getL1Confirmations."),
		),
		mcp.WithString("params",
			mcp.Description("Positional parameters as a JSON array, e.g. [\"0xabc...\", true]."),
		),
	), h.instrument("call_rpc_method", h.callRPCMethod))
}

type balanceResult struct {
	Chain      string `json:"chain"`
	Address    string `json:"address"`
	BalanceWei string `json:"balanceWei"`
	Balance    string `json:"balance"`
	Symbol     string `json:"symbol"`
}

func (h *handler) balance(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	chain, err := request.RequireString("chain")
	if err != nil {
		return toolError(err), nil
	}

	address, err := request.RequireString("address")
	if err != nil {
		return toolError(err), nil
	}

	if !eth.IsAddress(address) {
		return toolError(errors.Wrapf(chains.ErrMalformedAddress, "%q", address)), nil
	}

	res, err := h.s.Resolver.Resolve(ctx, chain)
	if err != nil {
		return toolError(err), nil
	}

	ctx, cancel := context.WithTimeout(ctx, h.s.Config.RPC.RequestTimeout)
	defer cancel()

	client, err := node.Dial(ctx, res.RPCURL)
	if err != nil {
		return toolError(err), nil
	}
	defer client.Close()

	wei, err := client.BalanceAt(ctx, common.HexToAddress(address))
	if err != nil {
		return toolError(err), nil
	}

	return jsonResult(balanceResult{
		Chain:      res.DisplayName(),
		Address:    address,
		BalanceWei: wei.String(),
		Balance:    eth.FormatUnits(wei, res.Record.CurrencyDecimals()),
		Symbol:     res.Record.CurrencySymbol(),
	})
}

type blockNumberResult struct {
	Chain       string `json:"chain"`
	BlockNumber uint64 `json:"blockNumber"`
}

func (h *handler) blockNumber(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	chain, err := request.RequireString("chain")
	if err != nil {
		return toolError(err), nil
	}

	res, err := h.s.Resolver.Resolve(ctx, chain)
	if err != nil {
		return toolError(err), nil
	}

	ctx, cancel := context.WithTimeout(ctx, h.s.Config.RPC.RequestTimeout)
	defer cancel()

	client, err := node.Dial(ctx, res.RPCURL)
	if err != nil {
		return toolError(err), nil
	}
	defer client.Close()

	blockNumber, err := client.BlockNumber(ctx)
	if err != nil {
		return toolError(err), nil
	}

	return jsonResult(blockNumberResult{Chain: res.DisplayName(), BlockNumber: blockNumber})
}

type syncStatusResult struct {
	Chain   string          `json:"chain"`
	Syncing bool            `json:"syncing"`
	Details json.RawMessage `json:"details,omitempty"`
}

func (h *handler) syncStatus(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	chain, err := request.RequireString("chain")
	if err != nil {
		return toolError(err), nil
	}

	res, err := h.s.Resolver.Resolve(ctx, chain)
	if err != nil {
		return toolError(err), nil
	}

	ctx, cancel := context.WithTimeout(ctx, h.s.Config.RPC.RequestTimeout)
	defer cancel()

	client, err := node.Dial(ctx, res.RPCURL)
	if err != nil {
		return toolError(err), nil
	}
	defer client.Close()

	// eth_syncing returns false when synced and a progress object
	// otherwise, so the raw response is kept intact.
	var raw json.RawMessage
	if err := client.Call(ctx, &raw, "eth_syncing"); err != nil {
		return toolError(err), nil
	}

	result := syncStatusResult{Chain: res.DisplayName()}
	if !bytes.Equal(raw, []byte("false")) {
		result.Syncing = true
		result.Details = raw
	}

	return jsonResult(result)
}

type nodeHealthResult struct {
	Chain           string `json:"chain"`
	ChainID         int64  `json:"chainId,omitempty"`
	Healthy         bool   `json:"healthy"`
	LatestBlock     uint64 `json:"latestBlock,omitempty"`
	BlockAgeSeconds *int64 `json:"blockAgeSeconds,omitempty"`
	Syncing         bool   `json:"syncing"`
	Error           string `json:"error,omitempty"`
}

func (h *handler) nodeHealth(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	chain, err := request.RequireString("chain")
	if err != nil {
		return toolError(err), nil
	}

	res, err := h.s.Resolver.Resolve(ctx, chain)
	if err != nil {
		return toolError(err), nil
	}

	ctx, cancel := context.WithTimeout(ctx, h.s.Config.RPC.RequestTimeout)
	defer cancel()

	result := nodeHealthResult{Chain: res.DisplayName()}

	client, err := node.Dial(ctx, res.RPCURL)
	if err != nil {
		result.Error = err.Error()
		return jsonResult(result)
	}
	defer client.Close()

	blockNumber, err := client.BlockNumber(ctx)
	if err != nil {
		result.Error = err.Error()
		return jsonResult(result)
	}

	result.Healthy = true
	result.LatestBlock = blockNumber

	// the remaining probes are diagnostic extras, a node without them is
	// still healthy
	if chainID, err := client.ChainID(ctx); err == nil {
		result.ChainID = chainID.Int64()
	}

	if header, err := client.HeaderByNumber(ctx, nil); err == nil {
		age := time.Now().Unix() - int64(header.Time)
		if age < 0 {
			age = 0
		}
		result.BlockAgeSeconds = &age
	}

	var raw json.RawMessage
	if err := client.Call(ctx, &raw, "eth_syncing"); err == nil {
		result.Syncing = !bytes.Equal(raw, []byte("false"))
	}

	return jsonResult(result)
}

type peersResult struct {
	Chain     string          `json:"chain"`
	PeerCount int             `json:"peerCount"`
	Peers     json.RawMessage `json:"peers"`
}

func (h *handler) peers(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	chain, err := request.RequireString("chain")
	if err != nil {
		return toolError(err), nil
	}

	res, err := h.s.Resolver.Resolve(ctx, chain)
	if err != nil {
		return toolError(err), nil
	}

	ctx, cancel := context.WithTimeout(ctx, h.s.Config.RPC.RequestTimeout)
	defer cancel()

	client, err := node.Dial(ctx, res.RPCURL)
	if err != nil {
		return toolError(err), nil
	}
	defer client.Close()

	var raw json.RawMessage
	if err := client.Call(ctx, &raw, "admin_peers"); err != nil {
		if node.IsMethodNotSupported(err) {
			return toolError(errors.Wrapf(chains.ErrUnsupportedMethod, "admin_peers is not exposed by %s", res.DisplayName())), nil
		}
		return toolError(err), nil
	}

	var peerList []json.RawMessage
	if err := json.Unmarshal(raw, &peerList); err != nil {
		return toolError(errors.Wrap(err, "failed to parse admin_peers response")), nil
	}

	return jsonResult(peersResult{Chain: res.DisplayName(), PeerCount: len(peerList), Peers: raw})
}

type traceResult struct {
	Chain  string          `json:"chain"`
	TxHash string          `json:"txHash"`
	Trace  json.RawMessage `json:"trace"`
}

func (h *handler) traceTransaction(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	chain, err := request.RequireString("chain")
	if err != nil {
		return toolError(err), nil
	}

	txHash, err := request.RequireString("txHash")
	if err != nil {
		return toolError(err), nil
	}

	if !eth.IsTxHash(txHash) {
		return toolError(errors.Wrapf(chains.ErrMalformedTxHash, "%q", txHash)), nil
	}

	res, err := h.s.Resolver.Resolve(ctx, chain)
	if err != nil {
		return toolError(err), nil
	}

	ctx, cancel := context.WithTimeout(ctx, h.s.Config.RPC.RequestTimeout)
	defer cancel()

	client, err := node.Dial(ctx, res.RPCURL)
	if err != nil {
		return toolError(err), nil
	}
	defer client.Close()

	var raw json.RawMessage
	if err := client.Call(ctx, &raw, "arbtrace_transaction", txHash); err != nil {
		if node.IsMethodNotSupported(err) {
			return toolError(errors.Wrapf(chains.ErrUnsupportedMethod, "arbtrace_transaction is not exposed by %s", res.DisplayName())), nil
		}
		return toolError(err), nil
	}

	return jsonResult(traceResult{Chain: res.DisplayName(), TxHash: txHash, Trace: raw})
}

type rawCallResult struct {
	Chain  string          `json:"chain"`
	Method string          `json:"method"`
	Result json.RawMessage `json:"result"`
}

func isMethodAllowed(method string) bool {
	for _, prefix := range allowedMethodPrefixes {
		if strings.HasPrefix(method, prefix) {
			return true
		}
	}

	return false
}

func (h *handler) callRPCMethod(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	chain, err := request.RequireString("chain")
	if err != nil {
		return toolError(err), nil
	}

	method, err := request.RequireString("method")
	if err != nil {
		return toolError(err), nil
	}

	if !isMethodAllowed(method) {
		return toolError(errors.Wrapf(chains.ErrUnsupportedMethod, "%q is outside the allowed namespaces", method)), nil
	}

	var params []interface{}
	if paramsJSON := request.GetString("params", ""); paramsJSON != "" {
		if err := json.Unmarshal([]byte(paramsJSON), &params); err != nil {
			return toolError(errors.Wrap(err, "params must be a JSON array")), nil
		}
	}

	res, err := h.s.Resolver.Resolve(ctx, chain)
	if err != nil {
		return toolError(err), nil
	}

	ctx, cancel := context.WithTimeout(ctx, h.s.Config.RPC.RequestTimeout)
	defer cancel()

	client, err := node.Dial(ctx, res.RPCURL)
	if err != nil {
		return toolError(err), nil
	}
	defer client.Close()

	var raw json.RawMessage
	if err := client.Call(ctx, &raw, method, params...); err != nil {
		if node.IsMethodNotSupported(err) {
			return toolError(errors.Wrapf(chains.ErrUnsupportedMethod, "%q rejected by %s", method, res.DisplayName())), nil
		}
		return toolError(err), nil
	}

	return jsonResult(rawCallResult{Chain: res.DisplayName(), Method: method, Result: raw})
}
