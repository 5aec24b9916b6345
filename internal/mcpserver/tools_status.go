package mcpserver

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

func chainArg(description string) mcp.ToolOption {
	return mcp.WithString("chain",
		mcp.Required(),
		mcp.Description(description),
	)
}

func (h *handler) registerStatusTools(srv *server.MCPServer) {
	srv.AddTool(mcp.NewTool("get_chain_status",
		mcp.WithDescription("Full chain status: ArbOS version, batch posting, assertions and gas price in one report."),
		chainArg("Chain name, slug or RPC URL."),
	), h.instrument("get_chain_status", h.chainStatus))

	srv.AddTool(mcp.NewTool("get_batch_posting_status",
		mcp.WithDescription("Batch posting health: age of the last posted batch, batch count and sequencer backlog."),
		chainArg("Chain name, slug or RPC URL."),
	), h.instrument("get_batch_posting_status", h.batchPostingStatus))

	srv.AddTool(mcp.NewTool("get_assertion_status",
		mcp.WithDescription("Rollup assertion health: latest created and confirmed assertions on the parent chain."),
		chainArg("Chain name, slug or RPC URL."),
	), h.instrument("get_assertion_status", h.assertionStatus))

	srv.AddTool(mcp.NewTool("get_gas_price",
		mcp.WithDescription("Current gas price of a chain in wei and gwei."),
		chainArg("Chain name, slug or RPC URL."),
	), h.instrument("get_gas_price", h.gasPrice))

	srv.AddTool(mcp.NewTool("get_arbos_version",
		mcp.WithDescription("ArbOS version of a chain, falling back to the node client version."),
		chainArg("Chain name, slug or RPC URL."),
	), h.instrument("get_arbos_version", h.arbOSVersion))
}

func (h *handler) chainStatus(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	chain, err := request.RequireString("chain")
	if err != nil {
		return toolError(err), nil
	}

	report, err := h.s.Status.ChainStatus(ctx, chain)
	if err != nil {
		return toolError(err), nil
	}

	return jsonResult(report)
}

func (h *handler) batchPostingStatus(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	chain, err := request.RequireString("chain")
	if err != nil {
		return toolError(err), nil
	}

	report, err := h.s.Status.BatchPostingStatus(ctx, chain)
	if err != nil {
		return toolError(err), nil
	}

	return jsonResult(report)
}

func (h *handler) assertionStatus(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	chain, err := request.RequireString("chain")
	if err != nil {
		return toolError(err), nil
	}

	report, err := h.s.Status.AssertionStatus(ctx, chain)
	if err != nil {
		return toolError(err), nil
	}

	return jsonResult(report)
}

func (h *handler) gasPrice(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	chain, err := request.RequireString("chain")
	if err != nil {
		return toolError(err), nil
	}

	report, err := h.s.Status.GasPrice(ctx, chain)
	if err != nil {
		return toolError(err), nil
	}

	return jsonResult(report)
}

type arbOSVersionResult struct {
	Chain        string `json:"chain"`
	ArbOSVersion string `json:"arbosVersion"`
}

func (h *handler) arbOSVersion(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	chain, err := request.RequireString("chain")
	if err != nil {
		return toolError(err), nil
	}

	res, err := h.s.Resolver.Resolve(ctx, chain)
	if err != nil {
		return toolError(err), nil
	}

	version, err := h.s.Status.ArbOSVersion(ctx, chain)
	if err != nil {
		return toolError(err), nil
	}

	return jsonResult(arbOSVersionResult{Chain: res.DisplayName(), ArbOSVersion: version})
}
