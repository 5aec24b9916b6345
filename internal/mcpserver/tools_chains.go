package mcpserver

import (
	"context"

	"github/orbitpulse/orbit-gateway/internal/chains"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

func (h *handler) registerChainTools(srv *server.MCPServer) {
	srv.AddTool(mcp.NewTool("list_chains",
		mcp.WithDescription("List the names of all known Arbitrum and Orbit chains, canonical chains first."),
	), h.instrument("list_chains", h.listChains))

	srv.AddTool(mcp.NewTool("search_chains",
		mcp.WithDescription("Search the chain catalog by name or slug, best matches first."),
		mcp.WithString("query",
			mcp.Required(),
			mcp.Description("Search term matched against chain names and slugs."),
		),
	), h.instrument("search_chains", h.searchChains))

	srv.AddTool(mcp.NewTool("resolve_chain",
		mcp.WithDescription("Resolve a chain name, slug or RPC URL to the endpoint the other tools would use."),
		mcp.WithString("chain",
			mcp.Required(),
			mcp.Description("Chain name, slug or full RPC URL."),
		),
	), h.instrument("resolve_chain", h.resolveChain))
}

type listChainsResult struct {
	Count  int      `json:"count"`
	Chains []string `json:"chains"`
}

func (h *handler) listChains(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	names, err := h.s.Registry.Names(ctx)
	if err != nil {
		return toolError(err), nil
	}

	return jsonResult(listChainsResult{Count: len(names), Chains: names})
}

type searchChainsResult struct {
	Query  string          `json:"query"`
	Count  int             `json:"count"`
	Chains []chains.Record `json:"chains"`
}

func (h *handler) searchChains(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query, err := request.RequireString("query")
	if err != nil {
		return toolError(err), nil
	}

	records, err := h.s.Registry.Search(ctx, query)
	if err != nil {
		return toolError(err), nil
	}

	return jsonResult(searchChainsResult{Query: query, Count: len(records), Chains: records})
}

func (h *handler) resolveChain(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	chain, err := request.RequireString("chain")
	if err != nil {
		return toolError(err), nil
	}

	result, err := h.s.Resolver.Resolve(ctx, chain)
	if err != nil {
		return toolError(err), nil
	}

	return jsonResult(result)
}
