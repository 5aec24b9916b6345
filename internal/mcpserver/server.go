package mcpserver

import (
	"context"

	"github/orbitpulse/orbit-gateway/internal/api"
	"github/orbitpulse/orbit-gateway/internal/config"

	"github.com/mark3labs/mcp-go/server"
	"github.com/rs/zerolog/log"
)

// New builds the MCP server with the full tool catalog registered. The
// returned server speaks stdio only, stdout carries the protocol and every
// log line goes to stderr.
func New(s *api.Server) *server.MCPServer {
	h := &handler{s: s}

	srv := server.NewMCPServer(
		s.Config.MCP.ServerName,
		config.Commit,
		server.WithToolCapabilities(false),
		server.WithRecovery(),
	)

	h.registerChainTools(srv)
	h.registerStatusTools(srv)
	h.registerRPCTools(srv)

	return srv
}

// Serve runs the stdio transport until the host closes stdin or ctx is
// canceled.
func Serve(ctx context.Context, s *api.Server) error {
	srv := New(s)

	log.Info().Str("server_name", s.Config.MCP.ServerName).Msg("Serving MCP tools on stdio")

	return server.ServeStdio(srv, server.WithStdioContextFunc(func(context.Context) context.Context {
		return ctx
	}))
}
