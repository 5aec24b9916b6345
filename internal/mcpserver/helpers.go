package mcpserver

import (
	"context"
	"encoding/json"
	"time"

	"github/orbitpulse/orbit-gateway/internal/api"

	"github.com/google/uuid"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

// handler bundles the tool implementations around the shared service
// components so each tool closure can reach them.
type handler struct {
	s *api.Server
}

// instrument wraps a tool handler with an invocation id, scoped logging and
// the invocation counter. Tool-level failures travel inside the result as
// IsError, so both the returned error and the result flag count as failed.
func (h *handler) instrument(tool string, fn server.ToolHandlerFunc) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		l := log.With().
			Str("tool", tool).
			Str("invocation_id", uuid.New().String()).
			Logger()
		ctx = l.WithContext(ctx)

		start := time.Now()
		result, err := fn(ctx, request)

		failed := err != nil || (result != nil && result.IsError)
		h.s.Metrics.ObserveToolInvocation(tool, failed)

		l.Debug().
			Dur("duration", time.Since(start)).
			Bool("failed", failed).
			Msg("Handled tool invocation")

		return result, err
	}
}

// jsonResult renders v as indented JSON inside a text tool result.
func jsonResult(v interface{}) (*mcp.CallToolResult, error) {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal tool result")
	}

	return mcp.NewToolResultText(string(b)), nil
}

func toolError(err error) *mcp.CallToolResult {
	return mcp.NewToolResultError(err.Error())
}
