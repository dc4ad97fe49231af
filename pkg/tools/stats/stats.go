// Package stats provides the get_stats tool.
package stats

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/theapemachine/rusty-server/pkg/rusty"
	"github.com/theapemachine/rusty-server/pkg/tools"
)

// Tool reports server statistics. Calling it does not change them.
type Tool struct {
	*tools.BaseTool
	server *rusty.Server
}

func New(server *rusty.Server) *Tool {
	return &Tool{
		BaseTool: tools.NewBaseTool(mcp.NewTool(
			"get_stats",
			mcp.WithDescription("Get server statistics"),
			mcp.WithReadOnlyHintAnnotation(true),
			mcp.WithDestructiveHintAnnotation(false),
			mcp.WithIdempotentHintAnnotation(true),
			mcp.WithOpenWorldHintAnnotation(false),
		)),
		server: server,
	}
}

func (tool *Tool) Handler(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return tools.NewTextResult(tool.server.Stats()), nil
}
