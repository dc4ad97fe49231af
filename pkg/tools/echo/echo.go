// Package echo provides the echo tool.
package echo

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/theapemachine/rusty-server/pkg/rusty"
	"github.com/theapemachine/rusty-server/pkg/tools"
	"github.com/theapemachine/rusty-server/pkg/tools/utils"
)

// Tool echoes the message it receives.
type Tool struct {
	*tools.BaseTool
	server *rusty.Server
}

// New creates the echo tool on top of the given dispatcher.
func New(server *rusty.Server) *Tool {
	return &Tool{
		BaseTool: tools.NewBaseTool(mcp.NewTool(
			"echo",
			mcp.WithDescription("Echo back the provided message"),
			mcp.WithString(
				"message",
				mcp.Required(),
				mcp.Description("The message to echo back"),
			),
			mcp.WithDestructiveHintAnnotation(false),
			mcp.WithOpenWorldHintAnnotation(false),
		)),
		server: server,
	}
}

// Handler processes echo requests
func (tool *Tool) Handler(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	message, err := utils.GetRequiredStringParam(request, "message")
	if err != nil {
		return tools.NewErrorResult(err), nil
	}

	return tools.NewTextResult(tool.server.Echo(message)), nil
}
