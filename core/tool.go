package core

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
)

// Tool is the contract every tool served over MCP satisfies.
type Tool interface {
	Name() string
	Handle() mcp.Tool
	Handler(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error)
}

// HandlerFunc matches the handler signature mcp-go expects for a tool.
type HandlerFunc func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error)
