// Package middleware provides middleware components wrapping MCP tool handlers
package middleware

import (
	"context"
	"runtime/debug"
	"time"

	"github.com/charmbracelet/log"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/theapemachine/rusty-server/core"
)

// Logging records every call to the wrapped handler: its arguments, how long it took and
// whether it failed.
func Logging(handler core.HandlerFunc, logger *log.Logger) core.HandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		start := time.Now()
		logger.Debug("tool call", "tool", request.Params.Name, "arguments", request.GetArguments())

		result, err := handler(ctx, request)
		elapsed := time.Since(start)

		switch {
		case err != nil:
			logger.Error("tool call failed", "tool", request.Params.Name, "duration", elapsed, "error", err)
		case result != nil && result.IsError:
			logger.Warn("tool call returned an error", "tool", request.Params.Name, "duration", elapsed, "result", text(result))
		default:
			logger.Debug("tool call complete", "tool", request.Params.Name, "duration", elapsed)
		}

		return result, err
	}
}

// Panics logs a panic raised by the wrapped handler, with its stack, and re-raises it so the
// server's recovery layer can turn it into an error response.
func Panics(handler core.HandlerFunc, logger *log.Logger) core.HandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		defer func() {
			if r := recover(); r != nil {
				logger.Error("PANIC in tool handler", "tool", request.Params.Name, "panic", r, "stack", string(debug.Stack()))
				panic(r)
			}
		}()

		return handler(ctx, request)
	}
}

func text(result *mcp.CallToolResult) string {
	for _, content := range result.Content {
		if tc, ok := mcp.AsTextContent(content); ok {
			return tc.Text
		}
	}

	return ""
}
