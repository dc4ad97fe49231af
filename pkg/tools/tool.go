// Package tools provides the shared building blocks for the MCP tools served by rusty-server.
package tools

import (
	"errors"

	"github.com/mark3labs/mcp-go/mcp"
)

// ErrInvalidParams is the only error kind a client ever sees from a tool.
var ErrInvalidParams = errors.New("invalid parameters")

// ParamsError carries the client-facing message of an invalid parameters failure.
// Error returns the message verbatim, and the error unwraps to ErrInvalidParams.
type ParamsError struct {
	Message string
}

func (e *ParamsError) Error() string {
	return e.Message
}

func (e *ParamsError) Unwrap() error {
	return ErrInvalidParams
}

// InvalidParams builds a ParamsError with the given message.
func InvalidParams(message string) error {
	return &ParamsError{Message: message}
}

// BaseTool provides common functionality for all tools
type BaseTool struct {
	name   string
	handle mcp.Tool
}

// NewBaseTool creates a new BaseTool from an MCP tool definition.
func NewBaseTool(handle mcp.Tool) *BaseTool {
	return &BaseTool{
		name:   handle.Name,
		handle: handle,
	}
}

// Handle returns the MCP Tool definition
func (b *BaseTool) Handle() mcp.Tool {
	return b.handle
}

// Name returns the name of the tool
func (b *BaseTool) Name() string {
	return b.name
}

// NewErrorResult creates a standard error result
func NewErrorResult(err error) *mcp.CallToolResult {
	return mcp.NewToolResultError(err.Error())
}

// NewTextResult creates a standard text result
func NewTextResult(text string) *mcp.CallToolResult {
	return mcp.NewToolResultText(text)
}

// Result converts the outcome of a tool operation into what mcp-go expects from a handler.
// Invalid parameters become a tool-level error result so the caller can read the message;
// anything else is returned as a protocol error.
func Result(text string, err error) (*mcp.CallToolResult, error) {
	if err == nil {
		return NewTextResult(text), nil
	}

	if errors.Is(err, ErrInvalidParams) {
		return NewErrorResult(err), nil
	}

	return nil, err
}
