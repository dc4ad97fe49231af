// Package calculator provides the calculator tool.
package calculator

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/theapemachine/rusty-server/pkg/calc"
	"github.com/theapemachine/rusty-server/pkg/rusty"
	"github.com/theapemachine/rusty-server/pkg/tools"
	"github.com/theapemachine/rusty-server/pkg/tools/utils"
)

// Tool performs basic arithmetic.
type Tool struct {
	*tools.BaseTool
	server *rusty.Server
}

// New creates the calculator tool. Its input schema is reflected from calc.Request.
func New(server *rusty.Server) (*Tool, error) {
	schema, err := calc.Schema()
	if err != nil {
		return nil, fmt.Errorf("calculator tool: %w", err)
	}

	handle := mcp.NewToolWithRawSchema(
		"calculator",
		"Perform basic calculator operations",
		schema,
	)
	handle.Annotations = mcp.ToolAnnotation{
		ReadOnlyHint:    mcp.ToBoolPtr(false),
		DestructiveHint: mcp.ToBoolPtr(false),
		IdempotentHint:  mcp.ToBoolPtr(true),
		OpenWorldHint:   mcp.ToBoolPtr(false),
	}

	return &Tool{
		BaseTool: tools.NewBaseTool(handle),
		server:   server,
	}, nil
}

// Handler processes calculator requests
func (tool *Tool) Handler(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	req, err := tool.decode(request)
	if err != nil {
		return tools.NewErrorResult(err), nil
	}

	return tools.Result(tool.server.Calculate(req))
}

func (tool *Tool) decode(request mcp.CallToolRequest) (req calc.Request, err error) {
	if req.Operation, err = utils.GetRequiredStringParam(request, "operation"); err != nil {
		return req, err
	}

	if req.A, err = utils.GetRequiredFloat64Param(request, "a"); err != nil {
		return req, err
	}

	if req.B, err = utils.GetRequiredFloat64Param(request, "b"); err != nil {
		return req, err
	}

	return req, nil
}
