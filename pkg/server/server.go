// Package server binds the rusty dispatcher to an MCP server speaking JSON-RPC over stdio.
package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	stdlog "log"
	"sort"

	"github.com/charmbracelet/log"
	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"
	"github.com/theapemachine/rusty-server/core"
	"github.com/theapemachine/rusty-server/core/middleware"
	"github.com/theapemachine/rusty-server/pkg/rusty"
	"github.com/theapemachine/rusty-server/pkg/tools/builtin"
)

// Server is the MCP endpoint: the protocol server plus the tools registered on it.
type Server struct {
	mcp        *mcpserver.MCPServer
	dispatcher *rusty.Server
	logger     *log.Logger
	tools      map[string]core.Tool
}

// New creates the MCP server announcing the dispatcher's handshake info and registers the
// built-in tools on it.
func New(dispatcher *rusty.Server, logger *log.Logger) (*Server, error) {
	if logger == nil {
		logger = log.Default()
	}

	info := dispatcher.Info()

	opts := []mcpserver.ServerOption{
		mcpserver.WithInstructions(info.Instructions),
		mcpserver.WithHooks(hooks(logger)),
		mcpserver.WithRecovery(),
	}

	if info.Tools {
		opts = append(opts, mcpserver.WithToolCapabilities(false))
	}

	srv := &Server{
		mcp:        mcpserver.NewMCPServer(info.Name, info.Version, opts...),
		dispatcher: dispatcher,
		logger:     logger,
		tools:      make(map[string]core.Tool),
	}

	tools, err := builtin.Tools(dispatcher)
	if err != nil {
		return nil, fmt.Errorf("register tools: %w", err)
	}

	for _, tool := range tools {
		srv.RegisterTool(tool)
	}

	return srv, nil
}

// RegisterTool registers a tool with the server, wrapped in logging and panic reporting.
func (srv *Server) RegisterTool(tool core.Tool) {
	srv.tools[tool.Name()] = tool

	handler := middleware.Panics(middleware.Logging(tool.Handler, srv.logger), srv.logger)
	srv.mcp.AddTool(tool.Handle(), mcpserver.ToolHandlerFunc(handler))

	srv.logger.Debug("registered tool", "tool", tool.Name())
}

// Tools lists the names of the registered tools in sorted order.
func (srv *Server) Tools() []string {
	names := make([]string, 0, len(srv.tools))
	for name := range srv.tools {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}

// MCP exposes the underlying protocol server.
func (srv *Server) MCP() *mcpserver.MCPServer {
	return srv.mcp
}

// Serve reads newline-delimited JSON-RPC messages from in and writes responses to out until
// in is exhausted or ctx is cancelled. Transport errors go to errLogger.
func (srv *Server) Serve(ctx context.Context, in io.Reader, out io.Writer, errLogger *stdlog.Logger) error {
	stdio := mcpserver.NewStdioServer(srv.mcp)
	if errLogger != nil {
		stdio.SetErrorLogger(errLogger)
	}

	srv.logger.Info("starting stdio transport")

	err := stdio.Listen(ctx, in, out)
	if err != nil && !errors.Is(err, context.Canceled) {
		srv.logger.Error("server error while waiting", "error", err)
		return err
	}

	srv.logger.Info("server shutting down gracefully")

	return nil
}

func hooks(logger *log.Logger) *mcpserver.Hooks {
	hooks := &mcpserver.Hooks{}

	hooks.AddBeforeInitialize(func(ctx context.Context, id any, message *mcp.InitializeRequest) {
		logger.Info("initialize request received")
		logger.Debug("client info", "name", message.Params.ClientInfo.Name, "version", message.Params.ClientInfo.Version)
		logger.Debug("protocol version", "requested", message.Params.ProtocolVersion)
		logger.Debug("capabilities", "capabilities", message.Params.Capabilities)
	})

	hooks.AddAfterInitialize(func(ctx context.Context, id any, message *mcp.InitializeRequest, result *mcp.InitializeResult) {
		logger.Info("initialize complete", "protocol", result.ProtocolVersion, "server", result.ServerInfo.Name)
	})

	hooks.AddBeforeAny(func(ctx context.Context, id any, method mcp.MCPMethod, message any) {
		logger.Debug("request", "id", id, "method", method)
	})

	hooks.AddOnError(func(ctx context.Context, id any, method mcp.MCPMethod, message any, err error) {
		logger.Error("request failed", "id", id, "method", method, "error", err)
	})

	return hooks
}
