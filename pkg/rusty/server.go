// Package rusty holds the request dispatcher behind rusty-server: the echo, calculator and
// statistics operations and the single request counter they share.
package rusty

import (
	"fmt"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/theapemachine/rusty-server/pkg/calc"
	"github.com/theapemachine/rusty-server/pkg/version"
)

const (
	Name         = "rusty-server"
	Instructions = "This is a minimal MCP server for testing connectivity. " +
		"It provides echo and calculator tools for basic operations."
)

// Info is what the server announces about itself during the handshake.
type Info struct {
	Name         string
	Version      string
	Instructions string
	Tools        bool
}

// Server dispatches tool invocations and counts them.
type Server struct {
	logger *log.Logger

	mu       sync.Mutex
	requests uint64
}

// New creates a Server with its request counter at zero.
func New(logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}

	logger.Debug("creating new server instance")

	return &Server{logger: logger}
}

func (srv *Server) increment() {
	srv.mu.Lock()
	srv.requests++
	count := srv.requests
	srv.mu.Unlock()

	srv.logger.Debug("request count incremented", "count", count)
}

// Requests returns the number of echo and calculator invocations handled so far.
func (srv *Server) Requests() uint64 {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	return srv.requests
}

// Echo returns the message prefixed with "Echo: ".
func (srv *Server) Echo(message string) string {
	srv.logger.Info("echo called", "message", message)
	srv.increment()

	response := "Echo: " + message
	srv.logger.Debug("echo response", "response", response)

	return response
}

// Calculate evaluates the request. The call is counted before the operation is matched,
// so calls that fail with an unknown operation or a division by zero are counted too.
func (srv *Server) Calculate(req calc.Request) (string, error) {
	srv.logger.Info("calculator called", "operation", req.Operation, "a", req.A, "b", req.B)
	srv.increment()

	result, err := req.Evaluate()
	if err != nil {
		srv.logger.Warn("calculator rejected request", "operation", req.Operation, "error", err)
		return "", err
	}

	response := req.Format(result)
	srv.logger.Debug("calculator result", "response", response)

	return response, nil
}

// Stats reports the request count and server version. It does not count as a request.
func (srv *Server) Stats() string {
	srv.logger.Info("get stats called")

	stats := fmt.Sprintf(
		"Server Statistics:\n- Total requests processed: %d\n- Server version: %s\n- Uptime: running",
		srv.Requests(),
		version.Version,
	)

	srv.logger.Debug("stats response", "stats", stats)

	return stats
}

// Info describes the server for the initialize handshake. It is rebuilt on every call.
func (srv *Server) Info() Info {
	info := Info{
		Name:         Name,
		Version:      version.Version,
		Instructions: Instructions,
		Tools:        true,
	}

	srv.logger.Debug("server info", "name", info.Name, "version", info.Version)

	return info
}
