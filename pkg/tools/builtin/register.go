// Package builtin assembles the static tool list served by rusty-server.
package builtin

import (
	"github.com/theapemachine/rusty-server/core"
	"github.com/theapemachine/rusty-server/pkg/rusty"
	"github.com/theapemachine/rusty-server/pkg/tools/calculator"
	"github.com/theapemachine/rusty-server/pkg/tools/echo"
	"github.com/theapemachine/rusty-server/pkg/tools/stats"
)

// Tools returns every tool the server advertises, all backed by the same dispatcher.
func Tools(server *rusty.Server) ([]core.Tool, error) {
	calculatorTool, err := calculator.New(server)
	if err != nil {
		return nil, err
	}

	return []core.Tool{
		echo.New(server),
		calculatorTool,
		stats.New(server),
	}, nil
}
