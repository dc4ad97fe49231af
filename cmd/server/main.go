// Command server is the main entry point for rusty-server, a minimal MCP server over stdio.
package main

import (
	"fmt"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/theapemachine/rusty-server/pkg/config"
	"github.com/theapemachine/rusty-server/pkg/logging"
	"github.com/theapemachine/rusty-server/pkg/rusty"
	"github.com/theapemachine/rusty-server/pkg/server"
	"github.com/theapemachine/rusty-server/pkg/version"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          rusty.Name,
		Short:        "Minimal MCP server exposing echo, calculator and statistics tools over stdio",
		SilenceUsage: true,
		RunE:         runServe,
	}

	if err := config.BindFlags(root.PersistentFlags()); err != nil {
		log.Fatal("failed to bind flags", "error", err)
	}

	root.AddCommand(serveCmd())
	root.AddCommand(versionCmd())

	return root
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve MCP requests on stdin/stdout",
		RunE:  runServe,
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s (%s)\n", rusty.Name, version.Version, version.GoVersion())
		},
	}
}

func runServe(cmd *cobra.Command, args []string) (err error) {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, err := logging.New(cfg, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer logger.Close()

	log.SetDefault(logger.Logger)
	logger.Startup()
	logger.Debug("command line arguments", "args", os.Args)

	defer func() {
		if r := recover(); r != nil {
			logger.Error("PANIC", "panic", r, "stack", string(debug.Stack()))
			err = fmt.Errorf("panic: %v", r)
		}
	}()

	logger.Info("creating server instance")
	dispatcher := rusty.New(logger.Logger)

	srv, err := server.New(dispatcher, logger.Logger)
	if err != nil {
		logger.Error("failed to start server", "error", err)
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("server successfully initialized, waiting for requests...", "tools", srv.Tools())

	if err := srv.Serve(ctx, cmd.InOrStdin(), cmd.OutOrStdout(), logger.Standard()); err != nil {
		return err
	}

	logger.Info("server stopped")

	return nil
}
