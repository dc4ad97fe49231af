// Package logging sets up the structured logger used across rusty-server.
//
// Logs go to stderr and, when enabled, to a timestamped file. Stdout is reserved for
// protocol frames and is never written.
package logging

import (
	"fmt"
	"io"
	stdlog "log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/theapemachine/rusty-server/pkg/config"
	"github.com/theapemachine/rusty-server/pkg/version"
)

var now = time.Now

// EnvPrefixes selects the environment variables reported at startup.
var EnvPrefixes = []string{"RUSTY", "MCP"}

// Logger is a charmbracelet logger together with the file it writes to, if any.
type Logger struct {
	*log.Logger
	Path     string
	Instance string

	file *os.File
}

// New builds the logger described by cfg. Every entry carries the instance ID of this process.
func New(cfg *config.Config, stderr io.Writer) (*Logger, error) {
	level, err := log.ParseLevel(cfg.Log.Level)
	if err != nil {
		return nil, fmt.Errorf("logging: %w", err)
	}

	out := &Logger{Instance: uuid.New().String()}
	writer := stderr

	if cfg.Log.File {
		if err := os.MkdirAll(cfg.Log.Dir, 0o755); err != nil {
			return nil, fmt.Errorf("logging: create log directory: %w", err)
		}

		out.Path = filepath.Join(
			cfg.Log.Dir,
			fmt.Sprintf("rusty_server_%s.log", now().Format("20060102_150405")),
		)

		out.file, err = os.OpenFile(out.Path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("logging: open log file: %w", err)
		}

		writer = io.MultiWriter(stderr, out.file)
	}

	out.Logger = log.NewWithOptions(writer, log.Options{
		Level:           level,
		ReportTimestamp: true,
		ReportCaller:    true,
		TimeFormat:      time.RFC3339,
		Formatter:       formatter(cfg.Log.Format),
		Fields:          []interface{}{"instance", out.Instance},
	})

	return out, nil
}

func formatter(name string) log.Formatter {
	switch name {
	case "json":
		return log.JSONFormatter
	case "logfmt":
		return log.LogfmtFormatter
	}

	return log.TextFormatter
}

// Standard bridges the logger into a standard library logger, for libraries that want one.
func (l *Logger) Standard() *stdlog.Logger {
	return l.StandardLog(log.StandardLogOptions{ForceLevel: log.ErrorLevel})
}

// Close flushes and closes the log file.
func (l *Logger) Close() error {
	if l.file == nil {
		return nil
	}

	if err := l.file.Sync(); err != nil {
		l.file.Close()
		return err
	}

	return l.file.Close()
}

// Startup writes the diagnostics logged once when the server starts.
func (l *Logger) Startup() {
	l.Info("=== rusty-server starting ===")

	if l.Path != "" {
		l.Info("log file", "path", l.Path)
	}

	l.Info("process", "pid", os.Getpid())
	l.Info("build", "version", version.Version, "go", version.GoVersion())
	l.Debug("environment variables:")

	for _, kv := range Environment(os.Environ()) {
		key, value, _ := strings.Cut(kv, "=")
		l.Debug("  env", "key", key, "value", value)
	}
}

// Environment filters KEY=VALUE pairs down to those whose key starts with one of EnvPrefixes.
func Environment(environ []string) []string {
	var out []string

	for _, kv := range environ {
		for _, prefix := range EnvPrefixes {
			if strings.HasPrefix(kv, prefix) {
				out = append(out, kv)
				break
			}
		}
	}

	return out
}
