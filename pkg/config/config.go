// Package config provides centralized configuration management for rusty-server.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	KeyLogLevel  = "log.level"
	KeyLogFormat = "log.format"
	KeyLogDir    = "log.dir"
	KeyLogFile   = "log.file"
)

// Config holds the complete configuration for the application
type Config struct {
	Log struct {
		Level  string
		Format string
		Dir    string
		File   bool
	}
}

var (
	once   sync.Once
	config *Config
	shared = newSharedViper()
)

func newSharedViper() *viper.Viper {
	v := viper.New()
	SetDefaults(v)

	// RUSTY_LOG_LEVEL maps to log.level and so on.
	v.SetEnvPrefix("rusty")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return v
}

// SetDefaults registers the default value of every key.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyLogLevel, "debug")
	v.SetDefault(KeyLogFormat, "text")
	v.SetDefault(KeyLogDir, defaultLogDir())
	v.SetDefault(KeyLogFile, true)
}

func defaultLogDir() string {
	base, err := os.UserCacheDir()
	if err != nil {
		base = os.TempDir()
	}

	return filepath.Join(base, "rusty-server", "logs")
}

// BindFlags registers the command line flags that override configuration keys.
func BindFlags(flags *pflag.FlagSet) error {
	flags.String("log-level", shared.GetString(KeyLogLevel), "log level (debug, info, warn, error)")
	flags.String("log-format", shared.GetString(KeyLogFormat), "log format (text, json, logfmt)")
	flags.String("log-dir", shared.GetString(KeyLogDir), "directory for log files")
	flags.Bool("log-file", shared.GetBool(KeyLogFile), "write logs to a timestamped file as well as stderr")

	for key, flag := range map[string]string{
		KeyLogLevel:  "log-level",
		KeyLogFormat: "log-format",
		KeyLogDir:    "log-dir",
		KeyLogFile:   "log-file",
	} {
		if err := shared.BindPFlag(key, flags.Lookup(flag)); err != nil {
			return fmt.Errorf("bind flag %s: %w", flag, err)
		}
	}

	return nil
}

// Load reads the configuration once from flags, environment variables and defaults.
func Load() *Config {
	once.Do(func() {
		config = New(shared)
	})

	return config
}

// New builds a Config from the given viper instance.
func New(v *viper.Viper) *Config {
	cfg := &Config{}

	cfg.Log.Level = strings.ToLower(v.GetString(KeyLogLevel))
	cfg.Log.Format = strings.ToLower(v.GetString(KeyLogFormat))
	cfg.Log.Dir = v.GetString(KeyLogDir)
	cfg.Log.File = v.GetBool(KeyLogFile)

	return cfg
}

// Validate checks if all configuration values are usable
func (c *Config) Validate() error {
	var errors []string

	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		errors = append(errors, fmt.Sprintf("unknown log level %q", c.Log.Level))
	}

	switch c.Log.Format {
	case "text", "json", "logfmt":
	default:
		errors = append(errors, fmt.Sprintf("unknown log format %q", c.Log.Format))
	}

	if c.Log.File && c.Log.Dir == "" {
		errors = append(errors, "log directory is required when file logging is enabled")
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed: %v", errors)
	}

	return nil
}
