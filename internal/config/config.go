// Package config handles the XDG configuration directory and the client settings.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	// AppName is the application directory name.
	AppName = "todo"

	// ConfigFile is the settings filename inside the config directory.
	ConfigFile = "config.yaml"

	// EnvPrefix prefixes environment overrides (TODO_ENDPOINT, TODO_TIMEOUT).
	EnvPrefix = "TODO"

	// PlaceholderEndpoint is the endpoint shipped until a deployment supplies a real one.
	PlaceholderEndpoint = "GRAPHQL_ENDPOINT"

	// DefaultTimeout bounds a single GraphQL request.
	DefaultTimeout = 5 * time.Second
)

// ErrInvalidEndpoint is returned by ValidateEndpoint.
var ErrInvalidEndpoint = errors.New("invalid endpoint")

// Documents holds the GraphQL documents used by the task backend.
// Empty fields fall back to the backend defaults.
type Documents struct {
	Tasks        string `mapstructure:"tasks" yaml:"tasks,omitempty"`
	AddTask      string `mapstructure:"add_task" yaml:"add_task,omitempty"`
	CompleteTask string `mapstructure:"complete_task" yaml:"complete_task,omitempty"`
	DeleteTask   string `mapstructure:"delete_task" yaml:"delete_task,omitempty"`
}

// Config holds configuration paths and settings.
type Config struct {
	// Dir is the configuration directory path.
	Dir string `mapstructure:"-" yaml:"-"`

	// Endpoint is the GraphQL endpoint URL.
	Endpoint string `mapstructure:"endpoint" yaml:"endpoint"`

	// Timeout bounds each request to the endpoint.
	Timeout time.Duration `mapstructure:"timeout" yaml:"timeout"`

	// Documents overrides the default queries and mutations.
	Documents Documents `mapstructure:"documents" yaml:"documents,omitempty"`

	// Debug enables debug logging.
	Debug bool `mapstructure:"-" yaml:"-"`

	// Quiet suppresses informational output.
	Quiet bool `mapstructure:"-" yaml:"-"`
}

// New creates a Config with defaults and the default or specified config directory.
// If configDir is empty, uses XDG_CONFIG_HOME/todo or $HOME/.config/todo.
func New(configDir string) *Config {
	dir := configDir
	if dir == "" {
		dir = DefaultConfigDir()
	}
	return &Config{
		Dir:      dir,
		Endpoint: PlaceholderEndpoint,
		Timeout:  DefaultTimeout,
	}
}

// Load builds a Config from config.yaml in configDir (if present) and TODO_*
// environment variables. A missing file is not an error.
func Load(configDir string) (*Config, error) {
	cfg := New(configDir)

	v := viper.New()
	v.SetDefault("endpoint", cfg.Endpoint)
	v.SetDefault("timeout", cfg.Timeout)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if _, err := os.Stat(cfg.Path()); err == nil {
		v.SetConfigFile(cfg.Path())
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", ConfigFile, err)
		}
	}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", ConfigFile, err)
	}

	cfg.Endpoint = strings.TrimSpace(cfg.Endpoint)
	if cfg.Endpoint == "" {
		cfg.Endpoint = PlaceholderEndpoint
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	return cfg, nil
}

// DefaultConfigDir returns the default configuration directory.
// Uses XDG_CONFIG_HOME if set, otherwise $HOME/.config.
func DefaultConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, AppName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		// Fallback to current directory if home can't be determined
		return AppName
	}
	return filepath.Join(home, ".config", AppName)
}

// Path returns the path to the settings file.
func (c *Config) Path() string {
	return filepath.Join(c.Dir, ConfigFile)
}

// HasFile checks if the settings file exists.
func (c *Config) HasFile() bool {
	_, err := os.Stat(c.Path())
	return err == nil
}

// IsPlaceholder reports whether the endpoint was never replaced.
func (c *Config) IsPlaceholder() bool {
	return c.Endpoint == PlaceholderEndpoint
}

// ValidateEndpoint checks that endpoint is an absolute http(s) URL with a host.
// It is never called when a client is constructed; an invalid endpoint only
// fails once a request is made.
func ValidateEndpoint(endpoint string) error {
	if endpoint == PlaceholderEndpoint {
		return fmt.Errorf("%w: %s is a placeholder", ErrInvalidEndpoint, endpoint)
	}
	u, err := url.Parse(endpoint)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidEndpoint, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("%w: unsupported scheme %q", ErrInvalidEndpoint, u.Scheme)
	}
	if u.Host == "" {
		return fmt.Errorf("%w: missing host", ErrInvalidEndpoint)
	}
	return nil
}
