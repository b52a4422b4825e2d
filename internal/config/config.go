// Package config handles the XDG configuration directory, the optional
// config.yaml and .env files, and environment overrides.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"todo/internal/logging"
)

const (
	// AppName is the application directory name.
	AppName = "todo"

	// ConfigFile is the optional YAML settings file in the config directory.
	ConfigFile = "config.yaml"

	// EnvFile is the optional dotenv file, read from the config directory
	// and then the working directory.
	EnvFile = ".env"

	// LogFile is where the terminal UI writes diagnostics.
	LogFile = "todo.log"

	// OAuthClientFile is the OAuth client credentials filename.
	OAuthClientFile = "oauth_client.json"

	// TokenFile is the stored OAuth token filename.
	TokenFile = "token.json"
)

// Backends accepted for Config.Backend.
const (
	BackendHTTP   = "http"
	BackendGoogle = "google"
)

// Defaults.
const (
	DefaultEndpoint = "http://localhost:8080/"
	DefaultAddr     = ":8080"
	DefaultStore    = "memory"
)

// Environment variables read by Load.
const (
	EnvEndpoint = "TODO_ENDPOINT"
	EnvBackend  = "TODO_BACKEND"
	EnvAddr     = "TODO_ADDR"
	EnvStore    = "TODO_STORE"
	EnvDSN      = "TODO_DSN"
)

// Config holds configuration paths and settings.
type Config struct {
	// Dir is the configuration directory path.
	Dir string

	// Debug enables debug logging.
	Debug bool

	// Quiet suppresses informational output.
	Quiet bool

	// Endpoint is the task service URL used by the http backend.
	Endpoint string

	// Backend selects the task service implementation.
	Backend string

	// Server holds settings for the serve command.
	Server ServerConfig

	// Log receives diagnostics. Nil discards them.
	Log *logging.Logger
}

// ServerConfig holds settings for the task service.
type ServerConfig struct {
	Addr  string `yaml:"addr"`
	Store string `yaml:"store"`
	DSN   string `yaml:"dsn"`
}

// fileConfig models config.yaml.
type fileConfig struct {
	Endpoint string       `yaml:"endpoint"`
	Backend  string       `yaml:"backend"`
	Server   ServerConfig `yaml:"server"`
}

// New creates a new Config with the default or specified config directory.
// If configDir is empty, uses XDG_CONFIG_HOME/todo or $HOME/.config/todo.
// Settings start at their defaults; call Load to apply files and env.
func New(configDir string) (*Config, error) {
	dir := configDir
	if dir == "" {
		dir = DefaultConfigDir()
	}
	return &Config{
		Dir:      dir,
		Endpoint: DefaultEndpoint,
		Backend:  BackendHTTP,
		Server: ServerConfig{
			Addr:  DefaultAddr,
			Store: DefaultStore,
		},
	}, nil
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

// Load applies config.yaml, then .env files, then the process environment.
// Missing files are not an error. Variables already set in the process
// environment are never overridden by a .env file.
func (c *Config) Load() error {
	if err := c.loadFile(); err != nil {
		return err
	}

	for _, path := range []string{filepath.Join(c.Dir, EnvFile), EnvFile} {
		if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("load %s: %w", path, err)
		}
	}

	if v := os.Getenv(EnvEndpoint); v != "" {
		c.Endpoint = v
	}
	if v := os.Getenv(EnvBackend); v != "" {
		c.Backend = v
	}
	if v := os.Getenv(EnvAddr); v != "" {
		c.Server.Addr = v
	}
	if v := os.Getenv(EnvStore); v != "" {
		c.Server.Store = v
	}
	if v := os.Getenv(EnvDSN); v != "" {
		c.Server.DSN = v
	}
	return c.Validate()
}

func (c *Config) loadFile() error {
	data, err := os.ReadFile(c.ConfigPath())
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("read %s: %w", ConfigFile, err)
	}
	if len(strings.TrimSpace(string(data))) == 0 {
		return nil
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fmt.Errorf("parse %s: %w", ConfigFile, err)
	}
	if fc.Endpoint != "" {
		c.Endpoint = fc.Endpoint
	}
	if fc.Backend != "" {
		c.Backend = fc.Backend
	}
	if fc.Server.Addr != "" {
		c.Server.Addr = fc.Server.Addr
	}
	if fc.Server.Store != "" {
		c.Server.Store = fc.Server.Store
	}
	if fc.Server.DSN != "" {
		c.Server.DSN = fc.Server.DSN
	}
	return nil
}

// Validate checks settings that have a fixed set of values.
func (c *Config) Validate() error {
	c.Backend = strings.ToLower(strings.TrimSpace(c.Backend))
	switch c.Backend {
	case BackendHTTP, BackendGoogle:
	default:
		return fmt.Errorf("unknown backend: %s", c.Backend)
	}
	return nil
}

// ConfigPath returns the path to config.yaml.
func (c *Config) ConfigPath() string {
	return filepath.Join(c.Dir, ConfigFile)
}

// LogPath returns the path to the diagnostic log file.
func (c *Config) LogPath() string {
	return filepath.Join(c.Dir, LogFile)
}

// OAuthClientPath returns the path to the OAuth client credentials file.
func (c *Config) OAuthClientPath() string {
	return filepath.Join(c.Dir, OAuthClientFile)
}

// TokenPath returns the path to the stored OAuth token file.
func (c *Config) TokenPath() string {
	return filepath.Join(c.Dir, TokenFile)
}

// EnsureDir creates the config directory if it doesn't exist.
// Directory is created with mode 0700.
func (c *Config) EnsureDir() error {
	return os.MkdirAll(c.Dir, 0700)
}

// HasOAuthClient checks if the OAuth client credentials file exists.
func (c *Config) HasOAuthClient() bool {
	_, err := os.Stat(c.OAuthClientPath())
	return err == nil
}

// HasToken checks if the token file exists.
func (c *Config) HasToken() bool {
	_, err := os.Stat(c.TokenPath())
	return err == nil
}

// RemoveToken deletes the token file.
func (c *Config) RemoveToken() error {
	return os.Remove(c.TokenPath())
}
