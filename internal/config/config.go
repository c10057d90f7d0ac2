package config

import (
	"encoding/json"
	"log/slog"
	"net"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/vango-dev/statebind/internal/errors"
	"github.com/vango-dev/statebind/pkg/token"
)

const (
	// ConfigFileName is the name of the configuration file.
	ConfigFileName = "statebind.json"

	// DefaultPort is the default server port.
	DefaultPort = 3000

	// DefaultHost is the default server host.
	DefaultHost = "localhost"

	// DefaultPath is the default WebSocket endpoint.
	DefaultPath = "/ws"

	// DefaultMetricsPath is the default Prometheus endpoint.
	DefaultMetricsPath = "/metrics"

	// DefaultTokenLength is the default handle length.
	DefaultTokenLength = 100

	// DefaultTokenSource is the default handle generator.
	DefaultTokenSource = "random"

	// DefaultLogLevel is the default log level.
	DefaultLogLevel = "info"
)

// Config represents the complete statebind.json configuration.
type Config struct {
	// Server contains HTTP/WebSocket server settings.
	Server ServerConfig `json:"server"`

	// Binder contains binder settings.
	Binder BinderConfig `json:"binder"`

	// Log contains logging settings.
	Log LogConfig `json:"log"`

	// configPath stores the path where the config was loaded from.
	configPath string
}

// ServerConfig contains server settings.
type ServerConfig struct {
	// Host is the host to bind to.
	Host string `json:"host,omitempty"`

	// Port is the port to listen on.
	Port int `json:"port,omitempty"`

	// Path is the WebSocket endpoint.
	Path string `json:"path,omitempty"`

	// MetricsPath is the Prometheus endpoint. "-" disables it.
	MetricsPath string `json:"metricsPath,omitempty"`
}

// BinderConfig contains binder settings.
type BinderConfig struct {
	// TokenLength is the length of pending-reaction handles.
	TokenLength int `json:"tokenLength,omitempty"`

	// TokenSource names the handle generator: random, uuid or sequence.
	TokenSource string `json:"tokenSource,omitempty"`
}

// LogConfig contains logging settings.
type LogConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `json:"level,omitempty"`
}

// New creates a new Config with default values.
func New() *Config {
	return &Config{
		Server: ServerConfig{
			Host:        DefaultHost,
			Port:        DefaultPort,
			Path:        DefaultPath,
			MetricsPath: DefaultMetricsPath,
		},
		Binder: BinderConfig{
			TokenLength: DefaultTokenLength,
			TokenSource: DefaultTokenSource,
		},
		Log: LogConfig{
			Level: DefaultLogLevel,
		},
	}
}

// Load reads statebind.json from dir.
func Load(dir string) (*Config, error) {
	return LoadFile(filepath.Join(dir, ConfigFileName))
}

// LoadFile reads a configuration file from path.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.New("E100").
				WithDetail("No " + filepath.Base(path) + " found in " + filepath.Dir(path)).
				WithSuggestion("Create " + ConfigFileName + " or run without --config to use defaults").
				Wrap(err)
		}
		return nil, errors.New("E101").Wrap(err)
	}

	cfg := New()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, errors.New("E101").
			WithDetail("Failed to parse " + path + ": " + err.Error()).
			WithSuggestion("Check that " + filepath.Base(path) + " is valid JSON")
	}

	cfg.configPath = path
	cfg.applyDefaults()

	return cfg, nil
}

// Path returns the path the config was loaded from, or "" for defaults.
func (c *Config) Path() string {
	return c.configPath
}

// applyDefaults fills in default values for fields set to their zero value.
func (c *Config) applyDefaults() {
	if c.Server.Host == "" {
		c.Server.Host = DefaultHost
	}
	if c.Server.Path == "" {
		c.Server.Path = DefaultPath
	}
	if c.Server.MetricsPath == "" {
		c.Server.MetricsPath = DefaultMetricsPath
	}
	if c.Binder.TokenSource == "" {
		c.Binder.TokenSource = DefaultTokenSource
	}
	if c.Log.Level == "" {
		c.Log.Level = DefaultLogLevel
	}
}

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	if c.Server.Port < 0 || c.Server.Port > 65535 {
		return errors.New("E102").
			WithDetail("Port " + strconv.Itoa(c.Server.Port) + " is out of range").
			WithSuggestion("Use a port between 0 and 65535")
	}
	if !strings.HasPrefix(c.Server.Path, "/") {
		return errors.New("E106").
			WithDetail("server.path " + strconv.Quote(c.Server.Path) + " must start with '/'")
	}
	if c.MetricsEnabled() && !strings.HasPrefix(c.Server.MetricsPath, "/") {
		return errors.New("E106").
			WithDetail("server.metricsPath " + strconv.Quote(c.Server.MetricsPath) + " must start with '/'").
			WithSuggestion("Use \"-\" to disable the metrics endpoint")
	}
	if c.Binder.TokenLength <= 0 {
		return errors.New("E103").
			WithDetail("binder.tokenLength is " + strconv.Itoa(c.Binder.TokenLength))
	}
	if _, ok := token.Parse(c.Binder.TokenSource); !ok {
		return errors.New("E104").
			WithDetail("binder.tokenSource " + strconv.Quote(c.Binder.TokenSource) + " is not supported")
	}
	if _, ok := parseLevel(c.Log.Level); !ok {
		return errors.New("E105").
			WithDetail("log.level " + strconv.Quote(c.Log.Level) + " is not supported")
	}
	return nil
}

// Address returns host:port for the server to listen on.
func (c *Config) Address() string {
	return net.JoinHostPort(c.Server.Host, strconv.Itoa(c.Server.Port))
}

// MetricsEnabled reports whether the metrics endpoint is served.
func (c *Config) MetricsEnabled() bool {
	return c.Server.MetricsPath != "-"
}

// TokenSource returns the configured handle generator.
// Unknown names fall back to the random source; Validate reports them.
func (c *Config) TokenSource() token.Source {
	src, ok := token.Parse(c.Binder.TokenSource)
	if !ok {
		return token.Random()
	}
	return src
}

// LogLevel returns the configured slog level.
// Unknown names fall back to info; Validate reports them.
func (c *Config) LogLevel() slog.Level {
	level, _ := parseLevel(c.Log.Level)
	return level
}

func parseLevel(s string) (slog.Level, bool) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, true
	case "", "info":
		return slog.LevelInfo, true
	case "warn", "warning":
		return slog.LevelWarn, true
	case "error":
		return slog.LevelError, true
	}
	return slog.LevelInfo, false
}
