package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// AppConfig holds settings for the CLI and the HTTP service.
type AppConfig struct {
	Server  ServerConfig  `yaml:"server" toml:"server"`
	Log     LogConfig     `yaml:"log" toml:"log"`
	Storage StorageConfig `yaml:"storage" toml:"storage"`
}

// ServerConfig holds HTTP listener settings.
type ServerConfig struct {
	Addr           string   `yaml:"addr" toml:"addr"`
	AllowedOrigins []string `yaml:"allowed_origins" toml:"allowed_origins"`
	// RequestTimeout bounds a single request, e.g. "5s".
	RequestTimeout Duration `yaml:"request_timeout" toml:"request_timeout"`
}

// LogConfig selects the zap logger flavour.
type LogConfig struct {
	Level       string `yaml:"level" toml:"level"`
	Development bool   `yaml:"development" toml:"development"`
}

// StorageConfig points at the SQLite run history. An empty path disables it.
type StorageConfig struct {
	Path string `yaml:"path" toml:"path"`
}

// Duration wraps time.Duration so it can be written as "5s" in YAML and TOML.
type Duration struct {
	time.Duration
}

// UnmarshalText parses a Go duration string.
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", string(text), err)
	}
	d.Duration = v
	return nil
}

// MarshalText renders the duration in Go syntax.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// DefaultAppConfig returns the configuration used when no file is present.
func DefaultAppConfig() AppConfig {
	return AppConfig{
		Server: ServerConfig{
			Addr:           ":5079",
			AllowedOrigins: []string{"http://localhost:3000"},
			RequestTimeout: Duration{5 * time.Second},
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// LoadAppConfig reads a YAML or TOML configuration file. A missing file (or
// an empty path) yields the defaults. PORT and RPGO_DB override the listen
// address and storage path.
func LoadAppConfig(path string) (AppConfig, error) {
	cfg := DefaultAppConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
		case err != nil:
			return cfg, fmt.Errorf("reading config: %w", err)
		case formatFromExtension(path) == "toml":
			if err := toml.Unmarshal(data, &cfg); err != nil {
				return cfg, fmt.Errorf("parsing config: %w", err)
			}
		default:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return cfg, fmt.Errorf("parsing config: %w", err)
			}
		}
	}

	if port := os.Getenv("PORT"); port != "" {
		cfg.Server.Addr = ":" + port
	}
	if db := os.Getenv("RPGO_DB"); db != "" {
		cfg.Storage.Path = db
	}
	if cfg.Server.RequestTimeout.Duration <= 0 {
		cfg.Server.RequestTimeout = DefaultAppConfig().Server.RequestTimeout
	}
	for _, origin := range cfg.Server.AllowedOrigins {
		if origin != "*" && !strings.HasPrefix(origin, "http://") && !strings.HasPrefix(origin, "https://") {
			return cfg, fmt.Errorf("server.allowed_origins: %q must be \"*\" or start with http:// or https://", origin)
		}
	}

	return cfg, nil
}
