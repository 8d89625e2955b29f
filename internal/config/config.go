// Package config manages environment variables.
//
// It reads variables from the process environment (optionally seeded
// from a `.env` file), maps them into structured Go types, validates
// that required values are present, and applies defaults for optional
// ones so the application fails fast on bad or missing configuration.
package config

import (
	"strings"

	"github.com/go-playground/validator/v10"
	// Side-effect import: loads a `.env` file (if present) into the
	// process environment before any variable is read.
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

// Config is the root configuration object for the application.
// It is constructed once at startup by Load and injected everywhere;
// there is no ambient global configuration state.
type Config struct {
	Primary  Primary        `koanf:"primary"`
	Server   ServerConfig   `koanf:"server"`
	Database DatabaseConfig `koanf:"database" validate:"required"`
}

// Primary holds top-level information about the runtime environment.
type Primary struct {
	// Env is the runtime environment label. "local" enables console
	// log output and SQL query logging.
	Env string `koanf:"env"`

	// LogLevel is the zerolog level threshold (debug/info/warn/error).
	LogLevel string `koanf:"log_level"`
}

// ServerConfig groups settings for the HTTP server runtime.
// Timeouts are stored as seconds.
type ServerConfig struct {
	Port               string `koanf:"port"`
	ReadTimeout        int    `koanf:"read_timeout"`
	WriteTimeout       int    `koanf:"write_timeout"`
	IdleTimeout        int    `koanf:"idle_timeout"`
	CORSAllowedOrigins string `koanf:"cors_allowed_origins"`
}

// DatabaseConfig contains PostgreSQL connection parameters.
type DatabaseConfig struct {
	Host     string `koanf:"host" validate:"required"`
	Port     int    `koanf:"port"`
	User     string `koanf:"user" validate:"required"`
	Password string `koanf:"password" validate:"required"`
	Name     string `koanf:"name" validate:"required"`
	SSLMode  string `koanf:"ssl_mode"`
}

// envKeys maps the flat environment variable names this service is
// configured with onto nested koanf key paths. Unknown variables are
// ignored by the provider callback, which keeps unrelated environment
// noise out of the config tree.
var envKeys = map[string]string{
	"HOST":                 "database.host",
	"DB_PORT":              "database.port",
	"USER":                 "database.user",
	"PASSWORD":             "database.password",
	"DATABASE":             "database.name",
	"SSL_MODE":             "database.ssl_mode",
	"PORT":                 "server.port",
	"READ_TIMEOUT":         "server.read_timeout",
	"WRITE_TIMEOUT":        "server.write_timeout",
	"IDLE_TIMEOUT":         "server.idle_timeout",
	"CORS_ALLOWED_ORIGINS": "server.cors_allowed_origins",
	"ENV":                  "primary.env",
	"LOG_LEVEL":            "primary.log_level",
}

// Load reads configuration from the environment, unmarshals it into a
// Config, applies defaults, and validates required values.
func Load() (*Config, error) {
	k := koanf.New(".")

	// The provider callback returns "" for variables that are not part
	// of the config surface, which makes koanf skip them.
	err := k.Load(env.Provider("", ".", func(s string) string {
		return envKeys[strings.ToUpper(s)]
	}), nil)
	if err != nil {
		return nil, err
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	cfg.applyDefaults()

	validate := validator.New()
	if err := validate.Struct(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// applyDefaults fills optional settings that were not provided.
func (c *Config) applyDefaults() {
	if c.Primary.Env == "" {
		c.Primary.Env = "local"
	}
	if c.Primary.LogLevel == "" {
		c.Primary.LogLevel = "info"
	}
	if c.Server.Port == "" {
		c.Server.Port = "5000"
	}
	if c.Server.ReadTimeout == 0 {
		c.Server.ReadTimeout = 15
	}
	if c.Server.WriteTimeout == 0 {
		c.Server.WriteTimeout = 15
	}
	if c.Server.IdleTimeout == 0 {
		c.Server.IdleTimeout = 60
	}
	if c.Server.CORSAllowedOrigins == "" {
		c.Server.CORSAllowedOrigins = "*"
	}
	if c.Database.Port == 0 {
		c.Database.Port = 5432
	}
	if c.Database.SSLMode == "" {
		c.Database.SSLMode = "disable"
	}
}

// CORSOrigins returns the configured allowed origins as a slice.
func (c *ServerConfig) CORSOrigins() []string {
	parts := strings.Split(c.CORSAllowedOrigins, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}

// IsLocal reports whether the application runs in the local environment.
func (c *Primary) IsLocal() bool {
	return c.Env == "local"
}
