package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"

	"github.com/alc6/ora2schema/providers"
)

const (
	envPrefix      = "ORA2SCHEMA_"
	defaultImage   = "gvenzl/oracle-free:23-slim-faststart"
	defaultFormat  = "info"
	defaultLogging = "info"
)

// Config holds the resolved settings for a run
type Config struct {
	DSN           string `koanf:"dsn"`
	Username      string `koanf:"username"`
	Password      string `koanf:"password"`
	ConnectString string `koanf:"connect_string"`
	Format        string `koanf:"format"`
	LogLevel      string `koanf:"log_level"`
	Image         string `koanf:"image"`
	MigrationsDir string `koanf:"migrations_dir"`
}

// flags that steer the command itself and have no config key
var commandOnlyFlags = map[string]bool{
	"config":  true,
	"extract": true,
	"mcp":     true,
	"help":    true,
}

// findConfigFile returns the explicit path, or ora2schema.yaml / ora2schema.yml in the working directory
func findConfigFile(explicit string) string {
	if explicit != "" {
		return explicit
	}
	for _, name := range []string{"ora2schema.yaml", "ora2schema.yml"} {
		if _, err := os.Stat(name); err == nil {
			return name
		}
	}
	return ""
}

// LoadConfig loads configuration from defaults, file, environment and flags.
// Precedence (highest to lowest): flags > env vars > config file > defaults
func LoadConfig(cfgFile string, flags *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(map[string]interface{}{
		"format":    defaultFormat,
		"log_level": defaultLogging,
		"image":     defaultImage,
	}, "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if path := findConfigFile(cfgFile); path != "" {
		slog.Debug("loading config file", "path", path)
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("error reading config file %s: %w", path, err)
		}
	}

	// ORA2SCHEMA_CONNECT_STRING -> connect_string
	if err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, envPrefix))
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	if flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, interface{}) {
			if !f.Changed || commandOnlyFlags[f.Name] {
				return "", nil
			}
			key := strings.ReplaceAll(f.Name, "-", "_")
			if key == "migrations" {
				return "migrations_dir", posflag.FlagVal(flags, f)
			}
			return key, posflag.FlagVal(flags, f)
		}), nil); err != nil {
			return nil, fmt.Errorf("failed to load flags: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}
	return &cfg, nil
}

// Validate checks the values that cannot be checked by decoding alone
func (c *Config) Validate() error {
	if _, err := providers.ParseSchemaFormat(c.Format); err != nil {
		return err
	}
	if _, err := c.SlogLevel(); err != nil {
		return err
	}
	return nil
}

// DataSourceName returns the godror connection string. An explicit DSN wins over the parts.
func (c *Config) DataSourceName() (string, error) {
	if c.DSN != "" {
		return c.DSN, nil
	}
	if c.Username == "" || c.ConnectString == "" {
		return "", fmt.Errorf("no database configured: set dsn, or username and connect_string")
	}
	return fmt.Sprintf("%s/%s@%s", c.Username, c.Password, c.ConnectString), nil
}

// SlogLevel parses LogLevel
func (c *Config) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo, fmt.Errorf("invalid log level %q: %w", c.LogLevel, err)
	}
	return level, nil
}
