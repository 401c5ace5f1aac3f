// Package config handles loading, defaulting, and validation of the gnssd
// TOML configuration file. Every section maps to a typed struct so the rest
// of the codebase gets strong typing without manual key lookups.
package config

import (
	"errors"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Config is the top-level configuration, mirroring the TOML sections.
type Config struct {
	Logging   LoggingConfig   `toml:"logging"   json:"logging"`
	Server    ServerConfig    `toml:"server"    json:"server"`
	Format    FormatConfig    `toml:"format"    json:"format"`
	Heartbeat HeartbeatConfig `toml:"heartbeat" json:"heartbeat"`
}

type LoggingConfig struct {
	Level string `toml:"level" json:"level"`
}

type ServerConfig struct {
	Bind string `toml:"bind" json:"bind"`
}

// FormatConfig carries display policy. The PRN padding width of the SV
// short form is a convention, not part of the identifier, so it is
// configurable rather than hard-coded.
type FormatConfig struct {
	PRNWidth int `toml:"prn_width" json:"prn_width"`
}

type HeartbeatConfig struct {
	IntervalSeconds int `toml:"interval_seconds" json:"interval_seconds"`
}

// Default returns a Config populated with sane defaults. Values here are
// used whenever the TOML file omits a field.
func Default() Config {
	return Config{
		Logging: LoggingConfig{
			Level: "info",
		},
		Server: ServerConfig{
			Bind: "0.0.0.0:8080",
		},
		Format: FormatConfig{
			PRNWidth: 2,
		},
		Heartbeat: HeartbeatConfig{
			IntervalSeconds: 10,
		},
	}
}

// Load reads the TOML file at path, layers it on top of the defaults, and
// validates the result. An error is returned if the file can't be read,
// parsed, or if any constraint is violated.
func Load(path string) (Config, error) {
	cfg := Default()

	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}

	if err := toml.Unmarshal(b, &cfg); err != nil {
		return cfg, err
	}

	if err := validate(cfg); err != nil {
		return cfg, err
	}

	return cfg, nil
}

func validate(cfg Config) error {
	switch cfg.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return errors.New("logging.level must be one of debug, info, warn, error")
	}
	if cfg.Server.Bind == "" {
		return errors.New("server.bind must not be empty")
	}
	if cfg.Format.PRNWidth < 1 || cfg.Format.PRNWidth > 3 {
		return errors.New("format.prn_width must be between 1 and 3")
	}
	if cfg.Heartbeat.IntervalSeconds < 1 {
		return errors.New("heartbeat.interval_seconds must be >= 1")
	}
	return nil
}
