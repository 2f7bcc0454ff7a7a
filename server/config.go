package server

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Duration is a time.Duration that unmarshals from yaml strings like "30s".
type Duration time.Duration

func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var raw string
	if err := value.Decode(&raw); err != nil {
		return err
	}
	v, err := time.ParseDuration(raw)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", raw, err)
	}
	*d = Duration(v)
	return nil
}

func (d Duration) Duration() time.Duration {
	return time.Duration(d)
}

// Config holds the chat server settings.
type Config struct {
	// Addr is the listen address, e.g. ":8000"
	Addr string `yaml:"addr"`
	// AllowedOrigins is the CORS allow list. Empty means allow all.
	AllowedOrigins []string `yaml:"allowed_origins"`
	ReadTimeout    Duration `yaml:"read_timeout"`
	WriteTimeout   Duration `yaml:"write_timeout"`
	// MaxHistory caps the number of messages kept per chat session.
	// Zero keeps the full history.
	MaxHistory int `yaml:"max_history"`
}

// NewConfig returns a Config with defaults applied
func NewConfig() *Config {
	cfg := new(Config)
	cfg.withDefaults()
	return cfg
}

// LoadConfig reads a yaml config file and applies defaults.
func LoadConfig(path string) (*Config, error) {
	bs, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	cfg := new(Config)
	if err := yaml.Unmarshal(bs, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	cfg.withDefaults()
	return cfg, nil
}

func (c *Config) withDefaults() {
	if c.Addr == "" {
		c.Addr = ":8000"
	}
	if c.ReadTimeout <= 0 {
		c.ReadTimeout = Duration(30 * time.Second)
	}
	if c.WriteTimeout <= 0 {
		c.WriteTimeout = Duration(60 * time.Second)
	}
}
