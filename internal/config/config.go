package config

import "time"

// Config holds server configuration values.
type Config struct {
	// Addr is the chat listener address.
	Addr string `mapstructure:"addr" yaml:"addr"`
	// OpsAddr serves /health and /metrics; empty disables the ops server.
	OpsAddr string `mapstructure:"ops_addr" yaml:"ops_addr"`
	// IdleTimeout is how long a session may stay silent before it is kicked.
	IdleTimeout time.Duration `mapstructure:"idle_timeout" yaml:"idle_timeout"`
	// PollInterval bounds each blocking read; idle checks run on this tick.
	PollInterval time.Duration `mapstructure:"poll_interval" yaml:"poll_interval"`
	// WriteTimeout is the per-send write deadline.
	WriteTimeout    time.Duration `mapstructure:"write_timeout" yaml:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout" yaml:"shutdown_timeout"`
	LogLevel        string        `mapstructure:"log_level" yaml:"log_level"`
}

// Default returns configuration with reasonable starter defaults.
func Default() Config {
	return Config{
		Addr:            ":4000",
		OpsAddr:         ":9090",
		IdleTimeout:     60 * time.Second,
		PollInterval:    time.Second,
		WriteTimeout:    10 * time.Second,
		ShutdownTimeout: 5 * time.Second,
		LogLevel:        "info",
	}
}

// UpdateFrom overwrites non-zero values from other config into receiver.
func (c *Config) UpdateFrom(other Config) {
	if other.Addr != "" {
		c.Addr = other.Addr
	}
	if other.OpsAddr != "" {
		c.OpsAddr = other.OpsAddr
	}
	if other.IdleTimeout != 0 {
		c.IdleTimeout = other.IdleTimeout
	}
	if other.PollInterval != 0 {
		c.PollInterval = other.PollInterval
	}
	if other.WriteTimeout != 0 {
		c.WriteTimeout = other.WriteTimeout
	}
	if other.ShutdownTimeout != 0 {
		c.ShutdownTimeout = other.ShutdownTimeout
	}
	if other.LogLevel != "" {
		c.LogLevel = other.LogLevel
	}
}
