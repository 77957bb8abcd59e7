package config

import "time"

// Config holds server configuration values.
type Config struct {
	Addr              string        `mapstructure:"addr" yaml:"addr"`
	ReadHeaderTimeout time.Duration `mapstructure:"read_header_timeout" yaml:"read_header_timeout"`
	ShutdownTimeout   time.Duration `mapstructure:"shutdown_timeout" yaml:"shutdown_timeout"`
	LogLevel          string        `mapstructure:"log_level" yaml:"log_level"`
	PublicDir         string        `mapstructure:"public_dir" yaml:"public_dir"`
	MaxMsgsPerSec     float64       `mapstructure:"max_msgs_per_sec" yaml:"max_msgs_per_sec"`
	MsgBurst          int           `mapstructure:"msg_burst" yaml:"msg_burst"`
}

// Default returns configuration with reasonable starter defaults. The
// message budget leaves headroom above a 60Hz render loop.
func Default() Config {
	return Config{
		Addr:              ":8080",
		ReadHeaderTimeout: 5 * time.Second,
		ShutdownTimeout:   5 * time.Second,
		LogLevel:          "info",
		MaxMsgsPerSec:     120,
		MsgBurst:          40,
	}
}

// UpdateFrom overwrites non-zero values from other config into receiver.
func (c *Config) UpdateFrom(other Config) {
	if other.Addr != "" {
		c.Addr = other.Addr
	}
	if other.ReadHeaderTimeout != 0 {
		c.ReadHeaderTimeout = other.ReadHeaderTimeout
	}
	if other.ShutdownTimeout != 0 {
		c.ShutdownTimeout = other.ShutdownTimeout
	}
	if other.LogLevel != "" {
		c.LogLevel = other.LogLevel
	}
	if other.PublicDir != "" {
		c.PublicDir = other.PublicDir
	}
	if other.MaxMsgsPerSec != 0 {
		c.MaxMsgsPerSec = other.MaxMsgsPerSec
	}
	if other.MsgBurst != 0 {
		c.MsgBurst = other.MsgBurst
	}
}
