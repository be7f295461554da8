// Package config provides configuration for the engine and its front ends.
package config

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"

	"github.com/lgbarn/dokchess-go/internal/errors"
)

// DefaultLogLevel is the log level used when none is configured.
const DefaultLogLevel = "info"

// Config holds all program configuration.
type Config struct {
	Search   *SearchConfig
	Suite    *SuiteConfig
	Protocol *ProtocolConfig

	// LogLevel is a zerolog level name (trace, debug, info, warn, error).
	LogLevel string

	// Output streams
	Output  io.Writer
	LogFile io.Writer
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Search:   NewSearchConfig(),
		Suite:    NewSuiteConfig(),
		Protocol: NewProtocolConfig(),
		LogLevel: DefaultLogLevel,
		Output:   os.Stdout,
		LogFile:  os.Stderr,
	}
}

// Validate checks every sub-configuration.
func (c *Config) Validate() error {
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("log level %q: %w", c.LogLevel, errors.ErrInvalidConfig)
	}
	if err := c.Search.Validate(); err != nil {
		return err
	}
	if err := c.Suite.Validate(); err != nil {
		return err
	}
	return c.Protocol.Validate()
}
