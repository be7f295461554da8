package config

import "io"

// ConfigBuilder provides a fluent API for building Config instances.
type ConfigBuilder struct {
	cfg *Config
}

// NewConfigBuilder creates a new ConfigBuilder with default values.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		cfg: NewConfig(),
	}
}

// Build returns the built Config.
func (b *ConfigBuilder) Build() *Config {
	return b.cfg
}

// WithDepth sets the search depth.
func (b *ConfigBuilder) WithDepth(depth int) *ConfigBuilder {
	b.cfg.Search.Depth = depth
	return b
}

// WithStrategy sets the search strategy.
func (b *ConfigBuilder) WithStrategy(strategy string) *ConfigBuilder {
	b.cfg.Search.Strategy = strategy
	return b
}

// WithWorkers sets the number of suite workers.
func (b *ConfigBuilder) WithWorkers(workers int) *ConfigBuilder {
	b.cfg.Suite.Workers = workers
	return b
}

// WithBufferSize sets the suite queue capacity.
func (b *ConfigBuilder) WithBufferSize(size int) *ConfigBuilder {
	b.cfg.Suite.BufferSize = size
	return b
}

// WithFormat sets the suite result format.
func (b *ConfigBuilder) WithFormat(format string) *ConfigBuilder {
	b.cfg.Suite.Format = format
	return b
}

// WithEngineName sets the name announced to xboard.
func (b *ConfigBuilder) WithEngineName(name string) *ConfigBuilder {
	b.cfg.Protocol.EngineName = name
	return b
}

// WithLogLevel sets the log level.
func (b *ConfigBuilder) WithLogLevel(level string) *ConfigBuilder {
	b.cfg.LogLevel = level
	return b
}

// WithOutput sets the output writer.
func (b *ConfigBuilder) WithOutput(w io.Writer) *ConfigBuilder {
	b.cfg.Output = w
	return b
}

// WithLogFile sets the log writer.
func (b *ConfigBuilder) WithLogFile(w io.Writer) *ConfigBuilder {
	b.cfg.LogFile = w
	return b
}
