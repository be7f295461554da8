package config

import (
	"bytes"
	"errors"
	"testing"

	chesserrors "github.com/lgbarn/dokchess-go/internal/errors"
	"github.com/lgbarn/dokchess-go/internal/search"
)

// TestSearchConfig_Defaults verifies SearchConfig has sensible defaults
func TestSearchConfig_Defaults(t *testing.T) {
	cfg := NewSearchConfig()

	if cfg.Depth != 4 {
		t.Errorf("Depth = %d, want 4", cfg.Depth)
	}
	if cfg.Strategy != search.StrategyMinimax {
		t.Errorf("Strategy = %q, want %q", cfg.Strategy, search.StrategyMinimax)
	}
}

// TestSuiteConfig_Defaults verifies SuiteConfig has sensible defaults
func TestSuiteConfig_Defaults(t *testing.T) {
	cfg := NewSuiteConfig()

	if cfg.Workers != 1 {
		t.Errorf("Workers = %d, want 1", cfg.Workers)
	}
	if cfg.BufferSize != 16 {
		t.Errorf("BufferSize = %d, want 16", cfg.BufferSize)
	}
	if cfg.Format != "text" {
		t.Errorf("Format = %q, want text", cfg.Format)
	}
}

// TestSearchConfig_Validate verifies search config validation
func TestSearchConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     SearchConfig
		wantErr bool
	}{
		{"defaults", *NewSearchConfig(), false},
		{"depth one", SearchConfig{Depth: 1, Strategy: "minimax"}, false},
		{"zero depth", SearchConfig{Depth: 0, Strategy: "minimax"}, true},
		{"greedy ignores depth", SearchConfig{Depth: 0, Strategy: "greedy"}, false},
		{"unknown strategy", SearchConfig{Depth: 4, Strategy: "mcts"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, chesserrors.ErrInvalidConfig) {
				t.Errorf("Validate() error = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

// TestSuiteConfig_Validate verifies suite config validation
func TestSuiteConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     SuiteConfig
		wantErr bool
	}{
		{"defaults", *NewSuiteConfig(), false},
		{"unbuffered", SuiteConfig{Workers: 4, BufferSize: 0, Format: "text"}, false},
		{"json", SuiteConfig{Workers: 1, BufferSize: 16, Format: "json"}, false},
		{"no workers", SuiteConfig{Workers: 0, BufferSize: 16, Format: "text"}, true},
		{"negative buffer", SuiteConfig{Workers: 1, BufferSize: -1, Format: "text"}, true},
		{"unknown format", SuiteConfig{Workers: 1, BufferSize: 16, Format: "xml"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

// TestConfig_Validate verifies the top-level validation
func TestConfig_Validate(t *testing.T) {
	if err := NewConfig().Validate(); err != nil {
		t.Errorf("NewConfig().Validate() error = %v", err)
	}

	cfg := NewConfigBuilder().WithLogLevel("loud").Build()
	if err := cfg.Validate(); !errors.Is(err, chesserrors.ErrInvalidConfig) {
		t.Errorf("Validate() with bad log level error = %v, want ErrInvalidConfig", err)
	}

	cfg = NewConfigBuilder().WithEngineName("").Build()
	if err := cfg.Validate(); !errors.Is(err, chesserrors.ErrInvalidConfig) {
		t.Errorf("Validate() with empty engine name error = %v, want ErrInvalidConfig", err)
	}

	cfg = NewConfigBuilder().WithWorkers(0).Build()
	if err := cfg.Validate(); !errors.Is(err, chesserrors.ErrInvalidConfig) {
		t.Errorf("Validate() with no workers error = %v, want ErrInvalidConfig", err)
	}
}

// TestSearchConfig_NewSelector verifies the configured selector is built
func TestSearchConfig_NewSelector(t *testing.T) {
	sel, err := (&SearchConfig{Depth: 2, Strategy: "greedy"}).NewSelector()
	if err != nil {
		t.Fatalf("NewSelector() error = %v", err)
	}
	if _, ok := sel.(*search.Greedy); !ok {
		t.Errorf("NewSelector() = %T, want *search.Greedy", sel)
	}
}

// TestConfigBuilder verifies the builder pattern works correctly
func TestConfigBuilder(t *testing.T) {
	out := &bytes.Buffer{}
	logs := &bytes.Buffer{}
	cfg := NewConfigBuilder().
		WithDepth(2).
		WithStrategy("greedy").
		WithWorkers(8).
		WithBufferSize(64).
		WithFormat("json").
		WithEngineName("Tester").
		WithLogLevel("debug").
		WithOutput(out).
		WithLogFile(logs).
		Build()

	if cfg.Search.Depth != 2 {
		t.Errorf("Depth = %d, want 2", cfg.Search.Depth)
	}
	if cfg.Search.Strategy != "greedy" {
		t.Errorf("Strategy = %q, want greedy", cfg.Search.Strategy)
	}
	if cfg.Suite.Workers != 8 {
		t.Errorf("Workers = %d, want 8", cfg.Suite.Workers)
	}
	if cfg.Suite.BufferSize != 64 {
		t.Errorf("BufferSize = %d, want 64", cfg.Suite.BufferSize)
	}
	if cfg.Suite.Format != "json" {
		t.Errorf("Format = %q, want json", cfg.Suite.Format)
	}
	if cfg.Protocol.EngineName != "Tester" {
		t.Errorf("EngineName = %q, want Tester", cfg.Protocol.EngineName)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want debug", cfg.LogLevel)
	}
	if cfg.Output != out {
		t.Error("WithOutput did not set Output")
	}
	if cfg.LogFile != logs {
		t.Error("WithLogFile did not set LogFile")
	}
}
