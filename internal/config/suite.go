package config

import (
	"fmt"

	"github.com/lgbarn/dokchess-go/internal/errors"
	"github.com/lgbarn/dokchess-go/internal/output"
)

// SuiteConfig holds settings for running EPD test suites.
type SuiteConfig struct {
	// Workers is the number of positions searched concurrently.
	Workers int

	// BufferSize is the capacity of the work and result queues.
	BufferSize int

	// Format selects the result output: "text" or "json".
	Format string
}

// NewSuiteConfig creates a SuiteConfig with default values.
func NewSuiteConfig() *SuiteConfig {
	return &SuiteConfig{
		Workers:    1,
		BufferSize: 16,
		Format:     output.FormatText,
	}
}

// Validate checks that the suite configuration is valid.
func (s *SuiteConfig) Validate() error {
	if s.Workers < 1 {
		return fmt.Errorf("workers (%d) must be at least 1: %w", s.Workers, errors.ErrInvalidConfig)
	}
	if s.BufferSize < 0 {
		return fmt.Errorf("buffer size (%d) must not be negative: %w", s.BufferSize, errors.ErrInvalidConfig)
	}
	if s.Format != output.FormatText && s.Format != output.FormatJSON {
		return fmt.Errorf("output format %q must be %s or %s: %w",
			s.Format, output.FormatText, output.FormatJSON, errors.ErrInvalidConfig)
	}
	return nil
}
