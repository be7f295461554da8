package config

import (
	"fmt"

	"github.com/lgbarn/dokchess-go/internal/errors"
)

// ProtocolConfig holds settings for the xboard front end.
type ProtocolConfig struct {
	// EngineName is announced in the feature reply.
	EngineName string
}

// NewProtocolConfig creates a ProtocolConfig with default values.
func NewProtocolConfig() *ProtocolConfig {
	return &ProtocolConfig{
		EngineName: "DokChess",
	}
}

// Validate checks that the protocol configuration is valid.
func (p *ProtocolConfig) Validate() error {
	if p.EngineName == "" {
		return fmt.Errorf("engine name must not be empty: %w", errors.ErrInvalidConfig)
	}
	return nil
}
