package config

import (
	"github.com/lgbarn/dokchess-go/internal/search"
)

// SearchConfig holds settings for move selection.
type SearchConfig struct {
	// Depth is the minimax search depth in plies.
	Depth int

	// Strategy selects the move selector: "minimax" or "greedy".
	Strategy string
}

// NewSearchConfig creates a SearchConfig with default values.
func NewSearchConfig() *SearchConfig {
	return &SearchConfig{
		Depth:    4,
		Strategy: search.StrategyMinimax,
	}
}

// Validate checks that the search configuration is valid.
func (s *SearchConfig) Validate() error {
	_, err := s.NewSelector()
	return err
}

// NewSelector builds the configured move selector.
func (s *SearchConfig) NewSelector() (search.Selector, error) {
	return search.New(s.Strategy, s.Depth)
}
