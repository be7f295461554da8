// Package search selects moves for a position.
package search

import (
	"fmt"
	"strings"

	"github.com/lgbarn/dokchess-go/internal/chess"
	"github.com/lgbarn/dokchess-go/internal/engine"
	"github.com/lgbarn/dokchess-go/internal/errors"
	"github.com/lgbarn/dokchess-go/internal/eval"
)

// MateScore is the magnitude of a mate found at the root. Mates further
// down the tree score one less per ply.
const MateScore = 10000

// Strategy names accepted by New.
const (
	StrategyMinimax = "minimax"
	StrategyGreedy  = "greedy"
)

// Evaluator scores a position from the point of view of perspective.
type Evaluator interface {
	Evaluate(pos engine.Position, perspective chess.Colour) int
}

// Selector picks a move for the side to move. The second result is false
// when the position has no legal move.
type Selector interface {
	ChooseMove(pos engine.Position) (chess.Move, bool)
	Search(pos engine.Position) Result
}

// Result describes a completed search.
type Result struct {
	Move  chess.Move
	Score int    // score of Move from the mover's point of view
	Nodes uint64 // positions visited
	Found bool   // false when there was no legal move
}

// String formats the result for logs.
func (r Result) String() string {
	if !r.Found {
		return "no move"
	}
	return fmt.Sprintf("%v score %d nodes %d", r.Move, r.Score, r.Nodes)
}

// IsMateScore reports whether score encodes a forced mate.
func IsMateScore(score int) bool {
	return score > MateScore-1000 || score < -(MateScore-1000)
}

// New builds a selector by strategy name with the material evaluator.
func New(strategy string, depth int) (Selector, error) {
	switch strings.ToLower(strategy) {
	case StrategyMinimax, "":
		if depth < 1 {
			return nil, fmt.Errorf("search depth must be at least 1, got %d: %w", depth, errors.ErrInvalidConfig)
		}
		return NewMinimax(depth, eval.NewMaterial()), nil
	case StrategyGreedy:
		return NewGreedy(eval.NewMaterial()), nil
	default:
		return nil, fmt.Errorf("unknown search strategy %q: %w", strategy, errors.ErrInvalidConfig)
	}
}
