package search

import (
	"github.com/lgbarn/dokchess-go/internal/chess"
	"github.com/lgbarn/dokchess-go/internal/engine"
)

// Greedy looks one ply ahead and plays the move with the best evaluation
// for the mover.
type Greedy struct {
	evaluator Evaluator
}

// NewGreedy creates a one-ply selector.
func NewGreedy(evaluator Evaluator) *Greedy {
	return &Greedy{evaluator: evaluator}
}

// ChooseMove returns the best move for the side to move.
func (g *Greedy) ChooseMove(pos engine.Position) (chess.Move, bool) {
	result := g.Search(pos)
	return result.Move, result.Found
}

// Search evaluates every legal move and keeps the first with the strictly
// highest score.
func (g *Greedy) Search(pos engine.Position) Result {
	mover := pos.SideToMove()
	result := Result{}

	for _, move := range engine.LegalMoves(pos) {
		result.Nodes++
		score := g.evaluator.Evaluate(pos.Apply(move), mover)
		if !result.Found || score > result.Score {
			result.Move = move
			result.Score = score
			result.Found = true
		}
	}
	return result
}
