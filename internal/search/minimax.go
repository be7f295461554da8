package search

import (
	"github.com/lgbarn/dokchess-go/internal/chess"
	"github.com/lgbarn/dokchess-go/internal/engine"
)

// Minimax is a fixed-depth minimax search without pruning. A Minimax holds
// no mutable state and may be shared between goroutines.
type Minimax struct {
	depth     int
	evaluator Evaluator
}

// NewMinimax creates a search to the given depth in plies. Depths below one
// are raised to one.
func NewMinimax(depth int, evaluator Evaluator) *Minimax {
	if depth < 1 {
		depth = 1
	}
	return &Minimax{depth: depth, evaluator: evaluator}
}

// Depth returns the search depth in plies.
func (m *Minimax) Depth() int {
	return m.depth
}

// ChooseMove returns the best move for the side to move.
func (m *Minimax) ChooseMove(pos engine.Position) (chess.Move, bool) {
	result := m.Search(pos)
	return result.Move, result.Found
}

// Search scores every legal move and keeps the first with the strictly
// highest score.
func (m *Minimax) Search(pos engine.Position) Result {
	var nodes uint64
	mover := pos.SideToMove()
	result := Result{}

	for _, move := range engine.LegalMoves(pos) {
		score := m.score(pos.Apply(move), 1, mover, &nodes)
		if !result.Found || score > result.Score {
			result.Move = move
			result.Score = score
			result.Found = true
		}
	}
	result.Nodes = nodes
	return result
}

// Score returns the minimax value of pos at the given ply from the point
// of view of perspective. Even plies maximise, odd plies minimise.
func (m *Minimax) Score(pos engine.Position, ply int, perspective chess.Colour) int {
	var nodes uint64
	return m.score(pos, ply, perspective, &nodes)
}

func (m *Minimax) score(pos engine.Position, ply int, perspective chess.Colour, nodes *uint64) int {
	*nodes++

	if ply >= m.depth {
		return m.evaluator.Evaluate(pos, perspective)
	}

	moves := engine.LegalMoves(pos)
	if len(moves) == 0 {
		return terminalScore(pos, ply, perspective)
	}

	maximise := ply%2 == 0
	best := 0
	for i, move := range moves {
		score := m.score(pos.Apply(move), ply+1, perspective, nodes)
		if i == 0 || (maximise && score > best) || (!maximise && score < best) {
			best = score
		}
	}
	return best
}

// terminalScore scores a position without legal moves: zero for stalemate,
// otherwise a mate that is worth less the deeper it lies.
func terminalScore(pos engine.Position, ply int, perspective chess.Colour) int {
	mated := pos.SideToMove()
	if !engine.IsInCheck(pos, mated) {
		return 0
	}
	score := MateScore - ply
	if mated == perspective {
		return -score
	}
	return score
}
