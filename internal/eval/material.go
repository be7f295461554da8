// Package eval provides static evaluation of positions.
package eval

import (
	"github.com/lgbarn/dokchess-go/internal/chess"
	"github.com/lgbarn/dokchess-go/internal/engine"
)

// pieceValues holds the material value of each piece type. Kings are not
// counted.
var pieceValues = [chess.NumPieceValues]int{
	chess.Empty:  0,
	chess.Pawn:   1,
	chess.Knight: 3,
	chess.Bishop: 3,
	chess.Rook:   5,
	chess.Queen:  9,
	chess.King:   0,
}

// PieceValue returns the material value of a piece type.
func PieceValue(piece chess.Piece) int {
	if piece < 0 || piece >= chess.NumPieceValues {
		return 0
	}
	return pieceValues[piece]
}

// MaterialScore sums the piece values on the board, counting perspective's
// pieces positively and the opponent's negatively.
func MaterialScore(pos engine.Position, perspective chess.Colour) int {
	score := 0
	for sq := chess.Square(0); sq < chess.NumSquares; sq++ {
		piece := pos.Piece(sq)
		if piece == chess.Empty {
			continue
		}
		value := PieceValue(chess.ExtractPiece(piece))
		if chess.ExtractColour(piece) == perspective {
			score += value
		} else {
			score -= value
		}
	}
	return score
}

// Material evaluates positions by material balance alone.
type Material struct{}

// NewMaterial returns a material evaluator.
func NewMaterial() *Material {
	return &Material{}
}

// Evaluate returns the material balance from perspective's point of view.
func (m *Material) Evaluate(pos engine.Position, perspective chess.Colour) int {
	return MaterialScore(pos, perspective)
}
