package engine

import "github.com/lgbarn/dokchess-go/internal/chess"

// GameStatus classifies a position for the side to move.
type GameStatus int

const (
	Ongoing GameStatus = iota
	Checkmate
	Stalemate
	InsufficientMaterial
	// ThreefoldRepetition needs the game history, so Status never returns
	// it; callers that track positions do.
	ThreefoldRepetition
)

// String returns the string representation of a status.
func (s GameStatus) String() string {
	switch s {
	case Checkmate:
		return "checkmate"
	case Stalemate:
		return "stalemate"
	case InsufficientMaterial:
		return "insufficient material"
	case ThreefoldRepetition:
		return "threefold repetition"
	default:
		return "ongoing"
	}
}

// IsOver reports whether the game has ended.
func (s GameStatus) IsOver() bool {
	return s != Ongoing
}

// Status returns the state of the game in pos. A side without legal moves
// is mated or stalemated; otherwise a board without mating material is a
// draw.
func Status(pos Position) GameStatus {
	if !HasLegalMoves(pos) {
		if IsInCheck(pos, pos.toMove) {
			return Checkmate
		}
		return Stalemate
	}
	if HasInsufficientMaterial(pos) {
		return InsufficientMaterial
	}
	return Ongoing
}

// IsCheckmate returns true if the position is checkmate for the side to move.
func IsCheckmate(pos Position) bool {
	return IsInCheck(pos, pos.toMove) && !HasLegalMoves(pos)
}

// IsStalemate returns true if the position is stalemate for the side to move.
func IsStalemate(pos Position) bool {
	return !IsInCheck(pos, pos.toMove) && !HasLegalMoves(pos)
}

// HasInsufficientMaterial returns true if the position has insufficient
// mating material for either side.
// Insufficient material includes:
// - K vs K
// - K+minor vs K
// - any number of bishops, all on squares of one colour
func HasInsufficientMaterial(pos Position) bool {
	var minors, bishops, lightBishops int

	for sq := chess.Square(0); sq < chess.NumSquares; sq++ {
		piece := pos.board[sq]
		if piece == chess.Empty {
			continue
		}

		switch chess.ExtractPiece(piece) {
		case chess.King:
			continue
		case chess.Pawn, chess.Rook, chess.Queen:
			return false
		case chess.Bishop:
			bishops++
			if isLightSquare(sq) {
				lightBishops++
			}
		}
		minors++
	}

	switch {
	case minors <= 1:
		return true
	case bishops == minors:
		return lightBishops == 0 || lightBishops == bishops
	}
	return false
}

// isLightSquare returns true if sq is a light square. a8 is light.
func isLightSquare(sq chess.Square) bool {
	return (sq.Row()+sq.Col())%2 == 0
}
