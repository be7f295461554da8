package engine

import "github.com/lgbarn/dokchess-go/internal/chess"

// LegalMoves returns every legal move for the side to move, in generation
// order: pieces by square from a8 to h1, then castling.
func LegalMoves(pos Position) []chess.Move {
	candidates := pseudoLegalMoves(pos)
	legal := candidates[:0]
	for _, move := range candidates {
		if isLegalCandidate(pos, move) {
			legal = append(legal, move)
		}
	}
	return legal
}

// HasLegalMoves returns true if the side to move has at least one legal move.
func HasLegalMoves(pos Position) bool {
	for _, move := range pseudoLegalMoves(pos) {
		if isLegalCandidate(pos, move) {
			return true
		}
	}
	return false
}

// IsLegalMove reports whether move is among the legal moves of pos.
func IsLegalMove(pos Position, move chess.Move) bool {
	for _, legal := range LegalMoves(pos) {
		if legal == move {
			return true
		}
	}
	return false
}

// isLegalCandidate applies a pseudo-legal move and checks that the mover's
// king is not left attacked.
func isLegalCandidate(pos Position, move chess.Move) bool {
	colour := pos.toMove
	next := pos.Apply(move)
	king := next.KingSquare(colour)
	if king == chess.NoSquare {
		return true
	}
	return !IsAttacked(next, king, colour.Opposite())
}

// pseudoLegalMoves generates moves that obey piece movement without regard
// to leaving the own king in check.
func pseudoLegalMoves(pos Position) []chess.Move {
	colour := pos.toMove
	moves := make([]chess.Move, 0, 48)

	for from := chess.Square(0); from < chess.NumSquares; from++ {
		piece := pos.board[from]
		if piece == chess.Empty || chess.ExtractColour(piece) != colour {
			continue
		}

		switch chess.ExtractPiece(piece) {
		case chess.Pawn:
			moves = appendPawnMoves(pos, from, moves)
		case chess.Knight:
			moves = appendStepMoves(pos, from, KnightTargets(from), moves)
		case chess.King:
			moves = appendStepMoves(pos, from, KingTargets(from), moves)
		case chess.Bishop:
			moves = appendSliderMoves(pos, from, DiagonalRays(from), moves)
		case chess.Rook:
			moves = appendSliderMoves(pos, from, OrthogonalRays(from), moves)
		case chess.Queen:
			moves = appendSliderMoves(pos, from, AllRays(from), moves)
		}
	}

	return appendCastlingMoves(pos, moves)
}

// appendStepMoves adds a move to every target that is empty or holds an
// enemy piece.
func appendStepMoves(pos Position, from chess.Square, targets []chess.Square, moves []chess.Move) []chess.Move {
	for _, to := range targets {
		if pos.board[to] == chess.Empty || pos.isEnemy(to, pos.toMove) {
			moves = append(moves, chess.NewMove(from, to))
		}
	}
	return moves
}

// appendSliderMoves walks each ray until the first occupied square, which is
// included when it holds an enemy piece.
func appendSliderMoves(pos Position, from chess.Square, rays []Ray, moves []chess.Move) []chess.Move {
	for _, ray := range rays {
		for _, to := range ray {
			if pos.board[to] == chess.Empty {
				moves = append(moves, chess.NewMove(from, to))
				continue
			}
			if pos.isEnemy(to, pos.toMove) {
				moves = append(moves, chess.NewMove(from, to))
			}
			break
		}
	}
	return moves
}
