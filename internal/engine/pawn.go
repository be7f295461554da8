package engine

import "github.com/lgbarn/dokchess-go/internal/chess"

// pawnStartRow returns the row from which a colour's pawns may double push.
func pawnStartRow(colour chess.Colour) int {
	if colour == chess.White {
		return 6
	}
	return 1
}

// appendPawnMoves adds the pseudo-legal moves of the pawn on from: pushes
// first, then captures toward the lower column and the higher column.
func appendPawnMoves(pos Position, from chess.Square, moves []chess.Move) []chess.Move {
	colour := pos.toMove
	dy := pawnDirection(colour)

	if to, ok := from.Offset(0, dy); ok && pos.board[to] == chess.Empty {
		moves = appendPawnMove(moves, from, to)
		if from.Row() == pawnStartRow(colour) {
			if to2, ok := from.Offset(0, 2*dy); ok && pos.board[to2] == chess.Empty {
				moves = append(moves, chess.NewMove(from, to2))
			}
		}
	}

	for _, dx := range [2]int{-1, 1} {
		to, ok := from.Offset(dx, dy)
		if !ok {
			continue
		}
		if pos.isEnemy(to, colour) || (to == pos.epSquare && pos.board[to] == chess.Empty) {
			moves = appendPawnMove(moves, from, to)
		}
	}
	return moves
}

// appendPawnMove adds a pawn move, expanded into the four promotions when it
// reaches the last row.
func appendPawnMove(moves []chess.Move, from, to chess.Square) []chess.Move {
	if to.Row() != 0 && to.Row() != chess.BoardSize-1 {
		return append(moves, chess.NewMove(from, to))
	}
	for _, promotion := range chess.PromotionPieces {
		moves = append(moves, chess.Move{From: from, To: to, Promotion: promotion})
	}
	return moves
}
