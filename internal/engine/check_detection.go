package engine

import "github.com/lgbarn/dokchess-go/internal/chess"

// IsInCheck returns true if the given colour's king is attacked. A colour
// without a king is never in check.
func IsInCheck(pos Position, colour chess.Colour) bool {
	king := pos.KingSquare(colour)
	if king == chess.NoSquare {
		return false
	}
	return IsAttacked(pos, king, colour.Opposite())
}

// IsAttacked returns true if any piece of colour by attacks target.
func IsAttacked(pos Position, target chess.Square, by chess.Colour) bool {
	rook := chess.MakeColouredPiece(by, chess.Rook)
	bishop := chess.MakeColouredPiece(by, chess.Bishop)
	queen := chess.MakeColouredPiece(by, chess.Queen)

	if rayAttacked(pos, OrthogonalRays(target), rook, queen) {
		return true
	}
	if rayAttacked(pos, DiagonalRays(target), bishop, queen) {
		return true
	}

	knight := chess.MakeColouredPiece(by, chess.Knight)
	for _, sq := range KnightTargets(target) {
		if pos.board[sq] == knight {
			return true
		}
	}

	king := chess.MakeColouredPiece(by, chess.King)
	for _, sq := range KingTargets(target) {
		if pos.board[sq] == king {
			return true
		}
	}

	return pawnAttacks(pos, target, by)
}

// rayAttacked checks the first occupied square of every ray for one of the
// two slider pieces.
func rayAttacked(pos Position, rays []Ray, slider, queen chess.Piece) bool {
	for _, ray := range rays {
		for _, sq := range ray {
			piece := pos.board[sq]
			if piece == chess.Empty {
				continue
			}
			if piece == slider || piece == queen {
				return true
			}
			break
		}
	}
	return false
}

// pawnAttacks checks the two squares a pawn of colour by would capture
// target from: one row behind it in by's direction of travel.
func pawnAttacks(pos Position, target chess.Square, by chess.Colour) bool {
	pawn := chess.MakeColouredPiece(by, chess.Pawn)
	dy := -pawnDirection(by)
	for _, dx := range [2]int{-1, 1} {
		if sq, ok := target.Offset(dx, dy); ok && pos.board[sq] == pawn {
			return true
		}
	}
	return false
}
