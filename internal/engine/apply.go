package engine

import "github.com/lgbarn/dokchess-go/internal/chess"

// Apply returns the position after move. The move is assumed to be at
// least pseudo-legal; if the origin square is empty the position is
// returned unchanged.
func (p Position) Apply(move chess.Move) Position {
	if !move.From.IsValid() || !move.To.IsValid() {
		return p
	}
	piece := p.board[move.From]
	if piece == chess.Empty {
		return p
	}

	next := p
	colour := chess.ExtractColour(piece)
	pieceType := chess.ExtractPiece(piece)
	captured := next.board[move.To]

	next.board[move.To] = piece
	next.board[move.From] = chess.Empty
	next.epSquare = chess.NoSquare

	switch pieceType {
	case chess.Pawn:
		captured = applyPawnSpecials(&next, p.epSquare, move, colour, captured)
	case chess.King:
		applyKingMove(&next, move, colour)
	case chess.Rook:
		next.castling = next.castling.Without(rookCornerRight(move.From))
	}

	if pieceType == chess.Pawn || captured != chess.Empty {
		next.halfmoveClock = 0
	} else {
		next.halfmoveClock++
	}
	if colour == chess.Black {
		next.fullmoveNumber++
	}
	next.toMove = colour.Opposite()

	return next
}

// applyPawnSpecials handles en passant capture, promotion and the new en
// passant target. It returns the captured piece, which for en passant is the
// pawn removed from beside the destination.
func applyPawnSpecials(next *Position, epSquare chess.Square, move chess.Move, colour chess.Colour, captured chess.Piece) chess.Piece {
	fromRow, fromCol := move.From.Row(), move.From.Col()
	toRow, toCol := move.To.Row(), move.To.Col()

	if move.To == epSquare && fromCol != toCol && captured == chess.Empty {
		victim, _ := chess.SquareAt(fromRow, toCol)
		captured = next.board[victim]
		next.board[victim] = chess.Empty
	}

	if move.Promotion != chess.Empty {
		next.board[move.To] = chess.MakeColouredPiece(colour, move.Promotion)
	}

	if abs(toRow-fromRow) == 2 {
		next.epSquare, _ = chess.SquareAt((fromRow+toRow)/2, fromCol)
	}
	return captured
}

// applyKingMove moves the rook when the king castles and forfeits both of
// the colour's castling rights on any king move.
func applyKingMove(next *Position, move chess.Move, colour chess.Colour) {
	if move.From.Row() == move.To.Row() {
		if cs, ok := castleSideForKingMove(move.From.Col(), move.To.Col()); ok {
			row := move.From.Row()
			rookFrom, _ := chess.SquareAt(row, cs.rookFrom)
			rookTo, _ := chess.SquareAt(row, cs.rookTo)
			next.board[rookTo] = next.board[rookFrom]
			next.board[rookFrom] = chess.Empty
		}
	}
	next.castling = next.castling.Without(kingsideRight(colour) | queensideRight(colour))
}

// rookCornerRight returns the right forfeited when a rook leaves sq.
// A capture on a corner leaves the victim's right in place; castling
// generation requires the own rook on its corner.
func rookCornerRight(sq chess.Square) CastlingRights {
	switch sq {
	case chess.H1:
		return WhiteKingside
	case chess.A1:
		return WhiteQueenside
	case chess.H8:
		return BlackKingside
	case chess.A8:
		return BlackQueenside
	default:
		return NoCastling
	}
}
