// Package engine provides the position model, move generation and rules.
package engine

import "github.com/lgbarn/dokchess-go/internal/chess"

// Position is a snapshot of a game: piece placement, side to move, castling
// rights, en passant target and the move counters. Positions are values;
// Apply derives a new one and nothing mutates an existing position.
type Position struct {
	board          [chess.NumSquares]chess.Piece
	toMove         chess.Colour
	castling       CastlingRights
	epSquare       chess.Square
	halfmoveClock  int
	fullmoveNumber int
}

// NewInitialPosition returns the standard starting position.
func NewInitialPosition() Position {
	pos, err := NewPositionFromFEN(InitialFEN)
	if err != nil {
		panic(err)
	}
	return pos
}

// Piece returns the coloured piece on sq, or chess.Empty.
func (p Position) Piece(sq chess.Square) chess.Piece {
	if !sq.IsValid() {
		return chess.Empty
	}
	return p.board[sq]
}

// SideToMove returns the colour to move.
func (p Position) SideToMove() chess.Colour {
	return p.toMove
}

// CastlingRights returns the remaining castling rights.
func (p Position) CastlingRights() CastlingRights {
	return p.castling
}

// EnPassant returns the en passant target square, or chess.NoSquare.
func (p Position) EnPassant() chess.Square {
	return p.epSquare
}

// HalfmoveClock returns the number of half-moves since the last pawn move
// or capture.
func (p Position) HalfmoveClock() int {
	return p.halfmoveClock
}

// FullmoveNumber returns the move number, starting at 1.
func (p Position) FullmoveNumber() int {
	return p.fullmoveNumber
}

// KingSquare returns the square of the colour's king, or chess.NoSquare if
// it has none.
func (p Position) KingSquare(colour chess.Colour) chess.Square {
	king := chess.MakeColouredPiece(colour, chess.King)
	for sq := chess.Square(0); sq < chess.NumSquares; sq++ {
		if p.board[sq] == king {
			return sq
		}
	}
	return chess.NoSquare
}

// String returns the FEN of the position.
func (p Position) String() string {
	return p.FEN()
}

// isEnemy reports whether sq holds a piece of the opponent of colour.
func (p Position) isEnemy(sq chess.Square, colour chess.Colour) bool {
	piece := p.board[sq]
	return piece != chess.Empty && chess.ExtractColour(piece) != colour
}
