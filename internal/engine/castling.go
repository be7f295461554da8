package engine

import (
	"fmt"
	"strings"

	"github.com/lgbarn/dokchess-go/internal/chess"
	"github.com/lgbarn/dokchess-go/internal/errors"
)

// CastlingRights is the set of castling options still available.
type CastlingRights uint8

const (
	WhiteKingside CastlingRights = 1 << iota
	WhiteQueenside
	BlackKingside
	BlackQueenside

	NoCastling  CastlingRights = 0
	AllCastling                = WhiteKingside | WhiteQueenside | BlackKingside | BlackQueenside
)

var castlingLetters = []struct {
	right  CastlingRights
	letter byte
}{
	{WhiteKingside, 'K'},
	{WhiteQueenside, 'Q'},
	{BlackKingside, 'k'},
	{BlackQueenside, 'q'},
}

// Has reports whether every right in r is present.
func (c CastlingRights) Has(r CastlingRights) bool {
	return r != NoCastling && c&r == r
}

// Without returns the rights with r removed.
func (c CastlingRights) Without(r CastlingRights) CastlingRights {
	return c &^ r
}

// String returns the FEN form, e.g. "KQkq", or "-" when empty.
func (c CastlingRights) String() string {
	if c == NoCastling {
		return "-"
	}
	var sb strings.Builder
	for _, cl := range castlingLetters {
		if c&cl.right != 0 {
			sb.WriteByte(cl.letter)
		}
	}
	return sb.String()
}

// ParseCastlingRights parses the FEN castling field.
func ParseCastlingRights(field string) (CastlingRights, error) {
	if field == "-" {
		return NoCastling, nil
	}
	if field == "" {
		return NoCastling, fmt.Errorf("empty castling field: %w", errors.ErrInvalidFEN)
	}
	rights := NoCastling
	for i := 0; i < len(field); i++ {
		found := false
		for _, cl := range castlingLetters {
			if field[i] == cl.letter {
				rights |= cl.right
				found = true
				break
			}
		}
		if !found {
			return NoCastling, fmt.Errorf("invalid castling character: %c: %w", field[i], errors.ErrInvalidFEN)
		}
	}
	return rights, nil
}

// kingsideRight returns the kingside right of a colour.
func kingsideRight(colour chess.Colour) CastlingRights {
	if colour == chess.White {
		return WhiteKingside
	}
	return BlackKingside
}

// queensideRight returns the queenside right of a colour.
func queensideRight(colour chess.Colour) CastlingRights {
	if colour == chess.White {
		return WhiteQueenside
	}
	return BlackQueenside
}

// castleSide describes one castling option by column.
type castleSide struct {
	kingside bool
	rookFrom int
	rookTo   int
	kingTo   int
	between  []int // must be empty
	safe     []int // king start, transit and destination
}

const kingStartCol = 4

var castleSides = [2]castleSide{
	{kingside: true, rookFrom: 7, rookTo: 5, kingTo: 6, between: []int{5, 6}, safe: []int{4, 5, 6}},
	{kingside: false, rookFrom: 0, rookTo: 3, kingTo: 2, between: []int{1, 2, 3}, safe: []int{4, 3, 2}},
}

func (cs castleSide) right(colour chess.Colour) CastlingRights {
	if cs.kingside {
		return kingsideRight(colour)
	}
	return queensideRight(colour)
}

// castleSideForKingMove returns the castling option a king move from the
// start column to kingTo performs, if any.
func castleSideForKingMove(fromCol, toCol int) (castleSide, bool) {
	if fromCol != kingStartCol || abs(toCol-fromCol) != 2 {
		return castleSide{}, false
	}
	for _, cs := range castleSides {
		if cs.kingTo == toCol {
			return cs, true
		}
	}
	return castleSide{}, false
}

// appendCastlingMoves adds the castling moves available to the side to move,
// kingside first.
func appendCastlingMoves(pos Position, moves []chess.Move) []chess.Move {
	colour := pos.toMove
	row := backRow(colour)
	kingFrom, _ := chess.SquareAt(row, kingStartCol)
	if pos.board[kingFrom] != chess.MakeColouredPiece(colour, chess.King) {
		return moves
	}
	ownRook := chess.MakeColouredPiece(colour, chess.Rook)
	enemy := colour.Opposite()

	for _, cs := range castleSides {
		if !pos.castling.Has(cs.right(colour)) {
			continue
		}
		rookSq, _ := chess.SquareAt(row, cs.rookFrom)
		if pos.board[rookSq] != ownRook {
			continue
		}
		if !columnsEmpty(pos, row, cs.between) {
			continue
		}
		if columnsAttacked(pos, row, cs.safe, enemy) {
			continue
		}
		kingTo, _ := chess.SquareAt(row, cs.kingTo)
		moves = append(moves, chess.NewMove(kingFrom, kingTo))
	}
	return moves
}

func columnsEmpty(pos Position, row int, cols []int) bool {
	for _, col := range cols {
		sq, _ := chess.SquareAt(row, col)
		if pos.board[sq] != chess.Empty {
			return false
		}
	}
	return true
}

func columnsAttacked(pos Position, row int, cols []int, by chess.Colour) bool {
	for _, col := range cols {
		sq, _ := chess.SquareAt(row, col)
		if IsAttacked(pos, sq, by) {
			return true
		}
	}
	return false
}
