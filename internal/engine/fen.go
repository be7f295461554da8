package engine

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lgbarn/dokchess-go/internal/chess"
	"github.com/lgbarn/dokchess-go/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// NewPositionFromFEN creates a position from a FEN string. Only the piece
// placement is required; a missing side to move defaults to White, missing
// castling and en passant fields to none, and missing counters to 0 and 1.
func NewPositionFromFEN(fen string) (Position, error) {
	parts := strings.Fields(fen)
	if len(parts) < 1 {
		return Position{}, fmt.Errorf("empty FEN string: %w", errors.ErrInvalidFEN)
	}
	if len(parts) > 6 {
		return Position{}, fmt.Errorf("too many FEN fields: %d: %w", len(parts), errors.ErrInvalidFEN)
	}

	pos := Position{
		toMove:         chess.White,
		epSquare:       chess.NoSquare,
		fullmoveNumber: 1,
	}

	if err := parsePiecePositions(&pos, parts[0]); err != nil {
		return Position{}, err
	}
	if err := parseSideToMove(&pos, parts); err != nil {
		return Position{}, err
	}
	if err := parseCastlingField(&pos, parts); err != nil {
		return Position{}, err
	}
	if err := parseEnPassant(&pos, parts); err != nil {
		return Position{}, err
	}
	if err := parseClocks(&pos, parts); err != nil {
		return Position{}, err
	}

	return pos, nil
}

// parsePiecePositions parses the piece placement field of a FEN string.
func parsePiecePositions(pos *Position, placement string) error {
	rows := strings.Split(placement, "/")
	if len(rows) != chess.BoardSize {
		return fmt.Errorf("expected %d rows, got %d: %w", chess.BoardSize, len(rows), errors.ErrInvalidFEN)
	}

	for row, text := range rows {
		col := 0
		for i := 0; i < len(text); i++ {
			c := text[i]
			switch {
			case c >= '1' && c <= '8':
				col += int(c - '0')
			default:
				piece := chess.ColouredPieceFromLetter(c)
				if piece == chess.Empty {
					return fmt.Errorf("invalid piece character: %c: %w", c, errors.ErrInvalidFEN)
				}
				sq, ok := chess.SquareAt(row, col)
				if !ok {
					return fmt.Errorf("position out of bounds in row %q: %w", text, errors.ErrInvalidFEN)
				}
				pos.board[sq] = piece
				col++
			}
		}
		if col != chess.BoardSize {
			return fmt.Errorf("row %q covers %d squares: %w", text, col, errors.ErrInvalidFEN)
		}
	}
	return nil
}

// parseSideToMove parses the side to move field.
func parseSideToMove(pos *Position, parts []string) error {
	if len(parts) < 2 {
		return nil
	}
	switch parts[1] {
	case "w":
		pos.toMove = chess.White
	case "b":
		pos.toMove = chess.Black
	default:
		return fmt.Errorf("invalid side to move: %s: %w", parts[1], errors.ErrInvalidFEN)
	}
	return nil
}

// parseCastlingField parses the castling availability field.
func parseCastlingField(pos *Position, parts []string) error {
	if len(parts) < 3 {
		return nil
	}
	rights, err := ParseCastlingRights(parts[2])
	if err != nil {
		return err
	}
	pos.castling = rights
	return nil
}

// parseEnPassant parses the en passant target square field.
func parseEnPassant(pos *Position, parts []string) error {
	if len(parts) < 4 || parts[3] == "-" {
		return nil
	}
	sq, ok := chess.ParseSquare(parts[3])
	if !ok {
		return fmt.Errorf("invalid en passant square: %s: %w", parts[3], errors.ErrInvalidFEN)
	}
	pos.epSquare = sq
	return nil
}

// parseClocks parses the halfmove clock and fullmove number fields.
func parseClocks(pos *Position, parts []string) error {
	if len(parts) >= 5 {
		n, err := strconv.Atoi(parts[4])
		if err != nil || n < 0 {
			return fmt.Errorf("invalid halfmove clock: %s: %w", parts[4], errors.ErrInvalidFEN)
		}
		pos.halfmoveClock = n
	}
	if len(parts) >= 6 {
		n, err := strconv.Atoi(parts[5])
		if err != nil || n < 1 {
			return fmt.Errorf("invalid fullmove number: %s: %w", parts[5], errors.ErrInvalidFEN)
		}
		pos.fullmoveNumber = n
	}
	return nil
}

// FEN converts the position to a FEN string.
func (p Position) FEN() string {
	var sb strings.Builder

	writePiecePositions(&sb, p)
	sb.WriteByte(' ')
	sb.WriteByte(p.toMove.Letter())
	sb.WriteByte(' ')
	sb.WriteString(p.castling.String())
	sb.WriteByte(' ')
	sb.WriteString(p.epSquare.String())
	sb.WriteByte(' ')
	fmt.Fprintf(&sb, "%d %d", p.halfmoveClock, p.fullmoveNumber)

	return sb.String()
}

// writePiecePositions writes the piece placement to the builder.
func writePiecePositions(sb *strings.Builder, p Position) {
	for row := 0; row < chess.BoardSize; row++ {
		emptyCount := 0
		for col := 0; col < chess.BoardSize; col++ {
			piece := p.board[row*chess.BoardSize+col]
			if piece == chess.Empty {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteByte(byte('0' + emptyCount))
				emptyCount = 0
			}
			sb.WriteByte(chess.ColouredPieceLetter(piece))
		}
		if emptyCount > 0 {
			sb.WriteByte(byte('0' + emptyCount))
		}
		if row < chess.BoardSize-1 {
			sb.WriteByte('/')
		}
	}
}
