package chess

// Move is a from/to square pair with an optional promotion piece.
// Promotion is Empty for ordinary moves. Moves compare structurally.
type Move struct {
	From      Square
	To        Square
	Promotion Piece
}

// NewMove creates a move without promotion.
func NewMove(from, to Square) Move {
	return Move{From: from, To: to}
}

// String returns the coordinate notation of the move, e.g. "e2e4" or "a7a8q".
func (m Move) String() string {
	s := m.From.String() + m.To.String()
	if m.Promotion != Empty {
		s += string(m.Promotion.Letter())
	}
	return s
}

// ParseMove parses coordinate notation. It accepts exactly four characters
// (two square names) or five (plus a promotion letter q, r, b or n in
// either case). Anything else yields false.
func ParseMove(text string) (Move, bool) {
	if len(text) != 4 && len(text) != 5 {
		return Move{}, false
	}
	from, ok := ParseSquare(text[0:2])
	if !ok {
		return Move{}, false
	}
	to, ok := ParseSquare(text[2:4])
	if !ok {
		return Move{}, false
	}
	move := Move{From: from, To: to}
	if len(text) == 5 {
		promotion := PieceFromLetter(text[4])
		switch promotion {
		case Queen, Rook, Bishop, Knight:
			move.Promotion = promotion
		default:
			return Move{}, false
		}
	}
	return move, true
}
