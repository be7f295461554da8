package chess

// Square is a board index from 0 (a8) to 63 (h1), row-major from the top
// left. Row 0 is rank 8 and column 0 is file a.
type Square int

// NoSquare marks the absence of a square.
const NoSquare Square = -1

// Constants for board dimensions.
const (
	BoardSize  = 8
	NumSquares = BoardSize * BoardSize

	fileNames = "abcdefgh"
)

const (
	A8 Square = iota
	B8
	C8
	D8
	E8
	F8
	G8
	H8
	A7
	B7
	C7
	D7
	E7
	F7
	G7
	H7
	A6
	B6
	C6
	D6
	E6
	F6
	G6
	H6
	A5
	B5
	C5
	D5
	E5
	F5
	G5
	H5
	A4
	B4
	C4
	D4
	E4
	F4
	G4
	H4
	A3
	B3
	C3
	D3
	E3
	F3
	G3
	H3
	A2
	B2
	C2
	D2
	E2
	F2
	G2
	H2
	A1
	B1
	C1
	D1
	E1
	F1
	G1
	H1
)

// Row returns the board row, 0 for rank 8 through 7 for rank 1.
func (sq Square) Row() int {
	return int(sq) / BoardSize
}

// Col returns the board column, 0 for file a through 7 for file h.
func (sq Square) Col() int {
	return int(sq) % BoardSize
}

// IsValid reports whether sq lies on the board.
func (sq Square) IsValid() bool {
	return sq >= 0 && sq < NumSquares
}

// String returns the algebraic name of the square, e.g. "e4".
func (sq Square) String() string {
	if !sq.IsValid() {
		return "-"
	}
	return string([]byte{fileNames[sq.Col()], byte('8' - sq.Row())})
}

// SquareAt builds a square from row and column. The second result is false
// when the coordinates are off the board.
func SquareAt(row, col int) (Square, bool) {
	if row < 0 || row >= BoardSize || col < 0 || col >= BoardSize {
		return NoSquare, false
	}
	return Square(row*BoardSize + col), true
}

// Offset returns the square reached by moving dx columns and dy rows from
// sq, or false when that leaves the board.
func (sq Square) Offset(dx, dy int) (Square, bool) {
	return SquareAt(sq.Row()+dy, sq.Col()+dx)
}

// ParseSquare converts an algebraic name such as "e4" to a square.
func ParseSquare(name string) (Square, bool) {
	if len(name) != 2 {
		return NoSquare, false
	}
	file, rank := name[0], name[1]
	if file < 'a' || file > 'h' || rank < '1' || rank > '8' {
		return NoSquare, false
	}
	return SquareAt(int('8'-rank), int(file-'a'))
}
