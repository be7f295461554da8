package chess

import "testing"

func TestColourOpposite(t *testing.T) {
	for _, c := range []Colour{White, Black} {
		if got := c.Opposite().Opposite(); got != c {
			t.Errorf("%v.Opposite().Opposite() = %v, want %v", c, got, c)
		}
		if c.Opposite() == c {
			t.Errorf("%v.Opposite() = %v, want the other colour", c, c)
		}
	}
}

func TestColouredPieceEncoding(t *testing.T) {
	tests := []struct {
		colour Colour
		piece  Piece
		letter byte
	}{
		{White, Pawn, 'P'},
		{White, Knight, 'N'},
		{White, Bishop, 'B'},
		{White, Rook, 'R'},
		{White, Queen, 'Q'},
		{White, King, 'K'},
		{Black, Pawn, 'p'},
		{Black, Knight, 'n'},
		{Black, Bishop, 'b'},
		{Black, Rook, 'r'},
		{Black, Queen, 'q'},
		{Black, King, 'k'},
	}

	for _, tt := range tests {
		t.Run(string(tt.letter), func(t *testing.T) {
			cp := MakeColouredPiece(tt.colour, tt.piece)
			if cp == Empty {
				t.Fatalf("MakeColouredPiece(%v, %v) = Empty", tt.colour, tt.piece)
			}
			if got := ExtractColour(cp); got != tt.colour {
				t.Errorf("ExtractColour() = %v, want %v", got, tt.colour)
			}
			if got := ExtractPiece(cp); got != tt.piece {
				t.Errorf("ExtractPiece() = %v, want %v", got, tt.piece)
			}
			if got := ColouredPieceLetter(cp); got != tt.letter {
				t.Errorf("ColouredPieceLetter() = %c, want %c", got, tt.letter)
			}
			if got := ColouredPieceFromLetter(tt.letter); got != cp {
				t.Errorf("ColouredPieceFromLetter(%c) = %v, want %v", tt.letter, got, cp)
			}
		})
	}
}

func TestColouredPieceFromLetter_Unknown(t *testing.T) {
	for _, c := range []byte{'x', '1', '/', ' '} {
		if got := ColouredPieceFromLetter(c); got != Empty {
			t.Errorf("ColouredPieceFromLetter(%q) = %v, want Empty", c, got)
		}
	}
}
