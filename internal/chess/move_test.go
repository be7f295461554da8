package chess

import "testing"

func TestParseSquare(t *testing.T) {
	tests := []struct {
		name   string
		want   Square
		wantOK bool
	}{
		{"a8", A8, true},
		{"h8", H8, true},
		{"a1", A1, true},
		{"h1", H1, true},
		{"e4", E4, true},
		{"e6", E6, true},
		{"i1", NoSquare, false},
		{"a9", NoSquare, false},
		{"a0", NoSquare, false},
		{"E4", NoSquare, false},
		{"e", NoSquare, false},
		{"e44", NoSquare, false},
		{"", NoSquare, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseSquare(tt.name)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("ParseSquare(%q) = (%v, %v), want (%v, %v)", tt.name, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestSquareNamesAreBijective(t *testing.T) {
	for sq := Square(0); sq < NumSquares; sq++ {
		got, ok := ParseSquare(sq.String())
		if !ok || got != sq {
			t.Errorf("ParseSquare(%q) = (%v, %v), want (%v, true)", sq.String(), got, ok, sq)
		}
	}
}

func TestSquareGeometry(t *testing.T) {
	if E4.Row() != 4 || E4.Col() != 4 {
		t.Errorf("E4 row/col = %d/%d, want 4/4", E4.Row(), E4.Col())
	}
	if sq, ok := E4.Offset(1, -2); !ok || sq != F6 {
		t.Errorf("E4.Offset(1, -2) = (%v, %v), want (f6, true)", sq, ok)
	}
	if _, ok := H1.Offset(1, 0); ok {
		t.Error("H1.Offset(1, 0) should leave the board")
	}
	if _, ok := A8.Offset(0, -1); ok {
		t.Error("A8.Offset(0, -1) should leave the board")
	}
	if NoSquare.String() != "-" {
		t.Errorf("NoSquare.String() = %q, want \"-\"", NoSquare.String())
	}
}

func TestMoveString(t *testing.T) {
	tests := []struct {
		move Move
		want string
	}{
		{NewMove(E2, E4), "e2e4"},
		{NewMove(G1, F3), "g1f3"},
		{Move{From: A7, To: A8, Promotion: Queen}, "a7a8q"},
		{Move{From: B2, To: A1, Promotion: Knight}, "b2a1n"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.move.String(); got != tt.want {
				t.Errorf("Move.String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParseMove(t *testing.T) {
	tests := []struct {
		text   string
		want   Move
		wantOK bool
	}{
		{"e2e4", NewMove(E2, E4), true},
		{"a7a8q", Move{From: A7, To: A8, Promotion: Queen}, true},
		{"a7a8Q", Move{From: A7, To: A8, Promotion: Queen}, true},
		{"h2h1r", Move{From: H2, To: H1, Promotion: Rook}, true},
		{"c7c8B", Move{From: C7, To: C8, Promotion: Bishop}, true},
		{"d7d8n", Move{From: D7, To: D8, Promotion: Knight}, true},
		{"a7a8k", Move{}, false},
		{"a7a8p", Move{}, false},
		{"e2e", Move{}, false},
		{"e2e4e5", Move{}, false},
		{"z2e4", Move{}, false},
		{"e2e9", Move{}, false},
		{"quit", Move{}, false},
		{"", Move{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			got, ok := ParseMove(tt.text)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("ParseMove(%q) = (%v, %v), want (%v, %v)", tt.text, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestParseMoveRoundTrip(t *testing.T) {
	promotions := []Piece{Empty, Queen, Rook, Bishop, Knight}
	for from := Square(0); from < NumSquares; from++ {
		for to := Square(0); to < NumSquares; to++ {
			for _, promotion := range promotions {
				m := Move{From: from, To: to, Promotion: promotion}
				got, ok := ParseMove(m.String())
				if !ok || got != m {
					t.Fatalf("ParseMove(%q) = (%v, %v), want (%v, true)", m.String(), got, ok, m)
				}
			}
		}
	}
}
