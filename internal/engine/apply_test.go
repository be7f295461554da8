package engine

import (
	"testing"

	"github.com/lgbarn/dokchess-go/internal/chess"
)

func TestApply(t *testing.T) {
	tests := []struct {
		name    string
		fen     string
		move    chess.Move
		wantFEN string
	}{
		{
			name:    "1.e4 sets en passant target",
			fen:     InitialFEN,
			move:    chess.NewMove(chess.E2, chess.E4),
			wantFEN: "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1",
		},
		{
			name:    "1.Nf3 advances halfmove clock",
			fen:     InitialFEN,
			move:    chess.NewMove(chess.G1, chess.F3),
			wantFEN: "rnbqkbnr/pppppppp/8/8/8/5N2/PPPPPPPP/RNBQKB1R b KQkq - 1 1",
		},
		{
			name:    "black move increments fullmove number",
			fen:     "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1",
			move:    chess.NewMove(chess.C7, chess.C5),
			wantFEN: "rnbqkbnr/pp1ppppp/8/2p5/4P3/8/PPPP1PPP/RNBQKBNR w KQkq c6 0 2",
		},
		{
			name:    "capture resets halfmove clock",
			fen:     "4k3/8/8/3p4/8/8/8/3QK3 w - - 7 30",
			move:    chess.NewMove(chess.D1, chess.D5),
			wantFEN: "4k3/8/8/3Q4/8/8/8/4K3 b - - 0 30",
		},
		{
			name:    "white kingside castle",
			fen:     "r3k2r/pppppppp/8/8/8/8/PPPPPPPP/R3K2R w KQkq - 0 1",
			move:    chess.NewMove(chess.E1, chess.G1),
			wantFEN: "r3k2r/pppppppp/8/8/8/8/PPPPPPPP/R4RK1 b kq - 1 1",
		},
		{
			name:    "white queenside castle",
			fen:     "r3k2r/pppppppp/8/8/8/8/PPPPPPPP/R3K2R w KQkq - 0 1",
			move:    chess.NewMove(chess.E1, chess.C1),
			wantFEN: "r3k2r/pppppppp/8/8/8/8/PPPPPPPP/2KR3R b kq - 1 1",
		},
		{
			name:    "black kingside castle keeps white rights",
			fen:     "r3k2r/p6p/4K3/8/8/8/8/2Q5 b kq - 0 1",
			move:    chess.NewMove(chess.E8, chess.G8),
			wantFEN: "r4rk1/p6p/4K3/8/8/8/8/2Q5 w - - 1 2",
		},
		{
			name:    "black queenside castle",
			fen:     "r3k2r/8/8/8/8/8/8/R3K2R b KQkq - 0 1",
			move:    chess.NewMove(chess.E8, chess.C8),
			wantFEN: "2kr3r/8/8/8/8/8/8/R3K2R w KQ - 1 2",
		},
		{
			name:    "king step forfeits both rights",
			fen:     "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1",
			move:    chess.NewMove(chess.E1, chess.F1),
			wantFEN: "r3k2r/8/8/8/8/8/8/R4K1R b kq - 1 1",
		},
		{
			name:    "rook leaving h1 forfeits kingside only",
			fen:     "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1",
			move:    chess.NewMove(chess.H1, chess.H5),
			wantFEN: "r3k2r/8/8/7R/8/8/8/R3K3 b Qkq - 1 1",
		},
		{
			name:    "rook leaving a8 forfeits black queenside only",
			fen:     "r3k2r/8/8/8/8/8/8/R3K2R b KQkq - 0 1",
			move:    chess.NewMove(chess.A8, chess.A5),
			wantFEN: "4k2r/8/8/r7/8/8/8/R3K2R w KQk - 1 2",
		},
		{
			name:    "capture on corner keeps victim right",
			fen:     "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1",
			move:    chess.NewMove(chess.A1, chess.A8),
			wantFEN: "R3k2r/8/8/8/8/8/8/4K2R b Kkq - 0 1",
		},
		{
			name:    "en passant capture removes victim",
			fen:     "4k3/8/8/3Pp3/8/8/8/K7 w - e6 0 1",
			move:    chess.NewMove(chess.D5, chess.E6),
			wantFEN: "4k3/8/4P3/8/8/8/8/K7 b - - 0 1",
		},
		{
			name:    "black en passant capture",
			fen:     "4k3/8/8/8/3pP3/8/8/K7 b - e3 0 1",
			move:    chess.NewMove(chess.D4, chess.E3),
			wantFEN: "4k3/8/8/8/8/4p3/8/K7 w - - 0 2",
		},
		{
			name:    "promotion to queen",
			fen:     "8/P6k/8/8/8/8/8/K7 w - - 0 1",
			move:    chess.Move{From: chess.A7, To: chess.A8, Promotion: chess.Queen},
			wantFEN: "Q7/7k/8/8/8/8/8/K7 b - - 0 1",
		},
		{
			name:    "capture promotion to knight",
			fen:     "4k3/8/8/8/8/8/1p6/R3K3 b Q - 0 1",
			move:    chess.Move{From: chess.B2, To: chess.A1, Promotion: chess.Knight},
			wantFEN: "4k3/8/8/8/8/8/8/n3K3 w Q - 0 2",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos := mustPosition(t, tt.fen)
			got := pos.Apply(tt.move)
			if got.FEN() != tt.wantFEN {
				t.Errorf("Apply(%v) = %q, want %q", tt.move, got.FEN(), tt.wantFEN)
			}
		})
	}
}

func TestApply_DoesNotMutateReceiver(t *testing.T) {
	pos := mustPosition(t, "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")
	before := pos
	for _, move := range LegalMoves(pos) {
		_ = pos.Apply(move)
	}
	if pos != before {
		t.Errorf("Apply mutated the position: got %s, want %s", pos.FEN(), before.FEN())
	}
}

func TestApply_EmptyOrigin(t *testing.T) {
	pos := NewInitialPosition()
	got := pos.Apply(chess.NewMove(chess.E4, chess.E5))
	if got != pos {
		t.Errorf("Apply from an empty square = %s, want unchanged %s", got.FEN(), pos.FEN())
	}
}

func TestApply_EnPassantScenario(t *testing.T) {
	pos := mustPosition(t, "4k3/8/8/3Pp3/8/8/8/K7 w - e6 0 1")
	move := chess.NewMove(chess.D5, chess.E6)
	if !IsLegalMove(pos, move) {
		t.Fatalf("d5e6 should be legal in %s", pos.FEN())
	}
	next := pos.Apply(move)
	if next.Piece(chess.E5) != chess.Empty {
		t.Errorf("e5 = %v, want empty", next.Piece(chess.E5))
	}
	if next.Piece(chess.D5) != chess.Empty {
		t.Errorf("d5 = %v, want empty", next.Piece(chess.D5))
	}
	if next.Piece(chess.E6) != chess.W(chess.Pawn) {
		t.Errorf("e6 = %v, want white pawn", next.Piece(chess.E6))
	}
}
