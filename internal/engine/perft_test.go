package engine

import (
	"testing"

	"github.com/dylhunn/dragontoothmg"
)

var perftPositions = []struct {
	name  string
	fen   string
	nodes []uint64 // indexed by depth-1
}{
	{"initial", InitialFEN, []uint64{20, 400, 8902}},
	{"kiwipete", "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1", []uint64{48, 2039, 97862}},
	{"position 3", "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1", []uint64{14, 191, 2812}},
	{"position 4", "r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1", []uint64{6, 264, 9467}},
	{"position 5", "rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8", []uint64{44, 1486, 62379}},
}

func TestPerft(t *testing.T) {
	for _, tt := range perftPositions {
		t.Run(tt.name, func(t *testing.T) {
			pos := mustPosition(t, tt.fen)
			for i, want := range tt.nodes {
				depth := i + 1
				if depth == 3 && testing.Short() {
					break
				}
				if got := Perft(pos, depth); got != want {
					t.Errorf("Perft(%d) = %d, want %d", depth, got, want)
				}
			}
		})
	}
}

func TestPerft_DepthZero(t *testing.T) {
	if got := Perft(NewInitialPosition(), 0); got != 1 {
		t.Errorf("Perft(0) = %d, want 1", got)
	}
}

// TestDivide_MatchesReference checks every root move's subtree count against
// an independent bitboard generator.
func TestDivide_MatchesReference(t *testing.T) {
	const depth = 2
	for _, tt := range perftPositions {
		t.Run(tt.name, func(t *testing.T) {
			got := Divide(mustPosition(t, tt.fen), depth)
			want := referenceDivide(tt.fen, depth)
			if len(got) != len(want) {
				t.Errorf("Divide() has %d root moves, reference has %d", len(got), len(want))
			}
			for move, count := range want {
				if got[move] != count {
					t.Errorf("Divide()[%s] = %d, reference %d", move, got[move], count)
				}
			}
		})
	}
}

func referenceDivide(fen string, depth int) map[string]uint64 {
	board := dragontoothmg.ParseFen(fen)
	counts := make(map[string]uint64)
	for _, move := range board.GenerateLegalMoves() {
		unapply := board.Apply(move)
		counts[move.String()] = referencePerft(&board, depth-1)
		unapply()
	}
	return counts
}

func referencePerft(board *dragontoothmg.Board, depth int) uint64 {
	if depth == 0 {
		return 1
	}
	moves := board.GenerateLegalMoves()
	if depth == 1 {
		return uint64(len(moves))
	}
	var nodes uint64
	for _, move := range moves {
		unapply := board.Apply(move)
		nodes += referencePerft(board, depth-1)
		unapply()
	}
	return nodes
}

func TestDivideLines(t *testing.T) {
	lines := DivideLines(map[string]uint64{"e2e4": 20, "a2a3": 20, "g1f3": 20})
	want := []string{"a2a3: 20", "e2e4: 20", "g1f3: 20", "Nodes searched: 60"}
	if len(lines) != len(want) {
		t.Fatalf("DivideLines() = %v, want %v", lines, want)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("DivideLines()[%d] = %q, want %q", i, lines[i], want[i])
		}
	}
}
