package testutil

import (
	"testing"

	"github.com/lgbarn/dokchess-go/internal/chess"
	"github.com/lgbarn/dokchess-go/internal/engine"
)

// MustPosition parses a FEN string and calls t.Fatal if it is invalid.
func MustPosition(t testing.TB, fen string) engine.Position {
	t.Helper()
	pos, err := engine.NewPositionFromFEN(fen)
	if err != nil {
		t.Fatalf("failed to parse FEN %q: %v", fen, err)
	}
	return pos
}

// MustMove parses coordinate notation and calls t.Fatal if it is invalid.
func MustMove(t testing.TB, text string) chess.Move {
	t.Helper()
	move, ok := chess.ParseMove(text)
	if !ok {
		t.Fatalf("failed to parse move %q", text)
	}
	return move
}

// PlayMoves applies each move in turn, failing the test on the first one
// that is not legal.
func PlayMoves(t testing.TB, pos engine.Position, moves ...string) engine.Position {
	t.Helper()
	for i, text := range moves {
		move := MustMove(t, text)
		if !engine.IsLegalMove(pos, move) {
			t.Fatalf("move %d (%s) is illegal in %s", i+1, text, pos.FEN())
		}
		pos = pos.Apply(move)
	}
	return pos
}
