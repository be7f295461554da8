package engine

import (
	"fmt"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Perft counts the leaf nodes of the legal move tree of pos to depth plies.
func Perft(pos Position, depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	moves := LegalMoves(pos)
	if depth == 1 {
		return uint64(len(moves))
	}
	var nodes uint64
	for _, move := range moves {
		nodes += Perft(pos.Apply(move), depth-1)
	}
	return nodes
}

// Divide returns the perft count below each legal root move, keyed by the
// move's coordinate notation.
func Divide(pos Position, depth int) map[string]uint64 {
	counts := make(map[string]uint64)
	if depth <= 0 {
		return counts
	}
	for _, move := range LegalMoves(pos) {
		counts[move.String()] = Perft(pos.Apply(move), depth-1)
	}
	return counts
}

// DivideLines renders a divide result as "<move>: <count>" lines sorted by
// move, followed by the total.
func DivideLines(counts map[string]uint64) []string {
	moves := maps.Keys(counts)
	slices.Sort(moves)

	lines := make([]string, 0, len(moves)+1)
	var total uint64
	for _, move := range moves {
		lines = append(lines, fmt.Sprintf("%s: %d", move, counts[move]))
		total += counts[move]
	}
	lines = append(lines, fmt.Sprintf("Nodes searched: %d", total))
	return lines
}
