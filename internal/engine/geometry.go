package engine

import "github.com/lgbarn/dokchess-go/internal/chess"

// Ray is an ordered list of squares walked from an origin outward, excluding
// the origin and stopping at the board edge.
type Ray []chess.Square

// Precomputed geometry, written once in init and read-only afterwards.
var (
	knightTargets  [chess.NumSquares][]chess.Square
	kingTargets    [chess.NumSquares][]chess.Square
	orthogonalRays [chess.NumSquares][]Ray
	diagonalRays   [chess.NumSquares][]Ray
	allRays        [chess.NumSquares][]Ray
)

func init() {
	for sq := chess.Square(0); sq < chess.NumSquares; sq++ {
		knightTargets[sq] = computeKnightTargets(sq)
		kingTargets[sq] = computeKingTargets(sq)
		orthogonalRays[sq], diagonalRays[sq], allRays[sq] = computeRays(sq)
	}
}

// KnightTargets returns the squares a knight on sq attacks.
func KnightTargets(sq chess.Square) []chess.Square {
	return knightTargets[sq]
}

// KingTargets returns the squares adjacent to sq.
func KingTargets(sq chess.Square) []chess.Square {
	return kingTargets[sq]
}

// OrthogonalRays returns the rook rays from sq.
func OrthogonalRays(sq chess.Square) []Ray {
	return orthogonalRays[sq]
}

// DiagonalRays returns the bishop rays from sq.
func DiagonalRays(sq chess.Square) []Ray {
	return diagonalRays[sq]
}

// AllRays returns the queen rays from sq.
func AllRays(sq chess.Square) []Ray {
	return allRays[sq]
}

func computeKnightTargets(sq chess.Square) []chess.Square {
	var targets []chess.Square
	for dx := 2; dx >= -2; dx-- {
		for dy := -2; dy <= 2; dy++ {
			if abs(dx)+abs(dy) != 3 {
				continue
			}
			if to, ok := sq.Offset(dx, dy); ok {
				targets = append(targets, to)
			}
		}
	}
	return targets
}

func computeKingTargets(sq chess.Square) []chess.Square {
	var targets []chess.Square
	for dx := -1; dx <= 1; dx++ {
		for dy := -1; dy <= 1; dy++ {
			if dx == 0 && dy == 0 {
				continue
			}
			if to, ok := sq.Offset(dx, dy); ok {
				targets = append(targets, to)
			}
		}
	}
	return targets
}

// computeRays walks the eight directions in dx-major order and sorts each
// non-empty ray into the orthogonal or diagonal set as well as the combined one.
func computeRays(sq chess.Square) (orthogonal, diagonal, all []Ray) {
	for dx := -1; dx <= 1; dx++ {
		for dy := -1; dy <= 1; dy++ {
			if dx == 0 && dy == 0 {
				continue
			}
			ray := walkRay(sq, dx, dy)
			if len(ray) == 0 {
				continue
			}
			all = append(all, ray)
			if dx == 0 || dy == 0 {
				orthogonal = append(orthogonal, ray)
			} else {
				diagonal = append(diagonal, ray)
			}
		}
	}
	return orthogonal, diagonal, all
}

func walkRay(sq chess.Square, dx, dy int) Ray {
	var ray Ray
	for to, ok := sq.Offset(dx, dy); ok; to, ok = to.Offset(dx, dy) {
		ray = append(ray, to)
	}
	return ray
}
