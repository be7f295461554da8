package engine

import "github.com/lgbarn/dokchess-go/internal/chess"

// abs returns the absolute value of x.
func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// backRow returns the row holding a colour's king and rooks at the start.
func backRow(colour chess.Colour) int {
	if colour == chess.White {
		return 7
	}
	return 0
}

// pawnDirection returns the row delta of a pawn advance for the colour.
func pawnDirection(colour chess.Colour) int {
	if colour == chess.White {
		return -1
	}
	return 1
}
