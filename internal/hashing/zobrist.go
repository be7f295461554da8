package hashing

import (
	"math/rand"

	"github.com/lgbarn/dokchess-go/internal/chess"
	"github.com/lgbarn/dokchess-go/internal/engine"
)

// Zobrist keys, indexed by coloured piece value and square.
var (
	zobristPiece     [chess.NumPieceValues << 3][chess.NumSquares]uint64
	zobristCastle    [engine.AllCastling + 1]uint64
	zobristEnPassant [chess.BoardSize]uint64
	zobristSide      uint64 // XORed in when Black is to move
)

func init() {
	// Fixed seed: hashes are stable across runs.
	rnd := rand.New(rand.NewSource(0xD0C))
	for p := range zobristPiece {
		for sq := range zobristPiece[p] {
			zobristPiece[p][sq] = rnd.Uint64()
		}
	}
	for cr := range zobristCastle {
		zobristCastle[cr] = rnd.Uint64()
	}
	for f := range zobristEnPassant {
		zobristEnPassant[f] = rnd.Uint64()
	}
	zobristSide = rnd.Uint64()
}

// Hash returns the Zobrist hash of pos. The move counters are not part of
// the hash, so positions that differ only in them hash equal.
func Hash(pos engine.Position) uint64 {
	var key uint64
	for sq := chess.Square(0); sq < chess.NumSquares; sq++ {
		if p := pos.Piece(sq); p != chess.Empty {
			key ^= zobristPiece[p][sq]
		}
	}
	if pos.SideToMove() == chess.Black {
		key ^= zobristSide
	}
	key ^= zobristCastle[pos.CastlingRights()]
	if ep := pos.EnPassant(); ep != chess.NoSquare {
		key ^= zobristEnPassant[ep.Col()]
	}
	return key
}

// WeakHash is an independent checksum of the piece placement, used to
// confirm Zobrist matches.
func WeakHash(pos engine.Position) uint32 {
	var h uint32
	for sq := chess.Square(0); sq < chess.NumSquares; sq++ {
		if p := pos.Piece(sq); p != chess.Empty {
			h = h*31 + uint32(p)*uint32(sq+1)
		}
	}
	return h
}
