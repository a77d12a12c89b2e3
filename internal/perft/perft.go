// Package perft counts the leaf nodes of the legal move tree, the standard
// way to check a move generator against known results.
package perft

import (
	"github.com/lgbarn/libchess-go/internal/chess"
	"github.com/lgbarn/libchess-go/internal/engine"
	"github.com/lgbarn/libchess-go/internal/hashing"
)

// Cache memoises node counts by position hash and remaining depth.
// hashing.NodeCache and hashing.ThreadSafeNodeCache satisfy it.
type Cache interface {
	Lookup(hash uint64, depth int) (uint64, bool)
	Store(hash uint64, depth int, nodes uint64)
}

// Perft returns the number of leaf nodes depth plies below the position.
// Depth 0 counts the position itself.
func Perft(board *chess.Board, depth int) uint64 {
	return count(board, depth, nil)
}

// PerftCached is Perft with node counts memoised in cache.
func PerftCached(board *chess.Board, depth int, cache Cache) uint64 {
	return count(board, depth, cache)
}

func count(board *chess.Board, depth int, cache Cache) uint64 {
	if depth <= 0 {
		return 1
	}

	var hash uint64
	if cache != nil && depth > 1 {
		hash = hashing.GenerateZobristHash(board)
		if nodes, ok := cache.Lookup(hash, depth); ok {
			return nodes
		}
	}

	moves := engine.LegalMoves(board)
	if depth == 1 {
		return uint64(len(moves))
	}

	var nodes uint64
	for _, move := range moves {
		child := board.Copy()
		engine.MakeMove(child, move)
		nodes += count(child, depth-1, cache)
	}

	if cache != nil {
		cache.Store(hash, depth, nodes)
	}
	return nodes
}
