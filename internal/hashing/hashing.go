// Package hashing provides Zobrist hashing of chess positions and a node
// cache keyed by position hash.
package hashing

import (
	"github.com/lgbarn/libchess-go/internal/chess"
)

// zobristSeed fixes the key sequence so hashes are stable across runs.
const zobristSeed = 0x9E3779B97F4A7C15

// zobristKeys holds one random key per (coloured piece, square), castling
// set, en-passant file and side to move.
type zobristKeys struct {
	pieces    [chess.NumPieceValues << chess.PieceShift][64]uint64
	castling  [chess.AllCastling + 1]uint64
	enPassant [chess.BoardSize]uint64
	blackMove uint64
}

var keys = newZobristKeys(zobristSeed)

// splitMix64 is a small deterministic generator for key material.
type splitMix64 uint64

func (s *splitMix64) next() uint64 {
	*s += 0x9E3779B97F4A7C15
	z := uint64(*s)
	z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
	z = (z ^ (z >> 27)) * 0x94D049BB133111EB
	return z ^ (z >> 31)
}

func newZobristKeys(seed uint64) *zobristKeys {
	rng := splitMix64(seed)
	k := &zobristKeys{}
	for p := range k.pieces {
		for sq := range k.pieces[p] {
			k.pieces[p][sq] = rng.next()
		}
	}
	for i := range k.castling {
		k.castling[i] = rng.next()
	}
	for i := range k.enPassant {
		k.enPassant[i] = rng.next()
	}
	k.blackMove = rng.next()
	return k
}

// squareIndex maps a 0x88 square to 0..63.
func squareIndex(sq chess.Square) int {
	return sq.Row()*chess.BoardSize + sq.File()
}

// GenerateZobristHash returns the Zobrist hash of the position. Boards that
// serialize to the same FEN placement, turn, castling and en-passant fields
// hash equally; move counters are not hashed.
func GenerateZobristHash(board *chess.Board) uint64 {
	var hash uint64
	for _, sq := range chess.AllSquares() {
		if piece := board.Get(sq); piece != chess.Empty {
			hash ^= keys.pieces[piece][squareIndex(sq)]
		}
	}
	hash ^= keys.castling[board.CastlingRights()]
	if col, ok := board.EPFile(); ok {
		hash ^= keys.enPassant[col-chess.ColBase]
	}
	if board.Turn() == chess.Black {
		hash ^= keys.blackMove
	}
	return hash
}

// cacheKey identifies a cached perft result.
type cacheKey struct {
	hash  uint64
	depth int
}

// NodeCache memoises node counts by (position hash, depth).
// It is not safe for concurrent use; see ThreadSafeNodeCache.
type NodeCache struct {
	// entries stores node counts
	entries map[cacheKey]uint64
	// maxCapacity limits the number of entries (0 = unlimited)
	maxCapacity int
	// hits tracks successful lookups
	hits int
}

// NewNodeCache creates a cache. maxCapacity of 0 means unlimited capacity.
func NewNodeCache(maxCapacity int) *NodeCache {
	return &NodeCache{
		entries:     make(map[cacheKey]uint64),
		maxCapacity: maxCapacity,
	}
}

// Lookup returns the cached node count for a position hash and depth.
func (c *NodeCache) Lookup(hash uint64, depth int) (uint64, bool) {
	nodes, ok := c.entries[cacheKey{hash: hash, depth: depth}]
	if ok {
		c.hits++
	}
	return nodes, ok
}

// Store records a node count. Once the cache is full new entries are
// dropped.
func (c *NodeCache) Store(hash uint64, depth int, nodes uint64) {
	key := cacheKey{hash: hash, depth: depth}
	if _, ok := c.entries[key]; !ok && c.IsFull() {
		return
	}
	c.entries[key] = nodes
}

// Len returns the number of cached entries.
func (c *NodeCache) Len() int {
	return len(c.entries)
}

// Hits returns the number of successful lookups.
func (c *NodeCache) Hits() int {
	return c.hits
}

// IsFull returns true if the cache has reached its capacity limit.
func (c *NodeCache) IsFull() bool {
	return c.maxCapacity > 0 && len(c.entries) >= c.maxCapacity
}

// Reset clears the cache.
func (c *NodeCache) Reset() {
	c.entries = make(map[cacheKey]uint64)
	c.hits = 0
}
