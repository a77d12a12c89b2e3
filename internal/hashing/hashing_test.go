package hashing

import (
	"testing"

	"github.com/lgbarn/libchess-go/internal/chess"
	"github.com/lgbarn/libchess-go/internal/engine"
)

func mustBoard(t *testing.T, fen string) *chess.Board {
	t.Helper()
	board, err := engine.NewBoardFromFEN(fen)
	if err != nil {
		t.Fatalf("NewBoardFromFEN(%q) error: %v", fen, err)
	}
	return board
}

func TestZobristHashConsistency(t *testing.T) {
	// Identical boards built two ways must hash equally
	board1 := chess.NewInitialBoard()
	board2 := mustBoard(t, engine.InitialFEN)

	hash1 := GenerateZobristHash(board1)
	hash2 := GenerateZobristHash(board2)

	if hash1 != hash2 {
		t.Errorf("Identical boards produced different hashes: %x != %x", hash1, hash2)
	}
	if hash1 == 0 {
		t.Error("initial position hashed to zero")
	}
}

func TestZobristHashDifferentPositions(t *testing.T) {
	board1 := chess.NewInitialBoard()

	// Manually move e2 to e4
	board2 := chess.NewInitialBoard()
	board2.Set(chess.NewSquare('e', '2'), chess.Empty)
	board2.Set(chess.NewSquare('e', '4'), chess.W(chess.Pawn))

	if GenerateZobristHash(board1) == GenerateZobristHash(board2) {
		t.Error("Different positions produced the same hash")
	}
}

func TestHashFields(t *testing.T) {
	base := "r3k2r/8/8/3pP3/8/8/8/R3K2R w KQkq - 0 1"

	tests := []struct {
		name string
		fen  string
		same bool
	}{
		{"side to move", "r3k2r/8/8/3pP3/8/8/8/R3K2R b KQkq - 0 1", false},
		{"castling rights", "r3k2r/8/8/3pP3/8/8/8/R3K2R w Kkq - 0 1", false},
		{"en passant file", "r3k2r/8/8/3pP3/8/8/8/R3K2R w KQkq d6 0 1", false},
		{"piece colour", "r3k2r/8/8/3Pp3/8/8/8/R3K2R w KQkq - 0 1", false},
		{"halfmove clock ignored", "r3k2r/8/8/3pP3/8/8/8/R3K2R w KQkq - 17 1", true},
		{"move number ignored", "r3k2r/8/8/3pP3/8/8/8/R3K2R w KQkq - 0 40", true},
	}

	want := GenerateZobristHash(mustBoard(t, base))
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := GenerateZobristHash(mustBoard(t, tt.fen))
			if (got == want) != tt.same {
				t.Errorf("hash(%q) == hash(%q) is %v; want %v", tt.fen, base, got == want, tt.same)
			}
		})
	}
}

func TestHashTranspositions(t *testing.T) {
	// Nf3 Nf6 Nc3 and Nc3 Nf6 Nf3 reach the same position.
	board1 := chess.NewInitialBoard()
	if err := engine.PlayMoves(board1, "g1f3", "g8f6", "b1c3"); err != nil {
		t.Fatal(err)
	}
	board2 := chess.NewInitialBoard()
	if err := engine.PlayMoves(board2, "b1c3", "g8f6", "g1f3"); err != nil {
		t.Fatal(err)
	}

	if GenerateZobristHash(board1) != GenerateZobristHash(board2) {
		t.Errorf("transposed positions hash differently: %s vs %s",
			engine.BoardToFEN(board1), engine.BoardToFEN(board2))
	}
}

func TestHashIsStable(t *testing.T) {
	keys2 := newZobristKeys(zobristSeed)
	if *keys2 != *keys {
		t.Error("key tables differ for the same seed")
	}
	if other := newZobristKeys(zobristSeed + 1); other.blackMove == keys.blackMove {
		t.Error("different seeds produced the same side-to-move key")
	}
}

func TestNodeCache(t *testing.T) {
	cache := NewNodeCache(0)

	if _, ok := cache.Lookup(42, 3); ok {
		t.Error("Lookup on empty cache succeeded")
	}

	cache.Store(42, 3, 8902)
	cache.Store(42, 2, 400)

	if nodes, ok := cache.Lookup(42, 3); !ok || nodes != 8902 {
		t.Errorf("Lookup(42, 3) = %d, %v; want 8902, true", nodes, ok)
	}
	if nodes, ok := cache.Lookup(42, 2); !ok || nodes != 400 {
		t.Errorf("Lookup(42, 2) = %d, %v; want 400, true", nodes, ok)
	}
	if _, ok := cache.Lookup(42, 4); ok {
		t.Error("Lookup at an unstored depth succeeded")
	}

	if cache.Len() != 2 {
		t.Errorf("Len() = %d; want 2", cache.Len())
	}
	if cache.Hits() != 2 {
		t.Errorf("Hits() = %d; want 2", cache.Hits())
	}
}

func TestNodeCacheCapacity(t *testing.T) {
	cache := NewNodeCache(2)

	cache.Store(1, 1, 10)
	cache.Store(2, 1, 20)
	if !cache.IsFull() {
		t.Error("IsFull() = false at capacity")
	}

	cache.Store(3, 1, 30)
	if _, ok := cache.Lookup(3, 1); ok {
		t.Error("entry stored beyond capacity")
	}

	// Existing entries can still be updated
	cache.Store(1, 1, 11)
	if nodes, _ := cache.Lookup(1, 1); nodes != 11 {
		t.Errorf("Lookup(1, 1) = %d; want 11", nodes)
	}
	if cache.Len() != 2 {
		t.Errorf("Len() = %d; want 2", cache.Len())
	}
}

func TestNodeCacheReset(t *testing.T) {
	cache := NewNodeCache(0)
	cache.Store(7, 2, 99)
	cache.Lookup(7, 2)

	cache.Reset()

	if cache.Len() != 0 || cache.Hits() != 0 {
		t.Errorf("after Reset Len() = %d, Hits() = %d; want 0, 0", cache.Len(), cache.Hits())
	}
	if _, ok := cache.Lookup(7, 2); ok {
		t.Error("entry survived Reset")
	}
}

func BenchmarkGenerateZobristHash(b *testing.B) {
	board := chess.NewInitialBoard()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = GenerateZobristHash(board)
	}
}
