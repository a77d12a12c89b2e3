package engine

import (
	"testing"

	"github.com/lgbarn/libchess-go/internal/chess"
)

// Positions shared across tests.
const (
	kiwipeteFEN    = "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"
	castlingFEN    = "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1"
	enPassantFEN   = "k7/8/8/3pP3/8/8/8/7K w - d6 0 2"
	promotionFEN   = "8/P7/8/8/8/8/8/k6K w - - 0 1"
	foolsMateFEN   = "rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3"
	stalemateFEN   = "7k/5Q2/6K1/8/8/8/8/8 b - - 0 1"
	loneKingsFEN   = "4k3/8/8/8/8/8/8/4K3 w - - 0 1"
	afterE4FEN     = "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1"
	sicilianFEN    = "rnbqkbnr/pp1ppppp/8/2p5/4P3/8/PPPP1PPP/RNBQKBNR w KQkq c6 0 2"
	afterNf3FEN    = "rnbqkbnr/pppp1ppp/8/4p3/4P3/5N2/PPPP1PPP/RNBQKB1R b KQkq - 1 2"
	pinnedFEN      = "4k3/4r3/8/8/8/8/4B3/4K3 w - - 0 1"
	checkedKingFEN = "4k3/4r3/8/8/8/8/8/R3K2R w KQ - 0 1"
)

// mustBoard loads a FEN position, failing the test on error.
func mustBoard(t testing.TB, fen string) *chess.Board {
	t.Helper()
	board, err := NewBoardFromFEN(fen)
	if err != nil {
		t.Fatalf("NewBoardFromFEN(%q) error: %v", fen, err)
	}
	return board
}

// movesFrom returns the moves that start on the named square, in order.
func movesFrom(moves []chess.Move, from chess.Square) []chess.Move {
	var out []chess.Move
	for _, m := range moves {
		if m.From == from {
			out = append(out, m)
		}
	}
	return out
}
