package testutil

import (
	"testing"

	"github.com/lgbarn/libchess-go/internal/chess"
)

// MustMove parses a long algebraic move such as "e2e4" or "e7e8q".
// It calls t.Fatal if the text is not a move.
func MustMove(t *testing.T, text string) chess.Move {
	t.Helper()
	move, err := chess.ParseMove(text)
	if err != nil {
		t.Fatalf("ParseMove(%q): %v", text, err)
	}
	return move
}

// MustSquare parses a square name such as "e4".
// It calls t.Fatal if the name is not a square.
func MustSquare(t *testing.T, name string) chess.Square {
	t.Helper()
	sq, err := chess.ParseSquare(name)
	if err != nil {
		t.Fatalf("ParseSquare(%q): %v", name, err)
	}
	return sq
}

// MoveStrings renders moves in long algebraic form, preserving order.
func MoveStrings(moves []chess.Move) []string {
	out := make([]string, len(moves))
	for i, m := range moves {
		out[i] = m.String()
	}
	return out
}

// SquareNames renders squares by name, preserving order.
func SquareNames(squares []chess.Square) []string {
	out := make([]string, len(squares))
	for i, sq := range squares {
		out[i] = sq.Name()
	}
	return out
}

// AssertBoardEqual reports an error if the two boards differ, showing both
// positions as FEN.
func AssertBoardEqual(t *testing.T, got, want *chess.Board, msgAndArgs ...interface{}) {
	t.Helper()
	if got.Equal(want) {
		return
	}
	msg := formatMessage(msgAndArgs...)
	if msg != "" {
		t.Errorf("%s: boards differ:\n got: %s\nwant: %s", msg, got, want)
	} else {
		t.Errorf("boards differ:\n got: %s\nwant: %s", got, want)
	}
}
