package chess

import (
	"errors"
	"testing"

	chesserrors "github.com/lgbarn/libchess-go/internal/errors"
)

func TestParseSquare(t *testing.T) {
	tests := []struct {
		name    string
		wantSq  Square
		wantErr bool
	}{
		{"a1", A1, false},
		{"h8", H8, false},
		{"e4", 0x34, false},
		{"d5", 0x43, false},
		{"i1", NoSquare, true},
		{"a9", NoSquare, true},
		{"a0", NoSquare, true},
		{"e", NoSquare, true},
		{"e44", NoSquare, true},
		{"", NoSquare, true},
		{"E4", NoSquare, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseSquare(tt.name)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseSquare(%q) error = %v; wantErr %v", tt.name, err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, chesserrors.ErrInvalidSquare) {
				t.Errorf("ParseSquare(%q) error = %v; want ErrInvalidSquare", tt.name, err)
			}
			if got != tt.wantSq {
				t.Errorf("ParseSquare(%q) = %v; want %v", tt.name, got, tt.wantSq)
			}
		})
	}
}

func TestSquareCoordinates(t *testing.T) {
	for _, sq := range AllSquares() {
		if !sq.Valid() {
			t.Errorf("AllSquares() returned off-board square %#x", int(sq))
		}
		if got := SquareAt(sq.File(), sq.Row()); got != sq {
			t.Errorf("SquareAt(%d, %d) = %v; want %v", sq.File(), sq.Row(), got, sq)
		}
		if got := NewSquare(sq.Col(), sq.Rank()); got != sq {
			t.Errorf("NewSquare(%c, %c) = %v; want %v", sq.Col(), sq.Rank(), got, sq)
		}
		parsed, err := ParseSquare(sq.Name())
		if err != nil || parsed != sq {
			t.Errorf("ParseSquare(%q) = %v, %v; want %v", sq.Name(), parsed, err, sq)
		}
	}
	if n := len(AllSquares()); n != 64 {
		t.Errorf("len(AllSquares()) = %d; want 64", n)
	}
	if first, last := AllSquares()[0], AllSquares()[63]; first != A1 || last != H8 {
		t.Errorf("AllSquares() runs %v..%v; want a1..h8", first, last)
	}
}

func TestSquareOutOfRange(t *testing.T) {
	if got := NewSquare('i', '1'); got != NoSquare {
		t.Errorf("NewSquare('i', '1') = %v; want NoSquare", got)
	}
	if got := SquareAt(8, 0); got != NoSquare {
		t.Errorf("SquareAt(8, 0) = %v; want NoSquare", got)
	}
	if got := SquareAt(0, -1); got != NoSquare {
		t.Errorf("SquareAt(0, -1) = %v; want NoSquare", got)
	}
	if NoSquare.Valid() {
		t.Error("NoSquare.Valid() = true")
	}
	if got := NoSquare.Name(); got != "-" {
		t.Errorf("NoSquare.Name() = %q; want \"-\"", got)
	}
}

func TestSquareFromIndex(t *testing.T) {
	tests := []struct {
		index   int
		wantErr bool
	}{
		{0x00, false},
		{0x77, false},
		{0x34, false},
		{0x08, true},
		{0x7F, true},
		{0x80, true},
		{0x88, true},
		{0x100, true},
		{0x177, true},
		{-1, true},
	}

	for _, tt := range tests {
		sq, err := SquareFromIndex(tt.index)
		if (err != nil) != tt.wantErr {
			t.Errorf("SquareFromIndex(%#x) error = %v; wantErr %v", tt.index, err, tt.wantErr)
			continue
		}
		if err == nil && sq.Index() != tt.index {
			t.Errorf("SquareFromIndex(%#x).Index() = %#x", tt.index, sq.Index())
		}
	}
}

func TestSquareValidUpperBound(t *testing.T) {
	for _, sq := range []Square{0x100, 0x134, 0x177, 0x1000} {
		if sq.Valid() {
			t.Errorf("Square(%#x).Valid() = true; want false", int(sq))
		}
		if got := sq.Name(); got != "-" {
			t.Errorf("Square(%#x).Name() = %q; want \"-\"", int(sq), got)
		}
	}
}

func TestSquareShade(t *testing.T) {
	tests := []struct {
		name  string
		light bool
	}{
		{"a1", false},
		{"h1", true},
		{"a8", true},
		{"h8", false},
		{"e4", true},
		{"d4", false},
	}

	for _, tt := range tests {
		sq, err := ParseSquare(tt.name)
		if err != nil {
			t.Fatalf("ParseSquare(%q) error = %v", tt.name, err)
		}
		if got := sq.IsLight(); got != tt.light {
			t.Errorf("%s.IsLight() = %v; want %v", tt.name, got, tt.light)
		}
	}
}

func TestIsBackRank(t *testing.T) {
	for _, sq := range AllSquares() {
		want := sq.Rank() == '1' || sq.Rank() == '8'
		if got := sq.IsBackRank(); got != want {
			t.Errorf("%v.IsBackRank() = %v; want %v", sq, got, want)
		}
	}
}
