package chess

import (
	"fmt"

	"github.com/lgbarn/libchess-go/internal/errors"
)

// Square is an index into a 0x88 board: the low nibble holds the file and
// the high nibble the rank, so a1 is 0x00 and h8 is 0x77. Any index with
// bit 0x88 set lies off the board.
type Square int

// NoSquare is returned where a square is absent.
const NoSquare Square = -1

// Common squares used by castling.
const (
	A1 Square = 0x00
	C1 Square = 0x02
	D1 Square = 0x03
	E1 Square = 0x04
	F1 Square = 0x05
	G1 Square = 0x06
	H1 Square = 0x07
	A8 Square = 0x70
	C8 Square = 0x72
	D8 Square = 0x73
	E8 Square = 0x74
	F8 Square = 0x75
	G8 Square = 0x76
	H8 Square = 0x77
)

var allSquares = func() [BoardSize * BoardSize]Square {
	var squares [BoardSize * BoardSize]Square
	for i := range squares {
		squares[i] = Square((i/BoardSize)<<4 | i%BoardSize)
	}
	return squares
}()

// AllSquares returns the 64 board squares, a1 through h8 rank by rank.
func AllSquares() []Square {
	return allSquares[:]
}

// NewSquare builds a square from character coordinates.
// It returns NoSquare if either coordinate is off the board.
func NewSquare(col Col, rank Rank) Square {
	if !col.Valid() || !rank.Valid() {
		return NoSquare
	}
	return Square(int(rank-RankBase)<<4 | int(col-ColBase))
}

// SquareAt builds a square from zero-based file and row numbers.
func SquareAt(file, row int) Square {
	if file < 0 || file >= BoardSize || row < 0 || row >= BoardSize {
		return NoSquare
	}
	return Square(row<<4 | file)
}

// SquareFromIndex converts a 0x88 index to a square, rejecting off-board
// indices.
func SquareFromIndex(index int) (Square, error) {
	if !Square(index).Valid() {
		return NoSquare, fmt.Errorf("0x88 index %d: %w", index, errors.ErrInvalidSquare)
	}
	return Square(index), nil
}

// ParseSquare converts a name such as "e4" to a square.
func ParseSquare(name string) (Square, error) {
	if len(name) != 2 {
		return NoSquare, fmt.Errorf("%q: %w", name, errors.ErrInvalidSquare)
	}
	sq := NewSquare(Col(name[0]), Rank(name[1]))
	if sq == NoSquare {
		return NoSquare, fmt.Errorf("%q: %w", name, errors.ErrInvalidSquare)
	}
	return sq, nil
}

// Valid reports whether the square lies on the board.
func (s Square) Valid() bool {
	return s >= 0 && s < 0x80 && s&0x88 == 0
}

// Index returns the 0x88 index of the square.
func (s Square) Index() int {
	return int(s)
}

// File returns the zero-based file (0 = a).
func (s Square) File() int {
	return int(s) & 7
}

// Row returns the zero-based rank (0 = first rank).
func (s Square) Row() int {
	return int(s) >> 4
}

// Col returns the file letter.
func (s Square) Col() Col {
	return Col(ColBase + s.File())
}

// Rank returns the rank character.
func (s Square) Rank() Rank {
	return Rank(RankBase + s.Row())
}

// IsLight reports whether the square is a light square (h1 is light).
func (s Square) IsLight() bool {
	return (s.File()+s.Row())%2 == 1
}

// IsBackRank reports whether the square is on the first or eighth rank.
func (s Square) IsBackRank() bool {
	row := s.Row()
	return row == 0 || row == BoardSize-1
}

// Name returns the algebraic name of the square, e.g. "e4".
func (s Square) Name() string {
	if !s.Valid() {
		return "-"
	}
	return string([]byte{byte(s.Col()), byte(s.Rank())})
}

// String implements fmt.Stringer.
func (s Square) String() string {
	return s.Name()
}
