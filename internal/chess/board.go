package chess

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lgbarn/libchess-go/internal/errors"
)

// CastlingRight is one of the four castling rights, or a set of them.
type CastlingRight uint8

const (
	WhiteKingside CastlingRight = 1 << iota
	WhiteQueenside
	BlackKingside
	BlackQueenside

	NoCastling  CastlingRight = 0
	AllCastling               = WhiteKingside | WhiteQueenside | BlackKingside | BlackQueenside
)

// AllCastlingRights lists the four rights in FEN order (K, Q, k, q).
var AllCastlingRights = [4]CastlingRight{WhiteKingside, WhiteQueenside, BlackKingside, BlackQueenside}

// Letter returns the FEN letter of a single right.
func (r CastlingRight) Letter() byte {
	switch r {
	case WhiteKingside:
		return 'K'
	case WhiteQueenside:
		return 'Q'
	case BlackKingside:
		return 'k'
	case BlackQueenside:
		return 'q'
	}
	return '?'
}

// Colour returns the side a single right belongs to.
func (r CastlingRight) Colour() Colour {
	if r == WhiteKingside || r == WhiteQueenside {
		return White
	}
	return Black
}

// IsKingside reports whether the right is a kingside right.
func (r CastlingRight) IsKingside() bool {
	return r == WhiteKingside || r == BlackKingside
}

// String renders the set in FEN form, "-" when empty.
func (r CastlingRight) String() string {
	var out []byte
	for _, right := range AllCastlingRights {
		if r&right != 0 {
			out = append(out, right.Letter())
		}
	}
	if len(out) == 0 {
		return "-"
	}
	return string(out)
}

// KingsideRight returns the kingside right of the colour.
func KingsideRight(colour Colour) CastlingRight {
	if colour == White {
		return WhiteKingside
	}
	return BlackKingside
}

// QueensideRight returns the queenside right of the colour.
func QueensideRight(colour Colour) CastlingRight {
	if colour == White {
		return WhiteQueenside
	}
	return BlackQueenside
}

// castlingHome gives the king and rook home squares for each right.
func castlingHome(r CastlingRight) (king, rook Square) {
	switch r {
	case WhiteKingside:
		return E1, H1
	case WhiteQueenside:
		return E1, A1
	case BlackKingside:
		return E8, H8
	default:
		return E8, A8
	}
}

// Board represents a chess position: a 0x88 array of pieces plus the
// side to move, castling rights, en-passant file and move counters.
//
// Castling rights are kept consistent with the piece placement: every
// write through Set drops any right whose king or rook has left its home
// square.
type Board struct {
	// 128 cells; only indices with bit 0x88 clear are used.
	cells [128]Piece

	// Who has the next move.
	toMove Colour

	castling CastlingRight

	// File of a pawn that has just advanced two squares, 0 if none.
	epCol Col

	// The half-move clock since the last pawn move or capture.
	halfmoves int

	// The current move number, incremented after Black moves.
	moveNumber int
}

// NewBoard creates a new empty board with White to move.
func NewBoard() *Board {
	return &Board{
		toMove:     White,
		moveNumber: 1,
	}
}

// NewInitialBoard creates a board in the standard starting position.
func NewInitialBoard() *Board {
	b := NewBoard()
	b.Reset()
	return b
}

// Reset sets up the standard chess starting position.
func (b *Board) Reset() {
	b.cells = [128]Piece{}

	backRank := []Piece{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for file := 0; file < BoardSize; file++ {
		b.cells[SquareAt(file, 0)] = W(backRank[file])
		b.cells[SquareAt(file, 1)] = W(Pawn)
		b.cells[SquareAt(file, 6)] = B(Pawn)
		b.cells[SquareAt(file, 7)] = B(backRank[file])
	}

	b.castling = AllCastling
	b.toMove = White
	b.epCol = 0
	b.halfmoves = 0
	b.moveNumber = 1
}

// Clear removes all pieces and castling rights.
func (b *Board) Clear() {
	b.cells = [128]Piece{}
	b.castling = NoCastling
}

// Get returns the coloured piece on a square, or Empty.
func (b *Board) Get(sq Square) Piece {
	if !sq.Valid() {
		return Empty
	}
	return b.cells[sq]
}

// GetByIndex returns the piece at a raw 0x88 index. Off-board indices
// always hold Empty.
func (b *Board) GetByIndex(index int) Piece {
	if !Square(index).Valid() {
		return Empty
	}
	return b.cells[index]
}

// Set places a coloured piece (or Empty) on a square and revokes any
// castling right the new placement no longer supports.
func (b *Board) Set(sq Square, piece Piece) {
	if !sq.Valid() {
		return
	}
	b.cells[sq] = piece
	b.RefreshCastlingRights()
}

// RefreshCastlingRights drops every right that the placement cannot
// support.
func (b *Board) RefreshCastlingRights() {
	for _, right := range AllCastlingRights {
		if !b.TheoreticalCastlingRight(right) {
			b.castling &^= right
		}
	}
}

// Copy creates a deep copy of the board.
func (b *Board) Copy() *Board {
	newBoard := &Board{}
	*newBoard = *b
	return newBoard
}

// Equal reports whether two boards describe the same position, counters
// included.
func (b *Board) Equal(other *Board) bool {
	return *b == *other
}

// Turn returns the side to move.
func (b *Board) Turn() Colour {
	return b.toMove
}

// SetTurn sets the side to move.
func (b *Board) SetTurn(colour Colour) {
	b.toMove = colour
}

// ToggleTurn passes the move to the other side.
func (b *Board) ToggleTurn() {
	b.toMove = b.toMove.Opposite()
}

// EndTurn updates the clocks after the side to move has moved and passes
// the move to the other side. The halfmove clock restarts when
// resetHalfmoves is set; the move number advances after Black moves.
func (b *Board) EndTurn(resetHalfmoves bool) {
	if resetHalfmoves {
		b.halfmoves = 0
	} else {
		b.halfmoves++
	}
	if b.toMove == Black {
		b.moveNumber++
	}
	b.ToggleTurn()
}

// CastlingRights returns the set of rights currently held.
func (b *Board) CastlingRights() CastlingRight {
	return b.castling
}

// CastlingRight reports whether a single right is held.
func (b *Board) CastlingRight(right CastlingRight) bool {
	return b.castling&right != 0
}

// TheoreticalCastlingRight reports whether the king and rook stand on their
// home squares for the right, regardless of whether it was given up.
func (b *Board) TheoreticalCastlingRight(right CastlingRight) bool {
	king, rook := castlingHome(right)
	colour := right.Colour()
	return b.cells[king] == MakeColouredPiece(colour, King) &&
		b.cells[rook] == MakeColouredPiece(colour, Rook)
}

// SetCastlingRight grants or revokes a right. Granting a right the piece
// placement cannot support fails with ErrCastlingRight.
func (b *Board) SetCastlingRight(right CastlingRight, status bool) error {
	if right == NoCastling || right&AllCastling != right || right&(right-1) != 0 {
		return fmt.Errorf("castling right %d: %w", right, errors.ErrInvalidArgument)
	}
	if !status {
		b.castling &^= right
		return nil
	}
	if !b.TheoreticalCastlingRight(right) {
		return fmt.Errorf("%c: %w", right.Letter(), errors.ErrCastlingRight)
	}
	b.castling |= right
	return nil
}

// EPFile returns the en-passant file, if any.
func (b *Board) EPFile() (Col, bool) {
	return b.epCol, b.epCol != 0
}

// SetEPFile records the file of a pawn that has just advanced two squares.
func (b *Board) SetEPFile(col Col) error {
	if !col.Valid() {
		return fmt.Errorf("en-passant file %q: %w", rune(col), errors.ErrInvalidArgument)
	}
	b.epCol = col
	return nil
}

// ClearEPFile removes the en-passant file.
func (b *Board) ClearEPFile() {
	b.epCol = 0
}

// Halfmoves returns the number of half-moves since the last capture or
// pawn move.
func (b *Board) Halfmoves() int {
	return b.halfmoves
}

// SetHalfmoves sets the half-move clock. Negative values are rejected.
func (b *Board) SetHalfmoves(n int) error {
	if n < 0 {
		return fmt.Errorf("halfmove clock %d: %w", n, errors.ErrInvalidArgument)
	}
	b.halfmoves = n
	return nil
}

// MoveNumber returns the full-move number.
func (b *Board) MoveNumber() int {
	return b.moveNumber
}

// SetMoveNumber sets the full-move number. Values below 1 are rejected.
func (b *Board) SetMoveNumber(n int) error {
	if n < 1 {
		return fmt.Errorf("move number %d: %w", n, errors.ErrInvalidArgument)
	}
	b.moveNumber = n
	return nil
}

// PieceCounts counts the pieces of the selected colours by type.
func (b *Board) PieceCounts(filter ColourFilter) PieceCounts {
	var counts PieceCounts
	for _, sq := range allSquares {
		piece := b.cells[sq]
		if piece == Empty || !filter.Includes(ExtractColour(piece)) {
			continue
		}
		counts[ExtractPiece(piece)]++
	}
	return counts
}

// King returns the square of the colour's king. The second result is false
// if that side has no king.
func (b *Board) King(colour Colour) (Square, bool) {
	king := MakeColouredPiece(colour, King)
	for _, sq := range allSquares {
		if b.cells[sq] == king {
			return sq, true
		}
	}
	return NoSquare, false
}

// String renders the board as a FEN string.
func (b *Board) String() string {
	var sb strings.Builder

	for row := BoardSize - 1; row >= 0; row-- {
		empty := 0
		for file := 0; file < BoardSize; file++ {
			piece := b.cells[SquareAt(file, row)]
			if piece == Empty {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte(byte('0' + empty))
				empty = 0
			}
			sb.WriteByte(Symbol(piece))
		}
		if empty > 0 {
			sb.WriteByte(byte('0' + empty))
		}
		if row > 0 {
			sb.WriteByte('/')
		}
	}

	sb.WriteByte(' ')
	sb.WriteByte(b.toMove.Letter())
	sb.WriteByte(' ')
	sb.WriteString(b.castling.String())
	sb.WriteByte(' ')
	// The target square sits behind the pawn that just advanced two ranks.
	if b.epCol == 0 {
		sb.WriteByte('-')
	} else {
		sb.WriteByte(byte(b.epCol))
		if b.toMove == White {
			sb.WriteByte('6')
		} else {
			sb.WriteByte('3')
		}
	}
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(b.halfmoves))
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(b.moveNumber))

	return sb.String()
}
