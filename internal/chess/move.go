package chess

import (
	"fmt"

	"github.com/lgbarn/libchess-go/internal/errors"
)

// Move is a source square, a destination square and an optional promotion
// piece type. Moves compare equal with ==. Whether a move is a capture, a
// castle or an en-passant capture depends on the board it is played on.
type Move struct {
	From      Square
	To        Square
	Promotion Piece // Empty if not a promotion
}

// NewMove creates a move without promotion.
func NewMove(from, to Square) Move {
	return Move{From: from, To: to, Promotion: Empty}
}

// NewPromotion creates a promoting move.
func NewPromotion(from, to Square, promotion Piece) Move {
	return Move{From: from, To: to, Promotion: promotion}
}

// IsPromotion returns true if the move carries a promotion piece.
func (m Move) IsPromotion() bool {
	return m.Promotion != Empty
}

// String returns the move in long algebraic form, e.g. "e2e4" or "e7e8q".
func (m Move) String() string {
	s := m.From.Name() + m.To.Name()
	if m.Promotion != Empty {
		s += string(rune(Symbol(B(m.Promotion))))
	}
	return s
}

// ParseMove parses long algebraic move text such as "g1f3" or "a7a8q".
func ParseMove(text string) (Move, error) {
	if len(text) != 4 && len(text) != 5 {
		return Move{}, fmt.Errorf("%q: %w", text, errors.ErrInvalidMove)
	}
	from, err := ParseSquare(text[0:2])
	if err != nil {
		return Move{}, fmt.Errorf("%q: %w", text, errors.ErrInvalidMove)
	}
	to, err := ParseSquare(text[2:4])
	if err != nil {
		return Move{}, fmt.Errorf("%q: %w", text, errors.ErrInvalidMove)
	}
	move := NewMove(from, to)
	if len(text) == 5 {
		piece, ok := PieceFromSymbol(text[4])
		if !ok || !IsPromotionPiece(ExtractPiece(piece)) {
			return Move{}, fmt.Errorf("%q: bad promotion piece: %w", text, errors.ErrInvalidMove)
		}
		move.Promotion = ExtractPiece(piece)
	}
	return move, nil
}

// MoveInfo describes a legal move in the context of the position it was
// played from. It is computed on demand and never stored on the board.
type MoveInfo struct {
	Move Move

	// The move in Standard Algebraic Notation.
	SAN string

	// Class of move (pawn move, piece move, castle, etc.).
	Class MoveClass

	// The coloured piece being moved.
	Piece Piece

	// The coloured piece captured (Empty if no capture). For en passant
	// this is the opposing pawn even though the target square was empty.
	Captured Piece

	// Whether this move gives check or checkmate.
	CheckStatus CheckStatus
}

// IsCapture returns true if this move is a capture.
func (mi *MoveInfo) IsCapture() bool {
	return mi.Captured != Empty
}

// IsPromotion returns true if this move is a pawn promotion.
func (mi *MoveInfo) IsPromotion() bool {
	return mi.Class == PawnMoveWithPromotion
}

// IsEnPassant returns true for en-passant captures.
func (mi *MoveInfo) IsEnPassant() bool {
	return mi.Class == EnPassantPawnMove
}

// IsKingSideCastle returns true for castling short.
func (mi *MoveInfo) IsKingSideCastle() bool {
	return mi.Class == KingsideCastle
}

// IsQueenSideCastle returns true for castling long.
func (mi *MoveInfo) IsQueenSideCastle() bool {
	return mi.Class == QueensideCastle
}

// IsCastle returns true if this move is a castling move.
func (mi *MoveInfo) IsCastle() bool {
	switch mi.Class {
	case KingsideCastle, QueensideCastle:
		return true
	default:
		return false
	}
}

// IsCheck returns true if the move gives check, including checkmate.
func (mi *MoveInfo) IsCheck() bool {
	return mi.CheckStatus != NoCheck
}

// IsCheckmate returns true if the move mates.
func (mi *MoveInfo) IsCheckmate() bool {
	return mi.CheckStatus == Checkmate
}
