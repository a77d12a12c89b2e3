package engine

import (
	"fmt"
	"strings"

	"github.com/lgbarn/libchess-go/internal/chess"
	"github.com/lgbarn/libchess-go/internal/errors"
)

// Limits on material a legal position may hold per side.
const (
	MaxPawns  = 8
	MaxPieces = 16 // pawns and king included
)

// ViolationKind identifies why a position cannot arise in a game.
type ViolationKind int

const (
	MissingKing ViolationKind = iota
	ExtraKing
	TooManyPawns
	TooManyPieces
	BothInCheck
	OpponentInCheck
)

// String returns the string representation of a violation kind.
func (k ViolationKind) String() string {
	switch k {
	case MissingKing:
		return "missing king"
	case ExtraKing:
		return "too many kings"
	case TooManyPawns:
		return "too many pawns"
	case TooManyPieces:
		return "too many pieces"
	case BothInCheck:
		return "both sides in check"
	case OpponentInCheck:
		return "side not to move is in check"
	default:
		return "unknown violation"
	}
}

// Violation is one reason a position is invalid. Colour is meaningful only
// for the per-side kinds (MissingKing, ExtraKing, TooManyPawns,
// TooManyPieces). A Violation unwraps to ErrInvalidPosition.
type Violation struct {
	Kind   ViolationKind
	Colour chess.Colour
}

// Error implements the error interface.
func (v Violation) Error() string {
	switch v.Kind {
	case MissingKing, ExtraKing, TooManyPawns, TooManyPieces:
		return fmt.Sprintf("%s: %s", strings.ToLower(v.Colour.String()), v.Kind)
	default:
		return v.Kind.String()
	}
}

// Unwrap returns ErrInvalidPosition.
func (v Violation) Unwrap() error {
	return errors.ErrInvalidPosition
}

// ValidationError lists every violation found in a position.
type ValidationError struct {
	Violations []Violation
}

// Error returns all violations joined by "; ".
func (e *ValidationError) Error() string {
	parts := make([]string, len(e.Violations))
	for i, v := range e.Violations {
		parts[i] = v.Error()
	}
	return fmt.Sprintf("%v: %s", errors.ErrInvalidPosition, strings.Join(parts, "; "))
}

// Unwrap exposes the individual violations to errors.Is and errors.As.
func (e *ValidationError) Unwrap() []error {
	errs := make([]error, len(e.Violations))
	for i, v := range e.Violations {
		errs[i] = v
	}
	return errs
}

// Has reports whether a violation of the given kind was found.
func (e *ValidationError) Has(kind ViolationKind) bool {
	for _, v := range e.Violations {
		if v.Kind == kind {
			return true
		}
	}
	return false
}

// Validate checks that a loadable position could arise in a game. It
// reports every problem rather than stopping at the first, returning nil
// for a valid position and a *ValidationError otherwise.
//
// Castling rights are corrected as pieces are placed and en-passant files
// are advisory, so neither is checked here. Move generation and material
// rules assume a valid position; their results are undefined otherwise.
func Validate(board *chess.Board) error {
	var violations []Violation

	for _, colour := range [2]chess.Colour{chess.White, chess.Black} {
		counts := board.PieceCounts(filterFor(colour))
		switch {
		case counts[chess.King] == 0:
			violations = append(violations, Violation{Kind: MissingKing, Colour: colour})
		case counts[chess.King] > 1:
			violations = append(violations, Violation{Kind: ExtraKing, Colour: colour})
		}
		if counts[chess.Pawn] > MaxPawns {
			violations = append(violations, Violation{Kind: TooManyPawns, Colour: colour})
		}
		if counts.Total() > MaxPieces {
			violations = append(violations, Violation{Kind: TooManyPieces, Colour: colour})
		}
	}

	whiteInCheck := IsKingAttacked(board, chess.White)
	blackInCheck := IsKingAttacked(board, chess.Black)
	if whiteInCheck && blackInCheck {
		violations = append(violations, Violation{Kind: BothInCheck})
	} else if IsKingAttacked(board, board.Turn().Opposite()) {
		violations = append(violations, Violation{Kind: OpponentInCheck})
	}

	if len(violations) == 0 {
		return nil
	}
	return &ValidationError{Violations: violations}
}

// filterFor returns the piece-count filter selecting one colour.
func filterFor(colour chess.Colour) chess.ColourFilter {
	if colour == chess.White {
		return chess.OnlyWhite
	}
	return chess.OnlyBlack
}
