package engine

import (
	"github.com/lgbarn/libchess-go/internal/chess"
)

// GameStatus classifies a position by the rules that end a game without
// any claim or agreement.
type GameStatus int

const (
	InProgress GameStatus = iota
	Checkmated
	Stalemated
	DeadPosition // insufficient material for either side to mate
)

// String returns the string representation of a status.
func (s GameStatus) String() string {
	switch s {
	case Checkmated:
		return "checkmate"
	case Stalemated:
		return "stalemate"
	case DeadPosition:
		return "insufficient material"
	default:
		return "in progress"
	}
}

// Status classifies the position for the side to move, generating legal
// moves at most once.
func Status(board *chess.Board) GameStatus {
	if !HasLegalMoves(board) {
		if IsCheck(board) {
			return Checkmated
		}
		return Stalemated
	}
	if IsInsufficientMaterial(board) {
		return DeadPosition
	}
	return InProgress
}

// IsGameOver returns true for checkmate, stalemate and insufficient
// material.
func IsGameOver(board *chess.Board) bool {
	return Status(board) != InProgress
}

// IsInsufficientMaterial returns true if neither side can possibly mate.
// Results are undefined for positions that fail Validate.
//
// Insufficient material includes:
// - K vs K
// - K+B vs K
// - K+N vs K
// - Kings and any number of bishops, all on squares of one colour
func IsInsufficientMaterial(board *chess.Board) bool {
	counts := board.PieceCounts(chess.BothColours)

	// Any pawn, rook, or queen means sufficient material
	if counts[chess.Pawn] > 0 || counts[chess.Rook] > 0 || counts[chess.Queen] > 0 {
		return false
	}

	minors := counts[chess.Knight] + counts[chess.Bishop]
	switch {
	case minors == 0:
		// K vs K
		return true
	case minors == 1:
		// K+B vs K or K+N vs K
		return true
	case counts[chess.Knight] > 0:
		return false
	}

	// Only bishops remain: insufficient when they all share a shade.
	var lightBishops, darkBishops int
	for _, sq := range chess.AllSquares() {
		if chess.ExtractPiece(board.Get(sq)) != chess.Bishop {
			continue
		}
		if sq.IsLight() {
			lightBishops++
		} else {
			darkBishops++
		}
	}
	return lightBishops == 0 || darkBishops == 0
}
