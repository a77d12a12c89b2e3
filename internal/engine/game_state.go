package engine

import "github.com/lgbarn/libchess-go/internal/chess"

// IsCheck returns true if the side to move is in check.
func IsCheck(board *chess.Board) bool {
	return IsInCheck(board, board.Turn())
}

// IsCheckmate returns true if the position is checkmate for the side to move.
func IsCheckmate(board *chess.Board) bool {
	return IsCheck(board) && !HasLegalMoves(board)
}

// IsStalemate returns true if the position is stalemate for the side to move.
func IsStalemate(board *chess.Board) bool {
	return !IsCheck(board) && !HasLegalMoves(board)
}
