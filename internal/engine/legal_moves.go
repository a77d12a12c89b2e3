package engine

import "github.com/lgbarn/libchess-go/internal/chess"

// LegalMoves returns the pseudo-legal moves that do not leave the mover's
// king attacked. Each candidate is tried on a copy of the board.
func LegalMoves(board *chess.Board) []chess.Move {
	pseudo := PseudoLegalMoves(board)
	legal := pseudo[:0]
	for _, move := range pseudo {
		if tryMove(board, move) {
			legal = append(legal, move)
		}
	}
	return legal
}

// HasLegalMoves returns true if the side to move has at least one legal
// move. It stops at the first one found.
func HasLegalMoves(board *chess.Board) bool {
	for _, move := range PseudoLegalMoves(board) {
		if tryMove(board, move) {
			return true
		}
	}
	return false
}

// CountLegalMoves returns the number of legal moves in the position.
func CountLegalMoves(board *chess.Board) int {
	return len(LegalMoves(board))
}

// IsLegalMove returns true if the move is legal in the position.
func IsLegalMove(board *chess.Board, move chess.Move) bool {
	for _, candidate := range PseudoLegalMoves(board) {
		if candidate == move {
			return tryMove(board, move)
		}
	}
	return false
}

// tryMove makes a move on a copied board and checks that it does not leave
// the mover's king in check.
func tryMove(board *chess.Board, move chess.Move) bool {
	colour := board.Turn()

	testBoard := board.Copy()
	MakeMove(testBoard, move)

	return !IsKingAttacked(testBoard, colour)
}
