package engine

import "github.com/lgbarn/libchess-go/internal/chess"

// PseudoLegalMoves generates every move for the side to move that obeys
// piece movement and board occupancy, without checking whether the
// mover's king is left in check.
func PseudoLegalMoves(board *chess.Board) []chess.Move {
	colour := board.Turn()
	moves := make([]chess.Move, 0, 48)

	for _, sq := range chess.AllSquares() {
		piece := board.Get(sq)
		if piece == chess.Empty || chess.ExtractColour(piece) != colour {
			continue
		}

		switch chess.ExtractPiece(piece) {
		case chess.Pawn:
			moves = appendPawnMoves(moves, board, sq, colour)
		case chess.Knight:
			moves = appendStepMoves(moves, board, sq, colour, knightOffsets[:])
		case chess.King:
			moves = appendStepMoves(moves, board, sq, colour, kingOffsets[:])
		case chess.Bishop:
			moves = appendSlidingMoves(moves, board, sq, colour, bishopOffsets[:])
		case chess.Rook:
			moves = appendSlidingMoves(moves, board, sq, colour, rookOffsets[:])
		case chess.Queen:
			moves = appendSlidingMoves(moves, board, sq, colour, bishopOffsets[:])
			moves = appendSlidingMoves(moves, board, sq, colour, rookOffsets[:])
		}
	}

	return appendCastlingMoves(moves, board, colour)
}

// appendStepMoves adds one-step moves for knights and kings.
func appendStepMoves(moves []chess.Move, board *chess.Board, from chess.Square, colour chess.Colour, offsets []int) []chess.Move {
	for _, offset := range offsets {
		to := chess.Square(int(from) + offset)
		if !to.Valid() {
			continue
		}
		target := board.Get(to)
		if target == chess.Empty || chess.ExtractColour(target) != colour {
			moves = append(moves, chess.NewMove(from, to))
		}
	}
	return moves
}

// appendSlidingMoves walks each ray until the board edge or a blocker. An
// enemy blocker is included, an own piece is not.
func appendSlidingMoves(moves []chess.Move, board *chess.Board, from chess.Square, colour chess.Colour, offsets []int) []chess.Move {
	for _, offset := range offsets {
		for to := chess.Square(int(from) + offset); to.Valid(); to = chess.Square(int(to) + offset) {
			target := board.Get(to)
			if target == chess.Empty {
				moves = append(moves, chess.NewMove(from, to))
				continue
			}
			if chess.ExtractColour(target) != colour {
				moves = append(moves, chess.NewMove(from, to))
			}
			break
		}
	}
	return moves
}
