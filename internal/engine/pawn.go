package engine

import "github.com/lgbarn/libchess-go/internal/chess"

// pawnStartRow returns the zero-based row pawns of the colour start on.
func pawnStartRow(colour chess.Colour) int {
	if colour == chess.White {
		return 1
	}
	return 6
}

// appendPawnMoves adds pushes, double pushes, captures, en-passant captures
// and promotions for the pawn on from.
func appendPawnMoves(moves []chess.Move, board *chess.Board, from chess.Square, colour chess.Colour) []chess.Move {
	forward := 16 * chess.ColourOffset(colour)

	// Single push, then the double push if both cells are empty.
	to := chess.Square(int(from) + forward)
	if to.Valid() && board.Get(to) == chess.Empty {
		moves = appendPawnMove(moves, from, to)

		if from.Row() == pawnStartRow(colour) {
			double := chess.Square(int(to) + forward)
			if board.Get(double) == chess.Empty {
				moves = append(moves, chess.NewMove(from, double))
			}
		}
	}

	epCol, hasEP := board.EPFile()
	for _, side := range [2]int{-1, 1} {
		to := chess.Square(int(from) + forward + side)
		if !to.Valid() {
			continue
		}
		target := board.Get(to)
		switch {
		case target != chess.Empty:
			if chess.ExtractColour(target) != colour {
				moves = appendPawnMove(moves, from, to)
			}
		case hasEP && to.Col() == epCol && isEnPassantTarget(board, to, colour):
			moves = append(moves, chess.NewMove(from, to))
		}
	}

	return moves
}

// appendPawnMove adds a pawn move, branching into the four promotions when
// the destination is the last rank.
func appendPawnMove(moves []chess.Move, from, to chess.Square) []chess.Move {
	if !to.IsBackRank() {
		return append(moves, chess.NewMove(from, to))
	}
	for _, promotion := range chess.PromotionPieces {
		moves = append(moves, chess.NewPromotion(from, to, promotion))
	}
	return moves
}

// isEnPassantTarget reports whether a pawn of the colour may capture en
// passant onto to: the square must be on the sixth rank from the mover's
// side and the pawn that just advanced must stand behind it.
func isEnPassantTarget(board *chess.Board, to chess.Square, colour chess.Colour) bool {
	row := 5
	if colour == chess.Black {
		row = 2
	}
	if to.Row() != row {
		return false
	}
	victim := board.Get(enPassantVictim(to, colour))
	return victim == chess.MakeColouredPiece(colour.Opposite(), chess.Pawn)
}

// enPassantVictim returns the square of the pawn captured by an en-passant
// move of the given colour landing on to.
func enPassantVictim(to chess.Square, colour chess.Colour) chess.Square {
	return chess.Square(int(to) - 16*chess.ColourOffset(colour))
}
