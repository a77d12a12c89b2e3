package engine

import "github.com/lgbarn/libchess-go/internal/chess"

// Offsets in 0x88 index space. A step off the board always produces an
// index with bit 0x88 set.
var (
	knightOffsets   = [8]int{-33, -31, -18, -14, 14, 18, 31, 33}
	kingOffsets     = [8]int{-17, -16, -15, -1, 1, 15, 16, 17}
	bishopOffsets   = [4]int{-17, -15, 15, 17}
	rookOffsets     = [4]int{-16, -1, 1, 16}
	pawnCaptureDiff = [4]int{-17, -15, 15, 17}
)

// attackOffset shifts a square difference into the attack tables.
const attackOffset = 119

// attackBit returns the table bit for a piece type.
func attackBit(piece chess.Piece) uint8 {
	return 1 << uint(piece-chess.Pawn)
}

// attackMask records, for every difference source-target, which piece types
// could attack along it on an empty board. attackRay holds the step to walk
// from source towards target for sliding pieces.
var attackMask, attackRay = buildAttackTables()

func buildAttackTables() (mask [240]uint8, ray [240]int) {
	for _, d := range pawnCaptureDiff {
		mask[d+attackOffset] |= attackBit(chess.Pawn)
	}
	for _, d := range knightOffsets {
		mask[d+attackOffset] |= attackBit(chess.Knight)
	}
	for _, d := range kingOffsets {
		mask[d+attackOffset] |= attackBit(chess.King)
	}
	slide := func(offsets []int, piece chess.Piece) {
		for _, step := range offsets {
			for distance := 1; distance < chess.BoardSize; distance++ {
				// target = source + step*distance, so source-target = -step*distance.
				i := -step*distance + attackOffset
				mask[i] |= attackBit(piece) | attackBit(chess.Queen)
				ray[i] = step
			}
		}
	}
	slide(bishopOffsets[:], chess.Bishop)
	slide(rookOffsets[:], chess.Rook)
	return mask, ray
}

// Attackers returns the squares of all pieces of the given colour that
// attack sq. The result is recomputed on every call.
func Attackers(board *chess.Board, colour chess.Colour, sq chess.Square) []chess.Square {
	var attackers []chess.Square
	forEachAttacker(board, colour, sq, func(source chess.Square) bool {
		attackers = append(attackers, source)
		return true
	})
	return attackers
}

// IsAttacked returns true if any piece of the given colour attacks sq.
func IsAttacked(board *chess.Board, colour chess.Colour, sq chess.Square) bool {
	attacked := false
	forEachAttacker(board, colour, sq, func(chess.Square) bool {
		attacked = true
		return false
	})
	return attacked
}

// forEachAttacker calls fn with each attacking square until fn returns false.
func forEachAttacker(board *chess.Board, colour chess.Colour, target chess.Square, fn func(chess.Square) bool) {
	if !target.Valid() {
		return
	}
	for _, source := range chess.AllSquares() {
		piece := board.Get(source)
		if piece == chess.Empty || chess.ExtractColour(piece) != colour {
			continue
		}
		if attacks(board, piece, source, target) && !fn(source) {
			return
		}
	}
}

// attacks reports whether the coloured piece on source attacks target.
func attacks(board *chess.Board, piece chess.Piece, source, target chess.Square) bool {
	difference := int(source) - int(target)
	if difference == 0 {
		return false
	}
	index := difference + attackOffset
	pieceType := chess.ExtractPiece(piece)
	if attackMask[index]&attackBit(pieceType) == 0 {
		return false
	}

	switch pieceType {
	case chess.Pawn:
		// White pawns attack upwards, so the target has the larger index.
		if chess.ExtractColour(piece) == chess.White {
			return difference < 0
		}
		return difference > 0
	case chess.Knight, chess.King:
		return true
	}

	step := attackRay[index]
	for i := int(source) + step; i != int(target); i += step {
		if board.GetByIndex(i) != chess.Empty {
			return false
		}
	}
	return true
}

// IsKingAttacked returns true if the king of the given colour is attacked.
// A side without a king is never attacked.
func IsKingAttacked(board *chess.Board, colour chess.Colour) bool {
	sq, ok := board.King(colour)
	if !ok {
		return false
	}
	return IsAttacked(board, colour.Opposite(), sq)
}

// IsInCheck returns true if the given colour's king is in check.
func IsInCheck(board *chess.Board, colour chess.Colour) bool {
	return IsKingAttacked(board, colour)
}
