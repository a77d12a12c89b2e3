package engine

import "github.com/lgbarn/libchess-go/internal/chess"

// castlingPath describes the squares involved in one castling move.
type castlingPath struct {
	right    chess.CastlingRight
	king     chess.Square   // king home square
	kingTo   chess.Square   // king destination
	rook     chess.Square   // rook home square
	rookTo   chess.Square   // rook destination
	empty    []chess.Square // must be unoccupied
	transits []chess.Square // must not be attacked (besides the king's own square)
}

var castlingPaths = [4]castlingPath{
	{
		right: chess.WhiteKingside, king: chess.E1, kingTo: chess.G1, rook: chess.H1, rookTo: chess.F1,
		empty:    []chess.Square{chess.F1, chess.G1},
		transits: []chess.Square{chess.F1, chess.G1},
	},
	{
		right: chess.WhiteQueenside, king: chess.E1, kingTo: chess.C1, rook: chess.A1, rookTo: chess.D1,
		empty:    []chess.Square{chess.D1, chess.C1, chess.NewSquare('b', '1')},
		transits: []chess.Square{chess.D1, chess.C1},
	},
	{
		right: chess.BlackKingside, king: chess.E8, kingTo: chess.G8, rook: chess.H8, rookTo: chess.F8,
		empty:    []chess.Square{chess.F8, chess.G8},
		transits: []chess.Square{chess.F8, chess.G8},
	},
	{
		right: chess.BlackQueenside, king: chess.E8, kingTo: chess.C8, rook: chess.A8, rookTo: chess.D8,
		empty:    []chess.Square{chess.D8, chess.C8, chess.NewSquare('b', '8')},
		transits: []chess.Square{chess.D8, chess.C8},
	},
}

// appendCastlingMoves adds the king's two-square move for each castling
// right the side holds, provided the path is empty, the king is not in
// check and it does not pass through or land on an attacked square.
func appendCastlingMoves(moves []chess.Move, board *chess.Board, colour chess.Colour) []chess.Move {
	opponent := colour.Opposite()
	inCheck := false
	checked := false

	for i := range castlingPaths {
		path := &castlingPaths[i]
		if path.right.Colour() != colour || !board.CastlingRight(path.right) {
			continue
		}
		if !pathIsEmpty(board, path.empty) {
			continue
		}
		if !checked {
			inCheck = IsInCheck(board, colour)
			checked = true
		}
		if inCheck || anyAttacked(board, opponent, path.transits) {
			continue
		}
		moves = append(moves, chess.NewMove(path.king, path.kingTo))
	}
	return moves
}

// pathIsEmpty returns true if none of the squares is occupied.
func pathIsEmpty(board *chess.Board, squares []chess.Square) bool {
	for _, sq := range squares {
		if board.Get(sq) != chess.Empty {
			return false
		}
	}
	return true
}

// anyAttacked returns true if the colour attacks any of the squares.
func anyAttacked(board *chess.Board, colour chess.Colour, squares []chess.Square) bool {
	for _, sq := range squares {
		if IsAttacked(board, colour, sq) {
			return true
		}
	}
	return false
}

// castlingRookMove returns the rook relocation for a king move of two files
// from its home square. ok is false for any other move.
func castlingRookMove(move chess.Move) (from, to chess.Square, ok bool) {
	for i := range castlingPaths {
		path := &castlingPaths[i]
		if move.From == path.king && move.To == path.kingTo {
			return path.rook, path.rookTo, true
		}
	}
	return chess.NoSquare, chess.NoSquare, false
}

// isCastlingMove reports whether the move is a king moving two files.
func isCastlingMove(piece chess.Piece, move chess.Move) bool {
	return chess.ExtractPiece(piece) == chess.King && abs(move.To.File()-move.From.File()) == 2
}
