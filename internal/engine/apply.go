package engine

import (
	"fmt"

	"github.com/lgbarn/libchess-go/internal/chess"
	"github.com/lgbarn/libchess-go/internal/errors"
)

// MakeMove plays a move on the board in place. The move is not checked for
// legality; callers that cannot guarantee it should use PlayMove.
//
// Besides relocating the piece, MakeMove removes a pawn captured en
// passant, records or clears the en-passant file, promotes, moves the rook
// when the king castles, updates both move counters and passes the turn.
// Castling rights lapse automatically through Board.Set.
func MakeMove(board *chess.Board, move chess.Move) {
	colour := board.Turn()
	piece := board.Get(move.From)
	captured := board.Get(move.To)
	pieceType := chess.ExtractPiece(piece)

	// Move the piece
	board.Set(move.To, piece)
	board.Set(move.From, chess.Empty)

	board.ClearEPFile()
	if pieceType == chess.Pawn {
		// A diagonal pawn move onto an empty square is en passant.
		if move.To.File() != move.From.File() && captured == chess.Empty {
			victim := enPassantVictim(move.To, colour)
			captured = board.Get(victim)
			board.Set(victim, chess.Empty)
		}
		if abs(move.To.Row()-move.From.Row()) == 2 {
			// move.To is on the board, so its file always validates.
			_ = board.SetEPFile(move.To.Col())
		}
	}

	// Handle promotion
	if move.Promotion != chess.Empty {
		board.Set(move.To, chess.MakeColouredPiece(colour, move.Promotion))
	}

	// Move the rook when castling
	if isCastlingMove(piece, move) {
		if rookFrom, rookTo, ok := castlingRookMove(move); ok {
			rook := board.Get(rookFrom)
			board.Set(rookFrom, chess.Empty)
			board.Set(rookTo, rook)
		}
	}

	board.EndTurn(pieceType == chess.Pawn || captured != chess.Empty)
}

// PlayMove plays a move after checking that it is legal in the position.
// Illegal moves leave the board untouched and fail with ErrIllegalMove.
func PlayMove(board *chess.Board, move chess.Move) error {
	if !IsLegalMove(board, move) {
		return fmt.Errorf("%s: %w", move, errors.ErrIllegalMove)
	}
	MakeMove(board, move)
	return nil
}

// PlayMoves plays a sequence of long algebraic moves such as "e2e4 e7e5".
// It stops at the first move that fails to parse or is illegal.
func PlayMoves(board *chess.Board, moves ...string) error {
	for i, text := range moves {
		move, err := chess.ParseMove(text)
		if err != nil {
			return errors.Wrapf(err, "move %d", i+1)
		}
		if err := PlayMove(board, move); err != nil {
			return errors.Wrapf(err, "move %d", i+1)
		}
	}
	return nil
}
