package engine

import (
	"fmt"
	"strings"

	"github.com/lgbarn/libchess-go/internal/chess"
	"github.com/lgbarn/libchess-go/internal/errors"
	"golang.org/x/exp/slices"
)

// SAN castling strings.
const (
	KingsideCastleSAN  = "o-o"
	QueensideCastleSAN = "o-o-o"

	// EnPassantSuffix is appended to the SAN of en-passant captures.
	EnPassantSuffix = " (e.p.)"
)

// DescribeMove derives the facts about a legal move: the moving and
// captured pieces, the move class, whether it checks or mates, and its SAN.
// Moves that are not legal in the position fail with ErrIllegalMove.
func DescribeMove(board *chess.Board, move chess.Move) (*chess.MoveInfo, error) {
	legal := LegalMoves(board)
	if !slices.Contains(legal, move) {
		return nil, fmt.Errorf("%s: %w", move, errors.ErrIllegalMove)
	}

	colour := board.Turn()
	info := &chess.MoveInfo{
		Move:     move,
		Piece:    board.Get(move.From),
		Captured: board.Get(move.To),
		Class:    classifyMove(board, move),
	}
	if info.Class == chess.EnPassantPawnMove {
		info.Captured = chess.MakeColouredPiece(colour.Opposite(), chess.Pawn)
	}

	resulting := board.Copy()
	MakeMove(resulting, move)
	switch {
	case IsCheckmate(resulting):
		info.CheckStatus = chess.Checkmate
	case IsCheck(resulting):
		info.CheckStatus = chess.Check
	}

	info.SAN = formatSAN(board, info, legal)
	return info, nil
}

// SAN returns the Standard Algebraic Notation of a legal move.
func SAN(board *chess.Board, move chess.Move) (string, error) {
	info, err := DescribeMove(board, move)
	if err != nil {
		return "", err
	}
	return info.SAN, nil
}

// classifyMove determines the class of a move on the board it is played on.
func classifyMove(board *chess.Board, move chess.Move) chess.MoveClass {
	piece := board.Get(move.From)
	switch chess.ExtractPiece(piece) {
	case chess.Pawn:
		switch {
		case move.Promotion != chess.Empty:
			return chess.PawnMoveWithPromotion
		case move.To.File() != move.From.File() && board.Get(move.To) == chess.Empty:
			return chess.EnPassantPawnMove
		default:
			return chess.PawnMove
		}
	case chess.King:
		switch move.To.File() - move.From.File() {
		case 2:
			return chess.KingsideCastle
		case -2:
			return chess.QueensideCastle
		}
	}
	return chess.PieceMove
}

// formatSAN renders the SAN of an annotated move. legal holds every legal
// move in the position, used for disambiguation.
func formatSAN(board *chess.Board, info *chess.MoveInfo, legal []chess.Move) string {
	var sb strings.Builder
	move := info.Move
	pieceType := chess.ExtractPiece(info.Piece)

	switch info.Class {
	case chess.KingsideCastle:
		sb.WriteString(KingsideCastleSAN)
	case chess.QueensideCastle:
		sb.WriteString(QueensideCastleSAN)
	default:
		if pieceType != chess.Pawn {
			sb.WriteByte(pieceType.Letter())
			sb.WriteString(disambiguator(board, move, legal))
		}
		if info.IsCapture() {
			if pieceType == chess.Pawn {
				sb.WriteByte(byte(move.From.Col()))
			}
			sb.WriteByte('x')
		}
		sb.WriteString(move.To.Name())
		if move.Promotion != chess.Empty {
			sb.WriteByte('=')
			sb.WriteByte(move.Promotion.Letter())
		}
	}

	switch info.CheckStatus {
	case chess.Checkmate:
		sb.WriteByte('#')
	case chess.Check:
		sb.WriteByte('+')
	}

	if info.Class == chess.EnPassantPawnMove {
		sb.WriteString(EnPassantSuffix)
	}
	return sb.String()
}

// disambiguator returns the origin information needed to tell the move
// apart from other legal moves of the same piece to the same square: the
// file if one of them shares the rank (or if none shares either), the rank
// if one shares the file, and the full square if both do. Pawns are never
// passed here; their captures already carry the origin file as a prefix.
func disambiguator(board *chess.Board, move chess.Move, legal []chess.Move) string {
	piece := board.Get(move.From)
	ambiguous, sameRank, sameFile := false, false, false

	for _, other := range legal {
		if other.To != move.To || other.From == move.From || board.Get(other.From) != piece {
			continue
		}
		ambiguous = true
		if other.From.Row() == move.From.Row() {
			sameRank = true
		}
		if other.From.File() == move.From.File() {
			sameFile = true
		}
		if sameRank && sameFile {
			break
		}
	}

	switch {
	case sameRank && sameFile:
		return move.From.Name()
	case sameFile:
		return string(rune(move.From.Rank()))
	case ambiguous:
		return string(rune(move.From.Col()))
	default:
		return ""
	}
}
