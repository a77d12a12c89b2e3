// Package engine provides move generation, legality checking, move
// annotation and game-state rules on top of chess.Board.
package engine

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/lgbarn/libchess-go/internal/chess"
	"github.com/lgbarn/libchess-go/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

var (
	castlingPattern  = regexp.MustCompile(`^(KQ?k?q?|Qk?q?|kq?|q|-)$`)
	enPassantPattern = regexp.MustCompile(`^(-|[a-h][36])$`)
)

// fenFields holds the parsed fields of a FEN string before they are
// committed to a board.
type fenFields struct {
	cells      [chess.BoardSize][chess.BoardSize]chess.Piece // [row][file]
	toMove     chess.Colour
	castling   chess.CastlingRight
	epCol      chess.Col
	halfmoves  int
	moveNumber int
}

// NewBoardFromFEN creates a board from a FEN string.
func NewBoardFromFEN(fen string) (*chess.Board, error) {
	board := chess.NewBoard()
	if err := SetFEN(board, fen); err != nil {
		return nil, err
	}
	return board, nil
}

// NewInitialBoard creates a board with the standard starting position.
func NewInitialBoard() *chess.Board {
	return chess.NewInitialBoard()
}

// SetFEN replaces the position on the board with the one described by fen.
// On error the board is left unchanged. Castling rights that the piece
// placement cannot support are dropped rather than rejected.
func SetFEN(board *chess.Board, fen string) error {
	fields, err := parseFEN(fen)
	if err != nil {
		return err
	}

	board.Clear()
	for row := 0; row < chess.BoardSize; row++ {
		for file := 0; file < chess.BoardSize; file++ {
			if piece := fields.cells[row][file]; piece != chess.Empty {
				board.Set(chess.SquareAt(file, row), piece)
			}
		}
	}

	board.SetTurn(fields.toMove)
	board.ClearEPFile()
	if fields.epCol != 0 {
		if err := board.SetEPFile(fields.epCol); err != nil {
			return err
		}
	}
	if err := board.SetHalfmoves(fields.halfmoves); err != nil {
		return err
	}
	if err := board.SetMoveNumber(fields.moveNumber); err != nil {
		return err
	}
	for _, right := range chess.AllCastlingRights {
		if fields.castling&right == 0 {
			continue
		}
		// Rights the placement cannot support are dropped.
		if !board.TheoreticalCastlingRight(right) {
			continue
		}
		if err := board.SetCastlingRight(right, true); err != nil {
			return err
		}
	}
	return nil
}

// parseFEN validates every field of a FEN string.
func parseFEN(fen string) (*fenFields, error) {
	parts := strings.Fields(fen)
	if len(parts) != 6 {
		return nil, errors.NewFENError("fields", fen, "expected 6 space-separated fields, got "+strconv.Itoa(len(parts)))
	}

	fields := &fenFields{}

	if err := parsePiecePositions(fields, parts[0]); err != nil {
		return nil, err
	}
	if err := parseSideToMove(fields, parts[1]); err != nil {
		return nil, err
	}
	if err := parseCastlingRights(fields, parts[2]); err != nil {
		return nil, err
	}
	if err := parseEnPassant(fields, parts[3]); err != nil {
		return nil, err
	}
	if err := parseClocks(fields, parts[4], parts[5]); err != nil {
		return nil, err
	}
	return fields, nil
}

// parsePiecePositions parses the piece placement field of a FEN string.
// Each of the eight ranks must describe exactly eight files, without two
// digits in a row.
func parsePiecePositions(fields *fenFields, positions string) error {
	ranks := strings.Split(positions, "/")
	if len(ranks) != chess.BoardSize {
		return errors.NewFENError("placement", positions, "expected 8 ranks, got "+strconv.Itoa(len(ranks)))
	}

	for i, rankText := range ranks {
		row := chess.BoardSize - 1 - i
		file := 0
		previousWasDigit := false

		for j := 0; j < len(rankText); j++ {
			c := rankText[j]
			switch {
			case c >= '1' && c <= '8':
				if previousWasDigit {
					return errors.NewFENError("placement", rankText, "consecutive digits")
				}
				file += int(c - '0')
				previousWasDigit = true
			default:
				piece, ok := chess.PieceFromSymbol(c)
				if !ok {
					return errors.NewFENError("placement", rankText, "invalid piece character "+strconv.QuoteRune(rune(c)))
				}
				if file < chess.BoardSize {
					fields.cells[row][file] = piece
				}
				file++
				previousWasDigit = false
			}
			if file > chess.BoardSize {
				break
			}
		}

		if file != chess.BoardSize {
			return errors.NewFENError("placement", rankText, "rank does not describe 8 files")
		}
	}
	return nil
}

// parseSideToMove parses the side to move field.
func parseSideToMove(fields *fenFields, turn string) error {
	switch turn {
	case "w":
		fields.toMove = chess.White
	case "b":
		fields.toMove = chess.Black
	default:
		return errors.NewFENError("turn", turn, "expected w or b")
	}
	return nil
}

// parseCastlingRights parses the castling availability field. Letters must
// appear in KQkq order without repeats.
func parseCastlingRights(fields *fenFields, castling string) error {
	if !castlingPattern.MatchString(castling) {
		return errors.NewFENError("castling", castling, "expected a subset of KQkq in that order, or -")
	}
	for i := 0; i < len(castling); i++ {
		for _, right := range chess.AllCastlingRights {
			if castling[i] == right.Letter() {
				fields.castling |= right
			}
		}
	}
	return nil
}

// parseEnPassant parses the en passant target square field. Only the file
// is kept; the rank is implied by the side to move.
func parseEnPassant(fields *fenFields, ep string) error {
	if !enPassantPattern.MatchString(ep) {
		return errors.NewFENError("en passant", ep, "expected - or a square on rank 3 or 6")
	}
	if ep != "-" {
		fields.epCol = chess.Col(ep[0])
	}
	return nil
}

// parseClocks parses the halfmove clock and fullmove number fields.
func parseClocks(fields *fenFields, halfmoves, moveNumber string) error {
	n, err := strconv.Atoi(halfmoves)
	if err != nil || n < 0 {
		return errors.NewFENError("halfmove clock", halfmoves, "expected a non-negative integer")
	}
	fields.halfmoves = n

	n, err = strconv.Atoi(moveNumber)
	if err != nil || n < 1 {
		return errors.NewFENError("fullmove number", moveNumber, "expected a positive integer")
	}
	fields.moveNumber = n
	return nil
}

// BoardToFEN converts a board to a FEN string.
func BoardToFEN(board *chess.Board) string {
	return board.String()
}
