package engine

import (
	"testing"

	"github.com/lgbarn/libchess-go/internal/chess"
	chesserrors "github.com/lgbarn/libchess-go/internal/errors"
	"github.com/lgbarn/libchess-go/internal/testutil"
)

func TestSAN(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		move string
		want string
	}{
		{"pawn push", InitialFEN, "e2e4", "e4"},
		{"knight move", InitialFEN, "g1f3", "Nf3"},
		{"kingside castle", castlingFEN, "e1g1", "o-o"},
		{"queenside castle", castlingFEN, "e1c1", "o-o-o"},
		{"rook capture with check", castlingFEN, "h1h8", "Rxh8+"},
		{"en passant", enPassantFEN, "e5d6", "exd6 (e.p.)"},
		{"promotion with check", promotionFEN, "a7a8q", "a8=Q+"},
		{"under promotion", promotionFEN, "a7a8n", "a8=N"},
		{"capturing promotion", "1r5k/P7/8/8/8/8/8/7K w - - 0 1", "a7b8r", "axb8=R+"},
		{"checkmate", "rnbqkbnr/pppp1ppp/8/4p3/6P1/5P2/PPPPP2P/RNBQKBNR b KQkq g3 0 2", "d8h4", "Qh4#"},
		{"pawn capture from c-file", "4k3/8/8/3p4/2P1P3/8/8/4K3 w - - 0 1", "c4d5", "cxd5"},
		{"pawn capture from e-file", "4k3/8/8/3p4/2P1P3/8/8/4K3 w - - 0 1", "e4d5", "exd5"},
		{"knights share a rank", "4k3/8/8/8/8/8/8/1N2KN2 w - - 0 1", "b1d2", "Nbd2"},
		{"knights share nothing", "7k/8/8/8/4N3/8/N7/7K w - - 0 1", "a2c3", "Nac3"},
		{"rooks share a file", "4k3/8/8/R7/8/8/8/R3K3 w - - 0 1", "a1a3", "R1a3"},
		{"other rook on the file", "4k3/8/8/R7/8/8/8/R3K3 w - - 0 1", "a5a3", "R5a3"},
		{"queen needs full square", "8/7K/8/7k/8/Q7/8/Q1Q5 w - - 0 1", "a1b2", "Qa1b2"},
		{"queen shares a rank", "8/7K/8/7k/8/Q7/8/Q1Q5 w - - 0 1", "c1b2", "Qcb2"},
		{"queen shares a file", "8/7K/8/7k/8/Q7/8/Q1Q5 w - - 0 1", "a3b2", "Q3b2"},
		{"pinned rival ignored", "4k3/4r3/8/8/8/8/4N3/1N2K3 w - - 0 1", "b1c3", "Nc3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board := mustBoard(t, tt.fen)
			got, err := SAN(board, testutil.MustMove(t, tt.move))
			testutil.AssertNoError(t, err)
			testutil.AssertEqual(t, got, tt.want)
		})
	}
}

func TestDescribeMove(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		move string
		want chess.MoveInfo
	}{
		{
			name: "quiet pawn move",
			fen:  InitialFEN,
			move: "d2d4",
			want: chess.MoveInfo{SAN: "d4", Class: chess.PawnMove, Piece: chess.W(chess.Pawn)},
		},
		{
			name: "piece capture",
			fen:  castlingFEN,
			move: "a1a8",
			want: chess.MoveInfo{
				SAN: "Rxa8+", Class: chess.PieceMove,
				Piece: chess.W(chess.Rook), Captured: chess.B(chess.Rook), CheckStatus: chess.Check,
			},
		},
		{
			name: "en passant",
			fen:  enPassantFEN,
			move: "e5d6",
			want: chess.MoveInfo{
				SAN: "exd6 (e.p.)", Class: chess.EnPassantPawnMove,
				Piece: chess.W(chess.Pawn), Captured: chess.B(chess.Pawn),
			},
		},
		{
			name: "black castles queenside",
			fen:  "r3k2r/8/8/8/8/8/8/R3K2R b KQkq - 0 1",
			move: "e8c8",
			want: chess.MoveInfo{SAN: "o-o-o", Class: chess.QueensideCastle, Piece: chess.B(chess.King)},
		},
		{
			name: "promotion",
			fen:  promotionFEN,
			move: "a7a8r",
			want: chess.MoveInfo{
				SAN: "a8=R+", Class: chess.PawnMoveWithPromotion,
				Piece: chess.W(chess.Pawn), CheckStatus: chess.Check,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board := mustBoard(t, tt.fen)
			move := testutil.MustMove(t, tt.move)
			got, err := DescribeMove(board, move)
			testutil.AssertNoError(t, err)

			tt.want.Move = move
			testutil.AssertEqual(t, *got, tt.want)
		})
	}
}

func TestDescribeMoveIllegal(t *testing.T) {
	board := NewInitialBoard()
	for _, text := range []string{"e2e5", "e7e5", "a1a2"} {
		_, err := DescribeMove(board, testutil.MustMove(t, text))
		testutil.AssertErrorIs(t, err, chesserrors.ErrIllegalMove, text)
	}
}

func TestSANOfEveryMoveIsUnique(t *testing.T) {
	for _, fen := range []string{InitialFEN, kiwipeteFEN, "8/7K/8/7k/8/Q7/8/Q1Q5 w - - 0 1"} {
		board := mustBoard(t, fen)
		seen := make(map[string]chess.Move)
		for _, move := range LegalMoves(board) {
			san, err := SAN(board, move)
			testutil.AssertNoError(t, err)
			if prev, ok := seen[san]; ok {
				t.Errorf("%s: %v and %v both render as %q", fen, prev, move, san)
			}
			seen[san] = move
		}
	}
}
