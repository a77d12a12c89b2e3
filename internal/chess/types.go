// Package chess provides core chess types and operations.
package chess

// Colour represents the colour of a piece or player.
type Colour int

const (
	Black Colour = iota
	White
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Letter returns the FEN letter for the colour ('w' or 'b').
func (c Colour) Letter() byte {
	if c == White {
		return 'w'
	}
	return 'b'
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// ColourFilter selects which side's pieces are counted.
type ColourFilter int

const (
	BothColours ColourFilter = iota
	OnlyWhite
	OnlyBlack
)

// Includes reports whether pieces of colour c pass the filter.
func (f ColourFilter) Includes(c Colour) bool {
	switch f {
	case OnlyWhite:
		return c == White
	case OnlyBlack:
		return c == Black
	default:
		return true
	}
}

// Piece represents a chess piece type, or a coloured piece built with
// MakeColouredPiece. Empty is the zero value for both.
type Piece int

const (
	Empty Piece = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
	NumPieceValues
)

// String returns the string representation of a piece.
func (p Piece) String() string {
	names := []string{"Empty", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if p >= 0 && int(p) < len(names) {
		return names[p]
	}
	if pt := ExtractPiece(p); pt > Empty && pt < NumPieceValues {
		return ExtractColour(p).String() + " " + names[pt]
	}
	return "Unknown"
}

// Letter returns the single letter representation of a piece type (uppercase).
func (p Piece) Letter() byte {
	letters := []byte{' ', 'P', 'N', 'B', 'R', 'Q', 'K'}
	if p >= 0 && int(p) < len(letters) {
		return letters[p]
	}
	return '?'
}

// PromotionPieces lists the piece types a pawn may promote to, in the order
// moves are generated.
var PromotionPieces = [4]Piece{Bishop, Knight, Rook, Queen}

// IsPromotionPiece reports whether p is a legal promotion type.
func IsPromotionPiece(p Piece) bool {
	switch p {
	case Knight, Bishop, Rook, Queen:
		return true
	}
	return false
}

// PieceShift is used for encoding coloured pieces.
const PieceShift = 3

// MakeColouredPiece creates a coloured piece value.
func MakeColouredPiece(colour Colour, piece Piece) Piece {
	return Piece((int(piece) << PieceShift) | int(colour))
}

// W creates a white piece.
func W(piece Piece) Piece {
	return MakeColouredPiece(White, piece)
}

// B creates a black piece.
func B(piece Piece) Piece {
	return MakeColouredPiece(Black, piece)
}

// ExtractColour extracts the colour from a coloured piece.
func ExtractColour(colouredPiece Piece) Colour {
	return Colour(colouredPiece & 0x01)
}

// ExtractPiece extracts the piece type from a coloured piece.
func ExtractPiece(colouredPiece Piece) Piece {
	return Piece(colouredPiece >> PieceShift)
}

// Symbol returns the FEN symbol of a coloured piece: upper case for white,
// lower case for black.
func Symbol(colouredPiece Piece) byte {
	letter := ExtractPiece(colouredPiece).Letter()
	if ExtractColour(colouredPiece) == Black && letter >= 'A' && letter <= 'Z' {
		letter += 'a' - 'A'
	}
	return letter
}

// PieceFromSymbol converts a FEN symbol to a coloured piece.
func PieceFromSymbol(c byte) (Piece, bool) {
	colour := White
	if c >= 'a' && c <= 'z' {
		colour = Black
		c -= 'a' - 'A'
	}
	var piece Piece
	switch c {
	case 'P':
		piece = Pawn
	case 'N':
		piece = Knight
	case 'B':
		piece = Bishop
	case 'R':
		piece = Rook
	case 'Q':
		piece = Queen
	case 'K':
		piece = King
	default:
		return Empty, false
	}
	return MakeColouredPiece(colour, piece), true
}

// PieceCounts holds per-type piece counts, indexed by piece type.
type PieceCounts [NumPieceValues]int

// Total returns the number of pieces counted, kings included.
func (pc PieceCounts) Total() int {
	total := 0
	for p := Pawn; p < NumPieceValues; p++ {
		total += pc[p]
	}
	return total
}

// MoveClass categorizes different types of chess moves.
type MoveClass int

const (
	PawnMove MoveClass = iota
	PawnMoveWithPromotion
	EnPassantPawnMove
	PieceMove
	KingsideCastle
	QueensideCastle
)

// CheckStatus indicates whether a move gives check or checkmate.
type CheckStatus int

const (
	NoCheck CheckStatus = iota
	Check
	Checkmate
)

// Rank represents a chess rank (row) - '1' to '8'.
type Rank byte

// Col represents a chess file (column) - 'a' to 'h'.
type Col byte

// Constants for board dimensions and coordinates.
const (
	BoardSize = 8

	RankBase  = '1'
	ColBase   = 'a'
	FirstRank = RankBase
	LastRank  = RankBase + BoardSize - 1
	FirstCol  = ColBase
	LastCol   = ColBase + BoardSize - 1
)

// Valid reports whether the column is one of 'a'..'h'.
func (c Col) Valid() bool {
	return c >= FirstCol && c <= LastCol
}

// Valid reports whether the rank is one of '1'..'8'.
func (r Rank) Valid() bool {
	return r >= FirstRank && r <= LastRank
}

// ColourOffset returns +1 for White, -1 for Black (for pawn direction).
func ColourOffset(colour Colour) int {
	if colour == White {
		return 1
	}
	return -1
}
