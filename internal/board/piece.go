package board

// Color is the two-valued side tag. White moves first.
type Color uint8

const (
	White Color = iota
	Black
	NoColor Color = 2
)

// Other returns the opposing color.
func (c Color) Other() Color {
	return c ^ 1
}

// String returns the color name.
func (c Color) String() string {
	switch c {
	case White:
		return "white"
	case Black:
		return "black"
	default:
		return "none"
	}
}

// Kind is a piece's role, independent of color.
type Kind uint8

// Kind ordering matches the Piece layout: within either color's run of
// six, index 0 is King through index 5 Pawn.
const (
	King Kind = iota
	Queen
	Rook
	Bishop
	Knight
	Pawn
	NoKind Kind = 6
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case King:
		return "king"
	case Queen:
		return "queen"
	case Rook:
		return "rook"
	case Bishop:
		return "bishop"
	case Knight:
		return "knight"
	case Pawn:
		return "pawn"
	default:
		return "none"
	}
}

// Char returns the FEN character for the kind (lowercase).
func (k Kind) Char() byte {
	chars := [7]byte{'k', 'q', 'r', 'b', 'n', 'p', ' '}
	if k > NoKind {
		return ' '
	}
	return chars[k]
}

// Piece is a 12-way tag laid out {WKing..WPawn, BKing..BPawn}.
// color(p) is p<6 ? White : Black; kind(p) is p%6.
type Piece uint8

const (
	WKing Piece = iota
	WQueen
	WRook
	WBishop
	WKnight
	WPawn
	BKing
	BQueen
	BRook
	BBishop
	BKnight
	BPawn
	NoPiece Piece = 12
)

// NewPiece builds a Piece from a Kind and a Color.
func NewPiece(k Kind, c Color) Piece {
	if k >= NoKind || c >= NoColor {
		return NoPiece
	}
	return Piece(c)*6 + Piece(k)
}

// Kind returns the piece's role, independent of color.
func (p Piece) Kind() Kind {
	if p >= NoPiece {
		return NoKind
	}
	return Kind(p % 6)
}

// Color returns the piece's side.
func (p Piece) Color() Color {
	if p >= NoPiece {
		return NoColor
	}
	return Color(p / 6)
}

// String returns the FEN character for the piece (uppercase for white).
func (p Piece) String() string {
	if p >= NoPiece {
		return " "
	}
	chars := "KQRBNPkqrbnp"
	return string(chars[p])
}

// PieceFromChar converts a FEN character to a Piece.
func PieceFromChar(c byte) Piece {
	switch c {
	case 'K':
		return WKing
	case 'Q':
		return WQueen
	case 'R':
		return WRook
	case 'B':
		return WBishop
	case 'N':
		return WKnight
	case 'P':
		return WPawn
	case 'k':
		return BKing
	case 'q':
		return BQueen
	case 'r':
		return BRook
	case 'b':
		return BBishop
	case 'n':
		return BKnight
	case 'p':
		return BPawn
	default:
		return NoPiece
	}
}
