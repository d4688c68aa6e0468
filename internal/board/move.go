package board

import "fmt"

// MoveType is the 4-bit move-semantics tag. Bit 3 marks a promotion,
// bit 2 marks a capture (including en passant and promotion-captures).
type MoveType uint8

const (
	Quiet           MoveType = 0
	DoublePawnPush  MoveType = 1
	ShortCastle     MoveType = 2
	LongCastle      MoveType = 3
	Capture         MoveType = 4
	EPCapture       MoveType = 5
	// 6, 7 reserved, never produced.
	PromoKnight     MoveType = 8
	PromoBishop     MoveType = 9
	PromoRook       MoveType = 10
	PromoQueen      MoveType = 11
	PromoCapKnight  MoveType = 12
	PromoCapBishop  MoveType = 13
	PromoCapRook    MoveType = 14
	PromoCapQueen   MoveType = 15
)

// IsPromotion reports whether the move type carries the promotion bit.
func (t MoveType) IsPromotion() bool { return t&0x8 != 0 }

// IsCapture reports whether the move type carries the capture bit.
func (t MoveType) IsCapture() bool { return t&0x4 != 0 }

// PromotedKind returns the kind a promotion move type promotes to.
// Only meaningful when IsPromotion() is true.
func (t MoveType) PromotedKind() Kind {
	switch t & 0x3 {
	case 0:
		return Knight
	case 1:
		return Bishop
	case 2:
		return Rook
	default:
		return Queen
	}
}

// promotionType returns the promotion MoveType (capture or not) for kind.
func promotionType(k Kind, capture bool) MoveType {
	var code MoveType
	switch k {
	case Knight:
		code = 0
	case Bishop:
		code = 1
	case Rook:
		code = 2
	default:
		code = 3
	}
	if capture {
		return 0x8 | 0x4 | code
	}
	return 0x8 | code
}

// Move is the transaction record spec'd in the data model: from/to/type
// are populated at construction; the remaining three fields are
// populated only by MakeMove and must not be read before that, nor
// after UnmakeMove.
type Move struct {
	From Square
	To   Square
	Type MoveType

	// Populated by MakeMove, consumed by UnmakeMove. Undefined before
	// MakeMove and stale (do not read) after UnmakeMove.
	SavedFlags    Flags
	SavedClock    uint16
	CapturedPiece Piece
}

// NoMove is the sentinel for "no move": both squares are NoSquare.
var NoMove = Move{From: NoSquare, To: NoSquare}

// String returns the UCI-style text of the move (e.g. "e2e4", "e7e8q").
func (m Move) String() string {
	if m.From == NoSquare || m.To == NoSquare {
		return "0000"
	}
	s := m.From.String() + m.To.String()
	if m.Type.IsPromotion() {
		promoChars := map[Kind]byte{Knight: 'n', Bishop: 'b', Rook: 'r', Queen: 'q'}
		s += string(promoChars[m.Type.PromotedKind()])
	}
	return s
}

// ParseMove resolves a UCI-style move string against a position,
// inferring the MoveType from board state (the core never validates
// user intent beyond this: see the legality filter for that).
func ParseMove(s string, pos *Position) (Move, error) {
	if len(s) < 4 {
		return NoMove, fmt.Errorf("invalid move string: %s", s)
	}
	from, err := ParseSquare(s[0:2])
	if err != nil {
		return NoMove, err
	}
	to, err := ParseSquare(s[2:4])
	if err != nil {
		return NoMove, err
	}

	piece := pos.PieceAt(from)
	if piece == NoPiece {
		return NoMove, fmt.Errorf("no piece at %s", from)
	}
	capture := pos.PieceAt(to) != NoPiece

	if len(s) >= 5 {
		var k Kind
		switch s[4] {
		case 'n':
			k = Knight
		case 'b':
			k = Bishop
		case 'r':
			k = Rook
		case 'q':
			k = Queen
		default:
			return NoMove, fmt.Errorf("invalid promotion piece: %c", s[4])
		}
		return Move{From: from, To: to, Type: promotionType(k, capture)}, nil
	}

	kind := piece.Kind()
	if kind == King && abs(int(to)-int(from)) == 2 {
		if to > from {
			return Move{From: from, To: to, Type: ShortCastle}, nil
		}
		return Move{From: from, To: to, Type: LongCastle}, nil
	}
	if kind == Pawn {
		if epSquare, ok := pos.EnPassantTarget(); ok && to == epSquare && from.File() != to.File() {
			return Move{From: from, To: to, Type: EPCapture}, nil
		}
		if abs(int(to)-int(from)) == 16 {
			return Move{From: from, To: to, Type: DoublePawnPush}, nil
		}
	}
	if capture {
		return Move{From: from, To: to, Type: Capture}, nil
	}
	return Move{From: from, To: to, Type: Quiet}, nil
}

// MoveList is a fixed-capacity move buffer sized well above any legal
// position's move count, so adding moves never grows a slice.
type MoveList struct {
	moves [256]Move
	count int
}

// Add appends a move to the list.
func (ml *MoveList) Add(m Move) {
	ml.moves[ml.count] = m
	ml.count++
}

// Len returns the number of moves in the list.
func (ml *MoveList) Len() int { return ml.count }

// Get returns the move at index i.
func (ml *MoveList) Get(i int) Move { return ml.moves[i] }

// Slice returns the accumulated moves as a slice sharing the list's backing array.
func (ml *MoveList) Slice() []Move { return ml.moves[:ml.count] }

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
