package board

import "testing"

func TestKnightAttacksCorner(t *testing.T) {
	attacks := KnightAttacks(A1)
	want := SquareBB(B3) | SquareBB(C2)
	if attacks != want {
		t.Errorf("KnightAttacks(a1) = %v, want %v", attacks, want)
	}
}

func TestRookAttacksOnEmptyBoard(t *testing.T) {
	attacks := RookAttacks(A1, Empty)
	want := (FileA | Rank1) &^ SquareBB(A1)
	if attacks != want {
		t.Errorf("RookAttacks(a1, empty) = %v, want %v", attacks, want)
	}
}

func TestRookAttacksStoppedByBlocker(t *testing.T) {
	occ := SquareBB(A1) | SquareBB(A4)
	attacks := RookAttacks(A1, occ)
	if attacks&SquareBB(A4) == 0 {
		t.Error("rook should be able to capture the blocker itself")
	}
	if attacks&SquareBB(A5) != 0 {
		t.Error("rook attack set should not extend beyond the first blocker")
	}
}

func TestBishopAttacksOnEmptyBoard(t *testing.T) {
	attacks := BishopAttacks(D4, Empty)
	for _, sq := range []Square{A1, G7, A7, G1} {
		if attacks&SquareBB(sq) == 0 {
			t.Errorf("bishop on d4 should attack %v on an empty board", sq)
		}
	}
	if attacks&SquareBB(D5) != 0 {
		t.Error("bishop must not attack along a file")
	}
}

func TestQueenAttacksUnionsRookAndBishop(t *testing.T) {
	occ := Empty
	queen := QueenAttacks(D4, occ)
	want := RookAttacks(D4, occ) | BishopAttacks(D4, occ)
	if queen != want {
		t.Error("QueenAttacks must equal the union of RookAttacks and BishopAttacks")
	}
}

func TestBetweenAndLine(t *testing.T) {
	if got := Between(A1, A4); got != (SquareBB(A2) | SquareBB(A3)) {
		t.Errorf("Between(a1, a4) = %v, want a2|a3", got)
	}
	if got := Between(A1, B2); got != Empty {
		t.Errorf("Between(a1, b2) = %v, want empty (adjacent squares)", got)
	}
	if got := Between(A1, B3); got != Empty {
		t.Errorf("Between(a1, b3) = %v, want empty (not aligned)", got)
	}
	if !Aligned(A1, A8, A4) {
		t.Error("a4 should be aligned with a1 and a8")
	}
	if Aligned(A1, A8, B2) {
		t.Error("b2 should not be aligned with a1 and a8")
	}
}

func TestBlockerMaskExcludesBoardEdge(t *testing.T) {
	// A rook on a1 can never be blocked by a piece standing on h1 or a8
	// themselves mattering beyond their own square: the far edge square
	// of each ray carries nothing behind it.
	mask := blockerMask[sliderRook][A1]
	if mask&SquareBB(H1) != 0 {
		t.Error("rook blocker mask from a1 should exclude h1, the far edge of the rank")
	}
	if mask&SquareBB(A8) != 0 {
		t.Error("rook blocker mask from a1 should exclude a8, the far edge of the file")
	}
}

func TestInCheck(t *testing.T) {
	p, err := parseTestFEN("r3k2r/4r3/8/8/8/8/8/R3K2R w KQkq - 0 1")
	if err != nil {
		t.Fatalf("parseTestFEN: %v", err)
	}
	if !p.InCheck(White) {
		t.Error("white king on e1 should be in check from the rook on e7")
	}
	if p.InCheck(Black) {
		t.Error("black king should not be in check")
	}
}
