package board

import "testing"

func TestStartingPositionPieceCounts(t *testing.T) {
	p := StartingPosition()
	if got := p.Occupied().PopCount(); got != 32 {
		t.Fatalf("got %d occupied squares, want 32", got)
	}
	if got := p.Bitboard(WPawn).PopCount(); got != 8 {
		t.Errorf("got %d white pawns, want 8", got)
	}
	if p.SideToMove != White {
		t.Errorf("got side to move %v, want white", p.SideToMove)
	}
	if p.Flags != AllCastlingRights {
		t.Errorf("got flags %#x, want all castling rights set", p.Flags)
	}
}

func TestOneBitPerSquare(t *testing.T) {
	p := StartingPosition()
	for sq := A1; sq <= H8; sq++ {
		count := 0
		for piece := WKing; piece < NoPiece; piece++ {
			if p.Bitboard(piece)&SquareBB(sq) != 0 {
				count++
			}
		}
		if count > 1 {
			t.Errorf("square %v set in %d bitboards, want at most 1", sq, count)
		}
	}
}

func TestPlaceRemove(t *testing.T) {
	p := EmptyPosition()
	p.Place(WQueen, D4)
	if p.PieceAt(D4) != WQueen {
		t.Fatalf("got %v at d4, want WQueen", p.PieceAt(D4))
	}
	p.Remove(WQueen, D4)
	if p.PieceAt(D4) != NoPiece {
		t.Fatalf("got %v at d4 after remove, want NoPiece", p.PieceAt(D4))
	}
}

func TestMovePiece(t *testing.T) {
	p := EmptyPosition()
	p.Place(BKnight, B8)
	p.MovePiece(BKnight, B8, C6)
	if p.PieceAt(B8) != NoPiece {
		t.Errorf("b8 still occupied after MovePiece")
	}
	if p.PieceAt(C6) != BKnight {
		t.Errorf("got %v at c6, want BKnight", p.PieceAt(C6))
	}
}

func TestRemoveAny(t *testing.T) {
	p := EmptyPosition()
	p.Place(WRook, A1)
	got := p.RemoveAny(A1)
	if got != WRook {
		t.Errorf("got %v, want WRook", got)
	}
	if p.RemoveAny(A1) != NoPiece {
		t.Errorf("RemoveAny on empty square should return NoPiece")
	}
}

func TestEPFileRoundTrip(t *testing.T) {
	p := EmptyPosition()
	p.SetEPFile(4)
	if f := p.EPFile(); f != 4 {
		t.Fatalf("got EP file %d, want 4", f)
	}
	p.SetEPFile(-1)
	if f := p.EPFile(); f != -1 {
		t.Fatalf("got EP file %d, want -1 after clearing", f)
	}
}

// SetEPFile must clear any stale low-nibble value even when re-setting
// to a different file, since the flags byte ORs the file bits in.
func TestSetEPFileClearsStaleNibble(t *testing.T) {
	p := EmptyPosition()
	p.SetEPFile(7)
	p.SetEPFile(2)
	if f := p.EPFile(); f != 2 {
		t.Fatalf("got EP file %d, want 2 (stale bits from file 7 leaked)", f)
	}
}

func TestEnPassantTargetBySide(t *testing.T) {
	p := EmptyPosition()
	p.SetEPFile(4)

	p.SideToMove = White
	sq, ok := p.EnPassantTarget()
	if !ok || sq != E6 {
		t.Errorf("white to move: got (%v, %v), want (e6, true)", sq, ok)
	}

	p.SideToMove = Black
	sq, ok = p.EnPassantTarget()
	if !ok || sq != E3 {
		t.Errorf("black to move: got (%v, %v), want (e3, true)", sq, ok)
	}
}

func TestCastlingRightErosion(t *testing.T) {
	p := StartingPosition()
	p.SetCastlingFlag(1, White)
	if p.CanCastle(1, White) {
		t.Error("white kingside right should be cleared")
	}
	if !p.CanCastle(-1, White) {
		t.Error("white queenside right should survive")
	}
	if !p.CanCastle(1, Black) || !p.CanCastle(-1, Black) {
		t.Error("black rights should be untouched")
	}

	p.SetCastlingFlag(0, Black)
	if p.CanCastle(1, Black) || p.CanCastle(-1, Black) {
		t.Error("both black rights should be cleared")
	}
}

func TestCloneIsIndependent(t *testing.T) {
	p := StartingPosition()
	cp := p.Clone()
	cp.Place(WQueen, D4)
	if p.PieceAt(D4) != NoPiece {
		t.Error("mutating the clone mutated the original")
	}
}

func TestKingSquare(t *testing.T) {
	p := StartingPosition()
	if got := p.KingSquare(White); got != E1 {
		t.Errorf("got white king on %v, want e1", got)
	}
	if got := p.KingSquare(Black); got != E8 {
		t.Errorf("got black king on %v, want e8", got)
	}
}
