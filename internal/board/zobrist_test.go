package board

import "testing"

func TestHashIsStableAcrossCalls(t *testing.T) {
	p := StartingPosition()
	if Hash(p) != Hash(p) {
		t.Fatal("Hash should be deterministic for an unchanged position")
	}
}

func TestHashDiffersAfterMove(t *testing.T) {
	p := StartingPosition()
	before := Hash(p)

	m := Move{From: E2, To: E4, Type: DoublePawnPush}
	p.MakeMove(&m)
	after := Hash(p)

	if before == after {
		t.Error("Hash should change after a move is made")
	}

	p.UnmakeMove(&m)
	if Hash(p) != before {
		t.Error("Hash should return to its original value after unmake")
	}
}

func TestHashDependsOnSideToMove(t *testing.T) {
	p := StartingPosition()
	white := Hash(p)
	p.SideToMove = Black
	black := Hash(p)
	if white == black {
		t.Error("Hash should differ between the two sides to move")
	}
}
