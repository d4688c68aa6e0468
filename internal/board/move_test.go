package board

import "testing"

func TestMoveTypeBits(t *testing.T) {
	tests := []struct {
		t         MoveType
		promotion bool
		capture   bool
	}{
		{Quiet, false, false},
		{DoublePawnPush, false, false},
		{ShortCastle, false, false},
		{LongCastle, false, false},
		{Capture, false, true},
		{EPCapture, false, true},
		{PromoQueen, true, false},
		{PromoCapQueen, true, true},
	}
	for _, tc := range tests {
		if got := tc.t.IsPromotion(); got != tc.promotion {
			t.Errorf("%v.IsPromotion() = %v, want %v", tc.t, got, tc.promotion)
		}
		if got := tc.t.IsCapture(); got != tc.capture {
			t.Errorf("%v.IsCapture() = %v, want %v", tc.t, got, tc.capture)
		}
	}
}

func TestPromotedKind(t *testing.T) {
	tests := []struct {
		t    MoveType
		kind Kind
	}{
		{PromoKnight, Knight},
		{PromoBishop, Bishop},
		{PromoRook, Rook},
		{PromoQueen, Queen},
		{PromoCapKnight, Knight},
		{PromoCapQueen, Queen},
	}
	for _, tc := range tests {
		if got := tc.t.PromotedKind(); got != tc.kind {
			t.Errorf("%v.PromotedKind() = %v, want %v", tc.t, got, tc.kind)
		}
	}
}

func TestMoveString(t *testing.T) {
	tests := []struct {
		m    Move
		want string
	}{
		{Move{From: E2, To: E4, Type: DoublePawnPush}, "e2e4"},
		{Move{From: E7, To: E8, Type: PromoQueen}, "e7e8q"},
		{Move{From: E7, To: D8, Type: PromoCapKnight}, "e7d8n"},
		{NoMove, "0000"},
	}
	for _, tc := range tests {
		if got := tc.m.String(); got != tc.want {
			t.Errorf("got %q, want %q", got, tc.want)
		}
	}
}

func TestParseMoveInfersCastle(t *testing.T) {
	p := StartingPosition()
	p.Remove(WBishop, F1)
	p.Remove(WKnight, G1)
	m, err := ParseMove("e1g1", p)
	if err != nil {
		t.Fatalf("ParseMove: %v", err)
	}
	if m.Type != ShortCastle {
		t.Errorf("got move type %v, want ShortCastle", m.Type)
	}
}

func TestParseMoveInfersDoublePawnPush(t *testing.T) {
	p := StartingPosition()
	m, err := ParseMove("e2e4", p)
	if err != nil {
		t.Fatalf("ParseMove: %v", err)
	}
	if m.Type != DoublePawnPush {
		t.Errorf("got move type %v, want DoublePawnPush", m.Type)
	}
}

func TestParseMoveInfersEnPassant(t *testing.T) {
	p, err := parseTestFEN("rnbqkbnr/ppp1pppp/8/3pP3/8/8/PPPP1PPP/RNBQKBNR w KQkq d6 0 3")
	if err != nil {
		t.Fatalf("parseTestFEN: %v", err)
	}
	m, err := ParseMove("e5d6", p)
	if err != nil {
		t.Fatalf("ParseMove: %v", err)
	}
	if m.Type != EPCapture {
		t.Errorf("got move type %v, want EPCapture", m.Type)
	}
}
