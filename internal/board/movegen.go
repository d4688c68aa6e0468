package board

// PseudoLegalMoves generates every move obeying piece-movement rules,
// without checking whether the mover's own king ends up in check.
func (p *Position) PseudoLegalMoves() *MoveList {
	ml := &MoveList{}
	us := p.SideToMove
	own := p.OccupiedBy(us)
	occ := p.Occupied()

	p.generatePawnMoves(ml, us, occ)

	p.generateJumpOrSlide(ml, NewPiece(Knight, us), own, func(from Square) Bitboard {
		return KnightAttacks(from)
	})
	p.generateJumpOrSlide(ml, NewPiece(Bishop, us), own, func(from Square) Bitboard {
		return BishopAttacks(from, occ)
	})
	p.generateJumpOrSlide(ml, NewPiece(Rook, us), own, func(from Square) Bitboard {
		return RookAttacks(from, occ)
	})
	p.generateJumpOrSlide(ml, NewPiece(Queen, us), own, func(from Square) Bitboard {
		return QueenAttacks(from, occ)
	})

	kingFrom := p.KingSquare(us)
	if kingFrom != NoSquare {
		targets := KingAttacks(kingFrom) &^ own
		addTargets(ml, p, kingFrom, targets)
	}

	p.generateCastling(ml, us)

	return ml
}

// LegalMoves filters PseudoLegalMoves down to moves that do not leave the
// mover's own king in check, verified by making and unmaking each one.
func (p *Position) LegalMoves() *MoveList {
	pseudo := p.PseudoLegalMoves()
	legal := &MoveList{}
	for i := 0; i < pseudo.Len(); i++ {
		m := pseudo.Get(i)
		if p.IsLegal(m) {
			legal.Add(m)
		}
	}
	return legal
}

func addTargets(ml *MoveList, p *Position, from Square, targets Bitboard) {
	for targets != 0 {
		to := targets.PopLSB()
		if p.PieceAt(to) != NoPiece {
			ml.Add(Move{From: from, To: to, Type: Capture})
		} else {
			ml.Add(Move{From: from, To: to, Type: Quiet})
		}
	}
}

func (p *Position) generateJumpOrSlide(ml *MoveList, piece Piece, own Bitboard, attacksFrom func(Square) Bitboard) {
	pieces := p.pieces[piece]
	for pieces != 0 {
		from := pieces.PopLSB()
		targets := attacksFrom(from) &^ own
		addTargets(ml, p, from, targets)
	}
}

func (p *Position) generatePawnMoves(ml *MoveList, us Color, occ Bitboard) {
	pawns := p.pieces[NewPiece(Pawn, us)]
	enemies := p.OccupiedBy(us.Other())
	empty := ^occ

	var push1, push2, capL, capR Bitboard
	var promoRank Bitboard
	var pushDir int

	if us == White {
		push1 = pawns.North() & empty
		push2 = (push1 & Rank3).North() & empty
		capL = pawns.NorthWest() & enemies
		capR = pawns.NorthEast() & enemies
		promoRank = Rank8
		pushDir = 8
	} else {
		push1 = pawns.South() & empty
		push2 = (push1 & Rank6).South() & empty
		capL = pawns.SouthWest() & enemies
		capR = pawns.SouthEast() & enemies
		promoRank = Rank1
		pushDir = -8
	}

	quietPush := push1 &^ promoRank
	for quietPush != 0 {
		to := quietPush.PopLSB()
		ml.Add(Move{From: Square(int(to) - pushDir), To: to, Type: Quiet})
	}
	for push2 != 0 {
		to := push2.PopLSB()
		ml.Add(Move{From: Square(int(to) - 2*pushDir), To: to, Type: DoublePawnPush})
	}

	quietCapL := capL &^ promoRank
	for quietCapL != 0 {
		to := quietCapL.PopLSB()
		ml.Add(Move{From: Square(int(to) - pushDir + 1), To: to, Type: Capture})
	}
	quietCapR := capR &^ promoRank
	for quietCapR != 0 {
		to := quietCapR.PopLSB()
		ml.Add(Move{From: Square(int(to) - pushDir - 1), To: to, Type: Capture})
	}

	promoPush := push1 & promoRank
	for promoPush != 0 {
		to := promoPush.PopLSB()
		addPromotions(ml, Square(int(to)-pushDir), to, false)
	}
	promoCapL := capL & promoRank
	for promoCapL != 0 {
		to := promoCapL.PopLSB()
		addPromotions(ml, Square(int(to)-pushDir+1), to, true)
	}
	promoCapR := capR & promoRank
	for promoCapR != 0 {
		to := promoCapR.PopLSB()
		addPromotions(ml, Square(int(to)-pushDir-1), to, true)
	}

	if epSq, ok := p.EnPassantTarget(); ok {
		epBB := SquareBB(epSq)
		var attackers Bitboard
		if us == White {
			attackers = (epBB.SouthWest() | epBB.SouthEast()) & pawns
		} else {
			attackers = (epBB.NorthWest() | epBB.NorthEast()) & pawns
		}
		for attackers != 0 {
			from := attackers.PopLSB()
			ml.Add(Move{From: from, To: epSq, Type: EPCapture})
		}
	}
}

func addPromotions(ml *MoveList, from, to Square, capture bool) {
	ml.Add(Move{From: from, To: to, Type: promotionType(Queen, capture)})
	ml.Add(Move{From: from, To: to, Type: promotionType(Rook, capture)})
	ml.Add(Move{From: from, To: to, Type: promotionType(Bishop, capture)})
	ml.Add(Move{From: from, To: to, Type: promotionType(Knight, capture)})
}

// generateCastling emits castling moves whose eligibility survives the
// three-step predicate: the right must still be held, the squares the
// rook and king cross must be empty, and the king's start, transit, and
// destination squares must not be attacked.
func (p *Position) generateCastling(ml *MoveList, us Color) {
	them := us.Other()
	rank := 0
	if us == Black {
		rank = 7
	}
	e := NewSquare(4, rank)
	f := NewSquare(5, rank)
	g := NewSquare(6, rank)
	d := NewSquare(3, rank)
	c := NewSquare(2, rank)
	b := NewSquare(1, rank)

	occ := p.Occupied()

	if p.CanCastle(1, us) {
		if occ&(SquareBB(f)|SquareBB(g)) == 0 {
			if !p.IsSquareAttacked(e, them) && !p.IsSquareAttacked(f, them) && !p.IsSquareAttacked(g, them) {
				ml.Add(Move{From: e, To: g, Type: ShortCastle})
			}
		}
	}
	if p.CanCastle(-1, us) {
		if occ&(SquareBB(b)|SquareBB(c)|SquareBB(d)) == 0 {
			if !p.IsSquareAttacked(e, them) && !p.IsSquareAttacked(d, them) && !p.IsSquareAttacked(c, them) {
				ml.Add(Move{From: e, To: c, Type: LongCastle})
			}
		}
	}
}

// IsLegal reports whether m leaves the mover's own king safe, verified
// by actually making the move on the position, checking, and unmaking
// it again. No shortcut for king moves: the result always matches what
// a real MakeMove/UnmakeMove round trip would produce.
func (p *Position) IsLegal(m Move) bool {
	mover := p.SideToMove
	cp := m
	if !p.MakeMove(&cp) {
		return false
	}
	safe := !p.InCheck(mover)
	p.UnmakeMove(&cp)
	return safe
}

func castleRookSquares(from, to Square) (rookFrom, rookTo Square) {
	rank := from.Rank()
	if to > from {
		return NewSquare(7, rank), NewSquare(5, rank)
	}
	return NewSquare(0, rank), NewSquare(3, rank)
}

// MakeMove applies m to the position in place, stamping m's undo fields
// for a matching UnmakeMove call. Returns false, leaving the position
// unmodified, if no piece occupies m.From.
func (p *Position) MakeMove(m *Move) bool {
	piece := p.PieceAt(m.From)
	if piece == NoPiece {
		return false
	}
	us := p.SideToMove
	them := us.Other()

	m.SavedFlags = p.Flags
	m.SavedClock = p.HalfmoveClock
	m.CapturedPiece = NoPiece

	if m.Type == EPCapture {
		capSq := m.To - 8
		if us == Black {
			capSq = m.To + 8
		}
		m.CapturedPiece = p.RemoveAny(capSq)
	} else if captured := p.PieceAt(m.To); captured != NoPiece {
		m.CapturedPiece = captured
		p.Remove(captured, m.To)
	}

	p.MovePiece(piece, m.From, m.To)

	if m.Type.IsPromotion() {
		p.Remove(piece, m.To)
		p.Place(NewPiece(m.Type.PromotedKind(), us), m.To)
	}

	if m.Type == ShortCastle || m.Type == LongCastle {
		rookFrom, rookTo := castleRookSquares(m.From, m.To)
		p.MovePiece(NewPiece(Rook, us), rookFrom, rookTo)
	}

	p.SetEPFile(-1)
	if m.Type == DoublePawnPush {
		p.SetEPFile(m.From.File())
	}

	if piece.Kind() == King {
		p.SetCastlingFlag(0, us)
	}
	eraseRookRight(p, m.From)
	eraseRookRight(p, m.To)

	if piece.Kind() == Pawn || m.CapturedPiece != NoPiece {
		p.HalfmoveClock = 0
	} else {
		p.HalfmoveClock++
	}

	p.SideToMove = them
	return true
}

func eraseRookRight(p *Position, sq Square) {
	switch sq {
	case A1:
		p.SetCastlingFlag(-1, White)
	case H1:
		p.SetCastlingFlag(1, White)
	case A8:
		p.SetCastlingFlag(-1, Black)
	case H8:
		p.SetCastlingFlag(1, Black)
	}
}

// UnmakeMove reverses the effect of the matching MakeMove call, restoring
// the exact prior flags, halfmove clock, and captured piece.
func (p *Position) UnmakeMove(m *Move) {
	them := p.SideToMove
	us := them.Other()
	p.SideToMove = us
	p.Flags = m.SavedFlags
	p.HalfmoveClock = m.SavedClock

	piece := p.PieceAt(m.To)
	if m.Type.IsPromotion() {
		p.Remove(piece, m.To)
		piece = NewPiece(Pawn, us)
		p.Place(piece, m.To)
	}
	p.MovePiece(piece, m.To, m.From)

	if m.Type == ShortCastle || m.Type == LongCastle {
		rookFrom, rookTo := castleRookSquares(m.From, m.To)
		p.MovePiece(NewPiece(Rook, us), rookTo, rookFrom)
	}

	if m.CapturedPiece != NoPiece {
		if m.Type == EPCapture {
			capSq := m.To - 8
			if us == Black {
				capSq = m.To + 8
			}
			p.Place(m.CapturedPiece, capSq)
		} else {
			p.Place(m.CapturedPiece, m.To)
		}
	}
}

// HasLegalMoves reports whether the side to move has at least one legal
// move, short-circuiting on the first one found.
func (p *Position) HasLegalMoves() bool {
	pseudo := p.PseudoLegalMoves()
	for i := 0; i < pseudo.Len(); i++ {
		if p.IsLegal(pseudo.Get(i)) {
			return true
		}
	}
	return false
}

// IsCheckmate reports whether the side to move is in check with no legal
// reply.
func (p *Position) IsCheckmate() bool {
	return p.InCheck(p.SideToMove) && !p.HasLegalMoves()
}

// IsStalemate reports whether the side to move is not in check but has
// no legal move.
func (p *Position) IsStalemate() bool {
	return !p.InCheck(p.SideToMove) && !p.HasLegalMoves()
}
