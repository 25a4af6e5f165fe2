package board

// UndoState holds the minimal information needed to unwind Apply, grounded
// on the teacher's goosemg/makemove.go MoveState.
type UndoState struct {
	prevCastling CastlingRights
	prevEP       Square
	prevHalfmove int
	prevFullmove int
	rookFrom     Square
	rookTo       Square
}

// Apply performs m on p unconditionally: it is a trusted-input primitive
// that assumes m was produced by LegalMoves (or otherwise already verified
// legal) and does not re-check king safety. Callers that accept moves from
// outside the engine — SAN/UCI text, PGN import — must check membership in
// LegalMoves first and raise IllegalMove themselves; see the game package.
// Apply returns an UndoState that Unapply uses to restore p exactly.
func (p *Position) Apply(m Move) UndoState {
	var st UndoState
	st.prevCastling = p.castlingRights
	st.prevEP = p.epTarget
	st.prevHalfmove = p.HalfmoveClock
	st.prevFullmove = p.FullmoveNumber
	st.rookFrom, st.rookTo = NoSquare, NoSquare

	us := p.sideToMove
	moved := p.pieces[m.From]

	if p.epTarget != NoSquare {
		p.zobrist ^= zobristEnPassant[p.epTarget.File()]
	}
	p.epTarget = NoSquare

	switch m.Kind {
	case EnPassant:
		var capSq Square
		if us == White {
			capSq = m.To - 8
		} else {
			capSq = m.To + 8
		}
		p.ClearSquare(capSq)
		p.ClearSquare(m.From)
		p.SetPiece(m.To, moved)
	default:
		p.ClearSquare(m.To)
		p.ClearSquare(m.From)
		if m.Promotion != NoKind {
			p.SetPiece(m.To, NewPiece(us, m.Promotion))
		} else {
			p.SetPiece(m.To, moved)
		}
	}

	if m.IsCastle() {
		var rookFrom, rookTo Square
		switch m.Kind {
		case CastleKingside:
			if us == White {
				rookFrom, rookTo = 7, 5
			} else {
				rookFrom, rookTo = 63, 61
			}
		case CastleQueenside:
			if us == White {
				rookFrom, rookTo = 0, 3
			} else {
				rookFrom, rookTo = 56, 59
			}
		}
		rook := p.ClearSquare(rookFrom)
		p.SetPiece(rookTo, rook)
		st.rookFrom, st.rookTo = rookFrom, rookTo
	}

	newCR := p.castlingRights
	switch moved {
	case WhiteKing:
		newCR &^= WhiteKingside | WhiteQueenside
	case BlackKing:
		newCR &^= BlackKingside | BlackQueenside
	}
	switch m.From {
	case 0:
		newCR &^= WhiteQueenside
	case 7:
		newCR &^= WhiteKingside
	case 56:
		newCR &^= BlackQueenside
	case 63:
		newCR &^= BlackKingside
	}
	switch m.To {
	case 0:
		newCR &^= WhiteQueenside
	case 7:
		newCR &^= WhiteKingside
	case 56:
		newCR &^= BlackQueenside
	case 63:
		newCR &^= BlackKingside
	}
	if newCR != p.castlingRights {
		p.zobrist ^= zobristCastle[p.castlingRights]
		p.zobrist ^= zobristCastle[newCR]
		p.castlingRights = newCR
	}

	if m.Kind == DoublePawnPush {
		var ep Square
		if us == White {
			ep = m.From + 8
		} else {
			ep = m.From - 8
		}
		p.epTarget = ep
		p.zobrist ^= zobristEnPassant[ep.File()]
	}

	if moved.Kind() == Pawn || m.IsCapture() {
		p.HalfmoveClock = 0
	} else {
		p.HalfmoveClock++
	}
	if us == Black {
		p.FullmoveNumber++
	}

	p.sideToMove = us.Opposite()
	p.zobrist ^= zobristSide

	return st
}

// Unapply undoes a move previously applied with Apply, restoring p to its
// exact prior state (including the Zobrist key).
func (p *Position) Unapply(m Move, st UndoState) {
	p.sideToMove = p.sideToMove.Opposite()
	p.zobrist ^= zobristSide

	us := p.sideToMove

	var placed Piece
	if m.Promotion != NoKind {
		placed = NewPiece(us, Pawn)
	} else {
		placed = p.PieceAt(m.To)
	}

	p.ClearSquare(m.To)
	p.SetPiece(m.From, placed)

	if m.IsCastle() {
		rook := p.ClearSquare(st.rookTo)
		p.SetPiece(st.rookFrom, rook)
	}

	switch m.Kind {
	case EnPassant:
		var capSq Square
		if us == White {
			capSq = m.To - 8
		} else {
			capSq = m.To + 8
		}
		p.SetPiece(capSq, m.Captured)
	default:
		if m.IsCapture() {
			p.SetPiece(m.To, m.Captured)
		}
	}

	if p.castlingRights != st.prevCastling {
		p.zobrist ^= zobristCastle[p.castlingRights]
		p.zobrist ^= zobristCastle[st.prevCastling]
		p.castlingRights = st.prevCastling
	}

	if p.epTarget != NoSquare {
		p.zobrist ^= zobristEnPassant[p.epTarget.File()]
	}
	p.epTarget = st.prevEP
	if p.epTarget != NoSquare {
		p.zobrist ^= zobristEnPassant[p.epTarget.File()]
	}

	p.HalfmoveClock = st.prevHalfmove
	p.FullmoveNumber = st.prevFullmove
}

// MakeNullMove switches the side to move without moving any piece,
// clearing any en-passant target. Used by search-style callers that need
// to probe "what if it were the opponent's turn"; not exposed through the
// game package's move-legality surface.
func (p *Position) MakeNullMove() UndoState {
	var st UndoState
	st.prevEP = p.epTarget
	st.prevHalfmove = p.HalfmoveClock
	st.prevFullmove = p.FullmoveNumber
	st.prevCastling = p.castlingRights
	st.rookFrom, st.rookTo = NoSquare, NoSquare

	if p.epTarget != NoSquare {
		p.zobrist ^= zobristEnPassant[p.epTarget.File()]
	}
	p.epTarget = NoSquare

	prevSide := p.sideToMove
	p.HalfmoveClock++
	p.sideToMove = prevSide.Opposite()
	p.zobrist ^= zobristSide
	if prevSide == Black {
		p.FullmoveNumber++
	}
	return st
}

// UnmakeNullMove restores the state prior to MakeNullMove.
func (p *Position) UnmakeNullMove(st UndoState) {
	if p.epTarget != NoSquare {
		p.zobrist ^= zobristEnPassant[p.epTarget.File()]
	}
	p.epTarget = st.prevEP
	if p.epTarget != NoSquare {
		p.zobrist ^= zobristEnPassant[p.epTarget.File()]
	}
	p.HalfmoveClock = st.prevHalfmove
	p.FullmoveNumber = st.prevFullmove
	p.sideToMove = p.sideToMove.Opposite()
	p.zobrist ^= zobristSide
}
