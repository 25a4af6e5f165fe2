package board

import (
	"strings"

	cherrors "chessgame/errors"
)

// MoveKind tags the special-case handling a move requires when applied. It
// is derived by the move generator (§4.E) from the position a move was
// generated in; the UCI codec never needs it (§4.D).
type MoveKind uint8

const (
	Quiet MoveKind = iota
	CaptureMove
	DoublePawnPush
	EnPassant
	CastleKingside
	CastleQueenside
)

// Move is a single chess move: source and destination squares, an optional
// promotion piece kind, and bookkeeping the generator fills in so Apply can
// update the position and Unapply can undo it without recomputation.
// Equality of two Moves for SAN/UCI round-tripping purposes depends only on
// From, To and Promotion, per spec.md §3.
type Move struct {
	From      Square
	To        Square
	Promotion PieceKind // NoKind unless this move promotes a pawn

	Kind     MoveKind
	Captured Piece // NoPiece unless Kind is CaptureMove or EnPassant
}

// IsCapture reports whether m captures a piece (including en passant).
func (m Move) IsCapture() bool { return m.Kind == CaptureMove || m.Kind == EnPassant }

// IsCastle reports whether m is a castling move.
func (m Move) IsCastle() bool { return m.Kind == CastleKingside || m.Kind == CastleQueenside }

// IsPromotion reports whether m promotes a pawn.
func (m Move) IsPromotion() bool { return m.Promotion != NoKind }

// Equal compares moves the way spec.md §3 defines move identity: from, to
// and promotion only.
func (m Move) Equal(other Move) bool {
	return m.From == other.From && m.To == other.To && m.Promotion == other.Promotion
}

// UCI renders m in long algebraic form: <from><to>[promotion]. Castling
// emits the king's source and destination squares, never the rook's, per
// spec.md §4.D.
func (m Move) UCI() string {
	var sb strings.Builder
	sb.WriteString(m.From.String())
	sb.WriteString(m.To.String())
	if m.Promotion != NoKind {
		l := m.Promotion.Letter()
		sb.WriteByte(l - 'A' + 'a')
	}
	return sb.String()
}

// ParseUCI parses a 4- or 5-character long algebraic move string into a
// syntactic Move. Per spec.md §4.D the codec does not consult any
// position: Kind and Captured are left at their zero values and must be
// resolved against a position (by the move generator or Game.MakeMove)
// before the move can be applied.
func ParseUCI(s string) (Move, error) {
	if len(s) != 4 && len(s) != 5 {
		return Move{}, cherrors.NewMoveSyntax(s, "UCI move must be 4 or 5 characters")
	}
	from, err := ParseSquare(s[0:2])
	if err != nil {
		return Move{}, cherrors.NewMoveSyntax(s, "bad source square")
	}
	to, err := ParseSquare(s[2:4])
	if err != nil {
		return Move{}, cherrors.NewMoveSyntax(s, "bad destination square")
	}
	m := Move{From: from, To: to}
	if len(s) == 5 {
		kind, ok := PieceKindFromLetter(upper(s[4]))
		if !ok || kind == King {
			return Move{}, cherrors.NewMoveSyntax(s, "bad promotion letter")
		}
		m.Promotion = kind
	}
	return m, nil
}

func upper(c byte) byte {
	if c >= 'a' && c <= 'z' {
		return c - 'a' + 'A'
	}
	return c
}
