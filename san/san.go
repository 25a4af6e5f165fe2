// Package san formats and parses Standard Algebraic Notation, the
// human-readable move text used in PGN movetext, per spec.md §4.F. The
// teacher engine speaks only the UCI long-algebraic codec in board.Move;
// this package sits alongside it, grounded on the move-classification
// shape of lgbarn-pgn-extract-go/internal/chess.
package san

import (
	"strings"

	cherrors "chessgame/errors"
	"chessgame/board"
)

// Format renders m as SAN in the position p it is about to be played from.
// Disambiguation follows the minimal rule: among the other legal moves of
// the same piece kind landing on the same destination, add the file if it
// alone distinguishes m, else the rank, else both.
func Format(m board.Move, p *board.Position) string {
	if m.Kind == board.CastleKingside {
		return suffixed(m, p, "O-O")
	}
	if m.Kind == board.CastleQueenside {
		return suffixed(m, p, "O-O-O")
	}

	moved := p.PieceAt(m.From)
	var sb strings.Builder

	if moved.Kind() == board.Pawn {
		if m.IsCapture() {
			sb.WriteByte(fileLetter(m.From))
			sb.WriteByte('x')
		}
		sb.WriteString(m.To.String())
		if m.IsPromotion() {
			sb.WriteByte('=')
			sb.WriteByte(m.Promotion.Letter())
		}
	} else {
		sb.WriteByte(moved.Kind().Letter())
		sb.WriteString(disambiguator(m, p, moved.Kind()))
		if m.IsCapture() {
			sb.WriteByte('x')
		}
		sb.WriteString(m.To.String())
	}

	return suffixed(m, p, sb.String())
}

func fileLetter(sq board.Square) byte { return byte('a' + sq.File()) }

func disambiguator(m board.Move, p *board.Position, kind board.PieceKind) string {
	var sameFile, sameRank, any bool
	for _, other := range p.LegalMoves() {
		if other.To != m.To || other.From == m.From {
			continue
		}
		if p.PieceAt(other.From).Kind() != kind {
			continue
		}
		any = true
		if other.From.File() == m.From.File() {
			sameFile = true
		}
		if other.From.Rank() == m.From.Rank() {
			sameRank = true
		}
	}
	if !any {
		return ""
	}
	switch {
	case !sameFile:
		return string(fileLetter(m.From))
	case !sameRank:
		return m.From.String()[1:]
	default:
		return m.From.String()
	}
}

// suffixed appends the check/mate decoration to body by playing m on a
// scratch copy of p, per spec.md §4.F: '#' if the opponent has no legal
// moves while in check, '+' if merely in check, nothing otherwise.
func suffixed(m board.Move, p *board.Position, body string) string {
	scratch := p.Clone()
	scratch.Apply(m)
	opponent := scratch.SideToMove()
	if !scratch.InCheck(opponent) {
		return body
	}
	if len(scratch.LegalMoves()) == 0 {
		return body + "#"
	}
	return body + "+"
}

// Parse resolves SAN text against the legal moves of p. It strips
// decorations, matches castling directly, and otherwise scans LegalMoves
// for exactly one move consistent with the piece letter, disambiguator,
// capture flag, destination and promotion parsed from text. Zero matches
// is ErrUnknownSAN; more than one is ErrAmbiguousSAN (should not occur for
// legal SAN text generated by Format, but can for hand-typed text).
func Parse(text string, p *board.Position) (board.Move, error) {
	clean := strings.TrimRight(text, "+#!?")
	clean = strings.TrimSuffix(clean, "e.p.")
	clean = strings.TrimSpace(clean)

	if clean == "O-O" || clean == "0-0" {
		return matchUnique(text, p, func(m board.Move) bool { return m.Kind == board.CastleKingside })
	}
	if clean == "O-O-O" || clean == "0-0-0" {
		return matchUnique(text, p, func(m board.Move) bool { return m.Kind == board.CastleQueenside })
	}

	var promo board.PieceKind = board.NoKind
	if i := strings.IndexByte(clean, '='); i >= 0 {
		if i+1 >= len(clean) {
			return board.Move{}, cherrors.NewMoveSyntax(text, "missing promotion piece")
		}
		kind, ok := board.PieceKindFromLetter(clean[i+1])
		if !ok {
			return board.Move{}, cherrors.NewMoveSyntax(text, "invalid promotion piece")
		}
		promo = kind
		clean = clean[:i]
	}

	if len(clean) < 2 {
		return board.Move{}, cherrors.NewMoveSyntax(text, "too short")
	}

	toStr := clean[len(clean)-2:]
	to, err := board.ParseSquare(toStr)
	if err != nil {
		return board.Move{}, cherrors.NewMoveSyntax(text, "invalid destination square")
	}
	rest := clean[:len(clean)-2]
	isCapture := strings.HasSuffix(rest, "x")
	if isCapture {
		rest = rest[:len(rest)-1]
	}

	var kind board.PieceKind
	var disamb string
	if len(rest) > 0 && rest[0] >= 'A' && rest[0] <= 'Z' {
		k, ok := board.PieceKindFromLetter(rest[0])
		if !ok {
			return board.Move{}, cherrors.NewMoveSyntax(text, "invalid piece letter")
		}
		kind = k
		disamb = rest[1:]
	} else {
		kind = board.Pawn
		disamb = rest
	}

	return matchUnique(text, p, func(m board.Move) bool {
		if m.To != to || m.Promotion != promo {
			return false
		}
		moved := p.PieceAt(m.From)
		if moved.Kind() != kind {
			return false
		}
		if isCapture != m.IsCapture() {
			return false
		}
		return matchesDisambiguator(m.From, disamb)
	})
}

func matchesDisambiguator(from board.Square, disamb string) bool {
	switch len(disamb) {
	case 0:
		return true
	case 1:
		c := disamb[0]
		if c >= 'a' && c <= 'h' {
			return from.File() == int(c-'a')
		}
		if c >= '1' && c <= '8' {
			return from.Rank() == int(c-'1')
		}
		return false
	default:
		sq, err := board.ParseSquare(disamb)
		return err == nil && sq == from
	}
}

func matchUnique(text string, p *board.Position, pred func(board.Move) bool) (board.Move, error) {
	var found board.Move
	count := 0
	for _, m := range p.LegalMoves() {
		if pred(m) {
			found = m
			count++
		}
	}
	switch count {
	case 0:
		return board.Move{}, cherrors.NewUnknownSAN(text)
	case 1:
		return found, nil
	default:
		return board.Move{}, cherrors.NewAmbiguousSAN(text, count)
	}
}
