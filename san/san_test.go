package san_test

import (
	"testing"

	"chessgame/board"
	"chessgame/san"
)

func TestFormatParseRoundTrip(t *testing.T) {
	p, err := board.ParseFEN(board.StartFEN)
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	for _, m := range p.LegalMoves() {
		text := san.Format(m, p)
		got, err := san.Parse(text, p)
		if err != nil {
			t.Fatalf("Parse(Format(%s)=%q): %v", m.UCI(), text, err)
		}
		if !got.Equal(m) {
			t.Errorf("round trip mismatch: %s -> %q -> %s", m.UCI(), text, got.UCI())
		}
	}
}

// Scenario S6: rooks on a5 and h5 can both reach d5. They share a rank but
// not a file, so the file alone disambiguates: SAN should read Rad5 / Rhd5,
// never bare Rd5.
func TestScenarioS6Disambiguation(t *testing.T) {
	p, err := board.ParseFEN("4k3/8/8/R6R/8/8/8/4K3 w - - 0 1")
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	for _, m := range p.LegalMoves() {
		if m.To.String() != "d5" {
			continue
		}
		text := san.Format(m, p)
		if text != "Rad5" && text != "Rhd5" {
			t.Errorf("expected disambiguated SAN for %s, got %q", m.UCI(), text)
		}
	}
}

func TestFormatCastling(t *testing.T) {
	p, err := board.ParseFEN("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	for _, m := range p.LegalMoves() {
		text := san.Format(m, p)
		switch m.Kind {
		case board.CastleKingside:
			if text != "O-O" {
				t.Errorf("expected O-O, got %q", text)
			}
		case board.CastleQueenside:
			if text != "O-O-O" {
				t.Errorf("expected O-O-O, got %q", text)
			}
		}
	}
}

func TestFormatCheckmateSuffix(t *testing.T) {
	// Fool's mate final position: 1.f3 e5 2.g4 Qh4#
	p, err := board.ParseFEN(board.StartFEN)
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	for _, uci := range []string{"f2f3", "e7e5", "g2g4"} {
		m, err := board.ParseUCI(uci)
		if err != nil {
			t.Fatalf("ParseUCI(%s): %v", uci, err)
		}
		applyLegal(t, p, m)
	}
	qh4, err := board.ParseUCI("d8h4")
	if err != nil {
		t.Fatalf("ParseUCI: %v", err)
	}
	text := san.Format(findLegal(t, p, qh4), p)
	if text != "Qh4#" {
		t.Errorf("expected Qh4#, got %q", text)
	}
}

func findLegal(t *testing.T, p *board.Position, m board.Move) board.Move {
	for _, lm := range p.LegalMoves() {
		if lm.Equal(m) {
			return lm
		}
	}
	t.Fatalf("move %s not legal", m.UCI())
	return board.Move{}
}

func applyLegal(t *testing.T, p *board.Position, m board.Move) {
	lm := findLegal(t, p, m)
	p.Apply(lm)
}
