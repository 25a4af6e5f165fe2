package board_test

import (
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"

	"chessgame/board"
)

// Scenario S2: exactly two legal moves for Black.
func TestScenarioS2ExactlyTwoLegalMoves(t *testing.T) {
	fen := "2R5/4bppk/1p1p3Q/5R1P/4P3/5P2/r4q1P/7K b - - 6 50"
	p, err := board.ParseFEN(fen)
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	moves := p.LegalMoves()
	if len(moves) != 2 {
		t.Fatalf("expected 2 legal moves, got %d: %v", len(moves), uciStrings(moves))
	}
}

// Scenario S3: gxh6 Rxf7# is checkmate from the S2 position.
func TestScenarioS3Checkmate(t *testing.T) {
	fen := "2R5/4bppk/1p1p3Q/5R1P/4P3/5P2/r4q1P/7K b - - 6 50"
	p, err := board.ParseFEN(fen)
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	moves := p.LegalMoves()
	var gxh6 *board.Move
	for i := range moves {
		if moves[i].UCI() == "g7h6" {
			gxh6 = &moves[i]
		}
	}
	if gxh6 == nil {
		t.Fatalf("gxh6 should be legal, legal moves: %v", uciStrings(moves))
	}
	p.Apply(*gxh6)

	var rxf7 board.Move
	found := false
	for _, m := range p.LegalMoves() {
		if m.UCI() == "f5f7" {
			rxf7 = m
			found = true
		}
	}
	if !found {
		t.Fatalf("Rxf7 should be legal after gxh6")
	}
	p.Apply(rxf7)

	if !p.InCheck(p.SideToMove()) {
		t.Fatalf("expected side to move to be in check after Rxf7")
	}
	if len(p.LegalMoves()) != 0 {
		t.Fatalf("expected checkmate (no legal moves), got %d", len(p.LegalMoves()))
	}
}

// Scenario S5: castling legality must account for the rook's queenside
// transit square (b1) being attacked being irrelevant, while the king's
// transit/destination squares being attacked must block castling.
func TestScenarioS5CastlingLegality(t *testing.T) {
	// White can castle both ways: nothing attacks e1/f1/g1/d1/c1.
	p, err := board.ParseFEN("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	if !hasCastle(p, board.CastleKingside) {
		t.Errorf("expected kingside castle to be legal")
	}
	if !hasCastle(p, board.CastleQueenside) {
		t.Errorf("expected queenside castle to be legal")
	}

	// A black rook on f2 attacks f1, which blocks white kingside castling
	// (king transits through an attacked square) while leaving queenside
	// untouched.
	p2, err := board.ParseFEN("4k3/8/8/8/8/8/5r2/R3K2R w KQ - 0 1")
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	if hasCastle(p2, board.CastleKingside) {
		t.Errorf("expected kingside castle to be illegal (f1 attacked)")
	}
	if !hasCastle(p2, board.CastleQueenside) {
		t.Errorf("expected queenside castle to remain legal")
	}
}

func hasCastle(p *board.Position, kind board.MoveKind) bool {
	for _, m := range p.LegalMoves() {
		if m.Kind == kind {
			return true
		}
	}
	return false
}

func uciStrings(moves []board.Move) []string {
	out := make([]string, len(moves))
	for i, m := range moves {
		out[i] = m.UCI()
	}
	return out
}

// PerftDivide's depth-1 keys are exactly the root's legal moves; the two
// are produced by independent code paths (one recursive, one flat) and
// should describe the same set.
func TestPerftDivideAgreesWithLegalMoves(t *testing.T) {
	fen := "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"
	p, err := board.ParseFEN(fen)
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	divide := board.PerftDivide(p, 1)

	var fromDivide, fromLegal []string
	for m := range divide {
		fromDivide = append(fromDivide, m.UCI())
	}
	for _, m := range p.LegalMoves() {
		fromLegal = append(fromLegal, m.UCI())
	}
	sort.Strings(fromDivide)
	sort.Strings(fromLegal)

	if diff := cmp.Diff(fromLegal, fromDivide); diff != "" {
		t.Errorf("LegalMoves() and PerftDivide(1) disagree on move set (-legal +divide):\n%s", diff)
	}
}

func TestEnPassantDiscoveredCheckNotGenerated(t *testing.T) {
	// Black pawn e4 could capture en passant to d3, but doing so removes
	// both the e4 and d4 pawns from the board in the same move, opening
	// the fourth rank between the white rook on a4 and the black king on
	// h4. The capture must not be generated even though neither pawn is
	// individually pinned.
	p, err := board.ParseFEN("8/8/8/8/R2Pp2k/8/8/4K3 b - d3 0 1")
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	for _, m := range p.LegalMoves() {
		if m.Kind == board.EnPassant {
			t.Errorf("en passant capture should not be legal here: %s", m.UCI())
		}
	}
}
