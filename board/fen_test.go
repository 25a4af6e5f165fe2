package board_test

import (
	"testing"

	"chessgame/board"
)

func TestFENRoundTrip(t *testing.T) {
	fens := []string{
		board.StartFEN,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
		"rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8",
	}
	for _, fen := range fens {
		p, err := board.ParseFEN(fen)
		if err != nil {
			t.Fatalf("ParseFEN(%q): %v", fen, err)
		}
		got := p.FEN()
		reparsed, err := board.ParseFEN(got)
		if err != nil {
			t.Fatalf("ParseFEN(FEN(%q)=%q): %v", fen, got, err)
		}
		if reparsed.FEN() != got {
			t.Errorf("round trip not idempotent: %q -> %q -> %q", fen, got, reparsed.FEN())
		}
	}
}

func TestParseFENRejectsSyntaxErrors(t *testing.T) {
	bad := []string{
		"",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP w KQkq - 0 1",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR x KQkq - 0 1",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w ZZZZ - 0 1",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq z9 0 1",
		// Missing halfmove/fullmove fields: spec.md requires exactly 6
		// fields, no defaulting.
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq -",
		// Seven fields is just as invalid as four.
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1 extra",
	}
	for _, fen := range bad {
		if _, err := board.ParseFEN(fen); err == nil {
			t.Errorf("ParseFEN(%q): expected syntax error, got nil", fen)
		}
	}
}

func TestParseFENRejectsSemanticErrors(t *testing.T) {
	bad := []string{
		// Two white kings.
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPKPPP/RNBQKBNR w KQkq - 0 1",
		// No black king.
		"rnbq1bnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1",
		// Pawn on rank 8.
		"rnbqkbnP/pppppppp/8/8/8/8/pPPPPPPP/RNBQKBNR w KQkq - 0 1",
		// Black to move but White's king sits in check from a black rook
		// with an open file: illegal, side not on move cannot be in check.
		"k7/8/8/4r3/8/8/8/4K3 b - - 0 1",
		// Castling rights with rook/king not on home squares.
		"rnbqkbn1/pppppppr/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1",
		// En passant target on rank 3 with White to move: rank 3 only
		// follows a White double push, which leaves Black to move next.
		"4k3/8/8/8/8/8/3p4/4K3 w - d3 0 1",
	}
	for _, fen := range bad {
		if _, err := board.ParseFEN(fen); err == nil {
			t.Errorf("ParseFEN(%q): expected semantic error, got nil", fen)
		}
	}
}

func TestParseFENReadsExplicitClocks(t *testing.T) {
	p, err := board.ParseFEN(board.StartFEN)
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	if p.HalfmoveClock != 0 || p.FullmoveNumber != 1 {
		t.Errorf("expected clocks 0/1 from the explicit fields, got %d/%d", p.HalfmoveClock, p.FullmoveNumber)
	}
}
