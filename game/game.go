// Package game implements the chess game state machine of spec.md §4.G:
// move legality enforcement, draw detection (fifty-move, threefold,
// seventy-five-move, fivefold), insufficient material, and the terminal
// result computation. It is grounded on the teacher's engine/state_stack.go
// repetition bookkeeping, generalized from a fixed-size search stack into a
// permanent, replay-capable game history.
package game

import (
	cherrors "chessgame/errors"
	"chessgame/board"
	"chessgame/san"
)

// Reason classifies why a Game reached (or was claimed to reach) a
// terminal Result.
type Reason int

const (
	Ongoing Reason = iota
	Checkmate
	Stalemate
	InsufficientMaterial
	FiftyMoveRule
	SeventyFiveMoveRule
	ThreefoldRepetition
	FivefoldRepetition
	Resignation
	Agreement
)

// Result describes the outcome of a game. Winner is nil for a draw or an
// ongoing game.
type Result struct {
	Winner *board.Color
	Reason Reason
}

// IsTerminal reports whether r represents a finished game.
func (r Result) IsTerminal() bool { return r.Reason != Ongoing }

func win(c board.Color, reason Reason) Result {
	w := c
	return Result{Winner: &w, Reason: reason}
}

func draw(reason Reason) Result { return Result{Reason: reason} }

// HistoryEntry records one played half-move: the move itself and its SAN
// rendering computed against the position it was played from. It does not
// hold a copy of the position before or after the move.
type HistoryEntry struct {
	Move board.Move
	SAN  string
}

// Game is a played-out chess game: the current position, its full replay
// history, and the repetition/draw bookkeeping needed to compute Result.
type Game struct {
	current  *board.Position
	startFEN string
	history  []HistoryEntry
	repCount map[uint64]int

	override *Result // set by ClaimThreefold/ClaimFiftyMove or PGN import
}

// NewGame returns a Game starting from the standard initial position.
func NewGame() *Game {
	g, err := NewGameFromFEN(board.StartFEN)
	if err != nil {
		panic("game: standard start FEN must parse: " + err.Error())
	}
	return g
}

// NewGameFromFEN returns a Game starting from the position described by
// fen, or an error if fen is malformed or semantically invalid.
func NewGameFromFEN(fen string) (*Game, error) {
	p, err := board.ParseFEN(fen)
	if err != nil {
		return nil, err
	}
	g := &Game{
		current:  p,
		startFEN: fen,
		repCount: map[uint64]int{},
	}
	g.repCount[p.RepetitionKey()]++
	return g, nil
}

// Position returns the current position. Callers must not mutate it.
func (g *Game) Position() *board.Position { return g.current }

// History returns the played half-moves in order.
func (g *Game) History() []HistoryEntry { return g.history }

// LegalMoves returns the legal moves from the current position.
func (g *Game) LegalMoves() []board.Move { return g.current.LegalMoves() }

// InCheck reports whether the side to move is in check.
func (g *Game) InCheck() bool { return g.current.InCheck(g.current.SideToMove()) }

// MakeMove plays m, which must be present (by From/To/Promotion identity)
// in LegalMoves of the current position. It returns ErrGameOver if the
// game already has a terminal Result, or ErrIllegalMove if m is not legal.
func (g *Game) MakeMove(m board.Move) error {
	if g.Result().IsTerminal() {
		return cherrors.Wrap(cherrors.ErrGameOver, m.UCI())
	}
	legal := g.current.LegalMoves()
	matched := board.Move{}
	found := false
	for _, lm := range legal {
		if lm.Equal(m) {
			matched = lm
			found = true
			break
		}
	}
	if !found {
		return cherrors.NewIllegalMove(m.UCI())
	}

	text := san.Format(matched, g.current)
	g.current.Apply(matched)
	g.history = append(g.history, HistoryEntry{Move: matched, SAN: text})
	g.repCount[g.current.RepetitionKey()]++
	g.override = nil
	return nil
}

// MakeSAN parses text against the current position and plays the result.
func (g *Game) MakeSAN(text string) error {
	m, err := san.Parse(text, g.current)
	if err != nil {
		return err
	}
	return g.MakeMove(m)
}

// InsufficientMaterial reports whether neither side has enough material to
// force checkmate under any sequence of legal moves by a cooperating
// opponent: king versus king; king and a single minor piece versus king;
// or king and bishop versus king and bishop with both bishops on the same
// color complex. Pawns or a major piece on either side always defeat this.
func (g *Game) InsufficientMaterial() bool {
	p := g.current
	if p.KindBitboard(board.White, board.Pawn) != 0 || p.KindBitboard(board.Black, board.Pawn) != 0 {
		return false
	}
	if p.KindBitboard(board.White, board.Rook) != 0 || p.KindBitboard(board.Black, board.Rook) != 0 {
		return false
	}
	if p.KindBitboard(board.White, board.Queen) != 0 || p.KindBitboard(board.Black, board.Queen) != 0 {
		return false
	}

	wn := bitCount(p.KindBitboard(board.White, board.Knight))
	wb := bitCount(p.KindBitboard(board.White, board.Bishop))
	bn := bitCount(p.KindBitboard(board.Black, board.Knight))
	bb := bitCount(p.KindBitboard(board.Black, board.Bishop))

	wMinors := wn + wb
	bMinors := bn + bb

	if wMinors == 0 && bMinors == 0 {
		return true
	}
	if wMinors+bMinors == 1 {
		return true
	}
	if wMinors == 1 && bMinors == 1 && wb == 1 && bb == 1 {
		wsq := lowestSquare(p.KindBitboard(board.White, board.Bishop))
		bsq := lowestSquare(p.KindBitboard(board.Black, board.Bishop))
		return squareColor(wsq) == squareColor(bsq)
	}
	return false
}

func bitCount(bb uint64) int {
	n := 0
	for bb != 0 {
		n++
		bb &= bb - 1
	}
	return n
}

func lowestSquare(bb uint64) board.Square {
	for sq := board.Square(0); sq < 64; sq++ {
		if bb&(1<<uint(sq)) != 0 {
			return sq
		}
	}
	return board.NoSquare
}

func squareColor(sq board.Square) int {
	return (sq.File() + sq.Rank()) & 1
}

// CanClaimFiftyMove reports whether the fifty-move rule may be claimed:
// fifty full moves (100 half-moves) have passed since the last capture or
// pawn move.
func (g *Game) CanClaimFiftyMove() bool { return g.current.HalfmoveClock >= 100 }

// CanClaimThreefold reports whether the current repetition key has
// occurred at least three times.
func (g *Game) CanClaimThreefold() bool { return g.repCount[g.current.RepetitionKey()] >= 3 }

// ClaimFiftyMove claims a draw under the fifty-move rule. It fails with
// ErrBadClaim if the clock hasn't reached 100 half-moves.
func (g *Game) ClaimFiftyMove() error {
	if !g.CanClaimFiftyMove() {
		return cherrors.Wrap(claimErr(), "fifty-move claim")
	}
	r := draw(FiftyMoveRule)
	g.override = &r
	return nil
}

// ClaimThreefold claims a draw under the threefold-repetition rule. It
// fails with ErrBadClaim if the current position hasn't recurred three
// times.
func (g *Game) ClaimThreefold() error {
	if !g.CanClaimThreefold() {
		return cherrors.Wrap(claimErr(), "threefold claim")
	}
	r := draw(ThreefoldRepetition)
	g.override = &r
	return nil
}

func claimErr() error { return cherrors.ErrBadClaim }

// Result computes the game's outcome, per spec.md §4.G's priority order:
// checkmate, then the automatic draws (seventy-five-move and fivefold
// repetition), then stalemate, then insufficient material, then any
// externally recorded claim or imported result (resignation, agreement),
// and finally Ongoing.
func (g *Game) Result() Result {
	p := g.current
	toMove := p.SideToMove()
	moves := p.LegalMoves()

	if len(moves) == 0 && p.InCheck(toMove) {
		return win(toMove.Opposite(), Checkmate)
	}

	if p.HalfmoveClock >= 150 {
		return draw(SeventyFiveMoveRule)
	}
	if g.repCount[p.RepetitionKey()] >= 5 {
		return draw(FivefoldRepetition)
	}
	if len(moves) == 0 {
		return draw(Stalemate)
	}
	if g.InsufficientMaterial() {
		return draw(InsufficientMaterial)
	}
	if g.override != nil {
		return *g.override
	}
	return Result{Reason: Ongoing}
}

// SetExternalResult records a result not derivable from the board alone
// (resignation, draw by agreement), used by PGN import when the movetext
// ends short of a forced result. It is ignored once a forced result
// (checkmate or an automatic draw) applies.
func (g *Game) SetExternalResult(r Result) { g.override = &r }
