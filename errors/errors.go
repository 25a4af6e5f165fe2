// Package errors provides the error taxonomy shared by the board, san, game
// and pgn packages. It defines sentinel kinds for errors.Is() and a small
// set of context-carrying wrapper types for errors.As().
package errors

import (
	"errors"
	"fmt"
)

// Sentinel error kinds. Use errors.Is(err, errors.ErrIllegalMove) etc. to
// classify a failure without inspecting its message.
var (
	// ErrSyntax indicates a malformed FEN, SAN or UCI string.
	ErrSyntax = errors.New("syntax error")

	// ErrSemantic indicates a syntactically valid string that violates a
	// chess-position invariant (wrong king count, impossible castling
	// rights, side not to move in check, and so on).
	ErrSemantic = errors.New("semantic error")

	// ErrAmbiguousSAN indicates a SAN string that matches more than one
	// legal move in the position it was parsed against.
	ErrAmbiguousSAN = errors.New("ambiguous SAN")

	// ErrUnknownSAN indicates a SAN string that matches no legal move.
	ErrUnknownSAN = errors.New("unknown SAN")

	// ErrIllegalMove indicates MakeMove was called with a move absent from
	// LegalMoves of the current position.
	ErrIllegalMove = errors.New("illegal move")

	// ErrGameOver indicates MakeMove was called on a game that already has
	// a terminal result.
	ErrGameOver = errors.New("game is over")

	// ErrBadClaim indicates a draw claim was made when its predicate does
	// not hold.
	ErrBadClaim = errors.New("claim predicate not satisfied")
)

// PositionError wraps a syntax or semantic failure encountered while parsing
// a FEN string, preserving the offending text for diagnostics.
type PositionError struct {
	Kind error // ErrSyntax or ErrSemantic
	FEN  string
	Msg  string
}

func (e *PositionError) Error() string {
	return fmt.Sprintf("%v: %s (fen %q)", e.Kind, e.Msg, e.FEN)
}

func (e *PositionError) Unwrap() error { return e.Kind }

// NewSyntax builds a PositionError classified as ErrSyntax.
func NewSyntax(fen, msg string) error {
	return &PositionError{Kind: ErrSyntax, FEN: fen, Msg: msg}
}

// NewSemantic builds a PositionError classified as ErrSemantic.
func NewSemantic(fen, msg string) error {
	return &PositionError{Kind: ErrSemantic, FEN: fen, Msg: msg}
}

// MoveError wraps a failure encountered while parsing or applying a move,
// carrying the offending move text and an optional detail message. It does
// not record the position the move was resolved against.
type MoveError struct {
	Kind error // ErrSyntax, ErrAmbiguousSAN, ErrUnknownSAN or ErrIllegalMove
	Text string
	Msg  string
}

func (e *MoveError) Error() string {
	if e.Msg == "" {
		return fmt.Sprintf("%v: %q", e.Kind, e.Text)
	}
	return fmt.Sprintf("%v: %q: %s", e.Kind, e.Text, e.Msg)
}

func (e *MoveError) Unwrap() error { return e.Kind }

// NewMoveSyntax builds a MoveError classified as ErrSyntax.
func NewMoveSyntax(text, msg string) error {
	return &MoveError{Kind: ErrSyntax, Text: text, Msg: msg}
}

// NewAmbiguousSAN builds a MoveError classified as ErrAmbiguousSAN.
func NewAmbiguousSAN(text string, count int) error {
	return &MoveError{Kind: ErrAmbiguousSAN, Text: text, Msg: fmt.Sprintf("%d candidate moves", count)}
}

// NewUnknownSAN builds a MoveError classified as ErrUnknownSAN.
func NewUnknownSAN(text string) error {
	return &MoveError{Kind: ErrUnknownSAN, Text: text}
}

// NewIllegalMove builds a MoveError classified as ErrIllegalMove.
func NewIllegalMove(text string) error {
	return &MoveError{Kind: ErrIllegalMove, Text: text}
}

// Wrap adds context to err while preserving it for errors.Is()/errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to err while preserving it for
// errors.Is()/errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}
