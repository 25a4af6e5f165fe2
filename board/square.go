package board

import (
	cherrors "chessgame/errors"
)

// Square is an index 0..63 into the board, file-major within each rank:
// a1 = 0, h1 = 7, a8 = 56, h8 = 63.
type Square int8

// NoSquare is the sentinel for "no square" (used for en-passant targets and
// castling rook bookkeeping).
const NoSquare Square = -1

// MakeSquare builds a Square from 0-based file (0=a..7=h) and rank (0=1..7=8).
func MakeSquare(file, rank int) Square { return Square(rank*8 + file) }

// File returns the 0-based file (0=a..7=h).
func (s Square) File() int { return int(s) % 8 }

// Rank returns the 0-based rank (0=1..7=8).
func (s Square) Rank() int { return int(s) / 8 }

// String renders the square in algebraic notation, e.g. "e4".
func (s Square) String() string {
	if s < 0 || s > 63 {
		return "-"
	}
	return string([]byte{'a' + byte(s.File()), '1' + byte(s.Rank())})
}

// ParseSquare parses algebraic notation ("a1".."h8") into a Square.
func ParseSquare(s string) (Square, error) {
	if len(s) != 2 {
		return NoSquare, cherrors.NewSyntax(s, "square must be two characters")
	}
	file := s[0]
	rank := s[1]
	if file < 'a' || file > 'h' || rank < '1' || rank > '8' {
		return NoSquare, cherrors.NewSyntax(s, "square out of range a1..h8")
	}
	return MakeSquare(int(file-'a'), int(rank-'1')), nil
}
