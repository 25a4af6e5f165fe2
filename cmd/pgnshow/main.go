// Command pgnshow replays a line-oriented UCI-style move stream from
// stdin and prints the resulting PGN, grounded on the teacher's
// cmd/uci/main.go bufio.Scanner stdin loop.
//
// Input: an optional first line "fen <FEN>" (default: the standard
// starting position), followed by one UCI long-algebraic move per line.
package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"chessgame/board"
	"chessgame/pgn"
)

func main() {
	scanner := bufio.NewScanner(os.Stdin)

	fen := board.StartFEN
	var lines []string
	for scanner.Scan() {
		lines = append(lines, strings.TrimSpace(scanner.Text()))
	}

	start := 0
	if len(lines) > 0 && strings.HasPrefix(lines[0], "fen ") {
		fen = strings.TrimPrefix(lines[0], "fen ")
		start = 1
	}

	g, err := pgn.NewGameFromFEN(fen)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid starting position: %v\n", err)
		os.Exit(2)
	}

	for _, line := range lines[start:] {
		if line == "" {
			continue
		}
		m, err := board.ParseUCI(line)
		if err != nil {
			fmt.Fprintf(os.Stderr, "skipping %q: %v\n", line, err)
			continue
		}
		if err := g.MakeMove(m); err != nil {
			fmt.Fprintf(os.Stderr, "illegal move %q: %v\n", line, err)
			continue
		}
	}

	fmt.Print(g.Render())
}
