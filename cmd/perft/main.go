// Command perft counts move-generator leaf nodes from a position, the way
// the teacher's cmd/perft does, retargeted at the board package. Divide
// output is annotated with each move's kind (capture/castle/en-passant/
// promotion) instead of the bare move list the teacher printed, and
// -verify cross-checks the node count against dragontoothmg the same way
// board/oracle_test.go does, but as a standalone run rather than a test.
package main

import (
	"flag"
	"fmt"
	"os"
	"runtime/pprof"
	"sort"
	"time"

	"github.com/dylhunn/dragontoothmg"

	"chessgame/board"
)

func main() {
	fen := flag.String("fen", board.StartFEN, "FEN string (defaults to initial position)")
	depth := flag.Int("depth", 0, "Perft depth (required)")
	divide := flag.Bool("divide", false, "Print per-move node counts at root")
	repeat := flag.Int("repeat", 1, "Repeat perft N times and report aggregate (for steadier timings)")
	label := flag.String("label", "", "Optional label prefix for one-line output")
	verify := flag.Bool("verify", false, "Cross-check the node count against dragontoothmg's generator")
	cpuProf := flag.String("cpuprofile", "", "Write CPU profile to file during run")
	memProf := flag.String("memprofile", "", "Write heap profile to file after run")
	flag.Parse()

	if *depth <= 0 {
		fmt.Fprintln(os.Stderr, "-depth must be > 0")
		os.Exit(2)
	}

	pos, err := board.ParseFEN(*fen)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ParseFEN error: %v\n", err)
		os.Exit(2)
	}

	if *divide {
		div := board.PerftDivide(pos, *depth)
		type kv struct {
			m board.Move
			n uint64
		}
		arr := make([]kv, 0, len(div))
		var sum uint64
		for m, n := range div {
			arr = append(arr, kv{m, n})
			sum += n
		}
		sort.Slice(arr, func(i, j int) bool { return arr[i].m.UCI() < arr[j].m.UCI() })
		for _, x := range arr {
			fmt.Printf("%s%s: %d\n", x.m.UCI(), moveKindTag(x.m), x.n)
		}
		fmt.Printf("Total: %d\n", sum)
		return
	}

	if *verify {
		oracle := dragontoothmg.ParseFen(*fen)
		want := oraclePerft(oracle, *depth)
		got := board.Perft(pos, *depth)
		if got != want {
			fmt.Fprintf(os.Stderr, "mismatch at depth %d: board=%d dragontoothmg=%d\n", *depth, got, want)
			os.Exit(1)
		}
		fmt.Printf("%s depth %d verified against dragontoothmg: %d nodes\n", *label, *depth, got)
		return
	}

	if *cpuProf != "" {
		f, err := os.Create(*cpuProf)
		if err != nil {
			fmt.Fprintf(os.Stderr, "creating cpuprofile: %v\n", err)
			os.Exit(2)
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			fmt.Fprintf(os.Stderr, "start cpu profile: %v\n", err)
			os.Exit(2)
		}
		defer func() {
			pprof.StopCPUProfile()
			_ = f.Close()
		}()
	}

	var totalNodes uint64
	start := time.Now()
	for i := 0; i < *repeat; i++ {
		totalNodes += board.Perft(pos, *depth)
	}
	elapsed := time.Since(start)
	secs := elapsed.Seconds()
	nps := float64(totalNodes) / secs

	fmt.Printf("%s \t%d \t\t%d \t\t%s \t%.0f\n", *label, *depth, totalNodes, elapsed, nps)

	if *memProf != "" {
		f, err := os.Create(*memProf)
		if err != nil {
			fmt.Fprintf(os.Stderr, "creating memprofile: %v\n", err)
			os.Exit(2)
		}
		if err := pprof.WriteHeapProfile(f); err != nil {
			fmt.Fprintf(os.Stderr, "write heap profile: %v\n", err)
			os.Exit(2)
		}
		_ = f.Close()
	}
}

// moveKindTag renders a bracketed annotation for divide output so a reader
// can tell a capture or promotion apart from a quiet move without replaying
// the position themselves.
func moveKindTag(m board.Move) string {
	switch m.Kind {
	case board.CastleKingside, board.CastleQueenside:
		return " [castle]"
	case board.EnPassant:
		return " [ep]"
	case board.CaptureMove:
		return " [capture]"
	}
	if m.IsPromotion() {
		return " [promotion]"
	}
	return ""
}

// oraclePerft mirrors board/oracle_test.go's differential perft walk so
// -verify can cross-check a run against dragontoothmg's generator outside
// of the test suite.
func oraclePerft(b dragontoothmg.Board, depth int) uint64 {
	if depth == 0 {
		return 1
	}
	var nodes uint64
	for _, m := range b.GenerateLegalMoves() {
		unapply := b.Apply(m)
		nodes += oraclePerft(b, depth-1)
		unapply()
	}
	return nodes
}
