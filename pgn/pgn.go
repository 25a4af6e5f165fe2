// Package pgn assembles and parses Portable Game Notation text: the Seven
// Tag Roster plus movetext, per spec.md §4.H. It is a thin layer over san
// and game, grounded on the tag roster ordering of
// lgbarn-pgn-extract-go/internal/chess/tags.go.
package pgn

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"chessgame/board"
	cherrors "chessgame/errors"
	"chessgame/game"
)

// SevenTagRoster lists the seven mandatory tags in the order they must
// appear, per the PGN standard and the teacher-adjacent tag roster.
var SevenTagRoster = []string{"Event", "Site", "Date", "Round", "White", "Black", "Result"}

// Tags holds PGN header tags by name; the map itself has no order, and
// Render fixes the output order. Lookups are case-sensitive on the tag
// name, matching the roster's capitalization.
type Tags map[string]string

func defaultTags() Tags {
	t := Tags{}
	for _, name := range SevenTagRoster {
		t[name] = "?"
	}
	t["Date"] = "????.??.??"
	return t
}

// Game bundles a game.Game with the PGN header tags describing it.
type Game struct {
	Tags Tags
	*game.Game
}

// NewGame returns a Game with default Seven Tag Roster values, starting
// from the standard position.
func NewGame() *Game {
	return &Game{Tags: defaultTags(), Game: game.NewGame()}
}

// NewGameFromFEN returns a Game starting from fen, automatically recording
// SetUp and FEN tags since the game doesn't start from the standard
// position, per spec.md §4.H.
func NewGameFromFEN(fen string) (*Game, error) {
	g, err := game.NewGameFromFEN(fen)
	if err != nil {
		return nil, err
	}
	tags := defaultTags()
	if fen != board.StartFEN {
		tags["SetUp"] = "1"
		tags["FEN"] = fen
	}
	return &Game{Tags: tags, Game: g}, nil
}

func resultToken(r game.Result) string {
	switch {
	case r.Reason == game.Ongoing:
		return "*"
	case r.Winner == nil:
		return "1/2-1/2"
	case *r.Winner == board.White:
		return "1-0"
	default:
		return "0-1"
	}
}

// Render produces the full PGN text for g: tag pairs in roster order
// (followed by SetUp and FEN when present, then any other tags, sorted for
// determinism), then movetext wrapped with move numbers, ending with the
// result token. The Result tag always carries the same token that ends the
// movetext.
func (g *Game) Render() string {
	var sb strings.Builder

	written := map[string]bool{}
	for _, name := range SevenTagRoster {
		val := g.Tags[name]
		if name == "Result" {
			val = resultToken(g.Result())
		}
		if val == "" {
			val = "?"
		}
		fmt.Fprintf(&sb, "[%s %q]\n", name, val)
		written[name] = true
	}
	for _, extra := range []string{"SetUp", "FEN"} {
		if val, ok := g.Tags[extra]; ok {
			fmt.Fprintf(&sb, "[%s %q]\n", extra, val)
			written[extra] = true
		}
	}
	var others []string
	for name := range g.Tags {
		if !written[name] {
			others = append(others, name)
		}
	}
	sort.Strings(others)
	for _, name := range others {
		fmt.Fprintf(&sb, "[%s %q]\n", name, g.Tags[name])
	}
	sb.WriteByte('\n')

	sb.WriteString(g.movetext())
	sb.WriteByte(' ')
	sb.WriteString(resultToken(g.Result()))
	sb.WriteByte('\n')

	return sb.String()
}

func (g *Game) movetext() string {
	var sb strings.Builder
	history := g.History()
	for i, entry := range history {
		if i%2 == 0 {
			if i > 0 {
				sb.WriteByte(' ')
			}
			fmt.Fprintf(&sb, "%d. ", i/2+1)
		} else {
			sb.WriteByte(' ')
		}
		sb.WriteString(entry.SAN)
	}
	return sb.String()
}

// Parse reads PGN text (tag pairs followed by movetext) and replays the
// moves into a Game. A Result tag of 1-0 or 0-1 on a final position that
// isn't checkmate is interpreted as a resignation, per spec.md §9. A
// Result tag that contradicts a mechanically-derivable result (e.g. 1-0
// recorded on a stalemated final position) is rejected as a semantic
// error, since PGN Result must agree with the position it closes.
func Parse(text string) (*Game, error) {
	tags, rest, err := parseTags(text)
	if err != nil {
		return nil, err
	}

	fen := board.StartFEN
	if tags["SetUp"] == "1" {
		if f, ok := tags["FEN"]; ok {
			fen = f
		}
	}

	g, err := NewGameFromFEN(fen)
	if err != nil {
		return nil, err
	}
	for k, v := range tags {
		g.Tags[k] = v
	}

	tokens := strings.Fields(rest)
	for _, tok := range tokens {
		if isResultToken(tok) || isMoveNumber(tok) {
			continue
		}
		if err := g.MakeSAN(tok); err != nil {
			return nil, cherrors.Wrapf(err, "replaying move %q", tok)
		}
	}

	if resultTag, ok := tags["Result"]; ok && resultTag != "*" {
		actual := g.Result()
		if actual.Reason != game.Ongoing {
			if resultToken(actual) != resultTag {
				return nil, cherrors.NewSemantic(g.Position().FEN(), "Result tag disagrees with the final position")
			}
		} else if actual.Reason == game.Ongoing {
			winner := board.White
			switch resultTag {
			case "1-0":
				g.SetExternalResult(game.Result{Winner: &winner, Reason: game.Resignation})
			case "0-1":
				b := board.Black
				g.SetExternalResult(game.Result{Winner: &b, Reason: game.Resignation})
			case "1/2-1/2":
				g.SetExternalResult(game.Result{Reason: game.Agreement})
			}
		}
	}

	return g, nil
}

func isResultToken(tok string) bool {
	switch tok {
	case "1-0", "0-1", "1/2-1/2", "*":
		return true
	}
	return false
}

func isMoveNumber(tok string) bool {
	trimmed := strings.TrimRight(tok, ".")
	if trimmed == tok {
		return false
	}
	_, err := strconv.Atoi(trimmed)
	return err == nil
}

func parseTags(text string) (Tags, string, error) {
	tags := Tags{}
	i := 0
	for {
		for i < len(text) && (text[i] == ' ' || text[i] == '\n' || text[i] == '\r' || text[i] == '\t') {
			i++
		}
		if i >= len(text) || text[i] != '[' {
			break
		}
		end := strings.IndexByte(text[i:], ']')
		if end < 0 {
			return nil, "", cherrors.NewSyntax(text, "unterminated tag pair")
		}
		pair := text[i+1 : i+end]
		i += end + 1

		sp := strings.IndexByte(pair, ' ')
		if sp < 0 {
			return nil, "", cherrors.NewSyntax(pair, "malformed tag pair")
		}
		name := pair[:sp]
		val := strings.TrimSpace(pair[sp+1:])
		val = strings.Trim(val, "\"")
		tags[name] = val
	}
	return tags, text[i:], nil
}
