package board

import "math/rand"

// Zobrist hashing tables for pieces, castling, en passant and side to move,
// grounded on the teacher's goosemg/zobrist.go. A fixed seed keeps hashes
// reproducible across runs and test fixtures.
var (
	zobristPiece     [16][64]uint64
	zobristCastle    [16]uint64
	zobristEnPassant [8]uint64
	zobristSide      uint64
)

func init() {
	rnd := rand.New(rand.NewSource(0xC0DE))

	for pc := 0; pc < 16; pc++ {
		for sq := 0; sq < 64; sq++ {
			zobristPiece[pc][sq] = rnd.Uint64()
		}
	}
	for cr := 0; cr < 16; cr++ {
		zobristCastle[cr] = rnd.Uint64()
	}
	for f := 0; f < 8; f++ {
		zobristEnPassant[f] = rnd.Uint64()
	}
	zobristSide = rnd.Uint64()
}

// RepetitionKey returns a FIDE-correct position key for threefold and
// fivefold repetition purposes (spec.md §4.7). Unlike Zobrist, it folds the
// en-passant target into the key only when an en-passant capture is
// actually playable from p, since two positions that differ only by an
// unplayable en-passant target are the same position under the Laws of
// Chess.
func (p *Position) RepetitionKey() uint64 {
	key := p.zobrist
	if p.epTarget == NoSquare {
		return key
	}
	if p.epCaptureIsLegal() {
		return key
	}
	// p.zobrist already includes the en-passant file key (see
	// RecomputeZobrist and Apply); remove it since it shouldn't count here.
	return key ^ zobristEnPassant[p.epTarget.File()]
}

func (p *Position) epCaptureIsLegal() bool {
	ep := p.epTarget
	if ep == NoSquare {
		return false
	}
	us := p.sideToMove
	attackers := pawnAttackTable[us.Opposite()][ep] & p.byKind[us][Pawn]
	for attackers != 0 {
		from := popLSB(&attackers)
		var capSq Square
		if us == White {
			capSq = ep - 8
		} else {
			capSq = ep + 8
		}
		occ := p.AllOccupancy()
		occ &^= uint64(1) << uint(from)
		occ &^= uint64(1) << uint(capSq)
		occ |= uint64(1) << uint(ep)
		ks := p.KingSquare(us)
		if ks == NoSquare {
			continue
		}
		if !p.isAttackedWithOcc(int(ks), us.Opposite(), occ) {
			return true
		}
	}
	return false
}
