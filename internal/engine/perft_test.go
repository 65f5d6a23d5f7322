package engine

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"
	nchess "github.com/notnil/chess"

	"github.com/lgbarn/minimax-chess/internal/chess"
	"github.com/lgbarn/minimax-chess/internal/testutil"
)

// Reference positions with well known perft counts.
var perftTests = []struct {
	name   string
	fen    string
	counts []uint64 // counts[d-1] is perft(d)
}{
	{"start", InitialFEN, []uint64{20, 400, 8902, 197281}},
	{"kiwipete", "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1", []uint64{48, 2039, 97862}},
	{"rook endgame", "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1", []uint64{14, 191, 2812, 43238}},
	{"promotions", "r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1", []uint64{6, 264, 9467}},
	{"discovered checks", "rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8", []uint64{44, 1486, 62379}},
}

func TestPerft(t *testing.T) {
	for _, tt := range perftTests {
		t.Run(tt.name, func(t *testing.T) {
			p := mustFEN(t, tt.fen)
			fen := p.FEN()
			for i, want := range tt.counts {
				depth := i + 1
				if testing.Short() && want > 10000 {
					t.Skipf("perft(%d) = %d skipped in short mode", depth, want)
				}
				testutil.AssertEqualf(t, p.Perft(depth), want, "perft(%d)", depth)
			}
			testutil.AssertEqual(t, p.FEN(), fen)
			testutil.AssertEqual(t, p.TotalPlies(), 0)
		})
	}
}

func TestPerftDivide(t *testing.T) {
	p := NewPosition()
	div := p.PerftDivide(2)

	testutil.AssertEqual(t, len(div), 20)
	var total uint64
	for _, n := range div {
		total += n
	}
	testutil.AssertEqual(t, total, uint64(400))
	testutil.AssertEqual(t, div["g1f3"], uint64(20))
}

// oracleMoves returns the legal moves of g in coordinate form, sorted.
func oracleMoves(g *nchess.Game) []string {
	var out []string
	for _, m := range g.ValidMoves() {
		out = append(out, nchess.UCINotation{}.Encode(g.Position(), m))
	}
	sort.Strings(out)
	return out
}

// TestLegalMovesMatchOracle plays random games and compares the legal move
// set with github.com/notnil/chess after every ply.
func TestLegalMovesMatchOracle(t *testing.T) {
	starts := []string{InitialFEN}
	for _, tt := range perftTests[1:] {
		starts = append(starts, tt.fen)
	}

	for si, start := range starts {
		for seed := int64(1); seed <= 4; seed++ {
			rng := rand.New(rand.NewSource(seed*100 + int64(si)))
			p := mustFEN(t, start)

			opt, err := nchess.FEN(start)
			testutil.AssertNoError(t, err)
			g := nchess.NewGame(opt, nchess.UseNotation(nchess.UCINotation{}))

			for ply := 0; ply < 120; ply++ {
				if p.IsTerminal() || g.Outcome() != nchess.NoOutcome {
					break
				}
				want := oracleMoves(g)
				got := moveStrings(p)
				if !cmp.Equal(got, want) {
					t.Fatalf("start %d seed %d ply %d (%s): move sets differ\n got %v\nwant %v",
						si, seed, ply, p.FEN(), got, want)
				}

				mv := got[rng.Intn(len(got))]
				testutil.AssertNoError(t, p.Do(chess.MustParseMove(mv)))
				testutil.AssertNoError(t, g.MoveStr(mv))
			}
		}
	}
}
