package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/lgbarn/minimax-chess/internal/chess"
	"github.com/lgbarn/minimax-chess/internal/engine"
	"github.com/lgbarn/minimax-chess/internal/testutil"
)

func foolsMate(t *testing.T) *GameRecord {
	t.Helper()
	pos := engine.NewPosition()
	moves := testutil.MustMoves(t, "f2f3 e7e5 g2g4 d8h4")
	for _, m := range moves {
		testutil.AssertNoError(t, pos.Do(m))
	}
	return NewGameRecord(0, "brave-otter", engine.InitialFEN, pos, moves)
}

// TestNewGameRecord verifies the summary of a finished game
func TestNewGameRecord(t *testing.T) {
	rec := foolsMate(t)

	testutil.AssertEqual(t, rec.Result, ResultBlackWins)
	testutil.AssertEqual(t, rec.Reason, "checkmate")
	testutil.AssertEqual(t, rec.Plies, 4)
	testutil.AssertEqual(t, rec.Score, float32(-1000))
	testutil.AssertEqual(t, rec.Moves, []string{"f2f3", "e7e5", "g2g4", "d8h4"})
	testutil.AssertEqual(t, rec.Board.Get(chess.MustSquare("h4")), chess.B(chess.Queen))
}

func TestResult(t *testing.T) {
	tests := []struct {
		name       string
		fen        string
		wantResult string
		wantReason string
	}{
		{"white mated", "4k3/8/8/8/8/8/5PPP/r5K1 w - - 0 1", ResultBlackWins, "checkmate"},
		{"black mated", "R5k1/5ppp/8/8/8/8/8/6K1 b - - 0 1", ResultWhiteWins, "checkmate"},
		{"stalemate", "7k/5Q2/6K1/8/8/8/8/8 b - - 0 1", ResultDraw, "stalemate"},
		{"in progress", engine.InitialFEN, ResultUnfinished, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos, err := engine.NewPositionFromFEN(tt.fen)
			testutil.AssertNoError(t, err)
			result, reason := Result(pos)
			testutil.AssertEqual(t, result, tt.wantResult)
			testutil.AssertEqual(t, reason, tt.wantReason)
		})
	}
}

// TestTextWriter_WriteGame verifies the text writer output
func TestTextWriter_WriteGame(t *testing.T) {
	var buf bytes.Buffer
	writer := NewTextWriter(&buf, NewBoardWriter(&buf, false))
	if err := writer.WriteGame(foolsMate(t)); err != nil {
		t.Fatalf("WriteGame failed: %v", err)
	}

	output := buf.String()
	for _, want := range []string{
		"game 1 (brave-otter): 0-1 by checkmate after 4 plies",
		"f2f3 e7e5 g2g4 d8h4",
		"4  . . . . . . P q",
		"   a b c d e f g h",
	} {
		if !strings.Contains(output, want) {
			t.Errorf("output missing %q:\n%s", want, output)
		}
	}
	if strings.Contains(output, "\x1b[") {
		t.Error("uncoloured writer emitted escape codes")
	}
}

func TestBoardWriterColour(t *testing.T) {
	var buf bytes.Buffer
	bw := NewBoardWriter(&buf, true)
	if err := bw.WriteBoard(chess.NewInitialBoard()); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "\x1b[") {
		t.Error("coloured writer emitted no escape codes")
	}
}

// TestJSONWriter_Batch verifies the JSON writer batches games into an array
func TestJSONWriter_Batch(t *testing.T) {
	var buf bytes.Buffer
	writer := NewJSONWriter(&buf)

	rec := foolsMate(t)
	for i := 0; i < 2; i++ {
		if err := writer.WriteGame(rec); err != nil {
			t.Fatalf("WriteGame failed: %v", err)
		}
	}
	if buf.Len() != 0 {
		t.Error("batch writer wrote before Close")
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	var out JSONOutput
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	testutil.AssertEqual(t, len(out.Games), 2)
	testutil.AssertEqual(t, out.Games[0].Label, "brave-otter")
	testutil.AssertEqual(t, out.Games[0].Moves, rec.Moves)
}

// TestJSONWriter_Single verifies one object per line in single mode
func TestJSONWriter_Single(t *testing.T) {
	var buf bytes.Buffer
	writer := NewJSONWriterSingle(&buf)
	if err := writer.WriteGame(foolsMate(t)); err != nil {
		t.Fatal(err)
	}
	if err := writer.WriteGame(foolsMate(t)); err != nil {
		t.Fatal(err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	testutil.AssertEqual(t, len(lines), 2)
	var rec GameRecord
	testutil.AssertNoError(t, json.Unmarshal([]byte(lines[1]), &rec))
	testutil.AssertEqual(t, rec.Result, ResultBlackWins)
	testutil.AssertEqual(t, rec.FinalFEN, "rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 0 3")
}
