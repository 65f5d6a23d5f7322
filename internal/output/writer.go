package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// GameWriter is the interface for writing game records to output.
type GameWriter interface {
	// WriteGame writes a single game to the output.
	WriteGame(rec *GameRecord) error

	// Flush flushes any buffered data to the underlying writer.
	Flush() error

	// Close closes the writer and releases any resources.
	// For batch writers (like JSON), this also writes any pending output.
	Close() error
}

// TextWriter writes a result line per game, optionally followed by the
// final board.
type TextWriter struct {
	w      io.Writer
	boards *BoardWriter
}

// NewTextWriter creates a text writer. A nil boards writer skips boards.
func NewTextWriter(w io.Writer, boards *BoardWriter) *TextWriter {
	return &TextWriter{w: w, boards: boards}
}

// WriteGame writes rec as text.
func (tw *TextWriter) WriteGame(rec *GameRecord) error {
	line := fmt.Sprintf("game %d (%s): %s", rec.Index+1, rec.Label, rec.Result)
	if rec.Reason != "" {
		line += " by " + rec.Reason
	}
	line += fmt.Sprintf(" after %d plies", rec.Plies)
	if rec.Error != "" {
		line += ": error: " + rec.Error
	}
	if _, err := fmt.Fprintln(tw.w, line); err != nil {
		return err
	}
	if len(rec.Moves) > 0 {
		if _, err := fmt.Fprintln(tw.w, strings.Join(rec.Moves, " ")); err != nil {
			return err
		}
	}
	if tw.boards == nil {
		return nil
	}
	return tw.boards.WriteBoard(rec.Board)
}

// Flush is a no-op; text is written immediately.
func (tw *TextWriter) Flush() error {
	return nil
}

// Close closes the text writer.
func (tw *TextWriter) Close() error {
	return nil
}

// JSONOutput holds multiple games for array output.
type JSONOutput struct {
	Games []*GameRecord `json:"games"`
}

// JSONWriter writes game records in JSON format.
// It buffers games and writes them as a JSON array on Close or Flush.
type JSONWriter struct {
	w      io.Writer
	games  []*GameRecord
	single bool // If true, write each game immediately instead of batching
}

// NewJSONWriter creates a new JSON writer that batches games into one array.
func NewJSONWriter(w io.Writer) *JSONWriter {
	return &JSONWriter{w: w}
}

// NewJSONWriterSingle creates a JSON writer that writes each game
// immediately, one object per line.
func NewJSONWriterSingle(w io.Writer) *JSONWriter {
	return &JSONWriter{w: w, single: true}
}

// WriteGame buffers a game for JSON output (or writes immediately in single mode).
func (jw *JSONWriter) WriteGame(rec *GameRecord) error {
	if jw.single {
		return json.NewEncoder(jw.w).Encode(rec)
	}
	jw.games = append(jw.games, rec)
	return nil
}

// Flush writes all buffered games as a JSON array.
func (jw *JSONWriter) Flush() error {
	if jw.single || len(jw.games) == 0 {
		return nil
	}

	enc := json.NewEncoder(jw.w)
	enc.SetIndent("", "  ")
	err := enc.Encode(&JSONOutput{Games: jw.games})

	// Clear buffer after writing
	jw.games = jw.games[:0]

	return err
}

// Close flushes and closes the JSON writer.
func (jw *JSONWriter) Close() error {
	return jw.Flush()
}
