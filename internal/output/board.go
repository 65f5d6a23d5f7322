// Package output writes boards and self-play game records.
package output

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/lgbarn/minimax-chess/internal/chess"
)

// BoardWriter draws boards as text, optionally coloured.
type BoardWriter struct {
	w     io.Writer
	white *color.Color
	black *color.Color
	dim   *color.Color
}

// NewBoardWriter creates a board writer. Colour is used only when
// colored is true.
func NewBoardWriter(w io.Writer, colored bool) *BoardWriter {
	bw := &BoardWriter{
		w:     w,
		white: color.New(color.FgHiWhite, color.Bold),
		black: color.New(color.FgRed, color.Bold),
		dim:   color.New(color.FgHiBlack),
	}
	for _, c := range []*color.Color{bw.white, bw.black, bw.dim} {
		if colored {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return bw
}

// WriteBoard draws b with rank 8 at the top.
func (bw *BoardWriter) WriteBoard(b chess.Board) error {
	for rank := chess.BoardSize - 1; rank >= 0; rank-- {
		if _, err := fmt.Fprintf(bw.w, "%d ", rank+1); err != nil {
			return err
		}
		for file := 0; file < chess.BoardSize; file++ {
			p := b.Get(chess.Sq(file, rank))
			if _, err := bw.pieceColor(p).Fprintf(bw.w, " %c", p.Letter()); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(bw.w); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(bw.w, "   a b c d e f g h")
	return err
}

func (bw *BoardWriter) pieceColor(p chess.Piece) *color.Color {
	switch {
	case p.IsEmpty():
		return bw.dim
	case p.Colour == chess.White:
		return bw.white
	}
	return bw.black
}
