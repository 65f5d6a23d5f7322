package main

import (
	"fmt"
	"io"
	"time"

	"github.com/lgbarn/minimax-chess/internal/engine"
)

// runPerft prints the perft count for every depth from 1 to depth.
func runPerft(w io.Writer, fen string, depth int) error {
	pos, err := engine.NewPositionFromFEN(fen)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "%s\n", pos.FEN())
	for d := 1; d <= depth; d++ {
		start := time.Now()
		nodes := pos.Perft(d)
		fmt.Fprintf(w, "perft(%d) = %d\t%v\n", d, nodes, time.Since(start).Round(time.Millisecond))
	}
	return nil
}
