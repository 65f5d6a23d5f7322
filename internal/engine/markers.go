package engine

import "github.com/lgbarn/minimax-chess/internal/chess"

// MarkerKind says how a board front end should highlight a square.
type MarkerKind int

const (
	MarkDestination MarkerKind = iota + 1 // legal destination of the selected piece
	MarkSource                            // selected piece has a legal move
	MarkDrawnKing                         // game drawn
	MarkMatedKing                         // king of the mated side
)

// String returns the string representation of a marker kind.
func (k MarkerKind) String() string {
	switch k {
	case MarkDestination:
		return "destination"
	case MarkSource:
		return "source"
	case MarkDrawnKing:
		return "drawn-king"
	case MarkMatedKing:
		return "mated-king"
	}
	return "unknown"
}

// Marker is a highlighted square.
type Marker struct {
	Square chess.Square
	Kind   MarkerKind
}

// Markers returns the squares a front end should highlight when selected
// is the square the user picked. After a draw both kings are marked, after
// checkmate the mated king is. Otherwise the legal destinations of the
// piece on selected are marked, followed by selected itself when it has
// any move.
func (p *Position) Markers(selected chess.Square) []Marker {
	switch p.top().Status {
	case Draw:
		return []Marker{
			{Square: p.kings[chess.White], Kind: MarkDrawnKing},
			{Square: p.kings[chess.Black], Kind: MarkDrawnKing},
		}
	case Checkmate:
		return []Marker{{Square: p.kings[p.top().SideToMove], Kind: MarkMatedKing}}
	}

	var out []Marker
	for _, to := range p.LegalDestinations(selected) {
		out = append(out, Marker{Square: to, Kind: MarkDestination})
	}
	if len(out) > 0 {
		out = append(out, Marker{Square: selected, Kind: MarkSource})
	}
	return out
}
