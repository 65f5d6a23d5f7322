package engine

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lgbarn/minimax-chess/internal/chess"
	"github.com/lgbarn/minimax-chess/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// NewPositionFromFEN creates a position from a FEN string. The halfmove
// clock is accepted and ignored; the fullmove number only affects FEN().
func NewPositionFromFEN(fen string) (*Position, error) {
	parts := strings.Fields(fen)
	if len(parts) < 1 {
		return nil, errors.Wrap(errors.ErrInvalidFEN, "empty FEN string")
	}

	board := chess.NewBoard()
	if err := parsePiecePositions(&board, parts[0]); err != nil {
		return nil, err
	}
	if err := checkKings(&board); err != nil {
		return nil, err
	}

	toMove, err := parseSideToMove(parts)
	if err != nil {
		return nil, err
	}
	castling, err := parseCastlingRights(parts)
	if err != nil {
		return nil, err
	}
	ep, err := parseEnPassant(parts)
	if err != nil {
		return nil, err
	}
	fullmove, err := parseFullmove(parts)
	if err != nil {
		return nil, err
	}

	p := newPosition(board, toMove, castling, ep)
	p.firstMove = fullmove
	return p, nil
}

// parsePiecePositions parses the piece placement field of a FEN string.
func parsePiecePositions(board *chess.Board, positions string) error {
	rank := chess.BoardSize - 1
	file := 0

	for _, c := range positions {
		switch {
		case c == '/':
			if file != chess.BoardSize {
				return errors.Wrapf(errors.ErrInvalidFEN, "rank %d has %d files", rank+1, file)
			}
			rank--
			file = 0
		case c >= '1' && c <= '8':
			file += int(c - '0')
		default:
			kind := chess.KindFromLetter(byte(c))
			if kind == chess.NoKind {
				return errors.Wrapf(errors.ErrInvalidFEN, "invalid piece character %q", c)
			}
			sq := chess.Sq(file, rank)
			if !sq.Valid() {
				return errors.Wrap(errors.ErrInvalidFEN, "position out of bounds")
			}
			colour := chess.White
			if c >= 'a' && c <= 'z' {
				colour = chess.Black
			}
			board.Set(sq, chess.MakePiece(colour, kind))
			file++
		}
		if file > chess.BoardSize || rank < 0 {
			return errors.Wrap(errors.ErrInvalidFEN, "position out of bounds")
		}
	}
	if rank != 0 || file != chess.BoardSize {
		return errors.Wrapf(errors.ErrInvalidFEN, "piece placement %q is incomplete", positions)
	}
	return nil
}

// checkKings requires exactly one king per side.
func checkKings(board *chess.Board) error {
	var kings [chess.NumColours]int
	for file := 0; file < chess.BoardSize; file++ {
		for rank := 0; rank < chess.BoardSize; rank++ {
			if piece := board.Get(chess.Sq(file, rank)); piece.Kind == chess.King {
				kings[piece.Colour]++
			}
		}
	}
	if kings[chess.White] != 1 || kings[chess.Black] != 1 {
		return errors.Wrapf(errors.ErrInvalidFEN, "found %d white and %d black kings",
			kings[chess.White], kings[chess.Black])
	}
	return nil
}

// parseSideToMove parses the side to move field. It defaults to White.
func parseSideToMove(parts []string) (chess.Colour, error) {
	if len(parts) < 2 {
		return chess.White, nil
	}
	switch parts[1] {
	case "w":
		return chess.White, nil
	case "b":
		return chess.Black, nil
	}
	return chess.White, errors.Wrapf(errors.ErrInvalidFEN, "invalid side to move %q", parts[1])
}

// parseCastlingRights parses the castling availability field.
func parseCastlingRights(parts []string) (CastlingRights, error) {
	if len(parts) < 3 || parts[2] == "-" {
		return NoCastling, nil
	}
	rights := NoCastling
	for _, c := range parts[2] {
		switch c {
		case 'K':
			rights |= WhiteKingside
		case 'Q':
			rights |= WhiteQueenside
		case 'k':
			rights |= BlackKingside
		case 'q':
			rights |= BlackQueenside
		default:
			return NoCastling, errors.Wrapf(errors.ErrInvalidFEN, "invalid castling field %q", parts[2])
		}
	}
	return rights, nil
}

// parseEnPassant parses the en passant target square field.
func parseEnPassant(parts []string) (chess.Square, error) {
	if len(parts) < 4 || parts[3] == "-" {
		return chess.NoSquare, nil
	}
	sq, err := chess.ParseSquare(parts[3])
	if err != nil {
		return chess.NoSquare, errors.Wrap(errors.ErrInvalidFEN, err.Error())
	}
	if sq.Rank != 2 && sq.Rank != 5 {
		return chess.NoSquare, errors.Wrapf(errors.ErrInvalidFEN, "en passant square %s on wrong rank", sq)
	}
	return sq, nil
}

// parseFullmove parses the fullmove number, defaulting to 1.
func parseFullmove(parts []string) (int, error) {
	if len(parts) < 6 {
		return 1, nil
	}
	n, err := strconv.Atoi(parts[5])
	if err != nil || n < 1 {
		return 0, errors.Wrapf(errors.ErrInvalidFEN, "invalid fullmove number %q", parts[5])
	}
	return n, nil
}

// FEN returns the current position as a FEN string. The halfmove clock is
// not tracked and is always written as 0.
func (p *Position) FEN() string {
	var sb strings.Builder
	gs := p.top()

	writePiecePositions(&sb, &p.board)
	sb.WriteByte(' ')
	if gs.SideToMove == chess.White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
	sb.WriteByte(' ')
	sb.WriteString(gs.Castling.String())
	sb.WriteByte(' ')
	sb.WriteString(gs.EnPassant.String())
	fmt.Fprintf(&sb, " 0 %d", p.fullmove())

	return sb.String()
}

// fullmove returns the FEN fullmove number of the current ply.
func (p *Position) fullmove() int {
	plies := p.TotalPlies()
	if p.states[0].SideToMove == chess.Black {
		plies++
	}
	return p.firstMove + plies/2
}

// writePiecePositions writes the piece placement to the builder.
func writePiecePositions(sb *strings.Builder, board *chess.Board) {
	for rank := chess.BoardSize - 1; rank >= 0; rank-- {
		emptyCount := 0
		for file := 0; file < chess.BoardSize; file++ {
			piece := board.Get(chess.Sq(file, rank))
			if piece.IsEmpty() {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteByte(byte('0' + emptyCount))
				emptyCount = 0
			}
			sb.WriteByte(piece.Letter())
		}
		if emptyCount > 0 {
			sb.WriteByte(byte('0' + emptyCount))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}
}
