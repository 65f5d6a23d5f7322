package chess

import "fmt"

// Square is a board coordinate. File 0 is the a-file and Rank 0 is
// White's back rank.
type Square struct {
	File int8
	Rank int8
}

// NoSquare marks the absence of a square (e.g. no en passant target).
var NoSquare = Square{File: -1, Rank: -1}

// Sq creates a square from file and rank indices.
func Sq(file, rank int) Square {
	return Square{File: int8(file), Rank: int8(rank)}
}

// Valid reports whether the square lies on the board.
func (s Square) Valid() bool {
	return s.File >= 0 && s.File < BoardSize && s.Rank >= 0 && s.Rank < BoardSize
}

// Offset returns the square df files and dr ranks away. The result may be
// off the board; check Valid.
func (s Square) Offset(df, dr int) Square {
	return Square{File: s.File + int8(df), Rank: s.Rank + int8(dr)}
}

// IsLight reports whether the square is a light square (h1 is light).
func (s Square) IsLight() bool {
	return (int(s.File)+int(s.Rank))%2 == 1
}

// String returns the algebraic name of the square, e.g. "e4".
func (s Square) String() string {
	if !s.Valid() {
		return "-"
	}
	return string([]byte{byte('a' + s.File), byte('1' + s.Rank)})
}

// ParseSquare parses an algebraic square name such as "e4".
func ParseSquare(name string) (Square, error) {
	if len(name) != 2 {
		return NoSquare, fmt.Errorf("invalid square %q", name)
	}
	s := Sq(int(name[0]-'a'), int(name[1]-'1'))
	if name[0] < 'a' || name[1] < '1' || !s.Valid() {
		return NoSquare, fmt.Errorf("invalid square %q", name)
	}
	return s, nil
}

// MustSquare is like ParseSquare but panics on error. Intended for tables
// of constant squares.
func MustSquare(name string) Square {
	s, err := ParseSquare(name)
	if err != nil {
		panic(err)
	}
	return s
}
