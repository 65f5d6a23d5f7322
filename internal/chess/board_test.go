package chess

import (
	"testing"
)

func TestNewBoard(t *testing.T) {
	b := NewBoard()

	for file := 0; file < BoardSize; file++ {
		for rank := 0; rank < BoardSize; rank++ {
			if got := b.Get(Sq(file, rank)); got != Empty {
				t.Errorf("Get(%v) = %v; want Empty", Sq(file, rank), got)
			}
		}
	}
}

func TestSetupInitialPosition(t *testing.T) {
	b := NewInitialBoard()

	tests := []struct {
		name  string
		sq    string
		piece Piece
	}{
		// White back rank
		{"white rook a1", "a1", W(Rook)},
		{"white knight b1", "b1", W(Knight)},
		{"white bishop c1", "c1", W(Bishop)},
		{"white queen d1", "d1", W(Queen)},
		{"white king e1", "e1", W(King)},
		{"white rook h1", "h1", W(Rook)},
		// Pawns
		{"white pawn e2", "e2", W(Pawn)},
		{"black pawn d7", "d7", B(Pawn)},
		// Black back rank
		{"black queen d8", "d8", B(Queen)},
		{"black king e8", "e8", B(King)},
		{"black knight g8", "g8", B(Knight)},
		// Middle of the board
		{"empty e4", "e4", Empty},
		{"empty d5", "d5", Empty},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := b.Get(MustSquare(tt.sq)); got != tt.piece {
				t.Errorf("Get(%s) = %v; want %v", tt.sq, got, tt.piece)
			}
		})
	}
}

func TestBoardGetSetOffBoard(t *testing.T) {
	b := NewBoard()
	off := Sq(8, 0)

	b.Set(off, W(Queen))
	if got := b.Get(off); got != Empty {
		t.Errorf("Get(off board) = %v; want Empty", got)
	}
	if got := b.Get(NoSquare); got != Empty {
		t.Errorf("Get(NoSquare) = %v; want Empty", got)
	}
}

func TestBoardIsValueType(t *testing.T) {
	a := NewInitialBoard()
	c := a
	c.Set(MustSquare("e2"), Empty)

	if a.Get(MustSquare("e2")) != W(Pawn) {
		t.Error("modifying a copy changed the original board")
	}
}

func TestBoardFind(t *testing.T) {
	b := NewInitialBoard()

	if got := b.Find(B(King)); got != MustSquare("e8") {
		t.Errorf("Find(black king) = %v; want e8", got)
	}
	if got := b.Find(W(Queen)); got != MustSquare("d1") {
		t.Errorf("Find(white queen) = %v; want d1", got)
	}
	b.Set(MustSquare("d1"), Empty)
	if got := b.Find(W(Queen)); got != NoSquare {
		t.Errorf("Find(missing queen) = %v; want NoSquare", got)
	}
}

func TestBoardString(t *testing.T) {
	b := NewInitialBoard()
	want := "8 rnbqkbnr\n" +
		"7 pppppppp\n" +
		"6 ........\n" +
		"5 ........\n" +
		"4 ........\n" +
		"3 ........\n" +
		"2 PPPPPPPP\n" +
		"1 RNBQKBNR\n" +
		"  abcdefgh\n"

	if got := b.String(); got != want {
		t.Errorf("String() =\n%s\nwant\n%s", got, want)
	}
}

func TestSquare(t *testing.T) {
	t.Run("parse and format", func(t *testing.T) {
		for _, name := range []string{"a1", "e4", "h8", "c7"} {
			sq, err := ParseSquare(name)
			if err != nil {
				t.Fatalf("ParseSquare(%q) error: %v", name, err)
			}
			if sq.String() != name {
				t.Errorf("ParseSquare(%q).String() = %q", name, sq.String())
			}
		}
	})

	t.Run("invalid", func(t *testing.T) {
		for _, name := range []string{"", "i1", "a9", "a0", "e", "e44"} {
			if _, err := ParseSquare(name); err == nil {
				t.Errorf("ParseSquare(%q) succeeded; want error", name)
			}
		}
	})

	t.Run("colour", func(t *testing.T) {
		if MustSquare("a1").IsLight() {
			t.Error("a1 should be dark")
		}
		if !MustSquare("h1").IsLight() {
			t.Error("h1 should be light")
		}
		if MustSquare("h8").IsLight() {
			t.Error("h8 should be dark")
		}
	})

	t.Run("offset", func(t *testing.T) {
		if got := MustSquare("g1").Offset(-1, 2); got != MustSquare("f3") {
			t.Errorf("g1.Offset(-1, 2) = %v; want f3", got)
		}
		if MustSquare("h1").Offset(1, 0).Valid() {
			t.Error("h1.Offset(1, 0) should be off the board")
		}
	})
}

func TestParseMove(t *testing.T) {
	tests := []struct {
		text    string
		want    Move
		wantErr bool
	}{
		{"e2e4", NewMove(MustSquare("e2"), MustSquare("e4")), false},
		{"a7a8q", Move{MustSquare("a7"), MustSquare("a8"), Queen}, false},
		{"b2b1n", Move{MustSquare("b2"), MustSquare("b1"), Knight}, false},
		{"a7a8k", NoMove, true},
		{"e2", NoMove, true},
		{"z2e4", NoMove, true},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			got, err := ParseMove(tt.text)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseMove(%q) error = %v, wantErr %v", tt.text, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseMove(%q) = %v; want %v", tt.text, got, tt.want)
			}
			if !tt.wantErr && got.String() != tt.text {
				t.Errorf("String() = %q; want %q", got.String(), tt.text)
			}
		})
	}
}

func TestPieceLetter(t *testing.T) {
	tests := []struct {
		piece Piece
		want  byte
	}{
		{W(King), 'K'},
		{B(King), 'k'},
		{W(Knight), 'N'},
		{B(Pawn), 'p'},
		{Empty, '.'},
	}
	for _, tt := range tests {
		if got := tt.piece.Letter(); got != tt.want {
			t.Errorf("%v.Letter() = %c; want %c", tt.piece, got, tt.want)
		}
	}
}
