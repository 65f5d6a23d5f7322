package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

// TestSentinelErrors verifies that sentinel errors are properly defined
// and can be checked with errors.Is()
func TestSentinelErrors_Are(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		sentinel error
	}{
		{"ErrInvalidMove", ErrInvalidMove, ErrInvalidMove},
		{"ErrPromotionChoiceMissing", ErrPromotionChoiceMissing, ErrPromotionChoiceMissing},
		{"ErrEmptyHistory", ErrEmptyHistory, ErrEmptyHistory},
		{"ErrNoLegalMoves", ErrNoLegalMoves, ErrNoLegalMoves},
		{"ErrInconsistentReplay", ErrInconsistentReplay, ErrInconsistentReplay},
		{"ErrGameOver", ErrGameOver, ErrGameOver},
		{"ErrPlyOutOfRange", ErrPlyOutOfRange, ErrPlyOutOfRange},
		{"ErrInvalidFEN", ErrInvalidFEN, ErrInvalidFEN},
		{"ErrInvalidDepth", ErrInvalidDepth, ErrInvalidDepth},
		{"ErrInvalidConfig", ErrInvalidConfig, ErrInvalidConfig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !errors.Is(tt.err, tt.sentinel) {
				t.Errorf("errors.Is(%v, %v) = false, want true", tt.err, tt.sentinel)
			}
		})
	}
}

func TestSentinelErrors_Distinct(t *testing.T) {
	if errors.Is(ErrInvalidMove, ErrPromotionChoiceMissing) {
		t.Error("ErrInvalidMove should not match ErrPromotionChoiceMissing")
	}
	if errors.Is(ErrNoLegalMoves, ErrGameOver) {
		t.Error("ErrNoLegalMoves should not match ErrGameOver")
	}
}

func TestMoveError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *MoveError
		contains []string
	}{
		{
			name:     "full context",
			err:      &MoveError{Err: ErrInvalidMove, Ply: 12, Move: "e2e5"},
			contains: []string{"ply 12", "e2e5", "invalid move"},
		},
		{
			name:     "no ply",
			err:      &MoveError{Err: ErrPromotionChoiceMissing, Move: "a7a8"},
			contains: []string{"a7a8", "promotion choice missing"},
		},
		{
			name:     "bare error",
			err:      &MoveError{Err: ErrEmptyHistory},
			contains: []string{"empty move history"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, s := range tt.contains {
				if !strings.Contains(msg, s) {
					t.Errorf("MoveError.Error() = %q, should contain %q", msg, s)
				}
			}
		})
	}
}

func TestMoveError_Unwrap(t *testing.T) {
	err := fmt.Errorf("replaying: %w", &MoveError{Err: ErrInconsistentReplay, Ply: 3, Move: "g1f3"})

	if !errors.Is(err, ErrInconsistentReplay) {
		t.Error("errors.Is through MoveError failed")
	}
	var me *MoveError
	if !errors.As(err, &me) {
		t.Fatal("errors.As(*MoveError) failed")
	}
	if me.Ply != 3 {
		t.Errorf("MoveError.Ply = %d, want 3", me.Ply)
	}
}

func TestWrap(t *testing.T) {
	if Wrap(nil, "context") != nil {
		t.Error("Wrap(nil) should return nil")
	}
	if Wrapf(nil, "context %d", 1) != nil {
		t.Error("Wrapf(nil) should return nil")
	}

	err := Wrapf(ErrInvalidFEN, "parsing %q", "8/8")
	if !errors.Is(err, ErrInvalidFEN) {
		t.Errorf("errors.Is(Wrapf(...), ErrInvalidFEN) = false, want true")
	}
	if !strings.Contains(err.Error(), `parsing "8/8"`) {
		t.Errorf("Wrapf message = %q, missing context", err.Error())
	}
}

func TestInvariantPanics(t *testing.T) {
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("Invariant did not panic")
		}
		err, ok := r.(error)
		if !ok {
			t.Fatalf("Invariant panicked with %T, want error", r)
		}
		if !strings.Contains(err.Error(), "diff stack empty") {
			t.Errorf("panic message = %q", err.Error())
		}
	}()
	Invariant("diff stack empty at ply %d", 4)
}
