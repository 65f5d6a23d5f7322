// Package errors provides sentinel errors and error types for the chess engines.
// It defines the contract violations surfaced by the position and search
// engines and a structured error type that preserves context while allowing
// error inspection with errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"

	pkgerrors "github.com/pkg/errors"
)

// Sentinel errors for common failure conditions.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrInvalidMove indicates a move that is not in the current legal set.
	ErrInvalidMove = errors.New("invalid move")

	// ErrPromotionChoiceMissing indicates a promotion move without a piece choice.
	ErrPromotionChoiceMissing = errors.New("promotion choice missing")

	// ErrEmptyHistory indicates an undo with no prior move.
	ErrEmptyHistory = errors.New("empty move history")

	// ErrNoLegalMoves indicates a search requested on a terminal position.
	ErrNoLegalMoves = errors.New("no legal moves")

	// ErrInconsistentReplay indicates a reported move that matches no tree edge.
	ErrInconsistentReplay = errors.New("inconsistent replay")

	// ErrGameOver indicates a move attempted after checkmate or a draw.
	ErrGameOver = errors.New("game is over")

	// ErrPlyOutOfRange indicates a historical board request outside the game.
	ErrPlyOutOfRange = errors.New("ply out of range")

	// ErrInvalidFEN indicates a malformed FEN string.
	ErrInvalidFEN = errors.New("invalid FEN string")

	// ErrInvalidDepth indicates a search depth below one.
	ErrInvalidDepth = errors.New("invalid search depth")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrSearchMismatch indicates a pruned search disagreeing with exhaustive minimax.
	ErrSearchMismatch = errors.New("search disagrees with minimax")
)

// MoveError wraps errors with move context: the ply at which the move was
// attempted and the move itself in coordinate form.
type MoveError struct {
	Err  error  // The underlying error
	Ply  int    // Ply number where error occurred (0 if not applicable)
	Move string // The move that caused the error (if applicable)
}

// Error returns a formatted error message including all available context.
func (e *MoveError) Error() string {
	var parts []string

	if e.Ply > 0 {
		parts = append(parts, fmt.Sprintf("ply %d", e.Ply))
	}
	if e.Move != "" {
		parts = append(parts, fmt.Sprintf("move %q", e.Move))
	}

	context := strings.Join(parts, ", ")
	switch {
	case e.Err == nil:
		return context
	case context == "":
		return e.Err.Error()
	default:
		return fmt.Sprintf("%s: %v", context, e.Err)
	}
}

// Unwrap returns the underlying error, enabling errors.Is() and errors.As()
// to work through the MoveError wrapper.
func (e *MoveError) Unwrap() error {
	return e.Err
}

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return pkgerrors.WithMessage(err, context)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return pkgerrors.WithMessagef(err, format, args...)
}

// Invariant panics with a stack-carrying error. It marks states the
// apply/rollback protocol guarantees cannot happen; they are not recoverable.
func Invariant(format string, args ...interface{}) {
	panic(pkgerrors.Errorf("invariant violated: "+format, args...))
}
