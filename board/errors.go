package board

import (
	"errors"
	"fmt"
)

// Sentinel errors for board construction. ErrEmptyBoard is returned as
// is; each of the others is wrapped with row/column or value context via
// fmt.Errorf before it reaches the caller.
var (
	// ErrEmptyBoard indicates stones has no rows or no columns.
	ErrEmptyBoard = errors.New("board: stones must have at least one row and one column")
	// ErrNonRectangularStones indicates a row of stones has the wrong length.
	ErrNonRectangularStones = errors.New("board: not all rows of stones are the same length")
	// ErrNonRectangularDead indicates a row of dead has the wrong length.
	ErrNonRectangularDead = errors.New("board: not all rows of dead are the same length as stones")
	// ErrDeadSizeMismatch indicates dead does not have the same number of rows as stones.
	ErrDeadSizeMismatch = errors.New("board: dead is not the same length as stones")
	// ErrInvalidColor indicates an unexpected value appeared in stones.
	ErrInvalidColor = errors.New("board: unexpected value in stones")
)

// wrapRow annotates a sentinel error with the offending row and the
// expected row width/count.
func wrapRow(base error, row, want int) error {
	return fmt.Errorf("%w: row %d, expected length %d", base, row, want)
}

// wrapValue annotates ErrInvalidColor with the offending cell and value.
func wrapValue(base error, y, x, value int) error {
	return fmt.Errorf("%w: at (%d,%d), got %d", base, y, x, value)
}
